package httpserver

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/kitchen_control/internal/service"
	"github.com/Skotchmaster/kitchen_control/internal/transport"
	"github.com/Skotchmaster/kitchen_control/pkg/logging"
)

const internalErrorMessage = "internal error"

type errorKind struct {
	target error
	status int
}

// Checked in order, first match wins. Anything unmatched is a 500.
// Client errors (400, 404) are kept apart from server failures (500) on purpose.
var errorKinds = []errorKind{
	{target: service.ErrValidation, status: http.StatusBadRequest},
	{target: service.ErrOrderNotFound, status: http.StatusNotFound},
}

func statusFor(err error) int {
	for _, k := range errorKinds {
		if errors.Is(err, k.target) {
			return k.status
		}
	}
	return http.StatusInternalServerError
}

// toHTTPError converts a service error into the response the client gets.
// Internal failures never leak their text.
func toHTTPError(err error) *echo.HTTPError {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		return echo.NewHTTPError(status, internalErrorMessage).SetInternal(err)
	}
	return echo.NewHTTPError(status, err.Error()).SetInternal(err)
}

// HTTPErrorHandler renders every error, including echo's own routing
// errors, as a transport.ErrorResponse.
func HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var body transport.ErrorResponse
	var he *echo.HTTPError
	if errors.As(err, &he) {
		body.Code = he.Code
		switch m := he.Message.(type) {
		case string:
			body.Message = m
		case error:
			body.Message = m.Error()
		case nil:
			body.Message = http.StatusText(he.Code)
		default:
			body.Message = fmt.Sprint(m)
		}
	} else {
		body.Code = statusFor(err)
		body.Message = err.Error()
		if body.Code == http.StatusInternalServerError {
			body.Message = internalErrorMessage
		}
	}

	var werr error
	if c.Request().Method == http.MethodHead {
		werr = c.NoContent(body.Code)
	} else {
		werr = c.JSON(body.Code, body)
	}
	if werr != nil {
		logging.FromContext(c.Request().Context()).Error("write_error_response_failed", "error", werr)
	}
}
