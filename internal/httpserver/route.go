package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	pkgdb "github.com/Skotchmaster/kitchen_control/pkg/db"
	"github.com/Skotchmaster/kitchen_control/pkg/logging"
	"github.com/Skotchmaster/kitchen_control/pkg/metrics"
)

type Deps struct {
	OrderHandler *OrderHTTP
	DB           *gorm.DB
	Metrics      *metrics.ServerMetrics
}

func Register(e *echo.Echo, d *Deps) {
	e.HTTPErrorHandler = HTTPErrorHandler

	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error {
		ctx := c.Request().Context()
		if err := pkgdb.Ping(ctx, d.DB); err != nil {
			logging.FromContext(ctx).Warn("readiness_check_failed", "error", err)
			return echo.NewHTTPError(http.StatusServiceUnavailable, "database unavailable")
		}
		return c.NoContent(http.StatusOK)
	})
	if d.Metrics != nil {
		e.GET("/metrics", echo.WrapHandler(d.Metrics.Handler()))
	}

	orders := e.Group("/api/orders")
	orders.POST("", d.OrderHandler.CreateOrder)
	orders.GET("", d.OrderHandler.GetOrders)
	orders.GET("/:id", d.OrderHandler.GetOrder)
	orders.DELETE("/:id", d.OrderHandler.DeleteOrder)
}
