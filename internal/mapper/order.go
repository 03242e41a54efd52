// Package mapper converts between order transfer objects and records.
//
// Inbound conversions never set fields the service owns: identifiers,
// parent references, order date, status, delivery and plan.
package mapper

import (
	"github.com/Skotchmaster/kitchen_control/internal/models"
	"github.com/Skotchmaster/kitchen_control/internal/transport"
)

func ToRecord(req transport.CreateOrderRequest) models.Order {
	details := make([]models.OrderDetail, 0, len(req.OrderDetails))
	for _, line := range req.OrderDetails {
		details = append(details, ToDetailRecord(line))
	}

	return models.Order{
		StoreID:      req.StoreID,
		OrderDetails: details,
	}
}

func ToDetailRecord(line transport.OrderDetailRequest) models.OrderDetail {
	return models.OrderDetail{
		ProductID: line.ProductID,
		Quantity:  line.Quantity,
	}
}

func ToResponse(order models.Order) transport.OrderResponse {
	details := make([]transport.OrderDetailResponse, 0, len(order.OrderDetails))
	for _, d := range order.OrderDetails {
		details = append(details, ToDetailResponse(d))
	}

	return transport.OrderResponse{
		OrderID:      order.ID,
		StoreID:      order.StoreID,
		OrderDate:    order.OrderDate,
		Status:       string(order.Status),
		OrderDetails: details,
	}
}

func ToDetailResponse(detail models.OrderDetail) transport.OrderDetailResponse {
	return transport.OrderDetailResponse{
		ProductID: detail.ProductID,
		Quantity:  detail.Quantity,
	}
}

func ToResponses(orders []models.Order) []transport.OrderResponse {
	out := make([]transport.OrderResponse, 0, len(orders))
	for i := range orders {
		out = append(out, ToResponse(orders[i]))
	}
	return out
}
