package transport

import "time"

type OrderDetailRequest struct {
	ProductID int     `json:"productId"`
	Quantity  float64 `json:"quantity"`
}

type CreateOrderRequest struct {
	StoreID      int                  `json:"storeId"`
	OrderDetails []OrderDetailRequest `json:"orderDetails"`
}

type OrderDetailResponse struct {
	ProductID int     `json:"productId"`
	Quantity  float64 `json:"quantity"`
}

type OrderResponse struct {
	OrderID      int                   `json:"orderId"`
	StoreID      int                   `json:"storeId"`
	OrderDate    time.Time             `json:"orderDate"`
	Status       string                `json:"status"`
	OrderDetails []OrderDetailResponse `json:"orderDetails"`
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Result  any    `json:"result,omitempty"`
}
