package models

import "time"

type OrderStatus string

const (
	OrderStatusWaiting    OrderStatus = "WAITING"
	OrderStatusProcessing OrderStatus = "PROCESSING"
	OrderStatusDelivering OrderStatus = "DELIVERING"
	OrderStatusDone       OrderStatus = "DONE"
	OrderStatusCancelled  OrderStatus = "CANCELLED"
)

// Order is the aggregate root placed by a store. It owns its OrderDetails:
// they are written in the same transaction and removed with it.
type Order struct {
	ID           int             `gorm:"column:order_id;primaryKey;autoIncrement" json:"order_id"`
	DeliveryID   *int            `gorm:"index"                                    json:"delivery_id,omitempty"`
	Delivery     *Delivery       `gorm:"foreignKey:DeliveryID;constraint:OnDelete:SET NULL" json:"-"`
	StoreID      int             `gorm:"not null;index"                           json:"store_id"`
	PlanID       *int            `gorm:"index"                                    json:"plan_id,omitempty"`
	Plan         *ProductionPlan `gorm:"foreignKey:PlanID;constraint:OnDelete:SET NULL" json:"-"`
	OrderDate    time.Time       `gorm:"not null"                                 json:"order_date"`
	Status       OrderStatus     `gorm:"type:varchar(20);not null"                json:"status"`
	OrderDetails []OrderDetail   `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"order_details"`
}

type OrderDetail struct {
	ID        int     `gorm:"column:order_detail_id;primaryKey;autoIncrement" json:"order_detail_id"`
	OrderID   int     `gorm:"not null;index"                                  json:"order_id"`
	ProductID int     `gorm:"not null"                                        json:"product_id"`
	Quantity  float64 `gorm:"not null"                                        json:"quantity"`
}
