package models

import "time"

type DeliveryStatus string

const (
	DeliveryStatusWaiting    DeliveryStatus = "WAITING"
	DeliveryStatusProcessing DeliveryStatus = "PROCESSING"
	DeliveryStatusDone       DeliveryStatus = "DONE"
)

type Delivery struct {
	ID           int            `gorm:"column:delivery_id;primaryKey;autoIncrement" json:"delivery_id"`
	DeliveryDate *time.Time     `gorm:"type:date"                                   json:"delivery_date,omitempty"`
	Status       DeliveryStatus `gorm:"type:varchar(20)"                            json:"status"`
	ShipperID    *int           `gorm:"index"                                       json:"shipper_id,omitempty"`
	Shipper      *User          `gorm:"foreignKey:ShipperID"                        json:"-"`
	CreatedAt    time.Time      `json:"created_at"`
}

// QualityFeedback is a store's rating of a delivered order, at most one per order.
type QualityFeedback struct {
	ID        int       `gorm:"column:feedback_id;primaryKey;autoIncrement" json:"feedback_id"`
	OrderID   int       `gorm:"not null;uniqueIndex"                        json:"order_id"`
	Order     *Order    `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"-"`
	StoreID   int       `gorm:"not null;index"                              json:"store_id"`
	Store     *Store    `gorm:"foreignKey:StoreID"                          json:"-"`
	Rating    *int      `json:"rating,omitempty"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}
