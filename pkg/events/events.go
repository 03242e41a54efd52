package events

import (
	"context"
	"time"

	"github.com/google/uuid"
)

const (
	TypeOrderCreated = "order_created"
	TypeOrderDeleted = "order_deleted"
)

type Event struct {
	EventID    string         `json:"eventId"`
	Type       string         `json:"type"`
	OrderID    int            `json:"orderId"`
	StoreID    int            `json:"storeId,omitempty"`
	OccurredAt time.Time      `json:"occurredAt"`
	Payload    map[string]any `json:"payload,omitempty"`
}

func NewEvent(eventType string, orderID int) Event {
	return Event{
		EventID:    uuid.NewString(),
		Type:       eventType,
		OrderID:    orderID,
		OccurredAt: time.Now().UTC(),
	}
}

type Publisher interface {
	Publish(ctx context.Context, key string, event Event) error
	Close() error
}

// Nop drops every event. Used when no brokers are configured.
type Nop struct{}

func (Nop) Publish(context.Context, string, Event) error { return nil }

func (Nop) Close() error { return nil }
