package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"gorm.io/gorm"

	"github.com/Skotchmaster/kitchen_control/internal/mapper"
	"github.com/Skotchmaster/kitchen_control/internal/models"
	"github.com/Skotchmaster/kitchen_control/internal/transport"
	"github.com/Skotchmaster/kitchen_control/pkg/events"
	"github.com/Skotchmaster/kitchen_control/pkg/logging"
)

var (
	ErrValidation    = errors.New("validation")
	ErrOrderNotFound = errors.New("order not found")
)

type OrderRepository interface {
	Insert(ctx context.Context, order *models.Order) error
	FindByID(ctx context.Context, id int) (*models.Order, error)
	FindAll(ctx context.Context) ([]models.Order, error)
	DeleteByID(ctx context.Context, id int) (bool, error)
}

// OrderCounter receives one call per committed create or delete.
type OrderCounter interface {
	OrderCreated()
	OrderDeleted()
}

type OrderService struct {
	repo      OrderRepository
	publisher events.Publisher
	counter   OrderCounter
	now       func() time.Time
}

type Option func(*OrderService)

func WithClock(now func() time.Time) Option {
	return func(s *OrderService) { s.now = now }
}

func WithCounter(c OrderCounter) Option {
	return func(s *OrderService) { s.counter = c }
}

func NewOrderService(repo OrderRepository, publisher events.Publisher, opts ...Option) *OrderService {
	if publisher == nil {
		publisher = events.Nop{}
	}
	s := &OrderService{
		repo:      repo,
		publisher: publisher,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *OrderService) Create(ctx context.Context, req transport.CreateOrderRequest) (*transport.OrderResponse, error) {
	if req.StoreID <= 0 {
		return nil, fmt.Errorf("%w: storeId is required", ErrValidation)
	}

	order := mapper.ToRecord(req)
	order.OrderDate = s.now().UTC().Truncate(time.Microsecond)
	order.Status = models.OrderStatusWaiting

	if err := s.repo.Insert(ctx, &order); err != nil {
		return nil, fmt.Errorf("insert order: %w", err)
	}

	if s.counter != nil {
		s.counter.OrderCreated()
	}

	ev := events.NewEvent(events.TypeOrderCreated, order.ID)
	ev.StoreID = order.StoreID
	ev.Payload = map[string]any{"details": len(order.OrderDetails)}
	s.publish(ctx, ev)

	resp := mapper.ToResponse(order)
	return &resp, nil
}

func (s *OrderService) GetByID(ctx context.Context, id int) (*transport.OrderResponse, error) {
	order, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w with id: %d", ErrOrderNotFound, id)
		}
		return nil, fmt.Errorf("find order %d: %w", id, err)
	}

	resp := mapper.ToResponse(*order)
	return &resp, nil
}

func (s *OrderService) ListAll(ctx context.Context) ([]transport.OrderResponse, error) {
	orders, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return mapper.ToResponses(orders), nil
}

// Delete removes the order and its details. A missing id is not an error.
func (s *OrderService) Delete(ctx context.Context, id int) error {
	deleted, err := s.repo.DeleteByID(ctx, id)
	if err != nil {
		return fmt.Errorf("delete order %d: %w", id, err)
	}
	if !deleted {
		logging.FromContext(ctx).Debug("delete_order_noop", "order_id", id)
		return nil
	}

	if s.counter != nil {
		s.counter.OrderDeleted()
	}
	s.publish(ctx, events.NewEvent(events.TypeOrderDeleted, id))
	return nil
}

// publish runs after the commit, so it must outlive a disconnected client.
func (s *OrderService) publish(ctx context.Context, ev events.Event) {
	if err := s.publisher.Publish(context.WithoutCancel(ctx), strconv.Itoa(ev.OrderID), ev); err != nil {
		logging.FromContext(ctx).Error("publish_event_error", "type", ev.Type, "order_id", ev.OrderID, "error", err)
	}
}
