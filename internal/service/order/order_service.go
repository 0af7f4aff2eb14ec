package order

import (
	"context"
	"errors"
	"log"
	"sync"

	"github.com/google/uuid"
	"github.com/rkhan0192/sapienscare/internal/domain"
	"github.com/rkhan0192/sapienscare/internal/export"
	kafkapkg "github.com/rkhan0192/sapienscare/internal/kafka"
	"github.com/rkhan0192/sapienscare/internal/repository"
)

type OrderUseCase interface {
	CreateOrder(ctx context.Context, input CreateOrderInput) (*domain.Order, error)
	ListOrders(ctx context.Context) ([]domain.Order, error)
	SetStatus(ctx context.Context, id string, status domain.OrderStatus) (*domain.Order, error)
	DeleteOrder(ctx context.Context, id string) error
}

// ExportStore is the append-only sink confirmed orders are projected into.
type ExportStore interface {
	Append(rec export.Record) error
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

type Service struct {
	orders             repository.OrderRepository
	store              ExportStore
	producer           Producer
	orderTopic         string
	notificationsTopic string

	// exportMu is the process-wide export lock: held across the re-fetch,
	// the append and the exported-flag update, so rows land in the file in
	// confirmation-commit order and the duplicate check cannot race the
	// append.
	exportMu sync.Mutex
}

type CreateOrderInput struct {
	Name          string  `json:"name"`
	Email         string  `json:"email"`
	Address       string  `json:"address"`
	ContactNumber string  `json:"number"`
	Pin           string  `json:"pin"`
	ProductName   string  `json:"productName"`
	Quantity      int     `json:"quantity"`
	TotalPrice    float64 `json:"totalPrice"`
}

type ServiceOption func(*Service)

func WithNotificationsTopic(topic string) ServiceOption {
	return func(s *Service) {
		s.notificationsTopic = topic
	}
}

func NewService(
	orders repository.OrderRepository,
	store ExportStore,
	producer *kafkapkg.Producer,
	orderTopic string,
	opts ...ServiceOption,
) *Service {
	service := &Service{
		orders:     orders,
		store:      store,
		producer:   producer,
		orderTopic: orderTopic,
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

func (s *Service) CreateOrder(ctx context.Context, input CreateOrderInput) (*domain.Order, error) {
	if input.Quantity <= 0 {
		return nil, errors.New("quantity must be positive")
	}
	if input.TotalPrice < 0 {
		return nil, errors.New("total price must not be negative")
	}
	if input.Email == "" {
		return nil, errors.New("email is required")
	}

	order := &domain.Order{
		ID:            uuid.NewString(),
		Name:          input.Name,
		Email:         input.Email,
		Address:       input.Address,
		ContactNumber: input.ContactNumber,
		Pin:           input.Pin,
		ProductName:   input.ProductName,
		Quantity:      input.Quantity,
		TotalPrice:    input.TotalPrice,
	}

	if err := s.orders.Create(ctx, order); err != nil {
		return nil, err
	}

	if err := s.publish(ctx, "order_created", order); err != nil {
		log.Printf("WARNING: failed to publish order_created event for order %s: %v", order.ID, err)
	}
	return order, nil
}

func (s *Service) ListOrders(ctx context.Context) ([]domain.Order, error) {
	return s.orders.List(ctx)
}

// SetStatus moves an order out of pending. Confirmation and rejection are
// one-time events: the repository update only matches pending orders, so a
// retried or duplicated request fails with ErrInvalidTransition instead of
// exporting twice. On confirmation the order is appended to the export
// file; an export failure is returned together with the updated order (the
// status transition is not rolled back, order processing must not depend
// on the export sink being up).
func (s *Service) SetStatus(ctx context.Context, id string, status domain.OrderStatus) (*domain.Order, error) {
	if !status.Terminal() {
		return nil, domain.ErrInvalidTransition
	}

	updated, err := s.orders.UpdateStatusIfPending(ctx, id, status)
	if err != nil {
		return nil, err
	}

	if err := s.publish(ctx, "order_"+string(status), updated); err != nil {
		log.Printf("WARNING: failed to publish order_%s event for order %s: %v", status, id, err)
	}

	if status == domain.OrderStatusConfirmed {
		if err := s.export(ctx, updated); err != nil {
			return updated, err
		}
	}
	return updated, nil
}

func (s *Service) DeleteOrder(ctx context.Context, id string) error {
	return s.orders.Delete(ctx, id)
}

func (s *Service) export(ctx context.Context, order *domain.Order) error {
	s.exportMu.Lock()
	defer s.exportMu.Unlock()

	// The conditional status update already guarantees a single confirm
	// per order; the re-fetch of the exported flag is a second net against
	// requests that interleaved before either committed.
	snapshot := *order
	current, err := s.orders.GetByID(ctx, order.ID)
	if err == nil {
		if current.Exported {
			order.Exported = true
			return nil
		}
		snapshot = *current
	} else {
		log.Printf("WARNING: could not re-fetch order %s before export: %v", order.ID, err)
	}

	if err := s.store.Append(export.ProjectOrder(snapshot)); err != nil {
		return err
	}

	// The row is in the file at this point, so the caller sees success
	// even if the bookkeeping flag cannot be persisted. The terminal
	// status keeps a second export from happening either way.
	if err := s.orders.MarkExported(ctx, order.ID); err != nil {
		log.Printf("WARNING: order %s exported but flag update failed: %v", order.ID, err)
	}
	order.Exported = true
	return nil
}

func (s *Service) publish(ctx context.Context, eventType string, order *domain.Order) error {
	if s.producer == nil || s.orderTopic == "" {
		return nil
	}
	event := kafkapkg.OrderEvent{
		Type:        eventType,
		OrderID:     order.ID,
		ProductName: order.ProductName,
		Quantity:    order.Quantity,
		TotalPrice:  order.TotalPrice,
		Email:       order.Email,
		Status:      string(order.Status),
		OccurredAt:  order.UpdatedAt,
	}
	if err := s.producer.Publish(ctx, s.orderTopic, order.ID, event); err != nil {
		return err
	}
	if s.notificationsTopic != "" {
		return s.producer.Publish(ctx, s.notificationsTopic, order.ID, event)
	}
	return nil
}

var _ OrderUseCase = (*Service)(nil)
