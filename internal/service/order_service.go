package service

import (
	"context"
	"strings"

	"github.com/spec-kit/shop-service/internal/domain"
	"github.com/spec-kit/shop-service/internal/events"
	"github.com/spec-kit/shop-service/internal/repository"
	apperrors "github.com/spec-kit/shop-service/pkg/util"
)

// OrderService coordinates checkout and order listing.
type OrderService struct {
	orders     repository.OrderRepository
	dispatcher events.Dispatcher
}

// NewOrderService constructs the service.
func NewOrderService(orders repository.OrderRepository, dispatcher events.Dispatcher) *OrderService {
	return &OrderService{orders: orders, dispatcher: dispatcher}
}

// Checkout creates exactly one PLACED order owned by the caller. An empty
// cart is rejected before anything touches the store.
func (s *OrderService) Checkout(ctx context.Context, userID string, items []domain.OrderItem, total float64) (*domain.Order, error) {
	if len(items) == 0 {
		return nil, apperrors.NewValidationError("Empty cart")
	}
	for _, item := range items {
		if strings.TrimSpace(item.Name) == "" {
			return nil, apperrors.NewValidationError("item name required")
		}
		if item.Qty <= 0 {
			return nil, apperrors.NewValidationError("item quantity must be positive")
		}
		if item.Price < 0 {
			return nil, apperrors.NewValidationError("item price must not be negative")
		}
	}
	if total < 0 {
		return nil, apperrors.NewValidationError("total must not be negative")
	}

	order := &domain.Order{
		UserID: userID,
		Items:  items,
		Total:  total,
		Status: domain.OrderStatusPlaced,
	}
	if err := s.orders.Create(ctx, order); err != nil {
		return nil, err
	}

	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			Type:   events.EventOrderPlaced,
			UserID: userID,
			Payload: events.OrderPlacedPayload{
				OrderID:   order.ID,
				Total:     order.Total,
				ItemCount: len(order.Items),
				Status:    order.Status,
			},
		})
	}
	return order, nil
}

// ListForUser returns the caller's orders, newest first. Ownership scoping
// happens here; handlers never pass a user id other than the authenticated
// principal's.
func (s *OrderService) ListForUser(ctx context.Context, userID string) ([]domain.Order, error) {
	return s.orders.ListByUser(ctx, userID)
}
