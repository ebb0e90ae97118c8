package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"storefront/internal/domain"
	"storefront/internal/repository"
)

// ErrInvalidOrderRequest marks order requests rejected before any store access.
var ErrInvalidOrderRequest = errors.New("invalid order request")

// OrderService places orders against current stock. All stock checking and
// mutation happens inside the repository's transaction; the service only
// rejects requests that are malformed before any store access.
type OrderService interface {
	CreateOrder(ctx context.Context, user *domain.User, items []domain.OrderItemInput) (*domain.Order, error)
	ListOrders(ctx context.Context, user *domain.User, limit, offset int) ([]domain.Order, int, error)
}

type orderService struct {
	orders repository.OrderRepository
}

func NewOrderService(orders repository.OrderRepository) OrderService {
	return &orderService{orders: orders}
}

func (s *orderService) CreateOrder(ctx context.Context, user *domain.User, items []domain.OrderItemInput) (*domain.Order, error) {
	if user == nil || user.ID <= 0 {
		return nil, fmt.Errorf("%w: user is required", ErrInvalidOrderRequest)
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: order must contain at least one item", ErrInvalidOrderRequest)
	}
	for _, item := range items {
		if item.ProductID <= 0 {
			return nil, fmt.Errorf("%w: invalid product id %d", ErrInvalidOrderRequest, item.ProductID)
		}
		if item.Quantity <= 0 {
			return nil, fmt.Errorf("%w: invalid quantity for product %d", ErrInvalidOrderRequest, item.ProductID)
		}
	}

	return s.orders.Create(ctx, user.ID, uuid.NewString(), items)
}

func (s *orderService) ListOrders(ctx context.Context, user *domain.User, limit, offset int) ([]domain.Order, int, error) {
	if user == nil || user.ID <= 0 {
		return nil, 0, errors.New("user is required")
	}

	orders, err := s.orders.ListByUser(ctx, user.ID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	count, err := s.orders.CountByUser(ctx, user.ID)
	if err != nil {
		return nil, 0, err
	}
	return orders, count, nil
}
