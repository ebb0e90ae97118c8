package repository

import (
	"context"

	"storefront/internal/domain"
)

// OrderRepository persists orders together with their line items.
//
// Create is a single transactional unit: it resolves every requested
// product, verifies stock, snapshots prices, writes the order and its
// items and decrements stock — or does none of it.
type OrderRepository interface {
	Init(ctx context.Context) error
	Create(ctx context.Context, userID int64, reference string, items []domain.OrderItemInput) (*domain.Order, error)
	Get(ctx context.Context, id int64) (*domain.Order, error)
	ListByUser(ctx context.Context, userID int64, limit, offset int) ([]domain.Order, error)
	CountByUser(ctx context.Context, userID int64) (int, error)
}
