package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	// OrderStatusPending is the only status assigned today; fulfillment
	// states can be added without touching the schema.
	OrderStatusPending OrderStatus = "pending"
)

// Order is a purchase placed by a user. Orders are immutable once created.
type Order struct {
	ID        int64
	Reference string
	UserID    int64
	Total     decimal.Decimal
	Status    OrderStatus
	CreatedAt time.Time
	Items     []OrderItem
}

// OrderItem is one product line within an order. Price is the product's
// price at the moment the order was placed and never changes afterwards.
type OrderItem struct {
	ID        int64
	OrderID   int64
	ProductID int64
	Quantity  int
	Price     decimal.Decimal
}

// OrderItemInput is a requested line item before the product is resolved.
type OrderItemInput struct {
	ProductID int64
	Quantity  int
}
