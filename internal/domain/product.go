package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a catalog entry with a fixed-point price and an inventory count.
type Product struct {
	ID          int64
	Name        string
	Description string
	Price       decimal.Decimal
	Stock       int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
