package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrUserNotFound is returned when a user id or username does not resolve.
	ErrUserNotFound = errors.New("user not found")
	// ErrProductNotFound is returned when a product id does not resolve.
	ErrProductNotFound = errors.New("product not found")
	// ErrOrderConflict indicates a concurrent modification made the order
	// transaction impossible to commit; the whole order was rolled back.
	ErrOrderConflict = errors.New("order creation failed")
)

// InsufficientStockError reports the first requested item whose quantity
// exceeds the product's available stock.
type InsufficientStockError struct {
	ProductName string
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for %s", e.ProductName)
}
