package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"storefront/internal/domain"
	"storefront/internal/repository"
)

const (
	createOrdersTable = `
CREATE TABLE IF NOT EXISTS orders (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	reference TEXT NOT NULL UNIQUE,
	user_id INTEGER NOT NULL REFERENCES users(id),
	total TEXT NOT NULL,
	status TEXT NOT NULL,
	created_at DATETIME NOT NULL
);
`
	createOrderItemsTable = `
CREATE TABLE IF NOT EXISTS order_items (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	order_id INTEGER NOT NULL REFERENCES orders(id),
	product_id INTEGER NOT NULL REFERENCES products(id),
	quantity INTEGER NOT NULL,
	price TEXT NOT NULL
);
`
)

type OrderRepository struct {
	db *sql.DB
}

func NewOrderRepository(db *sql.DB) repository.OrderRepository {
	return &OrderRepository{db: db}
}

func (r *OrderRepository) Init(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, createOrdersTable); err != nil {
		return fmt.Errorf("create orders table: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, createOrderItemsTable); err != nil {
		return fmt.Errorf("create order items table: %w", err)
	}
	return nil
}

// Create writes an order, its items and the matching stock decrements in one
// transaction. Stock is checked before any mutation; the decrement itself is
// guarded with "stock >= ?" so a concurrent writer that raced past the check
// rolls the whole order back instead of overselling.
func (r *OrderRepository) Create(ctx context.Context, userID int64, reference string, items []domain.OrderItemInput) (*domain.Order, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin order tx: %w", err)
	}
	defer tx.Rollback()

	type resolved struct {
		input domain.OrderItemInput
		name  string
		price decimal.Decimal
	}

	total := decimal.Zero
	line := make([]resolved, 0, len(items))
	for _, item := range items {
		var (
			name     string
			priceStr string
			stock    int
		)
		err := tx.QueryRowContext(ctx, `
SELECT name, price, stock FROM products WHERE id = ?`,
			item.ProductID,
		).Scan(&name, &priceStr, &stock)
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrProductNotFound
		}
		if err != nil {
			return nil, fmt.Errorf("resolve product %d: %w", item.ProductID, err)
		}

		if stock < item.Quantity {
			return nil, &domain.InsufficientStockError{ProductName: name}
		}

		price, err := decimal.NewFromString(priceStr)
		if err != nil {
			return nil, fmt.Errorf("parse price for product %d: %w", item.ProductID, err)
		}

		total = total.Add(price.Mul(decimal.NewFromInt(int64(item.Quantity))))
		line = append(line, resolved{input: item, name: name, price: price})
	}

	now := time.Now().UTC()
	order := &domain.Order{
		Reference: reference,
		UserID:    userID,
		Total:     total,
		Status:    domain.OrderStatusPending,
		CreatedAt: now,
	}

	res, err := tx.ExecContext(ctx, `
INSERT INTO orders (reference, user_id, total, status, created_at)
VALUES (?, ?, ?, ?, ?)`,
		order.Reference, order.UserID, order.Total.String(), string(order.Status), order.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("insert order: %w", err)
	}
	orderID, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("order last insert id: %w", err)
	}
	order.ID = orderID

	for _, l := range line {
		res, err := tx.ExecContext(ctx, `
INSERT INTO order_items (order_id, product_id, quantity, price)
VALUES (?, ?, ?, ?)`,
			orderID, l.input.ProductID, l.input.Quantity, l.price.String(),
		)
		if err != nil {
			return nil, fmt.Errorf("insert order item: %w", err)
		}
		itemID, err := res.LastInsertId()
		if err != nil {
			return nil, fmt.Errorf("order item last insert id: %w", err)
		}

		ct, err := tx.ExecContext(ctx, `
UPDATE products SET stock = stock - ?, updated_at = ? WHERE id = ? AND stock >= ?`,
			l.input.Quantity, now, l.input.ProductID, l.input.Quantity,
		)
		if err != nil {
			return nil, fmt.Errorf("decrement stock: %w", err)
		}
		affected, err := ct.RowsAffected()
		if err != nil {
			return nil, fmt.Errorf("decrement rows affected: %w", err)
		}
		if affected != 1 {
			// stock changed under us between check and decrement
			return nil, domain.ErrOrderConflict
		}

		order.Items = append(order.Items, domain.OrderItem{
			ID:        itemID,
			OrderID:   orderID,
			ProductID: l.input.ProductID,
			Quantity:  l.input.Quantity,
			Price:     l.price,
		})
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit order: %w", err)
	}
	return order, nil
}

func (r *OrderRepository) Get(ctx context.Context, id int64) (*domain.Order, error) {
	row := r.db.QueryRowContext(ctx, `
SELECT id, reference, user_id, total, status, created_at
FROM orders
WHERE id = ?`,
		id,
	)
	order, err := scanOrder(row)
	if err != nil {
		return nil, err
	}

	items, err := r.listItems(ctx, order.ID)
	if err != nil {
		return nil, err
	}
	order.Items = items
	return order, nil
}

func (r *OrderRepository) ListByUser(ctx context.Context, userID int64, limit, offset int) ([]domain.Order, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT id, reference, user_id, total, status, created_at
FROM orders
WHERE user_id = ?
ORDER BY id DESC
LIMIT ? OFFSET ?`,
		userID, limit, offset,
	)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, *order)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate orders: %w", err)
	}

	for i := range orders {
		items, err := r.listItems(ctx, orders[i].ID)
		if err != nil {
			return nil, err
		}
		orders[i].Items = items
	}
	return orders, nil
}

func (r *OrderRepository) CountByUser(ctx context.Context, userID int64) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM orders WHERE user_id = ?`, userID).Scan(&count); err != nil {
		return 0, fmt.Errorf("count orders: %w", err)
	}
	return count, nil
}

func (r *OrderRepository) listItems(ctx context.Context, orderID int64) ([]domain.OrderItem, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT id, order_id, product_id, quantity, price
FROM order_items
WHERE order_id = ?
ORDER BY id`,
		orderID,
	)
	if err != nil {
		return nil, fmt.Errorf("list order items: %w", err)
	}
	defer rows.Close()

	var items []domain.OrderItem
	for rows.Next() {
		var (
			item     domain.OrderItem
			priceStr string
		)
		if err := rows.Scan(&item.ID, &item.OrderID, &item.ProductID, &item.Quantity, &priceStr); err != nil {
			return nil, fmt.Errorf("scan order item: %w", err)
		}
		price, err := decimal.NewFromString(priceStr)
		if err != nil {
			return nil, fmt.Errorf("parse order item price: %w", err)
		}
		item.Price = price
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate order items: %w", err)
	}
	return items, nil
}

func scanOrder(row interface {
	Scan(dest ...any) error
}) (*domain.Order, error) {
	var (
		order    domain.Order
		totalStr string
		status   string
	)
	if err := row.Scan(
		&order.ID,
		&order.Reference,
		&order.UserID,
		&totalStr,
		&status,
		&order.CreatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("order not found")
		}
		return nil, fmt.Errorf("scan order: %w", err)
	}

	total, err := decimal.NewFromString(totalStr)
	if err != nil {
		return nil, fmt.Errorf("parse order total: %w", err)
	}
	order.Total = total
	order.Status = domain.OrderStatus(status)
	return &order, nil
}
