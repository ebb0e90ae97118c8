package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"

	"storefront/internal/domain"
)

type fakeOrderRepo struct {
	created   []domain.OrderItemInput
	reference string
	userID    int64
}

func (r *fakeOrderRepo) Init(ctx context.Context) error { return nil }

func (r *fakeOrderRepo) Create(ctx context.Context, userID int64, reference string, items []domain.OrderItemInput) (*domain.Order, error) {
	r.userID = userID
	r.reference = reference
	r.created = items
	return &domain.Order{
		ID:        1,
		Reference: reference,
		UserID:    userID,
		Total:     decimal.NewFromInt(30),
		Status:    domain.OrderStatusPending,
	}, nil
}

func (r *fakeOrderRepo) Get(ctx context.Context, id int64) (*domain.Order, error) {
	return nil, domain.ErrOrderConflict
}

func (r *fakeOrderRepo) ListByUser(ctx context.Context, userID int64, limit, offset int) ([]domain.Order, error) {
	return nil, nil
}

func (r *fakeOrderRepo) CountByUser(ctx context.Context, userID int64) (int, error) {
	return 0, nil
}

func TestCreateOrderValidation(t *testing.T) {
	repo := &fakeOrderRepo{}
	svc := NewOrderService(repo)
	user := &domain.User{ID: 1, Username: "alice"}

	cases := []struct {
		name  string
		user  *domain.User
		items []domain.OrderItemInput
	}{
		{"nil user", nil, []domain.OrderItemInput{{ProductID: 1, Quantity: 1}}},
		{"empty items", user, nil},
		{"zero quantity", user, []domain.OrderItemInput{{ProductID: 1, Quantity: 0}}},
		{"negative quantity", user, []domain.OrderItemInput{{ProductID: 1, Quantity: -3}}},
		{"bad product id", user, []domain.OrderItemInput{{ProductID: 0, Quantity: 1}}},
	}
	for _, tc := range cases {
		if _, err := svc.CreateOrder(context.Background(), tc.user, tc.items); err == nil {
			t.Errorf("%s: expected error", tc.name)
		}
	}
	if repo.created != nil {
		t.Fatal("repository must not be reached for invalid requests")
	}
}

func TestCreateOrderMintsReference(t *testing.T) {
	repo := &fakeOrderRepo{}
	svc := NewOrderService(repo)

	order, err := svc.CreateOrder(context.Background(), &domain.User{ID: 9}, []domain.OrderItemInput{{ProductID: 1, Quantity: 2}})
	if err != nil {
		t.Fatalf("create order: %v", err)
	}
	if repo.userID != 9 {
		t.Fatalf("expected user id 9, got %d", repo.userID)
	}
	if repo.reference == "" || order.Reference != repo.reference {
		t.Fatalf("expected a minted reference, got %q", repo.reference)
	}
}
