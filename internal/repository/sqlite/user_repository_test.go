package sqlite

import (
	"context"
	"errors"
	"strings"
	"testing"

	"storefront/internal/domain"
)

func TestUserRepositoryRoundTrip(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	users := NewUserRepository(db)
	if err := users.Init(ctx); err != nil {
		t.Fatalf("init: %v", err)
	}

	user := &domain.User{Username: "alice", Email: "alice@example.com", PasswordHash: "hash"}
	id, err := users.Create(ctx, user)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if id <= 0 {
		t.Fatalf("expected positive id, got %d", id)
	}

	byName, err := users.GetByUsername(ctx, "alice")
	if err != nil {
		t.Fatalf("get by username: %v", err)
	}
	byEmail, err := users.GetByEmail(ctx, "alice@example.com")
	if err != nil {
		t.Fatalf("get by email: %v", err)
	}
	byID, err := users.GetByID(ctx, id)
	if err != nil {
		t.Fatalf("get by id: %v", err)
	}
	for _, got := range []*domain.User{byName, byEmail, byID} {
		if got.ID != id || got.Username != "alice" || got.Email != "alice@example.com" {
			t.Fatalf("unexpected user %+v", got)
		}
	}
}

func TestUserRepositoryNotFound(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	users := NewUserRepository(db)
	if err := users.Init(ctx); err != nil {
		t.Fatalf("init: %v", err)
	}

	if _, err := users.GetByUsername(ctx, "nobody"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
	if _, err := users.GetByEmail(ctx, "nobody@example.com"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
	if _, err := users.GetByID(ctx, 99); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserRepositoryUniqueConstraints(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	users := NewUserRepository(db)
	if err := users.Init(ctx); err != nil {
		t.Fatalf("init: %v", err)
	}

	if _, err := users.Create(ctx, &domain.User{Username: "alice", Email: "alice@example.com", PasswordHash: "hash"}); err != nil {
		t.Fatalf("create: %v", err)
	}

	_, err := users.Create(ctx, &domain.User{Username: "alice", Email: "other@example.com", PasswordHash: "hash"})
	if err == nil || !strings.Contains(strings.ToLower(err.Error()), "unique") {
		t.Fatalf("expected unique violation on username, got %v", err)
	}

	_, err = users.Create(ctx, &domain.User{Username: "bob", Email: "alice@example.com", PasswordHash: "hash"})
	if err == nil || !strings.Contains(strings.ToLower(err.Error()), "unique") {
		t.Fatalf("expected unique violation on email, got %v", err)
	}
}
