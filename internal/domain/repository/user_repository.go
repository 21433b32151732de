// Package repository defines the persistence interfaces the domain depends on.
// Concrete implementations live in internal/infra/persistence.
package repository

import (
	"context"

	"moviedb/internal/domain/entity"
	"moviedb/internal/errors"
)

// ErrUserNotFound is returned when no user matches the lookup key.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines persistence operations for user accounts.
type UserRepository interface {
	// Create persists a new user record. The entity's ID and timestamps are
	// populated from the database on success.
	Create(ctx context.Context, user *entity.User) error

	// FindByEmail retrieves a single user by exact email match.
	// Returns ErrUserNotFound when no record exists.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// List returns a page of users in the store's natural order.
	List(ctx context.Context, offset, limit int) ([]*entity.User, error)
}
