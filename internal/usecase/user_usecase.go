// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new user.
// Gender and role are free-text and stored verbatim.
type RegisterInput struct {
	Email    string `json:"email" validate:"required,email"`
	Gender   string `json:"gender"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role"`
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// --- Output DTOs ---

// LoginOutput returns the signed bearer token after a successful login.
type LoginOutput struct {
	Token string `json:"token"`
}

// UserOutput is the listing representation of a user.
// The password hash is deliberately excluded.
type UserOutput struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Gender    string    `json:"gender"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// UserUsecase defines the interface for user-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	// Register hashes the password and persists a new user record.
	Register(ctx context.Context, input *RegisterInput) error

	// Login verifies credentials and issues a signed bearer token.
	// No token is ever issued without a successful hash comparison.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// ListUsers returns one page of users. Page numbering starts at 1.
	ListUsers(ctx context.Context, page, limit int) ([]*UserOutput, error)
}
