// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User represents a registered account. The password is stored only as a
// one-way bcrypt hash, computed once at registration and immutable afterwards.
type User struct {
	ID           uuid.UUID // The Global Unique Identifier (GUID) for the user.
	Email        string    // Unique login identifier, matched exactly (case-sensitive).
	Gender       string    // Free-text attribute, no validation beyond presence of the field.
	PasswordHash string    // bcrypt hash of the password. Never the plaintext.
	Role         string    // Free-text role, carried verbatim into token claims.
	CreatedAt    time.Time // Timestamp of when this account was created.
	UpdatedAt    time.Time // Timestamp of the last modification.
}
