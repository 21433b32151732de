package service

import "github.com/golang-jwt/jwt/v5"

// Claims defines the custom claims embedded in access tokens.
// Email and role together form the complete stateless identity; no server-side
// session lookup happens after issuance.
type Claims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and validating bearer tokens.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// GenerateToken signs a new access token carrying the user's email and role.
	GenerateToken(email, role string) (string, error)

	// ValidateToken verifies signature and expiry and returns the decoded claims.
	ValidateToken(tokenString string) (*Claims, error)
}
