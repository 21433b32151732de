package middleware

import (
	"net/http"
	"strings"

	"moviedb/internal/delivery/http/response"
	domainerrors "moviedb/internal/domain/errors"
	"moviedb/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// Context keys under which the authenticated identity is stored.
const (
	KeyUserEmail = "userEmail"
	KeyUserRole  = "userRole"
)

// AuthMiddleware gates protected routes behind bearer token verification.
// Verification is stateless: signature and expiry only, no database access.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate is the core middleware function that validates the access token.
// Any missing, malformed, expired or tampered token fails closed with 401
// before the protected handler runs.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Error(c, http.StatusUnauthorized, domainerrors.ErrMissingToken.Message())
		}

		// Clients send either the raw token or the Bearer scheme; accept both.
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return response.Error(c, http.StatusUnauthorized, domainerrors.ErrInvalidToken.Message())
		}

		// Set the decoded identity on the context for handlers to use.
		c.Set(KeyUserEmail, claims.Email)
		c.Set(KeyUserRole, claims.Role)

		return next(c)
	}
}
