// Package handler contains the HTTP handlers for the application.
package handler

import (
	"net/http"

	"moviedb/internal/delivery/http/middleware"
	"moviedb/internal/delivery/http/response"
	domainerrors "moviedb/internal/domain/errors"
	"moviedb/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// protectedMessage is the fixed body of the token-gated demonstration route.
const protectedMessage = "Hanya user terdaftar yang bisa mengakses ini!"

// UserHandler holds dependencies for user-related handlers.
type UserHandler struct {
	uc usecase.UserUsecase
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.UserUsecase) *UserHandler {
	return &UserHandler{uc: uc}
}

// Register handles the user registration request.
// Success is 201 with an empty body; the stored record only ever holds the hash.
func (h *UserHandler) Register(c echo.Context) error {
	var input usecase.RegisterInput
	if err := c.Bind(&input); err != nil {
		return response.Error(c, http.StatusBadRequest, domainerrors.ErrValidationFailed.Message())
	}
	if err := c.Validate(&input); err != nil {
		return response.Error(c, http.StatusBadRequest, domainerrors.ErrValidationFailed.Message())
	}

	if err := h.uc.Register(c.Request().Context(), &input); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusCreated)
}

// Login handles the user login request and returns the signed token.
func (h *UserHandler) Login(c echo.Context) error {
	var input usecase.LoginInput
	if err := c.Bind(&input); err != nil {
		return response.Error(c, http.StatusBadRequest, domainerrors.ErrValidationFailed.Message())
	}
	if err := c.Validate(&input); err != nil {
		return response.Error(c, http.StatusBadRequest, domainerrors.ErrValidationFailed.Message())
	}

	output, err := h.uc.Login(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, output)
}

// ListUsers returns one page of users. Password hashes never appear in the output.
func (h *UserHandler) ListUsers(c echo.Context) error {
	page, limit := pageQuery(c)

	users, err := h.uc.ListUsers(c.Request().Context(), page, limit)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, users)
}

// Protected is the demonstration route behind the access gate.
// The gate has already verified the token and attached the identity by the
// time this runs; the body itself is fixed.
func (h *UserHandler) Protected(c echo.Context) error {
	if _, ok := c.Get(middleware.KeyUserEmail).(string); !ok {
		return response.Error(c, http.StatusUnauthorized, domainerrors.ErrInvalidToken.Message())
	}

	return response.Message(c, http.StatusOK, protectedMessage)
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.JSON(c, http.StatusOK, map[string]string{"status": "ok"})
}
