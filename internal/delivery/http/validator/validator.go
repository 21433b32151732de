// Package validator adapts go-playground/validator to echo's Validator interface.
package validator

import (
	validatorlib "github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type echoValidator struct {
	validate *validatorlib.Validate
}

// New builds the validator echo uses for c.Validate calls.
func New() echo.Validator {
	return &echoValidator{validate: validatorlib.New()}
}

// Validate checks the struct tags of the bound request DTO.
func (v *echoValidator) Validate(i any) error {
	return v.validate.Struct(i)
}
