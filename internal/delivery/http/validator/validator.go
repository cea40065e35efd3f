// Package validator adapts go-playground/validator to Echo's Validator
// interface.
package validator

import (
	domainerrors "mugclub/internal/domain/errors"

	playground "github.com/go-playground/validator/v10"
)

// EchoValidator wraps a validator instance for echo.Echo#Validator.
type EchoValidator struct {
	validate *playground.Validate
}

// New builds the validator used by every handler's c.Validate call.
func New() *EchoValidator {
	return &EchoValidator{validate: playground.New(playground.WithRequiredStructEnabled())}
}

// Validate runs struct tag validation and maps failures onto the API's
// validation error so the error handler renders a "fail" envelope.
func (v *EchoValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
