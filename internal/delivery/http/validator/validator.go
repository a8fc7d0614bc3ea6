// Package validator adapts go-playground/validator to echo's Validator interface.
package validator

import (
	domainerrors "savor/internal/domain/errors"

	"github.com/go-playground/validator/v10"
)

// CustomValidator wraps a single validator instance shared by all requests.
type CustomValidator struct {
	validate *validator.Validate
}

// New creates the echo request validator.
func New() *CustomValidator {
	return &CustomValidator{validate: validator.New()}
}

// Validate implements echo.Validator. Failures surface as InvalidInput so the
// error middleware renders a 400 envelope.
func (cv *CustomValidator) Validate(i any) error {
	if err := cv.validate.Struct(i); err != nil {
		return domainerrors.ErrInvalidInput.WithDetails(err.Error())
	}

	return nil
}
