package handler

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FormValidator plugs go-playground/validator into echo so form DTOs
// can declare their rules as struct tags.
type FormValidator struct {
	validate *validator.Validate
}

// NewFormValidator builds the validator used for every bound form.
func NewFormValidator() *FormValidator {
	return &FormValidator{validate: validator.New()}
}

// Validate implements echo.Validator.
func (v *FormValidator) Validate(i any) error {
	return v.validate.Struct(i)
}

// validationMessage turns the first field violation into a sentence a
// user can act on. Validation failures never leave the browser: they
// are reported before any backend call is attempted.
func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err.Error()
	}
	fe := verrs[0]
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", field)
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	case "eqfield":
		return "the entered values do not match"
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
