package command

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"

	"atelier-storefront/pkg/apierror"
)

var validate = validator.New()

type credentialsInput struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=8"`
}

type emailInput struct {
	Email string `validate:"required,email"`
}

// checkInput validates before any network call and converts the first failure
// into a field-scoped validation error.
func checkInput(input any) error {
	err := validate.Struct(input)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return apierror.New(apierror.CodeValidation, "invalid input")
	}

	first := fieldErrs[0]
	field := strings.ToLower(first.Field())

	switch first.Tag() {
	case "required":
		return apierror.NewField(field, "is required")
	case "email":
		return apierror.NewField(field, "must be a valid email address")
	case "min":
		return apierror.NewField(field, "must be at least "+first.Param()+" characters")
	default:
		return apierror.NewField(field, "is invalid")
	}
}
