// Package validator wires go-playground/validator into echo.
package validator

import (
	"errors"
	"reflect"
	"strings"

	"saletafood/internal/util"

	"github.com/go-playground/validator/v10"
)

// CustomValidator wraps the go-playground validator for echo.
type CustomValidator struct {
	validator *validator.Validate
}

// New creates a validator with the project's custom rules registered.
func New() *CustomValidator {
	v := validator.New()

	// Failures are reported under the JSON field name the client sent,
	// not the Go struct field name.
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return field.Name
		}
		return name
	})

	// "slug" accepts lowercase letters, digits and single hyphens.
	_ = v.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
		return util.IsValidSlug(fl.Field().String())
	})

	return &CustomValidator{validator: v}
}

// Validate implements echo.Validator. Handlers turn the returned error
// into a 400 response.
func (cv *CustomValidator) Validate(i any) error {
	return cv.validator.Struct(i)
}

// FieldErrors flattens a struct validation failure into per-field
// messages keyed by JSON field name. The raw go-playground error text
// never reaches the client.
func FieldErrors(err error) map[string]string {
	fieldErrors := map[string]string{}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		fieldErrors["request"] = "invalid request payload"
		return fieldErrors
	}

	for _, fe := range verrs {
		fieldErrors[fe.Field()] = fieldMessage(fe)
	}

	return fieldErrors
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "slug":
		return fe.Field() + " must be lowercase letters, digits and single hyphens"
	case "gt":
		return fe.Field() + " must be greater than " + fe.Param()
	case "min":
		return fe.Field() + " must have at least " + fe.Param() + " items"
	default:
		return fe.Field() + " is invalid"
	}
}
