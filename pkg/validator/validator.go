package validator

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

type CustomValidator struct {
	validator *validator.Validate
}

func NewValidator() *CustomValidator {
	v := validator.New()
	// Report fields by their query parameter or JSON name.
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		for _, tag := range []string{"schema", "json"} {
			name := strings.SplitN(field.Tag.Get(tag), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}
		return field.Name
	})

	return &CustomValidator{
		validator: v,
	}
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

func (cv *CustomValidator) FormatValidationErrors(err error) map[string]string {
	errors := make(map[string]string)

	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, e := range validationErrors {
			field := e.Field()
			switch e.Tag() {
			case "required":
				errors[field] = field + " is required"
			case "required_if":
				errors[field] = field + " is required for this event type"
			case "oneof":
				errors[field] = field + " must be one of " + e.Param()
			case "max":
				if e.Kind() == reflect.Slice {
					errors[field] = field + " must have at most " + e.Param() + " values"
				} else {
					errors[field] = field + " must be at most " + e.Param() + " characters"
				}
			default:
				errors[field] = field + " is invalid"
			}
		}
	}

	return errors
}
