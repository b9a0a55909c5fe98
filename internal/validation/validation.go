// Package validation validates request payloads with struct tags.
//
// Field names in messages come from the `label` tag, falling back to the json
// name. Only the first failing field is reported, matching what forms display.
package validation

import (
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// emailPattern is deliberately loose: something@something.tld without whitespace.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

var (
	validate *validator.Validate
	once     sync.Once
)

// Error describes the first field that failed validation.
type Error struct {
	Field   string
	Message string
}

func (e *Error) Error() string { return e.Message }

func getValidator() *validator.Validate {
	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())

		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			if label := fld.Tag.Get("label"); label != "" {
				return label
			}
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return fld.Name
			}
			return name
		})

		_ = validate.RegisterValidation("loose_email", func(fl validator.FieldLevel) bool {
			return emailPattern.MatchString(fl.Field().String())
		})
	})
	return validate
}

// Validate checks s against its `validate` tags. It returns nil or an *Error.
func Validate(s any) error {
	err := getValidator().Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if ve, ok := err.(validator.ValidationErrors); ok {
		fieldErrs = ve
	}
	if len(fieldErrs) == 0 {
		return &Error{Message: "validation failed"}
	}

	e := fieldErrs[0]
	return &Error{Field: e.StructField(), Message: format(e)}
}

// IsEmail reports whether s looks like an email address.
func IsEmail(s string) bool {
	return emailPattern.MatchString(s)
}

func format(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return e.Field() + " is required"
	case "loose_email", "email":
		return "Please enter a valid email address"
	case "max":
		return e.Field() + " must be at most " + e.Param() + " characters"
	case "uuid":
		return "Invalid " + strings.ToLower(e.Field())
	default:
		return e.Field() + " is invalid"
	}
}
