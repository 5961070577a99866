package validation

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/microcosm-cc/bluemonday"
)

var ErrInvalid = errors.New("validation failed")

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Tag     string `json:"-"`
}

// Errors is returned by Struct. errors.Is(err, ErrInvalid) holds for it.
type Errors []FieldError

func (e Errors) Error() string {
	parts := make([]string, 0, len(e))
	for _, fe := range e {
		parts = append(parts, fe.Field+": "+fe.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (e Errors) Is(target error) bool { return target == ErrInvalid }

// Missing reports whether any failure is an absent required field.
func (e Errors) Missing() bool {
	for _, fe := range e {
		if fe.Tag == "required" || fe.Tag == "notblank" {
			return true
		}
	}
	return false
}

var (
	once     sync.Once
	validate *validator.Validate
	strict   *bluemonday.Policy
)

func instance() *validator.Validate {
	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		// required fields must carry more than whitespace
		_ = validate.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
			return strings.TrimSpace(fl.Field().String()) != ""
		})
		strict = bluemonday.StrictPolicy()
	})
	return validate
}

// Struct validates v by its `validate` tags.
func Struct(v any) error {
	err := instance().Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	out := make(Errors, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{Field: fe.Field(), Message: message(fe), Tag: fe.Tag()})
	}
	return out
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "notblank":
		return "field is required"
	case "email":
		return "must be a valid email"
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("must not exceed %s", fe.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "gte":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "url":
		return "must be a valid URL"
	default:
		return fe.Error()
	}
}

// Sanitize strips all markup from user supplied text.
func Sanitize(s string) string {
	instance()
	return strings.TrimSpace(strict.Sanitize(s))
}
