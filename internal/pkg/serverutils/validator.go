package serverutils

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"moodmovie-be/pkg/recommend"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// FieldError is one failed validation rule.
type FieldError struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Message string `json:"message"`
}

// RequestValidationError unwraps to recommend.ErrValidation so the error handler
// maps it to 400 like any other validation failure.
type RequestValidationError struct {
	Fields []FieldError
}

func (e *RequestValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	msgs := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		msgs[i] = f.Message
	}
	return strings.Join(msgs, "; ")
}

func (e *RequestValidationError) Unwrap() error {
	return recommend.ErrValidation
}

func GetValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		_ = validate.RegisterValidation("mood", func(fl validator.FieldLevel) bool {
			_, ok := recommend.ParseMood(fl.Field().String())
			return ok
		})
		_ = validate.RegisterValidation("energy", func(fl validator.FieldLevel) bool {
			_, ok := recommend.ParseEnergy(fl.Field().String())
			return ok
		})
	})
	return validate
}

func ValidateRequest(req interface{}) error {
	err := GetValidator().Struct(req)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return &RequestValidationError{Fields: []FieldError{{Field: "request", Tag: "invalid", Message: err.Error()}}}
	}

	out := make([]FieldError, len(fieldErrs))
	for i, fe := range fieldErrs {
		out[i] = FieldError{Field: fe.Field(), Tag: fe.Tag(), Message: translate(fe)}
	}
	return &RequestValidationError{Fields: out}
}

var messageTemplates = map[string]string{
	"required":         "%s is required",
	"required_without": "%s is required",
	"mood":             "%s must be one of: " + strings.Join(recommend.MoodStrings(), ", "),
	"energy":           "%s must be one of: " + strings.Join(recommend.EnergyStrings(), ", "),
	"excludesall":      "%s contains disallowed characters",
	"uuid":             "%s must be a valid id",
}

func translate(fe validator.FieldError) string {
	if tpl, ok := messageTemplates[fe.Tag()]; ok {
		return fmt.Sprintf(tpl, fe.Field())
	}
	isString := fe.Kind().String() == "string"
	switch fe.Tag() {
	case "min":
		if isString {
			return fmt.Sprintf("%s must be at least %s characters", fe.Field(), fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	case "max":
		if isString {
			return fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param())
		}
		return fmt.Sprintf("%s must be at most %s", fe.Field(), fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s failed %s validation", fe.Field(), fe.Tag())
	}
}
