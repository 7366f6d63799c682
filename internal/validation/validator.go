// Package validation adapts go-playground validation to echo's Validator
// interface and shapes violations into a client-friendly payload.
package validation

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type violation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// PayloadError aggregates every constraint violation of one request
// payload. The error handler renders it as a 400 with the violations
// listed per field.
type PayloadError struct {
	violations []violation
}

func (e *PayloadError) Error() string {
	var b strings.Builder
	for _, v := range e.violations {
		b.WriteString(v.Message)
		b.WriteString("\n")
	}
	return b.String()
}

func (e *PayloadError) Violation(v violation) {
	e.violations = append(e.violations, v)
}

func (e *PayloadError) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Errors []violation `json:"errors"`
	}{
		Errors: e.violations,
	})
}

type EchoValidator struct {
	validator  *validator.Validate
	translator ut.Translator
}

func Echo(validator *validator.Validate, translator ut.Translator) *EchoValidator {
	return &EchoValidator{
		validator:  validator,
		translator: translator,
	}
}

func (v *EchoValidator) Validate(i any) error {
	err := v.validator.Struct(i)
	if err == nil {
		return nil
	}

	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		return v.payloadError(ve)
	}

	return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
}

func (v *EchoValidator) payloadError(ve validator.ValidationErrors) error {
	pldErr := &PayloadError{violations: make([]violation, 0)}
	for _, e := range ve {
		pldErr.Violation(violation{
			Field:   e.Field(),
			Message: e.Translate(v.translator),
		})
	}
	return pldErr
}
