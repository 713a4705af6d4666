package validation

import (
	"errors"
	"fmt"
	"strings"
)

// ValidationErrorType names the rule a field broke
type ValidationErrorType string

const (
	ErrorTypeRequired      ValidationErrorType = "required"
	ErrorTypeInvalidLength ValidationErrorType = "invalid_length"
	ErrorTypeInvalidValue  ValidationErrorType = "invalid_value"
	ErrorTypeInvalidRange  ValidationErrorType = "invalid_range"
)

// fieldLabels maps field keys to the words shown to users
var fieldLabels = map[string]string{
	"task_name":    "task name",
	"hours_worked": "hours worked",
}

func label(field string) string {
	if text, ok := fieldLabels[field]; ok {
		return text
	}
	return field
}

// FieldError is one broken rule on one field
type FieldError struct {
	Field   string
	Type    ValidationErrorType
	Message string
	Value   any
}

func (fe *FieldError) Error() string {
	return fmt.Sprintf("validation error for field '%s': %s", fe.Field, fe.Message)
}

// ValidationError collects every field problem found in one input.
type ValidationError struct {
	Errors []FieldError
}

func NewValidationError() *ValidationError {
	return &ValidationError{Errors: make([]FieldError, 0)}
}

func (ve *ValidationError) Error() string {
	switch len(ve.Errors) {
	case 0:
		return "validation error"
	case 1:
		return ve.Errors[0].Error()
	}

	messages := make([]string, len(ve.Errors))
	for i := range ve.Errors {
		messages[i] = ve.Errors[i].Error()
	}
	return "multiple validation errors: " + strings.Join(messages, "; ")
}

// IsValidationError reports whether err or anything it wraps is a
// ValidationError
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

func (ve *ValidationError) HasErrors() bool {
	return len(ve.Errors) > 0
}

// OrNil returns ve when it holds errors, nil otherwise.
func (ve *ValidationError) OrNil() error {
	if ve.HasErrors() {
		return ve
	}
	return nil
}

// Merge appends the field errors of other when it is a *ValidationError.
func (ve *ValidationError) Merge(other error) {
	var otherErr *ValidationError
	if errors.As(other, &otherErr) {
		ve.Errors = append(ve.Errors, otherErr.Errors...)
	}
}

func (ve *ValidationError) AddError(field string, errorType ValidationErrorType, message string, value any) {
	ve.Errors = append(ve.Errors, FieldError{
		Field:   field,
		Type:    errorType,
		Message: message,
		Value:   value,
	})
}

func (ve *ValidationError) AddRequiredError(field string) {
	ve.AddError(field, ErrorTypeRequired, label(field)+" is required", nil)
}

func (ve *ValidationError) AddInvalidLengthError(field string, value any, max int) {
	ve.AddError(field, ErrorTypeInvalidLength, fmt.Sprintf("%s must be at most %d characters long", label(field), max), value)
}

func (ve *ValidationError) AddInvalidValueError(field string, value any, reason string) {
	ve.AddError(field, ErrorTypeInvalidValue, fmt.Sprintf("%s has invalid value: %s", label(field), reason), value)
}

func (ve *ValidationError) AddInvalidRangeError(field string, value any, reason string) {
	ve.AddError(field, ErrorTypeInvalidRange, fmt.Sprintf("%s is out of range: %s", label(field), reason), value)
}

// GetFieldErrors returns the errors recorded against field
func (ve *ValidationError) GetFieldErrors(field string) []FieldError {
	var fieldErrors []FieldError
	for _, err := range ve.Errors {
		if err.Field == field {
			fieldErrors = append(fieldErrors, err)
		}
	}
	return fieldErrors
}

// GetUserFriendlyMessage joins the field messages for display. A single
// problem is shown on its own line.
func (ve *ValidationError) GetUserFriendlyMessage() string {
	switch len(ve.Errors) {
	case 0:
		return "Input validation failed"
	case 1:
		return ve.Errors[0].Message
	}

	var b strings.Builder
	b.WriteString("Multiple validation errors occurred:")
	for _, err := range ve.Errors {
		b.WriteString("\n- ")
		b.WriteString(err.Message)
	}
	return b.String()
}
