package errors

import (
	"context"
	"errors"
	"fmt"
)

// Codes carried by AppError.Code
const (
	CodeValidation   = "VALIDATION_FAILED"
	CodeNotFound     = "NOT_FOUND"
	CodeDatabase     = "DATABASE_ERROR"
	CodeInvalidInput = "INVALID_INPUT"
	CodeUnknown      = "UNKNOWN_ERROR"
)

// Sentinels usable with errors.Is; AppError.Is compares type and code.
var (
	ErrValidation = &AppError{Type: ErrorTypeValidation, Code: CodeValidation}
	ErrNotFound   = &AppError{Type: ErrorTypeNotFound, Code: CodeNotFound}
)

func newAppError(errorType ErrorType, code, message string, cause error) *AppError {
	return &AppError{
		Type:    errorType,
		Message: message,
		Code:    code,
		Cause:   cause,
		Context: make(map[string]any),
	}
}

// NewValidationError reports input rejected by an invariant. cause is
// usually a *validation.ValidationError with the field details.
func NewValidationError(message string, cause error) *AppError {
	return newAppError(ErrorTypeValidation, CodeValidation, message, cause)
}

// NewNotFoundError reports a lookup miss for resource
func NewNotFoundError(resource string, identifier string) *AppError {
	return newAppError(ErrorTypeNotFound, CodeNotFound, fmt.Sprintf("%s not found: %s", resource, identifier), nil).
		WithContext("resource", resource).
		WithContext("identifier", identifier)
}

// NewEmployeeNotFoundError reports an identifier that was never assigned.
func NewEmployeeNotFoundError(id int) *AppError {
	return NewNotFoundError("employee", fmt.Sprintf("%d", id))
}

// NewAssignmentNotFoundError reports a task position outside an employee's
// list. position is the 1-based number shown to users.
func NewAssignmentNotFoundError(employeeID int, position int) *AppError {
	return NewNotFoundError("task", fmt.Sprintf("#%d for employee %d", position, employeeID)).
		WithContext("employee_id", employeeID).
		WithContext("position", position)
}

// NewDatabaseError wraps a storage failure during operation
func NewDatabaseError(operation string, cause error) *AppError {
	return newAppError(ErrorTypeDatabase, CodeDatabase, fmt.Sprintf("database operation failed: %s", operation), cause).
		WithContext("operation", operation)
}

// NewInvalidInputError reports caller text that could not be parsed
func NewInvalidInputError(field string, value any, reason string) *AppError {
	return newAppError(ErrorTypeInvalidInput, CodeInvalidInput, fmt.Sprintf("invalid input for %s: %s", field, reason), nil).
		WithContext("field", field).
		WithContext("value", value).
		WithContext("reason", reason)
}

func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// AsAppError finds the first AppError in err's chain
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

func IsErrorType(err error, errorType ErrorType) bool {
	if appErr, ok := AsAppError(err); ok {
		return appErr.IsType(errorType)
	}
	return false
}

// IsValidation reports whether err is a rejected-input validation failure.
func IsValidation(err error) bool {
	return IsErrorType(err, ErrorTypeValidation)
}

// IsNotFound reports whether err is a lookup miss.
func IsNotFound(err error) bool {
	return IsErrorType(err, ErrorTypeNotFound)
}

// GetUserMessage returns the text shown to users. Storage details stay in
// the logs.
func GetUserMessage(err error) string {
	appErr, ok := AsAppError(err)
	if !ok {
		return err.Error()
	}

	switch appErr.Type {
	case ErrorTypeValidation, ErrorTypeNotFound, ErrorTypeInvalidInput:
		return appErr.Message
	case ErrorTypeDatabase:
		if errors.Is(err, context.DeadlineExceeded) {
			return "The database did not respond in time. Please try again."
		}
		return "A database error occurred. Please try again."
	default:
		return "An unexpected error occurred. Please try again."
	}
}

func GetErrorCode(err error) string {
	if appErr, ok := AsAppError(err); ok {
		return appErr.Code
	}
	return CodeUnknown
}

// ShouldLogError reports whether err is a system failure rather than a
// user mistake
func ShouldLogError(err error) bool {
	switch {
	case IsValidation(err), IsNotFound(err), IsErrorType(err, ErrorTypeInvalidInput):
		return false
	default:
		return true
	}
}
