package validation

import (
	"fmt"
	"roster/internal/config"
)

// TaskValidator provides validation for task records and logged hours
type TaskValidator struct {
	validator *Validator
}

// NewTaskValidator creates a task validator with built-in limits
func NewTaskValidator() *TaskValidator {
	return &TaskValidator{
		validator: NewValidator(),
	}
}

// NewTaskValidatorWithConfig creates a task validator that reads limits from cfg
func NewTaskValidatorWithConfig(cfg *config.Config) *TaskValidator {
	return &TaskValidator{
		validator: NewValidatorWithConfig(cfg),
	}
}

// ValidateTaskName rejects names that are empty after trimming
func (tv *TaskValidator) ValidateTaskName(name string) error {
	validationError := NewValidationError()
	if !tv.validator.IsNonEmptyString(name) {
		validationError.AddRequiredError("task_name")
	}
	return validationError.OrNil()
}

// ValidateDuration rejects durations that are zero or negative
func (tv *TaskValidator) ValidateDuration(hours int) error {
	validationError := NewValidationError()
	if !tv.validator.IsPositiveDuration(hours) {
		validationError.AddInvalidValueError("duration", hours, "must be a positive number of hours")
	}
	return validationError.OrNil()
}

// ValidateHours rejects negative amounts of logged work
func (tv *TaskValidator) ValidateHours(hours int) error {
	validationError := NewValidationError()
	if !tv.validator.IsNonNegativeHours(hours) {
		validationError.AddInvalidValueError("hours", hours, "must not be negative")
	}
	return validationError.OrNil()
}

// ValidateTaskForCreation checks the invariants every task record must hold
func (tv *TaskValidator) ValidateTaskForCreation(name string, duration int) error {
	validationError := NewValidationError()
	validationError.Merge(tv.ValidateTaskName(name))
	validationError.Merge(tv.ValidateDuration(duration))
	return validationError.OrNil()
}

// ValidateTaskLimits checks the configurable ceilings on top of the invariants
func (tv *TaskValidator) ValidateTaskLimits(name string, duration int) error {
	validationError := NewValidationError()
	validationError.Merge(tv.ValidateTaskForCreation(name, duration))

	trimmed := tv.validator.TrimAndValidateString(name)
	if trimmed != "" && !tv.validator.IsValidNameLength(trimmed) {
		validationError.AddInvalidLengthError("task_name", trimmed, tv.validator.NameMaxLength())
	}
	if duration > 0 && !tv.validator.IsWithinMaxDuration(duration) {
		validationError.AddInvalidRangeError("duration", duration,
			fmt.Sprintf("must be at most %d hours", tv.validator.MaxTaskDuration()))
	}

	return validationError.OrNil()
}

// GetValidTaskName returns a cleaned task name if valid
func (tv *TaskValidator) GetValidTaskName(name string) (string, error) {
	if err := tv.ValidateTaskName(name); err != nil {
		return "", err
	}
	return tv.validator.TrimAndValidateString(name), nil
}
