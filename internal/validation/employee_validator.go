package validation

import (
	"roster/internal/config"
)

// EmployeeValidator provides validation for employee records
type EmployeeValidator struct {
	validator *Validator
}

// NewEmployeeValidator creates an employee validator with built-in limits
func NewEmployeeValidator() *EmployeeValidator {
	return &EmployeeValidator{validator: NewValidator()}
}

// NewEmployeeValidatorWithConfig creates an employee validator that reads limits from cfg
func NewEmployeeValidatorWithConfig(cfg *config.Config) *EmployeeValidator {
	return &EmployeeValidator{validator: NewValidatorWithConfig(cfg)}
}

// ValidateEmployee requires both name and department to be non-empty after trimming.
// Both fields are checked so the caller sees every problem at once.
func (ev *EmployeeValidator) ValidateEmployee(name, department string) error {
	validationError := NewValidationError()
	if !ev.validator.IsNonEmptyString(name) {
		validationError.AddRequiredError("name")
	}
	if !ev.validator.IsNonEmptyString(department) {
		validationError.AddRequiredError("department")
	}
	return validationError.OrNil()
}

// ValidateEmployeeLimits adds the configured length ceilings to ValidateEmployee
func (ev *EmployeeValidator) ValidateEmployeeLimits(name, department string) error {
	validationError := NewValidationError()
	validationError.Merge(ev.ValidateEmployee(name, department))

	maxLen := ev.validator.NameMaxLength()
	if ev.validator.IsNonEmptyString(name) && !ev.validator.IsValidNameLength(name) {
		validationError.AddInvalidLengthError("name", ev.validator.TrimAndValidateString(name), maxLen)
	}
	if ev.validator.IsNonEmptyString(department) && !ev.validator.IsValidNameLength(department) {
		validationError.AddInvalidLengthError("department", ev.validator.TrimAndValidateString(department), maxLen)
	}
	return validationError.OrNil()
}

// ValidateEmployeeID validates an employee identifier
func (ev *EmployeeValidator) ValidateEmployeeID(id int) error {
	if !ev.validator.IsValidEmployeeID(id) {
		validationError := NewValidationError()
		validationError.AddInvalidValueError("employee_id", id, "must be a positive integer")
		return validationError
	}
	return nil
}

// GetValidEmployee returns the trimmed name and department if both are valid
func (ev *EmployeeValidator) GetValidEmployee(name, department string) (string, string, error) {
	if err := ev.ValidateEmployee(name, department); err != nil {
		return "", "", err
	}
	return ev.validator.TrimAndValidateString(name), ev.validator.TrimAndValidateString(department), nil
}
