package validation

import (
	"strings"
	"unicode/utf8"

	"roster/internal/config"
)

const (
	defaultNameMaxLength   = 255
	defaultMaxTaskDuration = 10000
)

// Validator provides common validation utilities
type Validator struct {
	config *config.Config
}

// NewValidator creates a validator that uses the built-in limits
func NewValidator() *Validator {
	return &Validator{}
}

// NewValidatorWithConfig creates a validator that reads limits from cfg
func NewValidatorWithConfig(cfg *config.Config) *Validator {
	return &Validator{config: cfg}
}

// IsNonEmptyString checks if a string is not empty after trimming whitespace
func (v *Validator) IsNonEmptyString(s string) bool {
	return strings.TrimSpace(s) != ""
}

// IsValidNameLength checks a trimmed name against the configured maximum.
// Length is counted in runes so accented names are not penalised.
func (v *Validator) IsValidNameLength(s string) bool {
	return utf8.RuneCountInString(strings.TrimSpace(s)) <= v.NameMaxLength()
}

// IsPositiveDuration checks that a task duration in hours is usable as a divisor.
func (v *Validator) IsPositiveDuration(hours int) bool {
	return hours > 0
}

// IsWithinMaxDuration checks a duration against the configured ceiling.
func (v *Validator) IsWithinMaxDuration(hours int) bool {
	return hours <= v.MaxTaskDuration()
}

// IsNonNegativeHours checks an amount of logged work.
func (v *Validator) IsNonNegativeHours(hours int) bool {
	return hours >= 0
}

// IsValidEmployeeID checks that an identifier could have been assigned.
func (v *Validator) IsValidEmployeeID(id int) bool {
	return id > 0
}

// TrimAndValidateString trims whitespace and returns the cleaned string
func (v *Validator) TrimAndValidateString(s string) string {
	return strings.TrimSpace(s)
}

// NameMaxLength returns the configured maximum name length or the default
func (v *Validator) NameMaxLength() int {
	if v.config != nil && v.config.Validation.NameMaxLength > 0 {
		return v.config.Validation.NameMaxLength
	}
	return defaultNameMaxLength
}

// MaxTaskDuration returns the configured maximum task duration in hours or the default
func (v *Validator) MaxTaskDuration() int {
	if v.config != nil && v.config.Validation.MaxTaskDuration > 0 {
		return v.config.Validation.MaxTaskDuration
	}
	return defaultMaxTaskDuration
}
