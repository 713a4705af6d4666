// Package input turns text typed on the command line or in the form into
// roster values.
package input

import (
	"strconv"
	"strings"

	"roster/internal/errors"
)

// EmployeeID parses a user-supplied employee identifier
func EmployeeID(text string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil || id < 1 {
		return 0, errors.NewInvalidInputError("employee_id", text, "must be a positive whole number")
	}
	return id, nil
}

// Position turns a 1-based list position into a 0-based index
func Position(text string) (int, error) {
	position, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil || position < 1 {
		return 0, errors.NewInvalidInputError("position", text, "must be a list position starting at 1")
	}
	return position - 1, nil
}

// Hours parses a whole number of hours. The sign is left for the roster to
// judge so negative work gets the same message everywhere.
func Hours(field, text string) (int, error) {
	hours, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return 0, errors.NewInvalidInputError(field, text, "must be a whole number of hours")
	}
	return hours, nil
}
