package domain

import "fmt"

// Employee is an immutable roster member. Only the employee store creates
// employees; the ID is assigned sequentially from 1 and never reused.
type Employee struct {
	ID         int
	Name       string
	Department string
}

// String returns the label used in employee lists, "1 - Ana (Eng)".
func (e Employee) String() string {
	return fmt.Sprintf("%d - %s (%s)", e.ID, e.Name, e.Department)
}
