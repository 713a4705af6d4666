package services

import (
	"fmt"

	"roster/internal/domain"
	"roster/internal/errors"
	"roster/internal/validation"
)

// EmployeeStore owns the roster's employees in insertion order.
// Identifiers are count+1 at insertion; employees are never removed, so they
// stay unique and increasing.
type EmployeeStore struct {
	employees []domain.Employee
	validator *validation.EmployeeValidator
}

// NewEmployeeStore creates an empty store
func NewEmployeeStore() *EmployeeStore {
	return &EmployeeStore{
		employees: make([]domain.Employee, 0),
		validator: validation.NewEmployeeValidator(),
	}
}

// AddEmployee trims and validates the name and department, then appends a
// new employee with the next identifier.
func (s *EmployeeStore) AddEmployee(name, department string) (domain.Employee, error) {
	cleanName, cleanDepartment, err := s.validator.GetValidEmployee(name, department)
	if err != nil {
		return domain.Employee{}, errors.NewValidationError("invalid employee", err)
	}

	employee := domain.Employee{
		ID:         len(s.employees) + 1,
		Name:       cleanName,
		Department: cleanDepartment,
	}
	s.employees = append(s.employees, employee)
	return employee, nil
}

// ListEmployees returns a copy of the employees in insertion order
func (s *EmployeeStore) ListEmployees() []domain.Employee {
	employees := make([]domain.Employee, len(s.employees))
	copy(employees, s.employees)
	return employees
}

// FindByID scans for the employee with the given identifier
func (s *EmployeeStore) FindByID(id int) (domain.Employee, error) {
	for _, employee := range s.employees {
		if employee.ID == id {
			return employee, nil
		}
	}
	return domain.Employee{}, errors.NewEmployeeNotFoundError(id)
}

// EmployeeAt returns the employee at a 0-based list position
func (s *EmployeeStore) EmployeeAt(position int) (domain.Employee, error) {
	if position < 0 || position >= len(s.employees) {
		return domain.Employee{}, errors.NewNotFoundError("employee", fmt.Sprintf("at position %d", position+1))
	}
	return s.employees[position], nil
}

// Count returns the number of employees
func (s *EmployeeStore) Count() int {
	return len(s.employees)
}
