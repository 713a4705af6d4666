package sqlite

import "fmt"

// Scanner interface defines the common scanning behavior for both sql.Row and sql.Rows
type Scanner interface {
	Scan(dest ...interface{}) error
}

// Rows interface defines the common behavior for sql.Rows
type Rows interface {
	Next() bool
	Scan(dest ...interface{}) error
	Err() error
}

// ScanEmployee scans a single employee from a database row
func ScanEmployee(scanner Scanner) (*Employee, error) {
	employee := &Employee{}
	var createdAt string
	if err := scanner.Scan(&employee.ID, &employee.Name, &employee.Department, &createdAt); err != nil {
		return nil, err
	}

	t, err := ParseTimeFromDB(createdAt)
	if err != nil {
		return nil, fmt.Errorf("employee %d created_at: %w", employee.ID, err)
	}
	employee.CreatedAt = t
	return employee, nil
}

// ScanTask scans a single task from a database row
func ScanTask(scanner Scanner) (*Task, error) {
	task := &Task{}
	var createdAt string
	err := scanner.Scan(&task.ID, &task.Name, &task.Kind, &task.DurationHours, &task.HoursWorked, &createdAt)
	if err != nil {
		return nil, err
	}

	t, err := ParseTimeFromDB(createdAt)
	if err != nil {
		return nil, fmt.Errorf("task %d created_at: %w", task.ID, err)
	}
	task.CreatedAt = t
	return task, nil
}

// ScanAssignment scans a single assignment from a database row
func ScanAssignment(scanner Scanner) (*Assignment, error) {
	assignment := &Assignment{}
	var assignedAt string
	err := scanner.Scan(&assignment.ID, &assignment.EmployeeID, &assignment.TaskID, &assignment.Position, &assignedAt)
	if err != nil {
		return nil, err
	}

	t, err := ParseTimeFromDB(assignedAt)
	if err != nil {
		return nil, fmt.Errorf("assignment %d assigned_at: %w", assignment.ID, err)
	}
	assignment.AssignedAt = t
	return assignment, nil
}

// ScanEmployees scans multiple employees from database rows
func ScanEmployees(rows Rows) ([]*Employee, error) {
	return scanAll(rows, ScanEmployee)
}

// ScanTasks scans multiple tasks from database rows
func ScanTasks(rows Rows) ([]*Task, error) {
	return scanAll(rows, ScanTask)
}

// ScanAssignments scans multiple assignments from database rows
func ScanAssignments(rows Rows) ([]*Assignment, error) {
	return scanAll(rows, ScanAssignment)
}

func scanAll[T any](rows Rows, scanOne func(Scanner) (*T, error)) ([]*T, error) {
	results := make([]*T, 0)
	for rows.Next() {
		item, err := scanOne(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, item)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return results, nil
}
