package sqlite

import "time"

// Employee is the persisted form of a roster employee. ID is assigned by the
// in-memory store and inserted explicitly, never generated by SQLite.
type Employee struct {
	ID         int64
	Name       string
	Department string
	CreatedAt  time.Time
}

// Task is one stored task record with its progress.
type Task struct {
	ID            int64
	Name          string
	Kind          string
	DurationHours int
	HoursWorked   int
	CreatedAt     time.Time
}

// Assignment links a task to an employee at a 0-based position in that
// employee's list. The same task may appear in several assignments.
type Assignment struct {
	ID         int64
	EmployeeID int64
	TaskID     int64
	Position   int
	AssignedAt time.Time
}
