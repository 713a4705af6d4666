package services

import (
	"roster/internal/domain"
	"roster/internal/errors"
)

// TaskBoard maps employee identifiers to the tasks assigned to them, in
// assignment order. It is a log of assignments: the same record may appear
// more than once, for one employee or several.
type TaskBoard struct {
	assignments map[int][]*domain.TaskRecord
	count       int
}

// NewTaskBoard creates an empty board
func NewTaskBoard() *TaskBoard {
	return &TaskBoard{
		assignments: make(map[int][]*domain.TaskRecord),
	}
}

// Assign appends task to the employee's list. task must not be nil.
func (b *TaskBoard) Assign(employee domain.Employee, task *domain.TaskRecord) {
	b.assignments[employee.ID] = append(b.assignments[employee.ID], task)
	b.count++
}

// TasksFor returns the employee's tasks in assignment order. The slice is a
// copy but the records are shared. Employees with no tasks get an empty slice.
func (b *TaskBoard) TasksFor(employee domain.Employee) []*domain.TaskRecord {
	assigned := b.assignments[employee.ID]
	tasks := make([]*domain.TaskRecord, len(assigned))
	copy(tasks, assigned)
	return tasks
}

// TaskAt returns the task at a 0-based position in the employee's list
func (b *TaskBoard) TaskAt(employee domain.Employee, position int) (*domain.TaskRecord, error) {
	assigned := b.assignments[employee.ID]
	if position < 0 || position >= len(assigned) {
		return nil, errors.NewAssignmentNotFoundError(employee.ID, position+1)
	}
	return assigned[position], nil
}

// Advance logs hours against task. Membership on the board is not checked.
func (b *TaskBoard) Advance(task *domain.TaskRecord, hours int) error {
	return task.AdvanceProgress(hours)
}

// AssignmentCount returns the number of assignments across all employees
func (b *TaskBoard) AssignmentCount() int {
	return b.count
}
