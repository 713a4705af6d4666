package domain

import (
	"fmt"
	"math/bits"

	"roster/internal/errors"
	"roster/internal/validation"
)

// TaskRecord is one unit of assigned work with its progress.
// The only mutation after construction is AdvanceProgress; ID is set once
// the record has been stored.
type TaskRecord struct {
	ID int64

	name        string
	kind        TaskKind
	duration    int
	hoursWorked int
}

// NewTaskRecord creates a coding task with no hours worked.
func NewTaskRecord(name string, duration int) (*TaskRecord, error) {
	return NewTaskRecordOfKind(name, duration, DefaultTaskKind)
}

// NewTaskRecordOfKind creates a task of the given kind with no hours worked.
// The name must be non-empty and the duration positive.
func NewTaskRecordOfKind(name string, duration int, kind TaskKind) (*TaskRecord, error) {
	validator := validation.NewTaskValidator()
	if err := validator.ValidateTaskForCreation(name, duration); err != nil {
		return nil, errors.NewValidationError("invalid task", err)
	}
	if !kind.IsValid() {
		return nil, errors.NewInvalidInputError("kind", string(kind), "unknown task kind")
	}

	cleanName, _ := validator.GetValidTaskName(name)
	return &TaskRecord{
		name:     cleanName,
		kind:     kind,
		duration: duration,
	}, nil
}

// RestoreTaskRecord rebuilds a stored record, including its worked hours.
func RestoreTaskRecord(id int64, name string, duration, hoursWorked int, kind TaskKind) (*TaskRecord, error) {
	task, err := NewTaskRecordOfKind(name, duration, kind)
	if err != nil {
		return nil, err
	}
	if hoursWorked < 0 || hoursWorked > duration {
		return nil, errors.NewInvalidInputError("hours_worked", hoursWorked,
			fmt.Sprintf("must be between 0 and %d", duration))
	}
	task.ID = id
	task.hoursWorked = hoursWorked
	return task, nil
}

// AdvanceProgress adds hours of work, clamped to the duration.
// Negative hours are rejected and leave the record unchanged.
func (t *TaskRecord) AdvanceProgress(hours int) error {
	if err := validation.NewTaskValidator().ValidateHours(hours); err != nil {
		return errors.NewValidationError("invalid hours", err)
	}

	// compare against the remainder so large inputs cannot overflow
	if hours >= t.duration-t.hoursWorked {
		t.hoursWorked = t.duration
		return nil
	}
	t.hoursWorked += hours
	return nil
}

// ProgressPercent is the truncated share of the duration worked, 0 to 100.
// The product is taken in 128 bits so durations near MaxInt stay exact.
func (t *TaskRecord) ProgressPercent() int {
	hi, lo := bits.Mul64(uint64(t.hoursWorked), 100)
	// hoursWorked <= duration keeps hi below duration, so Div64 cannot panic
	percent, _ := bits.Div64(hi, lo, uint64(t.duration))
	return int(percent)
}

// Completed reports whether every hour of the duration has been worked.
func (t *TaskRecord) Completed() bool {
	return t.hoursWorked == t.duration
}

func (t *TaskRecord) Name() string {
	return t.name
}

func (t *TaskRecord) Kind() TaskKind {
	return t.kind
}

func (t *TaskRecord) Duration() int {
	return t.duration
}

func (t *TaskRecord) HoursWorked() int {
	return t.hoursWorked
}

// RemainingHours is the work left before the task completes.
func (t *TaskRecord) RemainingHours() int {
	return t.duration - t.hoursWorked
}

// String returns the display form used in task lists.
func (t *TaskRecord) String() string {
	return fmt.Sprintf("%s (Duration: %d hours, Worked: %d hours)", t.name, t.duration, t.hoursWorked)
}
