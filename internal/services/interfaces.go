package services

import (
	"roster/internal/domain"
)

// StatusCompleted is the report status of a finished task.
const StatusCompleted = "Completed"

// EmployeeLister is the read side of the employee store used by reports.
type EmployeeLister interface {
	ListEmployees() []domain.Employee
}

// TaskLister is the read side of the task board used by reports.
type TaskLister interface {
	TasksFor(employee domain.Employee) []*domain.TaskRecord
}

// ProgressRow is one line of the progress report: an employee, one of their
// tasks, and either "Completed" or the truncated percentage.
type ProgressRow struct {
	EmployeeID   int    `json:"employee_id" yaml:"employee_id"`
	EmployeeName string `json:"employee" yaml:"employee"`
	TaskName     string `json:"task" yaml:"task"`
	Kind         string `json:"kind" yaml:"kind"`
	HoursWorked  int    `json:"hours_worked" yaml:"hours_worked"`
	Duration     int    `json:"duration" yaml:"duration"`
	Percent      int    `json:"percent" yaml:"percent"`
	Status       string `json:"status" yaml:"status"`
}

// ReportSummary holds the totals shown under the progress table.
type ReportSummary struct {
	Employees      int `json:"employees" yaml:"employees"`
	Assignments    int `json:"assignments" yaml:"assignments"`
	Completed      int `json:"completed" yaml:"completed"`
	AveragePercent int `json:"average_percent" yaml:"average_percent"`
}
