package services

import (
	"fmt"

	"roster/internal/domain"
)

// ProgressReport derives the progress table from the store and the board.
// Nothing is cached; every call walks the current state.
type ProgressReport struct{}

// NewProgressReport creates a report generator
func NewProgressReport() *ProgressReport {
	return &ProgressReport{}
}

// Generate lists every assignment, employees in store order and tasks in
// assignment order. The result is never nil.
func (r *ProgressReport) Generate(store EmployeeLister, board TaskLister) []ProgressRow {
	rows := make([]ProgressRow, 0)
	for _, employee := range store.ListEmployees() {
		for _, task := range board.TasksFor(employee) {
			rows = append(rows, ProgressRow{
				EmployeeID:   employee.ID,
				EmployeeName: employee.Name,
				TaskName:     task.Name(),
				Kind:         task.Kind().String(),
				HoursWorked:  task.HoursWorked(),
				Duration:     task.Duration(),
				Percent:      task.ProgressPercent(),
				Status:       StatusOf(task),
			})
		}
	}
	return rows
}

// Summarize totals a generated report. employees is the store size, since
// employees without tasks do not appear in rows.
func (r *ProgressReport) Summarize(employees int, rows []ProgressRow) ReportSummary {
	summary := ReportSummary{
		Employees:   employees,
		Assignments: len(rows),
	}
	if len(rows) == 0 {
		return summary
	}

	total := 0
	for _, row := range rows {
		if row.Status == StatusCompleted {
			summary.Completed++
		}
		total += row.Percent
	}
	summary.AveragePercent = total / len(rows)
	return summary
}

// StatusOf is the report status of one task: "Completed" or "<n>%".
func StatusOf(task *domain.TaskRecord) string {
	if task.Completed() {
		return StatusCompleted
	}
	return fmt.Sprintf("%d%%", task.ProgressPercent())
}
