package cli

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"roster/internal/api"
	"roster/internal/config"
	"roster/internal/errors"
	"roster/internal/services"

	"gopkg.in/yaml.v3"
)

// ReportFormats lists the supported --format values
var ReportFormats = []string{"table", "csv", "json", "yaml"}

// ReportCommand handles "report [--format ...]"
type ReportCommand struct {
	api          api.API
	out          io.Writer
	config       *config.Config
	errorHandler *ErrorHandler

	// Format is the --format flag; empty means the configured default
	Format string
}

// reportDocument is the json and yaml export shape
type reportDocument struct {
	GeneratedAt string                 `json:"generated_at" yaml:"generated_at"`
	Rows        []services.ProgressRow `json:"rows" yaml:"rows"`
	Summary     services.ReportSummary `json:"summary" yaml:"summary"`
}

// NewReportCommand creates a new report handler
func NewReportCommand(app *App) *ReportCommand {
	return &ReportCommand{api: app.api, out: app.out, config: app.config, errorHandler: NewErrorHandler()}
}

// Execute regenerates the progress report and writes it in the chosen format
func (c *ReportCommand) Execute(ctx context.Context, args []string) error {
	format := c.Format
	if format == "" {
		format = c.config.Commands.ReportDefaultFormat
	}

	rows, err := c.api.Report(ctx)
	if err != nil {
		return c.errorHandler.Handle("generate report", err)
	}
	summary, err := c.api.Summary(ctx)
	if err != nil {
		return c.errorHandler.Handle("generate report", err)
	}

	switch format {
	case "table":
		return c.writeTable(rows, summary)
	case "csv":
		return c.writeCSV(rows)
	case "json":
		encoder := json.NewEncoder(c.out)
		encoder.SetIndent("", "  ")
		return encoder.Encode(c.document(rows, summary))
	case "yaml":
		encoder := yaml.NewEncoder(c.out)
		encoder.SetIndent(2)
		if err := encoder.Encode(c.document(rows, summary)); err != nil {
			return fmt.Errorf("failed to write yaml report: %w", err)
		}
		return encoder.Close()
	default:
		return c.errorHandler.Handle("generate report",
			errors.NewInvalidInputError("format", format, "must be one of table, csv, json, yaml"))
	}
}

func (c *ReportCommand) document(rows []services.ProgressRow, summary services.ReportSummary) reportDocument {
	return reportDocument{
		GeneratedAt: timeNow().Format(c.config.Display.DateFormat),
		Rows:        rows,
		Summary:     summary,
	}
}

func (c *ReportCommand) writeTable(rows []services.ProgressRow, summary services.ReportSummary) error {
	if len(rows) == 0 {
		fmt.Fprintln(c.out, "No tasks assigned")
		return nil
	}

	cells := make([][]string, len(rows))
	for i, row := range rows {
		cells[i] = []string{row.EmployeeName, row.TaskName, row.Status}
	}
	fmt.Fprintf(c.out, "Progress report %s\n", timeNow().Format(c.config.Display.DateFormat))
	fmt.Fprintln(c.out, renderTable([]string{"Employee", "Task", "Progress"}, cells, c.config.Display.TableWidth))
	fmt.Fprintf(c.out, "Employees: %d  Assignments: %d  Completed: %d  Average progress: %d%%\n",
		summary.Employees, summary.Assignments, summary.Completed, summary.AveragePercent)
	return nil
}

func (c *ReportCommand) writeCSV(rows []services.ProgressRow) error {
	writer := csv.NewWriter(c.out)

	header := []string{"Employee ID", "Employee", "Task", "Kind", "Hours Worked", "Duration", "Status"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, row := range rows {
		record := []string{
			strconv.Itoa(row.EmployeeID),
			row.EmployeeName,
			row.TaskName,
			row.Kind,
			strconv.Itoa(row.HoursWorked),
			strconv.Itoa(row.Duration),
			row.Status,
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}
