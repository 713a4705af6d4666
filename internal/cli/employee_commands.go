package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"roster/internal/api"
	"roster/internal/errors"
	"roster/internal/input"
)

// EmployeeAddCommand handles "employee add <name> <department>"
type EmployeeAddCommand struct {
	api          api.API
	out          io.Writer
	errorHandler *ErrorHandler
}

// NewEmployeeAddCommand creates a new employee add handler
func NewEmployeeAddCommand(app *App) *EmployeeAddCommand {
	return &EmployeeAddCommand{api: app.api, out: app.out, errorHandler: NewErrorHandler()}
}

// Execute adds one employee. Words after the name form the department.
func (c *EmployeeAddCommand) Execute(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return errors.NewInvalidInputError("command", "employee add", "usage: roster employee add <name> <department>")
	}

	employee, err := c.api.AddEmployee(ctx, args[0], strings.Join(args[1:], " "))
	if err != nil {
		return c.errorHandler.Handle("add employee", err)
	}
	fmt.Fprintf(c.out, "Added employee: %s\n", employee)
	return nil
}

// EmployeeListCommand handles "employee list"
type EmployeeListCommand struct {
	api          api.API
	app          *App
	errorHandler *ErrorHandler
}

// NewEmployeeListCommand creates a new employee list handler
func NewEmployeeListCommand(app *App) *EmployeeListCommand {
	return &EmployeeListCommand{api: app.api, app: app, errorHandler: NewErrorHandler()}
}

// Execute prints every employee with their assignment count
func (c *EmployeeListCommand) Execute(ctx context.Context, args []string) error {
	employees, err := c.api.ListEmployees(ctx)
	if err != nil {
		return c.errorHandler.Handle("list employees", err)
	}
	if len(employees) == 0 {
		fmt.Fprintln(c.app.out, "No employees found")
		return nil
	}

	rows := make([][]string, 0, len(employees))
	for _, employee := range employees {
		tasks, err := c.api.TasksFor(ctx, employee.ID)
		if err != nil {
			return c.errorHandler.Handle("list employees", err)
		}
		rows = append(rows, []string{
			fmt.Sprintf("%d", employee.ID),
			employee.Name,
			employee.Department,
			fmt.Sprintf("%d", len(tasks)),
		})
	}

	fmt.Fprintln(c.app.out, renderTable([]string{"ID", "Name", "Department", "Tasks"}, rows, c.app.config.Display.TableWidth))
	return nil
}

// EmployeeShowCommand handles "employee show <id>"
type EmployeeShowCommand struct {
	api          api.API
	out          io.Writer
	errorHandler *ErrorHandler
}

// NewEmployeeShowCommand creates a new employee show handler
func NewEmployeeShowCommand(app *App) *EmployeeShowCommand {
	return &EmployeeShowCommand{api: app.api, out: app.out, errorHandler: NewErrorHandler()}
}

// Execute prints one employee and their numbered task list
func (c *EmployeeShowCommand) Execute(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.NewInvalidInputError("command", "employee show", "usage: roster employee show <id>")
	}
	id, err := input.EmployeeID(args[0])
	if err != nil {
		return c.errorHandler.Handle("show employee", err)
	}

	employee, err := c.api.FindEmployee(ctx, id)
	if err != nil {
		return c.errorHandler.Handle("show employee", err)
	}
	tasks, err := c.api.TasksFor(ctx, id)
	if err != nil {
		return c.errorHandler.Handle("show employee", err)
	}

	fmt.Fprintf(c.out, "Employee: %s\n", employee)
	printTaskList(c.out, tasks)
	return nil
}
