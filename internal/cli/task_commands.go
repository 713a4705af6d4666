package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"roster/internal/api"
	"roster/internal/domain"
	"roster/internal/errors"
	"roster/internal/input"
	"roster/internal/services"
)

// TaskAssignCommand handles "task assign <employee-id> <name> <hours>"
type TaskAssignCommand struct {
	api          api.API
	out          io.Writer
	errorHandler *ErrorHandler

	// Kind is the --kind flag; empty means coding
	Kind string
}

// NewTaskAssignCommand creates a new task assign handler
func NewTaskAssignCommand(app *App) *TaskAssignCommand {
	return &TaskAssignCommand{api: app.api, out: app.out, errorHandler: NewErrorHandler()}
}

// Execute creates a task and assigns it. Words between the identifier and
// the hours form the task name.
func (c *TaskAssignCommand) Execute(ctx context.Context, args []string) error {
	if len(args) < 3 {
		return errors.NewInvalidInputError("command", "task assign", "usage: roster task assign <employee-id> <name> <hours>")
	}
	employeeID, err := input.EmployeeID(args[0])
	if err != nil {
		return c.errorHandler.Handle("assign task", err)
	}
	duration, err := input.Hours("duration", args[len(args)-1])
	if err != nil {
		return c.errorHandler.Handle("assign task", err)
	}
	kind, err := domain.ParseTaskKind(c.Kind)
	if err != nil {
		return c.errorHandler.Handle("assign task", err)
	}

	name := strings.Join(args[1:len(args)-1], " ")
	task, err := c.api.AssignTask(ctx, employeeID, name, duration, kind)
	if err != nil {
		return c.errorHandler.Handle("assign task", err)
	}
	fmt.Fprintf(c.out, "Assigned %s task to employee #%d: %s\n", task.Kind(), employeeID, task)
	return nil
}

// TaskListCommand handles "task list <employee-id>"
type TaskListCommand struct {
	api          api.API
	out          io.Writer
	errorHandler *ErrorHandler
}

// NewTaskListCommand creates a new task list handler
func NewTaskListCommand(app *App) *TaskListCommand {
	return &TaskListCommand{api: app.api, out: app.out, errorHandler: NewErrorHandler()}
}

// Execute prints the employee's tasks with 1-based positions
func (c *TaskListCommand) Execute(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.NewInvalidInputError("command", "task list", "usage: roster task list <employee-id>")
	}
	employeeID, err := input.EmployeeID(args[0])
	if err != nil {
		return c.errorHandler.Handle("list tasks", err)
	}

	tasks, err := c.api.TasksFor(ctx, employeeID)
	if err != nil {
		return c.errorHandler.Handle("list tasks", err)
	}
	printTaskList(c.out, tasks)
	return nil
}

// TaskLogCommand handles "task log <employee-id> <position> <hours>"
type TaskLogCommand struct {
	api          api.API
	out          io.Writer
	errorHandler *ErrorHandler
}

// NewTaskLogCommand creates a new task log handler
func NewTaskLogCommand(app *App) *TaskLogCommand {
	return &TaskLogCommand{api: app.api, out: app.out, errorHandler: NewErrorHandler()}
}

// Execute logs worked hours against one of the employee's tasks
func (c *TaskLogCommand) Execute(ctx context.Context, args []string) error {
	if len(args) != 3 {
		return errors.NewInvalidInputError("command", "task log", "usage: roster task log <employee-id> <position> <hours>")
	}
	employeeID, err := input.EmployeeID(args[0])
	if err != nil {
		return c.errorHandler.Handle("log hours", err)
	}
	position, err := input.Position(args[1])
	if err != nil {
		return c.errorHandler.Handle("log hours", err)
	}
	hours, err := input.Hours("hours", args[2])
	if err != nil {
		return c.errorHandler.Handle("log hours", err)
	}

	task, err := c.api.LogHours(ctx, employeeID, position, hours)
	if err != nil {
		return c.errorHandler.Handle("log hours", err)
	}
	fmt.Fprintf(c.out, "Logged %d hours on %s [%s]\n", hours, task, services.StatusOf(task))
	return nil
}

// TaskShareCommand handles "task share <employee-id> <from-employee-id> <position>"
type TaskShareCommand struct {
	api          api.API
	out          io.Writer
	errorHandler *ErrorHandler
}

// NewTaskShareCommand creates a new task share handler
func NewTaskShareCommand(app *App) *TaskShareCommand {
	return &TaskShareCommand{api: app.api, out: app.out, errorHandler: NewErrorHandler()}
}

// Execute assigns a task already on another employee's list; both lists
// then point at the same task and share its progress.
func (c *TaskShareCommand) Execute(ctx context.Context, args []string) error {
	if len(args) != 3 {
		return errors.NewInvalidInputError("command", "task share", "usage: roster task share <employee-id> <from-employee-id> <position>")
	}
	employeeID, err := input.EmployeeID(args[0])
	if err != nil {
		return c.errorHandler.Handle("share task", err)
	}
	fromID, err := input.EmployeeID(args[1])
	if err != nil {
		return c.errorHandler.Handle("share task", err)
	}
	position, err := input.Position(args[2])
	if err != nil {
		return c.errorHandler.Handle("share task", err)
	}

	task, err := c.api.AssignExisting(ctx, employeeID, fromID, position)
	if err != nil {
		return c.errorHandler.Handle("share task", err)
	}
	fmt.Fprintf(c.out, "Shared %s with employee #%d\n", task.Name(), employeeID)
	return nil
}

func printTaskList(out io.Writer, tasks []*domain.TaskRecord) {
	if len(tasks) == 0 {
		fmt.Fprintln(out, "No tasks assigned")
		return
	}
	for i, task := range tasks {
		fmt.Fprintf(out, "%d. %s [%s]\n", i+1, task, services.StatusOf(task))
	}
}
