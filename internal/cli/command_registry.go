package cli

import (
	"context"
	"sort"
	"strings"

	"roster/internal/errors"
)

// Command represents a CLI command
type Command interface {
	Execute(ctx context.Context, args []string) error
}

// CommandRegistry manages all available commands
type CommandRegistry struct {
	commands map[string]Command
}

// NewCommandRegistry creates a new command registry
func NewCommandRegistry(app *App) *CommandRegistry {
	registry := &CommandRegistry{
		commands: make(map[string]Command),
	}

	registry.Register("employee add", NewEmployeeAddCommand(app))
	registry.Register("employee list", NewEmployeeListCommand(app))
	registry.Register("employee show", NewEmployeeShowCommand(app))
	registry.Register("task assign", NewTaskAssignCommand(app))
	registry.Register("task list", NewTaskListCommand(app))
	registry.Register("task log", NewTaskLogCommand(app))
	registry.Register("task share", NewTaskShareCommand(app))
	registry.Register("report", NewReportCommand(app))
	registry.Register("form", NewFormCommand(app))

	return registry
}

// Register adds a command to the registry
func (r *CommandRegistry) Register(name string, command Command) {
	r.commands[name] = command
}

// Lookup returns the command registered under name
func (r *CommandRegistry) Lookup(name string) (Command, bool) {
	command, ok := r.commands[name]
	return command, ok
}

// Execute runs the specified command with the given arguments
func (r *CommandRegistry) Execute(ctx context.Context, commandName string, args []string) error {
	command, exists := r.commands[commandName]
	if !exists {
		return errors.NewInvalidInputError("command", commandName, "unknown command")
	}
	return command.Execute(ctx, args)
}

// GetUsage returns the usage string for the CLI
func (r *CommandRegistry) GetUsage() string {
	names := make([]string, 0, len(r.commands))
	for name := range r.commands {
		names = append(names, "roster "+name)
	}
	sort.Strings(names)
	return "usage: " + strings.Join(names, " | ")
}
