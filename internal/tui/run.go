package tui

import (
	"context"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"roster/internal/api"
)

// Options controls where the form reads and draws.
type Options struct {
	TableWidth int
	Input      io.Reader
	Output     io.Writer
}

// Run shows the form until the user quits or ctx is cancelled.
func Run(ctx context.Context, roster api.API, opts Options) error {
	programOpts := []tea.ProgramOption{tea.WithContext(ctx)}
	if opts.Input != nil {
		programOpts = append(programOpts, tea.WithInput(opts.Input))
	}
	if opts.Output != nil {
		programOpts = append(programOpts, tea.WithOutput(opts.Output))
	}

	program := tea.NewProgram(NewModel(ctx, roster, opts.TableWidth), programOpts...)
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("form: %w", err)
	}
	return nil
}
