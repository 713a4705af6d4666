package cli

import (
	"context"
	"io"
	"os"

	"roster/internal/api"
	"roster/internal/config"
	"roster/internal/tui"
)

// FormCommand handles "form", the interactive roster form
type FormCommand struct {
	api    api.API
	config *config.Config
	in     io.Reader
	out    io.Writer
}

// NewFormCommand creates a new form handler
func NewFormCommand(app *App) *FormCommand {
	return &FormCommand{api: app.api, config: app.config, in: os.Stdin, out: app.out}
}

// Execute runs the form until the user quits
func (c *FormCommand) Execute(ctx context.Context, args []string) error {
	return tui.Run(ctx, c.api, tui.Options{
		TableWidth: c.config.Display.TableWidth,
		Input:      c.in,
		Output:     c.out,
	})
}
