package cli

import (
	"context"
	"io"
	"os"
	"time"

	"roster/internal/api"
	"roster/internal/config"
)

// timeNow is a variable that can be replaced in tests
var timeNow = time.Now

// App holds what every command handler needs
type App struct {
	api      api.API
	config   *config.Config
	out      io.Writer
	registry *CommandRegistry
}

// NewApp creates a new CLI application instance with dependency injection
func NewApp(apiInstance api.API, cfg *config.Config, out io.Writer) *App {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	if out == nil {
		out = os.Stdout
	}
	app := &App{
		api:    apiInstance,
		config: cfg,
		out:    out,
	}
	app.registry = NewCommandRegistry(app)
	return app
}

// Run executes a registered command such as "employee add" with its arguments
func (a *App) Run(ctx context.Context, commandName string, args []string) error {
	return a.registry.Execute(ctx, commandName, args)
}
