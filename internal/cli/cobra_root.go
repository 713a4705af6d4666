package cli

import (
	"context"
	"strings"
	"time"

	"roster/internal/api"
	"roster/internal/config"

	"github.com/spf13/cobra"
)

// APIFactory opens the roster for a fully resolved configuration
type APIFactory func(ctx context.Context, cfg *config.Config) (api.API, error)

// RootCommand represents the base command when called without any subcommands
type RootCommand struct {
	cmd     *cobra.Command
	factory APIFactory
	loader  func(overrides *config.ConfigOverrides, configFile string) (*config.Config, error)

	config *config.Config
	api    api.API
}

// NewRootCommand creates the root cobra command with global flags. The
// roster is opened on first use so that flags can pick the database.
func NewRootCommand(factory APIFactory) *RootCommand {
	root := &RootCommand{
		factory: factory,
		loader: func(overrides *config.ConfigOverrides, configFile string) (*config.Config, error) {
			return config.NewLoader().WithConfigFile(configFile).LoadWithOverrides(overrides)
		},
	}

	root.cmd = &cobra.Command{
		Use:   "roster",
		Short: "Track employees, their tasks and task progress",
		Long: `Roster records employees, assigns them tasks measured in hours and
tracks how far each task has progressed.

EXAMPLES:
  roster employee add Ana Engineering        # Add employee #1
  roster task assign 1 "Design review" 10     # Give Ana a 10 hour task
  roster task log 1 1 4                       # Log 4 hours on Ana's first task
  roster task share 2 1 1                     # Put Ana's first task on employee #2 as well
  roster report --format csv > progress.csv   # Export progress
  roster form                                 # Interactive form

CONFIGURATION:
  Configuration follows this priority order:
  command-line flags > environment variables > roster.yaml > defaults

    ROSTER_DB_DIR                  Data directory (default: ~/.roster)
    ROSTER_DB_FILENAME             Database filename (default: roster.db)
    ROSTER_DB_IN_MEMORY            Keep the roster in memory only (default: false)
    ROSTER_VALIDATION_NAME_MAX     Max name length (default: 255)
    ROSTER_VALIDATION_MAX_TASK_DURATION  Max task duration in hours (default: 10000)
    ROSTER_APP_TIMEOUT             Command timeout (default: 60s)
    ROSTER_APP_LOG_LEVEL           debug, info, warn or error (default: info)
    ROSTER_REPORT_DEFAULT_FORMAT   table, csv, json or yaml (default: table)
    ROSTER_DEBUG                   Force debug logging`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.addGlobalFlags()
	root.addSubcommands()

	return root
}

// Execute runs the root command
func (r *RootCommand) Execute() error {
	return r.cmd.Execute()
}

// ExecuteContext runs the root command with a parent context
func (r *RootCommand) ExecuteContext(ctx context.Context) error {
	return r.cmd.ExecuteContext(ctx)
}

// Close releases the roster if a command opened it
func (r *RootCommand) Close() error {
	if r.api == nil {
		return nil
	}
	err := r.api.Close()
	r.api = nil
	return err
}

// Command exposes the cobra command, mainly for tests
func (r *RootCommand) Command() *cobra.Command {
	return r.cmd
}

// addGlobalFlags adds global configuration flags
func (r *RootCommand) addGlobalFlags() {
	flags := r.cmd.PersistentFlags()

	flags.String("config", "", "YAML config file (default: <db-dir>/roster.yaml)")
	flags.String("db-dir", "", "Data directory (overrides ROSTER_DB_DIR)")
	flags.String("db-filename", "", "Database filename (overrides ROSTER_DB_FILENAME)")
	flags.Bool("in-memory", false, "Keep the roster in memory for this run only")
	flags.Duration("db-query-timeout", 0, "Database read timeout (overrides ROSTER_DB_QUERY_TIMEOUT)")
	flags.Duration("db-write-timeout", 0, "Database write timeout (overrides ROSTER_DB_WRITE_TIMEOUT)")
	flags.Int("name-max-length", 0, "Longest accepted name (overrides ROSTER_VALIDATION_NAME_MAX)")
	flags.Int("max-task-duration", 0, "Longest accepted task in hours (overrides ROSTER_VALIDATION_MAX_TASK_DURATION)")
	flags.Int("table-width", 0, "Table width (overrides ROSTER_DISPLAY_TABLE_WIDTH)")
	flags.Duration("app-timeout", 0, "Command timeout (overrides ROSTER_APP_TIMEOUT)")
	flags.Bool("verbose", false, "Human-readable logging (overrides ROSTER_APP_VERBOSE)")
	flags.String("log-level", "", "Log level (overrides ROSTER_APP_LOG_LEVEL)")
	flags.String("report-format", "", "Default report format (overrides ROSTER_REPORT_DEFAULT_FORMAT)")
}

// addSubcommands adds all CLI subcommands to the root command
func (r *RootCommand) addSubcommands() {
	employeeCmd := &cobra.Command{
		Use:   "employee",
		Short: "Add and inspect employees",
	}
	employeeCmd.AddCommand(
		r.simpleCommand("add <name> <department>", "Add an employee", "employee add", cobra.MinimumNArgs(2)),
		r.simpleCommand("list", "List employees", "employee list", cobra.NoArgs),
		r.simpleCommand("show <id>", "Show an employee and their tasks", "employee show", cobra.ExactArgs(1)),
	)

	var kind string
	assignCmd := &cobra.Command{
		Use:   "assign <employee-id> <name> <hours>",
		Short: "Create a task and assign it to an employee",
		Long: `Create a task of the given duration in hours and append it to the
employee's task list. Words between the identifier and the hours form the name.`,
		Args: cobra.MinimumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.run(cmd, func(ctx context.Context, app *App) error {
				handler := NewTaskAssignCommand(app)
				handler.Kind = kind
				return handler.Execute(ctx, args)
			})
		},
	}
	assignCmd.Flags().StringVar(&kind, "kind", "", "Task kind: coding, review, testing or documentation (default coding)")

	taskCmd := &cobra.Command{
		Use:   "task",
		Short: "Assign tasks and log hours",
	}
	taskCmd.AddCommand(
		assignCmd,
		r.simpleCommand("list <employee-id>", "List an employee's tasks", "task list", cobra.ExactArgs(1)),
		r.simpleCommand("log <employee-id> <position> <hours>", "Log hours on a task (positions start at 1)", "task log", cobra.ExactArgs(3)),
		r.simpleCommand("share <employee-id> <from-employee-id> <position>", "Assign another employee's task as well", "task share", cobra.ExactArgs(3)),
	)

	var format string
	reportCmd := &cobra.Command{
		Use:   "report",
		Short: "Show task progress for every employee",
		Long:  "Recompute the progress report. Formats: " + strings.Join(ReportFormats, ", ") + ".",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.run(cmd, func(ctx context.Context, app *App) error {
				handler := NewReportCommand(app)
				handler.Format = format
				return handler.Execute(ctx, args)
			})
		},
	}
	reportCmd.Flags().StringVar(&format, "format", "", "Output format (default from configuration)")

	formCmd := &cobra.Command{
		Use:   "form",
		Short: "Open the interactive roster form",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// interactive sessions are not bound by the command timeout
			app, err := r.app(cmd)
			if err != nil {
				return err
			}
			return app.Run(cmd.Context(), "form", args)
		},
	}

	r.cmd.AddCommand(employeeCmd, taskCmd, reportCmd, formCmd)
}

// simpleCommand builds a leaf command that dispatches through the registry
func (r *RootCommand) simpleCommand(use, short, registryName string, args cobra.PositionalArgs) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  args,
		RunE: func(cmd *cobra.Command, cmdArgs []string) error {
			return r.run(cmd, func(ctx context.Context, app *App) error {
				return app.Run(ctx, registryName, cmdArgs)
			})
		},
	}
}

// run opens the roster and calls fn under the application timeout
func (r *RootCommand) run(cmd *cobra.Command, fn func(ctx context.Context, app *App) error) error {
	app, err := r.app(cmd)
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(cmd.Context(), r.getAppTimeout())
	defer cancel()
	return fn(ctx, app)
}

// app resolves the configuration and opens the roster once per process
func (r *RootCommand) app(cmd *cobra.Command) (*App, error) {
	if r.api == nil {
		configFile, _ := r.cmd.PersistentFlags().GetString("config")
		cfg, err := r.loader(r.overridesFromFlags(), configFile)
		if err != nil {
			return nil, err
		}
		apiInstance, err := r.factory(cmd.Context(), cfg)
		if err != nil {
			return nil, NewErrorHandler().Handle("open roster", err)
		}
		r.config = cfg
		r.api = apiInstance
	}
	return NewApp(r.api, r.config, cmd.OutOrStdout()), nil
}

// getAppTimeout returns the configured application timeout
func (r *RootCommand) getAppTimeout() time.Duration {
	if r.config != nil && r.config.Application.Timeout > 0 {
		return r.config.Application.Timeout
	}
	return 60 * time.Second
}

// overridesFromFlags collects the global flags the user actually set
func (r *RootCommand) overridesFromFlags() *config.ConfigOverrides {
	flags := r.cmd.PersistentFlags()
	overrides := &config.ConfigOverrides{}

	if flags.Changed("db-dir") {
		value, _ := flags.GetString("db-dir")
		overrides.DBDir = &value
	}
	if flags.Changed("db-filename") {
		value, _ := flags.GetString("db-filename")
		overrides.DBFilename = &value
	}
	if flags.Changed("in-memory") {
		value, _ := flags.GetBool("in-memory")
		overrides.InMemory = &value
	}
	if flags.Changed("db-query-timeout") {
		value, _ := flags.GetDuration("db-query-timeout")
		overrides.DBQueryTimeout = &value
	}
	if flags.Changed("db-write-timeout") {
		value, _ := flags.GetDuration("db-write-timeout")
		overrides.DBWriteTimeout = &value
	}
	if flags.Changed("name-max-length") {
		value, _ := flags.GetInt("name-max-length")
		overrides.NameMaxLength = &value
	}
	if flags.Changed("max-task-duration") {
		value, _ := flags.GetInt("max-task-duration")
		overrides.MaxTaskDuration = &value
	}
	if flags.Changed("table-width") {
		value, _ := flags.GetInt("table-width")
		overrides.TableWidth = &value
	}
	if flags.Changed("app-timeout") {
		value, _ := flags.GetDuration("app-timeout")
		overrides.Timeout = &value
	}
	if flags.Changed("verbose") {
		value, _ := flags.GetBool("verbose")
		overrides.Verbose = &value
	}
	if flags.Changed("log-level") {
		value, _ := flags.GetString("log-level")
		overrides.LogLevel = &value
	}
	if flags.Changed("report-format") {
		value, _ := flags.GetString("report-format")
		overrides.ReportDefaultFormat = &value
	}

	return overrides
}
