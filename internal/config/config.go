package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable the roster reads.
const EnvPrefix = "ROSTER"

// InMemoryDatabasePath is the SQLite DSN used for throwaway sessions.
const InMemoryDatabasePath = ":memory:"

// Config holds all configuration options for the roster application
type Config struct {
	Database    DatabaseConfig
	Validation  ValidationConfig
	Display     DisplayConfig
	Application ApplicationConfig
	Commands    CommandsConfig
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	Dir            string        `mapstructure:"dir"`
	Filename       string        `mapstructure:"filename"`
	QueryTimeout   time.Duration `mapstructure:"query_timeout"`
	WriteTimeout   time.Duration `mapstructure:"write_timeout"`
	DirPermissions uint32        `mapstructure:"dir_permissions"`
	InMemory       bool          `mapstructure:"in_memory"`
}

// ValidationConfig holds the configurable ceilings applied on top of the
// record invariants (non-empty names, positive durations).
type ValidationConfig struct {
	NameMaxLength   int `mapstructure:"name_max_length"`
	MaxTaskDuration int `mapstructure:"max_task_duration"`
}

// DisplayConfig holds display formatting configuration
type DisplayConfig struct {
	TableWidth int    `mapstructure:"table_width"`
	DateFormat string `mapstructure:"date_format"`
}

// ApplicationConfig holds application-level configuration
type ApplicationConfig struct {
	Timeout  time.Duration `mapstructure:"timeout"`
	Verbose  bool          `mapstructure:"verbose"`
	LogLevel string        `mapstructure:"log_level"`
}

// CommandsConfig holds command-specific defaults
type CommandsConfig struct {
	ReportDefaultFormat string `mapstructure:"report_default_format"`
}

// envBindings maps viper keys to the environment variables that override them.
var envBindings = map[string]string{
	"database.dir":                   "ROSTER_DB_DIR",
	"database.filename":              "ROSTER_DB_FILENAME",
	"database.query_timeout":         "ROSTER_DB_QUERY_TIMEOUT",
	"database.write_timeout":         "ROSTER_DB_WRITE_TIMEOUT",
	"database.dir_permissions":       "ROSTER_DB_DIR_PERMISSIONS",
	"database.in_memory":             "ROSTER_DB_IN_MEMORY",
	"validation.name_max_length":     "ROSTER_VALIDATION_NAME_MAX",
	"validation.max_task_duration":   "ROSTER_VALIDATION_MAX_TASK_DURATION",
	"display.table_width":            "ROSTER_DISPLAY_TABLE_WIDTH",
	"display.date_format":            "ROSTER_DISPLAY_DATE_FORMAT",
	"application.timeout":            "ROSTER_APP_TIMEOUT",
	"application.verbose":            "ROSTER_APP_VERBOSE",
	"application.log_level":          "ROSTER_APP_LOG_LEVEL",
	"commands.report_default_format": "ROSTER_REPORT_DEFAULT_FORMAT",
}

// NewConfig creates a new configuration with sensible defaults
func NewConfig() *Config {
	homeDir, _ := os.UserHomeDir()
	defaultDBDir := filepath.Join(homeDir, ".roster")

	return &Config{
		Database: DatabaseConfig{
			Dir:            defaultDBDir,
			Filename:       "roster.db",
			QueryTimeout:   10 * time.Second,
			WriteTimeout:   5 * time.Second,
			DirPermissions: 0755,
		},
		Validation: ValidationConfig{
			NameMaxLength:   255,
			MaxTaskDuration: 10000,
		},
		Display: DisplayConfig{
			TableWidth: 100,
			DateFormat: "2006-01-02",
		},
		Application: ApplicationConfig{
			Timeout:  60 * time.Second,
			LogLevel: "info",
		},
		Commands: CommandsConfig{
			ReportDefaultFormat: "table",
		},
	}
}

// GetDatabasePath returns the full path to the database file
func (c *Config) GetDatabasePath() string {
	if c.Database.InMemory {
		return InMemoryDatabasePath
	}
	return filepath.Join(c.Database.Dir, c.Database.Filename)
}

// GetQueryTimeout returns the database query timeout
func (c *Config) GetQueryTimeout() time.Duration {
	return c.Database.QueryTimeout
}

// GetWriteTimeout returns the database write timeout
func (c *Config) GetWriteTimeout() time.Duration {
	return c.Database.WriteTimeout
}

// DefaultConfigFile is the YAML file read from the data directory when
// no explicit --config path is given.
func (c *Config) DefaultConfigFile() string {
	return filepath.Join(c.Database.Dir, "roster.yaml")
}

// newViper seeds a viper instance with the current values as defaults and
// binds every environment override.
func (c *Config) newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")

	v.SetDefault("database.dir", c.Database.Dir)
	v.SetDefault("database.filename", c.Database.Filename)
	v.SetDefault("database.query_timeout", c.Database.QueryTimeout.String())
	v.SetDefault("database.write_timeout", c.Database.WriteTimeout.String())
	v.SetDefault("database.dir_permissions", strconv.FormatUint(uint64(c.Database.DirPermissions), 8))
	v.SetDefault("database.in_memory", c.Database.InMemory)
	v.SetDefault("validation.name_max_length", c.Validation.NameMaxLength)
	v.SetDefault("validation.max_task_duration", c.Validation.MaxTaskDuration)
	v.SetDefault("display.table_width", c.Display.TableWidth)
	v.SetDefault("display.date_format", c.Display.DateFormat)
	v.SetDefault("application.timeout", c.Application.Timeout.String())
	v.SetDefault("application.verbose", c.Application.Verbose)
	v.SetDefault("application.log_level", c.Application.LogLevel)
	v.SetDefault("commands.report_default_format", c.Commands.ReportDefaultFormat)

	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}
	return v
}

// apply copies the resolved viper values into c. Malformed values keep the
// previous setting, matching the lenient env parsing of earlier releases.
func (c *Config) apply(v *viper.Viper) {
	c.Database.Dir = v.GetString("database.dir")
	c.Database.Filename = v.GetString("database.filename")
	c.Database.QueryTimeout = ParseDurationWithFallback(v.GetString("database.query_timeout"), c.Database.QueryTimeout)
	c.Database.WriteTimeout = ParseDurationWithFallback(v.GetString("database.write_timeout"), c.Database.WriteTimeout)
	c.Database.DirPermissions = ParseUint32WithFallback(v.GetString("database.dir_permissions"), 8, c.Database.DirPermissions)
	c.Database.InMemory = ParseBoolWithFallback(v.GetString("database.in_memory"), c.Database.InMemory)

	c.Validation.NameMaxLength = ParseIntWithFallback(v.GetString("validation.name_max_length"), c.Validation.NameMaxLength)
	c.Validation.MaxTaskDuration = ParseIntWithFallback(v.GetString("validation.max_task_duration"), c.Validation.MaxTaskDuration)

	c.Display.TableWidth = ParseIntWithFallback(v.GetString("display.table_width"), c.Display.TableWidth)
	c.Display.DateFormat = v.GetString("display.date_format")

	c.Application.Timeout = ParseDurationWithFallback(v.GetString("application.timeout"), c.Application.Timeout)
	c.Application.Verbose = ParseBoolWithFallback(v.GetString("application.verbose"), c.Application.Verbose)
	c.Application.LogLevel = strings.ToLower(v.GetString("application.log_level"))

	c.Commands.ReportDefaultFormat = v.GetString("commands.report_default_format")
}

// LoadFromEnvironment loads configuration from ROSTER_* environment variables
func (c *Config) LoadFromEnvironment() error {
	c.apply(c.newViper())
	return nil
}

// LoadFromFile reads a YAML config file and then applies environment
// overrides on top of it. A missing file is not an error.
func (c *Config) LoadFromFile(path string) error {
	v := c.newViper()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist) {
			c.apply(v)
			return nil
		}
		return &ConfigError{Field: "config_file", Message: fmt.Sprintf("reading %s: %v", path, err)}
	}

	c.apply(v)
	return nil
}

// Validate validates the configuration and returns any errors
func (c *Config) Validate() error {
	if !c.Database.InMemory {
		if c.Database.Dir == "" {
			return &ConfigError{Field: "database.dir", Message: "database directory cannot be empty"}
		}
		if c.Database.Filename == "" {
			return &ConfigError{Field: "database.filename", Message: "database filename cannot be empty"}
		}
	}
	if c.Database.QueryTimeout <= 0 {
		return &ConfigError{Field: "database.query_timeout", Message: "query timeout must be positive"}
	}
	if c.Database.WriteTimeout <= 0 {
		return &ConfigError{Field: "database.write_timeout", Message: "write timeout must be positive"}
	}

	if c.Validation.NameMaxLength < 1 {
		return &ConfigError{Field: "validation.name_max_length", Message: "name maximum length must be at least 1"}
	}
	if c.Validation.MaxTaskDuration < 1 {
		return &ConfigError{Field: "validation.max_task_duration", Message: "maximum task duration must be at least 1 hour"}
	}

	if c.Display.TableWidth < 20 {
		return &ConfigError{Field: "display.table_width", Message: "table width must be at least 20"}
	}
	if c.Display.DateFormat == "" {
		return &ConfigError{Field: "display.date_format", Message: "date format cannot be empty"}
	}

	if c.Application.Timeout <= 0 {
		return &ConfigError{Field: "application.timeout", Message: "application timeout must be positive"}
	}
	switch c.Application.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return &ConfigError{Field: "application.log_level", Message: "log level must be one of debug, info, warn, error"}
	}

	switch c.Commands.ReportDefaultFormat {
	case "table", "csv", "json", "yaml":
	default:
		return &ConfigError{Field: "commands.report_default_format", Message: "report format must be one of table, csv, json, yaml"}
	}

	return nil
}

// ConfigError represents a configuration validation error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}
