package config

import (
	"strconv"
	"time"
)

// Loader handles loading configuration from multiple sources
type Loader struct {
	config     *Config
	configFile string
}

// NewLoader creates a new configuration loader
func NewLoader() *Loader {
	return &Loader{
		config: NewConfig(),
	}
}

// WithConfigFile sets an explicit YAML config file. Without one the loader
// looks for roster.yaml in the data directory.
func (l *Loader) WithConfigFile(path string) *Loader {
	l.configFile = path
	return l
}

// Load loads configuration using the cascading strategy:
// 1. Start with defaults
// 2. Override with the YAML config file, if present
// 3. Override with environment variables
// 4. Override with command line flags (handled by cobra)
func (l *Loader) Load() (*Config, error) {
	// the data directory itself may come from the environment
	if err := l.config.LoadFromEnvironment(); err != nil {
		return nil, err
	}

	path := l.configFile
	if path == "" {
		path = l.config.DefaultConfigFile()
	}
	if err := l.config.LoadFromFile(path); err != nil {
		return nil, err
	}

	if err := l.config.Validate(); err != nil {
		return nil, err
	}

	return l.config, nil
}

// LoadWithOverrides loads configuration and applies command line overrides
func (l *Loader) LoadWithOverrides(overrides *ConfigOverrides) (*Config, error) {
	config, err := l.Load()
	if err != nil {
		return nil, err
	}

	if overrides != nil {
		overrides.ApplyTo(config)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// ConfigOverrides holds command line flag overrides
type ConfigOverrides struct {
	DBDir          *string
	DBFilename     *string
	DBQueryTimeout *time.Duration
	DBWriteTimeout *time.Duration
	InMemory       *bool

	NameMaxLength   *int
	MaxTaskDuration *int

	TableWidth *int

	Timeout  *time.Duration
	Verbose  *bool
	LogLevel *string

	ReportDefaultFormat *string
}

// ApplyTo copies every set override into config
func (o *ConfigOverrides) ApplyTo(config *Config) {
	if o.DBDir != nil {
		config.Database.Dir = *o.DBDir
	}
	if o.DBFilename != nil {
		config.Database.Filename = *o.DBFilename
	}
	if o.DBQueryTimeout != nil {
		config.Database.QueryTimeout = *o.DBQueryTimeout
	}
	if o.DBWriteTimeout != nil {
		config.Database.WriteTimeout = *o.DBWriteTimeout
	}
	if o.InMemory != nil {
		config.Database.InMemory = *o.InMemory
	}

	if o.NameMaxLength != nil {
		config.Validation.NameMaxLength = *o.NameMaxLength
	}
	if o.MaxTaskDuration != nil {
		config.Validation.MaxTaskDuration = *o.MaxTaskDuration
	}

	if o.TableWidth != nil {
		config.Display.TableWidth = *o.TableWidth
	}

	if o.Timeout != nil {
		config.Application.Timeout = *o.Timeout
	}
	if o.Verbose != nil {
		config.Application.Verbose = *o.Verbose
	}
	if o.LogLevel != nil {
		config.Application.LogLevel = *o.LogLevel
	}

	if o.ReportDefaultFormat != nil {
		config.Commands.ReportDefaultFormat = *o.ReportDefaultFormat
	}
}

// ParseDurationWithFallback parses a duration string with a fallback value
func ParseDurationWithFallback(s string, fallback time.Duration) time.Duration {
	if d, err := time.ParseDuration(s); err == nil {
		return d
	}
	return fallback
}

// ParseIntWithFallback parses an integer string with a fallback value
func ParseIntWithFallback(s string, fallback int) int {
	if i, err := strconv.Atoi(s); err == nil {
		return i
	}
	return fallback
}

// ParseBoolWithFallback parses a boolean string with a fallback value
func ParseBoolWithFallback(s string, fallback bool) bool {
	if b, err := strconv.ParseBool(s); err == nil {
		return b
	}
	return fallback
}

// ParseUint32WithFallback parses a uint32 string with a fallback value
func ParseUint32WithFallback(s string, base int, fallback uint32) uint32 {
	if u, err := strconv.ParseUint(s, base, 32); err == nil {
		return uint32(u)
	}
	return fallback
}
