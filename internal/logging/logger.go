package logging

import (
	"fmt"
	"os"

	"roster/internal/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// DebugEnvVar forces debug-level logging when set to any non-empty value.
const DebugEnvVar = "ROSTER_DEBUG"

// DebugEnabled returns true if debug mode is enabled via ROSTER_DEBUG
func DebugEnabled() bool {
	return os.Getenv(DebugEnvVar) != ""
}

// New builds the application logger. Verbose runs get a human-readable
// console encoder; everything else logs JSON to stderr.
func New(cfg *config.Config) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Application.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.Application.LogLevel, err)
	}
	if DebugEnabled() {
		level = zapcore.DebugLevel
	}

	var zapConfig zap.Config
	if cfg.Application.Verbose {
		zapConfig = zap.NewDevelopmentConfig()
		zapConfig.DisableStacktrace = true
	} else {
		zapConfig = zap.NewProductionConfig()
		zapConfig.Sampling = nil
	}
	zapConfig.Level = zap.NewAtomicLevelAt(level)
	zapConfig.OutputPaths = []string{"stderr"}
	zapConfig.ErrorOutputPaths = []string{"stderr"}

	logger, err := zapConfig.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}
	return logger.Named("roster"), nil
}

// NewOrNop is New for callers that must not fail on logging setup.
func NewOrNop(cfg *config.Config) *zap.Logger {
	logger, err := New(cfg)
	if err != nil {
		return zap.NewNop()
	}
	return logger
}
