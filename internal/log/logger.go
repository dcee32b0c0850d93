// Package log configures structured logging for hooks and service runners.
package log

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/openstack-snaps/manila-data/internal/terminal"
)

// Format represents the log output format.
type Format string

const (
	// FormatJSON outputs logs in JSON format for machine parsing.
	FormatJSON Format = "json"
	// FormatText outputs logs in human-readable text format.
	FormatText Format = "text"
)

// Standard field keys for structured logging.
const (
	// ComponentKey is the field key for the emitting component.
	ComponentKey = "component"
	// CorrelationIDKey is the field key for the per-invocation id.
	CorrelationIDKey = "correlation_id"
	// HookKey is the field key for lifecycle hook names.
	HookKey = "hook"
	// ServiceKey is the field key for service names.
	ServiceKey = "service"
)

// Config holds the logging configuration.
type Config struct {
	// Level sets the minimum log level (debug, info, warn, error).
	// Default: info
	Level string

	// Format sets the console output format (json, text). Empty selects text
	// on a terminal and JSON otherwise. Log files are always JSON.
	Format Format

	// Output is the console writer.
	// Default: os.Stderr
	Output io.Writer

	// AddSource adds source file and line information to logs.
	// Default: false
	AddSource bool
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Level:  "info",
		Output: os.Stderr,
	}
}

// FromEnv creates a Config from environment variables.
// Supported environment variables:
//   - MANILA_SNAP_DEBUG: true/1 to enable debug level and source logging (takes precedence)
//   - LOG_LEVEL: debug, info, warn, error (default: info)
//   - LOG_FORMAT: json, text (default: text on a terminal, else json)
func FromEnv(lookupEnv func(string) (string, bool)) *Config {
	cfg := DefaultConfig()
	get := func(key string) string {
		value, _ := lookupEnv(key)
		return strings.TrimSpace(value)
	}

	debug := get("MANILA_SNAP_DEBUG")
	if debug == "true" || debug == "1" {
		cfg.Level = "debug"
		cfg.AddSource = true
	} else if level := get("LOG_LEVEL"); level != "" {
		cfg.Level = strings.ToLower(level)
	}

	if format := get("LOG_FORMAT"); format != "" {
		cfg.Format = Format(strings.ToLower(format))
	}
	return cfg
}

// New creates a console logger from the given configuration.
func New(cfg *Config) *slog.Logger {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return slog.New(consoleHandler(cfg))
}

func handlerOptions(cfg *Config) *slog.HandlerOptions {
	return &slog.HandlerOptions{
		Level:     parseLevel(cfg.Level),
		AddSource: cfg.AddSource,
	}
}

func consoleHandler(cfg *Config) slog.Handler {
	output := cfg.Output
	if output == nil {
		output = os.Stderr
	}
	format := cfg.Format
	if format == "" {
		format = FormatJSON
		if terminal.IsTerminal(output) {
			format = FormatText
		}
	}
	if format == FormatText {
		return slog.NewTextHandler(output, handlerOptions(cfg))
	}
	return slog.NewJSONHandler(output, handlerOptions(cfg))
}

// parseLevel converts a string level to slog.Level.
func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// WithComponent returns a new logger with a component name field.
func WithComponent(logger *slog.Logger, component string) *slog.Logger {
	return logger.With(ComponentKey, component)
}

// WithCorrelationID returns a new logger with a correlation ID field.
// Correlation IDs tie together every line of one hook invocation.
func WithCorrelationID(logger *slog.Logger, correlationID string) *slog.Logger {
	return logger.With(CorrelationIDKey, correlationID)
}

// Discard returns a logger that drops everything.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
