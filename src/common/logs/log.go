// Package logs provides the common logging facility for fit-track.
// It wraps charmbracelet/log with a small configuration surface so that
// the daemon and its tests configure logging the same way.
package logs

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// LogFormat defines the output format for logs
type LogFormat string

const (
	// FormatText renders human-readable logs
	FormatText LogFormat = "text"
	// FormatJSON renders one JSON object per log line
	FormatJSON LogFormat = "json"
)

// Logger wraps the charm log.Logger with additional configuration
type Logger struct {
	*log.Logger
	format LogFormat
}

// Config holds the configuration for the logger
type Config struct {
	// Format selects the log output format (text, json)
	Format LogFormat
	// Level sets the minimum log level (debug, info, warn, error)
	Level string
	// Prefix sets a prefix for all log messages
	Prefix string
	// Writer overrides the output destination; defaults to stderr
	Writer io.Writer
}

// DefaultConfig returns a default configuration
func DefaultConfig() Config {
	return Config{
		Format: FormatText,
		Level:  "info",
	}
}

// parseLevel converts a string level to log.Level
func parseLevel(level string) log.Level {
	switch level {
	case "debug":
		return log.DebugLevel
	case "info":
		return log.InfoLevel
	case "warn":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}

// New creates a new Logger with the given configuration
func New(cfg Config) *Logger {
	writer := cfg.Writer
	if writer == nil {
		writer = os.Stderr
	}

	formatter := log.TextFormatter
	format := FormatText
	if cfg.Format == FormatJSON {
		formatter = log.JSONFormatter
		format = FormatJSON
	}

	logger := log.NewWithOptions(writer, log.Options{
		Level:           parseLevel(cfg.Level),
		Prefix:          cfg.Prefix,
		Formatter:       formatter,
		ReportTimestamp: true,
	})

	return &Logger{
		Logger: logger,
		format: format,
	}
}

// NewDefault creates a new Logger with default configuration
func NewDefault() *Logger {
	return New(DefaultConfig())
}

// Format returns the configured output format
func (l *Logger) Format() LogFormat {
	return l.format
}
