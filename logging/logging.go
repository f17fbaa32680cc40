package logging

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// Output formats.
const (
	FormatJSON = "json"
	FormatText = "text"
)

// ErrUnknownFormat is returned by Validate for an unsupported format.
var ErrUnknownFormat = errors.New("unknown log format")

// LoggerConfig holds configuration for the logger. It can be decoded from a
// "logging" section of the configuration document.
type LoggerConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// SetDefaults fills an empty level and format.
func (c *LoggerConfig) SetDefaults() bool {
	changed := false

	if c.Level == "" {
		c.Level = "info"
		changed = true
	}

	if c.Format == "" {
		c.Format = FormatJSON
		changed = true
	}

	return changed
}

// Validate rejects formats NewLogger does not know.
func (c *LoggerConfig) Validate() error {
	switch strings.ToLower(c.Format) {
	case "", FormatJSON, FormatText:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, c.Format)
	}
}

// NewLogger creates a new slog.Logger writing to w. The format is JSON
// unless the config asks for text. The level is parsed from the config;
// defaults to INFO if invalid or empty.
func NewLogger(config LoggerConfig, w io.Writer) *slog.Logger {
	options := &slog.HandlerOptions{
		AddSource:   false,
		Level:       ParseLevel(config.Level),
		ReplaceAttr: nil,
	}

	if strings.EqualFold(config.Format, FormatText) {
		return slog.New(slog.NewTextHandler(w, options))
	}

	return slog.New(slog.NewJSONHandler(w, options))
}

// ParseLevel maps a level name to a slog.Level, case-insensitively.
// Unknown names map to INFO.
func ParseLevel(level string) slog.Level {
	switch strings.ToUpper(level) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
