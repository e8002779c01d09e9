// Package config loads the kata CLI configuration from a TOML file.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/pelletier/go-toml/v2"
)

type LoggingLevel string

const (
	LoggingLevelDebug LoggingLevel = "debug"
	LoggingLevelInfo  LoggingLevel = "info"
	LoggingLevelWarn  LoggingLevel = "warn"
	LoggingLevelError LoggingLevel = "error"
)

// ErrInvalidLevel is returned by Load for an unknown logging level.
var ErrInvalidLevel = errors.New("config: invalid logging level")

// File is the on-disk layout.
type File struct {
	Logging LoggingConfig
}

type LoggingConfig struct {
	Level LoggingLevel
	Color bool
}

// Default is used when no file is given and fills keys a file leaves out.
func Default() *File {
	return &File{
		Logging: LoggingConfig{
			Level: LoggingLevelInfo,
			Color: true,
		},
	}
}

// Load reads path over the defaults. An empty path returns Default().
func Load(path string) (*File, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: unable to read %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: unable to unmarshal %s: %w", path, err)
	}
	if _, ok := cfg.Logging.Level.Slog(); !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidLevel, cfg.Logging.Level)
	}

	return cfg, nil
}

// Slog maps the level onto slog; false for an unknown level.
func (l LoggingLevel) Slog() (slog.Level, bool) {
	switch l {
	case LoggingLevelDebug:
		return slog.LevelDebug, true
	case LoggingLevelInfo:
		return slog.LevelInfo, true
	case LoggingLevelWarn:
		return slog.LevelWarn, true
	case LoggingLevelError:
		return slog.LevelError, true
	default:
		return slog.LevelError, false
	}
}
