package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

const (
	envLogLevel  = "FAVORITES_LOG_LEVEL"
	envLogFormat = "FAVORITES_LOG_FORMAT"

	logFormatText = "text"
	logFormatJSON = "json"
)

var (
	ErrInvalidLogLevel  = errors.New("invalid log level")
	ErrInvalidLogFormat = errors.New("invalid log format")
)

// Config holds the environment configuration of the demo.
type Config struct {
	LogLevel  slog.Level
	LogFormat string
}

// loadConfig reads the demo configuration through getenv, usually os.Getenv.
// Unset variables fall back to info level and text format.
func loadConfig(getenv func(string) string) (Config, error) {
	cfg := Config{
		LogLevel:  slog.LevelInfo,
		LogFormat: logFormatText,
	}

	if level := getenv(envLogLevel); level != "" {
		if err := cfg.LogLevel.UnmarshalText([]byte(level)); err != nil {
			return Config{}, fmt.Errorf("%w %q in %s", ErrInvalidLogLevel, level, envLogLevel)
		}
	}

	if format := strings.ToLower(getenv(envLogFormat)); format != "" {
		switch format {
		case logFormatText, logFormatJSON:
			cfg.LogFormat = format
		default:
			return Config{}, fmt.Errorf("%w %q in %s", ErrInvalidLogFormat, format, envLogFormat)
		}
	}

	return cfg, nil
}

func (c Config) newLogger(w io.Writer) *slog.Logger {
	options := &slog.HandlerOptions{Level: c.LogLevel}

	if c.LogFormat == logFormatJSON {
		return slog.New(slog.NewJSONHandler(w, options))
	}

	return slog.New(slog.NewTextHandler(w, options))
}
