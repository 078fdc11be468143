package main

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// LogConfig holds logger configuration
type LogConfig struct {
	Level  string `yaml:"level" json:"level"`   // debug, info, warn, error
	Pretty bool   `yaml:"pretty" json:"pretty"` // human-readable console output
}

// NewLogger creates the structured logger shared by every component
func NewLogger(cfg LogConfig) zerolog.Logger {
	return newLoggerTo(cfg, os.Stderr)
}

func newLoggerTo(cfg LogConfig, out io.Writer) zerolog.Logger {
	level := zerolog.InfoLevel
	switch cfg.Level {
	case "debug":
		level = zerolog.DebugLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	zerolog.SetGlobalLevel(level)
	zerolog.TimeFieldFormat = time.RFC3339

	if cfg.Pretty {
		out = zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: "15:04:05",
		}
	}

	return zerolog.New(out).
		Level(level).
		With().
		Timestamp().
		Logger()
}
