package main

import (
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// newLogger builds the service logger: console output by default, JSON when
// configured, level from config with info as the fallback.
func newLogger(cfg Config) zerolog.Logger {
	level, err := zerolog.ParseLevel(strings.ToLower(cfg.LogLevel))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	var logger zerolog.Logger
	if cfg.LogJSON {
		logger = zerolog.New(os.Stderr)
	} else {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}

	return logger.Level(level).With().Timestamp().Str("service", "resilience-pilot").Logger()
}
