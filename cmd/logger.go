package main

import (
	"io"

	"github.com/rs/zerolog"
)

// setupLogger builds the process logger. Flag and environment settings win
// over the config file level; the default is warn so the progress line stays clean.
func setupLogger(out io.Writer, flagLevel, fileLevel, format string) zerolog.Logger {
	level := zerolog.WarnLevel
	for _, candidate := range []string{fileLevel, flagLevel} {
		if candidate == "" {
			continue
		}
		if parsed, err := zerolog.ParseLevel(candidate); err == nil {
			level = parsed
		}
	}

	if format == "json" {
		return zerolog.New(out).Level(level).With().Timestamp().Logger()
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: out}).Level(level).With().Timestamp().Logger()
}
