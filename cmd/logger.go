package cmd

import (
	"io"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
)

func setupLogger(logLevel string) zerolog.Logger {
	return newLogger(os.Stderr, logLevel, isatty.IsTerminal(os.Stderr.Fd()))
}

func newLogger(output io.Writer, logLevel string, color bool) zerolog.Logger {
	// Parse log level
	level := zerolog.WarnLevel
	switch logLevel {
	case "debug":
		level = zerolog.DebugLevel
	case "info":
		level = zerolog.InfoLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	return zerolog.New(zerolog.ConsoleWriter{
		Out:        output,
		TimeFormat: time.RFC3339,
		NoColor:    !color || os.Getenv("NO_COLOR") != "",
	}).
		Level(level).
		With().
		Timestamp().
		Logger()
}
