// Package logging configures the zerolog logger used by the filemagic CLI.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// LevelFromVerbosity maps -v flags onto a level. level is used when
// verbosity is 0.
func LevelFromVerbosity(level zerolog.Level, verbosity int) zerolog.Level {
	switch {
	case verbosity <= 0:
		return level
	case verbosity == 1:
		return zerolog.InfoLevel
	case verbosity == 2:
		return zerolog.DebugLevel
	default:
		return zerolog.TraceLevel
	}
}

// Setup configures the global logger to write human readable lines to w.
// Colour is only used when w is a terminal.
func Setup(level zerolog.Level, w io.Writer) zerolog.Logger {
	zerolog.SetGlobalLevel(level)

	consoleWriter := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.Kitchen,
		NoColor:    !isTerminal(w),
	}

	logger := zerolog.New(consoleWriter).Level(level).With().Timestamp().Logger()

	// Add caller information for debug and trace levels
	if level <= zerolog.DebugLevel {
		logger = logger.With().Caller().Logger()
	}

	log.Logger = logger
	logger.Debug().Str("level", level.String()).Msg("Logger initialized")
	return logger
}

// GetLogger returns a contextualized logger with the given name
func GetLogger(name string) zerolog.Logger {
	return log.With().Str("component", name).Logger()
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
