// Package logger provides the package-level logger for the module.
// It wraps zerolog; embedding applications can redirect or disable it.
package logger

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

var logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).
	With().Timestamp().Logger().Level(zerolog.InfoLevel)

// Logger returns the module logger. Callers derive their own context from it:
//
//	log := logger.Logger().With().Int("rounds", n).Logger()
func Logger() zerolog.Logger {
	return logger
}

// SetOutput redirects all loggers derived from Logger after this call.
func SetOutput(w io.Writer) {
	logger = logger.Output(w)
}

// SetLevel sets the minimum level that gets emitted.
func SetLevel(level zerolog.Level) {
	logger = logger.Level(level)
}

// Disable turns logging off.
func Disable() {
	logger = logger.Level(zerolog.Disabled)
}
