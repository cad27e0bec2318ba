// Package logging constructs the structured logger used by the server and
// batch runner.
package logging

import (
	"os"

	"github.com/rs/zerolog"
)

// New returns a zerolog logger at the given level, falling back to info for
// unknown level names.
func New(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}

	return zerolog.New(os.Stdout).
		Level(lvl).
		With().
		Timestamp().
		Logger()
}
