// Package observability constructs the application logger.
package observability

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// InitLogger builds a console logger tagged with the application name.
// Debug-level events are emitted only when debug is set.
func InitLogger(app string, debug bool) zerolog.Logger {
	output := zerolog.ConsoleWriter{
		Out:        os.Stdout,
		TimeFormat: time.RFC3339,
	}

	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}

	return zerolog.New(output).Level(level).With().Timestamp().Str("app", app).Logger()
}
