// Package logger holds the process-wide zerolog logger. The logger is a
// no-op unless verbose output is enabled, so the core packages can emit
// debug traces unconditionally.
package logger

import (
	"os"

	"github.com/rs/zerolog"
)

// L is the shared logger. Defaults to a no-op logger; Init replaces it.
var L = zerolog.Nop()

// Init configures L for the current invocation. With verbose set, debug
// traces are written to stderr in console format, keeping stdout clean for
// shell evaluation.
func Init(verbose bool) {
	if !verbose {
		L = zerolog.Nop()
		return
	}
	out := zerolog.ConsoleWriter{Out: os.Stderr}
	L = zerolog.New(out).Level(zerolog.DebugLevel).With().Timestamp().Logger()
}
