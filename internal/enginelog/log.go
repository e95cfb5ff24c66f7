// Package enginelog wraps the stdlib log package for search diagnostics
// (depth reached, nodes visited, elapsed time), gated by a verbosity flag.
// Protocol/game output itself goes straight to stdout via fmt; this
// package is only for the diagnostic side-channel.
package enginelog

import (
	"log"
	"os"
)

// Logger is a thin, verbosity-gated wrapper around *log.Logger.
type Logger struct {
	verbose bool
	l       *log.Logger
}

// New builds a Logger writing to stderr with a "chessbot: " prefix.
// Messages are dropped unless verbose is true.
func New(verbose bool) *Logger {
	return &Logger{verbose: verbose, l: log.New(os.Stderr, "chessbot: ", log.LstdFlags)}
}

// Searchf logs a search-diagnostic line (depth, nodes, elapsed) if the
// logger is verbose; it is a no-op otherwise.
func (lg *Logger) Searchf(format string, args ...any) {
	if !lg.verbose {
		return
	}
	lg.l.Printf(format, args...)
}
