// Package logging holds the process-wide diagnostic logger. Diagnostics go to
// stderr so they never mix with documents or JSON written to stdout.
package logging

import (
	"io"
	"log"
	"os"
	"sync/atomic"
)

var (
	std     = log.New(os.Stderr, "dreams: ", 0)
	verbose atomic.Bool
)

// SetOutput redirects diagnostics, mostly for tests.
func SetOutput(w io.Writer) {
	std.SetOutput(w)
}

// SetVerbose toggles Debugf output.
func SetVerbose(v bool) {
	verbose.Store(v)
}

// Debugf logs only when verbose output was requested.
func Debugf(format string, args ...any) {
	if !verbose.Load() {
		return
	}
	std.Printf("debug: "+format, args...)
}

// Warnf logs a recoverable problem.
func Warnf(format string, args ...any) {
	std.Printf("warning: "+format, args...)
}

// Errorf logs a failure that the caller is about to surface.
func Errorf(format string, args ...any) {
	std.Printf("error: "+format, args...)
}
