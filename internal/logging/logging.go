// Package logging builds the diagnostic logger used by the driver and
// the pipeline. Program output never goes through it.
package logging

import (
	"io"
	"os"
	"strings"

	"github.com/oarkflow/log"
)

// Levels lists the level names accepted in configuration and flags.
var Levels = []string{"trace", "debug", "info", "warn", "error", "fatal"}

// ValidLevel reports whether name is one of Levels.
func ValidLevel(name string) bool {
	name = strings.ToLower(name)
	for _, l := range Levels {
		if l == name {
			return true
		}
	}
	return false
}

// New returns a logger writing JSON lines to w at the given level. A nil
// writer means stderr.
func New(level string, w io.Writer) *log.Logger {
	if w == nil {
		w = os.Stderr
	}
	return &log.Logger{
		Level:  log.ParseLevel(strings.ToLower(level)),
		Writer: &log.IOWriter{Writer: w},
	}
}
