// Package backend executes resolved programs. The tree-walk backend keeps
// one interpreter session alive across runs so a REPL can build on the
// globals of earlier lines.
package backend

import (
	"github.com/funvibe/lox/internal/pipeline"
)

// Backend is the interface for execution backends
type Backend interface {
	// Run executes ctx.Statements. A runtime failure is returned as an
	// error; program output goes to the backend's writer.
	Run(ctx *pipeline.PipelineContext) error

	// Name returns the backend name for display
	Name() string
}
