package pipeline

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/oarkflow/log"
)

// Processor is one stage of the pipeline.
type Processor interface {
	Process(ctx *PipelineContext) *PipelineContext
}

// Pipeline represents a sequence of processing stages.
type Pipeline struct {
	processors []Processor
	logger     *log.Logger
}

func New(processors ...Processor) *Pipeline {
	return &Pipeline{processors: processors}
}

// WithLogger attaches a logger that records per-stage timings.
func (p *Pipeline) WithLogger(logger *log.Logger) *Pipeline {
	p.logger = logger
	return p
}

// Run executes the pipeline.
func (p *Pipeline) Run(initialCtx *PipelineContext) *PipelineContext {
	ctx := initialCtx
	if ctx.RunID == "" {
		ctx.RunID = uuid.NewString()
	}
	for _, processor := range p.processors {
		start := time.Now()
		before := len(ctx.Errors)
		ctx = processor.Process(ctx)
		// Stages gate themselves on ctx.Errors, so later processors still
		// run and simply return early.
		if p.logger != nil {
			p.logger.Debug().
				Str("run", ctx.RunID).
				Str("stage", stageName(processor)).
				Dur("elapsed", time.Since(start)).
				Int("errors", len(ctx.Errors)-before).
				Msg("stage finished")
		}
	}
	return ctx
}

func stageName(p Processor) string {
	if named, ok := p.(interface{ Name() string }); ok {
		return named.Name()
	}
	return fmt.Sprintf("%T", p)
}
