package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/funvibe/lox/internal/ast"
	"github.com/funvibe/lox/internal/backend"
	"github.com/funvibe/lox/internal/config"
	"github.com/funvibe/lox/internal/diagnostics"
	"github.com/funvibe/lox/internal/lexer"
	"github.com/funvibe/lox/internal/parser"
	"github.com/funvibe/lox/internal/pipeline"
	"github.com/funvibe/lox/internal/prettyprinter"
	"github.com/funvibe/lox/internal/resolver"
)

func (d *driver) newBackend() *backend.TreeWalkBackend {
	return backend.NewTreeWalk(d.stdout, d.cfg.CallDepth())
}

// execute runs src through every stage on b. SIGINT cancels the run.
func (d *driver) execute(parent context.Context, b *backend.TreeWalkBackend, src, path string) *pipeline.PipelineContext {
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, os.Interrupt)
	defer stop()

	pctx := pipeline.NewPipelineContext(src)
	pctx.Context = ctx
	pctx.FilePath = path
	pctx.ResolutionMap = b.Locals()

	p := pipeline.New(
		&lexer.LexerProcessor{},
		&parser.ParserProcessor{},
		&resolver.ResolverProcessor{},
		backend.NewExecutionProcessor(b),
	).WithLogger(d.logger)
	return p.Run(pctx)
}

func (d *driver) runFile(ctx context.Context, path string) int {
	src, err := os.ReadFile(path)
	if err != nil {
		d.report(fmt.Sprintf("could not read %s: %v", path, err))
		return config.ExitIOError
	}

	d.logger.Debug().Str("file", path).Int("bytes", len(src)).Msg("running script")
	pctx := d.execute(ctx, d.newBackend(), string(src), path)
	d.reportAll(pctx.Errors)
	return exitCode(pctx)
}

// exitCode maps the outcome of a run: 70 for a runtime error, 65 for any
// other diagnostic.
func exitCode(pctx *pipeline.PipelineContext) int {
	switch {
	case pctx.RuntimeError() != nil:
		return config.ExitSoftware
	case pctx.HasErrors():
		return config.ExitDataError
	}
	return config.ExitOK
}

func (d *driver) dumpTokens(path string) int {
	src, err := os.ReadFile(path)
	if err != nil {
		d.report(fmt.Sprintf("could not read %s: %v", path, err))
		return config.ExitIOError
	}

	tokens, errs := lexer.Scan(string(src))
	for _, tok := range tokens {
		fmt.Fprintf(d.stdout, "%d:%d %s\n", tok.Line, tok.Column, tok)
	}
	d.reportAll(errs)
	if len(errs) > 0 {
		return config.ExitDataError
	}
	return config.ExitOK
}

// parseFile scans and parses path, reporting any diagnostics. It returns
// nil with the exit code on failure.
func (d *driver) parseFile(path string) ([]ast.Stmt, int) {
	src, err := os.ReadFile(path)
	if err != nil {
		d.report(fmt.Sprintf("could not read %s: %v", path, err))
		return nil, config.ExitIOError
	}

	pctx := pipeline.NewPipelineContext(string(src))
	pctx.FilePath = path
	pctx = pipeline.New(&lexer.LexerProcessor{}, &parser.ParserProcessor{}).WithLogger(d.logger).Run(pctx)
	if pctx.HasErrors() {
		d.reportAll(pctx.Errors)
		return nil, config.ExitDataError
	}
	return pctx.Statements, config.ExitOK
}

func (d *driver) dumpAST(path string) int {
	stmts, code := d.parseFile(path)
	if code != config.ExitOK {
		return code
	}
	printer := prettyprinter.NewTreePrinter()
	printer.PrintProgram(stmts)
	fmt.Fprint(d.stdout, printer.String())
	return config.ExitOK
}

// format reprints path from its syntax tree. Comments are not kept.
func (d *driver) format(path string) int {
	stmts, code := d.parseFile(path)
	if code != config.ExitOK {
		return code
	}
	printer := prettyprinter.NewCodePrinter()
	printer.PrintProgram(stmts)
	fmt.Fprint(d.stdout, printer.String())
	return config.ExitOK
}

func (d *driver) reportAll(errs []*diagnostics.DiagnosticError) {
	for _, err := range errs {
		d.report(err.Error())
	}
}

func (d *driver) report(msg string) {
	d.errColor.Fprintln(d.stderr, msg)
}
