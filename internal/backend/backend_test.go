package backend_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/funvibe/lox/internal/backend"
	"github.com/funvibe/lox/internal/diagnostics"
	"github.com/funvibe/lox/internal/evaluator"
	"github.com/funvibe/lox/internal/pipeline"
)

func TestSessionAcrossRuns(t *testing.T) {
	var out bytes.Buffer
	b := backend.NewTreeWalk(&out, 0)
	p := newPipeline(b)

	lines := []string{
		"var count = 0;",
		"fun bump() { count = count + 1; return count; }",
		"print nope;",
		"print bump(); print bump();",
		"class A { hi() { return \"hi\"; } }",
		"print A().hi();",
	}
	var errs []*diagnostics.DiagnosticError
	for _, line := range lines {
		ctx := pipeline.NewPipelineContext(line)
		ctx.ResolutionMap = b.Locals()
		ctx = p.Run(ctx)
		errs = append(errs, ctx.Errors...)
	}

	assert.Equal(t, "1\n2\nhi\n", out.String())
	require.Len(t, errs, 1)
	assert.Equal(t, diagnostics.ErrR001, errs[0].Code)
	assert.Equal(t, "Undefined variable 'nope'.\n[line 1]", errs[0].Error())
}

func TestSeparateResolutionMapIsMerged(t *testing.T) {
	var out bytes.Buffer
	b := backend.NewTreeWalk(&out, 0)
	ctx := pipeline.NewPipelineContext("{ var a = \"local\"; print a; }")
	ctx = newPipeline(b).Run(ctx)
	require.Empty(t, ctx.Errors)
	assert.Equal(t, "local\n", out.String())
}

func TestExecutionSkippedAfterErrors(t *testing.T) {
	var out bytes.Buffer
	b := backend.NewTreeWalk(&out, 0)
	ctx := pipeline.NewPipelineContext("print \"side effect\"; return 1;")
	ctx.ResolutionMap = b.Locals()
	ctx = newPipeline(b).Run(ctx)

	assert.Empty(t, out.String())
	require.Len(t, ctx.Errors, 1)
	assert.Equal(t, diagnostics.ErrA003, ctx.Errors[0].Code)
	assert.Nil(t, ctx.RuntimeError())
}

func TestRuntimeDiagnosticCarriesFile(t *testing.T) {
	b := backend.NewTreeWalk(&bytes.Buffer{}, 0)
	ctx := pipeline.NewPipelineContext("\n\n-\"x\";")
	ctx.FilePath = "neg.lox"
	ctx = newPipeline(b).Run(ctx)

	diag := ctx.RuntimeError()
	require.NotNil(t, diag)
	assert.Equal(t, "neg.lox", diag.File)
	assert.Equal(t, 3, diag.Token.Line)
	assert.Equal(t, "Operand must be a number.\n[line 3]", diag.Error())
}

func TestRuntimeMessageIsNotAFormat(t *testing.T) {
	b := backend.NewTreeWalk(&bytes.Buffer{}, 0)
	b.Globals().Define("fail", &evaluator.Builtin{
		Name:   "fail",
		Params: 0,
		Fn: func(*evaluator.Interpreter, []evaluator.Object) (evaluator.Object, error) {
			return nil, errors.New("100% %d broken")
		},
	})
	ctx := pipeline.NewPipelineContext("fail();")
	ctx.ResolutionMap = b.Locals()
	ctx = newPipeline(b).Run(ctx)

	diag := ctx.RuntimeError()
	require.NotNil(t, diag)
	assert.Equal(t, "100% %d broken\n[line 1]", diag.Error())
}

func TestCancelledRun(t *testing.T) {
	b := backend.NewTreeWalk(&bytes.Buffer{}, 0)
	ctx := pipeline.NewPipelineContext("while (true) {}")
	cancelled, cancel := context.WithCancel(context.Background())
	cancel()
	ctx.Context = cancelled
	ctx = newPipeline(b).Run(ctx)

	diag := ctx.RuntimeError()
	require.NotNil(t, diag)
	assert.Equal(t, "Execution cancelled.", diag.Message)
}

func TestCallDepthLimit(t *testing.T) {
	b := backend.NewTreeWalk(&bytes.Buffer{}, 50)
	ctx := pipeline.NewPipelineContext("fun loop() { loop(); } loop();")
	ctx = newPipeline(b).Run(ctx)

	diag := ctx.RuntimeError()
	require.NotNil(t, diag)
	assert.Equal(t, "Stack overflow.", diag.Message)
}

func TestBackendName(t *testing.T) {
	assert.Equal(t, "tree-walk", backend.NewTreeWalk(nil, 0).Name())
}
