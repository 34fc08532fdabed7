package starlark

import (
	"context"
	"fmt"
	"time"

	"github.com/robbyt/go-polyshell/engine"
	starlarkLib "go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// value adapts a Starlark value to engine.Value. Starlark's String method is
// already the repr form: strings are quoted, containers show their elements' reprs.
type value struct {
	starlarkLib.Value
}

func (v value) Repr() string {
	return v.Value.String()
}

// Evaluate parses sourceText as a chunk of Starlark statements and runs them in
// order against the session globals. Each expression statement whose value is
// not None contributes one element to the result.
func (e *Engine) Evaluate(ctx context.Context, sourceID, sourceText string) engine.Outcome {
	e.mu.Lock()
	defer e.mu.Unlock()

	logger := e.logger.WithGroup("Evaluate").With("sourceID", sourceID)
	startTime := time.Now()

	f, err := e.fileOpts.Parse(sourceID, sourceText, 0)
	if err != nil {
		logger.DebugContext(ctx, "parse failed", "error", err)
		return engine.Fail(diagnose(sourceID, err))
	}

	thread := e.newThread(ctx, sourceID)
	stop := context.AfterFunc(ctx, func() {
		thread.Cancel(ctx.Err().Error())
	})
	defer stop()

	var values engine.Values
	for _, stmt := range f.Stmts {
		if expr, ok := stmt.(*syntax.ExprStmt); ok {
			v, err := starlarkLib.EvalExprOptions(f.Options, thread, expr.X, e.globals)
			if err != nil {
				logger.DebugContext(ctx, "expression failed", "error", err)
				return engine.Fail(diagnose(sourceID, err))
			}
			if v != nil && v != starlarkLib.None {
				values = append(values, value{v})
			}
			continue
		}

		chunk := &syntax.File{Path: f.Path, Stmts: []syntax.Stmt{stmt}, Options: f.Options}
		if err := starlarkLib.ExecREPLChunk(chunk, thread, e.globals); err != nil {
			logger.DebugContext(ctx, "statement failed", "error", err)
			return engine.Fail(diagnose(sourceID, err))
		}
	}

	logger.DebugContext(ctx, "evaluation complete",
		"values", len(values), "execTime", time.Since(startTime))
	if len(values) == 0 {
		return nil
	}
	return engine.Ok{Result: values}
}

// newThread creates the thread for one evaluation. print() goes to the
// engine's output writer.
func (e *Engine) newThread(ctx context.Context, sourceID string) *starlarkLib.Thread {
	return &starlarkLib.Thread{
		Name: sourceID,
		Print: func(thread *starlarkLib.Thread, msg string) {
			if _, err := fmt.Fprintln(e.stdout, msg); err != nil {
				e.logger.WarnContext(ctx, "print failed", "error", err, "starlark-thread", thread.Name)
			}
		},
	}
}
