package risor

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	risorLib "github.com/deepnoodle-ai/risor/v2"
	"github.com/deepnoodle-ai/risor/v2/pkg/object"
	"github.com/robbyt/go-polyshell/engine"
)

// Engine evaluates lines of Risor. Every line runs in a fresh VM, so bindings do
// not carry over from one line to the next.
type Engine struct {
	stdout io.Writer

	logHandler slog.Handler
	logger     *slog.Logger
}

// New creates a Risor engine configured by opts.
func New(opts ...FunctionalOption) (*Engine, error) {
	e := &Engine{}
	for _, opt := range opts {
		if err := opt(e); err != nil {
			return nil, fmt.Errorf("error applying option: %w", err)
		}
	}
	e.applyDefaults()
	e.setupLogger()
	return e, nil
}

func (e *Engine) String() string {
	return "risor.Engine"
}

// env returns the globals of one evaluation: the Risor builtins and default
// modules, plus a print that writes to the engine's output.
func (e *Engine) env() map[string]any {
	env := risorLib.Builtins()
	env["print"] = object.NewBuiltin("print", e.print)
	return env
}

func (e *Engine) print(ctx context.Context, args ...object.Object) (object.Object, error) {
	parts := make([]string, len(args))
	for i, arg := range args {
		if s, ok := arg.(*object.String); ok {
			parts[i] = s.Value()
			continue
		}
		parts[i] = arg.Inspect()
	}
	if _, err := fmt.Fprintln(e.stdout, strings.Join(parts, " ")); err != nil {
		return nil, fmt.Errorf("print: %w", err)
	}
	return object.Nil, nil
}

// Evaluate runs sourceText and wraps the value it evaluates to as the single
// element of the result. A nil value produces no outcome.
func (e *Engine) Evaluate(ctx context.Context, sourceID, sourceText string) engine.Outcome {
	logger := e.logger.WithGroup("Evaluate").With("sourceID", sourceID)
	startTime := time.Now()

	result, err := risorLib.Eval(ctx, sourceText,
		risorLib.WithEnv(e.env()),
		risorLib.WithFilename(sourceID),
		risorLib.WithRawResult(),
	)
	execTime := time.Since(startTime)
	if err != nil {
		logger.DebugContext(ctx, "risor execution error", "error", err, "execTime", execTime)
		kind := engine.KindGeneric
		if ctx.Err() != nil {
			kind = engine.KindInterrupted
		}
		return engine.Fail(engine.FromError(kind, sourceID, err))
	}

	logger.DebugContext(ctx, "exec complete", "result", result, "execTime", execTime)
	return outcomeOf(result)
}

// outcomeOf converts a raw Risor result. Objects render with Inspect, which is
// Risor's own repr form.
func outcomeOf(result any) engine.Outcome {
	switch obj := result.(type) {
	case nil, *object.NilType:
		return nil
	case object.Object:
		return engine.Succeed(engine.Text(obj.Inspect()))
	default:
		return engine.Succeed(engine.Text(engine.FormatValue(obj, "nil")))
	}
}
