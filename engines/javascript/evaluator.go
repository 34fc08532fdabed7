package javascript

import (
	"context"
	"errors"
	"time"

	"github.com/dop251/goja"
	"github.com/robbyt/go-polyshell/engine"
)

// Evaluate compiles sourceText as a script named sourceID and runs it. The
// completion value becomes the single result element; undefined produces no
// outcome.
func (e *Engine) Evaluate(ctx context.Context, sourceID, sourceText string) engine.Outcome {
	e.mu.Lock()
	defer e.mu.Unlock()

	logger := e.logger.WithGroup("Evaluate").With("sourceID", sourceID)
	startTime := time.Now()

	prog, err := goja.Compile(sourceID, sourceText, e.strict)
	if err != nil {
		logger.DebugContext(ctx, "compile failed", "error", err)
		return engine.Fail(diagnose(sourceID, err))
	}

	interrupted := make(chan struct{})
	stop := context.AfterFunc(ctx, func() {
		e.vm.Interrupt(ctx.Err().Error())
		close(interrupted)
	})
	val, err := e.vm.RunProgram(prog)
	if !stop() {
		// The interrupt may land after the program returned; wait for it so
		// it cannot leak into the next line.
		<-interrupted
		e.vm.ClearInterrupt()
	}
	if err != nil {
		logger.DebugContext(ctx, "execution failed", "error", err)
		return engine.Fail(diagnose(sourceID, err))
	}

	logger.DebugContext(ctx, "exec complete", "execTime", time.Since(startTime))
	if val == nil || goja.IsUndefined(val) {
		return nil
	}
	return engine.Succeed(engine.Text(formatValue(val)))
}

// formatValue renders a goja value in repr style.
func formatValue(val goja.Value) string {
	if goja.IsNull(val) {
		return "null"
	}
	if _, ok := goja.AssertFunction(val); ok {
		return val.String()
	}
	return engine.FormatValue(val.Export(), "null")
}

// diagnose converts a goja error into a Diagnostic.
func diagnose(sourceID string, err error) engine.Diagnostic {
	var synErr *goja.CompilerSyntaxError
	if errors.As(err, &synErr) {
		return engine.NewFailure(engine.KindSyntax, sourceID, synErr.Error())
	}

	var interrupted *goja.InterruptedError
	if errors.As(err, &interrupted) {
		return engine.NewFailure(engine.KindInterrupted, sourceID, interrupted.String())
	}

	var exc *goja.Exception
	if errors.As(err, &exc) {
		msg := exc.Error()
		if v := exc.Value(); v != nil {
			msg = v.String()
		}
		return engine.NewFailure(engine.KindRuntime, sourceID, msg)
	}

	return engine.FromError(engine.KindGeneric, sourceID, err)
}
