package starlark

import (
	"errors"
	"strings"

	"github.com/robbyt/go-polyshell/engine"
	starlarkLib "go.starlark.net/starlark"
	"go.starlark.net/resolve"
	"go.starlark.net/syntax"
)

// diagnose converts an error returned by the Starlark toolchain into a Diagnostic.
func diagnose(sourceID string, err error) engine.Diagnostic {
	var synErr syntax.Error
	if errors.As(err, &synErr) {
		return engine.NewFailure(engine.KindSyntax, sourceID, synErr.Msg).
			WithDetail("  at " + synErr.Pos.String())
	}

	var resolveErrs resolve.ErrorList
	if errors.As(err, &resolveErrs) && len(resolveErrs) > 0 {
		first := resolveErrs[0]
		return engine.NewFailure(engine.KindName, sourceID, first.Msg).
			WithDetail("  at " + first.Pos.String())
	}

	var evalErr *starlarkLib.EvalError
	if errors.As(err, &evalErr) {
		f := engine.NewFailure(engine.KindRuntime, sourceID, evalErr.Msg)
		if trace := strings.TrimSpace(evalErr.CallStack.String()); trace != "" {
			f = f.WithDetail(trace)
		}
		return f
	}

	return engine.FromError(engine.KindGeneric, sourceID, err)
}
