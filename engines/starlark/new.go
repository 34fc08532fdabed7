package starlark

import (
	"fmt"
	"io"
	"log/slog"
	"sync"

	starlarkLib "go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Engine evaluates lines of Starlark. Globals defined by one line are visible to
// the following ones; Evaluate calls are serialized.
type Engine struct {
	mu      sync.Mutex
	globals starlarkLib.StringDict

	extraGlobals starlarkLib.StringDict
	fileOpts     *syntax.FileOptions
	stdout       io.Writer

	logHandler slog.Handler
	logger     *slog.Logger
}

// New creates a Starlark engine configured by opts.
func New(opts ...FunctionalOption) (*Engine, error) {
	e := &Engine{}
	for _, opt := range opts {
		if err := opt(e); err != nil {
			return nil, fmt.Errorf("error applying option: %w", err)
		}
	}
	e.applyDefaults()
	e.setupLogger()
	e.globals = newGlobals(e.extraGlobals)
	return e, nil
}

func (e *Engine) String() string {
	return "starlark.Engine"
}

// Globals returns a copy of the names currently bound in the session.
func (e *Engine) Globals() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.globals.Keys()
}
