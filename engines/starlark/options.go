package starlark

import (
	"io"
	"log/slog"
	"os"

	"github.com/robbyt/go-polyshell/internal/helpers"
	starlarkLib "go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// FunctionalOption is a function that configures an Engine instance
type FunctionalOption func(*Engine) error

// WithGlobals adds predeclared globals to the session. They override the
// standard modules of the same name.
func WithGlobals(globals starlarkLib.StringDict) FunctionalOption {
	return func(e *Engine) error {
		e.extraGlobals = globals
		return nil
	}
}

// WithOutput sets the writer used by the Starlark print builtin.
func WithOutput(w io.Writer) FunctionalOption {
	return func(e *Engine) error {
		if w == nil {
			return ErrOutputNil
		}
		e.stdout = w
		return nil
	}
}

// WithFileOptions replaces the dialect options used to parse each line.
func WithFileOptions(opts *syntax.FileOptions) FunctionalOption {
	return func(e *Engine) error {
		e.fileOpts = opts
		return nil
	}
}

// WithLogHandler creates an option to set the log handler for the Starlark engine.
// This is the preferred option for logging configuration as it provides
// more flexibility through the slog.Handler interface.
func WithLogHandler(handler slog.Handler) FunctionalOption {
	return func(e *Engine) error {
		if handler == nil {
			return ErrHandlerNil
		}
		e.logHandler = handler
		// Clear logger if handler is explicitly set
		e.logger = nil
		return nil
	}
}

// WithLogger creates an option to set a specific logger for the Starlark engine.
func WithLogger(logger *slog.Logger) FunctionalOption {
	return func(e *Engine) error {
		if logger == nil {
			return ErrLoggerNil
		}
		e.logger = logger
		// Clear handler if logger is explicitly set
		e.logHandler = nil
		return nil
	}
}

// setupLogger configures the logger and handler based on the current state.
func (e *Engine) setupLogger() {
	if e.logger != nil {
		e.logHandler = e.logger.Handler()
	} else {
		e.logHandler, e.logger = helpers.SetupLogger(e.logHandler, "starlark", "Engine")
	}
}

// applyDefaults sets the default values for an engine
func (e *Engine) applyDefaults() {
	if e.stdout == nil {
		e.stdout = os.Stdout
	}

	// Same dialect as the upstream starlark REPL
	if e.fileOpts == nil {
		e.fileOpts = &syntax.FileOptions{
			Set:             true,
			While:           true,
			TopLevelControl: true,
			GlobalReassign:  true,
			Recursion:       true,
		}
	}
}
