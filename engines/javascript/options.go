package javascript

import (
	"io"
	"log/slog"
	"os"

	"github.com/robbyt/go-polyshell/internal/helpers"
)

// FunctionalOption is a function that configures an Engine instance
type FunctionalOption func(*Engine) error

// WithOutput sets the writer used by print and console.log.
func WithOutput(w io.Writer) FunctionalOption {
	return func(e *Engine) error {
		if w == nil {
			return ErrOutputNil
		}
		e.stdout = w
		return nil
	}
}

// WithStrict compiles every line in strict mode.
func WithStrict(strict bool) FunctionalOption {
	return func(e *Engine) error {
		e.strict = strict
		return nil
	}
}

// WithLogHandler creates an option to set the log handler for the JavaScript engine.
func WithLogHandler(handler slog.Handler) FunctionalOption {
	return func(e *Engine) error {
		if handler == nil {
			return ErrHandlerNil
		}
		e.logHandler = handler
		e.logger = nil
		return nil
	}
}

// WithLogger creates an option to set a specific logger for the JavaScript engine.
func WithLogger(logger *slog.Logger) FunctionalOption {
	return func(e *Engine) error {
		if logger == nil {
			return ErrLoggerNil
		}
		e.logger = logger
		e.logHandler = nil
		return nil
	}
}

func (e *Engine) setupLogger() {
	if e.logger != nil {
		e.logHandler = e.logger.Handler()
	} else {
		e.logHandler, e.logger = helpers.SetupLogger(e.logHandler, "javascript", "Engine")
	}
}

func (e *Engine) applyDefaults() {
	if e.stdout == nil {
		e.stdout = os.Stdout
	}
}
