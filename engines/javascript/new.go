package javascript

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/dop251/goja"
)

// Engine evaluates lines of JavaScript in one long-lived goja runtime, so
// declarations made by one line stay visible to the next.
type Engine struct {
	mu sync.Mutex
	vm *goja.Runtime

	strict bool
	stdout io.Writer

	logHandler slog.Handler
	logger     *slog.Logger
}

// New creates a JavaScript engine configured by opts.
func New(opts ...FunctionalOption) (*Engine, error) {
	e := &Engine{}
	for _, opt := range opts {
		if err := opt(e); err != nil {
			return nil, fmt.Errorf("error applying option: %w", err)
		}
	}
	e.applyDefaults()
	e.setupLogger()

	e.vm = goja.New()
	if err := e.setupEnvironment(); err != nil {
		return nil, fmt.Errorf("failed to setup environment: %w", err)
	}
	return e, nil
}

func (e *Engine) String() string {
	return "javascript.Engine"
}

// setupEnvironment installs print and console.log, both writing to the
// engine's output.
func (e *Engine) setupEnvironment() error {
	printFunc := func(call goja.FunctionCall) goja.Value {
		args := make([]string, len(call.Arguments))
		for i, arg := range call.Arguments {
			args[i] = arg.String()
		}
		if _, err := fmt.Fprintln(e.stdout, strings.Join(args, " ")); err != nil {
			e.logger.Warn("print failed", "error", err)
		}
		return goja.Undefined()
	}
	if err := e.vm.Set("print", printFunc); err != nil {
		return fmt.Errorf("failed to set print: %w", err)
	}

	console := e.vm.NewObject()
	if err := console.Set("log", printFunc); err != nil {
		return fmt.Errorf("failed to set console.log: %w", err)
	}
	if err := e.vm.Set("console", console); err != nil {
		return fmt.Errorf("failed to set console: %w", err)
	}
	return nil
}
