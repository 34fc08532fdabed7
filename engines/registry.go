package engines

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"strings"

	"github.com/robbyt/go-polyshell/engine"
	"github.com/robbyt/go-polyshell/engines/javascript"
	"github.com/robbyt/go-polyshell/engines/risor"
	"github.com/robbyt/go-polyshell/engines/starlark"
)

// Engine names accepted by New.
const (
	Starlark   = "starlark"
	Risor      = "risor"
	JavaScript = "javascript"
)

// Default is the engine used when none is named.
const Default = Starlark

var ErrUnknownEngine = errors.New("unknown engine")

var aliases = map[string]string{
	"js":   JavaScript,
	"star": Starlark,
}

// Names returns the supported engine names in sorted order.
func Names() []string {
	names := []string{Starlark, Risor, JavaScript}
	slices.Sort(names)
	return names
}

// New creates the engine called name. Script output (print and friends) goes to
// stdout, or os.Stdout when nil; logs go to handler.
func New(name string, handler slog.Handler, stdout io.Writer) (engine.Engine, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		key = Default
	}
	if canonical, ok := aliases[key]; ok {
		key = canonical
	}
	if stdout == nil {
		stdout = os.Stdout
	}

	var (
		eng engine.Engine
		err error
	)
	switch key {
	case Starlark:
		opts := []starlark.FunctionalOption{starlark.WithOutput(stdout)}
		if handler != nil {
			opts = append(opts, starlark.WithLogHandler(handler))
		}
		eng, err = starlark.New(opts...)
	case Risor:
		opts := []risor.FunctionalOption{risor.WithOutput(stdout)}
		if handler != nil {
			opts = append(opts, risor.WithLogHandler(handler))
		}
		eng, err = risor.New(opts...)
	case JavaScript:
		opts := []javascript.FunctionalOption{javascript.WithOutput(stdout)}
		if handler != nil {
			opts = append(opts, javascript.WithLogHandler(handler))
		}
		eng, err = javascript.New(opts...)
	default:
		return nil, fmt.Errorf("%w: %q (supported: %s)", ErrUnknownEngine, name, strings.Join(Names(), ", "))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create %s engine: %w", key, err)
	}
	return eng, nil
}
