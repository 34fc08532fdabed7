package shell

import (
	"io"
	"log/slog"
	"os"

	"github.com/robbyt/go-polyshell/internal/helpers"
)

const (
	// DefaultPrompt is written before every read.
	DefaultPrompt = "polyshell > "

	// DefaultSourceID labels interactive input in diagnostics, as opposed to a file name.
	DefaultSourceID = "<stdin>"
)

// Option is a function that configures a Session
type Option func(*Session) error

// WithInput sets the interactive input stream.
func WithInput(r io.Reader) Option {
	return func(s *Session) error {
		if r == nil {
			return ErrInputNil
		}
		s.input = r
		return nil
	}
}

// WithOutput sets the interactive output stream.
func WithOutput(w io.Writer) Option {
	return func(s *Session) error {
		if w == nil {
			return ErrOutputNil
		}
		s.output = w
		return nil
	}
}

// WithPrompt sets the prompt text.
func WithPrompt(prompt string) Option {
	return func(s *Session) error {
		s.prompt = prompt
		return nil
	}
}

// WithSourceID sets the source identifier passed to the engine on every call.
func WithSourceID(id string) Option {
	return func(s *Session) error {
		if id == "" {
			return ErrSourceID
		}
		s.sourceID = id
		return nil
	}
}

// WithLineReader replaces the reader chosen from the input stream.
func WithLineReader(r LineReader) Option {
	return func(s *Session) error {
		if r == nil {
			return ErrReaderNil
		}
		s.reader = r
		return nil
	}
}

// WithHistoryFile sets where terminal sessions keep their line history.
// It has no effect when input is not a terminal.
func WithHistoryFile(path string) Option {
	return func(s *Session) error {
		s.historyFile = path
		return nil
	}
}

// WithStyledPrompt enables or disables prompt styling. Styling only shows up on
// colour-capable terminals.
func WithStyledPrompt(styled bool) Option {
	return func(s *Session) error {
		s.styled = styled
		return nil
	}
}

// WithLogHandler creates an option to set the log handler for the session.
func WithLogHandler(handler slog.Handler) Option {
	return func(s *Session) error {
		if handler == nil {
			return ErrHandlerNil
		}
		s.logHandler = handler
		s.logger = nil
		return nil
	}
}

// WithLogger creates an option to set a specific logger for the session.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Session) error {
		if logger == nil {
			return ErrLoggerNil
		}
		s.logger = logger
		s.logHandler = nil
		return nil
	}
}

func (s *Session) setupLogger() {
	if s.logger != nil {
		s.logHandler = s.logger.Handler()
	} else {
		s.logHandler, s.logger = helpers.SetupLogger(s.logHandler, "shell", "Session")
	}
}

// applyDefaults sets the default values for a session
func (s *Session) applyDefaults() {
	if s.input == nil {
		s.input = os.Stdin
	}
	if s.output == nil {
		s.output = os.Stdout
	}
	if s.prompt == "" {
		s.prompt = DefaultPrompt
	}
	if s.sourceID == "" {
		s.sourceID = DefaultSourceID
	}
}
