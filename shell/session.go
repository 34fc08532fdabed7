package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/chzyer/readline"
	"github.com/robbyt/go-polyshell/engine"
	"github.com/robbyt/go-polyshell/loader"
)

// Session is an interactive read-evaluate-print loop around one engine. The
// session itself keeps nothing from one cycle to the next; any state lives in
// the engine.
type Session struct {
	engine engine.Engine
	reader LineReader

	input       io.Reader
	output      io.Writer
	prompt      string
	sourceID    string
	historyFile string
	styled      bool

	// renderedPrompt is prompt after styling for output
	renderedPrompt string

	logHandler slog.Handler
	logger     *slog.Logger
}

// New creates a session that sends every non-blank line to eng.
func New(eng engine.Engine, opts ...Option) (*Session, error) {
	if eng == nil {
		return nil, ErrEngineNil
	}

	s := &Session{
		engine: eng,
		styled: true,
	}
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, fmt.Errorf("error applying option: %w", err)
		}
	}
	s.applyDefaults()
	s.setupLogger()

	if s.reader == nil {
		reader, err := NewLineReader(s.input, s.output, s.historyFile)
		if err != nil {
			return nil, err
		}
		s.reader = reader
	}
	s.renderedPrompt = renderPrompt(s.output, s.prompt, s.styled)

	return s, nil
}

func (s *Session) String() string {
	return fmt.Sprintf("shell.Session{Engine: %v, SourceID: %s}", s.engine, s.sourceID)
}

// Run prompts, reads and evaluates lines until the input ends or the user
// interrupts the line, both of which return nil. A cancelled ctx stops the
// loop before the next prompt.
func (s *Session) Run(ctx context.Context) error {
	logger := s.logger.WithGroup("Run")

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		line, err := s.reader.ReadLine(s.renderedPrompt)
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, readline.ErrInterrupt) {
				logger.DebugContext(ctx, "session ended", "reason", err)
				return nil
			}
			if errors.Is(err, ErrWriteFailed) {
				return err
			}
			return fmt.Errorf("%w: %w", ErrReadFailed, err)
		}

		text, ok := s.Step(ctx, line)
		if !ok {
			continue
		}
		if _, err := fmt.Fprintln(s.output, text); err != nil {
			return fmt.Errorf("%w: %w", ErrWriteFailed, err)
		}
	}
}

// Step runs one cycle for an already read line: blank lines are skipped without
// calling the engine, anything else is evaluated and rendered. The boolean is
// false when the cycle prints nothing.
func (s *Session) Step(ctx context.Context, line string) (string, bool) {
	if strings.TrimSpace(line) == "" {
		return "", false
	}

	outcome := s.evaluate(ctx, s.sourceID, line)
	s.logger.DebugContext(ctx, "cycle complete",
		"sourceID", s.sourceID,
		"lineLength", len(line),
		"outcome", engine.Kind(outcome),
	)
	return Render(outcome)
}

// Load evaluates a whole script under the loader's own source id, before or
// between interactive cycles, and prints its outcome the way a cycle would.
// Failures inside the script are printed, not returned.
func (s *Session) Load(ctx context.Context, l loader.Loader) error {
	sourceID := loader.SourceID(l)
	logger := s.logger.WithGroup("Load").With("sourceID", sourceID)

	reader, err := l.GetReader()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrLoadFailed, err)
	}
	defer reader.Close()

	content, err := io.ReadAll(reader)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrLoadFailed, err)
	}
	if strings.TrimSpace(string(content)) == "" {
		logger.DebugContext(ctx, "script is blank")
		return nil
	}

	outcome := s.evaluate(ctx, sourceID, string(content))
	logger.DebugContext(ctx, "script loaded", "outcome", engine.Kind(outcome))

	text, ok := Render(outcome)
	if !ok {
		return nil
	}
	if _, err := fmt.Fprintln(s.output, text); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteFailed, err)
	}
	return nil
}

// evaluate calls the engine with the raw text. A panic inside the engine is
// reported as an internal error diagnostic and the session carries on.
func (s *Session) evaluate(ctx context.Context, sourceID, text string) (out engine.Outcome) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.ErrorContext(ctx, "engine panicked", "panic", r, "sourceID", sourceID)
			out = engine.Fail(engine.NewFailure(engine.KindInternal, sourceID, fmt.Sprint(r)))
		}
	}()
	return s.engine.Evaluate(ctx, sourceID, text)
}

// Close releases the line reader.
func (s *Session) Close() error {
	return s.reader.Close()
}
