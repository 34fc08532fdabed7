package javascript

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/robbyt/go-polyshell/engine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sourceID = "<stdin>"

func newTestEngine(t *testing.T) (*Engine, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})
	e, err := New(WithOutput(&out), WithLogHandler(handler))
	require.NoError(t, err)
	return e, &out
}

func requireSingle(t *testing.T, out engine.Outcome) string {
	t.Helper()
	ok, isOk := out.(engine.Ok)
	require.True(t, isOk, "expected Ok outcome, got %#v", out)
	require.Len(t, ok.Result.Elements(), 1)
	return ok.Result.Elements()[0].Repr()
}

func requireErr(t *testing.T, out engine.Outcome) string {
	t.Helper()
	errOut, isErr := out.(engine.Err)
	require.True(t, isErr, "expected Err outcome, got %#v", out)
	return errOut.Diagnostic.AsString()
}

func TestEvaluate_Values(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"arithmetic", "1 + 1", "2"},
		{"fraction", "5 / 2", "2.5"},
		{"string", "'quack'", `"quack"`},
		{"boolean", "1 < 2", "true"},
		{"null", "null", "null"},
		{"array", "[1, 2]", "[1, 2]"},
		{"object", "({a: 1, b: 'x'})", `{"a": 1, "b": "x"}`},
		{"last statement wins", "1; 2", "2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			e, _ := newTestEngine(t)
			assert.Equal(t, tt.want, requireSingle(t, e.Evaluate(context.Background(), sourceID, tt.input)))
		})
	}
}

func TestEvaluate_Function(t *testing.T) {
	t.Parallel()
	e, _ := newTestEngine(t)

	got := requireSingle(t, e.Evaluate(context.Background(), sourceID, "(function double(n) { return n * 2 })"))
	assert.True(t, strings.HasPrefix(got, "function double"), got)
}

func TestEvaluate_Undefined(t *testing.T) {
	t.Parallel()
	e, _ := newTestEngine(t)

	assert.Nil(t, e.Evaluate(context.Background(), sourceID, "undefined"))
	assert.Nil(t, e.Evaluate(context.Background(), sourceID, "let x = 5"))
}

func TestEvaluate_StatePersists(t *testing.T) {
	t.Parallel()
	e, _ := newTestEngine(t)
	ctx := context.Background()

	require.Nil(t, e.Evaluate(ctx, sourceID, "let x = 5"))
	require.Nil(t, e.Evaluate(ctx, sourceID, "function double(n) { return n * 2 }"))
	assert.Equal(t, "10", requireSingle(t, e.Evaluate(ctx, sourceID, "double(x)")))
}

func TestEvaluate_Print(t *testing.T) {
	t.Parallel()
	e, out := newTestEngine(t)

	assert.Nil(t, e.Evaluate(context.Background(), sourceID, "console.log('a', 1); print('b')"))
	assert.Equal(t, "a 1\nb\n", out.String())
}

func TestEvaluate_Diagnostics(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		prefix   string
		contains string
	}{
		{"syntax error", "x +", "Invalid Syntax: ", ""},
		{"reference error", "nope", "Runtime Error: ", "ReferenceError"},
		{"thrown error", "throw new Error('boom')", "Runtime Error: ", "boom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			e, _ := newTestEngine(t)
			msg := requireErr(t, e.Evaluate(context.Background(), sourceID, tt.input))
			assert.True(t, strings.HasPrefix(msg, tt.prefix), "diagnostic %q should start with %q", msg, tt.prefix)
			assert.Contains(t, msg, tt.contains)
		})
	}
}

func TestEvaluate_Cancellation(t *testing.T) {
	t.Parallel()
	e, _ := newTestEngine(t)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	msg := requireErr(t, e.Evaluate(ctx, sourceID, "while (true) {}"))
	assert.True(t, strings.HasPrefix(msg, "Interrupted: "), msg)

	// the runtime stays usable after an interrupt
	assert.Equal(t, "3", requireSingle(t, e.Evaluate(context.Background(), sourceID, "1 + 2")))
}

func TestEvaluate_CancelRacingCompletion(t *testing.T) {
	t.Parallel()
	e, _ := newTestEngine(t)

	for range 200 {
		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan struct{})
		go func() {
			cancel()
			close(done)
		}()
		// either outcome is fine here; only the next line matters
		e.Evaluate(ctx, sourceID, "1 + 1")
		<-done

		require.Equal(t, "4", requireSingle(t, e.Evaluate(context.Background(), sourceID, "2 + 2")))
	}
}
