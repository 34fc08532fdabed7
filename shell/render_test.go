package shell

import (
	"bytes"
	"testing"

	"github.com/robbyt/go-polyshell/engine"
	"github.com/robbyt/go-polyshell/engines/mocks"
	"github.com/stretchr/testify/assert"
)

func TestRender(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		outcome engine.Outcome
		want    string
		wantOk  bool
	}{
		{"nil outcome", nil, "", false},
		{"ok without result", engine.Ok{}, "", false},
		{"err without diagnostic", engine.Err{}, "", false},
		{"diagnostic", engine.Fail(engine.NewFailure(engine.KindRuntime, "<stdin>", "division by zero")), "Runtime Error: division by zero", true},
		{"single element", engine.Succeed(engine.Text(`"quack"`)), `"quack"`, true},
		{"single container element", engine.Succeed(engine.Text("[1, 2]")), "[1, 2]", true},
		{"no elements", engine.Succeed(), "[]", true},
		{"two elements", engine.Succeed(engine.Text("2"), engine.Text("4")), "[2, 4]", true},
		{"single nil element", engine.Ok{Result: engine.Values{nil}}, "[None]", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok := Render(tt.outcome)
			assert.Equal(t, tt.wantOk, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRender_DiagnosticIsVerbatim(t *testing.T) {
	t.Parallel()

	diag := new(mocks.Diagnostic)
	diag.On("AsString").Return("  spaced\tmessage  ")

	got, ok := Render(engine.Err{Diagnostic: diag})
	assert.True(t, ok)
	assert.Equal(t, "  spaced\tmessage  ", got)
	diag.AssertNumberOfCalls(t, "AsString", 1)
}

func TestRenderPrompt(t *testing.T) {
	t.Parallel()

	t.Run("unstyled", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "polyshell > ", renderPrompt(&bytes.Buffer{}, "polyshell > ", false))
	})

	t.Run("styled on a non-terminal writer", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "polyshell > ", renderPrompt(&bytes.Buffer{}, "polyshell > ", true))
	})

	t.Run("only spaces", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "  ", renderPrompt(&bytes.Buffer{}, "  ", true))
	})
}
