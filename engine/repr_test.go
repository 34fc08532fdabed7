package engine

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type stubObject struct{}

func (stubObject) Inspect() string { return "object(stub)" }

func TestFormatValue(t *testing.T) {
	t.Parallel()

	var nilPtr *int

	tests := []struct {
		name  string
		input any
		want  string
	}{
		{"nil", nil, "nil"},
		{"string", "quack", `"quack"`},
		{"string with quotes", `say "hi"`, `"say \"hi\""`},
		{"bytes", []byte("ab"), `byte_slice("ab")`},
		{"bool", true, "true"},
		{"int", 42, "42"},
		{"int64", int64(-7), "-7"},
		{"float", 2.5, "2.5"},
		{"whole float", 4.0, "4"},
		{"error", errors.New("boom"), `error("boom")`},
		{"slice of any", []any{1, "a", nil}, `[1, "a", nil]`},
		{"typed slice", []int{1, 2}, "[1, 2]"},
		{"empty slice", []any{}, "[]"},
		{"map sorted", map[string]any{"b": 2, "a": "x"}, `{"a": "x", "b": 2}`},
		{"nested", map[string]any{"k": []any{1.5}}, `{"k": [1.5]}`},
		{"inspector", stubObject{}, "object(stub)"},
		{"nil pointer", nilPtr, "nil"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, FormatValue(tt.input, "nil"))
		})
	}

	t.Run("nil label", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "null", FormatValue(nil, "null"))
		assert.Equal(t, "[1, null]", FormatValue([]any{int64(1), nil}, "null"))
	})
}
