package mocks

import (
	"context"
	"testing"

	"github.com/robbyt/go-polyshell/engine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// compile-time checks that the mocks satisfy the engine contract
var (
	_ engine.Engine     = (*Engine)(nil)
	_ engine.Result     = (*Result)(nil)
	_ engine.Value      = (*Value)(nil)
	_ engine.Diagnostic = (*Diagnostic)(nil)
)

func TestEngine(t *testing.T) {
	t.Parallel()

	t.Run("returns configured outcome", func(t *testing.T) {
		t.Parallel()
		m := new(Engine)
		want := engine.Succeed(engine.Text("2"))
		m.On("Evaluate", mock.Anything, "<stdin>", "1+1").Return(want).Once()

		got := m.Evaluate(context.Background(), "<stdin>", "1+1")
		assert.Equal(t, want, got)
		m.AssertExpectations(t)
	})

	t.Run("nil outcome", func(t *testing.T) {
		t.Parallel()
		m := new(Engine)
		m.On("Evaluate", mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()

		assert.Nil(t, m.Evaluate(context.Background(), "<stdin>", "x"))
		m.AssertExpectations(t)
	})
}

func TestResult(t *testing.T) {
	t.Parallel()

	v := new(Value)
	v.On("Repr").Return("2")

	r := new(Result)
	r.On("Elements").Return([]engine.Value{v})
	r.On("Repr").Return("[2]")

	assert.Len(t, r.Elements(), 1)
	assert.Equal(t, "2", r.Elements()[0].Repr())
	assert.Equal(t, "[2]", r.Repr())

	d := new(Diagnostic)
	d.On("AsString").Return("Invalid Syntax: x")
	assert.Equal(t, "Invalid Syntax: x", d.AsString())
}
