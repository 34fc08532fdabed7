package mocks

import (
	"context"

	"github.com/robbyt/go-polyshell/engine"
	"github.com/stretchr/testify/mock"
)

// Engine is a mock implementation of engine.Engine for testing purposes.
type Engine struct {
	mock.Mock
}

// Evaluate is a mock implementation of the Evaluate method. A nil first return
// argument yields a nil Outcome.
func (m *Engine) Evaluate(ctx context.Context, sourceID, sourceText string) engine.Outcome {
	args := m.Called(ctx, sourceID, sourceText)
	out, _ := args.Get(0).(engine.Outcome)
	return out
}
