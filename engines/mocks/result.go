package mocks

import (
	"github.com/robbyt/go-polyshell/engine"
	"github.com/stretchr/testify/mock"
)

// Value is a mock implementation of engine.Value.
type Value struct {
	mock.Mock
}

// Repr returns a mockable string.
func (m *Value) Repr() string {
	args := m.Called()
	return args.String(0)
}

// Result is a mock implementation of engine.Result.
type Result struct {
	mock.Mock
}

// Elements returns the mocked elements.
func (m *Result) Elements() []engine.Value {
	args := m.Called()
	values, _ := args.Get(0).([]engine.Value)
	return values
}

// Repr returns a mockable string.
func (m *Result) Repr() string {
	args := m.Called()
	return args.String(0)
}

// Diagnostic is a mock implementation of engine.Diagnostic.
type Diagnostic struct {
	mock.Mock
}

// AsString returns a mockable string.
func (m *Diagnostic) AsString() string {
	args := m.Called()
	return args.String(0)
}
