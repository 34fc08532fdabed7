package engine

import "context"

// Engine is the interface for a language execution engine driven by the shell.
type Engine interface {
	// Evaluate runs sourceText, labelled with sourceID for diagnostics, and returns
	// either an Ok or an Err outcome. A nil Outcome means the evaluation produced
	// nothing to show.
	Evaluate(ctx context.Context, sourceID, sourceText string) Outcome
}

// Value is a single element of an evaluation result.
type Value interface {
	// Repr returns the debug representation of the value, which should be
	// unambiguous and, where the language allows it, re-enterable.
	Repr() string
}

// Result is the ordered collection of values produced by one evaluation.
type Result interface {
	// Elements returns the values in evaluation order.
	Elements() []Value

	// Repr returns the debug representation of the whole container.
	Repr() string
}

// Diagnostic describes why an evaluation failed.
type Diagnostic interface {
	// AsString renders the diagnostic for the user.
	AsString() string
}
