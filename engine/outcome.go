package engine

// Outcome is the result of one call to Engine.Evaluate. The only
// implementations are Ok and Err.
type Outcome interface {
	outcome()
}

// Ok carries the result of a successful evaluation.
type Ok struct {
	Result Result
}

// Err carries the diagnostic of a failed evaluation.
type Err struct {
	Diagnostic Diagnostic
}

func (Ok) outcome()  {}
func (Err) outcome() {}

// Succeed wraps values in an Ok outcome.
func Succeed(values ...Value) Outcome {
	return Ok{Result: Values(values)}
}

// Fail wraps a diagnostic in an Err outcome.
func Fail(d Diagnostic) Outcome {
	return Err{Diagnostic: d}
}

// Kind returns a short label for an outcome, used in logs.
func Kind(o Outcome) string {
	switch o := o.(type) {
	case Ok:
		if o.Result == nil {
			return "empty"
		}
		return "ok"
	case Err:
		if o.Diagnostic == nil {
			return "empty"
		}
		return "error"
	default:
		return "none"
	}
}
