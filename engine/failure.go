package engine

import "fmt"

// Failure kinds shared by the engines. The driver never looks at them; they only
// shape the text of the diagnostic.
const (
	KindSyntax      = "Invalid Syntax"
	KindName        = "Name Error"
	KindRuntime     = "Runtime Error"
	KindInterrupted = "Interrupted"
	KindInternal    = "Internal Error"
	KindGeneric     = "Error"
)

// Failure is a generic Diagnostic built from a kind, a message and the source
// it came from.
type Failure struct {
	Kind     string
	Message  string
	SourceID string
	// Detail is appended on its own line when set, e.g. a backtrace.
	Detail string
}

// NewFailure creates a Failure for sourceID.
func NewFailure(kind, sourceID, message string) *Failure {
	if kind == "" {
		kind = KindGeneric
	}
	return &Failure{
		Kind:     kind,
		Message:  message,
		SourceID: sourceID,
	}
}

// FromError creates a Failure from a Go error.
func FromError(kind, sourceID string, err error) *Failure {
	if err == nil {
		return NewFailure(kind, sourceID, "")
	}
	return NewFailure(kind, sourceID, err.Error())
}

// WithDetail returns a copy of f carrying detail.
func (f *Failure) WithDetail(detail string) *Failure {
	c := *f
	c.Detail = detail
	return &c
}

// AsString renders the failure as `Kind: message`, followed by the detail.
func (f *Failure) AsString() string {
	s := fmt.Sprintf("%s: %s", f.Kind, f.Message)
	if f.Detail != "" {
		s += "\n" + f.Detail
	}
	return s
}

func (f *Failure) String() string {
	return fmt.Sprintf("engine.Failure{Kind: %s, SourceID: %s}", f.Kind, f.SourceID)
}

// Error lets a Failure be returned or wrapped as a Go error.
func (f *Failure) Error() string {
	return f.AsString()
}
