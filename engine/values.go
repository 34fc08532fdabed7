package engine

import "strings"

// Text is a Value whose debug representation is already known.
type Text string

// Repr returns the text unchanged.
func (t Text) Repr() string {
	return string(t)
}

// Values is a Result backed by a slice. Its container representation is a
// bracketed, comma separated list of the element representations.
type Values []Value

// Elements returns the underlying slice.
func (v Values) Elements() []Value {
	return v
}

// Repr returns the values formatted like `[2, 4]`.
func (v Values) Repr() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, val := range v {
		if i > 0 {
			sb.WriteString(", ")
		}
		if val == nil {
			sb.WriteString("None")
			continue
		}
		sb.WriteString(val.Repr())
	}
	sb.WriteByte(']')
	return sb.String()
}
