package shell

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/robbyt/go-polyshell/engine"
)

// Render decides what a cycle prints for an outcome. The boolean is false when
// nothing should be printed.
//
// A diagnostic prints as its own string. A result with exactly one element
// prints that element's repr; any other number of elements prints the repr of
// the whole container.
func Render(outcome engine.Outcome) (string, bool) {
	switch o := outcome.(type) {
	case engine.Err:
		if o.Diagnostic == nil {
			return "", false
		}
		return o.Diagnostic.AsString(), true
	case engine.Ok:
		if o.Result == nil {
			return "", false
		}
		elements := o.Result.Elements()
		switch len(elements) {
		case 1:
			if elements[0] == nil {
				return o.Result.Repr(), true
			}
			return elements[0].Repr(), true
		default:
			return o.Result.Repr(), true
		}
	default:
		return "", false
	}
}

// renderPrompt styles the prompt label for w. Trailing spaces are kept outside
// the style so the cursor position is unaffected. Writers that are not colour
// terminals get the prompt unchanged.
func renderPrompt(w io.Writer, prompt string, styled bool) string {
	if !styled {
		return prompt
	}
	label := strings.TrimRight(prompt, " ")
	if label == "" {
		return prompt
	}
	style := lipgloss.NewRenderer(w).NewStyle().
		Foreground(lipgloss.AdaptiveColor{Light: "#5A56E0", Dark: "#7571F9"}).
		Bold(true)
	return style.Render(label) + prompt[len(label):]
}
