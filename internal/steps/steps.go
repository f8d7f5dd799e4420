// Package steps derives the display fields of recipe steps for rendering.
package steps

import (
	"html/template"
	"maps"

	"github.com/m2de/getapi-site/internal/provider"
	"github.com/m2de/getapi-site/internal/textutil"
)

var labels = map[provider.StepType]string{
	provider.StepInfo:            "Info",
	provider.StepOpenURL:         "Open URL",
	provider.StepPromptInput:     "Input",
	provider.StepPromptChoice:    "Choice",
	provider.StepPromptConfirm:   "Confirm",
	provider.StepValidate:        "Validate",
	provider.StepWait:            "Wait",
	provider.StepRunCommand:      "Run Command",
	provider.StepOutput:          "Output",
	provider.StepCopyToClipboard: "Copy",
}

// Label returns the short badge text for a step type, or "" for unknown types.
func Label(t provider.StepType) string {
	return labels[t]
}

// Labels returns a copy of the step type to label mapping keyed by tag.
func Labels() map[string]string {
	out := make(map[string]string, len(labels))
	for k, v := range labels {
		out[string(k)] = v
	}
	return out
}

// Prepared is a step plus the fields derived for display.
type Prepared struct {
	provider.Step

	// MessageHTML is the escaped message with placeholders highlighted.
	MessageHTML template.HTML
	// ValidationHint describes the validation pattern; empty when there is none.
	ValidationHint template.HTML
}

// Label returns the badge text of the step's type.
func (p Prepared) Label() string { return Label(p.Type) }

// Prepare returns the provider's steps, in order, with display fields attached.
// The provider is not modified.
func Prepare(p *provider.Provider) []Prepared {
	out := make([]Prepared, 0, len(p.Steps))
	for _, s := range p.Steps {
		cp := s
		cp.Fields = maps.Clone(s.Fields)
		prepared := Prepared{
			Step:        cp,
			MessageHTML: textutil.HighlightPlaceholders(s.Message),
		}
		if s.Validation != "" {
			prepared.ValidationHint = textutil.ValidationHint(s.Validation)
		}
		out = append(out, prepared)
	}
	return out
}
