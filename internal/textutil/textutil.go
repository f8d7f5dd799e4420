// Package textutil holds the small string transforms applied to provider data
// before it reaches the page templates.
package textutil

import (
	"html/template"
	"regexp"
	"strings"
)

// DefaultDuration is the ISO 8601 duration used when an estimate has no minute count.
const DefaultDuration = "PT5M"

var (
	// Placeholders are recipe variables like {{api_key}}, not site template actions.
	placeholderRe = regexp.MustCompile(`\{\{([\p{L}\p{N}_]+)\}\}`)

	literalPrefixRe = regexp.MustCompile(`^\^([A-Za-z0-9_-]+)`)
	exactCountRe    = regexp.MustCompile(`\{([0-9]+)\}$`)
	rangeCountRe    = regexp.MustCompile(`\{([0-9]+),([0-9]*)\}`)

	minutesRe = regexp.MustCompile(`([0-9]+)\s*min`)
)

// HighlightPlaceholders escapes text for HTML and then wraps every {{name}}
// placeholder in a <code class="template-var"> element.
func HighlightPlaceholders(text string) template.HTML {
	if text == "" {
		return ""
	}
	escaped := template.HTMLEscapeString(text)
	// #nosec G203 -- input is escaped above; only the fixed code tag is injected.
	return template.HTML(placeholderRe.ReplaceAllString(escaped, `<code class="template-var">$1</code>`))
}

// ValidationHint describes a validation regex in plain words by inspecting the
// pattern text. It returns an empty string when nothing useful can be said.
func ValidationHint(pattern string) template.HTML {
	if pattern == "" {
		return ""
	}

	var hints []string

	if m := literalPrefixRe.FindStringSubmatch(pattern); m != nil {
		hints = append(hints, "Starts with <code>"+m[1]+"</code>")
	}

	if m := exactCountRe.FindStringSubmatch(strings.TrimRight(pattern, "$")); m != nil {
		hints = append(hints, m[1]+" characters")
	} else if m := rangeCountRe.FindStringSubmatch(pattern); m != nil {
		lo, hi := m[1], m[2]
		if hi != "" {
			hints = append(hints, lo+"–"+hi+"+ characters")
		} else {
			hints = append(hints, "At least "+lo+" characters")
		}
	}

	// #nosec G203 -- captures are restricted to [A-Za-z0-9_-] and digits.
	return template.HTML(strings.Join(hints, ". "))
}

// ParseEstimatedTime converts a free-text estimate such as "5 minutes" into an
// ISO 8601 duration ("PT5M"). Anything without a minute count yields DefaultDuration.
func ParseEstimatedTime(text string) string {
	if text == "" {
		return DefaultDuration
	}
	if m := minutesRe.FindStringSubmatch(text); m != nil {
		return "PT" + m[1] + "M"
	}
	return DefaultDuration
}
