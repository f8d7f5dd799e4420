// Package markdown renders the prose fields of provider records (descriptions,
// gotchas) from Markdown to HTML.
package markdown

import (
	"bytes"
	"html/template"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
)

// Renderer converts Markdown to HTML. Raw HTML in the source is dropped, so the
// result is safe to hand to the page templates unescaped.
type Renderer struct {
	md goldmark.Markdown
}

// New returns a Renderer with GitHub-flavoured Markdown enabled.
func New() *Renderer {
	return &Renderer{
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithParserOptions(parser.WithAutoHeadingID()),
		),
	}
}

// Render converts a Markdown block to HTML.
func (r *Renderer) Render(source string) (template.HTML, error) {
	if strings.TrimSpace(source) == "" {
		return "", nil
	}
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(source), &buf); err != nil {
		return "", err
	}
	// #nosec G203 -- goldmark runs without the unsafe option and omits raw HTML.
	return template.HTML(buf.String()), nil
}

// RenderInline renders a one-paragraph snippet without the surrounding <p>.
func (r *Renderer) RenderInline(source string) (template.HTML, error) {
	out, err := r.Render(source)
	if err != nil {
		return "", err
	}
	s := strings.TrimSpace(string(out))
	if strings.HasPrefix(s, "<p>") && strings.HasSuffix(s, "</p>") && strings.Count(s, "<p>") == 1 {
		s = strings.TrimSuffix(strings.TrimPrefix(s, "<p>"), "</p>")
	}
	// #nosec G203 -- derived from sanitized goldmark output.
	return template.HTML(s), nil
}
