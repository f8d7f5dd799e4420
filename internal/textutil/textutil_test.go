package textutil

import (
	"html/template"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHighlightPlaceholders(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want template.HTML
	}{
		{"empty", "", ""},
		{"plain", "Open the dashboard", "Open the dashboard"},
		{"single", "Paste {{api_key}} here", `Paste <code class="template-var">api_key</code> here`},
		{"multiple", "{{a}} and {{b_2}}", `<code class="template-var">a</code> and <code class="template-var">b_2</code>`},
		{
			"escapes before substitution",
			"<script>{{x}}</script>",
			`&lt;script&gt;<code class="template-var">x</code>&lt;/script&gt;`,
		},
		{"bold wrapper", "<b>{{name}}</b>", `&lt;b&gt;<code class="template-var">name</code>&lt;/b&gt;`},
		{"ampersand and quotes", `A & "B"`, "A &amp; &#34;B&#34;"},
		{"not a placeholder", "{{ spaced }} {{}} {single}", "{{ spaced }} {{}} {single}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HighlightPlaceholders(tt.in))
		})
	}
}

func TestHighlightPlaceholdersNeverLeaksMarkup(t *testing.T) {
	out := string(HighlightPlaceholders(`<b>{{name}}</b><img src=x onerror="{{y}}">`))
	assert.NotContains(t, out, "<b>")
	assert.NotContains(t, out, "<img")
	assert.Contains(t, out, "&lt;b&gt;")
}

func TestValidationHint(t *testing.T) {
	tests := []struct {
		pattern string
		want    template.HTML
	}{
		{"", ""},
		{"^ABC", "Starts with <code>ABC</code>"},
		{"^[A-Z]{10}$", "10 characters"},
		{"^sk-[A-Za-z0-9]{20,}$", "Starts with <code>sk-</code>. At least 20 characters"},
		{".{4,8}", "4–8+ characters"},
		{"^ghp_[A-Za-z0-9]{36}$", "Starts with <code>ghp_</code>. 36 characters"},
		{"^xoxb-.*", "Starts with <code>xoxb-</code>"},
		{"[0-9]+", ""},
		{"^[a-f0-9]{32}$$", "32 characters"},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidationHint(tt.pattern))
		})
	}
}

func TestParseEstimatedTime(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"5 minutes", "PT5M"},
		{"about 10 min setup", "PT10M"},
		{"15min", "PT15M"},
		{"", "PT5M"},
		{"quick", "PT5M"},
		{"2 hours", "PT5M"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseEstimatedTime(tt.in))
		})
	}
}
