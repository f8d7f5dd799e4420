package linkverify

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractLinksFromReader(t *testing.T) {
	page := `<!doctype html><html><head>
<link rel="stylesheet" href="/getapi/assets/style.css">
<script src="/getapi/assets/app.js"></script>
</head><body>
<a href="/getapi/stripe/">Stripe</a>
<a>no href</a>
<img src="logo.svg" alt="logo">
</body></html>`

	links, err := ExtractLinksFromReader(strings.NewReader(page))
	require.NoError(t, err)
	assert.Equal(t, []Link{
		{URL: "/getapi/assets/style.css", Tag: "link", Attribute: "href"},
		{URL: "/getapi/assets/app.js", Tag: "script", Attribute: "src"},
		{URL: "/getapi/stripe/", Tag: "a", Attribute: "href"},
		{URL: "logo.svg", Tag: "img", Attribute: "src"},
	}, links)
}

func TestShouldVerifyLink(t *testing.T) {
	tests := map[string]bool{
		"/getapi/stripe/":          true,
		"../assets/style.css":      true,
		"#steps":                   false,
		"mailto:hi@example.com":    false,
		"https://stripe.com":       false,
		"//cdn.example.com/x.js":   false,
		"javascript:void(0)":       false,
		"data:image/png;base64,AA": false,
		"":                         false,
	}
	for u, want := range tests {
		assert.Equal(t, want, ShouldVerifyLink(Link{URL: u}), u)
	}
}
