package site

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportWriteSummary(t *testing.T) {
	r := newReport("id", "site/")
	r.Files = []string{"robots.txt", "index.html", "openai/index.html"}
	r.ProviderPages = 1

	var buf bytes.Buffer
	require.NoError(t, r.WriteSummary(&buf))
	assert.Equal(t, "Built 3 files in site/:\n  index.html\n  openai/index.html\n  robots.txt\n\n1 provider pages generated.\n", buf.String())
	assert.Equal(t, []string{"robots.txt", "index.html", "openai/index.html"}, r.Files)
}

func TestReportDuration(t *testing.T) {
	r := newReport("id", "site")
	assert.Zero(t, r.Duration())
	r.End = r.Start.Add(1500 * time.Millisecond)
	assert.Equal(t, 1500*time.Millisecond, r.Duration())
}
