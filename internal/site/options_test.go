package site

import (
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m2de/getapi-site/internal/config"
)

func TestOptionsFromConfig(t *testing.T) {
	off := false
	dir := t.TempDir()
	cfg := &config.Config{
		BaseURL:      "/docs",
		SiteURL:      "https://example.test/docs",
		ProvidersDir: "providers",
		OutputDir:    "public",
		TemplatesDir: dir,
		Atomic:       &off,
		VerifyLinks:  true,
	}

	opts := OptionsFromConfig(cfg)
	assert.Equal(t, "/docs", opts.BaseURL)
	assert.Equal(t, "public", opts.OutputDir)
	assert.False(t, opts.Atomic)
	assert.True(t, opts.VerifyLinks)
	assert.NotNil(t, opts.Templates)
	assert.Nil(t, opts.Assets)
}

func TestOptionsDefaults(t *testing.T) {
	opts := Options{BaseURL: "/getapi/", SiteURL: "https://example.test/", OutputDir: "site/"}.withDefaults()

	assert.Equal(t, "/getapi", opts.BaseURL)
	assert.Equal(t, "https://example.test", opts.SiteURL)
	assert.Equal(t, "site", opts.OutputDir)
	require.NotNil(t, opts.Now)
	require.NotNil(t, opts.Stdout)

	for _, name := range []string{TemplateIndex, TemplateProvider, TemplateNotFound, "partials.html"} {
		_, err := fs.Stat(opts.Templates, name)
		assert.NoError(t, err, name)
	}
	for _, name := range []string{"style.css", "app.js"} {
		_, err := fs.Stat(opts.Assets, name)
		assert.NoError(t, err, name)
	}
}

func TestOptionsRootBaseURL(t *testing.T) {
	opts := Options{BaseURL: "/"}.withDefaults()
	assert.Empty(t, opts.BaseURL)
}
