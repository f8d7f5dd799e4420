package config

import (
	"net/url"
	"path/filepath"
	"strings"

	"github.com/m2de/getapi-site/internal/foundation/errors"
)

// Validate checks the resolved configuration before a build.
func (c *Config) Validate() error {
	if c.OutputDir == "" {
		return errors.ConfigError("output directory must be set").Build()
	}
	if c.ProvidersDir == "" {
		return errors.ConfigError("providers directory must be set").Build()
	}

	out := filepath.Clean(c.OutputDir)
	if out == "." || out == string(filepath.Separator) {
		return errors.ConfigError("output directory must not be the working directory or filesystem root").
			WithContext("path", c.OutputDir).Build()
	}

	// The output directory is deleted on every build; it must not contain an input.
	inputs := []struct{ name, dir string }{
		{"providers", c.ProvidersDir},
		{"templates", c.TemplatesDir},
		{"assets", c.AssetsDir},
	}
	for _, in := range inputs {
		if in.dir != "" && within(filepath.Clean(in.dir), out) {
			return errors.ConfigError("output directory contains the "+in.name+" directory").
				WithContext("path", c.OutputDir).Build()
		}
	}

	u, err := url.Parse(c.SiteURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return errors.ConfigError("site_url must be an absolute URL").WithContext("site_url", c.SiteURL).Build()
	}
	return nil
}

func within(path, parent string) bool {
	rel, err := filepath.Rel(parent, path)
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}
