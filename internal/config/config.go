// Package config loads the getapi-site build configuration.
//
// Values come from, in increasing precedence: built-in defaults, an optional
// YAML file, and the BASE_URL / SITE_URL environment variables (which may be
// set through a .env file). Command-line flags are applied on top by the CLI.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/m2de/getapi-site/internal/foundation/errors"
)

// Config represents the site build configuration.
type Config struct {
	// BaseURL prefixes intra-site links (for example "/getapi").
	BaseURL string `yaml:"base_url"`
	// SiteURL is the absolute URL used in sitemap.xml and robots.txt.
	SiteURL string `yaml:"site_url"`

	ProvidersDir string `yaml:"providers_dir"`
	// TemplatesDir and AssetsDir override the templates and assets built into the binary.
	TemplatesDir string `yaml:"templates_dir,omitempty"`
	AssetsDir    string `yaml:"assets_dir,omitempty"`
	OutputDir    string `yaml:"output_dir"`

	// Atomic builds into a staging directory and swaps it into place on success.
	Atomic      *bool `yaml:"atomic,omitempty"`
	VerifyLinks bool  `yaml:"verify_links,omitempty"`

	// Set when the value came from the environment; an empty value is kept.
	baseURLFromEnv bool
	siteURLFromEnv bool
}

// AtomicEnabled reports whether staged builds are on (the default).
func (c *Config) AtomicEnabled() bool {
	return c.Atomic == nil || *c.Atomic
}

// Load reads configuration from configPath. A missing file is not an error
// when required is false; defaults and the environment still apply.
func Load(configPath string, required bool) (*Config, error) {
	loadEnvFile()

	cfg := &Config{}
	if configPath != "" {
		data, err := os.ReadFile(configPath) // #nosec G304 -- user supplied config path
		switch {
		case err == nil:
			// Expand environment variables in the YAML content
			expanded := os.ExpandEnv(string(data))
			if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
				return nil, errors.WrapError(err, errors.CategoryConfig, "failed to unmarshal config").
					Fatal().WithContext("path", configPath).Build()
			}
		case os.IsNotExist(err) && !required:
		case os.IsNotExist(err):
			return nil, errors.ConfigError("configuration file not found").WithContext("path", configPath).Build()
		default:
			return nil, errors.WrapError(err, errors.CategoryConfig, "failed to read config file").
				Fatal().WithContext("path", configPath).Build()
		}
	}

	applyEnv(cfg)
	applyDefaults(cfg)
	return cfg, nil
}

// Init writes an example configuration file.
func Init(configPath string, force bool) error {
	if _, err := os.Stat(configPath); err == nil && !force {
		return errors.ConfigError(fmt.Sprintf("configuration file already exists: %s (use --force to overwrite)", configPath)).
			WithContext("path", configPath).Build()
	}

	atomic := true
	example := Config{
		BaseURL:      DefaultBaseURL,
		SiteURL:      DefaultSiteURL,
		ProvidersDir: DefaultProvidersDir,
		OutputDir:    DefaultOutputDir,
		Atomic:       &atomic,
	}

	data, err := yaml.Marshal(&example)
	if err != nil {
		return errors.WrapError(err, errors.CategoryInternal, "failed to marshal config").Fatal().Build()
	}
	if err := os.WriteFile(configPath, data, 0o600); err != nil {
		return errors.WrapError(err, errors.CategoryFileSystem, "failed to write config file").
			Fatal().WithContext("path", configPath).Build()
	}
	return nil
}
