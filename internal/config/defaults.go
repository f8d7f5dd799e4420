package config

// Defaults used when neither the config file nor the environment set a value.
const (
	DefaultBaseURL      = "/getapi"
	DefaultSiteURL      = "https://m2de.github.io/getapi"
	DefaultProvidersDir = "providers"
	DefaultOutputDir    = "site"
	DefaultConfigFile   = "getapi-site.yaml"
)

func applyDefaults(cfg *Config) {
	if cfg.BaseURL == "" && !cfg.baseURLFromEnv {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.SiteURL == "" && !cfg.siteURLFromEnv {
		cfg.SiteURL = DefaultSiteURL
	}
	if cfg.ProvidersDir == "" {
		cfg.ProvidersDir = DefaultProvidersDir
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = DefaultOutputDir
	}
}
