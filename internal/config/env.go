package config

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
)

// Environment variables read by the build.
const (
	EnvBaseURL = "BASE_URL"
	EnvSiteURL = "SITE_URL"
)

var envFiles = []string{".env", ".env.local"}

// loadEnvFile loads the first .env file found. Existing process environment
// variables are never overwritten.
func loadEnvFile() {
	for _, name := range envFiles {
		if _, err := os.Stat(name); err != nil {
			continue
		}
		if err := godotenv.Load(name); err != nil {
			slog.Warn("Failed to load env file", "file", name, "error", err)
			continue
		}
		slog.Debug("Loaded environment variables", "file", name)
		return
	}
}

// applyEnv overrides file values with BASE_URL and SITE_URL when they are
// set, even to "". An empty BASE_URL serves the site from the domain root.
func applyEnv(cfg *Config) {
	if v, ok := os.LookupEnv(EnvBaseURL); ok {
		cfg.BaseURL = v
		cfg.baseURLFromEnv = true
	}
	if v, ok := os.LookupEnv(EnvSiteURL); ok {
		cfg.SiteURL = v
		cfg.siteURLFromEnv = true
	}
}
