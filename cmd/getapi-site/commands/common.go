package commands

import (
	"context"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"github.com/m2de/getapi-site/internal/config"
)

// Global carries state shared by every subcommand.
type Global struct {
	Logger  *slog.Logger
	Context context.Context
}

func (g *Global) ctx() context.Context {
	if g == nil || g.Context == nil {
		return context.Background()
	}
	return g.Context
}

// CLI definition & global flags.
type CLI struct {
	Config  string           `short:"c" help:"Configuration file path" default:"getapi-site.yaml"`
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	Build    BuildCmd    `cmd:"" help:"Build the static site from provider recipes"`
	Discover DiscoverCmd `cmd:"" help:"List the provider recipes without building"`
	Init     InitCmd     `cmd:"" help:"Write an example configuration file"`
}

// AfterApply runs after flag parsing; setup logging once.
// nolint:unparam // AfterApply currently never returns an error.
func (c *CLI) AfterApply() error {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return nil
}

// loadConfig reads the configuration file. The default file is optional; a
// path given explicitly with --config must exist.
func (c *CLI) loadConfig() (*config.Config, error) {
	return config.Load(c.Config, c.Config != config.DefaultConfigFile)
}
