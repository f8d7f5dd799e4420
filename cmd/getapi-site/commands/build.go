package commands

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/m2de/getapi-site/internal/config"
	"github.com/m2de/getapi-site/internal/logfields"
	"github.com/m2de/getapi-site/internal/metrics"
	"github.com/m2de/getapi-site/internal/site"
)

// BuildCmd implements the 'build' command.
type BuildCmd struct {
	Providers   string `help:"Directory of provider recipe files" placeholder:"DIR"`
	Templates   string `help:"Directory of page templates (built-in templates when empty)" placeholder:"DIR"`
	Assets      string `help:"Directory of static assets (built-in assets when empty)" placeholder:"DIR"`
	Output      string `short:"o" help:"Output directory for the generated site" placeholder:"DIR"`
	BaseURL     string `name:"base-url" help:"Path prefix the site is served under (env BASE_URL)"`
	SiteURL     string `name:"site-url" help:"Absolute public URL of the site (env SITE_URL)"`
	NoAtomic    bool   `name:"no-atomic" help:"Reset the output directory in place instead of building into a staging directory"`
	VerifyLinks bool   `name:"verify-links" help:"Fail the build when a generated page links to a missing file"`
	MetricsFile string `name:"metrics-file" help:"Write build metrics in Prometheus text format to this file" placeholder:"FILE"`
}

func (b *BuildCmd) Run(g *Global, root *CLI) error {
	cfg, err := root.loadConfig()
	if err != nil {
		return err
	}
	b.apply(cfg)
	return RunBuild(g.ctx(), cfg, b.MetricsFile, os.Stdout)
}

// apply overrides configuration values with the flags that were set.
func (b *BuildCmd) apply(cfg *config.Config) {
	set := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	set(&cfg.ProvidersDir, b.Providers)
	set(&cfg.TemplatesDir, b.Templates)
	set(&cfg.AssetsDir, b.Assets)
	set(&cfg.OutputDir, b.Output)
	set(&cfg.BaseURL, b.BaseURL)
	set(&cfg.SiteURL, b.SiteURL)
	if b.NoAtomic {
		off := false
		cfg.Atomic = &off
	}
	if b.VerifyLinks {
		cfg.VerifyLinks = true
	}
}

// RunBuild validates cfg and builds the site, printing the summary to out.
// When metricsFile is set the build metrics are written there even if the
// build fails.
func RunBuild(ctx context.Context, cfg *config.Config, metricsFile string, out io.Writer) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	opts := site.OptionsFromConfig(cfg)
	opts.Stdout = out
	builder := site.NewBuilder(opts)

	var recorder *metrics.PrometheusRecorder
	if metricsFile != "" {
		recorder = metrics.NewPrometheusRecorder(prometheus.NewRegistry())
		builder.WithRecorder(recorder)
	}

	_, buildErr := builder.Build(ctx)

	if recorder != nil {
		if err := recorder.WriteTextfile(metricsFile); err != nil {
			if buildErr == nil {
				return err
			}
			slog.Warn("Failed to write metrics file", logfields.Path(metricsFile), logfields.Error(err))
		}
	}
	return buildErr
}
