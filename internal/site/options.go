package site

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/m2de/getapi-site/internal/config"
)

// Options configures a Builder. Nothing inside the package reads the
// environment; callers resolve configuration and pass it here.
type Options struct {
	// BaseURL is the path prefix the site is served under, e.g. "/getapi".
	BaseURL string
	// SiteURL is the absolute public URL used in sitemap.xml and robots.txt.
	SiteURL string

	ProvidersDir string
	OutputDir    string

	// Templates holds the *.html page templates. Nil selects the embedded set.
	Templates fs.FS
	// Assets is copied verbatim to assets/. Nil selects the embedded set.
	Assets fs.FS

	Atomic      bool
	VerifyLinks bool

	// Now supplies the sitemap date. Defaults to time.Now.
	Now func() time.Time
	// Stdout receives the build summary. Defaults to os.Stdout.
	Stdout io.Writer
}

// OptionsFromConfig maps a loaded configuration onto builder options.
// Template and asset directories, when set, are read from disk.
func OptionsFromConfig(cfg *config.Config) Options {
	opts := Options{
		BaseURL:      cfg.BaseURL,
		SiteURL:      cfg.SiteURL,
		ProvidersDir: cfg.ProvidersDir,
		OutputDir:    cfg.OutputDir,
		Atomic:       cfg.AtomicEnabled(),
		VerifyLinks:  cfg.VerifyLinks,
	}
	if cfg.TemplatesDir != "" {
		opts.Templates = os.DirFS(cfg.TemplatesDir)
	}
	if cfg.AssetsDir != "" {
		opts.Assets = os.DirFS(cfg.AssetsDir)
	}
	return opts
}

func (o Options) withDefaults() Options {
	if o.Templates == nil {
		o.Templates = DefaultTemplates()
	}
	if o.Assets == nil {
		o.Assets = DefaultAssets()
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	if o.Stdout == nil {
		o.Stdout = os.Stdout
	}
	o.BaseURL = strings.TrimRight(o.BaseURL, "/")
	o.SiteURL = strings.TrimRight(o.SiteURL, "/")
	o.OutputDir = filepath.Clean(o.OutputDir)
	return o
}
