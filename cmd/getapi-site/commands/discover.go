package commands

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/m2de/getapi-site/internal/config"
	"github.com/m2de/getapi-site/internal/provider"
)

// DiscoverCmd implements the 'discover' command.
type DiscoverCmd struct {
	Providers string `help:"Directory of provider recipe files" placeholder:"DIR"`
}

func (d *DiscoverCmd) Run(_ *Global, root *CLI) error {
	cfg, err := root.loadConfig()
	if err != nil {
		return err
	}
	if d.Providers != "" {
		cfg.ProvidersDir = d.Providers
	}
	return RunDiscover(cfg, os.Stdout)
}

// RunDiscover loads every provider recipe and prints one line per provider
// in site order. Nothing is written to disk.
func RunDiscover(cfg *config.Config, out io.Writer) error {
	providers, err := provider.LoadAll(cfg.ProvidersDir)
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintf(out, "Found %d providers in %s\n", len(providers), cfg.ProvidersDir)
	if len(providers) == 0 {
		return nil
	}
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "ID\tNAME\tCATEGORIES\tSTEPS")
	for _, p := range providers {
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\t%d\n", p.ID, p.DisplayName, strings.Join(p.Category, ","), len(p.Steps))
	}
	_ = tw.Flush()

	cats := provider.CollectCategories(providers)
	_, _ = fmt.Fprintf(out, "\nCategories: %s\n", strings.Join(cats, ", "))
	return nil
}
