package site

import (
	"bytes"
	"html/template"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/m2de/getapi-site/internal/foundation/errors"
	"github.com/m2de/getapi-site/internal/provider"
	"github.com/m2de/getapi-site/internal/steps"
)

// Template names every template set must provide.
const (
	TemplateIndex    = "index.html"
	TemplateProvider = "provider.html"
	TemplateNotFound = "404.html"
)

const siteName = "getapi"

// Page carries the values every page template needs.
type Page struct {
	BaseURL     string
	SiteURL     string
	Title       string
	Description string
	Canonical   string
}

// IndexPage is the data for index.html.
type IndexPage struct {
	Page
	Providers  []*provider.Provider
	Categories []string
	// Summaries holds each provider's rendered description, keyed by id.
	Summaries map[string]template.HTML
}

// ProviderView is a provider whose steps carry their display fields.
type ProviderView struct {
	*provider.Provider
	Steps []steps.Prepared
}

// ProviderPage is the data for provider.html.
type ProviderPage struct {
	Page
	Provider         ProviderView
	StepTypeLabels   map[string]string
	EstimatedTimeISO string
	DescriptionHTML  template.HTML
	GotchasHTML      []template.HTML
}

// NotFoundPage is the data for 404.html.
type NotFoundPage struct {
	Page
}

var templateFuncs = template.FuncMap{
	"inc":  func(i int) int { return i + 1 },
	"join": strings.Join,
}

// parseTemplates loads every *.html file of fsys into one template set and
// checks that the page templates are present.
func parseTemplates(fsys fs.FS) (*template.Template, error) {
	tmpl, err := template.New("site").Funcs(templateFuncs).Option("missingkey=error").ParseFS(fsys, "*.html")
	if err != nil {
		return nil, errors.WrapError(err, errors.CategoryTemplate, "failed to parse templates").Fatal().Build()
	}
	for _, name := range []string{TemplateIndex, TemplateProvider, TemplateNotFound} {
		if tmpl.Lookup(name) == nil {
			return nil, errors.TemplateError("missing page template").WithContext("template", name).Build()
		}
	}
	return tmpl, nil
}

// render executes the named template fully in memory before anything is
// written, so a failing template never leaves a truncated page.
func (bs *buildState) render(name, rel string, data any) error {
	var buf bytes.Buffer
	if err := bs.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return errors.WrapError(err, errors.CategoryTemplate, "failed to render template").
			Fatal().WithContext("template", name).WithContext("path", rel).Build()
	}
	return bs.writeFile(rel, buf.Bytes())
}

// writeFile writes data to rel below the build root and records it.
func (bs *buildState) writeFile(rel string, data []byte) error {
	target := filepath.Join(bs.root, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return errors.WrapError(err, errors.CategoryFileSystem, "failed to create directory").
			Fatal().WithContext("path", filepath.Dir(target)).Build()
	}
	if err := os.WriteFile(target, data, 0o644); err != nil {
		return errors.WrapError(err, errors.CategoryFileSystem, "failed to write file").
			Fatal().WithContext("path", target).Build()
	}
	bs.report.Files = append(bs.report.Files, rel)
	return nil
}

// maxAssetLinkDepth bounds how many symlinked directories are followed
// inside one another, so a link cycle fails instead of recursing forever.
const maxAssetLinkDepth = 8

// copyAssets copies every file of fsys to assets/ below the build root.
// Symlinks are followed and their targets copied as regular files.
func (bs *buildState) copyAssets(fsys fs.FS) error {
	return bs.copyAssetTree(fsys, "assets", 0)
}

func (bs *buildState) copyAssetTree(fsys fs.FS, dest string, depth int) error {
	return fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return assetError(err, "failed to read assets", p)
		}
		if d.IsDir() {
			return nil
		}
		if d.Type()&fs.ModeSymlink != 0 {
			info, err := fs.Stat(fsys, p)
			if err != nil {
				return assetError(err, "failed to resolve asset symlink", p)
			}
			if info.IsDir() {
				if depth >= maxAssetLinkDepth {
					return errors.FileSystemError("too many nested symlinked asset directories").
						WithContext("path", p).Build()
				}
				sub, err := fs.Sub(fsys, p)
				if err != nil {
					return assetError(err, "failed to open symlinked asset directory", p)
				}
				return bs.copyAssetTree(sub, path.Join(dest, p), depth+1)
			}
			if !info.Mode().IsRegular() {
				return nil
			}
		} else if !d.Type().IsRegular() {
			return nil
		}
		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return assetError(err, "failed to read asset", p)
		}
		return bs.writeFile(path.Join(dest, p), data)
	})
}

func assetError(err error, msg, p string) error {
	return errors.WrapError(err, errors.CategoryFileSystem, msg).Fatal().WithContext("path", p).Build()
}

func (b *Builder) basePage() Page {
	return Page{BaseURL: b.opts.BaseURL, SiteURL: b.opts.SiteURL}
}

func (b *Builder) indexPage(bs *buildState) (IndexPage, error) {
	page := b.basePage()
	page.Title = siteName + " - API credential setup guides"
	page.Description = "Step-by-step guides for creating API keys, tokens and secrets for popular developer platforms."
	page.Canonical = b.opts.SiteURL + "/"

	summaries := make(map[string]template.HTML, len(bs.providers))
	for _, p := range bs.providers {
		h, err := b.md.RenderInline(p.Description)
		if err != nil {
			return IndexPage{}, markdownError(err, p, "description")
		}
		if h != "" {
			summaries[p.ID] = h
		}
	}
	return IndexPage{Page: page, Providers: bs.providers, Categories: bs.categories, Summaries: summaries}, nil
}

func (b *Builder) providerPage(p *provider.Provider, iso string) (ProviderPage, error) {
	page := b.basePage()
	name := p.DisplayName
	if name == "" {
		name = p.ID
	}
	page.Title = name + " API credentials - " + siteName
	page.Description = "How to get " + name + " API credentials, step by step."
	page.Canonical = b.opts.SiteURL + "/" + p.ID + "/"

	desc, err := b.md.Render(p.Description)
	if err != nil {
		return ProviderPage{}, markdownError(err, p, "description")
	}
	gotchas := make([]template.HTML, 0, len(p.Gotchas))
	for _, g := range p.Gotchas {
		h, err := b.md.RenderInline(g)
		if err != nil {
			return ProviderPage{}, markdownError(err, p, "gotchas")
		}
		gotchas = append(gotchas, h)
	}

	return ProviderPage{
		Page:             page,
		Provider:         ProviderView{Provider: p, Steps: steps.Prepare(p)},
		StepTypeLabels:   steps.Labels(),
		EstimatedTimeISO: iso,
		DescriptionHTML:  desc,
		GotchasHTML:      gotchas,
	}, nil
}

func markdownError(err error, p *provider.Provider, field string) error {
	return errors.WrapError(err, errors.CategoryProvider, "failed to render markdown").
		Fatal().WithContext("provider", p.ID).WithContext("field", field).WithContext("path", p.Source).Build()
}

func (b *Builder) notFoundPage() NotFoundPage {
	page := b.basePage()
	page.Title = "Page not found - " + siteName
	return NotFoundPage{Page: page}
}
