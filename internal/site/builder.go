package site

import (
	"context"
	"errors"
	"html/template"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	ferrors "github.com/m2de/getapi-site/internal/foundation/errors"
	"github.com/m2de/getapi-site/internal/linkverify"
	"github.com/m2de/getapi-site/internal/logfields"
	"github.com/m2de/getapi-site/internal/markdown"
	"github.com/m2de/getapi-site/internal/metrics"
	"github.com/m2de/getapi-site/internal/provider"
	"github.com/m2de/getapi-site/internal/textutil"
)

// Builder renders the site described by its Options.
type Builder struct {
	opts     Options
	recorder metrics.Recorder
	md       *markdown.Renderer
	rename   func(oldpath, newpath string) error

	stageDir string
}

// buildState is the data threaded through the stages of one build.
type buildState struct {
	root       string
	tmpl       *template.Template
	providers  []*provider.Provider
	categories []string
	ids        []string
	report     *Report
}

// NewBuilder returns a Builder for opts. Unset fields get their defaults.
func NewBuilder(opts Options) *Builder {
	return &Builder{
		opts:     opts.withDefaults(),
		recorder: metrics.NoopRecorder{},
		md:       markdown.New(),
		rename:   os.Rename,
	}
}

// WithRecorder attaches a metrics recorder. Nil restores the no-op recorder.
func (b *Builder) WithRecorder(r metrics.Recorder) *Builder {
	if r == nil {
		r = metrics.NoopRecorder{}
	}
	b.recorder = r
	return b
}

// Build runs every stage in order and returns the report. On failure the
// returned error is a *StageError naming the failing stage, and the report
// holds whatever was recorded up to that point.
func (b *Builder) Build(ctx context.Context) (*Report, error) {
	report := newReport(uuid.NewString(), b.opts.OutputDir)
	bs := &buildState{report: report}

	slog.Info("Starting site build",
		logfields.BuildID(report.BuildID),
		logfields.Path(b.opts.OutputDir),
		slog.Bool("atomic", b.opts.Atomic))

	err := runStages(ctx, bs, b.stages(), b.recorder)
	report.End = time.Now()
	b.recorder.ObserveBuildDuration(report.Duration())

	if err != nil {
		b.abortStaging()
		var se *StageError
		if errors.As(err, &se) && se.Kind == StageErrorCanceled {
			b.recorder.IncBuildOutcome(metrics.BuildOutcomeCanceled)
		} else {
			b.recorder.IncBuildOutcome(metrics.BuildOutcomeFailed)
		}
		slog.Error("Site build failed", logfields.BuildID(report.BuildID), logfields.Error(err))
		return report, err
	}

	b.recorder.IncBuildOutcome(metrics.BuildOutcomeSuccess)
	b.recorder.SetProviderPages(report.ProviderPages)
	b.recorder.SetFilesWritten(len(report.Files))
	slog.Info("Site build complete",
		logfields.BuildID(report.BuildID),
		logfields.Count(len(report.Files)),
		logfields.DurationMS(float64(report.Duration().Microseconds())/1000))
	return report, nil
}

func (b *Builder) stages() []stageDef {
	defs := []stageDef{
		{StageReset, b.stageReset},
		{StageInitRenderer, b.stageInitRenderer},
		{StageLoad, b.stageLoad},
		{StageRenderIndex, b.stageRenderIndex},
		{StageRenderProviders, b.stageRenderProviders},
		{StageRender404, b.stageRender404},
		{StageCopyAssets, b.stageCopyAssets},
		{StageSitemap, b.stageSitemap},
		{StageRobots, b.stageRobots},
	}
	if b.opts.VerifyLinks {
		defs = append(defs, stageDef{StageVerifyLinks, b.stageVerifyLinks})
	}
	if b.opts.Atomic {
		defs = append(defs, stageDef{StagePromote, b.stagePromote})
	}
	return append(defs, stageDef{StageSummarize, b.stageSummarize})
}

func (b *Builder) stageReset(_ context.Context, bs *buildState) error {
	out := b.opts.OutputDir
	if strings.TrimSpace(b.opts.OutputDir) == "" || out == "." || out == filepath.Dir(out) {
		return ferrors.ValidationError("refusing to reset output directory").WithContext("path", b.opts.OutputDir).Build()
	}
	if b.opts.Atomic {
		if err := b.beginStaging(); err != nil {
			return err
		}
		bs.root = b.stageDir
		return nil
	}
	if err := resetDir(out); err != nil {
		return err
	}
	bs.root = out
	return nil
}

func (b *Builder) stageInitRenderer(_ context.Context, bs *buildState) error {
	tmpl, err := parseTemplates(b.opts.Templates)
	if err != nil {
		return err
	}
	bs.tmpl = tmpl
	return nil
}

func (b *Builder) stageLoad(_ context.Context, bs *buildState) error {
	providers, err := provider.LoadAll(b.opts.ProvidersDir)
	if err != nil {
		return err
	}
	bs.providers = providers
	bs.categories = provider.CollectCategories(providers)
	bs.ids = provider.IDs(providers)
	slog.Debug("Loaded providers", logfields.Count(len(providers)), logfields.Path(b.opts.ProvidersDir))
	return nil
}

func (b *Builder) stageRenderIndex(_ context.Context, bs *buildState) error {
	data, err := b.indexPage(bs)
	if err != nil {
		return err
	}
	return bs.render(TemplateIndex, "index.html", data)
}

func (b *Builder) stageRenderProviders(_ context.Context, bs *buildState) error {
	for _, p := range bs.providers {
		data, err := b.providerPage(p, textutil.ParseEstimatedTime(p.EstimatedTime))
		if err != nil {
			return err
		}
		if err := bs.render(TemplateProvider, p.ID+"/index.html", data); err != nil {
			return err
		}
		bs.report.ProviderPages++
		slog.Debug("Rendered provider page", logfields.Provider(p.ID))
	}
	return nil
}

func (b *Builder) stageRender404(_ context.Context, bs *buildState) error {
	return bs.render(TemplateNotFound, "404.html", b.notFoundPage())
}

func (b *Builder) stageCopyAssets(_ context.Context, bs *buildState) error {
	return bs.copyAssets(b.opts.Assets)
}

func (b *Builder) stageSitemap(_ context.Context, bs *buildState) error {
	return bs.writeFile("sitemap.xml", []byte(Sitemap(b.opts.SiteURL, bs.ids, b.opts.Now())))
}

func (b *Builder) stageRobots(_ context.Context, bs *buildState) error {
	return bs.writeFile("robots.txt", []byte(Robots(b.opts.SiteURL)))
}

func (b *Builder) stageVerifyLinks(_ context.Context, bs *buildState) error {
	broken, err := linkverify.Checker{Root: bs.root, BaseURL: b.opts.BaseURL}.Check()
	if err != nil {
		return err
	}
	if len(broken) == 0 {
		return nil
	}
	for _, l := range broken {
		slog.Warn("Broken internal link", logfields.Path(l.Page), logfields.URL(l.URL), slog.String("target", l.Target))
	}
	first := broken[0]
	return ferrors.BuildError("generated site contains broken internal links").
		WithContext("count", len(broken)).
		WithContext("path", first.Page).
		WithContext("url", first.URL).
		Build()
}

func (b *Builder) stagePromote(_ context.Context, _ *buildState) error {
	return b.finalizeStaging()
}

func (b *Builder) stageSummarize(_ context.Context, bs *buildState) error {
	if err := bs.report.WriteSummary(b.opts.Stdout); err != nil {
		return ferrors.WrapError(err, ferrors.CategoryInternal, "failed to write build summary").Fatal().Build()
	}
	return nil
}
