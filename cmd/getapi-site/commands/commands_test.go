package commands

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m2de/getapi-site/internal/config"
	"github.com/m2de/getapi-site/internal/foundation/errors"
)

func writeRecipe(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	root := t.TempDir()
	providers := filepath.Join(root, "providers")
	writeRecipe(t, providers, "openai.json", `{"id":"openai","display_name":"OpenAI","category":["ai"],"steps":[{"type":"info","message":"Sign in"},{"type":"prompt_input","message":"Paste {{key}}","validation":"^sk-"}]}`)
	writeRecipe(t, providers, "github.json", `{"id":"github","display_name":"GitHub","category":["developer","ai"],"steps":[]}`)
	return &config.Config{
		BaseURL:      "/getapi",
		SiteURL:      "https://example.test/getapi",
		ProvidersDir: providers,
		OutputDir:    filepath.Join(root, "site"),
	}
}

func parse(t *testing.T, args ...string) (*CLI, *kong.Context) {
	t.Helper()
	cli := &CLI{}
	parser, err := kong.New(cli, kong.Vars{"version": "test"}, kong.Exit(func(int) {}))
	require.NoError(t, err)
	ctx, err := parser.Parse(args)
	require.NoError(t, err)
	return cli, ctx
}

func TestParseBuildFlags(t *testing.T) {
	cli, ctx := parse(t, "build", "-o", "public", "--base-url", "/", "--no-atomic", "--verify-links", "--metrics-file", "m.prom")

	assert.Equal(t, "build", ctx.Command())
	assert.Equal(t, config.DefaultConfigFile, cli.Config)
	assert.Equal(t, "public", cli.Build.Output)
	assert.True(t, cli.Build.NoAtomic)
	assert.True(t, cli.Build.VerifyLinks)
	assert.Equal(t, "m.prom", cli.Build.MetricsFile)
}

func TestBuildFlagsOverrideConfig(t *testing.T) {
	cfg := &config.Config{BaseURL: "/getapi", SiteURL: "https://a.test", ProvidersDir: "providers", OutputDir: "site"}
	cmd := BuildCmd{Output: "public", SiteURL: "https://b.test", NoAtomic: true, VerifyLinks: true}

	cmd.apply(cfg)

	assert.Equal(t, "public", cfg.OutputDir)
	assert.Equal(t, "https://b.test", cfg.SiteURL)
	assert.Equal(t, "/getapi", cfg.BaseURL)
	assert.Equal(t, "providers", cfg.ProvidersDir)
	assert.False(t, cfg.AtomicEnabled())
	assert.True(t, cfg.VerifyLinks)
}

func TestRunBuild(t *testing.T) {
	cfg := testConfig(t)
	metricsFile := filepath.Join(t.TempDir(), "build.prom")
	var out bytes.Buffer

	require.NoError(t, RunBuild(context.Background(), cfg, metricsFile, &out))

	assert.FileExists(t, filepath.Join(cfg.OutputDir, "openai", "index.html"))
	assert.FileExists(t, filepath.Join(cfg.OutputDir, "github", "index.html"))
	assert.Contains(t, out.String(), "Built 8 files in ")
	assert.True(t, strings.HasSuffix(out.String(), "\n2 provider pages generated.\n"))

	metrics, err := os.ReadFile(metricsFile)
	require.NoError(t, err)
	assert.Contains(t, string(metrics), `getapi_site_build_outcomes_total{outcome="success"} 1`)
	assert.Contains(t, string(metrics), "getapi_site_provider_pages 2")
}

func TestRunBuildInvalidConfig(t *testing.T) {
	cfg := testConfig(t)
	cfg.SiteURL = "not a url"

	err := RunBuild(context.Background(), cfg, "", &bytes.Buffer{})
	require.Error(t, err)
	assert.Equal(t, errors.CategoryConfig, errors.GetCategory(err))
	assert.NoDirExists(t, cfg.OutputDir)
}

func TestRunBuildBrokenRecordExitCode(t *testing.T) {
	cfg := testConfig(t)
	writeRecipe(t, cfg.ProvidersDir, "zzz.json", `{"id": `)

	err := RunBuild(context.Background(), cfg, "", &bytes.Buffer{})
	require.Error(t, err)
	assert.Equal(t, 2, errors.NewCLIErrorAdapter(false, nil).ExitCodeFor(err))
}

func TestRunDiscover(t *testing.T) {
	cfg := testConfig(t)
	var out bytes.Buffer

	require.NoError(t, RunDiscover(cfg, &out))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 6)
	assert.Equal(t, "Found 2 providers in "+cfg.ProvidersDir, lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "ID"))
	assert.True(t, strings.HasPrefix(lines[2], "github"))
	assert.Contains(t, lines[2], "developer,ai")
	assert.True(t, strings.HasPrefix(lines[3], "openai"))
	assert.True(t, strings.HasSuffix(lines[3], "2"))
	assert.Equal(t, "Categories: ai, developer", lines[5])
	assert.NoDirExists(t, cfg.OutputDir)
}

func TestRunDiscoverMissingDir(t *testing.T) {
	cfg := &config.Config{ProvidersDir: filepath.Join(t.TempDir(), "nope")}
	err := RunDiscover(cfg, &bytes.Buffer{})
	require.Error(t, err)
	assert.Equal(t, errors.CategoryNotFound, errors.GetCategory(err))
}

func TestRunInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "getapi-site.yaml")

	require.NoError(t, RunInit(path, false))
	assert.FileExists(t, path)

	err := RunInit(path, false)
	require.Error(t, err)
	assert.Equal(t, errors.CategoryConfig, errors.GetCategory(err))

	require.NoError(t, RunInit(path, true))
}

func TestLoadConfigExplicitPathMustExist(t *testing.T) {
	t.Chdir(t.TempDir())

	cli := &CLI{Config: config.DefaultConfigFile}
	_, err := cli.loadConfig()
	require.NoError(t, err)

	cli.Config = "missing.yaml"
	_, err = cli.loadConfig()
	require.Error(t, err)
	assert.Equal(t, errors.CategoryConfig, errors.GetCategory(err))
}
