package provider

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/m2de/getapi-site/internal/foundation/errors"
	"github.com/m2de/getapi-site/internal/logfields"
	"github.com/m2de/getapi-site/internal/util/sets"
)

// Extensions lists the recognized record file extensions.
var Extensions = []string{".json", ".yaml", ".yml"}

// An identifier becomes an output directory and a URL segment.
var idRe = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._-]*$`)

// LoadAll reads every provider record in dir and returns them ordered by
// display name (case-insensitive). Files are read in filename order; the first
// file that cannot be read or decoded aborts the load.
func LoadAll(dir string) ([]*Provider, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.WrapError(err, errors.CategoryNotFound, "providers directory not found").
				Fatal().WithContext("path", dir).Build()
		}
		return nil, errors.WrapError(err, errors.CategoryFileSystem, "failed to read providers directory").
			Fatal().WithContext("path", dir).Build()
	}

	// os.ReadDir returns entries sorted by filename.
	var providers []*Provider
	seen := sets.New[string]()
	for _, entry := range entries {
		if entry.IsDir() || !isRecordFile(entry.Name()) {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		p, err := Load(path)
		if err != nil {
			return nil, err
		}
		if seen.Has(p.ID) {
			return nil, errors.ProviderError("duplicate provider id").
				WithContext("path", path).WithContext("id", p.ID).Build()
		}
		seen.Add(p.ID)
		providers = append(providers, p)
		slog.Debug("Loaded provider", logfields.Provider(p.ID), logfields.File(entry.Name()), logfields.Count(len(p.Steps)))
	}

	SortByDisplayName(providers)
	return providers, nil
}

// Load reads and decodes a single provider record file.
func Load(path string) (*Provider, error) {
	// #nosec G304 -- path comes from the configured providers directory.
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapError(err, errors.CategoryFileSystem, "failed to read provider file").
			Fatal().WithContext("path", path).Build()
	}

	raw, err := decode(path, data)
	if err != nil {
		return nil, errors.WrapError(err, errors.CategoryProvider, "failed to parse provider file").
			Fatal().WithContext("path", path).Build()
	}

	p := FromRecord(raw)
	p.Source = path
	if p.ID == "" {
		return nil, errors.ProviderError("provider record has no id").WithContext("path", path).Build()
	}
	if !idRe.MatchString(p.ID) {
		return nil, errors.ProviderError("provider id is not a safe path segment").
			WithContext("path", path).WithContext("id", p.ID).Build()
	}
	return p, nil
}

func decode(path string, data []byte) (map[string]any, error) {
	var raw map[string]any
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
	default:
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
	}
	if raw == nil {
		return nil, errors.NewError(errors.CategoryProvider, "record is empty").Build()
	}
	return raw, nil
}

func isRecordFile(name string) bool {
	return slices.Contains(Extensions, strings.ToLower(filepath.Ext(name)))
}

// SortByDisplayName orders providers by lower-cased display name. The sort is
// stable, so equal names keep their filename order.
func SortByDisplayName(providers []*Provider) {
	lower := cases.Lower(language.Und)
	keys := make(map[*Provider]string, len(providers))
	for _, p := range providers {
		keys[p] = lower.String(p.DisplayName)
	}
	slices.SortStableFunc(providers, func(a, b *Provider) int {
		return strings.Compare(keys[a], keys[b])
	})
}

// CollectCategories returns the distinct categories of all providers, sorted.
func CollectCategories(providers []*Provider) []string {
	cats := sets.New[string]()
	for _, p := range providers {
		cats.Add(p.Category...)
	}
	return sets.Sorted(cats)
}

// IDs returns the provider identifiers in slice order.
func IDs(providers []*Provider) []string {
	ids := make([]string, 0, len(providers))
	for _, p := range providers {
		ids = append(ids, p.ID)
	}
	return ids
}
