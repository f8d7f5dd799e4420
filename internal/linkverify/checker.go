package linkverify

import (
	"io/fs"
	"log/slog"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/m2de/getapi-site/internal/foundation/errors"
	"github.com/m2de/getapi-site/internal/logfields"
)

// BrokenLink is an internal link whose target is missing from the site.
type BrokenLink struct {
	Page   string // page path relative to the site root, slash separated
	URL    string // link as written in the page
	Target string // resolved path relative to the site root
}

// Checker verifies internal links of a generated site rooted at Root and
// served under BaseURL (for example "/getapi").
type Checker struct {
	Root    string
	BaseURL string
}

// Check walks every HTML file below Root and returns the links whose target
// does not exist. Absolute paths outside BaseURL are not checked.
func (c Checker) Check() ([]BrokenLink, error) {
	prefix := "/" + strings.Trim(c.BaseURL, "/")
	if prefix == "/" {
		prefix = ""
	}

	var broken []BrokenLink
	err := filepath.WalkDir(c.Root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.EqualFold(filepath.Ext(p), ".html") {
			return nil
		}
		rel, err := filepath.Rel(c.Root, p)
		if err != nil {
			return err
		}
		page := filepath.ToSlash(rel)

		links, err := ExtractLinks(p)
		if err != nil {
			return err
		}
		for _, link := range links {
			if !ShouldVerifyLink(link) {
				continue
			}
			target, ok := resolve(page, link.URL, prefix)
			if !ok {
				continue
			}
			if !c.exists(target) {
				slog.Debug("Broken internal link", logfields.Path(page), logfields.URL(link.URL))
				broken = append(broken, BrokenLink{Page: page, URL: link.URL, Target: target})
			}
		}
		return nil
	})
	if err != nil {
		if errors.IsClassified(err) {
			return nil, err
		}
		return nil, errors.WrapError(err, errors.CategoryFileSystem, "failed to walk site").
			Fatal().WithContext("path", c.Root).Build()
	}
	return broken, nil
}

// resolve maps a link found on page to a slash-separated path relative to the
// site root. Directory links resolve to their index.html.
func resolve(page, raw, prefix string) (string, bool) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", false
	}
	p := u.Path
	if p == "" {
		return "", false
	}

	var target string
	if strings.HasPrefix(p, "/") {
		if prefix != "" {
			if p != prefix && !strings.HasPrefix(p, prefix+"/") {
				return "", false
			}
			p = strings.TrimPrefix(p, prefix)
		}
		target = path.Clean("/" + p)
	} else {
		target = path.Clean("/" + path.Join(path.Dir(page), p))
	}

	if strings.HasSuffix(p, "/") || target == "/" {
		target = path.Join(target, "index.html")
	}
	return strings.TrimPrefix(target, "/"), true
}

func (c Checker) exists(target string) bool {
	fi, err := os.Stat(filepath.Join(c.Root, filepath.FromSlash(target)))
	if err != nil {
		return false
	}
	if fi.IsDir() {
		_, err = os.Stat(filepath.Join(c.Root, filepath.FromSlash(target), "index.html"))
		return err == nil
	}
	return true
}
