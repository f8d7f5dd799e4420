// Package linkverify checks that the internal links of a generated site point
// at files that exist in the output tree.
package linkverify

import (
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/net/html"

	"github.com/m2de/getapi-site/internal/foundation/errors"
)

// Link represents an extracted link from HTML content.
type Link struct {
	URL       string // The URL or path
	Tag       string // HTML tag (a, img, script, link, ...)
	Attribute string // Attribute containing the link (href, src)
}

// linkAttrs maps the elements we follow to the attribute holding the target.
var linkAttrs = map[string]string{
	"a":      "href",
	"link":   "href",
	"img":    "src",
	"script": "src",
	"source": "src",
}

// ExtractLinks extracts all links from an HTML file.
func ExtractLinks(htmlPath string) ([]Link, error) {
	file, err := os.Open(filepath.Clean(htmlPath))
	if err != nil {
		return nil, errors.WrapError(err, errors.CategoryFileSystem, "failed to open HTML file").
			Fatal().WithContext("path", htmlPath).Build()
	}
	defer func() {
		_ = file.Close()
	}()

	links, err := ExtractLinksFromReader(file)
	if err != nil {
		return nil, errors.WrapError(err, errors.CategoryValidation, "failed to parse HTML").
			Fatal().WithContext("path", htmlPath).Build()
	}
	return links, nil
}

// ExtractLinksFromReader extracts all links from an HTML reader, in document order.
func ExtractLinksFromReader(r io.Reader) ([]Link, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, err
	}

	var links []Link
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			if attr, ok := linkAttrs[n.Data]; ok {
				if v := getAttr(n, attr); v != "" {
					links = append(links, Link{URL: v, Tag: n.Data, Attribute: attr})
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return links, nil
}

// getAttr retrieves an attribute value from an HTML node.
func getAttr(n *html.Node, key string) string {
	for _, attr := range n.Attr {
		if attr.Key == key {
			return attr.Val
		}
	}
	return ""
}

// ShouldVerifyLink reports whether a link targets a local resource.
func ShouldVerifyLink(link Link) bool {
	if link.URL == "" || strings.HasPrefix(link.URL, "#") {
		return false
	}
	for _, prefix := range []string{"mailto:", "tel:", "javascript:", "data:"} {
		if strings.HasPrefix(link.URL, prefix) {
			return false
		}
	}
	u, err := url.Parse(link.URL)
	if err != nil {
		return true
	}
	return u.Scheme == "" && u.Host == ""
}
