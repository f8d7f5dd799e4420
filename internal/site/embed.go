package site

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.html
var embeddedTemplates embed.FS

//go:embed all:assets
var embeddedAssets embed.FS

// DefaultTemplates returns the page templates compiled into the binary.
func DefaultTemplates() fs.FS { return mustSub(embeddedTemplates, "templates") }

// DefaultAssets returns the static assets compiled into the binary.
func DefaultAssets() fs.FS { return mustSub(embeddedAssets, "assets") }

func mustSub(fsys fs.FS, dir string) fs.FS {
	sub, err := fs.Sub(fsys, dir)
	if err != nil {
		panic(err)
	}
	return sub
}
