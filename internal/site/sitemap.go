package site

import (
	"slices"
	"strings"
	"time"
)

const sitemapDateLayout = "2006-01-02"

// Sitemap returns sitemap.xml listing the site root and one entry per
// provider id in ascending order, all stamped with date.
func Sitemap(siteURL string, ids []string, date time.Time) string {
	today := date.Format(sitemapDateLayout)
	sorted := slices.Clone(ids)
	slices.Sort(sorted)

	urls := make([]string, 0, len(sorted)+1)
	urls = append(urls, "  <url><loc>"+siteURL+"/</loc><lastmod>"+today+"</lastmod><priority>1.0</priority></url>")
	for _, id := range sorted {
		urls = append(urls, "  <url><loc>"+siteURL+"/"+id+"/</loc><lastmod>"+today+"</lastmod><priority>0.8</priority></url>")
	}

	var sb strings.Builder
	sb.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	sb.WriteString(`<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">` + "\n")
	sb.WriteString(strings.Join(urls, "\n"))
	sb.WriteString("\n</urlset>\n")
	return sb.String()
}

// Robots returns robots.txt allowing everything and pointing at the sitemap.
func Robots(siteURL string) string {
	return "User-agent: *\nAllow: /\n\nSitemap: " + siteURL + "/sitemap.xml\n"
}
