package seo

import (
	"net/url"
	"strings"
)

type OpenGraph struct {
	Title       string
	Description string
	URL         string
	SiteName    string
	Locale      string
	Type        string
}

type Twitter struct {
	Card string
}

// Alternate is an hreflang link to the same page in another language.
type Alternate struct {
	Lang string
	Href string
}

type Meta struct {
	Title       string
	Description string
	Canonical   string
	Robots      string
	OG          OpenGraph
	Twitter     Twitter
	Alternates  []Alternate
}

// Page describes the page a Meta is built for.
type Page struct {
	SiteName    string
	Title       string
	Description string
	Path        string
	Lang        string
	NoIndex     bool
}

// Build assembles head metadata for p. baseURL is the canonical origin and
// langs the languages the page can be requested in through ?hl=.
func Build(baseURL string, p Page, langs []string) Meta {
	title := p.SiteName
	if p.Title != "" && p.Title != p.SiteName {
		title = p.Title + " | " + p.SiteName
	}
	canonical := Absolute(baseURL, p.Path)
	m := Meta{
		Title:       title,
		Description: p.Description,
		Canonical:   canonical,
		Robots:      "index, follow",
		OG: OpenGraph{
			Title:       title,
			Description: p.Description,
			URL:         canonical,
			SiteName:    p.SiteName,
			Locale:      ogLocale(p.Lang),
			Type:        "website",
		},
		Twitter: Twitter{Card: "summary"},
	}
	if p.NoIndex {
		m.Robots = "noindex, nofollow"
		return m
	}
	for _, l := range langs {
		m.Alternates = append(m.Alternates, Alternate{Lang: l, Href: canonical + "?hl=" + url.QueryEscape(l)})
	}
	return m
}

// Absolute joins baseURL and path without doubling slashes.
func Absolute(baseURL, path string) string {
	base := strings.TrimRight(baseURL, "/")
	if path == "" {
		path = "/"
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return base + path
}

func ogLocale(lang string) string {
	switch lang {
	case "ja":
		return "ja_JP"
	case "en", "":
		return "en_US"
	default:
		return lang
	}
}
