package httpserver

import (
	"encoding/xml"
	"fmt"
	"net/http"
	"strings"

	"knowledgehub.dev/hub-web/internal/routes"
	"knowledgehub.dev/hub-web/internal/seo"
)

func robots(baseURL string) http.HandlerFunc {
	var b strings.Builder
	b.WriteString("User-agent: *\n")
	for _, rt := range routes.All() {
		if rt.NoIndex {
			fmt.Fprintf(&b, "Disallow: %s\n", rt.Path)
		}
	}
	fmt.Fprintf(&b, "\nSitemap: %s\n", seo.Absolute(baseURL, "/sitemap.xml"))
	body := b.String()
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Header().Set("Cache-Control", "public, max-age=86400")
		_, _ = w.Write([]byte(body))
	}
}

type urlset struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc string `xml:"loc"`
}

func sitemap(baseURL string) http.HandlerFunc {
	set := urlset{XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9"}
	for _, rt := range routes.All() {
		if !rt.NoIndex {
			set.URLs = append(set.URLs, sitemapURL{Loc: seo.Absolute(baseURL, rt.Path)})
		}
	}
	body, err := xml.MarshalIndent(set, "", "  ")
	return func(w http.ResponseWriter, _ *http.Request) {
		if err != nil {
			http.Error(w, "sitemap unavailable", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/xml; charset=utf-8")
		w.Header().Set("Cache-Control", "public, max-age=86400")
		_, _ = w.Write([]byte(xml.Header))
		_, _ = w.Write(body)
	}
}
