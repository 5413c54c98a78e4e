package handlers

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	contentfs "knowledgehub.dev/hub-web/content"
	"knowledgehub.dev/hub-web/internal/cms"
	"knowledgehub.dev/hub-web/internal/i18n"
	"knowledgehub.dev/hub-web/internal/routes"
	"knowledgehub.dev/hub-web/locales"
)

func newBuilder(t *testing.T) *Builder {
	t.Helper()
	bundle, err := i18n.Load(locales.FS(), "en", nil)
	require.NoError(t, err)
	return NewBuilder(bundle, cms.NewLibrary(contentfs.FS(), "en"), Options{BaseURL: "https://hub.example"})
}

func mustRoute(t *testing.T, p string) routes.Route {
	t.Helper()
	rt, ok := routes.Lookup(p)
	require.True(t, ok, p)
	return rt
}

func TestBuildHeadings(t *testing.T) {
	b := newBuilder(t)
	want := map[string]string{
		"/":           "Welcome to My Knowledge Hub",
		"/daily-tips": "Daily Business Tips",
		"/about":      "About Me",
		"/book":       "Essential Knowledge for Business Success",
		"/questions":  "Questions & Answers",
		"/admin":      "Admin Dashboard",
	}
	for p, heading := range want {
		d, err := b.Build(mustRoute(t, p), p, "en")
		require.NoError(t, err, p)
		require.Equal(t, heading, d.Heading, p)
		require.Equal(t, p, d.Path)
		require.Len(t, d.Nav, 4)
	}
}

func TestBuildHome(t *testing.T) {
	d, err := newBuilder(t).Build(mustRoute(t, "/"), "/", "en")
	require.NoError(t, err)
	require.NotNil(t, d.Home)

	hrefs := make([]string, 0, 3)
	for _, c := range d.Home.Cards {
		hrefs = append(hrefs, c.Href)
		require.True(t, routes.Registered(c.Href))
	}
	require.Equal(t, []string{"/daily-tips", "/about", "/questions"}, hrefs)
	require.Equal(t, "Experience & Achievements", d.Home.Cards[1].Title)
	require.Equal(t, "/book", d.Home.Promo.CTAHref)
	require.Equal(t, "Learn More", d.Home.Promo.CTALabel)
	require.Contains(t, string(d.Home.Intro), "entrepreneurial journey")
	require.Equal(t, "Knowledge Hub", d.SEO.Title)
	require.Len(t, d.JSONLD, 3)
	require.True(t, d.Nav[0].Active)
}

func TestBuildPlaceholders(t *testing.T) {
	b := newBuilder(t)

	d, err := b.Build(mustRoute(t, "/daily-tips"), "/daily-tips", "en")
	require.NoError(t, err)
	require.Contains(t, string(d.Body), "Daily tips coming soon...")
	require.Empty(t, d.Updated)
	require.Empty(t, d.UpdatedISO)

	d, err = b.Build(mustRoute(t, "/book"), "/book", "en")
	require.NoError(t, err)
	require.Equal(t, "Pre-order Now", d.Book.PreorderCTA)
	require.Contains(t, string(d.Book.LearnBody), "Book details coming soon...")
	require.Contains(t, strings.Join(d.JSONLD, ""), `"@type":"Book"`)

	d, err = b.Build(mustRoute(t, "/questions"), "/questions", "en")
	require.NoError(t, err)
	require.Contains(t, string(d.Questions.AskBody), "Question submission form coming soon...")
	require.Contains(t, string(d.Questions.ListBody), "Questions and answers will appear here...")

	d, err = b.Build(mustRoute(t, "/admin"), "/admin", "en")
	require.NoError(t, err)
	require.Len(t, d.Admin.Panels, 2)
	require.Contains(t, string(d.Admin.Panels[0].Body), "Tips management coming soon...")
	require.Equal(t, "noindex, nofollow", d.SEO.Robots)
	require.Empty(t, d.JSONLD)
}

func TestBuildNotFoundKeepsRequestPath(t *testing.T) {
	d, err := newBuilder(t).Build(routes.NotFound, "/nonexistent", "en")
	require.NoError(t, err)
	require.Equal(t, "Page Not Found", d.Heading)
	require.Equal(t, "/nonexistent", d.Path)
	require.Equal(t, "/", d.NotFound.HomeHref)
	for _, it := range d.Nav {
		require.False(t, it.Active)
	}
	for _, l := range d.Languages {
		require.True(t, strings.HasPrefix(l.Href, "/?hl="))
	}
}

func TestBuildJapaneseFallsBackForMissingCopy(t *testing.T) {
	b := newBuilder(t)

	d, err := b.Build(mustRoute(t, "/about"), "/about", "ja-JP")
	require.NoError(t, err)
	require.Equal(t, "ja", d.Lang)
	require.NotEqual(t, "About Me", d.Heading)

	// no Japanese admin copy exists, so the English blocks are used
	d, err = b.Build(mustRoute(t, "/admin"), "/admin", "ja")
	require.NoError(t, err)
	require.Contains(t, string(d.Admin.Panels[1].Body), "Questions management coming soon...")

	var active []string
	for _, l := range d.Languages {
		if l.Active {
			active = append(active, l.Code)
		}
	}
	require.Equal(t, []string{"ja"}, active)
}

type stubContent struct {
	page cms.ContentPage
	err  error
}

func (s stubContent) Get(slug, lang string) (cms.ContentPage, error) {
	return s.page, s.err
}

func TestBuildUpdatedDate(t *testing.T) {
	bundle, err := i18n.Load(locales.FS(), "en", nil)
	require.NoError(t, err)

	updated := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	b := NewBuilder(bundle, stubContent{page: cms.ContentPage{Title: "About", UpdatedAt: updated}}, Options{})

	d, err := b.Build(mustRoute(t, "/about"), "/about", "en")
	require.NoError(t, err)
	require.Equal(t, "May 1, 2024", d.Updated)
	require.Equal(t, "2024-05-01", d.UpdatedISO)

	d, err = b.Build(mustRoute(t, "/about"), "/about", "ja")
	require.NoError(t, err)
	require.Equal(t, "2024年5月1日", d.Updated)
}

func TestBuildContentErrors(t *testing.T) {
	bundle, err := i18n.Load(locales.FS(), "en", nil)
	require.NoError(t, err)

	b := NewBuilder(bundle, stubContent{err: cms.ErrNotFound}, Options{})
	d, err := b.Build(mustRoute(t, "/about"), "/about", "en")
	require.NoError(t, err)
	require.Equal(t, "About Me", d.Heading)
	require.Empty(t, d.Body)

	boom := errors.New("boom")
	b = NewBuilder(bundle, stubContent{err: boom}, Options{})
	_, err = b.Build(mustRoute(t, "/about"), "/about", "en")
	require.ErrorIs(t, err, boom)
}

func TestPageDataT(t *testing.T) {
	require.Equal(t, "nav.home", PageData{}.T("nav.home"))
	d, err := newBuilder(t).Build(mustRoute(t, "/"), "/", "en")
	require.NoError(t, err)
	require.Equal(t, "Home", d.T("nav.home"))
}
