package cms

import (
	"strings"
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/require"

	contentfs "knowledgehub.dev/hub-web/content"
)

func TestGetParsesFrontMatterAndBlocks(t *testing.T) {
	t.Parallel()

	lib := NewLibrary(contentfs.FS(), "en")
	page, err := lib.Get("home", "en")
	require.NoError(t, err)
	require.Equal(t, "Welcome to My Knowledge Hub", page.Title)
	require.Contains(t, page.Description, "Sharing years of business experience")
	require.Contains(t, string(page.Block("intro")), "<p>Sharing years of business experience")
	require.Contains(t, string(page.Block("promo")), "Essential Knowledge for Business Success")
	require.Empty(t, page.Block("missing"))
}

func TestGetFallsBackToDefaultLanguage(t *testing.T) {
	t.Parallel()

	lib := NewLibrary(contentfs.FS(), "en")
	page, err := lib.Get("admin", "ja")
	require.NoError(t, err)
	require.Equal(t, "en", page.Lang, "admin copy only exists in English")
	require.Contains(t, string(page.Block("tips")), "Tips management coming soon...")

	page, err = lib.Get("about", "ja")
	require.NoError(t, err)
	require.Equal(t, "ja", page.Lang)
}

func TestGetNotFound(t *testing.T) {
	t.Parallel()

	lib := NewLibrary(contentfs.FS(), "en")
	for _, slug := range []string{"", "nope", "../en/home", "en/home"} {
		_, err := lib.Get(slug, "en")
		require.ErrorIs(t, err, ErrNotFound, "slug %q", slug)
	}
}

func TestGetSanitizesMarkdown(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"en/x.md": {Data: []byte("Hello <script>alert(1)</script> [link](javascript:alert(1))\n")},
	}
	page, err := NewLibrary(fsys, "en").Get("x", "en")
	require.NoError(t, err)
	require.NotContains(t, string(page.Body), "<script>")
	require.NotContains(t, string(page.Body), "javascript:")
	require.Equal(t, "X", page.Title, "title falls back to the prettified slug")
	require.True(t, strings.HasPrefix(page.Description, "Hello"))
}

func TestGetRejectsBadFrontMatter(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"en/bad.md": {Data: []byte("---\ntitle: [unterminated\n---\nbody\n")},
		"ja/bad.md": {Data: []byte("---\ntitle: fine\n---\nbody\n")},
	}
	_, err := NewLibrary(fsys, "en").Get("bad", "en")
	require.ErrorContains(t, err, "parse front matter")
	require.NotErrorIs(t, err, ErrNotFound)
}

func TestCacheServesClonesUntilExpiry(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"en/p.md": {Data: []byte("---\ntitle: One\nupdated_at: 2024-05-01\nblocks:\n  a: first\n---\n")},
	}
	lib := NewLibrary(fsys, "en", WithCacheTTL(time.Hour))
	page, err := lib.Get("p", "en")
	require.NoError(t, err)
	require.Equal(t, time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), page.UpdatedAt)
	page.Blocks["a"] = "mutated"

	fsys["en/p.md"] = &fstest.MapFile{Data: []byte("---\ntitle: Two\n---\n")}
	again, err := lib.Get("p", "en")
	require.NoError(t, err)
	require.Equal(t, "One", again.Title, "cached copy is served")
	require.Contains(t, string(again.Block("a")), "first")

	uncached := NewLibrary(fsys, "en", WithCacheTTL(0))
	fresh, err := uncached.Get("p", "en")
	require.NoError(t, err)
	require.Equal(t, "Two", fresh.Title)
}

func TestSplitFrontMatter(t *testing.T) {
	t.Parallel()

	fm, body := splitFrontMatter("\ufeff---\ntitle: x\n---\n\nbody")
	require.Equal(t, "title: x", fm)
	require.Equal(t, "body", body)

	fm, body = splitFrontMatter("no front matter")
	require.Empty(t, fm)
	require.Equal(t, "no front matter", body)

	fm, body = splitFrontMatter("---\nunterminated")
	require.Empty(t, fm)
	require.Equal(t, "---\nunterminated", body)
}
