package i18n

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"

	"knowledgehub.dev/hub-web/locales"
)

func loadEmbedded(t *testing.T) *Bundle {
	t.Helper()
	b, err := Load(locales.FS(), "en", []string{"en", "ja"})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	return b
}

func TestResolveHonorsQValues(t *testing.T) {
	b := loadEmbedded(t)
	got := b.Resolve("en;q=0.8, ja;q=0.9")
	if got != "ja" {
		t.Fatalf("expected ja, got %s", got)
	}
}

func TestResolveFallsBackForUnsupported(t *testing.T) {
	b := loadEmbedded(t)
	require.Equal(t, "en", b.Resolve("fr-FR, de;q=0.7"))
	require.Equal(t, "en", b.Resolve(""))
	require.Equal(t, "ja", b.Resolve("ja-JP"))
	require.Equal(t, "en", b.Resolve("ja;q=0, en;q=0.1"), "q=0 means not acceptable")
}

func TestTFallsBackToDefaultThenKey(t *testing.T) {
	fsys := fstest.MapFS{
		"en.json": {Data: []byte(`{"greeting":"Hello","only.en":"English"}`)},
		"ja.json": {Data: []byte(`{"greeting":"こんにちは"}`)},
	}
	b, err := Load(fsys, "en", []string{"en", "ja"})
	require.NoError(t, err)

	require.Equal(t, "こんにちは", b.T("ja", "greeting"))
	require.Equal(t, "English", b.T("ja", "only.en"))
	require.Equal(t, "missing.key", b.T("ja", "missing.key"))
	require.Equal(t, "Hello", b.Translator("")("greeting"))
}

func TestLoadRequiresFallback(t *testing.T) {
	_, err := Load(fstest.MapFS{"ja.json": {Data: []byte(`{}`)}}, "en", []string{"en", "ja"})
	require.Error(t, err)

	b, err := Load(fstest.MapFS{"en.json": {Data: []byte(`{}`)}}, "en", []string{"en", "ja"})
	require.NoError(t, err, "missing non-default locale is allowed")
	require.Equal(t, []string{"en", "ja"}, b.Supported())
}

func TestLoadRejectsMalformedJSON(t *testing.T) {
	_, err := Load(fstest.MapFS{"en.json": {Data: []byte(`{`)}}, "en", nil)
	require.ErrorContains(t, err, "unmarshal en")
}

func TestNormalize(t *testing.T) {
	b := loadEmbedded(t)
	require.Equal(t, "ja", b.Normalize("JA-jp"))
	require.Equal(t, "en", b.Normalize("en_US"))
	require.Equal(t, "en", b.Normalize("xx"))
}

func TestLocalesDefineSameKeys(t *testing.T) {
	b := loadEmbedded(t)
	require.Equal(t, b.Keys("en"), b.Keys("ja"))
}
