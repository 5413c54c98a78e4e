package icons

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSpriteContainsEverySymbol(t *testing.T) {
	sprite := string(Sprite())
	for _, name := range Names() {
		require.Contains(t, sprite, `id="lucide-`+name+`"`)
	}
	require.Equal(t, len(Names()), strings.Count(sprite, "<symbol "))
}

func TestSVGReferencesSymbol(t *testing.T) {
	got := string(SVG(BookOpen, "w-5 h-5"))
	require.Contains(t, got, `<use href="#lucide-book-open">`)
	require.Contains(t, got, `class="icon w-5 h-5"`)
	require.Contains(t, got, `data-icon="book-open"`)
}

func TestSVGUnknownFallsBackToDefault(t *testing.T) {
	got := string(SVG("does-not-exist", ""))
	require.Contains(t, got, `#lucide-`+Default)
	require.Contains(t, got, `class="icon"`)
	require.False(t, Known("does-not-exist"))
}

func TestSVGEscapesClass(t *testing.T) {
	got := string(SVG(User, `x" onload="alert(1)`))
	require.NotContains(t, got, `" onload="`)
}
