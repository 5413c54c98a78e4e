package cms

import (
	"io"
	"strings"

	"golang.org/x/net/html"
)

// Summary extracts the visible text of an HTML fragment, collapses
// whitespace, and truncates it to at most limit runes on a word boundary.
// Used for meta descriptions when front matter does not provide one.
func Summary(fragment string, limit int) string {
	z := html.NewTokenizer(strings.NewReader(fragment))
	var b strings.Builder
	skip := 0
	for {
		tt := z.Next()
		switch tt {
		case html.ErrorToken:
			if z.Err() != io.EOF {
				return ""
			}
			return truncateWords(strings.Join(strings.Fields(b.String()), " "), limit)
		case html.StartTagToken:
			if name, _ := z.TagName(); isHiddenTag(string(name)) {
				skip++
			}
		case html.EndTagToken:
			if name, _ := z.TagName(); isHiddenTag(string(name)) && skip > 0 {
				skip--
			}
			// block ends separate words
			b.WriteByte(' ')
		case html.TextToken:
			if skip == 0 {
				b.Write(z.Text())
			}
		}
	}
}

func isHiddenTag(name string) bool {
	switch name {
	case "script", "style", "template":
		return true
	}
	return false
}

func truncateWords(s string, limit int) string {
	if limit <= 0 {
		return s
	}
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	cut := string(r[:limit])
	if i := strings.LastIndexByte(cut, ' '); i > 0 {
		cut = cut[:i]
	}
	return strings.TrimRight(cut, " ,.;:") + "…"
}
