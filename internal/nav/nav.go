package nav

import (
	"path"
	"strings"

	"knowledgehub.dev/hub-web/internal/icons"
	"knowledgehub.dev/hub-web/internal/routes"
)

// Item represents a top-level navigation item.
type Item struct {
	Path     string // e.g. "/about"
	LabelKey string // i18n key, e.g. "nav.about"
	Icon     string // icon name, e.g. icons.User
}

// RenderedItem is a view model for templates.
type RenderedItem struct {
	Href     string
	LabelKey string
	Label    string
	Icon     string
	Active   bool
}

// Crumb represents a breadcrumb entry. If LabelKey is empty, use Label.
type Crumb struct {
	Href     string
	LabelKey string
	Label    string
	Active   bool
}

// Main is the primary navigation definition.
var Main = []Item{
	{Path: "/", LabelKey: "nav.home", Icon: icons.House},
	{Path: "/daily-tips", LabelKey: "nav.daily_tips", Icon: icons.BookOpen},
	{Path: "/about", LabelKey: "nav.about", Icon: icons.User},
	{Path: "/questions", LabelKey: "nav.questions", Icon: icons.MessageSquare},
}

// Build renders navigation items with active state given the current path.
// translate resolves label keys; a nil translate leaves Label set to the key.
func Build(currentPath string, translate func(key string) string) []RenderedItem {
	if currentPath == "" {
		currentPath = "/"
	}
	items := make([]RenderedItem, 0, len(Main))
	for _, it := range Main {
		label := it.LabelKey
		if translate != nil {
			label = translate(it.LabelKey)
		}
		items = append(items, RenderedItem{
			Href:     it.Path,
			LabelKey: it.LabelKey,
			Label:    label,
			Icon:     it.Icon,
			Active:   currentPath == it.Path,
		})
	}
	return items
}

// Breadcrumbs builds breadcrumb entries from the current path.
// Rules:
// - Always start with Home
// - Registered pages use their route title key
// - Anything else gets a prettified segment label
func Breadcrumbs(currentPath string) []Crumb {
	if currentPath == "" {
		currentPath = "/"
	}
	crumbs := []Crumb{{Href: "/", LabelKey: "nav.home", Active: currentPath == "/"}}
	if currentPath == "/" {
		return crumbs
	}

	clean := path.Clean(currentPath)
	parts := strings.Split(strings.TrimPrefix(clean, "/"), "/")
	href := ""
	for i, part := range parts {
		if part == "" {
			continue
		}
		href = href + "/" + part
		crumb := Crumb{Href: href, Label: titleFromSegment(part), Active: i == len(parts)-1}
		if rt, ok := routes.Lookup(href); ok {
			crumb.LabelKey = rt.TitleKey
		}
		crumbs = append(crumbs, crumb)
	}
	return crumbs
}

func titleFromSegment(seg string) string {
	if seg == "" {
		return seg
	}
	// replace hyphens/underscores with spaces and capitalize first letter
	s := strings.ReplaceAll(seg, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")
	r := []rune(s)
	r[0] = toUpper(r[0])
	return string(r)
}

func toUpper(r rune) rune {
	// ASCII only is sufficient for slugs here
	if r >= 'a' && r <= 'z' {
		return r - ('a' - 'A')
	}
	return r
}
