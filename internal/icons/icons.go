// Package icons renders the Lucide glyphs used across the site.
//
// Glyphs are shipped as one inline SVG sprite placed at the top of the
// document body; individual icons reference sprite symbols with <use>, so a
// page carries each path definition only once.
package icons

import (
	"html/template"
	"sort"
	"strings"
)

// Icon names used by the site. Values are Lucide icon names.
const (
	Brain         = "brain"
	House         = "house"
	BookOpen      = "book-open"
	User          = "user"
	MessageSquare = "message-square"
	Trophy        = "trophy"
	ArrowRight    = "arrow-right"
	Settings      = "settings"
	CircleAlert   = "circle-alert"
)

// Default is rendered when an unknown icon name is requested.
const Default = CircleAlert

const symbolPrefix = "lucide-"

var paths = map[string]string{
	Brain: `<path d="M12 5a3 3 0 1 0-5.997.125 4 4 0 0 0-2.526 5.77 4 4 0 0 0 .556 6.588A4 4 0 1 0 12 18Z"/>` +
		`<path d="M12 5a3 3 0 1 1 5.997.125 4 4 0 0 1 2.526 5.77 4 4 0 0 1-.556 6.588A4 4 0 1 1 12 18Z"/>` +
		`<path d="M15 13a4.5 4.5 0 0 1-3-4 4.5 4.5 0 0 1-3 4"/>`,
	House: `<path d="M15 21v-8a1 1 0 0 0-1-1h-4a1 1 0 0 0-1 1v8"/>` +
		`<path d="M3 10a2 2 0 0 1 .709-1.528l7-5.999a2 2 0 0 1 2.582 0l7 5.999A2 2 0 0 1 21 10v9a2 2 0 0 1-2 2H5a2 2 0 0 1-2-2z"/>`,
	BookOpen: `<path d="M12 7v14"/>` +
		`<path d="M3 18a1 1 0 0 1-1-1V4a1 1 0 0 1 1-1h5a4 4 0 0 1 4 4 4 4 0 0 1 4-4h5a1 1 0 0 1 1 1v13a1 1 0 0 1-1 1h-6a3 3 0 0 0-3 3 3 3 0 0 0-3-3z"/>`,
	User: `<path d="M19 21v-2a4 4 0 0 0-4-4H9a4 4 0 0 0-4 4v2"/>` +
		`<circle cx="12" cy="7" r="4"/>`,
	MessageSquare: `<path d="M21 15a2 2 0 0 1-2 2H7l-4 4V5a2 2 0 0 1 2-2h14a2 2 0 0 1 2 2z"/>`,
	Trophy: `<path d="M6 9H4.5a2.5 2.5 0 0 1 0-5H6"/>` +
		`<path d="M18 9h1.5a2.5 2.5 0 0 0 0-5H18"/>` +
		`<path d="M4 22h16"/>` +
		`<path d="M10 14.66V17c0 .55-.47.98-.97 1.21C7.85 18.75 7 20.24 7 22"/>` +
		`<path d="M14 14.66V17c0 .55.47.98.97 1.21C16.15 18.75 17 20.24 17 22"/>` +
		`<path d="M18 2H6v7a6 6 0 0 0 12 0V2Z"/>`,
	ArrowRight: `<path d="M5 12h14"/>` +
		`<path d="m12 5 7 7-7 7"/>`,
	Settings: `<path d="M12.22 2h-.44a2 2 0 0 0-2 2v.18a2 2 0 0 1-1 1.73l-.43.25a2 2 0 0 1-2 0l-.15-.08a2 2 0 0 0-2.73.73l-.22.38a2 2 0 0 0 .73 2.73l.15.1a2 2 0 0 1 1 1.72v.51a2 2 0 0 1-1 1.74l-.15.09a2 2 0 0 0-.73 2.73l.22.38a2 2 0 0 0 2.73.73l.15-.08a2 2 0 0 1 2 0l.43.25a2 2 0 0 1 1 1.73V20a2 2 0 0 0 2 2h.44a2 2 0 0 0 2-2v-.18a2 2 0 0 1 1-1.73l.43-.25a2 2 0 0 1 2 0l.15.08a2 2 0 0 0 2.73-.73l.22-.39a2 2 0 0 0-.73-2.73l-.15-.08a2 2 0 0 1-1-1.74v-.5a2 2 0 0 1 1-1.74l.15-.09a2 2 0 0 0 .73-2.73l-.22-.38a2 2 0 0 0-2.73-.73l-.15.08a2 2 0 0 1-2 0l-.43-.25a2 2 0 0 1-1-1.73V4a2 2 0 0 0-2-2z"/>` +
		`<circle cx="12" cy="12" r="3"/>`,
	CircleAlert: `<circle cx="12" cy="12" r="10"/>` +
		`<line x1="12" x2="12" y1="8" y2="12"/>` +
		`<line x1="12" x2="12.01" y1="16" y2="16"/>`,
}

var sprite = buildSprite()

// Names returns the known icon names, sorted.
func Names() []string {
	out := make([]string, 0, len(paths))
	for name := range paths {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Known reports whether name is part of the sprite.
func Known(name string) bool {
	_, ok := paths[name]
	return ok
}

// SymbolID returns the sprite symbol id for an icon name.
func SymbolID(name string) string {
	if !Known(name) {
		name = Default
	}
	return symbolPrefix + name
}

// SVG returns markup referencing the sprite symbol for name.
func SVG(name, class string) template.HTML {
	var b strings.Builder
	b.WriteString(`<svg class="icon`)
	if class = strings.TrimSpace(class); class != "" {
		b.WriteByte(' ')
		b.WriteString(template.HTMLEscapeString(class))
	}
	b.WriteString(`" aria-hidden="true" focusable="false" data-icon="`)
	b.WriteString(template.HTMLEscapeString(iconName(name)))
	b.WriteString(`"><use href="#`)
	b.WriteString(SymbolID(name))
	b.WriteString(`"></use></svg>`)
	return template.HTML(b.String())
}

// Sprite returns the hidden SVG sprite containing every known icon.
func Sprite() template.HTML {
	return sprite
}

func iconName(name string) string {
	if Known(name) {
		return name
	}
	return Default
}

func buildSprite() template.HTML {
	var b strings.Builder
	b.WriteString(`<svg xmlns="http://www.w3.org/2000/svg" style="display:none" aria-hidden="true">`)
	for _, name := range Names() {
		b.WriteString(`<symbol id="`)
		b.WriteString(symbolPrefix + name)
		b.WriteString(`" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2" stroke-linecap="round" stroke-linejoin="round">`)
		b.WriteString(paths[name])
		b.WriteString(`</symbol>`)
	}
	b.WriteString(`</svg>`)
	return template.HTML(b.String())
}
