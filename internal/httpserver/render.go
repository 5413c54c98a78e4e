package httpserver

import (
	"bytes"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"sync"
	"time"

	"knowledgehub.dev/hub-web/internal/handlers"
	"knowledgehub.dev/hub-web/internal/icons"
	"knowledgehub.dev/hub-web/internal/routes"
)

// pageFiles maps each page to the template file defining its "content".
var pageFiles = map[routes.Page]string{
	routes.PageHome:      "pages/home.tmpl",
	routes.PageDailyTips: "pages/simple.tmpl",
	routes.PageAbout:     "pages/simple.tmpl",
	routes.PageBook:      "pages/book.tmpl",
	routes.PageQuestions: "pages/questions.tmpl",
	routes.PageAdmin:     "pages/admin.tmpl",
	routes.PageNotFound:  "pages/not-found.tmpl",
}

// Renderer executes page templates. Every page gets its own template set
// cloned from the layout so each can define "content".
type Renderer struct {
	fsys fs.FS
	dev  bool

	mu   sync.Mutex
	sets map[routes.Page]*template.Template
}

// NewRenderer parses the templates in fsys. In dev mode templates are
// reparsed on each render.
func NewRenderer(fsys fs.FS, dev bool) (*Renderer, error) {
	sets, err := parseTemplates(fsys)
	if err != nil {
		return nil, err
	}
	return &Renderer{fsys: fsys, dev: dev, sets: sets}, nil
}

func funcMap() template.FuncMap {
	return template.FuncMap{
		"now":        time.Now,
		"icon":       icons.SVG,
		"iconSprite": icons.Sprite,
		// values come from seo.JSON, which escapes markup characters
		"jsonld": func(s string) template.JS { return template.JS(s) },
	}
}

func parseTemplates(fsys fs.FS) (map[routes.Page]*template.Template, error) {
	base, err := template.New("_root").Funcs(funcMap()).ParseFS(fsys, "layout.tmpl", "partials/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parse layout: %w", err)
	}
	sets := make(map[routes.Page]*template.Template, len(pageFiles))
	for page, file := range pageFiles {
		set, err := base.Clone()
		if err != nil {
			return nil, fmt.Errorf("clone layout for %s: %w", page, err)
		}
		if _, err := set.ParseFS(fsys, file); err != nil {
			return nil, fmt.Errorf("parse %s: %w", file, err)
		}
		if set.Lookup("content") == nil {
			return nil, fmt.Errorf("parse %s: no content template", file)
		}
		sets[page] = set
	}
	return sets, nil
}

func (r *Renderer) lookup(page routes.Page) (*template.Template, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.dev {
		sets, err := parseTemplates(r.fsys)
		if err != nil {
			return nil, err
		}
		r.sets = sets
	}
	t, ok := r.sets[page]
	if !ok {
		return nil, fmt.Errorf("no template for page %q", page)
	}
	return t, nil
}

// Render writes data with the given status. The output is buffered so a
// failed execution never leaves a partial page on the wire.
func (r *Renderer) Render(w http.ResponseWriter, page routes.Page, data handlers.PageData, status int) error {
	t, err := r.lookup(page)
	if err != nil {
		return err
	}
	name := "base"
	if data.Fragment {
		name = "fragment"
	}
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, name, data); err != nil {
		return fmt.Errorf("template exec %s: %w", page, err)
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	// a failed write means the client went away
	_, _ = buf.WriteTo(w)
	return nil
}
