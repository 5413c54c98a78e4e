package cms

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"path"
	"strings"
	"sync"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"gopkg.in/yaml.v3"
)

// ErrNotFound is returned when no copy exists for a slug in any language.
var ErrNotFound = errors.New("cms: not found")

// ContentPage is the localized copy for one page.
type ContentPage struct {
	Slug        string
	Lang        string
	Title       string
	Description string
	Body        template.HTML
	Blocks      map[string]template.HTML
	UpdatedAt   time.Time
}

// Block returns the named block, or an empty string when absent.
func (p ContentPage) Block(name string) template.HTML {
	return p.Blocks[name]
}

type contentFrontMatter struct {
	Title       string            `yaml:"title"`
	Description string            `yaml:"description"`
	UpdatedAt   string            `yaml:"updated_at"`
	Blocks      map[string]string `yaml:"blocks"`
}

const defaultCacheTTL = 5 * time.Minute

// Library reads page copy from <lang>/<slug>.md files.
type Library struct {
	fsys     fs.FS
	fallback string
	ttl      time.Duration
	md       goldmark.Markdown
	policy   *bluemonday.Policy

	mu    sync.RWMutex
	items map[string]contentCacheEntry
}

type contentCacheEntry struct {
	page    ContentPage
	expires time.Time
}

// Option customises a Library.
type Option func(*Library)

// WithCacheTTL overrides the cache duration. A non-positive duration disables
// caching, which dev mode uses so edits on disk show up immediately.
func WithCacheTTL(d time.Duration) Option {
	return func(l *Library) { l.ttl = d }
}

// NewLibrary builds a Library over fsys. fallback is the language consulted
// when a page has no copy in the requested one.
func NewLibrary(fsys fs.FS, fallback string, opts ...Option) *Library {
	l := &Library{
		fsys:     fsys,
		fallback: strings.TrimSpace(fallback),
		ttl:      defaultCacheTTL,
		md:       goldmark.New(goldmark.WithExtensions(extension.Linkify)),
		policy:   bluemonday.UGCPolicy(),
		items:    map[string]contentCacheEntry{},
	}
	if l.fallback == "" {
		l.fallback = "en"
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Get returns copy for slug in lang, falling back to the default language.
func (l *Library) Get(slug, lang string) (ContentPage, error) {
	slug = sanitizeSlug(slug)
	if slug == "" {
		return ContentPage{}, ErrNotFound
	}
	lang = strings.ToLower(strings.TrimSpace(lang))
	if lang == "" {
		lang = l.fallback
	}

	cacheKey := lang + "|" + slug
	if page, ok := l.cached(cacheKey); ok {
		return page, nil
	}

	priority := []string{lang}
	if lang != l.fallback {
		priority = append(priority, l.fallback)
	}
	for _, candidate := range priority {
		page, err := l.read(slug, candidate)
		if err == nil {
			l.store(cacheKey, page)
			return clonePage(page), nil
		}
		if errors.Is(err, ErrNotFound) {
			continue
		}
		// For other errors (parse issues), stop early.
		return ContentPage{}, err
	}
	return ContentPage{}, ErrNotFound
}

func (l *Library) read(slug, lang string) (ContentPage, error) {
	file := path.Join(lang, slug+".md")
	data, err := fs.ReadFile(l.fsys, file)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return ContentPage{}, ErrNotFound
		}
		return ContentPage{}, fmt.Errorf("cms: read %s: %w", file, err)
	}
	fm, body := splitFrontMatter(string(data))
	front := contentFrontMatter{}
	if strings.TrimSpace(fm) != "" {
		if err := yaml.Unmarshal([]byte(fm), &front); err != nil {
			return ContentPage{}, fmt.Errorf("cms: parse front matter %s: %w", file, err)
		}
	}

	page := ContentPage{
		Slug:        slug,
		Lang:        lang,
		Title:       strings.TrimSpace(front.Title),
		Description: strings.TrimSpace(front.Description),
		UpdatedAt:   parseContentDate(front.UpdatedAt),
	}
	if strings.TrimSpace(body) != "" {
		html, err := l.render(body)
		if err != nil {
			return ContentPage{}, fmt.Errorf("cms: render %s: %w", file, err)
		}
		page.Body = html
	}
	if len(front.Blocks) > 0 {
		page.Blocks = make(map[string]template.HTML, len(front.Blocks))
		for name, src := range front.Blocks {
			html, err := l.render(src)
			if err != nil {
				return ContentPage{}, fmt.Errorf("cms: render %s block %s: %w", file, name, err)
			}
			page.Blocks[name] = html
		}
	}
	if page.Title == "" {
		// fall back to slug prettified
		page.Title = prettifySlug(slug)
	}
	if page.Description == "" {
		page.Description = Summary(string(page.Body), 160)
	}
	return page, nil
}

func (l *Library) render(src string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := l.md.Convert([]byte(src), &buf); err != nil {
		return "", err
	}
	return template.HTML(l.policy.SanitizeBytes(buf.Bytes())), nil
}

func (l *Library) cached(key string) (ContentPage, bool) {
	if l.ttl <= 0 {
		return ContentPage{}, false
	}
	now := time.Now()
	l.mu.RLock()
	entry, ok := l.items[key]
	l.mu.RUnlock()
	if !ok || now.After(entry.expires) {
		return ContentPage{}, false
	}
	return clonePage(entry.page), true
}

func (l *Library) store(key string, page ContentPage) {
	if l.ttl <= 0 {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.items[key] = contentCacheEntry{
		page:    clonePage(page),
		expires: time.Now().Add(l.ttl),
	}
}

func clonePage(src ContentPage) ContentPage {
	cp := src
	if src.Blocks != nil {
		cp.Blocks = make(map[string]template.HTML, len(src.Blocks))
		for k, v := range src.Blocks {
			cp.Blocks[k] = v
		}
	}
	return cp
}

func splitFrontMatter(input string) (string, string) {
	input = strings.TrimLeft(input, "\ufeff")
	lines := strings.Split(input, "\n")
	if strings.TrimSpace(lines[0]) != "---" {
		return "", input
	}
	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == "---" {
			fm := strings.Join(lines[1:i], "\n")
			body := strings.Join(lines[i+1:], "\n")
			return fm, strings.TrimLeft(body, "\n\r")
		}
	}
	return "", input
}

func parseContentDate(v string) time.Time {
	v = strings.TrimSpace(v)
	if v == "" {
		return time.Time{}
	}
	layouts := []string{
		time.RFC3339,
		"2006-01-02",
		"2006/01/02",
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, v); err == nil {
			return t
		}
	}
	return time.Time{}
}

func prettifySlug(slug string) string {
	parts := strings.Split(slug, "-")
	for i, part := range parts {
		if part == "" {
			continue
		}
		runes := []rune(part)
		if runes[0] >= 'a' && runes[0] <= 'z' {
			runes[0] -= 'a' - 'A'
		}
		parts[i] = string(runes)
	}
	return strings.Join(parts, " ")
}

func sanitizeSlug(slug string) string {
	slug = strings.TrimSpace(strings.ToLower(slug))
	slug = strings.Trim(slug, "/")
	if slug == "" || strings.Contains(slug, "..") || strings.ContainsAny(slug, `/\`) {
		return ""
	}
	return slug
}
