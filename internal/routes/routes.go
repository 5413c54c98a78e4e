// Package routes holds the static table of site routes.
//
// Every page on the site is registered here exactly once. Matching is plain
// string equality: there are no path parameters, patterns, guards or
// redirects, so "/about/" is not the same route as "/about".
package routes

// Page identifies a page renderer.
type Page string

const (
	PageHome      Page = "home"
	PageDailyTips Page = "daily-tips"
	PageAbout     Page = "about"
	PageBook      Page = "book"
	PageQuestions Page = "questions"
	PageAdmin     Page = "admin"

	// PageNotFound is rendered for any path missing from the table.
	PageNotFound Page = "not-found"
)

// Route binds a path to the page rendered for it.
type Route struct {
	Path string
	Page Page
	// TitleKey is the i18n key of the page title used in <title> and crumbs.
	TitleKey string
	// NoIndex asks crawlers to skip the page.
	NoIndex bool
}

var table = []Route{
	{Path: "/", Page: PageHome, TitleKey: "page.home.title"},
	{Path: "/daily-tips", Page: PageDailyTips, TitleKey: "page.daily_tips.title"},
	{Path: "/about", Page: PageAbout, TitleKey: "page.about.title"},
	{Path: "/book", Page: PageBook, TitleKey: "page.book.title"},
	{Path: "/questions", Page: PageQuestions, TitleKey: "page.questions.title"},
	{Path: "/admin", Page: PageAdmin, TitleKey: "page.admin.title", NoIndex: true},
}

// NotFound describes the fallback page for unregistered paths.
var NotFound = Route{Page: PageNotFound, TitleKey: "page.not_found.title", NoIndex: true}

// All returns the registered routes in registration order.
func All() []Route {
	out := make([]Route, len(table))
	copy(out, table)
	return out
}

// Paths returns the registered path strings in registration order.
func Paths() []string {
	out := make([]string, 0, len(table))
	for _, rt := range table {
		out = append(out, rt.Path)
	}
	return out
}

// Lookup returns the route whose path equals p exactly.
func Lookup(p string) (Route, bool) {
	for _, rt := range table {
		if rt.Path == p {
			return rt, true
		}
	}
	return Route{}, false
}

// Registered reports whether p is a registered route path.
func Registered(p string) bool {
	_, ok := Lookup(p)
	return ok
}

// ForPage returns the route registered for page.
func ForPage(page Page) (Route, bool) {
	for _, rt := range table {
		if rt.Page == page {
			return rt, true
		}
	}
	return Route{}, false
}
