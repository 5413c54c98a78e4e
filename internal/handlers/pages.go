// Package handlers builds the view models the page templates render.
//
// Builders are pure: given a route and a language they read localized labels
// and embedded copy and never touch the request.
package handlers

import (
	"html/template"

	"knowledgehub.dev/hub-web/internal/cms"
	"knowledgehub.dev/hub-web/internal/config"
	"knowledgehub.dev/hub-web/internal/nav"
	"knowledgehub.dev/hub-web/internal/routes"
	"knowledgehub.dev/hub-web/internal/seo"
)

// PageData is the view model for every page using the shared layout.
type PageData struct {
	Page     routes.Page
	Path     string
	Lang     string
	SiteName string
	Title    string
	Heading  string
	// HeadingIcon is drawn next to the heading when set.
	HeadingIcon string

	SEO    seo.Meta
	JSONLD []string

	Analytics config.Analytics

	Nav       []nav.RenderedItem
	Languages []LangOption

	// Body is the main copy for pages without structured blocks.
	Body template.HTML
	// Updated is the localized date the copy last changed; UpdatedISO the same for <time>.
	Updated    string
	UpdatedISO string

	// Per-page payloads; only the one matching Page is set.
	Home      *HomeView
	Book      *BookView
	Questions *QuestionsView
	Admin     *AdminView
	NotFound  *NotFoundView

	// Fragment is set by the server when only the page container is sent.
	Fragment bool

	translate func(string) string
}

// T translates key in the page language.
func (d PageData) T(key string) string {
	if d.translate == nil {
		return key
	}
	return d.translate(key)
}

// LangOption is one entry of the language switcher.
type LangOption struct {
	Code   string
	Href   string
	Active bool
}

// Card summarizes a link target with an icon, title and description.
type Card struct {
	Icon        string
	Title       string
	Description string
	Href        string
}

// HomeView is the home page payload.
type HomeView struct {
	Intro      template.HTML
	CardsLabel string
	Cards      []Card
	Promo      Promo
}

// Promo is the book call to action on the home page.
type Promo struct {
	Heading  string
	Body     template.HTML
	CTALabel string
	CTAHref  string
}

// BookView is the book page payload. The pre-order button is inert.
type BookView struct {
	PreorderHeading string
	PreorderBody    template.HTML
	PreorderCTA     string
	LearnHeading    string
	LearnBody       template.HTML
}

// QuestionsView is the Q&A page payload.
type QuestionsView struct {
	AskHeading string
	AskBody    template.HTML
	ListBody   template.HTML
}

// Panel is a titled placeholder box.
type Panel struct {
	Heading string
	Body    template.HTML
}

// AdminView is the admin dashboard payload.
type AdminView struct {
	Panels []Panel
}

// NotFoundView is the payload of the page shown for unregistered paths.
type NotFoundView struct {
	HomeLabel string
	HomeHref  string
}

// ContentSource supplies page copy; *cms.Library satisfies it.
type ContentSource interface {
	Get(slug, lang string) (cms.ContentPage, error)
}
