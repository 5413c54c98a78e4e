package handlers

import (
	"errors"
	"fmt"
	"net/url"

	"knowledgehub.dev/hub-web/internal/cms"
	"knowledgehub.dev/hub-web/internal/config"
	"knowledgehub.dev/hub-web/internal/format"
	"knowledgehub.dev/hub-web/internal/i18n"
	"knowledgehub.dev/hub-web/internal/icons"
	"knowledgehub.dev/hub-web/internal/nav"
	"knowledgehub.dev/hub-web/internal/routes"
	"knowledgehub.dev/hub-web/internal/seo"
)

// Options configures a Builder.
type Options struct {
	BaseURL   string
	Analytics config.Analytics
}

// Builder assembles PageData for any route.
type Builder struct {
	bundle    *i18n.Bundle
	content   ContentSource
	baseURL   string
	analytics config.Analytics
}

// NewBuilder returns a Builder reading labels from bundle and copy from content.
func NewBuilder(bundle *i18n.Bundle, content ContentSource, opts Options) *Builder {
	return &Builder{
		bundle:    bundle,
		content:   content,
		baseURL:   opts.BaseURL,
		analytics: opts.Analytics,
	}
}

// Build returns the view model for rt. path is the request path; it only
// differs from rt.Path for the not-found page.
func (b *Builder) Build(rt routes.Route, path, lang string) (PageData, error) {
	lang = b.bundle.Normalize(lang)
	t := b.bundle.Translator(lang)
	if rt.Page != routes.PageNotFound {
		path = rt.Path
	}

	page, err := b.copyFor(rt, lang, t)
	if err != nil {
		return PageData{}, err
	}

	d := PageData{
		Page:      rt.Page,
		Path:      path,
		Lang:      lang,
		SiteName:  t("site.name"),
		Title:     t(rt.TitleKey),
		Analytics: b.analytics,
		Nav:       nav.Build(path, t),
		Languages: b.languages(rt, lang),
		translate: t,

		Updated:    format.Date(page.UpdatedAt, lang),
		UpdatedISO: format.ISODate(page.UpdatedAt),
	}

	switch rt.Page {
	case routes.PageHome:
		d.Heading = t("page.home.heading")
		d.Home = homeView(t, page)
	case routes.PageDailyTips:
		d.Heading = t("page.daily_tips.heading")
		d.Body = page.Body
	case routes.PageAbout:
		d.Heading = t("page.about.heading")
		d.Body = page.Body
	case routes.PageBook:
		d.Heading = t("page.book.heading")
		d.Book = &BookView{
			PreorderHeading: t("page.book.preorder_heading"),
			PreorderBody:    page.Block("preorder"),
			PreorderCTA:     t("page.book.preorder_cta"),
			LearnHeading:    t("page.book.learn_heading"),
			LearnBody:       page.Block("learn"),
		}
	case routes.PageQuestions:
		d.Heading = t("page.questions.heading")
		d.HeadingIcon = icons.MessageSquare
		d.Questions = &QuestionsView{
			AskHeading: t("page.questions.ask_heading"),
			AskBody:    page.Block("ask"),
			ListBody:   page.Block("list"),
		}
	case routes.PageAdmin:
		d.Heading = t("page.admin.heading")
		d.HeadingIcon = icons.Settings
		d.Admin = &AdminView{Panels: []Panel{
			{Heading: t("page.admin.tips_heading"), Body: page.Block("tips")},
			{Heading: t("page.admin.questions_heading"), Body: page.Block("questions")},
		}}
	case routes.PageNotFound:
		d.Heading = t("page.not_found.heading")
		d.HeadingIcon = icons.CircleAlert
		d.Body = page.Body
		d.NotFound = &NotFoundView{HomeLabel: t("page.not_found.home"), HomeHref: hrefFor(routes.PageHome)}
	default:
		return PageData{}, fmt.Errorf("handlers: no builder for page %q", rt.Page)
	}

	seoTitle := d.Title
	if rt.Page == routes.PageHome {
		// the home title is the site name alone
		seoTitle = d.SiteName
	}
	d.SEO = seo.Build(b.baseURL, seo.Page{
		SiteName:    d.SiteName,
		Title:       seoTitle,
		Description: page.Description,
		Path:        path,
		Lang:        lang,
		NoIndex:     rt.NoIndex,
	}, b.bundle.Supported())
	d.JSONLD = b.jsonLD(rt, d, page, t)
	return d, nil
}

// copyFor loads the page copy, degrading to an empty page titled from the
// route when no file exists in any language.
func (b *Builder) copyFor(rt routes.Route, lang string, t func(string) string) (cms.ContentPage, error) {
	page, err := b.content.Get(string(rt.Page), lang)
	if errors.Is(err, cms.ErrNotFound) {
		return cms.ContentPage{Slug: string(rt.Page), Lang: lang, Title: t(rt.TitleKey)}, nil
	}
	if err != nil {
		return cms.ContentPage{}, fmt.Errorf("handlers: copy for %s: %w", rt.Page, err)
	}
	return page, nil
}

func homeView(t func(string) string, page cms.ContentPage) *HomeView {
	return &HomeView{
		Intro:      page.Block("intro"),
		CardsLabel: t("page.home.cards_label"),
		Cards: []Card{
			{Icon: icons.BookOpen, Title: t("card.tips.title"), Description: t("card.tips.description"), Href: hrefFor(routes.PageDailyTips)},
			{Icon: icons.Trophy, Title: t("card.about.title"), Description: t("card.about.description"), Href: hrefFor(routes.PageAbout)},
			{Icon: icons.MessageSquare, Title: t("card.questions.title"), Description: t("card.questions.description"), Href: hrefFor(routes.PageQuestions)},
		},
		Promo: Promo{
			Heading:  t("promo.heading"),
			Body:     page.Block("promo"),
			CTALabel: t("promo.cta"),
			CTAHref:  hrefFor(routes.PageBook),
		},
	}
}

// hrefFor returns the registered path of page, or "/" for unregistered pages.
func hrefFor(page routes.Page) string {
	if rt, ok := routes.ForPage(page); ok {
		return rt.Path
	}
	return "/"
}

func (b *Builder) languages(rt routes.Route, lang string) []LangOption {
	target := rt.Path
	if rt.Page == routes.PageNotFound {
		target = "/"
	}
	supported := b.bundle.Supported()
	out := make([]LangOption, 0, len(supported))
	for _, code := range supported {
		out = append(out, LangOption{
			Code:   code,
			Href:   target + "?hl=" + url.QueryEscape(code),
			Active: code == lang,
		})
	}
	return out
}

func (b *Builder) jsonLD(rt routes.Route, d PageData, page cms.ContentPage, t func(string) string) []string {
	if rt.NoIndex {
		return nil
	}
	home := seo.Absolute(b.baseURL, "/")
	var out []string
	if rt.Page == routes.PageHome {
		out = append(out,
			seo.JSON(seo.Organization(d.SiteName, home, "")),
			seo.JSON(seo.WebSite(d.SiteName, home, d.Lang)),
		)
	}
	crumbs := nav.Breadcrumbs(rt.Path)
	items := make([]seo.BreadcrumbItem, 0, len(crumbs))
	for _, c := range crumbs {
		name := c.Label
		if c.LabelKey != "" {
			name = t(c.LabelKey)
		}
		items = append(items, seo.BreadcrumbItem{Name: name, Item: seo.Absolute(b.baseURL, c.Href)})
	}
	out = append(out, seo.JSON(seo.BreadcrumbList(items)))
	if rt.Page == routes.PageBook {
		out = append(out, seo.JSON(seo.Book(page.Title, page.Description, seo.Absolute(b.baseURL, rt.Path), "", d.Lang)))
	}
	return out
}
