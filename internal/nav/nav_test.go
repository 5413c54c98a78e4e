package nav

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"knowledgehub.dev/hub-web/internal/icons"
	"knowledgehub.dev/hub-web/internal/routes"
)

func TestMainLinksPointAtRegisteredRoutes(t *testing.T) {
	t.Parallel()

	want := []struct{ href, key, icon string }{
		{"/", "nav.home", icons.House},
		{"/daily-tips", "nav.daily_tips", icons.BookOpen},
		{"/about", "nav.about", icons.User},
		{"/questions", "nav.questions", icons.MessageSquare},
	}
	require.Len(t, Main, len(want))
	for i, it := range Main {
		require.Equal(t, want[i].href, it.Path)
		require.Equal(t, want[i].key, it.LabelKey)
		require.Equal(t, want[i].icon, it.Icon)
		require.True(t, routes.Registered(it.Path), "nav target %s must be a route", it.Path)
		require.True(t, icons.Known(it.Icon))
	}
}

func TestBuildMarksExactActiveItem(t *testing.T) {
	t.Parallel()

	items := Build("/about", strings.ToUpper)
	active := 0
	for _, it := range items {
		if it.Active {
			active++
			require.Equal(t, "/about", it.Href)
		}
		require.Equal(t, strings.ToUpper(it.LabelKey), it.Label)
	}
	require.Equal(t, 1, active)
}

func TestBuildHomeOnlyActiveOnRoot(t *testing.T) {
	t.Parallel()

	for _, it := range Build("/book", nil) {
		require.False(t, it.Active, "no nav item covers /book")
		require.Equal(t, it.LabelKey, it.Label)
	}
	items := Build("", nil)
	require.True(t, items[0].Active)
	require.Equal(t, "/", items[0].Href)
}

func TestBreadcrumbs(t *testing.T) {
	t.Parallel()

	crumbs := Breadcrumbs("/")
	require.Len(t, crumbs, 1)
	require.True(t, crumbs[0].Active)

	crumbs = Breadcrumbs("/daily-tips")
	require.Len(t, crumbs, 2)
	require.False(t, crumbs[0].Active)
	require.Equal(t, "/daily-tips", crumbs[1].Href)
	require.Equal(t, "page.daily_tips.title", crumbs[1].LabelKey)
	require.True(t, crumbs[1].Active)

	crumbs = Breadcrumbs("/some_thing/else")
	require.Len(t, crumbs, 3)
	require.Equal(t, "Some thing", crumbs[1].Label)
	require.Empty(t, crumbs[1].LabelKey)
	require.Equal(t, "/some_thing/else", crumbs[2].Href)
	require.True(t, crumbs[2].Active)
}
