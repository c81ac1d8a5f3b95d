package frame

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
	g "maragu.dev/gomponents"

	"github.com/guichet-labs/guichet/internal/notification"
	"github.com/guichet-labs/guichet/internal/shell"
)

func parse(t *testing.T, n g.Node) *html.Node {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, n.Render(&buf))
	doc, err := html.Parse(&buf)
	require.NoError(t, err)
	return doc
}

func attr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

func byID(root *html.Node, id string) *html.Node {
	if root.Type == html.ElementNode {
		if v, ok := attr(root, "id"); ok && v == id {
			return root
		}
	}
	for c := root.FirstChild; c != nil; c = c.NextSibling {
		if n := byID(c, id); n != nil {
			return n
		}
	}
	return nil
}

func count(root *html.Node, match func(*html.Node) bool) int {
	n := 0
	if root.Type == html.ElementNode && match(root) {
		n++
	}
	for c := root.FirstChild; c != nil; c = c.NextSibling {
		n += count(c, match)
	}
	return n
}

func textOf(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return sb.String()
}

func feed(unread, read int) []notification.Item {
	var items []notification.Item
	for i := 0; i < unread; i++ {
		items = append(items, notification.Item{ID: "u" + string(rune('a'+i)), Message: "non lue", Kind: notification.KindInfo})
	}
	for i := 0; i < read; i++ {
		items = append(items, notification.Item{ID: "r" + string(rune('a'+i)), Message: "lue", Read: true, Kind: notification.KindSuccess})
	}
	return items
}

func desktop() shell.State {
	st := shell.NewState("dashboard")
	st.Resize(1280)
	return st
}

func TestEndpoints(t *testing.T) {
	e := Endpoints("/caissier")
	assert.Equal(t, "/caissier/nav/encaissement", e.Path("nav", "encaissement"))
	assert.Equal(t, "@post('/caissier/sidebar/toggle')", e.Action("sidebar", "toggle"))
	assert.Equal(t, "/caissier/notifications/a%2Fb", e.Path("notifications", "a/b"))
}

func TestUser_Initials(t *testing.T) {
	assert.Equal(t, "AD", User{Name: "awa diallo traore"}.Initials())
	assert.Equal(t, "M", User{Name: "Moussa"}.Initials())
	assert.Equal(t, "?", User{}.Initials())
}

func TestNavbar_UnreadBadge(t *testing.T) {
	tests := []struct {
		name    string
		items   []notification.Item
		ceiling int
		want    string
	}{
		{"none unread", feed(0, 2), 0, ""},
		{"three unread", feed(3, 1), 0, "3"},
		{"at ceiling", feed(9, 0), 0, "9"},
		{"above ceiling", feed(12, 0), 0, "9+"},
		{"custom ceiling", feed(6, 0), 5, "5+"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := parse(t, Navbar(NavbarProps{Base: "/administrateur", Notifications: tt.items, UnreadCeiling: tt.ceiling, State: desktop()}))
			badge := byID(doc, "unread-badge")
			if tt.want == "" {
				assert.Nil(t, badge)
				return
			}
			require.NotNil(t, badge)
			assert.Equal(t, tt.want, textOf(badge))
		})
	}
}

func TestNavbar_NotificationPanel(t *testing.T) {
	t.Run("closed has no panel and no outside handler", func(t *testing.T) {
		doc := parse(t, Navbar(NavbarProps{Base: "/administrateur", Notifications: feed(2, 0), State: desktop()}))
		assert.Nil(t, byID(doc, "notification-panel"))
		menu := byID(doc, "notifications")
		require.NotNil(t, menu)
		_, ok := attr(menu, "data-on:click__outside")
		assert.False(t, ok)
	})

	t.Run("open lists items", func(t *testing.T) {
		st := desktop()
		st.Notifications.Toggle()
		doc := parse(t, Navbar(NavbarProps{Base: "/administrateur", Notifications: feed(2, 1), State: st}))

		menu := byID(doc, "notifications")
		outside, ok := attr(menu, "data-on:click__outside")
		require.True(t, ok)
		assert.Equal(t, "@post('/administrateur/notifications/dismiss')", outside)

		panel := byID(doc, "notification-panel")
		require.NotNil(t, panel)
		assert.Contains(t, textOf(panel), "2 non lues")
		assert.Equal(t, 3, count(panel, func(n *html.Node) bool { _, ok := attr(n, "data-notification"); return ok }))
	})

	t.Run("open and empty", func(t *testing.T) {
		st := desktop()
		st.Notifications.Toggle()
		doc := parse(t, Navbar(NavbarProps{Base: "/administrateur", State: st}))
		panel := byID(doc, "notification-panel")
		require.NotNil(t, panel)
		assert.Contains(t, textOf(panel), EmptyNotifications)
	})

	t.Run("profile stays independent", func(t *testing.T) {
		st := desktop()
		st.Notifications.Toggle()
		st.Profile.Toggle()
		doc := parse(t, Navbar(NavbarProps{Base: "/administrateur", State: st}))
		assert.NotNil(t, byID(doc, "notification-panel"))
		assert.NotNil(t, byID(doc, "profile-logout"))
	})
}

func TestNavbar_GreetingAndGeometry(t *testing.T) {
	st := desktop()
	doc := parse(t, Navbar(NavbarProps{Base: "/administrateur", Greeting: "Bonjour Awa", ShowGreeting: true, State: st}))
	greeting := byID(doc, "greeting")
	require.NotNil(t, greeting)
	assert.Equal(t, "Bonjour Awa", textOf(greeting))

	nav := byID(doc, "navbar")
	style, _ := attr(nav, "style")
	assert.Contains(t, style, "calc(100% - 256px)")

	st.ToggleCollapse()
	doc = parse(t, Navbar(NavbarProps{Base: "/administrateur", Greeting: "Bonjour Awa", State: st}))
	assert.Nil(t, byID(doc, "greeting"))
	style, _ = attr(byID(doc, "navbar"), "style")
	assert.Contains(t, style, "calc(100% - 64px)")

	mobile := shell.NewState("dashboard")
	mobile.Resize(375)
	doc = parse(t, Navbar(NavbarProps{Base: "/administrateur", State: mobile}))
	style, _ = attr(byID(doc, "navbar"), "style")
	assert.Contains(t, style, "width: 100%")
	assert.Equal(t, 1, count(doc, func(n *html.Node) bool {
		v, _ := attr(n, "data-on:click")
		return v == "@post('/administrateur/sidebar/mobile')"
	}))
}

func TestNavbar_ThemeToggle(t *testing.T) {
	doc := parse(t, Navbar(NavbarProps{Base: "/administrateur", State: desktop(), Dark: true}))
	assert.Equal(t, 1, count(doc, func(n *html.Node) bool {
		v, _ := attr(n, "aria-label")
		return v == "Thème clair"
	}))
}

var items = []shell.NavItem{
	{ID: "dashboard", Name: "Tableau de bord", Icon: "home"},
	{ID: "users", Name: "Utilisateurs", Icon: "users"},
}

func TestSidebar_Desktop(t *testing.T) {
	st := desktop()
	st.Select("users")

	doc := parse(t, Sidebar(SidebarProps{Base: "/administrateur", Title: "Administrateur", Items: items, State: st, AccentColor: "#ff0000"}))
	side := byID(doc, "sidebar")
	require.NotNil(t, side)
	style, _ := attr(side, "style")
	assert.Equal(t, "width: 256px", style)
	assert.Contains(t, textOf(side), "Tableau de bord")
	assert.Equal(t, 0, count(doc, func(n *html.Node) bool { v, _ := attr(n, "role"); return v == "tooltip" }))

	active := 0
	count(doc, func(n *html.Node) bool {
		if v, ok := attr(n, "aria-current"); ok && v == "page" {
			id, _ := attr(n, "data-item")
			assert.Equal(t, "users", id)
			s, _ := attr(n, "style")
			assert.Contains(t, s, "#ff0000")
			active++
		}
		return false
	})
	assert.Equal(t, 1, active)
}

func TestSidebar_CollapsedShowsTooltips(t *testing.T) {
	st := desktop()
	st.ToggleCollapse()
	doc := parse(t, Sidebar(SidebarProps{Base: "/administrateur", Items: items, State: st}))
	style, _ := attr(byID(doc, "sidebar"), "style")
	assert.Equal(t, "width: 64px", style)
	assert.Equal(t, 2, count(doc, func(n *html.Node) bool { v, _ := attr(n, "role"); return v == "tooltip" }))
}

func TestSidebar_Mobile(t *testing.T) {
	st := shell.NewState("dashboard")
	st.Resize(500)
	st.ToggleCollapse()

	doc := parse(t, Sidebar(SidebarProps{Base: "/caissier", Items: items, State: st}))
	side := byID(doc, "sidebar")
	require.NotNil(t, side)
	class, _ := attr(side, "class")
	assert.Equal(t, "hidden", class)

	st.MobileSidebar.Toggle()
	doc = parse(t, Sidebar(SidebarProps{Base: "/caissier", Items: items, State: st}))
	assert.NotNil(t, byID(doc, "sidebar-backdrop"))
	style, _ := attr(byID(doc, "sidebar"), "style")
	assert.Equal(t, "width: 256px", style, "mobile overlay is always expanded")
	assert.Equal(t, 0, count(doc, func(n *html.Node) bool { v, _ := attr(n, "role"); return v == "tooltip" }))
}
