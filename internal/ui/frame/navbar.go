// Package frame renders the chrome shared by every layout shell: the top
// navigation bar and the side navigation.
package frame

import (
	"net/url"
	"strconv"
	"strings"

	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"

	"github.com/guichet-labs/guichet/internal/notification"
	"github.com/guichet-labs/guichet/internal/shell"
	"github.com/guichet-labs/guichet/internal/ui/widgets"
)

// EmptyNotifications is shown when the feed has no items.
const EmptyNotifications = "Aucune notification"

// Endpoints is the base path of a shell. Action paths are built under it.
type Endpoints string

// Action returns the Datastar POST action for a path below the base.
func (e Endpoints) Action(parts ...string) string {
	return widgets.Post(e.Path(parts...))
}

// Path returns the URL of a path below the base. Parts are escaped.
func (e Endpoints) Path(parts ...string) string {
	escaped := make([]string, len(parts))
	for i, p := range parts {
		escaped[i] = url.PathEscape(p)
	}
	return strings.TrimRight(string(e), "/") + "/" + strings.Join(escaped, "/")
}

// User is the identity shown in the navbar.
type User struct {
	Name   string
	Role   string
	Avatar string
}

// Initials returns up to two initials of the user's name.
func (u User) Initials() string {
	var out []rune
	for _, f := range strings.Fields(u.Name) {
		out = append(out, []rune(strings.ToUpper(f))[0])
		if len(out) == 2 {
			break
		}
	}
	if len(out) == 0 {
		return "?"
	}
	return string(out)
}

// NavbarProps is everything the navbar renders from.
type NavbarProps struct {
	Base     Endpoints
	User     User
	Greeting string
	// ShowGreeting is false once the greeting timer elapsed.
	ShowGreeting  bool
	Notifications []notification.Item
	// UnreadCeiling defaults to shell.DefaultUnreadCeiling.
	UnreadCeiling int
	State         shell.State
	Dark          bool
}

// Navbar renders the fixed top bar.
func Navbar(p NavbarProps) g.Node {
	geo := p.State.Geometry()
	mobile := p.State.Viewport.IsMobile()
	bg := "bg-white border-gray-200 text-gray-900"
	if p.Dark {
		bg = "bg-gray-800 border-gray-700 text-gray-100"
	}
	return html.Header(
		html.ID("navbar"),
		html.Class(cx("fixed top-0 right-0 z-30 flex items-center justify-between gap-4 px-4 border-b transition-all duration-300", bg)),
		html.Style(geo.NavbarStyle()),
		html.Div(
			html.Class("flex items-center gap-3 min-w-0"),
			sidebarToggle(p.Base, p.State, mobile),
			g.If(p.ShowGreeting && p.Greeting != "", html.H1(
				html.ID("greeting"),
				html.Class("text-lg font-semibold truncate"),
				g.Text(p.Greeting),
			)),
		),
		html.Div(
			html.Class("flex items-center gap-2"),
			themeToggle(p.Base, p.Dark),
			NotificationMenu(p),
			profileMenu(p, mobile),
		),
	)
}

func sidebarToggle(base Endpoints, st shell.State, mobile bool) g.Node {
	if mobile {
		return iconButton("menu", "Ouvrir le menu", base.Action("sidebar", "mobile"))
	}
	icon := "chevron-left"
	if st.Collapsed {
		icon = "chevron-right"
	}
	return iconButton(icon, "Réduire ou déployer le menu", base.Action("sidebar", "toggle"))
}

func themeToggle(base Endpoints, dark bool) g.Node {
	icon, label := "moon", "Thème sombre"
	if dark {
		icon, label = "sun", "Thème clair"
	}
	return iconButton(icon, label, base.Action("theme", "toggle"))
}

func iconButton(icon, label, action string) g.Node {
	return html.Button(
		html.Type("button"),
		g.Attr("aria-label", label),
		html.Class("p-2 rounded-md hover:bg-gray-100 dark:hover:bg-gray-700"),
		widgets.OnClick(action),
		Icon(icon, 20),
	)
}

var kindStyle = map[notification.Kind]struct{ icon, color string }{
	notification.KindInfo:    {"info", "text-blue-500 bg-blue-50"},
	notification.KindWarning: {"alert", "text-yellow-500 bg-yellow-50"},
	notification.KindSuccess: {"check", "text-green-500 bg-green-50"},
	notification.KindError:   {"x-circle", "text-red-500 bg-red-50"},
}

// NotificationMenu renders the bell, its unread badge and, while open,
// the notification panel. It is patched on its own when the feed changes.
func NotificationMenu(p NavbarProps) g.Node {
	ceiling := p.UnreadCeiling
	if ceiling <= 0 {
		ceiling = shell.DefaultUnreadCeiling
	}
	unread := notification.CountUnread(p.Notifications)
	label := shell.BadgeLabel(unread, ceiling)
	open := p.State.Notifications.Open

	return html.Div(
		html.ID("notifications"),
		html.Class("relative"),
		g.If(open, widgets.OnClickOutside(p.Base.Action("notifications", "dismiss"))),
		html.Button(
			html.Type("button"),
			g.Attr("aria-label", "Notifications"),
			g.Attr("aria-expanded", strconv.FormatBool(open)),
			html.Class("relative p-2 rounded-md hover:bg-gray-100 dark:hover:bg-gray-700"),
			widgets.OnClick(p.Base.Action("notifications", "toggle")),
			Icon("bell", 20),
			g.If(label != "", html.Span(
				html.ID("unread-badge"),
				html.Class("absolute -top-1 -right-1 flex h-5 min-w-5 items-center justify-center px-1 rounded-full bg-red-500 text-xs font-bold text-white"),
				g.Text(label),
			)),
		),
		g.If(open, html.Div(
			html.ID("notification-panel"),
			html.Class("absolute right-0 mt-2 w-80 bg-white rounded-lg shadow-lg border border-gray-200 z-50 text-gray-900"),
			html.Div(
				html.Class("flex items-center justify-between px-4 py-3 border-b border-gray-200"),
				html.H3(html.Class("font-semibold"), g.Text("Notifications")),
				html.Span(html.Class("text-sm text-gray-500"), g.Text(strconv.Itoa(unread)+" non lues")),
			),
			notificationList(p.Base, p.Notifications),
		)),
	)
}

func notificationList(base Endpoints, items []notification.Item) g.Node {
	if len(items) == 0 {
		return html.P(html.Class("px-4 py-6 text-center text-sm text-gray-500"), g.Text(EmptyNotifications))
	}
	return html.Ul(
		html.Class("max-h-96 overflow-y-auto divide-y divide-gray-100"),
		g.Map(items, func(it notification.Item) g.Node {
			style, ok := kindStyle[it.Kind]
			if !ok {
				style = kindStyle[notification.KindInfo]
			}
			return html.Li(
				html.Button(
					html.Type("button"),
					g.Attr("data-notification", it.ID),
					html.Class(cx("flex w-full items-start gap-3 px-4 py-3 text-left hover:bg-gray-50", iff(!it.Read, "bg-blue-50/40"))),
					widgets.OnClick(base.Action("notifications", it.ID)),
					html.Span(html.Class(cx("flex-shrink-0 rounded-full p-1", style.color)), Icon(style.icon, 16)),
					html.Span(
						html.Class("flex-1 min-w-0"),
						html.Span(html.Class(cx("block text-sm", iff(!it.Read, "font-medium"))), g.Text(it.Message)),
						html.Span(html.Class("block text-xs text-gray-500"), g.Text(it.Time)),
					),
					g.If(!it.Read, html.Span(html.Class("mt-1.5 h-2 w-2 flex-shrink-0 rounded-full bg-blue-500"), g.Attr("aria-label", "non lue"))),
				),
			)
		}),
	)
}

func profileMenu(p NavbarProps, mobile bool) g.Node {
	avatar := html.Span(
		html.Class("flex h-8 w-8 items-center justify-center rounded-full bg-blue-600 text-sm font-medium text-white"),
		g.Text(p.User.Initials()),
	)
	if p.User.Avatar != "" {
		avatar = html.Img(html.Src(p.User.Avatar), html.Alt(p.User.Name), html.Class("h-8 w-8 rounded-full object-cover"))
	}
	trigger := html.Button(
		html.Type("button"),
		g.Attr("aria-label", "Profil"),
		g.Attr("aria-expanded", strconv.FormatBool(p.State.Profile.Open)),
		html.Class("flex items-center gap-2 p-1 rounded-md hover:bg-gray-100 dark:hover:bg-gray-700"),
		avatar,
		g.If(!mobile, html.Span(
			html.Class("hidden md:flex flex-col items-start leading-tight"),
			html.Span(html.Class("text-sm font-medium"), g.Text(p.User.Name)),
			html.Span(html.Class("text-xs text-gray-500"), g.Text(p.User.Role)),
		)),
	)
	return html.Div(
		html.ID("profile"),
		widgets.Dropdown(widgets.DropdownProps{
			Trigger:       trigger,
			Open:          p.State.Profile.Open,
			ToggleAction:  p.Base.Action("profile", "toggle"),
			DismissAction: p.Base.Action("profile", "dismiss"),
			AlignRight:    true,
			Class:         "text-gray-900",
			Items: []widgets.DropdownItem{
				{ID: "profile-profile", Label: "Mon profil", Icon: Icon("user", 16), Action: p.Base.Action("profile", ProfileActionProfile)},
				{ID: "profile-settings", Label: "Paramètres", Icon: Icon("settings", 16), Action: p.Base.Action("profile", ProfileActionSettings)},
				{Divider: true},
				{ID: "profile-logout", Label: "Déconnexion", Icon: Icon("logout", 16), Action: p.Base.Action("profile", ProfileActionLogout)},
			},
		}),
	)
}

// Profile menu actions.
const (
	ProfileActionProfile  = "profile"
	ProfileActionSettings = "settings"
	ProfileActionLogout   = "logout"
)

func cx(parts ...string) string {
	return strings.Join(strings.Fields(strings.Join(parts, " ")), " ")
}

func iff(cond bool, s string) string {
	if cond {
		return s
	}
	return ""
}
