package layouts

import (
	"strconv"

	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"

	"github.com/guichet-labs/guichet/internal/notification"
	"github.com/guichet-labs/guichet/internal/ui/frame"
	"github.com/guichet-labs/guichet/internal/ui/resources"
	"github.com/guichet-labs/guichet/internal/ui/widgets"
)

// Page renders the full document of a shell.
func Page(v View) g.Node {
	base := v.Role.Base()
	report := "$viewportWidth = window.innerWidth; " + base.Action("viewport")
	return html.Doctype(html.HTML(
		html.Lang("fr"),
		html.Head(
			html.Meta(html.Charset("utf-8")),
			html.Meta(html.Name("viewport"), html.Content("width=device-width, initial-scale=1")),
			html.TitleEl(g.Text(v.Role.Title()+" - Guichet")),
			html.Script(html.Src(resources.TailwindScript)),
			html.Script(html.Type("module"), html.Src(resources.DatastarScript)),
			html.Link(html.Rel("stylesheet"), html.Href(resources.StaticPath("guichet.css"))),
		),
		html.Body(
			g.Attr("data-signals", "{viewportWidth: 0}"),
			g.Attr("data-init", report),
			g.Attr("data-on:resize__window__debounce.200ms", report),
			html.Div(html.ID("updates"), g.Attr("data-init", "@get('"+base.Path("updates")+"')")),
			g.If(v.Options.IsDev, html.Div(g.Attr("data-init", "@get('/reload', {retryMaxCount: 1000})"))),
			Shell(v),
		),
	))
}

// Shell renders the patchable part of the page: sidebar, navbar,
// content and toasts. Every shell action answers with this fragment.
func Shell(v View) g.Node {
	base := v.Role.Base()
	dark := v.Theme.IsDark()
	return html.Div(
		html.ID("shell"),
		html.Class("flex h-screen "+v.Theme.Class()),
		frame.Sidebar(frame.SidebarProps{
			Base:        base,
			Title:       v.Role.Title(),
			Items:       v.Role.Items,
			State:       v.State,
			AccentColor: v.Options.AccentColor,
			Dark:        dark,
		}),
		html.Div(
			html.Class("flex-1 flex flex-col"),
			frame.Navbar(frame.NavbarProps{
				Base:          base,
				User:          v.User,
				Greeting:      v.Greeting,
				ShowGreeting:  v.ShowGreeting,
				Notifications: v.Notifications,
				UnreadCeiling: v.Options.UnreadCeiling,
				State:         v.State,
				Dark:          dark,
			}),
			html.Main(
				html.ID("content"),
				html.Class("flex-1 overflow-y-auto transition-all duration-300"),
				html.Style(v.State.Geometry().ContentStyle()),
				content(v),
			),
		),
		toasts(v.Toasts),
	)
}

func content(v View) g.Node {
	if v.Role.Outlet {
		return outlet(v)
	}
	return dashboard(v)
}

type stat struct {
	title, value, icon, color string
}

var dashboardStats = []stat{
	{"Utilisateurs Total", "1,234", "users", "bg-blue-500"},
	{"Messages", "56", "mail", "bg-green-500"},
	{"Événements", "23", "calendar", "bg-purple-500"},
	{"Analytiques", "89%", "chart", "bg-orange-500"},
	{"Paramètres", "12", "settings", "bg-red-500"},
	{"Autres", "45", "more", "bg-indigo-500"},
}

func dashboard(v View) g.Node {
	dark := v.Theme.IsDark()
	heading, muted, tile := "text-gray-900", "text-gray-600", "bg-gray-50 hover:bg-gray-100"
	if dark {
		heading, muted, tile = "text-white", "text-gray-300", "bg-gray-700 hover:bg-gray-600"
	}
	return html.Div(
		html.Class("p-8"),
		html.Div(
			html.Class("mb-6 "+heading),
			html.H1(html.Class("text-3xl font-bold mb-2"), g.Text("Dashboard Principal")),
			html.P(html.Class("text-sm "+muted), g.Text("Bienvenue dans votre espace d'administration")),
		),
		widgets.Card(widgets.CardProps{Dark: dark},
			html.Div(
				html.ID("stats"),
				html.Class("grid grid-cols-1 sm:grid-cols-2 lg:grid-cols-3 xl:grid-cols-4 gap-6"),
				g.Map(dashboardStats, func(s stat) g.Node {
					return html.Div(
						html.Class("rounded-lg p-4 hover:shadow-md transition-all duration-200 cursor-pointer "+tile),
						html.Div(
							html.Class("flex items-center justify-between mb-3"),
							html.Div(html.Class("p-2 rounded-lg text-white "+s.color), frame.Icon(s.icon, 20)),
							html.Span(html.Class("text-2xl font-bold "+heading), g.Text(s.value)),
						),
						html.H3(html.Class("font-semibold text-sm "+heading), g.Text(s.title)),
					)
				}),
			),
			html.Div(
				html.Class("mt-8"),
				html.H2(html.Class("text-xl font-semibold mb-4 "+heading), g.Text("Activité Récente")),
				html.Div(
					html.Class("rounded-lg p-4 "+tile),
					html.P(html.Class("text-sm "+muted), g.Text("Aucune activité récente à afficher. Les données seront mises à jour automatiquement.")),
				),
			),
			recentNotifications(v, heading),
		),
	)
}

var kindVariant = map[notification.Kind]widgets.Variant{
	notification.KindInfo:    widgets.VariantInfo,
	notification.KindWarning: widgets.VariantWarning,
	notification.KindSuccess: widgets.VariantSuccess,
	notification.KindError:   widgets.VariantError,
}

var kindLabel = map[notification.Kind]string{
	notification.KindInfo:    "Info",
	notification.KindWarning: "Alerte",
	notification.KindSuccess: "Succès",
	notification.KindError:   "Erreur",
}

func recentNotifications(v View, heading string) g.Node {
	base := v.Role.Base()
	size := v.Options.PageSize
	rows, page, total := pageOf(v.Notifications, v.State.ActivityPage, size)
	return html.Div(
		html.ID("recent-notifications"),
		html.Class("mt-8"),
		html.H2(html.Class("text-xl font-semibold mb-4 "+heading), g.Text("Notifications récentes")),
		widgets.Table(widgets.TableProps[notification.Item]{
			Rows:      rows,
			Striped:   true,
			RowAction: func(it notification.Item) string { return base.Action("notifications", it.ID) },
			Columns: []widgets.Column[notification.Item]{
				{Header: "Message", Cell: func(it notification.Item) g.Node { return g.Text(it.Message) }},
				{Header: "Type", Cell: func(it notification.Item) g.Node {
					return widgets.Badge(widgets.BadgeProps{Variant: kindVariant[it.Kind], Size: widgets.SizeSm, Rounded: true}, g.Text(kindLabel[it.Kind]))
				}},
				{Header: "Heure", Cell: func(it notification.Item) g.Node { return g.Text(it.Time) }},
				{Header: "Statut", Align: "right", Cell: func(it notification.Item) g.Node {
					if it.Read {
						return widgets.Badge(widgets.BadgeProps{Size: widgets.SizeSm}, g.Text("Lue"))
					}
					return widgets.Badge(widgets.BadgeProps{Variant: widgets.VariantPrimary, Size: widgets.SizeSm}, g.Text("Non lue"))
				}},
			},
		}),
		html.Div(
			html.Class("flex items-center justify-between mt-4"),
			widgets.PaginationInfo(page, size, len(v.Notifications)),
			widgets.Pagination(widgets.PaginationProps{
				CurrentPage: page,
				TotalPages:  total,
				PageAction:  func(n int) string { return base.Action("activity", strconv.Itoa(n)) },
			}),
		),
	)
}

func outlet(v View) g.Node {
	item, ok := v.Role.Item(v.State.ActiveItem)
	if !ok {
		item, _ = v.Role.Item(v.Role.DefaultItem)
	}
	dark := v.Theme.IsDark()
	return html.Div(
		html.ID("outlet"),
		g.Attr("data-outlet", item.ID),
		html.Class("p-8"),
		widgets.Breadcrumb([]widgets.Crumb{
			{Label: v.Role.Title(), Href: v.Role.Base().Path(v.Role.DefaultItem)},
			{Label: item.Name},
		}, ""),
		html.Div(
			html.Class("mt-6"),
			widgets.Card(widgets.CardProps{Dark: dark},
				widgets.CardHeader(widgets.CardTitle(item.Name)),
				widgets.CardContent(g.Text("Sélectionnez une opération dans le menu pour commencer.")),
			),
		),
	)
}

func toasts(messages []string) g.Node {
	return html.Div(
		html.ID("toasts"),
		html.Class("fixed bottom-4 right-4 z-50 flex flex-col gap-2"),
		g.Map(messages, func(msg string) g.Node {
			return html.Div(
				g.Attr("role", "alert"),
				html.Class("rounded-md bg-red-600 px-4 py-3 text-sm text-white shadow-lg"),
				g.Text(msg),
			)
		}),
	)
}
