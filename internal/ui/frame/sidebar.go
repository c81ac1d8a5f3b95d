package frame

import (
	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"

	"github.com/guichet-labs/guichet/internal/shell"
	"github.com/guichet-labs/guichet/internal/ui/widgets"
)

// DefaultAccentColor highlights the active sidebar item.
const DefaultAccentColor = "#3b82f6"

// SidebarProps is everything the sidebar renders from.
type SidebarProps struct {
	Base  Endpoints
	Title string
	Items []shell.NavItem
	State shell.State
	// AccentColor defaults to DefaultAccentColor.
	AccentColor string
	Dark        bool
}

// Sidebar renders the side navigation. On mobile viewports it is an
// overlay shown only while the mobile disclosure is open; otherwise it is
// a fixed column, collapsed to icons or expanded with labels.
func Sidebar(p SidebarProps) g.Node {
	accent := p.AccentColor
	if accent == "" {
		accent = DefaultAccentColor
	}
	geo := p.State.Geometry()
	mobile := p.State.Viewport.IsMobile()
	collapsed := p.State.Collapsed && !mobile

	bg := "bg-white border-gray-200 text-gray-700"
	if p.Dark {
		bg = "bg-gray-800 border-gray-700 text-gray-200"
	}

	if mobile && !p.State.MobileSidebar.Open {
		return html.Aside(html.ID("sidebar"), html.Class("hidden"))
	}

	nav := html.Aside(
		html.ID("sidebar"),
		html.Class(cx("fixed inset-y-0 left-0 z-50 flex flex-col border-r transition-all duration-300", bg)),
		html.Style(geo.SidebarStyle()),
		html.Div(
			html.Class("flex items-center justify-between px-4 border-b border-inherit"),
			html.Style("height: 64px"),
			g.If(!collapsed, html.Span(html.Class("text-lg font-bold truncate"), g.Text(p.Title))),
			g.If(mobile, iconButton("close", "Fermer le menu", p.Base.Action("sidebar", "mobile"))),
		),
		html.Nav(
			html.Class("flex-1 overflow-y-auto py-4"),
			html.Ul(
				html.Class("space-y-1 px-2"),
				g.Map(p.Items, func(it shell.NavItem) g.Node {
					return sidebarItem(p.Base, it, it.ID == p.State.ActiveItem, collapsed, accent)
				}),
			),
		),
	)
	if !mobile {
		return nav
	}
	return g.Group([]g.Node{
		html.Div(
			html.ID("sidebar-backdrop"),
			html.Class("fixed inset-0 z-40 bg-black/50"),
			widgets.OnClick(p.Base.Action("sidebar", "mobile")),
		),
		nav,
	})
}

func sidebarItem(base Endpoints, it shell.NavItem, active, collapsed bool, accent string) g.Node {
	style := "border-left: 3px solid transparent"
	class := "hover:bg-gray-100 dark:hover:bg-gray-700"
	if active {
		style = "border-left: 3px solid " + accent + "; color: " + accent
		class = "bg-gray-100 dark:bg-gray-700 font-medium"
	}
	link := html.Button(
		html.Type("button"),
		g.Attr("data-item", it.ID),
		g.If(active, g.Attr("aria-current", "page")),
		html.Class(cx("flex w-full items-center gap-3 rounded-md px-3 py-2 text-sm transition-colors", class, iff(collapsed, "justify-center"))),
		html.Style(style),
		widgets.OnClick(base.Action("nav", it.ID)),
		Icon(it.Icon, 20),
		g.If(!collapsed, html.Span(g.Text(it.Name))),
	)
	if collapsed {
		link = widgets.Tooltip(widgets.TooltipProps{Content: it.Name, Position: widgets.Right}, link)
	}
	return html.Li(link)
}
