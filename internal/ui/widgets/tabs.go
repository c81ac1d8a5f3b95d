package widgets

import (
	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"
)

// TabsVariant selects the tab strip style.
type TabsVariant string

// Tab strip styles.
const (
	TabsDefault   TabsVariant = "default"
	TabsPills     TabsVariant = "pills"
	TabsUnderline TabsVariant = "underline"
)

// Tab is one entry of a tab strip.
type Tab struct {
	ID       string
	Label    string
	Icon     g.Node
	Disabled bool
	Content  g.Node
}

// TabsProps configures Tabs.
type TabsProps struct {
	Tabs []Tab
	// Active is the selected tab id. Default the first tab.
	Active string
	// Variant defaults to TabsDefault.
	Variant TabsVariant
	// SelectAction maps a tab id to the Datastar action that selects it.
	SelectAction func(id string) string
	Class        string
}

func (v TabsVariant) classes(active bool) string {
	switch v {
	case TabsPills:
		if active {
			return "rounded-full bg-blue-600 text-white"
		}
		return "rounded-full text-gray-600 hover:bg-gray-100"
	case TabsUnderline:
		if active {
			return "border-b-2 border-blue-600 text-blue-600"
		}
		return "border-b-2 border-transparent text-gray-500 hover:text-gray-700"
	default:
		if active {
			return "rounded-t-md border border-b-0 border-gray-200 bg-white text-gray-900"
		}
		return "text-gray-500 hover:text-gray-700"
	}
}

// Tabs renders a tab strip with the active tab's content below it.
func Tabs(p TabsProps) g.Node {
	if len(p.Tabs) == 0 {
		return nil
	}
	active := p.Tabs[0].ID
	for _, t := range p.Tabs {
		if t.ID == p.Active {
			active = t.ID
		}
	}
	var content g.Node
	strip := make([]g.Node, len(p.Tabs))
	for i, t := range p.Tabs {
		on := t.ID == active
		if on {
			content = t.Content
		}
		action := ""
		if p.SelectAction != nil && !t.Disabled && !on {
			action = p.SelectAction(t.ID)
		}
		strip[i] = html.Button(
			html.Type("button"),
			g.Attr("role", "tab"),
			g.Attr("aria-selected", boolAttr(on)),
			html.Class(cx("inline-flex items-center gap-2 px-4 py-2 text-sm font-medium disabled:opacity-50", p.Variant.classes(on))),
			g.If(t.Disabled, html.Disabled()),
			OnClick(action),
			t.Icon,
			g.Text(t.Label),
		)
	}
	return html.Div(
		html.Class(p.Class),
		html.Div(
			g.Attr("role", "tablist"),
			html.Class(cx("flex gap-1", iff(p.Variant != TabsPills, "border-b border-gray-200"))),
			g.Group(strip),
		),
		html.Div(g.Attr("role", "tabpanel"), html.Class("pt-4"), content),
	)
}

func boolAttr(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
