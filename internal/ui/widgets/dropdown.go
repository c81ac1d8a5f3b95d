package widgets

import (
	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"
)

// DropdownItem is one entry of a Dropdown menu.
type DropdownItem struct {
	ID    string
	Label string
	Icon  g.Node
	// Action is the Datastar action run when the item is chosen.
	Action   string
	Disabled bool
	// Divider renders a separator line instead of an entry.
	Divider bool
}

// DropdownProps configures a Dropdown.
type DropdownProps struct {
	Trigger g.Node
	Items   []DropdownItem
	Open    bool
	// ToggleAction opens or closes the menu; DismissAction closes it on
	// an outside click.
	ToggleAction  string
	DismissAction string
	// Position is Bottom or Top. Default Bottom.
	Position Position
	// AlignRight anchors the menu to the trigger's right edge. Default false.
	AlignRight bool
	Class      string
}

// Dropdown renders a trigger and, while open, its menu.
func Dropdown(p DropdownProps) g.Node {
	place := "top-full mt-2"
	if p.Position == Top {
		place = "bottom-full mb-2"
	}
	align := "left-0"
	if p.AlignRight {
		align = "right-0"
	}
	return html.Div(
		html.Class(cx("relative inline-block", p.Class)),
		g.If(p.Open, OnClickOutside(p.DismissAction)),
		html.Div(OnClick(p.ToggleAction), p.Trigger),
		g.If(p.Open, html.Div(
			g.Attr("role", "menu"),
			html.Class(cx("absolute z-50 min-w-48 py-1 bg-white rounded-md shadow-lg ring-1 ring-black/5", place, align)),
			g.Map(p.Items, dropdownItem),
		)),
	)
}

func dropdownItem(it DropdownItem) g.Node {
	if it.Divider {
		return html.Hr(html.Class("my-1 border-gray-200"))
	}
	return html.Button(
		html.Type("button"),
		g.Attr("role", "menuitem"),
		g.If(it.ID != "", html.ID(it.ID)),
		html.Class("flex w-full items-center gap-2 px-4 py-2 text-left text-sm text-gray-700 hover:bg-gray-100 disabled:opacity-50"),
		g.If(it.Disabled, html.Disabled()),
		g.If(!it.Disabled, OnClick(it.Action)),
		it.Icon,
		g.Text(it.Label),
	)
}

// DropdownButton is the default trigger: a bordered button with a caret.
func DropdownButton(label string) g.Node {
	return html.Button(
		html.Type("button"),
		html.Class("inline-flex items-center gap-2 px-4 py-2 text-sm font-medium text-gray-700 bg-white border border-gray-300 rounded-md hover:bg-gray-50"),
		g.Text(label),
		html.Span(g.Attr("aria-hidden", "true"), g.Text("▾")),
	)
}
