package widgets

import (
	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"
)

// CardProps configures a Card.
type CardProps struct {
	// Padding is one of "none", "sm", "md", "lg". Default "md".
	Padding string
	// Shadow is one of "none", "sm", "md", "lg". Default "sm".
	Shadow string
	// Hover lifts the card on hover. Default false.
	Hover bool
	// NoBorder hides the border. Default false.
	NoBorder bool
	// OnClick is a Datastar action; it also makes the card look clickable.
	OnClick string
	Dark    bool
	Class   string
}

var cardPadding = map[string]string{"none": "", "sm": "p-4", "md": "p-6", "lg": "p-8"}
var cardShadow = map[string]string{"none": "", "sm": "shadow-sm", "md": "shadow-md", "lg": "shadow-lg"}

func orKey(m map[string]string, k, def string) string {
	if v, ok := m[k]; ok {
		return v
	}
	return m[def]
}

// Card renders a content container.
func Card(p CardProps, children ...g.Node) g.Node {
	bg := "bg-white"
	border := "border border-gray-200"
	if p.Dark {
		bg = "bg-gray-800"
		border = "border border-gray-700"
	}
	if p.NoBorder {
		border = ""
	}
	hover := ""
	if p.Hover {
		hover = "transition-transform hover:shadow-lg hover:-translate-y-1"
	}
	clickable := ""
	if p.OnClick != "" {
		clickable = "cursor-pointer"
	}
	return html.Div(
		html.Class(cx("rounded-lg", bg, orKey(cardPadding, p.Padding, "md"), orKey(cardShadow, p.Shadow, "sm"), border, hover, clickable, p.Class)),
		OnClick(p.OnClick),
		g.Group(children),
	)
}

// CardHeader renders the header region of a card.
func CardHeader(children ...g.Node) g.Node {
	return html.Div(html.Class("mb-4"), g.Group(children))
}

// CardTitle renders a card heading.
func CardTitle(title string) g.Node {
	return html.H3(html.Class("text-lg font-semibold"), g.Text(title))
}

// CardContent renders the body of a card.
func CardContent(children ...g.Node) g.Node {
	return html.Div(html.Class("text-sm"), g.Group(children))
}

// CardFooter renders the footer of a card.
func CardFooter(children ...g.Node) g.Node {
	return html.Div(html.Class("mt-4 pt-4 border-t border-gray-200"), g.Group(children))
}
