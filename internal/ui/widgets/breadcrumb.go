package widgets

import (
	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"
)

// Crumb is one breadcrumb entry. The last entry is rendered as the
// current page regardless of Href.
type Crumb struct {
	Label string
	Href  string
	Icon  g.Node
}

// Breadcrumb renders a trail of links. Separator defaults to "/".
func Breadcrumb(items []Crumb, separator string) g.Node {
	if len(items) == 0 {
		return nil
	}
	if separator == "" {
		separator = "/"
	}
	nodes := make([]g.Node, 0, 2*len(items))
	for i, c := range items {
		if i > 0 {
			nodes = append(nodes, html.Li(html.Class("text-gray-400"), g.Attr("aria-hidden", "true"), g.Text(separator)))
		}
		last := i == len(items)-1
		var label g.Node
		switch {
		case last:
			label = html.Span(html.Class("font-medium text-gray-900"), g.Attr("aria-current", "page"), c.Icon, g.Text(c.Label))
		case c.Href != "":
			label = html.A(html.Href(c.Href), html.Class("text-gray-500 hover:text-gray-700"), c.Icon, g.Text(c.Label))
		default:
			label = html.Span(html.Class("text-gray-500"), c.Icon, g.Text(c.Label))
		}
		nodes = append(nodes, html.Li(html.Class("inline-flex items-center gap-1"), label))
	}
	return html.Nav(
		g.Attr("aria-label", "Breadcrumb"),
		html.Ol(html.Class("flex items-center gap-2 text-sm"), g.Group(nodes)),
	)
}
