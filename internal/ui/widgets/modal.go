package widgets

import (
	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"
)

// ModalProps configures a Modal.
type ModalProps struct {
	Open  bool
	Title string
	// Size is sm, md, lg or xl. Default SizeMd.
	Size Size
	// CloseAction is the Datastar action that closes the modal. When set,
	// a close button is shown and a backdrop click closes too.
	CloseAction string
	Footer      g.Node
	Class       string
}

var modalWidth = map[Size]string{
	SizeSm: "max-w-sm",
	SizeMd: "max-w-lg",
	SizeLg: "max-w-2xl",
	SizeXl: "max-w-4xl",
}

// Modal renders a dialog over a backdrop. Nothing is rendered while closed.
func Modal(p ModalProps, children ...g.Node) g.Node {
	if !p.Open {
		return nil
	}
	return html.Div(
		html.Class("fixed inset-0 z-50 flex items-center justify-center p-4"),
		html.Div(html.Class("absolute inset-0 bg-black/50"), OnClick(p.CloseAction)),
		html.Div(
			g.Attr("role", "dialog"),
			g.Attr("aria-modal", "true"),
			html.Class(cx("relative w-full bg-white rounded-lg shadow-xl", modalWidth[p.Size.or(SizeMd)], p.Class)),
			g.If(p.Title != "" || p.CloseAction != "", html.Div(
				html.Class("flex items-center justify-between px-6 py-4 border-b border-gray-200"),
				html.H2(html.Class("text-lg font-semibold text-gray-900"), g.Text(p.Title)),
				g.If(p.CloseAction != "", html.Button(
					html.Type("button"),
					g.Attr("aria-label", "Fermer"),
					html.Class("text-gray-400 hover:text-gray-600"),
					OnClick(p.CloseAction),
					g.Text("×"),
				)),
			)),
			html.Div(html.Class("px-6 py-4"), g.Group(children)),
			g.If(p.Footer != nil, html.Div(html.Class("flex justify-end gap-2 px-6 py-4 border-t border-gray-200"), p.Footer)),
		),
	)
}
