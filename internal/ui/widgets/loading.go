package widgets

import (
	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"
)

// LoadingProps configures a Loading indicator.
type LoadingProps struct {
	// Text defaults to "Chargement...".
	Text string
	// Size defaults to SizeMd.
	Size Size
	// FullScreen covers the viewport with a translucent overlay. Default false.
	FullScreen bool
	Class      string
}

// Loading renders a spinner with a caption.
func Loading(p LoadingProps) g.Node {
	text := p.Text
	if text == "" {
		text = "Chargement..."
	}
	body := html.Div(
		html.Class(cx("flex flex-col items-center justify-center gap-3", p.Class)),
		Spinner(p.Size, ""),
		html.P(html.Class("text-sm text-gray-600"), g.Text(text)),
	)
	if !p.FullScreen {
		return body
	}
	return html.Div(html.Class("fixed inset-0 z-50 flex items-center justify-center bg-white/75"), body)
}

// Skeleton renders count grey placeholder lines. Count defaults to 1.
func Skeleton(count int, class string) g.Node {
	if count <= 0 {
		count = 1
	}
	lines := make([]g.Node, count)
	for i := range lines {
		lines[i] = html.Div(html.Class(cx("h-4 bg-gray-200 rounded animate-pulse", class)))
	}
	return html.Div(html.Class("space-y-2"), g.Group(lines))
}
