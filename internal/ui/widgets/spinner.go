package widgets

import (
	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"
)

var spinnerSize = map[Size]string{
	SizeSm: "h-4 w-4 border-2",
	SizeMd: "h-8 w-8 border-2",
	SizeLg: "h-12 w-12 border-4",
	SizeXl: "h-16 w-16 border-4",
}

// Spinner renders a rotating ring. Size defaults to SizeMd.
func Spinner(size Size, class string) g.Node {
	return html.Div(
		html.Class(cx("animate-spin rounded-full border-gray-200 border-t-blue-600", spinnerSize[size.or(SizeMd)], class)),
		g.Attr("role", "status"),
		g.Attr("aria-label", "Chargement"),
	)
}
