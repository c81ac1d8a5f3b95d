package widgets

import (
	"fmt"
	"strconv"

	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"
)

// ProgressProps configures a Progress bar.
type ProgressProps struct {
	Value float64
	// Max defaults to 100.
	Max float64
	// Size is sm, md or lg. Default SizeMd.
	Size Size
	// Variant defaults to VariantPrimary.
	Variant Variant
	// ShowLabel prints the percentage above the bar. Default false.
	ShowLabel bool
	Label     string
	Class     string
}

var progressHeight = map[Size]string{SizeSm: "h-1", SizeMd: "h-2", SizeLg: "h-3"}

var progressColor = map[Variant]string{
	VariantDefault: "bg-gray-600",
	VariantPrimary: "bg-blue-600",
	VariantSuccess: "bg-green-600",
	VariantWarning: "bg-yellow-500",
	VariantError:   "bg-red-600",
	VariantInfo:    "bg-blue-500",
}

// Percentage returns value as a share of maxValue, clamped to [0, 100].
// A non-positive maxValue means 100.
func Percentage(value, maxValue float64) float64 {
	if maxValue <= 0 {
		maxValue = 100
	}
	return min(max(value/maxValue*100, 0), 100)
}

// Progress renders a horizontal progress bar.
func Progress(p ProgressProps) g.Node {
	pct := Percentage(p.Value, p.Max)
	color, ok := progressColor[p.Variant]
	if !ok {
		color = progressColor[VariantPrimary]
	}
	return html.Div(
		html.Class(cx("w-full", p.Class)),
		g.If(p.ShowLabel || p.Label != "", html.Div(
			html.Class("flex justify-between mb-1 text-sm text-gray-700"),
			html.Span(g.Text(p.Label)),
			g.If(p.ShowLabel, html.Span(g.Text(fmt.Sprintf("%.0f%%", pct)))),
		)),
		html.Div(
			html.Class(cx("w-full bg-gray-200 rounded-full overflow-hidden", progressHeight[p.Size.or(SizeMd)])),
			g.Attr("role", "progressbar"),
			g.Attr("aria-valuenow", strconv.FormatFloat(pct, 'f', 0, 64)),
			g.Attr("aria-valuemin", "0"),
			g.Attr("aria-valuemax", "100"),
			html.Div(
				html.Class(cx("h-full rounded-full transition-all duration-300", color)),
				html.Style(fmt.Sprintf("width: %.2f%%", pct)),
			),
		),
	)
}
