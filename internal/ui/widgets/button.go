package widgets

import (
	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"
)

// ButtonProps configures a Button.
type ButtonProps struct {
	// Variant defaults to VariantPrimary.
	Variant Variant
	// Size defaults to SizeMd.
	Size     Size
	OnClick  string
	Disabled bool
	// Loading shows a spinner and disables the button. Default false.
	Loading bool
	// Type defaults to "button".
	Type  string
	Class string
}

var buttonColor = map[Variant]string{
	VariantDefault: "bg-white text-gray-700 border border-gray-300 hover:bg-gray-50",
	VariantPrimary: "bg-blue-600 text-white hover:bg-blue-700",
	VariantSuccess: "bg-green-600 text-white hover:bg-green-700",
	VariantWarning: "bg-yellow-500 text-white hover:bg-yellow-600",
	VariantError:   "bg-red-600 text-white hover:bg-red-700",
	VariantInfo:    "bg-blue-500 text-white hover:bg-blue-600",
}

var buttonSize = map[Size]string{
	SizeSm: "px-3 py-1.5 text-sm",
	SizeMd: "px-4 py-2 text-sm",
	SizeLg: "px-6 py-3 text-base",
}

// Button renders an action button.
func Button(p ButtonProps, children ...g.Node) g.Node {
	color, ok := buttonColor[p.Variant]
	if !ok {
		color = buttonColor[VariantPrimary]
	}
	typ := p.Type
	if typ == "" {
		typ = "button"
	}
	disabled := p.Disabled || p.Loading
	return html.Button(
		html.Type(typ),
		html.Class(cx("inline-flex items-center justify-center gap-2 rounded-md font-medium transition-colors disabled:opacity-50 disabled:cursor-not-allowed",
			color, buttonSize[p.Size.or(SizeMd)], p.Class)),
		g.If(disabled, html.Disabled()),
		g.If(!disabled, OnClick(p.OnClick)),
		g.If(p.Loading, Spinner(SizeSm, "border-t-white")),
		g.Group(children),
	)
}
