package widgets

import (
	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"
)

// Variant is a semantic color.
type Variant string

// Variants.
const (
	VariantDefault Variant = "default"
	VariantPrimary Variant = "primary"
	VariantSuccess Variant = "success"
	VariantWarning Variant = "warning"
	VariantError   Variant = "error"
	VariantInfo    Variant = "info"
)

// BadgeProps configures a Badge.
type BadgeProps struct {
	// Variant defaults to VariantDefault.
	Variant Variant
	// Size defaults to SizeMd.
	Size Size
	// Rounded renders a pill. Default false.
	Rounded bool
	// Outline renders a bordered badge without fill. Default false.
	Outline bool
	Class   string
}

var badgeFill = map[Variant]string{
	VariantDefault: "bg-gray-100 text-gray-800",
	VariantPrimary: "bg-blue-100 text-blue-800",
	VariantSuccess: "bg-green-100 text-green-800",
	VariantWarning: "bg-yellow-100 text-yellow-800",
	VariantError:   "bg-red-100 text-red-800",
	VariantInfo:    "bg-blue-100 text-blue-800",
}

var badgeOutline = map[Variant]string{
	VariantDefault: "border border-gray-300 text-gray-700",
	VariantPrimary: "border border-blue-300 text-blue-700",
	VariantSuccess: "border border-green-300 text-green-700",
	VariantWarning: "border border-yellow-300 text-yellow-700",
	VariantError:   "border border-red-300 text-red-700",
	VariantInfo:    "border border-blue-300 text-blue-700",
}

var badgeSize = map[Size]string{
	SizeSm: "px-2 py-0.5 text-xs",
	SizeMd: "px-2.5 py-0.5 text-sm",
	SizeLg: "px-3 py-1 text-base",
}

// Badge renders a small status label.
func Badge(p BadgeProps, children ...g.Node) g.Node {
	variant := p.Variant
	if _, ok := badgeFill[variant]; !ok {
		variant = VariantDefault
	}
	color := badgeFill[variant]
	if p.Outline {
		color = badgeOutline[variant]
	}
	shape := "rounded"
	if p.Rounded {
		shape = "rounded-full"
	}
	return html.Span(
		html.Class(cx("inline-flex items-center font-medium", color, badgeSize[p.Size.or(SizeMd)], shape, p.Class)),
		g.Group(children),
	)
}
