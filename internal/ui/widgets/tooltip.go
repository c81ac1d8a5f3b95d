package widgets

import (
	"strconv"
	"time"

	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"
)

// DefaultTooltipDelay is how long the pointer must rest before a tooltip shows.
const DefaultTooltipDelay = 500 * time.Millisecond

// Position places a floating element relative to its trigger.
type Position string

// Positions.
const (
	Top    Position = "top"
	Bottom Position = "bottom"
	Left   Position = "left"
	Right  Position = "right"
)

var tooltipPosition = map[Position]string{
	Top:    "bottom-full left-1/2 -translate-x-1/2 mb-2",
	Bottom: "top-full left-1/2 -translate-x-1/2 mt-2",
	Left:   "right-full top-1/2 -translate-y-1/2 mr-2",
	Right:  "left-full top-1/2 -translate-y-1/2 ml-2",
}

// TooltipProps configures a Tooltip.
type TooltipProps struct {
	Content string
	// Position defaults to Top.
	Position Position
	// Delay defaults to DefaultTooltipDelay.
	Delay    time.Duration
	Disabled bool
	Class    string
}

// Tooltip wraps trigger with a hover label. The label is shown with a
// CSS transition delay so no client state is needed.
func Tooltip(p TooltipProps, trigger g.Node) g.Node {
	if p.Disabled || p.Content == "" {
		return trigger
	}
	pos, ok := tooltipPosition[p.Position]
	if !ok {
		pos = tooltipPosition[Top]
	}
	delay := p.Delay
	if delay <= 0 {
		delay = DefaultTooltipDelay
	}
	return html.Div(
		html.Class("relative inline-flex group"),
		trigger,
		html.Div(
			g.Attr("role", "tooltip"),
			html.Class(cx("absolute z-50 px-2 py-1 text-sm text-white bg-gray-900 rounded shadow-lg whitespace-nowrap pointer-events-none",
				"opacity-0 invisible group-hover:opacity-100 group-hover:visible transition-opacity", pos, p.Class)),
			html.Style("transition-delay: "+strconv.FormatInt(delay.Milliseconds(), 10)+"ms"),
			g.Text(p.Content),
		),
	)
}
