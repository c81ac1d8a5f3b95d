package widgets

import (
	"fmt"
	"strconv"

	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"
)

// DefaultMaxVisiblePages is the width of the page-number window.
const DefaultMaxVisiblePages = 5

// VisiblePages returns the window of page numbers shown around current.
// The window is clamped to [1, total] and keeps maxVisible entries when
// there are enough pages.
func VisiblePages(current, total, maxVisible int) []int {
	if total <= 0 {
		return nil
	}
	if maxVisible <= 0 {
		maxVisible = DefaultMaxVisiblePages
	}
	half := maxVisible / 2
	start := max(current-half, 1)
	end := min(start+maxVisible-1, total)
	if end-start+1 < maxVisible {
		start = max(end-maxVisible+1, 1)
	}
	pages := make([]int, 0, end-start+1)
	for i := start; i <= end; i++ {
		pages = append(pages, i)
	}
	return pages
}

// PaginationProps configures a Pagination.
type PaginationProps struct {
	CurrentPage int
	TotalPages  int
	// PageAction maps a page number to the Datastar action that loads it.
	PageAction func(page int) string
	// ShowFirstLast adds jump-to-first and jump-to-last buttons. Default false.
	ShowFirstLast bool
	// MaxVisiblePages defaults to DefaultMaxVisiblePages.
	MaxVisiblePages int
	Class           string
}

// Pagination renders page navigation. Nothing is rendered for a single page.
func Pagination(p PaginationProps) g.Node {
	if p.TotalPages <= 1 {
		return nil
	}
	action := func(page int) string {
		if p.PageAction == nil {
			return ""
		}
		return p.PageAction(page)
	}
	button := func(label string, page int, disabled, active bool) g.Node {
		style := "border border-gray-300 text-gray-700 hover:bg-gray-50"
		if active {
			style = "bg-blue-600 text-white"
		}
		return html.Button(
			html.Type("button"),
			html.Class(cx("px-3 py-1 rounded-md text-sm disabled:opacity-50 disabled:cursor-not-allowed", style)),
			g.If(disabled, html.Disabled()),
			g.If(active, g.Attr("aria-current", "page")),
			g.If(!disabled && !active, OnClick(action(page))),
			g.Text(label),
		)
	}
	first := p.CurrentPage <= 1
	last := p.CurrentPage >= p.TotalPages
	return html.Nav(
		html.Class(cx("flex items-center justify-center gap-1", p.Class)),
		g.Attr("aria-label", "Pagination"),
		g.If(p.ShowFirstLast, button("«", 1, first, false)),
		button("‹", p.CurrentPage-1, first, false),
		g.Map(VisiblePages(p.CurrentPage, p.TotalPages, p.MaxVisiblePages), func(n int) g.Node {
			return button(strconv.Itoa(n), n, false, n == p.CurrentPage)
		}),
		button("›", p.CurrentPage+1, last, false),
		g.If(p.ShowFirstLast, button("»", p.TotalPages, last, false)),
	)
}

// PaginationInfo renders "Affichage de a à b sur n résultats".
func PaginationInfo(currentPage, pageSize, totalItems int) g.Node {
	if totalItems <= 0 || pageSize <= 0 {
		return nil
	}
	start := (currentPage-1)*pageSize + 1
	end := min(currentPage*pageSize, totalItems)
	return html.P(
		html.Class("text-sm text-gray-600"),
		g.Text(fmt.Sprintf("Affichage de %d à %d sur %d résultats", start, end, totalItems)),
	)
}
