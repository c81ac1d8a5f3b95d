package widgets

import (
	"strconv"

	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"
)

// EmptyTableMessage is shown when a table has no rows.
const EmptyTableMessage = "Aucune donnée disponible"

// Column describes one table column over rows of type T.
type Column[T any] struct {
	Header string
	// Cell renders the column value for a row.
	Cell func(row T) g.Node
	// Align is "left", "center" or "right". Default "left".
	Align string
	Class string
}

// TableProps configures a Table.
type TableProps[T any] struct {
	Columns []Column[T]
	Rows    []T
	// Striped shades every other row. Default false.
	Striped bool
	// Hoverable highlights the row under the pointer. Default true
	// unless NoHover is set.
	NoHover bool
	// EmptyMessage defaults to EmptyTableMessage.
	EmptyMessage string
	// RowAction maps a row to a Datastar click action. Optional.
	RowAction func(row T) string
	Class     string
}

var tableAlign = map[string]string{"left": "text-left", "center": "text-center", "right": "text-right"}

// Table renders rows under a header line.
func Table[T any](p TableProps[T]) g.Node {
	empty := p.EmptyMessage
	if empty == "" {
		empty = EmptyTableMessage
	}
	var body g.Node
	if len(p.Rows) == 0 {
		body = html.Tr(html.Td(
			g.Attr("colspan", strconv.Itoa(max(len(p.Columns), 1))),
			html.Class("px-6 py-8 text-center text-sm text-gray-500"),
			g.Text(empty),
		))
	} else {
		rows := make([]g.Node, len(p.Rows))
		for i, row := range p.Rows {
			action := ""
			if p.RowAction != nil {
				action = p.RowAction(row)
			}
			rows[i] = html.Tr(
				html.Class(cx(
					iff(p.Striped && i%2 == 1, "bg-gray-50"),
					iff(!p.NoHover, "hover:bg-gray-100"),
					iff(action != "", "cursor-pointer"),
				)),
				OnClick(action),
				g.Map(p.Columns, func(c Column[T]) g.Node {
					return html.Td(
						html.Class(cx("px-6 py-4 text-sm text-gray-900", orKey(tableAlign, c.Align, "left"), c.Class)),
						c.Cell(row),
					)
				}),
			)
		}
		body = g.Group(rows)
	}
	return html.Div(
		html.Class(cx("overflow-x-auto", p.Class)),
		html.Table(
			html.Class("min-w-full divide-y divide-gray-200"),
			html.THead(
				html.Class("bg-gray-50"),
				html.Tr(g.Map(p.Columns, func(c Column[T]) g.Node {
					return html.Th(
						html.Class(cx("px-6 py-3 text-xs font-medium text-gray-500 uppercase tracking-wider", orKey(tableAlign, c.Align, "left"))),
						g.Text(c.Header),
					)
				})),
			),
			html.TBody(html.Class("bg-white divide-y divide-gray-200"), body),
		),
	)
}

func iff(cond bool, s string) string {
	if cond {
		return s
	}
	return ""
}
