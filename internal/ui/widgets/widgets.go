// Package widgets provides the primitive building blocks of the
// dashboard: badges, cards, form controls, tables, tabs, pagination and
// loading indicators.
//
// Widgets are stateless. Each takes a props struct whose zero value is
// usable; defaults are documented per field. Interactive widgets accept
// Datastar action expressions (e.g. "@post('/x')") instead of callbacks.
package widgets

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
)

// Size is a widget size.
type Size string

// Sizes.
const (
	SizeSm Size = "sm"
	SizeMd Size = "md"
	SizeLg Size = "lg"
	SizeXl Size = "xl"
)

func (s Size) or(def Size) Size {
	if s == "" {
		return def
	}
	return s
}

// Component adapts a node to the templ component contract used by the
// HTTP handlers and the Datastar patch helpers.
func Component(n g.Node) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		return n.Render(w)
	})
}

// cx joins non-empty class fragments.
func cx(parts ...string) string {
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, " ")
}

// OnClick binds a Datastar click action. An empty action binds nothing.
func OnClick(action string) g.Node {
	if action == "" {
		return nil
	}
	return g.Attr("data-on:click", action)
}

// OnClickOutside binds a Datastar action fired by clicks outside the
// element. It is the markup half of a shell.Disclosure: render it only
// while the panel is open.
func OnClickOutside(action string) g.Node {
	if action == "" {
		return nil
	}
	return g.Attr("data-on:click__outside", action)
}

// Post returns a Datastar POST action expression for path.
func Post(path string) string {
	return "@post('" + path + "')"
}
