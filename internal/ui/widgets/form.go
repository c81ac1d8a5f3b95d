package widgets

import (
	"strconv"

	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"
)

const fieldBase = "px-3 py-2 border rounded-md focus:outline-none focus:ring-2 focus:ring-blue-500 focus:border-transparent transition-colors"

// FieldProps holds what every labelled form control shares.
type FieldProps struct {
	ID    string
	Name  string
	Label string
	// Error replaces HelperText and turns the border red.
	Error      string
	HelperText string
	// FullWidth stretches the control to its container. Default false.
	FullWidth bool
	Disabled  bool
	Required  bool
	// Bind is a Datastar signal name bound with data-bind.
	Bind  string
	Class string
}

func (f FieldProps) borderClass() string {
	if f.Error != "" {
		return "border-red-500"
	}
	return "border-gray-300"
}

func (f FieldProps) widthClass() string {
	if f.FullWidth {
		return "w-full"
	}
	return ""
}

func (f FieldProps) common() g.Node {
	return g.Group([]g.Node{
		g.If(f.ID != "", html.ID(f.ID)),
		g.If(f.Name != "", html.Name(f.Name)),
		g.If(f.Disabled, html.Disabled()),
		g.If(f.Required, html.Required()),
		g.If(f.Bind != "", g.Attr("data-bind", f.Bind)),
	})
}

func (f FieldProps) wrap(control g.Node) g.Node {
	return html.Div(
		g.If(f.FullWidth, html.Class("w-full")),
		g.If(f.Label != "", html.Label(
			g.If(f.ID != "", html.For(f.ID)),
			html.Class("block text-sm font-medium text-gray-700 mb-1"),
			g.Text(f.Label),
			g.If(f.Required, html.Span(html.Class("text-red-500 ml-1"), g.Text("*"))),
		)),
		control,
		f.message(),
	)
}

func (f FieldProps) message() g.Node {
	if f.Error != "" {
		return html.P(html.Class("mt-1 text-sm text-red-600"), g.Text(f.Error))
	}
	if f.HelperText != "" {
		return html.P(html.Class("mt-1 text-sm text-gray-500"), g.Text(f.HelperText))
	}
	return nil
}

// InputProps configures an Input.
type InputProps struct {
	FieldProps
	// Type defaults to "text".
	Type        string
	Value       string
	Placeholder string
	// StartIcon and EndIcon are rendered inside the field.
	StartIcon g.Node
	EndIcon   g.Node
}

// Input renders a labelled text field.
func Input(p InputProps) g.Node {
	typ := p.Type
	if typ == "" {
		typ = "text"
	}
	pad := ""
	if p.StartIcon != nil {
		pad += " pl-10"
	}
	if p.EndIcon != nil {
		pad += " pr-10"
	}
	field := html.Input(
		html.Type(typ),
		html.Class(cx(fieldBase, p.borderClass(), p.widthClass(), pad, p.Class)),
		p.common(),
		g.If(p.Value != "", html.Value(p.Value)),
		g.If(p.Placeholder != "", html.Placeholder(p.Placeholder)),
	)
	if p.StartIcon == nil && p.EndIcon == nil {
		return p.wrap(field)
	}
	return p.wrap(html.Div(
		html.Class("relative"),
		g.If(p.StartIcon != nil, html.Span(html.Class("absolute inset-y-0 left-0 pl-3 flex items-center text-gray-400"), p.StartIcon)),
		field,
		g.If(p.EndIcon != nil, html.Span(html.Class("absolute inset-y-0 right-0 pr-3 flex items-center text-gray-400"), p.EndIcon)),
	))
}

// SelectOption is one choice of a Select.
type SelectOption struct {
	Value    string
	Label    string
	Disabled bool
}

// SelectProps configures a Select.
type SelectProps struct {
	FieldProps
	Options []SelectOption
	// Selected is the value of the chosen option.
	Selected string
	// Placeholder renders a disabled first option when set.
	Placeholder string
}

// Select renders a labelled drop-down list.
func Select(p SelectProps) g.Node {
	return p.wrap(html.Select(
		html.Class(cx(fieldBase, "bg-white", p.borderClass(), p.widthClass(), p.Class)),
		p.common(),
		g.If(p.Placeholder != "", html.Option(html.Value(""), html.Disabled(), g.If(p.Selected == "", html.Selected()), g.Text(p.Placeholder))),
		g.Map(p.Options, func(o SelectOption) g.Node {
			return html.Option(
				html.Value(o.Value),
				g.If(o.Disabled, html.Disabled()),
				g.If(o.Value == p.Selected, html.Selected()),
				g.Text(o.Label),
			)
		}),
	))
}

// TextareaProps configures a Textarea.
type TextareaProps struct {
	FieldProps
	Value       string
	Placeholder string
	// Rows defaults to 4.
	Rows int
	// Resize is one of "none", "vertical", "horizontal", "both".
	// Default "vertical".
	Resize string
}

var textareaResize = map[string]string{
	"none":       "resize-none",
	"vertical":   "resize-y",
	"horizontal": "resize-x",
	"both":       "resize",
}

// Textarea renders a labelled multi-line field.
func Textarea(p TextareaProps) g.Node {
	rows := p.Rows
	if rows <= 0 {
		rows = 4
	}
	return p.wrap(html.Textarea(
		html.Class(cx("block w-full text-sm shadow-sm", fieldBase, p.borderClass(), orKey(textareaResize, p.Resize, "vertical"), p.Class)),
		p.common(),
		html.Rows(strconv.Itoa(rows)),
		g.If(p.Placeholder != "", html.Placeholder(p.Placeholder)),
		g.Text(p.Value),
	))
}

// CheckboxProps configures a Checkbox.
type CheckboxProps struct {
	FieldProps
	Description string
	Checked     bool
	// Switch renders a toggle switch instead of a box. Default false.
	Switch bool
}

// Checkbox renders a checkbox, or a switch, with its label.
func Checkbox(p CheckboxProps) g.Node {
	input := html.Input(
		html.Type("checkbox"),
		p.common(),
		g.If(p.Checked, html.Checked()),
		html.Class(cx("h-4 w-4 mt-0.5 text-blue-600 rounded focus:ring-blue-500", p.borderClass())),
	)
	if p.Switch {
		track := "bg-gray-200"
		knob := "translate-x-1"
		if p.Checked {
			track = "bg-blue-600"
			knob = "translate-x-6"
		}
		input = html.Label(
			html.Class(cx("relative inline-flex h-6 w-11 items-center rounded-full transition-colors", track)),
			html.Input(html.Type("checkbox"), html.Class("sr-only"), p.common(), g.If(p.Checked, html.Checked())),
			html.Span(html.Class(cx("inline-block h-4 w-4 transform rounded-full bg-white transition-transform", knob))),
		)
	}
	return html.Div(
		html.Class(cx("flex items-start gap-3", p.Class)),
		input,
		g.If(p.Label != "" || p.Description != "", html.Div(
			g.If(p.Label != "", html.Label(g.If(p.ID != "", html.For(p.ID)), html.Class("text-sm font-medium text-gray-700"), g.Text(p.Label))),
			g.If(p.Description != "", html.P(html.Class("text-sm text-gray-500"), g.Text(p.Description))),
			g.If(p.Error != "", html.P(html.Class("text-sm text-red-600"), g.Text(p.Error))),
		)),
	)
}

// RadioProps configures a Radio.
type RadioProps struct {
	FieldProps
	Value   string
	Checked bool
}

// Radio renders one radio button with its label.
func Radio(p RadioProps) g.Node {
	return html.Label(
		html.Class(cx("inline-flex items-center gap-2", p.Class)),
		html.Input(
			html.Type("radio"),
			p.common(),
			html.Value(p.Value),
			g.If(p.Checked, html.Checked()),
			html.Class("h-4 w-4 text-blue-600 border-gray-300 focus:ring-blue-500"),
		),
		html.Span(html.Class("text-sm text-gray-700"), g.Text(p.Label)),
	)
}
