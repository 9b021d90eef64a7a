// Package lemonbar renders documents in lemonbar's %{...} block-tag syntax.
//
// Supported tags: %{F<color>}/%{F-} and %{B<color>}/%{B-} for colors,
// %{l} %{c} %{r} for alignment and %{A<button>:<command>:}...%{A} for click
// regions. lemonbar has no color stack, so the enclosing color (or the reset)
// is re-emitted after a colored child. The enclosing alignment tag, or %{l}
// at top level, is likewise re-emitted after an aligned child. Literal '%' in
// PlainText is doubled and ':' inside a click command is written as "\:". A
// command containing '}' cannot be written inside a tag, so its child renders
// without a click region.
//
// lemonbar has no separator concept; Unseparated renders its child unchanged.
package lemonbar

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/barfmt/pkg/format"
)

// Renderer produces lemonbar markup. The zero value is ready to use.
type Renderer struct{}

// New returns a lemonbar renderer
func New() Renderer {
	return Renderer{}
}

type style struct {
	fg    string
	bg    string
	align *format.Alignment
}

// Render converts f to a lemonbar input line
func (Renderer) Render(f format.Format) string {
	var b strings.Builder
	write(&b, f, style{})
	return b.String()
}

// Escape doubles every '%' so lemonbar prints it literally.
func Escape(text string) string {
	return strings.ReplaceAll(text, "%", "%%")
}

func write(b *strings.Builder, f format.Format, ctx style) {
	switch v := f.(type) {
	case format.PlainText:
		b.WriteString(Escape(v.Text))
	case format.RawText:
		b.WriteString(v.Text)
	case format.Sequence:
		for _, child := range v.Children {
			write(b, child, ctx)
		}
	case format.Aligned:
		b.WriteString(alignTag(v.Alignment))
		inner := ctx
		inner.align = &v.Alignment
		write(b, v.Child, inner)
		if ctx.align != nil {
			b.WriteString(alignTag(*ctx.align))
		} else {
			b.WriteString(alignTag(format.AlignLeft))
		}
	case format.Foreground:
		fmt.Fprintf(b, "%%{F%s}", v.Color)
		inner := ctx
		inner.fg = v.Color
		write(b, v.Child, inner)
		fmt.Fprintf(b, "%%{F%s}", colorOrReset(ctx.fg))
	case format.Background:
		fmt.Fprintf(b, "%%{B%s}", v.Color)
		inner := ctx
		inner.bg = v.Color
		write(b, v.Child, inner)
		fmt.Fprintf(b, "%%{B%s}", colorOrReset(ctx.bg))
	case format.Unseparated:
		write(b, v.Child, ctx)
	case format.Padded:
		b.WriteString(strings.Repeat(" ", int(v.Count)))
		write(b, v.Child, ctx)
	case format.Actionable:
		invoke, ok := v.Action.(format.Invoke)
		if !ok || !encodable(invoke.Command) {
			write(b, v.Child, ctx)
			return
		}
		fmt.Fprintf(b, "%%{A%d:%s:}", int(invoke.Button), escapeCommand(invoke.Command))
		write(b, v.Child, ctx)
		b.WriteString("%{A}")
	}
}

// encodable reports whether command fits in an A block. lemonbar ends every
// %{} block at the first '}'.
func encodable(command string) bool {
	return command != "" && !strings.Contains(command, "}")
}

func alignTag(a format.Alignment) string {
	switch a {
	case format.AlignCenter:
		return "%{c}"
	case format.AlignRight:
		return "%{r}"
	default:
		return "%{l}"
	}
}

func colorOrReset(color string) string {
	if color == "" {
		return "-"
	}
	return color
}

func escapeCommand(command string) string {
	return strings.ReplaceAll(command, ":", `\:`)
}
