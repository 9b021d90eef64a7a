// Package dzen2 renders documents in dzen2's in-text command syntax.
//
// Colors use ^fg(color)/^bg(color). dzen2 has no color stack: an empty
// ^fg() resets to the bar default, so after a colored child the renderer
// re-emits the enclosing color, or the reset when there is none. Click
// regions use ^ca(button,command)...^ca(). Literal '^' in PlainText is
// doubled.
//
// Alignment is a property of the whole dzen2 window (-ta); the ^p(_LEFT)
// family only moves the cursor. Aligned renders its child unchanged, as does
// Unseparated.
package dzen2

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/barfmt/pkg/format"
)

// Renderer produces dzen2 markup. The zero value is ready to use.
type Renderer struct{}

// New returns a dzen2 renderer
func New() Renderer {
	return Renderer{}
}

type style struct {
	fg string
	bg string
}

// Render converts f to a dzen2 status line
func (Renderer) Render(f format.Format) string {
	var b strings.Builder
	write(&b, f, style{})
	return b.String()
}

// Escape doubles every '^' so dzen2 prints it literally.
func Escape(text string) string {
	return strings.ReplaceAll(text, "^", "^^")
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
		write(b, v.Child, ctx)
	case format.Foreground:
		fmt.Fprintf(b, "^fg(%s)", v.Color)
		inner := ctx
		inner.fg = v.Color
		write(b, v.Child, inner)
		fmt.Fprintf(b, "^fg(%s)", ctx.fg)
	case format.Background:
		fmt.Fprintf(b, "^bg(%s)", v.Color)
		inner := ctx
		inner.bg = v.Color
		write(b, v.Child, inner)
		fmt.Fprintf(b, "^bg(%s)", ctx.bg)
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
		fmt.Fprintf(b, "^ca(%d,%s)", int(invoke.Button), invoke.Command)
		write(b, v.Child, ctx)
		b.WriteString("^ca()")
	}
}

// encodable reports whether command survives ^ca(): dzen2 ends the command
// at the first ')' and has no way to escape it.
func encodable(command string) bool {
	return command != "" && !strings.ContainsRune(command, ')')
}
