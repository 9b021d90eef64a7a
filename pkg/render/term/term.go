// Package term renders documents as ANSI-styled text for previewing a bar
// line in a terminal.
//
// Each text run is styled on its own with the colors active at that point,
// so nesting never leaks. Colors are "#RRGGBB" or an ANSI color number and
// are downsampled to the renderer's profile; anything else renders
// uncolored. Escape sequences embedded in PlainText are stripped, RawText keeps
// them and is only wrapped in the active colors. Alignment, separators and click actions have no terminal
// form and render their child only.
package term

import (
	"os"
	"strings"

	"github.com/arthur-debert/barfmt/pkg/errors"
	"github.com/arthur-debert/barfmt/pkg/format"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Renderer produces ANSI text for a fixed color profile.
type Renderer struct {
	profile termenv.Profile
}

// New returns a renderer for profile
func New(profile termenv.Profile) Renderer {
	return Renderer{profile: profile}
}

// Profile returns the color profile used by the renderer
func (r Renderer) Profile() termenv.Profile {
	return r.profile
}

type style struct {
	fg string
	bg string
}

// Render converts f to styled terminal text
func (r Renderer) Render(f format.Format) string {
	var b strings.Builder
	r.write(&b, f, style{})
	return b.String()
}

func (r Renderer) write(b *strings.Builder, f format.Format, ctx style) {
	switch v := f.(type) {
	case format.PlainText:
		b.WriteString(r.styled(ansi.Strip(v.Text), ctx))
	case format.RawText:
		b.WriteString(r.styled(v.Text, ctx))
	case format.Sequence:
		for _, child := range v.Children {
			r.write(b, child, ctx)
		}
	case format.Aligned:
		r.write(b, v.Child, ctx)
	case format.Foreground:
		ctx.fg = v.Color
		r.write(b, v.Child, ctx)
	case format.Background:
		ctx.bg = v.Color
		r.write(b, v.Child, ctx)
	case format.Unseparated:
		r.write(b, v.Child, ctx)
	case format.Padded:
		if v.Count > 0 {
			b.WriteString(r.styled(strings.Repeat(" ", int(v.Count)), ctx))
		}
		r.write(b, v.Child, ctx)
	case format.Actionable:
		r.write(b, v.Child, ctx)
	}
}

func (r Renderer) styled(text string, ctx style) string {
	if text == "" {
		return ""
	}
	s := r.profile.String(text)
	if c := r.color(ctx.fg); c != nil {
		s = s.Foreground(c)
	}
	if c := r.color(ctx.bg); c != nil {
		s = s.Background(c)
	}
	return s.String()
}

func (r Renderer) color(spec string) termenv.Color {
	c := r.profile.Color(spec)
	if c == nil || c.Sequence(false) == "" {
		return nil
	}
	return c
}

// ParseProfile parses a color profile name. "auto" detects the profile of
// out, see DetectProfile.
func ParseProfile(name string, out *os.File) (termenv.Profile, error) {
	switch strings.ToLower(name) {
	case "", "auto":
		return DetectProfile(out), nil
	case "ascii", "none":
		return termenv.Ascii, nil
	case "ansi":
		return termenv.ANSI, nil
	case "ansi256", "256":
		return termenv.ANSI256, nil
	case "truecolor", "24bit":
		return termenv.TrueColor, nil
	default:
		return termenv.Ascii, errors.Newf(errors.ErrInvalidInput, "unknown color profile: %s", name)
	}
}

// DetectProfile returns the color profile of out, or Ascii when out is not
// a terminal or NO_COLOR is set.
func DetectProfile(out *os.File) termenv.Profile {
	if out == nil || os.Getenv("NO_COLOR") != "" {
		return termenv.Ascii
	}
	if !isatty.IsTerminal(out.Fd()) && !isatty.IsCygwinTerminal(out.Fd()) {
		return termenv.Ascii
	}
	return termenv.NewOutput(out).EnvColorProfile()
}
