// Package render defines the Renderer contract shared by every bar backend
// and selects a backend by name.
//
// A Renderer is a pure function of the document: it keeps no state between
// calls, performs no I/O and is safe for concurrent use. Every backend
// accepts every document; styling a backend cannot express is dropped and
// the content rendered as-is.
package render

import (
	"fmt"
	"os"
	"strings"

	"github.com/arthur-debert/barfmt/pkg/errors"
	"github.com/arthur-debert/barfmt/pkg/format"
	"github.com/arthur-debert/barfmt/pkg/render/dzen2"
	"github.com/arthur-debert/barfmt/pkg/render/i3bar"
	"github.com/arthur-debert/barfmt/pkg/render/lemonbar"
	"github.com/arthur-debert/barfmt/pkg/render/pango"
	"github.com/arthur-debert/barfmt/pkg/render/term"
)

// Renderer converts a document into the markup of one bar host.
type Renderer interface {
	Render(f format.Format) string
}

var (
	_ Renderer = pango.Renderer{}
	_ Renderer = dzen2.Renderer{}
	_ Renderer = lemonbar.Renderer{}
	_ Renderer = i3bar.Renderer{}
	_ Renderer = term.Renderer{}
)

// Backend identifies a target markup dialect
type Backend int

const (
	// BackendPango renders pango markup for awesome
	BackendPango Backend = iota
	// BackendDzen2 renders dzen2 ^-commands
	BackendDzen2
	// BackendLemonbar renders lemonbar %{} tags
	BackendLemonbar
	// BackendI3bar renders i3bar JSON blocks
	BackendI3bar
	// BackendTerm renders ANSI text for a terminal preview
	BackendTerm
)

// Backends returns every backend in a stable order
func Backends() []Backend {
	return []Backend{BackendPango, BackendDzen2, BackendLemonbar, BackendI3bar, BackendTerm}
}

// String returns the canonical name of the backend
func (b Backend) String() string {
	switch b {
	case BackendPango:
		return "awesome"
	case BackendDzen2:
		return "dzen2"
	case BackendLemonbar:
		return "lemonbar"
	case BackendI3bar:
		return "i3bar"
	case BackendTerm:
		return "term"
	default:
		return "unknown"
	}
}

// ParseBackend parses a backend name or alias
func ParseBackend(s string) (Backend, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "awesome", "pango", "xml":
		return BackendPango, nil
	case "dzen2", "dzen":
		return BackendDzen2, nil
	case "lemonbar", "lemon", "bar":
		return BackendLemonbar, nil
	case "i3bar", "i3", "swaybar", "json":
		return BackendI3bar, nil
	case "term", "terminal", "ansi":
		return BackendTerm, nil
	default:
		return BackendPango, errors.Newf(errors.ErrUnknownBackend, "unknown backend: %s", s).
			WithDetail("backend", s)
	}
}

// Options tunes backend construction
type Options struct {
	// BlockName is the i3bar block name; empty selects i3bar.DefaultName
	BlockName string
	// TermProfile is the term color profile name ("auto" detects from TermOutput)
	TermProfile string
	// TermOutput is consulted when TermProfile is "auto"; defaults to stdout
	TermOutput *os.File
}

// New creates the renderer for backend
func New(backend Backend, opts Options) (Renderer, error) {
	switch backend {
	case BackendPango:
		return pango.New(), nil
	case BackendDzen2:
		return dzen2.New(), nil
	case BackendLemonbar:
		return lemonbar.New(), nil
	case BackendI3bar:
		return i3bar.New(opts.BlockName), nil
	case BackendTerm:
		out := opts.TermOutput
		if out == nil {
			out = os.Stdout
		}
		profile, err := term.ParseProfile(opts.TermProfile, out)
		if err != nil {
			return nil, err
		}
		return term.New(profile), nil
	default:
		return nil, errors.New(errors.ErrUnknownBackend, fmt.Sprintf("unknown backend: %v", int(backend)))
	}
}

// Features describes which styling a backend expresses natively. Anything
// not listed renders as its child.
type Features struct {
	Escaping   string
	Alignment  bool
	Separators bool
	Clicks     bool
	Colors     bool
}

// FeaturesOf reports the native features of backend
func FeaturesOf(backend Backend) Features {
	switch backend {
	case BackendPango:
		return Features{Escaping: "xml entities", Colors: true}
	case BackendDzen2:
		return Features{Escaping: "^ doubled", Colors: true, Clicks: true}
	case BackendLemonbar:
		return Features{Escaping: "% doubled", Colors: true, Clicks: true, Alignment: true}
	case BackendI3bar:
		return Features{Escaping: "pango entities + json", Colors: true, Clicks: true, Alignment: true, Separators: true}
	case BackendTerm:
		return Features{Escaping: "escape sequences stripped", Colors: true}
	default:
		return Features{}
	}
}
