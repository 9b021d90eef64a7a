// Package pango renders documents as pango markup for bars such as awesome.
//
// The output is an XML fragment rooted at <markup>. Every text leaf lives in
// its own <span>, and colors are <span foreground="..."> or
// <span background="..."> elements around the child. Text nodes are always
// entity-escaped by the XML writer, so PlainText and RawText render the same
// way here: the Plain/Raw distinction only matters to dialects whose control
// syntax is not XML.
//
// Pango markup has no alignment, separator or click-region primitive.
// Aligned, Unseparated and Actionable therefore render their child only.
package pango

import (
	"strings"

	"github.com/arthur-debert/barfmt/pkg/errors"
	"github.com/arthur-debert/barfmt/pkg/format"
	"github.com/beevik/etree"
)

// Renderer produces pango markup. The zero value is ready to use.
type Renderer struct{}

// New returns a pango renderer
func New() Renderer {
	return Renderer{}
}

// Render converts f into a <markup> fragment
func (Renderer) Render(f format.Format) string {
	doc := etree.NewDocument()
	doc.WriteSettings.CanonicalEndTags = true

	root := doc.CreateElement("markup")
	span(root, f)

	out, err := doc.WriteToString()
	if err != nil {
		panic(errors.Wrap(err, errors.ErrInternal, "failed to write pango markup"))
	}
	return out
}

func span(parent *etree.Element, f format.Format) {
	switch v := f.(type) {
	case format.PlainText:
		textSpan(parent, v.Text)
	case format.RawText:
		textSpan(parent, v.Text)
	case format.Sequence:
		for _, child := range v.Children {
			span(parent, child)
		}
	case format.Aligned:
		// no alignment in pango markup
		span(parent, v.Child)
	case format.Foreground:
		el := parent.CreateElement("span")
		el.CreateAttr("foreground", v.Color)
		span(el, v.Child)
	case format.Background:
		el := parent.CreateElement("span")
		el.CreateAttr("background", v.Color)
		span(el, v.Child)
	case format.Unseparated:
		span(parent, v.Child)
	case format.Padded:
		if v.Count > 0 {
			textSpan(parent, strings.Repeat(" ", int(v.Count)))
		}
		span(parent, v.Child)
	case format.Actionable:
		span(parent, v.Child)
	}
}

func textSpan(parent *etree.Element, text string) {
	el := parent.CreateElement("span")
	el.SetText(text)
}

var textEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

// Escape entity-escapes text for use as a pango text node outside of a
// full document, e.g. inside an i3bar block with pango markup enabled.
func Escape(text string) string {
	return textEscaper.Replace(text)
}
