// Package i3bar renders documents as i3bar protocol status blocks.
//
// i3bar cannot nest styles inside a block, so the document is flattened into
// one block per text leaf or padding span. The walk carries the active style
// (colors, alignment, separator suppression, click chain) down the tree and
// stamps it on every block it emits.
//
// Blocks enable pango markup. PlainText is entity-escaped for it; RawText is
// left alone so a widget can emit pango tags. JSON escaping is applied to
// both by the encoder.
//
// Clickable blocks get an instance id. Clicks returns the table mapping each
// id to the chain of actions around the block, innermost first, so a host
// can resolve a click event without re-rendering.
package i3bar

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/arthur-debert/barfmt/pkg/errors"
	"github.com/arthur-debert/barfmt/pkg/format"
	"github.com/arthur-debert/barfmt/pkg/render/pango"
)

// DefaultName is the block name used when none is configured.
const DefaultName = "barfmt"

// MarkupPango is the only markup value barfmt emits.
const MarkupPango = "pango"

// Block is one status block of the i3bar protocol.
type Block struct {
	FullText            string `json:"full_text"`
	Color               string `json:"color,omitempty"`
	Background          string `json:"background,omitempty"`
	Align               string `json:"align,omitempty"`
	Name                string `json:"name,omitempty"`
	Instance            string `json:"instance,omitempty"`
	Separator           *bool  `json:"separator,omitempty"`
	SeparatorBlockWidth *int   `json:"separator_block_width,omitempty"`
	Markup              string `json:"markup,omitempty"`
}

// ClickTable maps a block instance id to the actions that apply to it,
// innermost first.
type ClickTable map[string][]format.Invoke

// Renderer produces i3bar JSON. Use New; the zero value leaves blocks unnamed.
type Renderer struct {
	name string
}

// New returns an i3bar renderer stamping name on every block. An empty
// name selects DefaultName.
func New(name string) Renderer {
	if name == "" {
		name = DefaultName
	}
	return Renderer{name: name}
}

// Name returns the block name stamped by the renderer
func (r Renderer) Name() string {
	return r.name
}

// Render converts f to a JSON array of blocks
func (r Renderer) Render(f format.Format) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(r.Blocks(f)); err != nil {
		panic(errors.Wrap(err, errors.ErrInternal, "failed to encode i3bar blocks"))
	}
	return strings.TrimSuffix(buf.String(), "\n")
}

// Blocks flattens f into blocks. The result is never nil.
func (r Renderer) Blocks(f format.Format) []Block {
	acc := &layout{blocks: []Block{}, clicks: ClickTable{}}
	r.flatten(f, style{}, acc)
	return acc.blocks
}

// Clicks returns the click table for f. Ids match those stamped by Render
// and Blocks for the same document.
func (r Renderer) Clicks(f format.Format) ClickTable {
	acc := &layout{blocks: []Block{}, clicks: ClickTable{}}
	r.flatten(f, style{}, acc)
	return acc.clicks
}

// style is the inherited state of a subtree.
type style struct {
	fg          string
	bg          string
	align       string
	unseparated bool
	instance    string
	chain       []format.Invoke // innermost first
}

type layout struct {
	blocks []Block
	clicks ClickTable
	nextID int
}

func (r Renderer) flatten(f format.Format, ctx style, acc *layout) {
	switch v := f.(type) {
	case format.PlainText:
		acc.blocks = append(acc.blocks, r.block(pango.Escape(v.Text), ctx))
	case format.RawText:
		acc.blocks = append(acc.blocks, r.block(v.Text, ctx))
	case format.Sequence:
		for _, child := range v.Children {
			r.flatten(child, ctx, acc)
		}
	case format.Aligned:
		ctx.align = v.Alignment.String()
		r.flatten(v.Child, ctx, acc)
	case format.Foreground:
		ctx.fg = v.Color
		r.flatten(v.Child, ctx, acc)
	case format.Background:
		ctx.bg = v.Color
		r.flatten(v.Child, ctx, acc)
	case format.Unseparated:
		ctx.unseparated = true
		r.flatten(v.Child, ctx, acc)
	case format.Padded:
		if v.Count > 0 {
			acc.blocks = append(acc.blocks, r.block(strings.Repeat(" ", int(v.Count)), ctx))
		}
		r.flatten(v.Child, ctx, acc)
	case format.Actionable:
		invoke, ok := v.Action.(format.Invoke)
		if !ok {
			r.flatten(v.Child, ctx, acc)
			return
		}
		chain := make([]format.Invoke, 0, len(ctx.chain)+1)
		chain = append(chain, invoke)
		chain = append(chain, ctx.chain...)

		ctx.instance = fmt.Sprintf("click-%d", acc.nextID)
		ctx.chain = chain
		acc.nextID++
		acc.clicks[ctx.instance] = chain
		r.flatten(v.Child, ctx, acc)
	}
}

func (r Renderer) block(text string, ctx style) Block {
	b := Block{
		FullText:   text,
		Color:      ctx.fg,
		Background: ctx.bg,
		Align:      ctx.align,
		Name:       r.name,
		Instance:   ctx.instance,
		Markup:     MarkupPango,
	}
	if ctx.unseparated {
		separator := false
		width := 0
		b.Separator = &separator
		b.SeparatorBlockWidth = &width
	}
	return b
}
