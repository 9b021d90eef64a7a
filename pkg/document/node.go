package document

import (
	"fmt"

	"github.com/arthur-debert/barfmt/pkg/errors"
	"github.com/arthur-debert/barfmt/pkg/format"
)

// Node is the file representation of a document node.
type Node struct {
	Str    *string `yaml:"str,omitempty" toml:"str,omitempty"`
	Raw    *string `yaml:"raw,omitempty" toml:"raw,omitempty"`
	Concat []Node  `yaml:"concat,omitempty" toml:"concat,omitempty"`
	Child  *Node   `yaml:"child,omitempty" toml:"child,omitempty"`

	Align       string `yaml:"align,omitempty" toml:"align,omitempty"`
	Fg          string `yaml:"fg,omitempty" toml:"fg,omitempty"`
	Bg          string `yaml:"bg,omitempty" toml:"bg,omitempty"`
	NoSeparator bool   `yaml:"no_separator,omitempty" toml:"no_separator,omitempty"`
	Pad         *int   `yaml:"pad,omitempty" toml:"pad,omitempty"`
	Click       *Click `yaml:"click,omitempty" toml:"click,omitempty"`
}

// Click is the file representation of a click action.
type Click struct {
	Button  string `yaml:"button" toml:"button"`
	Command string `yaml:"command" toml:"command"`
}

// Build converts the node tree into a document
func (n Node) Build() (format.Format, error) {
	return n.build("$")
}

func (n Node) build(path string) (format.Format, error) {
	content, err := n.content(path)
	if err != nil {
		return nil, err
	}

	f := content
	if n.Pad != nil {
		if f, err = format.NewPadding(*n.Pad, f); err != nil {
			return nil, invalid(path, "pad", err)
		}
	}
	if n.Fg != "" {
		f = format.FgColor(n.Fg, f)
	}
	if n.Bg != "" {
		f = format.BgColor(n.Bg, f)
	}
	if n.Align != "" {
		alignment, err := format.ParseAlignment(n.Align)
		if err != nil {
			return nil, invalid(path, "align", err)
		}
		f = format.Align(alignment, f)
	}
	if n.NoSeparator {
		f = format.NoSeparator(f)
	}
	if n.Click != nil {
		action, err := n.Click.action()
		if err != nil {
			return nil, invalid(path, "click", err)
		}
		f = format.Clickable(action, f)
	}
	return f, nil
}

func (n Node) content(path string) (format.Format, error) {
	var keys []string
	if n.Str != nil {
		keys = append(keys, "str")
	}
	if n.Raw != nil {
		keys = append(keys, "raw")
	}
	if n.Concat != nil {
		keys = append(keys, "concat")
	}
	if n.Child != nil {
		keys = append(keys, "child")
	}

	switch len(keys) {
	case 0:
		return nil, errors.New(errors.ErrDocumentInvalid, "node has no content (str, raw, concat or child)").
			WithDetail("path", path)
	case 1:
	default:
		return nil, errors.Newf(errors.ErrDocumentInvalid, "node has %d content keys, want one", len(keys)).
			WithDetail("path", path).
			WithDetail("keys", keys)
	}

	switch {
	case n.Str != nil:
		return format.Str(*n.Str), nil
	case n.Raw != nil:
		return format.UnescapedStr(*n.Raw), nil
	case n.Child != nil:
		return n.Child.build(path + ".child")
	default:
		children := make([]format.Format, 0, len(n.Concat))
		for i, c := range n.Concat {
			child, err := c.build(fmt.Sprintf("%s.concat[%d]", path, i))
			if err != nil {
				return nil, err
			}
			children = append(children, child)
		}
		return format.Concat(children...), nil
	}
}

func (c Click) action() (format.ClickAction, error) {
	button := format.ButtonLeft
	if c.Button != "" {
		var err error
		if button, err = format.ParseMouseButton(c.Button); err != nil {
			return nil, err
		}
	}
	if c.Command == "" {
		return nil, errors.New(errors.ErrInvalidInput, "click command must not be empty")
	}
	return format.ShellCommand(button, c.Command), nil
}

func invalid(path, key string, err error) error {
	return errors.Wrapf(err, errors.ErrDocumentInvalid, "invalid %s", key).
		WithDetail("path", path).
		WithDetail("key", key)
}
