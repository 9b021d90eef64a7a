package format

import (
	"github.com/arthur-debert/barfmt/pkg/errors"
)

// Str returns literal text that renderers escape.
func Str(text string) Format {
	return PlainText{Text: text}
}

// UnescapedStr returns text passed to the backend without control-syntax
// escaping.
func UnescapedStr(text string) Format {
	return RawText{Text: text}
}

// Concat joins children in order. Nil children are dropped.
func Concat(children ...Format) Format {
	kept := make([]Format, 0, len(children))
	for _, c := range children {
		if c != nil {
			kept = append(kept, c)
		}
	}
	return Sequence{Children: kept}
}

// Align wraps child in an alignment hint.
func Align(alignment Alignment, child Format) Format {
	return Aligned{Alignment: alignment, Child: orEmpty(child)}
}

// FgColor sets the text color of child.
func FgColor(color string, child Format) Format {
	return Foreground{Color: color, Child: orEmpty(child)}
}

// BgColor sets the background color of child.
func BgColor(color string, child Format) Format {
	return Background{Color: color, Child: orEmpty(child)}
}

// NoSeparator suppresses the host separator next to child.
func NoSeparator(child Format) Format {
	return Unseparated{Child: orEmpty(child)}
}

// Padding prepends count spaces to child.
func Padding(count uint, child Format) Format {
	return Padded{Count: count, Child: orEmpty(child)}
}

// NewPadding is Padding for a signed count, as read from a document file or
// computed by a widget. A negative count is rejected.
func NewPadding(count int, child Format) (Format, error) {
	if count < 0 {
		return nil, errors.Newf(errors.ErrInvalidInput, "padding count must not be negative, got %d", count).
			WithDetail("count", count)
	}
	return Padding(uint(count), child), nil
}

// Clickable attaches action to child.
func Clickable(action ClickAction, child Format) Format {
	return Actionable{Action: action, Child: orEmpty(child)}
}

// Empty is a document with no content.
func Empty() Format {
	return Sequence{}
}

func orEmpty(f Format) Format {
	if f == nil {
		return Empty()
	}
	return f
}
