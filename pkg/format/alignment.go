package format

import (
	"strings"

	"github.com/arthur-debert/barfmt/pkg/errors"
)

// Alignment is a horizontal layout hint.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

// String returns the lower-case name of the alignment
func (a Alignment) String() string {
	switch a {
	case AlignLeft:
		return "left"
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	default:
		return "unknown"
	}
}

// ParseAlignment parses "left", "center" (or "centre") and "right"
func ParseAlignment(s string) (Alignment, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "left", "l":
		return AlignLeft, nil
	case "center", "centre", "c":
		return AlignCenter, nil
	case "right", "r":
		return AlignRight, nil
	default:
		return AlignLeft, errors.Newf(errors.ErrInvalidInput, "unknown alignment: %q", s)
	}
}
