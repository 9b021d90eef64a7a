package format

// Format is one node of a rich-text document. The set of node types is
// closed; only this package can implement it.
type Format interface {
	isFormat()
}

// PlainText is literal text. Renderers escape it against their own control
// syntax as well as their transport format.
type PlainText struct {
	Text string
}

// RawText is text carrying backend-native directives. Renderers leave the
// control syntax alone and only apply transport-level escaping.
type RawText struct {
	Text string
}

// Sequence concatenates its children in order, with nothing in between.
type Sequence struct {
	Children []Format
}

// Aligned is a layout hint for its child.
type Aligned struct {
	Alignment Alignment
	Child     Format
}

// Foreground overrides the text color within its child.
type Foreground struct {
	Color string
	Child Format
}

// Background overrides the background color within its child.
type Background struct {
	Color string
	Child Format
}

// Unseparated asks the host not to place its default block separator next
// to the child.
type Unseparated struct {
	Child Format
}

// Padded prepends Count spaces, as their own span, to the child.
type Padded struct {
	Count uint
	Child Format
}

// Actionable attaches a click action to the child.
type Actionable struct {
	Action ClickAction
	Child  Format
}

func (PlainText) isFormat()   {}
func (RawText) isFormat()     {}
func (Sequence) isFormat()    {}
func (Aligned) isFormat()     {}
func (Foreground) isFormat()  {}
func (Background) isFormat()  {}
func (Unseparated) isFormat() {}
func (Padded) isFormat()      {}
func (Actionable) isFormat()  {}
