package format

// Walk calls fn for f and then, depth first and in order, for every node
// below it. Returning false from fn skips the node's children.
func Walk(f Format, fn func(Format) bool) {
	if f == nil || !fn(f) {
		return
	}
	for _, child := range Children(f) {
		Walk(child, fn)
	}
}

// Children returns the direct children of f.
func Children(f Format) []Format {
	switch v := f.(type) {
	case Sequence:
		return v.Children
	case Aligned:
		return []Format{v.Child}
	case Foreground:
		return []Format{v.Child}
	case Background:
		return []Format{v.Child}
	case Unseparated:
		return []Format{v.Child}
	case Padded:
		return []Format{v.Child}
	case Actionable:
		return []Format{v.Child}
	default:
		return nil
	}
}

// Text returns the unstyled text content of f, padding included.
func Text(f Format) string {
	var out []byte
	Walk(f, func(n Format) bool {
		switch v := n.(type) {
		case PlainText:
			out = append(out, v.Text...)
		case RawText:
			out = append(out, v.Text...)
		case Padded:
			for i := uint(0); i < v.Count; i++ {
				out = append(out, ' ')
			}
		}
		return true
	})
	return string(out)
}
