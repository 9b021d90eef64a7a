// Package format defines the rich-text document that status-bar widgets
// produce on every refresh. A document is a tree of Format values built with
// the constructors in this package (Str, Concat, FgColor, ...). The tree is
// pure data: interpretation lives in the renderers under pkg/render.
package format
