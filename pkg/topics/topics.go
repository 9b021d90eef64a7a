// Package topics provides markdown help topics for the barfmt CLI. Topics
// are read from an fs.FS (the embedded content directory by default) and
// served by a "topics" command.
package topics

import (
	"embed"
	"fmt"
	"io"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/spf13/cobra"
)

//go:embed content/*.md
var embedded embed.FS

// Builtin returns the topics shipped with barfmt
func Builtin() fs.FS {
	sub, err := fs.Sub(embedded, "content")
	if err != nil {
		panic(err)
	}
	return sub
}

// Topic represents a help topic
type Topic struct {
	Name    string
	Path    string
	Content string
}

// Manager holds the topics of one CLI
type Manager struct {
	topics     map[string]*Topic
	extensions []string
	renderer   Renderer
}

// Options configures the Manager
type Options struct {
	// Extensions is the list of file extensions to consider as topics
	// Defaults to [".txt", ".md"] if not specified
	Extensions []string

	// Renderer for formatting topic content
	// Defaults to PlainRenderer if not specified
	Renderer Renderer
}

// Load scans fsys for topic files
func Load(fsys fs.FS, opts Options) (*Manager, error) {
	m := &Manager{
		topics:     make(map[string]*Topic),
		extensions: opts.Extensions,
		renderer:   opts.Renderer,
	}
	if len(m.extensions) == 0 {
		m.extensions = []string{".txt", ".md"}
	}
	if m.renderer == nil {
		m.renderer = &PlainRenderer{}
	}

	err := fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !m.supported(path.Ext(p)) {
			return nil
		}
		content, err := fs.ReadFile(fsys, p)
		if err != nil {
			return err
		}
		name := strings.TrimSuffix(path.Base(p), path.Ext(p))
		m.topics[name] = &Topic{Name: name, Path: p, Content: string(content)}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan topics: %w", err)
	}
	return m, nil
}

func (m *Manager) supported(ext string) bool {
	for _, valid := range m.extensions {
		if ext == valid {
			return true
		}
	}
	return false
}

// Get retrieves a topic by name
func (m *Manager) Get(name string) (*Topic, bool) {
	topic, ok := m.topics[strings.TrimSpace(name)]
	return topic, ok
}

// List returns all topic names, sorted
func (m *Manager) List() []string {
	names := make([]string, 0, len(m.topics))
	for name := range m.topics {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Render returns the rendered content of a topic
func (m *Manager) Render(topic *Topic) string {
	return m.renderer.Render(topic.Content, path.Ext(topic.Path))
}

// Write prints the topic list, or the named topic, to w
func (m *Manager) Write(w io.Writer, name, program string) error {
	if name == "" {
		names := m.List()
		if len(names) == 0 {
			_, err := fmt.Fprintln(w, "No help topics available.")
			return err
		}
		fmt.Fprintln(w, "Available help topics:")
		for _, n := range names {
			fmt.Fprintf(w, "  %s\n", n)
		}
		_, err := fmt.Fprintf(w, "\nUse '%s topics <topic>' to read about a specific topic.\n", program)
		return err
	}

	topic, ok := m.Get(name)
	if !ok {
		return fmt.Errorf("unknown topic %q", name)
	}
	_, err := fmt.Fprint(w, m.Render(topic))
	return err
}

// Command returns a "topics [name]" command backed by m
func (m *Manager) Command() *cobra.Command {
	return &cobra.Command{
		Use:   "topics [topic]",
		Short: "Display help topics",
		Args:  cobra.MaximumNArgs(1),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			return m.List(), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			name := ""
			if len(args) > 0 {
				name = args[0]
			}
			return m.Write(cmd.OutOrStdout(), name, cmd.Root().Name())
		},
	}
}
