package topics_test

import (
	"bytes"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/arthur-debert/barfmt/pkg/topics"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	fsys := fstest.MapFS{
		"dry-run.txt":     {Data: []byte("Information about dry-run mode")},
		"architecture.md": {Data: []byte("# Architecture\n\nDetails")},
		"config.txxt":     {Data: []byte("Configuration Guide")},
		"nested/deep.md":  {Data: []byte("deep")},
	}

	t.Run("default extensions", func(t *testing.T) {
		m, err := topics.Load(fsys, topics.Options{})
		require.NoError(t, err)
		assert.Equal(t, []string{"architecture", "deep", "dry-run"}, m.List())

		topic, ok := m.Get("architecture")
		require.True(t, ok)
		assert.Equal(t, "# Architecture\n\nDetails", topic.Content)

		_, ok = m.Get("config")
		assert.False(t, ok)
	})

	t.Run("custom extensions", func(t *testing.T) {
		m, err := topics.Load(fsys, topics.Options{Extensions: []string{".txxt"}})
		require.NoError(t, err)
		assert.Equal(t, []string{"config"}, m.List())
	})
}

type upperRenderer struct{}

func (upperRenderer) Render(content, format string) string {
	return strings.ToUpper(content) + format
}

func TestWrite(t *testing.T) {
	fsys := fstest.MapFS{"intro.md": {Data: []byte("hello")}}
	m, err := topics.Load(fsys, topics.Options{Renderer: upperRenderer{}})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, m.Write(&buf, "", "barfmt"))
	assert.Contains(t, buf.String(), "  intro\n")
	assert.Contains(t, buf.String(), "barfmt topics <topic>")

	buf.Reset()
	require.NoError(t, m.Write(&buf, "intro", "barfmt"))
	assert.Equal(t, "HELLO.md", buf.String())

	assert.Error(t, m.Write(&buf, "missing", "barfmt"))
}

func TestBuiltin(t *testing.T) {
	m, err := topics.Load(topics.Builtin(), topics.Options{})
	require.NoError(t, err)
	assert.Equal(t, []string{"backends", "document-format"}, m.List())
}

func TestCommand(t *testing.T) {
	m, err := topics.Load(topics.Builtin(), topics.Options{})
	require.NoError(t, err)

	root := &cobra.Command{Use: "barfmt"}
	root.AddCommand(m.Command())

	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetArgs([]string{"topics", "backends"})
	require.NoError(t, root.Execute())
	assert.Contains(t, buf.String(), "# Backends")
}

func TestPlainAndGlamourRenderers(t *testing.T) {
	plain := &topics.PlainRenderer{}
	assert.Equal(t, "# x", plain.Render("# x", ".md"))

	g := &topics.GlamourRenderer{Style: "notty", Width: 40}
	assert.Equal(t, "plain text", g.Render("plain text", ".txt"))
	assert.Contains(t, g.Render("# Title\n\nbody", ".md"), "Title")
}
