package barfmt

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/barfmt/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points config and state lookups at a temp dir and keeps the log
// file off
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(dir, "state"))
	for _, key := range []string{"BARFMT_CONFIG", "BARFMT_BACKEND", "BARFMT_LOGGING__VERBOSITY"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
	t.Setenv("BARFMT_LOGGING__FILE", "false")
	xdg.Reload()
	t.Cleanup(xdg.Reload)
	return dir
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	rootCmd := NewRootCmd()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

const statusYAML = `
concat:
  - fg: "#FF0000"
    str: "50%"
  - str: " ^"
`

func TestRenderCommand(t *testing.T) {
	dir := isolate(t)
	doc := writeFile(t, dir, "status.yaml", statusYAML)

	tests := []struct {
		name     string
		backend  string
		expected string
	}{
		{"awesome", "awesome", `<markup><span foreground="#FF0000"><span>50%</span></span><span> ^</span></markup>`},
		{"dzen2", "dzen2", "^fg(#FF0000)50%^fg() ^^"},
		{"lemonbar", "lemonbar", "%{F#FF0000}50%%%{F-} ^"},
		{"i3bar", "i3bar", `[{"full_text":"50%","color":"#FF0000","name":"barfmt","markup":"pango"},{"full_text":" ^","name":"barfmt","markup":"pango"}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, "", "render", "--backend", tt.backend, doc)
			require.NoError(t, err)
			assert.Equal(t, tt.expected+"\n", out)
		})
	}
}

func TestRenderCommandStdinTOML(t *testing.T) {
	isolate(t)

	out, err := execute(t, "str = \"a&b\"\nfg = \"#00FF00\"\n", "render", "-b", "i3bar", "--name", "status", "--syntax", "toml")
	require.NoError(t, err)
	assert.Equal(t, `[{"full_text":"a&amp;b","color":"#00FF00","name":"status","markup":"pango"}]`+"\n", out)
}

func TestRenderCommandUsesConfiguredBackend(t *testing.T) {
	dir := isolate(t)
	cfg := writeFile(t, dir, "barfmt.toml", "backend = \"lemonbar\"\n")
	doc := writeFile(t, dir, "status.yaml", "align: right\nstr: clock\n")

	out, err := execute(t, "", "--config", cfg, "render", doc)
	require.NoError(t, err)
	assert.Equal(t, "%{r}clock%{l}\n", out)
}

func TestRenderCommandErrors(t *testing.T) {
	dir := isolate(t)
	doc := writeFile(t, dir, "status.yaml", statusYAML)
	bad := writeFile(t, dir, "bad.yaml", "str: a\nraw: b\n")

	tests := []struct {
		name string
		args []string
		code errors.ErrorCode
	}{
		{"unknown backend", []string{"render", "-b", "xmobar", doc}, errors.ErrUnknownBackend},
		{"missing document", []string{"render", filepath.Join(dir, "missing.yaml")}, errors.ErrDocumentRead},
		{"invalid document", []string{"render", bad}, errors.ErrDocumentInvalid},
		{"unknown syntax", []string{"render", "--syntax", "json"}, errors.ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, "", tt.args...)
			require.Error(t, err)
			assert.Equal(t, tt.code, errors.GetErrorCode(err))
		})
	}
}

const clickYAML = `
concat:
  - click: {button: left, command: "pavucontrol"}
    str: "vol"
  - click: {button: scroll-up, command: "vol up"}
    child:
      click: {button: left, command: "mute"}
      str: "50%"
`

func TestClickCommand(t *testing.T) {
	dir := isolate(t)
	doc := writeFile(t, dir, "status.yaml", clickYAML)

	t.Run("event argument", func(t *testing.T) {
		out, err := execute(t, "", "click", doc, `{"name":"barfmt","instance":"click-0","button":1}`)
		require.NoError(t, err)
		assert.Equal(t, "pavucontrol\n", out)
	})

	t.Run("outer action reached through inner block", func(t *testing.T) {
		out, err := execute(t, "", "click", doc, `{"name":"barfmt","instance":"click-2","button":4}`)
		require.NoError(t, err)
		assert.Equal(t, "vol up\n", out)
	})

	t.Run("unbound button", func(t *testing.T) {
		_, err := execute(t, "", "click", doc, `{"name":"barfmt","instance":"click-0","button":3}`)
		require.Error(t, err)
		assert.Equal(t, errors.ErrClickNotFound, errors.GetErrorCode(err))
	})

	t.Run("event stream", func(t *testing.T) {
		stream := strings.Join([]string{
			"[",
			`{"name":"barfmt","instance":"click-2","button":1}`,
			`,{"name":"barfmt","instance":"click-9","button":1}`,
			`,not json`,
			`,{"name":"barfmt","instance":"click-0","button":1}`,
			"",
		}, "\n")
		out, err := execute(t, stream, "click", doc)
		require.NoError(t, err)
		assert.Equal(t, "mute\npavucontrol\n", out)
	})
}

func TestBackendsCommand(t *testing.T) {
	isolate(t)

	out, err := execute(t, "", "backends")
	require.NoError(t, err)
	for _, name := range []string{"awesome", "dzen2", "lemonbar", "i3bar", "term"} {
		assert.Contains(t, out, name)
	}
	assert.Contains(t, out, "Separators")
}

func TestVersionCommand(t *testing.T) {
	isolate(t)

	out, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.Contains(t, out, "barfmt version dev")
}

func TestTopicsCommand(t *testing.T) {
	isolate(t)

	out, err := execute(t, "", "topics")
	require.NoError(t, err)
	assert.Contains(t, out, "document-format")
	assert.Contains(t, out, "backends")

	out, err = execute(t, "", "topics", "document-format")
	require.NoError(t, err)
	assert.Contains(t, out, "no_separator")
}

func TestNoCommand(t *testing.T) {
	isolate(t)

	_, err := execute(t, "")
	assert.Error(t, err)
}

func TestCompletionCommand(t *testing.T) {
	isolate(t)

	out, err := execute(t, "", "completion", "bash")
	require.NoError(t, err)
	assert.Contains(t, out, "barfmt")
}
