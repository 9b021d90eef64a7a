package term_test

import (
	"os"
	"testing"

	"github.com/arthur-debert/barfmt/pkg/errors"
	"github.com/arthur-debert/barfmt/pkg/format"
	"github.com/arthur-debert/barfmt/pkg/render/term"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	green = "\x1b[38;2;0;255;0m"
	red   = "\x1b[38;2;255;0;0m"
	reset = "\x1b[0m"
)

func TestRenderTrueColor(t *testing.T) {
	tests := []struct {
		name     string
		doc      format.Format
		expected string
	}{
		{"str", format.Str("Test & Thing"), "Test & Thing"},
		{"str strips escapes", format.Str("\x1b[31mred\x1b[0m"), "red"},
		{"unescaped str passes through", format.UnescapedStr("\x1b[1mbold\x1b[0m"), "\x1b[1mbold\x1b[0m"},
		{"unescaped str keeps colors", format.FgColor("#00FF00", format.UnescapedStr("raw")), green + "raw" + reset},
		{"concat", format.Concat(format.Str("One"), format.Str("Two")), "OneTwo"},
		{"align is ignored", format.Align(format.AlignCenter, format.Str("Center")), "Center"},
		{"fg color", format.FgColor("#00FF00", format.Str("Green")), green + "Green" + reset},
		{"bg color", format.BgColor("#00FF00", format.Str("G")), "\x1b[48;2;0;255;0mG" + reset},
		{"named color degrades", format.FgColor("green", format.Str("Green")), "Green"},
		{"no separator", format.NoSeparator(format.Str("Test")), "Test"},
		{"padding", format.Padding(3, format.Str("Test")), "   Test"},
		{"zero padding", format.Padding(0, format.Str("Test")), "Test"},
		{
			"clickable",
			format.Clickable(format.ShellCommand(format.ButtonLeft, "echo hi"), format.Str("Test")),
			"Test",
		},
		{"nil", nil, ""},
	}

	r := term.New(termenv.TrueColor)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, r.Render(tt.doc))
		})
	}
}

func TestRenderNestedColorsRestoreAmbient(t *testing.T) {
	doc := format.FgColor("#FF0000", format.Concat(
		format.FgColor("#00FF00", format.Str("a")),
		format.Str("b"),
	))
	assert.Equal(t, green+"a"+reset+red+"b"+reset, term.New(termenv.TrueColor).Render(doc))
}

func TestRenderAsciiDropsColor(t *testing.T) {
	doc := format.FgColor("#FF0000", format.BgColor("#000000", format.Padding(1, format.Str("x"))))
	assert.Equal(t, " x", term.New(termenv.Ascii).Render(doc))
}

func TestParseProfile(t *testing.T) {
	tests := []struct {
		input    string
		expected termenv.Profile
	}{
		{"ascii", termenv.Ascii},
		{"ANSI", termenv.ANSI},
		{"ansi256", termenv.ANSI256},
		{"truecolor", termenv.TrueColor},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := term.ParseProfile(tt.input, nil)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}

	_, err := term.ParseProfile("sepia", nil)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestDetectProfileWithoutTerminal(t *testing.T) {
	assert.Equal(t, termenv.Ascii, term.DetectProfile(nil))

	f, err := os.CreateTemp(t.TempDir(), "out")
	require.NoError(t, err)
	defer func() { _ = f.Close() }()
	assert.Equal(t, termenv.Ascii, term.DetectProfile(f))
}
