package render_test

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"

	"github.com/arthur-debert/barfmt/pkg/errors"
	"github.com/arthur-debert/barfmt/pkg/format"
	"github.com/arthur-debert/barfmt/pkg/render"
	"github.com/arthur-debert/barfmt/pkg/render/i3bar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBackendString(t *testing.T) {
	tests := []struct {
		backend  render.Backend
		expected string
	}{
		{render.BackendPango, "awesome"},
		{render.BackendDzen2, "dzen2"},
		{render.BackendLemonbar, "lemonbar"},
		{render.BackendI3bar, "i3bar"},
		{render.BackendTerm, "term"},
		{render.Backend(99), "unknown"},
	}
	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.backend.String())
		})
	}
}

func TestParseBackend(t *testing.T) {
	tests := []struct {
		input    string
		expected render.Backend
		wantErr  bool
	}{
		{"awesome", render.BackendPango, false},
		{"pango", render.BackendPango, false},
		{"DZEN2", render.BackendDzen2, false},
		{"lemonbar", render.BackendLemonbar, false},
		{"i3bar", render.BackendI3bar, false},
		{"swaybar", render.BackendI3bar, false},
		{"terminal", render.BackendTerm, false},
		{"xmobar", render.BackendPango, true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := render.ParseBackend(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsErrorCode(err, errors.ErrUnknownBackend))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}

	for _, b := range render.Backends() {
		parsed, err := render.ParseBackend(b.String())
		require.NoError(t, err)
		assert.Equal(t, b, parsed)
	}
}

func TestNew(t *testing.T) {
	for _, b := range render.Backends() {
		t.Run(b.String(), func(t *testing.T) {
			r, err := render.New(b, render.Options{TermProfile: "ascii"})
			require.NoError(t, err)
			assert.NotNil(t, r)
		})
	}

	t.Run("block name reaches i3bar", func(t *testing.T) {
		r, err := render.New(render.BackendI3bar, render.Options{BlockName: "clock"})
		require.NoError(t, err)
		assert.Equal(t, "clock", r.(i3bar.Renderer).Name())
	})

	t.Run("bad term profile", func(t *testing.T) {
		_, err := render.New(render.BackendTerm, render.Options{TermProfile: "sepia"})
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
	})

	t.Run("unknown backend", func(t *testing.T) {
		_, err := render.New(render.Backend(42), render.Options{})
		assert.True(t, errors.IsErrorCode(err, errors.ErrUnknownBackend))
	})
}

func renderers(t *testing.T) map[string]render.Renderer {
	t.Helper()
	out := make(map[string]render.Renderer)
	for _, b := range render.Backends() {
		r, err := render.New(b, render.Options{TermProfile: "truecolor"})
		require.NoError(t, err)
		out[b.String()] = r
	}
	return out
}

// randomDoc builds a document whose leaves are plain words, so every
// backend must reproduce them verbatim.
func randomDoc(rng *rand.Rand, depth int, words *[]string) format.Format {
	if depth == 0 || rng.Intn(4) == 0 {
		w := fmt.Sprintf("w%d", len(*words))
		*words = append(*words, w)
		if rng.Intn(2) == 0 {
			return format.UnescapedStr(w)
		}
		return format.Str(w)
	}
	child := func() format.Format { return randomDoc(rng, depth-1, words) }
	switch rng.Intn(8) {
	case 0:
		n := rng.Intn(4)
		children := make([]format.Format, 0, n)
		for i := 0; i < n; i++ {
			children = append(children, child())
		}
		return format.Concat(children...)
	case 1:
		return format.Align(format.Alignment(rng.Intn(3)), child())
	case 2:
		return format.FgColor(fmt.Sprintf("#%06X", rng.Intn(0xFFFFFF)), child())
	case 3:
		return format.BgColor(fmt.Sprintf("#%06X", rng.Intn(0xFFFFFF)), child())
	case 4:
		return format.NoSeparator(child())
	case 5:
		return format.Padding(uint(rng.Intn(3)), child())
	default:
		button := format.Buttons()[rng.Intn(len(format.Buttons()))]
		return format.Clickable(format.ShellCommand(button, "run it"), child())
	}
}

func TestEveryBackendKeepsContent(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	rs := renderers(t)

	for i := 0; i < 200; i++ {
		var words []string
		doc := randomDoc(rng, 5, &words)

		for name, r := range rs {
			out := r.Render(doc)
			assert.Equal(t, out, r.Render(doc), "%s not idempotent", name)

			last := -1
			for _, w := range words {
				// search from the previous hit so order is checked too
				idx := strings.Index(out[last+1:], w)
				if !assert.GreaterOrEqual(t, idx, 0, "%s lost %q in %s", name, w, out) {
					break
				}
				last += 1 + idx
			}
		}
	}
}

func TestPangoNeverEmitsUnsupportedMarkers(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	r, err := render.New(render.BackendPango, render.Options{})
	require.NoError(t, err)

	for i := 0; i < 100; i++ {
		var words []string
		out := r.Render(randomDoc(rng, 5, &words))
		for _, marker := range []string{"align", "separator", "run it", "%{", "^ca("} {
			assert.NotContains(t, out, marker)
		}
	}
}

func TestColorNestingAppliesInnerColorOnlyToItsSpan(t *testing.T) {
	doc := format.FgColor("#111111", format.Concat(
		format.FgColor("#222222", format.Str("a")),
		format.Str("b"),
	))

	expected := map[string]string{
		"awesome":  `<markup><span foreground="#111111"><span foreground="#222222"><span>a</span></span><span>b</span></span></markup>`,
		"dzen2":    "^fg(#111111)^fg(#222222)a^fg(#111111)b^fg()",
		"lemonbar": "%{F#111111}%{F#222222}a%{F#111111}b%{F-}",
		"i3bar":    `[{"full_text":"a","color":"#222222","name":"barfmt","markup":"pango"},{"full_text":"b","color":"#111111","name":"barfmt","markup":"pango"}]`,
		"term":     "\x1b[38;2;34;34;34ma\x1b[0m\x1b[38;2;17;17;17mb\x1b[0m",
	}
	for name, r := range renderers(t) {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, expected[name], r.Render(doc))
		})
	}
}

func TestFeaturesOf(t *testing.T) {
	assert.False(t, render.FeaturesOf(render.BackendPango).Alignment)
	assert.False(t, render.FeaturesOf(render.BackendPango).Clicks)
	assert.True(t, render.FeaturesOf(render.BackendLemonbar).Alignment)
	assert.True(t, render.FeaturesOf(render.BackendI3bar).Separators)
	assert.Equal(t, render.Features{}, render.FeaturesOf(render.Backend(99)))
}
