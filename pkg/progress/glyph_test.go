package progress

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGlyphBuilder(t *testing.T) {
	base := NewGlyph('=')
	g := base.WithFg(Green).Bold()
	assert.False(t, base.Styled())
	assert.True(t, g.Styled())
	assert.Equal(t, Attrs{Fg: Green, Bold: true}, g.Attrs)
	assert.Equal(t, "=", g.String())

	h := g.WithBg(Blue).Dim()
	assert.Equal(t, Attrs{Fg: Green, Bold: true}, g.Attrs)
	assert.Equal(t, Attrs{Fg: Green, Bg: Blue, Bold: true, Dim: true}, h.Attrs)
}

func TestAttrsSpec(t *testing.T) {
	tests := []struct {
		title    string
		attrs    Attrs
		expected string
	}{
		{"zero", Attrs{}, ""},
		{"dim only", Attrs{Dim: true}, ""},
		{"bold green", Attrs{Fg: Green, Bold: true}, "green+b"},
		{"foreground and background", Attrs{Fg: Yellow, Bg: Blue}, "yellow:blue"},
		{"background only", Attrs{Bg: Blue}, "default:blue"},
		{"bold only", Attrs{Bold: true}, "default+b"},
		{"palette background", Attrs{Fg: Magenta, Bg: DarkGrey}, "magenta:8"},
	}
	for _, test := range tests {
		assert.Equal(t, test.expected, test.attrs.Spec(), test.title)
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		input    string
		expected Color
	}{
		{"", NoColor},
		{"Green", Green},
		{" blue ", Blue},
		{"purple", Magenta},
		{"grey", DarkGrey},
		{"202", Color("202")},
		{"0", Color("0")},
	}
	for _, test := range tests {
		c, err := ParseColor(test.input)
		require.NoError(t, err, test.input)
		assert.Equal(t, test.expected, c, test.input)
	}
	for _, bad := range []string{"mauve", "256", "-1"} {
		_, err := ParseColor(bad)
		assert.ErrorIs(t, err, ErrUnknownColor, bad)
	}
}

func TestStylers(t *testing.T) {
	s := ANSIStyler{}
	assert.Equal(t, "==", s.Apply("==", Attrs{}))
	tests := []struct {
		title    string
		attrs    Attrs
		expected string
	}{
		{"bold fg", Attrs{Fg: Green, Bold: true}, "\x1b[0;1;32m==\x1b[0m"},
		{"fg and bg", Attrs{Fg: Yellow, Bg: Blue}, "\x1b[0;33;44m==\x1b[0m"},
		{"dim only", Attrs{Dim: true}, "\x1b[2m==\x1b[0m"},
		{"dim with fg", Attrs{Fg: Green, Dim: true}, "\x1b[0;32m\x1b[2m==\x1b[0m"},
		{"dim with bold bg", Attrs{Bg: DarkGrey, Bold: true, Dim: true}, "\x1b[0;1;39;48;5;8m\x1b[2m==\x1b[0m"},
	}
	for _, test := range tests {
		assert.Equal(t, test.expected, s.Apply("==", test.attrs), test.title)
	}

	p := PlainStyler{}
	assert.Equal(t, "==", p.Apply("==", Attrs{Fg: Green, Bold: true}))
}
