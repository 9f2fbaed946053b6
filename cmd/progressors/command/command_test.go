package command

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/antgroup/progressors/pkg/progress"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const smoothStyle = `
preset = "smooth"
value_display = "current"
width = 12
`

func writeStyle(t *testing.T, name, content string) string {
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0644))
	return p
}

func TestResolve(t *testing.T) {
	g := &Globals{NoColor: true}
	p := writeStyle(t, "smooth.toml", smoothStyle)

	tests := []struct {
		title   string
		flags   StyleFlags
		display progress.ValueDisplay
		width   int
		fill    rune
	}{
		{"preset flag", StyleFlags{Preset: "ascii"}, progress.ValuePercentage, 40, '.'},
		{"style file", StyleFlags{Preset: "ascii", Config: p}, progress.ValueCurrent, 12, '▏'},
		{"flags win", StyleFlags{Preset: "ascii", Config: p, Width: 6, Display: "none"}, progress.ValueNone, 6, '▏'},
	}
	for _, test := range tests {
		style, width, err := test.flags.resolve(g, progress.ValuePercentage)
		require.NoError(t, err, test.title)
		assert.Equal(t, test.display, style.ValueDisplay, test.title)
		assert.Equal(t, test.width, width, test.title)
		assert.Equal(t, test.fill, style.Fill[0].Rune, test.title)
	}
}

func TestResolveErrors(t *testing.T) {
	g := &Globals{NoColor: true}
	_, _, err := (&StyleFlags{Preset: "fancy"}).resolve(g, progress.ValueNone)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown preset")

	_, _, err = (&StyleFlags{Config: filepath.Join(t.TempDir(), "missing.yaml")}).resolve(g, progress.ValueNone)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load style")

	_, _, err = (&StyleFlags{Preset: "ascii", Display: "eta"}).resolve(g, progress.ValueNone)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown value display")
}

func TestRenderRun(t *testing.T) {
	var buf bytes.Buffer
	g := &Globals{NoColor: true, Stdout: &buf}
	c := &Render{StyleFlags: StyleFlags{Preset: "ascii", Width: 4, Display: "current-and-total"}, Value: 5, Total: 10}
	require.NoError(t, c.Run(g))
	assert.Equal(t, "[==  ] 5/10\n", buf.String())
}

func TestPresetsRun(t *testing.T) {
	var buf bytes.Buffer
	g := &Globals{NoColor: true, Stdout: &buf}
	require.NoError(t, (&Presets{Width: 24, Sample: 62}).Run(g))
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "ascii      ["+strings.Repeat("=", 15)+strings.Repeat(" ", 9)+"] 62 %", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "climbing   ▕"))
	assert.True(t, strings.HasPrefix(lines[2], "smooth     ▕"))

	buf.Reset()
	require.NoError(t, (&Presets{Dump: "smooth", Format: "toml"}).Run(g))
	assert.Contains(t, buf.String(), `value_display = "none"`)
	assert.Contains(t, buf.String(), "[[fill]]")

	err := (&Presets{Dump: "fancy", Format: "toml"}).Run(g)
	assert.Error(t, err)
}

func TestStyler(t *testing.T) {
	assert.Equal(t, progress.PlainStyler{}, (&Globals{NoColor: true}).styler())
	assert.Equal(t, progress.ANSIStyler{}, (&Globals{ForceColor: true}).styler())
}
