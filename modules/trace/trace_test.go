package trace

import (
	"bytes"
	"testing"

	"github.com/antgroup/progressors/modules/term"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatDebug(t *testing.T) {
	assert.Equal(t, "draw\nflush\n", string(formatDebug(term.LevelNone, "draw\nflush")))
	assert.Equal(t, "\x1b[33m* draw\x1b[0m\n", string(formatDebug(term.Level256, "draw")))
}

func TestErrorf(t *testing.T) {
	err := Errorf("unknown preset %q", "fancy")
	require.Error(t, err)
	assert.Equal(t, `unknown preset "fancy"`, err.Error())
}

func TestTracker(t *testing.T) {
	var buf bytes.Buffer
	tr := NewTracker(false)
	tr.w = &buf
	tr.StepNext("silent")
	assert.Empty(t, buf.String())

	tr = NewTracker(true)
	tr.w = &buf
	tr.StepNext("render\n")
	assert.Contains(t, term.StripANSI(buf.String()), "* render use time:")
}

func TestDebuger(t *testing.T) {
	term.StderrLevel = term.Level256
	d := NewDebuger(false)
	d.DbgPrint("quiet")
}
