package term

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func envOf(kv map[string]string) func(string) string {
	return func(k string) string {
		return kv[k]
	}
}

func TestDetectLevel(t *testing.T) {
	tests := []struct {
		title    string
		env      map[string]string
		expected Level
	}{
		{"empty environment", map[string]string{}, LevelNone},
		{"dumb terminal", map[string]string{"TERM": "dumb"}, LevelNone},
		{"xterm", map[string]string{"TERM": "xterm"}, Level256},
		{"xterm 256", map[string]string{"TERM": "xterm-256color"}, Level256},
		{"colorterm truecolor", map[string]string{"TERM": "xterm-256color", "COLORTERM": "truecolor"}, Level16M},
		{"windows terminal", map[string]string{"WT_SESSION": "1"}, Level16M},
		{"no color wins", map[string]string{"NO_COLOR": "1", "COLORTERM": "truecolor"}, LevelNone},
		{"forced", map[string]string{"NO_COLOR": "1", ENV_PROGRESSORS_FORCE_TRUECOLOR: "true"}, Level16M},
	}
	for _, test := range tests {
		assert.Equal(t, test.expected, DetectLevel(envOf(test.env)), test.title)
	}
}

func TestLevelColors(t *testing.T) {
	assert.Equal(t, "ok", LevelNone.Green("ok"))
	assert.Equal(t, "\x1b[32mok\x1b[0m", Level256.Green("ok"))
	assert.Equal(t, "\x1b[38;2;254;225;64mok\x1b[0m", Level16M.Yellow("ok"))
}

func TestStripANSI(t *testing.T) {
	s := "\x1b[2m[\x1b[0m\x1b[1;32m==\x1b[0m ]"
	assert.Equal(t, "[== ]", StripANSI(s))
	assert.Equal(t, 5, DisplayWidth(s))
	assert.Equal(t, 3, DisplayWidth("▕█▏"))
}
