package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runApp(t *testing.T, args ...string) string {
	var buf bytes.Buffer
	var app App
	app.Stdout = &buf
	parser, err := newParser(&app)
	require.NoError(t, err)
	ctx, err := parser.Parse(args)
	require.NoError(t, err)
	require.NoError(t, ctx.Run(&app.Globals))
	return buf.String()
}

func TestRender(t *testing.T) {
	assert.Equal(t, "[=.  ] 30 %\n", runApp(t, "--no-color", "render", "6", "--total", "20", "--width", "4", "--display", "percentage"))
	assert.Equal(t, "\r[==  ]", runApp(t, "--no-color", "render", "5", "-w", "4", "-e", "-n"))
}

func TestPresetsDump(t *testing.T) {
	out := runApp(t, "presets", "--dump", "ascii", "--format", "yaml")
	assert.Contains(t, out, "value_display: none")
	assert.Contains(t, out, "fill:")
}

func TestDemo(t *testing.T) {
	out := runApp(t, "--no-color", "demo", "--total", "2", "--delay", "0s", "--width", "2")
	assert.Equal(t, "\r[  ] 0 %\r[= ] 50 %\r[==] 100 %\n", out)
}
