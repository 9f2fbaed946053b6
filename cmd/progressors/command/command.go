// Copyright ©️ Ant Group. All rights reserved.
// SPDX-License-Identifier: Apache-2.0
package command

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/antgroup/progressors/modules/term"
	"github.com/antgroup/progressors/modules/trace"
	"github.com/antgroup/progressors/pkg/progress"
	"github.com/antgroup/progressors/pkg/theme"
	"github.com/antgroup/progressors/pkg/version"
)

type Globals struct {
	Verbose    bool        `short:"V" help:"Make the operation more talkative"`
	Version    VersionFlag `short:"v" name:"version" help:"Show version number and quit"`
	NoColor    bool        `name:"no-color" help:"Disable colored output"`
	ForceColor bool        `name:"color" help:"Use colored output even when stdout is not a terminal"`
	Stdout     io.Writer   `kong:"-"`
}

type VersionFlag bool

func (v VersionFlag) Decode(ctx *kong.DecodeContext) error { return nil }
func (v VersionFlag) IsBool() bool                         { return true }
func (v VersionFlag) BeforeApply(app *kong.Kong, vars kong.Vars) error {
	fmt.Fprintln(app.Stdout, version.GetVersionString())
	app.Exit(0)
	return nil
}

func (g *Globals) stdout() io.Writer {
	if g.Stdout != nil {
		return g.Stdout
	}
	return os.Stdout
}

func (g *Globals) level() term.Level {
	switch {
	case g.NoColor:
		return term.LevelNone
	case g.ForceColor && term.StdoutLevel == term.LevelNone:
		return term.Level256
	}
	return term.StdoutLevel
}

func (g *Globals) styler() progress.Styler {
	if g.level() == term.LevelNone {
		return progress.PlainStyler{}
	}
	return progress.ANSIStyler{}
}

func (g *Globals) DbgPrint(format string, args ...any) {
	trace.NewDebuger(g.Verbose).DbgPrint(format, args...)
}

// StyleFlags selects the style of the drawn bar.
type StyleFlags struct {
	Preset  string `name:"preset" short:"p" help:"Style preset: ${presets}" default:"ascii"`
	Config  string `name:"config" short:"c" help:"Load the style from a TOML or YAML file" type:"path"`
	Display string `name:"display" short:"d" help:"Numeric annotation: none, current, current-and-total, percentage"`
	Width   int    `name:"width" short:"w" help:"Bar width in cells (default: style file width or 40)"`
}

// resolve loads the style. display is used when neither the flags nor
// the style file pick a value display.
func (s *StyleFlags) resolve(g *Globals, display progress.ValueDisplay) (progress.Style, int, error) {
	cfg := &theme.Config{}
	if len(s.Config) != 0 {
		c, err := theme.Load(s.Config)
		if err != nil {
			return progress.Style{}, 0, trace.Errorf("load style: %v", err)
		}
		cfg = c
	}
	if len(cfg.Preset) == 0 {
		cfg.Preset = s.Preset
	}
	if len(cfg.ValueDisplay) == 0 {
		cfg.ValueDisplay = display.String()
	}
	if len(s.Display) != 0 {
		cfg.ValueDisplay = s.Display
	}
	style, err := cfg.Style()
	if err != nil {
		return style, 0, trace.Errorf("resolve style: %v", err)
	}
	width := progress.DefaultDisplayLen
	switch {
	case s.Width > 0:
		width = s.Width
	case cfg.Width > 0:
		width = cfg.Width
	}
	g.DbgPrint("style preset: %s display: %s width: %d", cfg.Preset, style.ValueDisplay, width)
	return style, width, nil
}
