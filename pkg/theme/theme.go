// Copyright ©️ Ant Group. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package theme

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/antgroup/progressors/modules/term"
	"github.com/antgroup/progressors/pkg/progress"
	"github.com/sirupsen/logrus"
)

var (
	ErrUnknownPreset = errors.New("unknown preset")
	ErrInvalidGlyph  = errors.New("invalid glyph")
)

const (
	DefaultPreset = "ascii"
)

var (
	presets = map[string]func() progress.Style{
		"ascii":    progress.ASCII,
		"smooth":   progress.Smooth,
		"climbing": progress.ClimbingBlocks,
	}
)

// Names returns the preset names in sorted order.
func Names() []string {
	names := make([]string, 0, len(presets))
	for n := range presets {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Preset returns a fresh copy of the named preset.
func Preset(name string) (progress.Style, error) {
	if len(name) == 0 {
		name = DefaultPreset
	}
	fn, ok := presets[strings.ToLower(name)]
	if !ok {
		return progress.Style{}, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
	}
	return fn(), nil
}

type GlyphConfig struct {
	Char string `toml:"char" yaml:"char"`
	Fg   string `toml:"fg,omitempty" yaml:"fg,omitempty"`
	Bg   string `toml:"bg,omitempty" yaml:"bg,omitempty"`
	Bold bool   `toml:"bold,omitempty" yaml:"bold,omitempty"`
	Dim  bool   `toml:"dim,omitempty" yaml:"dim,omitempty"`
}

func (g *GlyphConfig) Glyph() (progress.Glyph, error) {
	if utf8.RuneCountInString(g.Char) != 1 {
		return progress.Glyph{}, fmt.Errorf("%w: %q is not a single character", ErrInvalidGlyph, g.Char)
	}
	r, _ := utf8.DecodeRuneInString(g.Char)
	if w := term.DisplayWidth(g.Char); w != 1 {
		logrus.Warnf("glyph %q is %d cells wide, the bar will not line up", g.Char, w)
	}
	fg, err := progress.ParseColor(g.Fg)
	if err != nil {
		return progress.Glyph{}, err
	}
	bg, err := progress.ParseColor(g.Bg)
	if err != nil {
		return progress.Glyph{}, err
	}
	return progress.Glyph{Rune: r, Attrs: progress.Attrs{Fg: fg, Bg: bg, Bold: g.Bold, Dim: g.Dim}}, nil
}

func newGlyphConfig(g progress.Glyph) *GlyphConfig {
	return &GlyphConfig{
		Char: string(g.Rune),
		Fg:   string(g.Attrs.Fg),
		Bg:   string(g.Attrs.Bg),
		Bold: g.Attrs.Bold,
		Dim:  g.Attrs.Dim,
	}
}

// Config is the on-disk form of a style. Unset fields keep the value
// of the preset it starts from.
type Config struct {
	Preset       string        `toml:"preset,omitempty" yaml:"preset,omitempty"`
	ValueDisplay string        `toml:"value_display,omitempty" yaml:"value_display,omitempty"`
	ValueSuffix  string        `toml:"value_suffix,omitempty" yaml:"value_suffix,omitempty"`
	ValueDivisor uint64        `toml:"value_divisor,omitempty" yaml:"value_divisor,omitempty"`
	Width        int           `toml:"width,omitempty" yaml:"width,omitempty"`
	LeftCap      *GlyphConfig  `toml:"left_cap,omitempty" yaml:"left_cap,omitempty"`
	RightCap     *GlyphConfig  `toml:"right_cap,omitempty" yaml:"right_cap,omitempty"`
	Empty        *GlyphConfig  `toml:"empty,omitempty" yaml:"empty,omitempty"`
	Done         *GlyphConfig  `toml:"done,omitempty" yaml:"done,omitempty"`
	Fill         []GlyphConfig `toml:"fill,omitempty" yaml:"fill,omitempty"`
	NoFill       bool          `toml:"no_fill,omitempty" yaml:"no_fill,omitempty"`
}

// NewConfig describes s completely, so that decoding it needs no preset.
func NewConfig(s progress.Style) *Config {
	c := &Config{
		ValueDisplay: s.ValueDisplay.String(),
		ValueSuffix:  s.ValueSuffix,
		ValueDivisor: s.ValueDivisor,
		LeftCap:      newGlyphConfig(s.LeftCap),
		RightCap:     newGlyphConfig(s.RightCap),
		Empty:        newGlyphConfig(s.Empty),
		Done:         newGlyphConfig(s.Done),
		NoFill:       len(s.Fill) == 0,
	}
	for _, g := range s.Fill {
		c.Fill = append(c.Fill, *newGlyphConfig(g))
	}
	return c
}

func overrideGlyph(dst *progress.Glyph, src *GlyphConfig, name string) error {
	if src == nil {
		return nil
	}
	g, err := src.Glyph()
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	*dst = g
	return nil
}

// Style resolves the configuration against its preset.
func (c *Config) Style() (progress.Style, error) {
	s, err := Preset(c.Preset)
	if err != nil {
		return s, err
	}
	if len(c.ValueDisplay) != 0 {
		if s.ValueDisplay, err = progress.ParseValueDisplay(c.ValueDisplay); err != nil {
			return s, err
		}
	}
	if len(c.ValueSuffix) != 0 {
		s.ValueSuffix = c.ValueSuffix
	}
	if c.ValueDivisor != 0 {
		s.ValueDivisor = c.ValueDivisor
	}
	if err := overrideGlyph(&s.LeftCap, c.LeftCap, "left_cap"); err != nil {
		return s, err
	}
	if err := overrideGlyph(&s.RightCap, c.RightCap, "right_cap"); err != nil {
		return s, err
	}
	if err := overrideGlyph(&s.Empty, c.Empty, "empty"); err != nil {
		return s, err
	}
	if err := overrideGlyph(&s.Done, c.Done, "done"); err != nil {
		return s, err
	}
	switch {
	case c.NoFill:
		s.Fill = nil
	case len(c.Fill) != 0:
		fill := make([]progress.Glyph, 0, len(c.Fill))
		for i := range c.Fill {
			g, err := c.Fill[i].Glyph()
			if err != nil {
				return s, fmt.Errorf("fill[%d]: %w", i, err)
			}
			fill = append(fill, g)
		}
		s.Fill = fill
	}
	return s, nil
}
