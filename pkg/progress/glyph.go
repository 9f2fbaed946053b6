// Copyright ©️ Ant Group. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package progress

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrUnknownColor = errors.New("unknown color")
)

// Color is a colour name understood by mgutz/ansi, or a 256-colour
// palette index written in decimal.
type Color string

const (
	NoColor  Color = ""
	Black    Color = "black"
	Red      Color = "red"
	Green    Color = "green"
	Yellow   Color = "yellow"
	Blue     Color = "blue"
	Magenta  Color = "magenta"
	Cyan     Color = "cyan"
	White    Color = "white"
	Default  Color = "default"
	DarkGrey Color = "8"
)

var (
	colorAliases = map[string]Color{
		"black":    Black,
		"red":      Red,
		"green":    Green,
		"yellow":   Yellow,
		"blue":     Blue,
		"magenta":  Magenta,
		"purple":   Magenta,
		"cyan":     Cyan,
		"white":    White,
		"default":  Default,
		"darkgrey": DarkGrey,
		"darkgray": DarkGrey,
		"grey":     DarkGrey,
		"gray":     DarkGrey,
	}
)

func ParseColor(s string) (Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if len(s) == 0 {
		return NoColor, nil
	}
	if c, ok := colorAliases[s]; ok {
		return c, nil
	}
	if n, err := strconv.ParseUint(s, 10, 8); err == nil {
		return Color(strconv.FormatUint(n, 10)), nil
	}
	return NoColor, fmt.Errorf("%w: %q", ErrUnknownColor, s)
}

// Attrs is the set of visual attributes carried by a glyph. The zero
// value means "unstyled".
type Attrs struct {
	Fg   Color
	Bg   Color
	Bold bool
	Dim  bool
}

func (a Attrs) IsZero() bool {
	return a == Attrs{}
}

// Spec returns the mgutz/ansi style string for the colour and bold
// attributes, e.g. "green+b" or "yellow:blue". Dim has no mgutz/ansi
// spelling and is not part of the result.
func (a Attrs) Spec() string {
	if a.Fg == NoColor && a.Bg == NoColor && !a.Bold {
		return ""
	}
	var b strings.Builder
	if a.Fg == NoColor {
		b.WriteString(string(Default))
	} else {
		b.WriteString(string(a.Fg))
	}
	if a.Bold {
		b.WriteString("+b")
	}
	if a.Bg != NoColor {
		b.WriteByte(':')
		b.WriteString(string(a.Bg))
	}
	return b.String()
}

// Glyph is a single display character with optional styling. Glyphs are
// values: every builder method returns an updated copy.
//
//	done := progress.NewGlyph('=').WithFg(progress.Green).Bold()
type Glyph struct {
	Rune  rune
	Attrs Attrs
}

func NewGlyph(r rune) Glyph {
	return Glyph{Rune: r}
}

func (g Glyph) WithFg(c Color) Glyph {
	g.Attrs.Fg = c
	return g
}

func (g Glyph) WithBg(c Color) Glyph {
	g.Attrs.Bg = c
	return g
}

func (g Glyph) Bold() Glyph {
	g.Attrs.Bold = true
	return g
}

func (g Glyph) Dim() Glyph {
	g.Attrs.Dim = true
	return g
}

func (g Glyph) Styled() bool {
	return !g.Attrs.IsZero()
}

func (g Glyph) String() string {
	return string(g.Rune)
}
