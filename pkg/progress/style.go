// Copyright ©️ Ant Group. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package progress

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnknownValueDisplay = errors.New("unknown value display")
)

// ValueDisplay selects the numeric annotation written after the right cap.
type ValueDisplay int

const (
	ValueNone ValueDisplay = iota
	ValueCurrent
	ValueCurrentAndTotal
	ValuePercentage
)

func (v ValueDisplay) String() string {
	switch v {
	case ValueNone:
		return "none"
	case ValueCurrent:
		return "current"
	case ValueCurrentAndTotal:
		return "current-and-total"
	case ValuePercentage:
		return "percentage"
	}
	return fmt.Sprintf("ValueDisplay(%d)", int(v))
}

func ParseValueDisplay(s string) (ValueDisplay, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return ValueNone, nil
	case "current", "value":
		return ValueCurrent, nil
	case "current-and-total", "current/total", "total":
		return ValueCurrentAndTotal, nil
	case "percentage", "percent", "%":
		return ValuePercentage, nil
	}
	return ValueNone, fmt.Errorf("%w: %q", ErrUnknownValueDisplay, s)
}

// Style describes every visual element of a bar.
type Style struct {
	ValueDisplay ValueDisplay
	// ValueSuffix and ValueDivisor are carried for style files but are
	// not consulted when rendering.
	ValueSuffix  string
	ValueDivisor uint64
	LeftCap      Glyph
	RightCap     Glyph
	Empty        Glyph
	Done         Glyph
	// Fill is the partial-fill palette, least filled first. An empty
	// palette disables partial cells.
	Fill []Glyph
}

// Clone returns a copy that shares no memory with s.
func (s Style) Clone() Style {
	c := s
	if s.Fill != nil {
		c.Fill = make([]Glyph, len(s.Fill))
		copy(c.Fill, s.Fill)
	}
	return c
}

// ASCII is a plain ASCII bar with a four step green palette.
func ASCII() Style {
	return Style{
		ValueDisplay: ValueNone,
		ValueDivisor: 1,
		LeftCap:      NewGlyph('[').Dim(),
		RightCap:     NewGlyph(']').Dim(),
		Empty:        NewGlyph(' '),
		Done:         NewGlyph('=').WithFg(Green).Bold(),
		Fill: []Glyph{
			NewGlyph('.').WithFg(Green),
			NewGlyph(',').WithFg(Green),
			NewGlyph('-').WithFg(Green),
			NewGlyph('=').WithFg(Green),
		},
	}
}

// Smooth grows the bar from the left with eighth-block glyphs.
func Smooth() Style {
	return Style{
		ValueDisplay: ValueNone,
		ValueDivisor: 1,
		LeftCap:      NewGlyph('▕'), // right one eighth block
		RightCap:     NewGlyph('▏'), // left one eighth block
		Empty:        NewGlyph('█').WithFg(Blue),
		Done:         NewGlyph('█').WithFg(Yellow),
		Fill: []Glyph{
			NewGlyph('▏').WithFg(Yellow).WithBg(Blue),
			NewGlyph('▍').WithFg(Yellow).WithBg(Blue),
			NewGlyph('▋').WithFg(Yellow).WithBg(Blue),
			NewGlyph('▉').WithFg(Yellow).WithBg(Blue),
		},
	}
}

// ClimbingBlocks fills each cell quadrant by quadrant.
func ClimbingBlocks() Style {
	return Style{
		ValueDisplay: ValueNone,
		ValueDivisor: 1,
		LeftCap:      NewGlyph('▕'),
		RightCap:     NewGlyph('▏'),
		Empty:        NewGlyph('█').WithFg(DarkGrey),
		Done:         NewGlyph('█').WithFg(Magenta),
		Fill: []Glyph{
			NewGlyph('▘').WithFg(Magenta).WithBg(DarkGrey),
			NewGlyph('▚').WithFg(Magenta).WithBg(DarkGrey),
			NewGlyph('▙').WithFg(Magenta).WithBg(DarkGrey),
			NewGlyph('█').WithFg(Magenta).WithBg(DarkGrey),
		},
	}
}
