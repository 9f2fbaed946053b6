// Copyright ©️ Ant Group. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package progress

import (
	"math"
	"math/bits"
)

const (
	// partialEpsilon keeps float noise at exact cell boundaries from
	// producing a spurious partial cell.
	partialEpsilon = 1e-9
)

// Layout is the cell breakdown of a bar. Done+Empty, plus one when
// HasPartial, always equals the display width.
type Layout struct {
	Proportion float64
	Percent    uint64
	Done       int
	// Partial is an index into the fill palette, or -1.
	Partial int
	Empty   int
}

func (l Layout) HasPartial() bool {
	return l.Partial >= 0
}

// ComputeLayout maps a value to cells. A zero total is 0% progress, a
// negative width is an empty bar and an over-full value saturates at
// width done cells.
func ComputeLayout(current, total uint64, width, palette int) Layout {
	l := Layout{Partial: -1}
	if width < 0 {
		width = 0
	}
	if total == 0 {
		l.Empty = width
		return l
	}
	l.Proportion = float64(current) / float64(total)
	l.Percent = percentOf(current, total)
	extent := l.Proportion * float64(width)
	whole := math.Floor(extent)
	frac := extent - whole
	if 1-frac < partialEpsilon {
		whole++
		frac = 0
	}
	if whole >= float64(width) {
		l.Done = width
		return l
	}
	l.Done = int(whole)
	if palette > 0 && frac >= partialEpsilon {
		l.Partial = min(int(frac*float64(palette)), palette-1)
	}
	l.Empty = width - l.Done
	if l.HasPartial() {
		l.Empty--
	}
	return l
}

// percentOf truncates current*100/total without going through floats.
func percentOf(current, total uint64) uint64 {
	hi, lo := bits.Mul64(current, 100)
	if hi >= total {
		return math.MaxUint64
	}
	q, _ := bits.Div64(hi, lo, total)
	return q
}
