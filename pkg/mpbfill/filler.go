// Copyright ©️ Ant Group. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

// Package mpbfill lets an mpb bar draw itself with a progress.Style.
package mpbfill

import (
	"io"

	"github.com/antgroup/progressors/pkg/progress"
	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"
)

type builderFunc func() mpb.BarFiller

func (f builderFunc) Build() mpb.BarFiller {
	return f()
}

// New returns a filler builder for mpb's Progress.New. Numeric
// annotations are left to mpb decorators, so the style's ValueDisplay
// is ignored.
func New(style progress.Style, styler progress.Styler) mpb.BarFillerBuilder {
	style = style.Clone()
	style.ValueDisplay = progress.ValueNone
	return builderFunc(func() mpb.BarFiller {
		bar := progress.New(style, progress.WithStyler(styler))
		return mpb.BarFillerFunc(func(w io.Writer, stat decor.Statistics) error {
			if !fill(bar, stat) {
				return nil
			}
			return bar.DrawTo(w)
		})
	})
}

// fill copies mpb's statistics into bar. The caps take two of the
// available cells; it reports false when even they do not fit.
func fill(bar *progress.Bar, stat decor.Statistics) bool {
	width := stat.AvailableWidth
	if stat.RequestedWidth > 0 && stat.RequestedWidth < width {
		width = stat.RequestedWidth
	}
	if width < 2 {
		return false
	}
	bar.SetDisplayLen(width - 2)
	var total, current uint64
	if stat.Total > 0 {
		total = uint64(stat.Total)
	}
	if stat.Current > 0 {
		current = uint64(stat.Current)
	}
	bar.SetTotal(total)
	bar.SetValue(current)
	return true
}
