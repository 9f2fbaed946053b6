// Copyright ©️ Ant Group. All rights reserved.
// SPDX-License-Identifier: Apache-2.0
package command

import (
	"bufio"
	"fmt"
	"math"
	"time"

	"github.com/antgroup/progressors/modules/trace"
	"github.com/antgroup/progressors/pkg/mpbfill"
	"github.com/antgroup/progressors/pkg/progress"
	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"
)

type Demo struct {
	StyleFlags
	Total uint64        `name:"total" short:"t" help:"Maximum value to count up to" default:"400"`
	Delay time.Duration `name:"delay" help:"Pause between frames" default:"25ms"`
	MPB   bool          `name:"mpb" help:"Drive the bar through an mpb container"`
}

func (c *Demo) Run(g *Globals) error {
	style, width, err := c.resolve(g, progress.ValuePercentage)
	if err != nil {
		return err
	}
	tracker := trace.NewTracker(g.Verbose)
	if c.MPB {
		if c.Total > math.MaxInt64 {
			return trace.Errorf("--mpb supports totals up to %d", int64(math.MaxInt64))
		}
		c.runMPB(g, style, width)
		tracker.StepNext("mpb demo, %d frames", c.Total+1)
		return nil
	}
	out := bufio.NewWriter(g.stdout())
	bar := progress.New(style, progress.WithStyler(g.styler()), progress.WithTotal(c.Total), progress.WithDisplayLen(width))
	err = countUp(0, c.Total, func(i uint64) error {
		if err := bar.EraseTo(out); err != nil {
			return err
		}
		bar.SetValue(i)
		if err := bar.DrawTo(out); err != nil {
			return err
		}
		time.Sleep(c.Delay)
		return nil
	})
	if err != nil {
		return trace.Errorf("%v", err)
	}
	fmt.Fprintln(out)
	if err := out.Flush(); err != nil {
		return trace.Errorf("%v", err)
	}
	tracker.StepNext("demo, %d frames", c.Total+1)
	return nil
}

func (c *Demo) runMPB(g *Globals, style progress.Style, width int) {
	p := mpb.New(
		mpb.WithOutput(g.stdout()),
		mpb.WithWidth(width+2),
	)
	bar := p.New(int64(c.Total),
		mpbfill.New(style, g.styler()),
		mpb.AppendDecorators(decor.Percentage(decor.WC{W: 5})),
	)
	_ = countUp(0, c.Total, func(i uint64) error {
		bar.SetCurrent(int64(i))
		time.Sleep(c.Delay)
		return nil
	})
	// a zero total never completes on its own
	bar.SetTotal(-1, true)
	p.Wait()
}

// countUp calls fn for every value from..to inclusive. It stops at to
// rather than testing i <= to, which never fails when to is the largest
// uint64.
func countUp(from, to uint64, fn func(uint64) error) error {
	if from > to {
		return nil
	}
	for i := from; ; i++ {
		if err := fn(i); err != nil {
			return err
		}
		if i == to {
			return nil
		}
	}
}
