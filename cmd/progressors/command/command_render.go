// Copyright ©️ Ant Group. All rights reserved.
// SPDX-License-Identifier: Apache-2.0
package command

import (
	"io"

	"github.com/antgroup/progressors/modules/trace"
	"github.com/antgroup/progressors/pkg/progress"
)

type Render struct {
	StyleFlags
	Value     uint64 `arg:"" name:"value" help:"Current value"`
	Total     uint64 `name:"total" short:"t" help:"Maximum value" default:"10"`
	Erase     bool   `name:"erase" short:"e" help:"Return to the start of the line before drawing"`
	NoNewline bool   `name:"no-newline" short:"n" help:"Do not print the trailing newline"`
}

func (c *Render) Run(g *Globals) error {
	style, width, err := c.resolve(g, progress.ValueNone)
	if err != nil {
		return err
	}
	bar := progress.New(style, progress.WithStyler(g.styler()), progress.WithTotal(c.Total), progress.WithDisplayLen(width))
	bar.SetValue(c.Value)
	out := g.stdout()
	if c.Erase {
		if err := bar.EraseTo(out); err != nil {
			return trace.Errorf("%v", err)
		}
	}
	if err := bar.DrawTo(out); err != nil {
		return trace.Errorf("%v", err)
	}
	if !c.NoNewline {
		if _, err := io.WriteString(out, "\n"); err != nil {
			return trace.Errorf("%v", err)
		}
	}
	return nil
}
