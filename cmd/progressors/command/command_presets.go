// Copyright ©️ Ant Group. All rights reserved.
// SPDX-License-Identifier: Apache-2.0
package command

import (
	"fmt"

	"github.com/antgroup/progressors/modules/trace"
	"github.com/antgroup/progressors/pkg/progress"
	"github.com/antgroup/progressors/pkg/theme"
)

type Presets struct {
	Dump   string `name:"dump" help:"Print the named preset as a style file"`
	Format string `name:"format" short:"f" help:"Style file format for --dump: toml, yaml" enum:"toml,yaml" default:"toml"`
	Width  int    `name:"width" short:"w" help:"Width of the sample bars" default:"24"`
	Sample uint64 `name:"sample" help:"Percentage shown by the sample bars" default:"62"`
}

func (c *Presets) Run(g *Globals) error {
	out := g.stdout()
	if len(c.Dump) != 0 {
		style, err := theme.Preset(c.Dump)
		if err != nil {
			return trace.Errorf("%v", err)
		}
		f, err := theme.ParseFormat(c.Format)
		if err != nil {
			return trace.Errorf("%v", err)
		}
		if err := theme.Encode(out, theme.NewConfig(style), f); err != nil {
			return trace.Errorf("encode %s: %v", c.Dump, err)
		}
		return nil
	}
	level := g.level()
	for _, name := range theme.Names() {
		style, err := theme.Preset(name)
		if err != nil {
			return err
		}
		style.ValueDisplay = progress.ValuePercentage
		bar := progress.New(style, progress.WithStyler(g.styler()), progress.WithTotal(100), progress.WithDisplayLen(c.Width))
		bar.SetValue(c.Sample)
		fmt.Fprintf(out, "%s %s\n", level.Green(fmt.Sprintf("%-10s", name)), bar.String())
	}
	return nil
}
