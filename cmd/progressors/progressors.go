// Copyright ©️ Ant Group. All rights reserved.
// SPDX-License-Identifier: Apache-2.0
package main

import (
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/antgroup/progressors/cmd/progressors/command"
	"github.com/antgroup/progressors/modules/strengthen"
	"github.com/antgroup/progressors/modules/trace"
	"github.com/antgroup/progressors/pkg/theme"
	"github.com/antgroup/progressors/pkg/version"
)

type App struct {
	command.Globals
	Demo    command.Demo    `cmd:"demo" help:"Count up and redraw a bar in place"`
	Render  command.Render  `cmd:"render" help:"Draw a single bar for a value"`
	Presets command.Presets `cmd:"presets" help:"List the built-in styles or dump one as a style file"`
	Debug   bool            `name:"debug" help:"Enable debug mode; write a CPU profile"`
}

func newParser(app *App) (*kong.Kong, error) {
	return kong.New(app,
		kong.Name("progressors"),
		kong.Description("progressors - single-line terminal progress bars"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{
			"version": version.GetVersionString(),
			"presets": strings.Join(theme.Names(), ", "),
		},
	)
}

func main() {
	var app App
	parser, err := newParser(&app)
	if err != nil {
		panic(err)
	}
	ctx, err := parser.Parse(os.Args[1:])
	parser.FatalIfErrorf(err)
	if app.Verbose {
		trace.EnableDebugMode()
	}
	m := strengthen.NewMeasurer("progressors", app.Debug)
	defer m.Close()
	if err := ctx.Run(&app.Globals); err != nil {
		m.Close()
		os.Exit(1)
	}
}
