package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version kong.VersionFlag `short:"v" help:"Show version"`
	Config  string           `short:"c" type:"path" default:"casino21.hcl" help:"HCL configuration file"`

	Play       PlayCmd       `cmd:"" default:"withargs" help:"Play a game of 21 in the terminal"`
	ShowConfig ShowConfigCmd `cmd:"" name:"config" help:"Print the effective configuration as HCL"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("casino21"),
		kong.Description("Turn-based multiplayer 21 for the terminal"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run(&cli)
	ctx.FatalIfErrorf(err)
}
