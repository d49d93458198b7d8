package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Globals

	Eval        EvalCmd        `cmd:"" help:"Classify five cards and print them in canonical order"`
	Batch       BatchCmd       `cmd:"" help:"Evaluate the hands listed in an HCL file"`
	Interactive InteractiveCmd `cmd:"" help:"Evaluate hands interactively"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("handsort"),
		kong.Description("Classify five-card poker hands and sort them into canonical order"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}
