package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, &cli.Opt{
		Name:        "o",
		Description: "output file (default stdout)",
		Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
	})

	return cli.NewCommandAt(&cfg.Main, "calfor").
		WithSynopsis("calfor [opts] [files]").
		WithDescription("calfor reads dates and date ranges, one per line, and prints yearly calendars with the matched days marked.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return calMain(cfg, cc, args)
		})
}
