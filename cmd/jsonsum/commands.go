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
	opts := append(sOpts, []*cli.Opt{
		&cli.Opt{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		},
		&cli.Opt{
			Name:        "I",
			Aliases:     []string{"ifmt"},
			Description: "input format: json/j, yaml/y",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.InFormat), "(format)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "jsonsum").
		WithSynopsis("jsonsum [opts] [files]").
		WithDescription("jsonsum summarizes the structure of json documents.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return summarizeMain(cfg, cc, args)
		}).
		WithSubs(DiffCommand(cfg))
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("diff").
		WithAliases("d").
		WithSynopsis("diff <file> <file>").
		WithDescription("diff the structure summaries of two documents").
		WithRun(func(cc *cli.Context, args []string) error {
			return diffSummaries(cfg, cc, args)
		})
	cfg.Diff = cmd
	return cmd
}
