package main

import (
	"io"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"

	"github.com/mbafford/cli-tools/cal"
)

type MainConfig struct {
	Skip  bool `cli:"name=s aliases=skip desc='skip months where every day is marked'"`
	Color bool `cli:"name=color desc='force color output'"`

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

func (cfg *MainConfig) gridOpts(w io.Writer) []cal.GridOption {
	res := []cal.GridOption{cal.SkipFullMonths(cfg.Skip)}
	if cfg.Color {
		return append(res, cal.GridColors(cal.NewColors()))
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, cal.GridColors(cal.NewColors()))
	}
	return res
}
