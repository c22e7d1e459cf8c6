package main

import (
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"

	"github.com/mbafford/cli-tools/format"
	"github.com/mbafford/cli-tools/parse"
	"github.com/mbafford/cli-tools/summarize"
)

type MainConfig struct {
	Values bool `cli:"name=v aliases=values desc='show the top 5 values for each path'"`
	Color  bool `cli:"name=color desc='force color output'"`

	J bool `cli:"name=j aliases=json desc='read input as json'"`
	Y bool `cli:"name=y aliases=yaml desc='read input as yaml'"`

	Where string `cli:"name=where desc='only show paths matching an expression over path, count and types'"`
	Merge string `cli:"name=merge desc='apply a json merge patch file before summarizing'"`

	InFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
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

func (cfg *MainConfig) parseOpts() []parse.ParseOption {
	var fmat format.Format
	switch {
	case cfg.J:
		fmat = format.JSONFormat
	case cfg.Y:
		fmat = format.YAMLFormat
	}
	if cfg.InFormat != nil {
		fmat = *cfg.InFormat
	}
	return []parse.ParseOption{parse.ParseFormat(fmat)}
}

func (cfg *MainConfig) yamlIn() bool {
	if cfg.InFormat != nil {
		return *cfg.InFormat == format.YAMLFormat
	}
	return cfg.Y
}

func (cfg *MainConfig) renderOpts(w io.Writer) []summarize.RenderOption {
	res := []summarize.RenderOption{summarize.RenderValues(cfg.Values)}
	if cfg.Color {
		return append(res, summarize.RenderColors(summarize.NewColors()))
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, summarize.RenderColors(summarize.NewColors()))
	}
	return res
}

type DiffConfig struct {
	*MainConfig

	Diff *cli.Command
}
