package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/expr-lang/expr"

	"github.com/scott-cotton/cli"

	"github.com/mbafford/cli-tools/parse"
	"github.com/mbafford/cli-tools/summarize"
)

func summarizeMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	defer func() {
		if cfg.CloseOut != nil {
			cfg.CloseOut()
		}
	}()
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.J && cfg.Y {
		return fmt.Errorf("%w: must specify at most one of -j[son] -y[aml]", cli.ErrUsage)
	}
	if len(args) > 0 {
		if sub := cfg.Main.FindSub(cc, args[0]); sub != nil {
			err := sub.Run(cc, args[1:])
			if errors.Is(err, cli.ErrUsage) {
				sub.Usage(cc, err)
				os.Exit(sub.Exit(cc, err))
			}
			return err
		}
	}
	if cfg.Merge != "" && cfg.yamlIn() {
		return fmt.Errorf("%w: -merge requires json input", cli.ErrUsage)
	}
	pred, err := cfg.wherePred()
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return summarizeReader(cfg, pred, cc.Out, cc.In)
	}
	return summarizeFiles(cfg, pred, cc.Out, args)
}

func summarizeFiles(cfg *MainConfig, pred pathPred, w io.Writer, files []string) error {
	for i, file := range files {
		if err := summarizeFile(cfg, pred, w, file); err != nil {
			return err
		}
		if i < len(files)-1 {
			if _, err := fmt.Fprint(w, "\n---\n"); err != nil {
				return err
			}
		}
	}
	return nil
}

func summarizeFile(cfg *MainConfig, pred pathPred, w io.Writer, file string) error {
	var (
		f   *os.File
		err error
	)
	if file != "-" {
		f, err = os.Open(file)
		if err != nil {
			return fmt.Errorf("could not open %q: %w", file, err)
		}
		defer f.Close()
	} else {
		f = os.Stdin
	}
	if err := summarizeReader(cfg, pred, w, f); err != nil {
		return fmt.Errorf("error processing %s: %w", file, err)
	}
	return nil
}

func summarizeReader(cfg *MainConfig, pred pathPred, w io.Writer, r io.Reader) error {
	in, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("error reading: %w", err)
	}
	in, err = cfg.applyMerge(in)
	if err != nil {
		return err
	}
	doc, err := parse.Parse(in, cfg.parseOpts()...)
	if err != nil {
		return fmt.Errorf("error decoding document: %w", err)
	}
	sum := summarize.Aggregate(doc)
	if pred != nil {
		sum = sum.Where(pred)
	}
	return summarize.Render(sum, w, cfg.renderOpts(w)...)
}

func (cfg *MainConfig) applyMerge(doc []byte) ([]byte, error) {
	if cfg.Merge == "" {
		return doc, nil
	}
	patch, err := os.ReadFile(cfg.Merge)
	if err != nil {
		return nil, fmt.Errorf("could not read merge patch %q: %w", cfg.Merge, err)
	}
	merged, err := jsonpatch.MergePatch(doc, patch)
	if err != nil {
		return nil, fmt.Errorf("applying merge patch: %w", err)
	}
	return merged, nil
}

type pathPred func(path string, rec *summarize.Record) bool

type whereEnv struct {
	Path  string   `expr:"path"`
	Count int      `expr:"count"`
	Types []string `expr:"types"`
}

func (cfg *MainConfig) wherePred() (pathPred, error) {
	if cfg.Where == "" {
		return nil, nil
	}
	prg, err := expr.Compile(cfg.Where, expr.Env(whereEnv{}), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("%w: bad where expression: %w", cli.ErrUsage, err)
	}
	return func(path string, rec *summarize.Record) bool {
		env := whereEnv{Path: path, Count: rec.Count}
		for _, tc := range rec.Types {
			env.Types = append(env.Types, tc.Type.String())
		}
		out, err := expr.Run(prg, env)
		if err != nil {
			return false
		}
		keep, _ := out.(bool)
		return keep
	}, nil
}
