package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/scott-cotton/cli"

	"github.com/mbafford/cli-tools/parse"
	"github.com/mbafford/cli-tools/summarize"
)

func diffSummaries(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires exactly two files", cli.ErrUsage)
	}
	a, err := reportFor(cfg.MainConfig, args[0])
	if err != nil {
		return err
	}
	b, err := reportFor(cfg.MainConfig, args[1])
	if err != nil {
		return err
	}
	dmp := diffpatch.New()
	ca, cb, lines := dmp.DiffLinesToChars(a, b)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(ca, cb, false), lines)
	colors := cfg.diffColors(cc.Out)
	for _, d := range diffs {
		prefix := "  "
		paint := func(s string, _ ...any) string { return s }
		switch d.Type {
		case diffpatch.DiffInsert:
			prefix = "+ "
			if colors != nil {
				paint = colors.Insert
			}
		case diffpatch.DiffDelete:
			prefix = "- "
			if colors != nil {
				paint = colors.Delete
			}
		}
		text := strings.TrimRight(d.Text, "\n")
		if text == "" {
			continue
		}
		for _, line := range strings.Split(text, "\n") {
			fmt.Fprintln(cc.Out, paint(prefix+line))
		}
	}
	return nil
}

// reportFor renders a document's summary without color so the diff
// operates on plain report lines.
func reportFor(cfg *MainConfig, file string) (string, error) {
	var (
		f   *os.File
		err error
	)
	if file != "-" {
		f, err = os.Open(file)
		if err != nil {
			return "", fmt.Errorf("could not open %q: %w", file, err)
		}
		defer f.Close()
	} else {
		f = os.Stdin
	}
	in, err := io.ReadAll(f)
	if err != nil {
		return "", fmt.Errorf("error reading %s: %w", file, err)
	}
	doc, err := parse.Parse(in, cfg.parseOpts()...)
	if err != nil {
		return "", fmt.Errorf("error decoding %s: %w", file, err)
	}
	buf := bytes.NewBuffer(nil)
	if err := summarize.Render(summarize.Aggregate(doc), buf, summarize.RenderValues(cfg.Values)); err != nil {
		return "", err
	}
	return buf.String(), nil
}

type diffColors struct {
	Insert func(string, ...any) string
	Delete func(string, ...any) string
}

func (cfg *DiffConfig) diffColors(w io.Writer) *diffColors {
	c := &diffColors{
		Insert: color.GreenString,
		Delete: color.RedString,
	}
	if cfg.Color {
		return c
	}
	f, ok := w.(*os.File)
	if !ok {
		return nil
	}
	if isatty.IsTerminal(f.Fd()) {
		return c
	}
	return nil
}
