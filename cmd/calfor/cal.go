package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/scott-cotton/cli"

	"github.com/mbafford/cli-tools/cal"
)

func calMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	defer func() {
		if cfg.CloseOut != nil {
			cfg.CloseOut()
		}
	}()
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	markers := cal.Markers{}
	if len(args) == 0 {
		if err := scanLines(markers, cc.In); err != nil {
			return err
		}
	} else {
		for _, file := range args {
			if err := scanFile(markers, file); err != nil {
				return err
			}
		}
	}
	return renderMarkers(cfg, cc.Out, markers)
}

func scanFile(markers cal.Markers, file string) error {
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
	if err := scanLines(markers, f); err != nil {
		return fmt.Errorf("error processing %s: %w", file, err)
	}
	return nil
}

// scanLines parses each line into markers. Invalid lines warn and are
// skipped; blank lines are skipped silently.
func scanLines(markers cal.Markers, r io.Reader) error {
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		rng, err := cal.ParseLine(line)
		if err != nil {
			fmt.Fprintf(os.Stderr, "skipping invalid line: %q\n", line)
			continue
		}
		markers.Merge(cal.Expand(rng))
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("error reading: %w", err)
	}
	return nil
}

func renderMarkers(cfg *MainConfig, w io.Writer, markers cal.Markers) error {
	if len(markers) == 0 {
		_, err := fmt.Fprintln(w, "no valid dates found")
		return err
	}
	opts := cfg.gridOpts(w)
	for _, year := range markers.Years() {
		if err := cal.RenderYear(markers[year], year, w, opts...); err != nil {
			return err
		}
	}
	return nil
}
