package cal

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"
)

const (
	headerWidth    = 64
	monthWidth     = 20 // seven 2-char cells joined by single spaces
	monthsPerRow   = 3
	weekdayHeading = "Mo Tu We Th Fr Sa Su"
)

type gridOpts struct {
	skipFull bool
	colors   *Colors
}

type GridOption func(*gridOpts)

func SkipFullMonths(v bool) GridOption {
	return func(o *gridOpts) { o.skipFull = v }
}

func GridColors(c *Colors) GridOption {
	return func(o *gridOpts) { o.colors = c }
}

// RenderYear prints the year's calendar with marked days shown as
// asterisks. With SkipFullMonths, months where every day is marked are
// omitted; row membership is computed over the remaining months, and a
// year whose remaining months carry no marks at all prints a one-line
// notice instead.
func RenderYear(marked DaySet, year int, w io.Writer, opts ...GridOption) error {
	o := &gridOpts{}
	for _, f := range opts {
		f(o)
	}
	months := make([]time.Month, 0, 12)
	for m := time.January; m <= time.December; m++ {
		if o.skipFull && FullyMarked(marked, year, m) {
			continue
		}
		months = append(months, m)
	}
	if o.skipFull && !anyMarked(marked, year, months) {
		_, err := fmt.Fprintf(w, "every matched month of %d fully matched, skipping\n", year)
		return err
	}
	if err := yearHeader(w, year, o.colors); err != nil {
		return err
	}
	for i := 0; i < len(months); i += monthsPerRow {
		row := months[i:min(i+monthsPerRow, len(months))]
		blocks := make([][]string, len(row))
		height := 0
		for j, m := range row {
			blocks[j] = monthBlock(marked, year, m, o.colors)
			height = max(height, len(blocks[j]))
		}
		for line := 0; line < height; line++ {
			parts := make([]string, len(blocks))
			for j, b := range blocks {
				if line < len(b) {
					parts[j] = b[line]
				} else {
					parts[j] = strings.Repeat(" ", monthWidth)
				}
			}
			joined := strings.TrimRight(strings.Join(parts, "  "), " ")
			if _, err := fmt.Fprintln(w, joined); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}

func anyMarked(marked DaySet, year int, months []time.Month) bool {
	for _, m := range months {
		for day := 1; day <= DaysIn(year, m); day++ {
			if _, ok := marked[Date{Year: year, Month: m, Day: day}]; ok {
				return true
			}
		}
	}
	return false
}

func yearHeader(w io.Writer, year int, colors *Colors) error {
	rule := strings.Repeat("=", headerWidth)
	label := center(strconv.Itoa(year), headerWidth)
	if colors != nil {
		label = colors.Header(label)
	}
	for _, line := range []string{rule, label, rule} {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// monthBlock lays out one month as lines of fixed visible width:
// centered name, weekday heading, then one line per Monday-start week.
// Every line has exactly seven cells so padding stays structural even
// when marked cells carry color escapes.
func monthBlock(marked DaySet, year int, month time.Month, colors *Colors) []string {
	lines := []string{center(month.String(), monthWidth), weekdayHeading}
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	lead := (int(first.Weekday()) + 6) % 7
	cells := make([]string, 0, 7)
	for i := 0; i < lead; i++ {
		cells = append(cells, "  ")
	}
	n := DaysIn(year, month)
	for day := 1; day <= n; day++ {
		cell := fmt.Sprintf("%2d", day)
		if _, ok := marked[Date{Year: year, Month: month, Day: day}]; ok {
			cell = " *"
			if colors != nil {
				cell = colors.Marked(cell)
			}
		}
		cells = append(cells, cell)
		if len(cells) == 7 {
			lines = append(lines, strings.Join(cells, " "))
			cells = cells[:0]
		}
	}
	if len(cells) > 0 {
		for len(cells) < 7 {
			cells = append(cells, "  ")
		}
		lines = append(lines, strings.Join(cells, " "))
	}
	return lines
}

func center(s string, width int) string {
	if len(s) >= width {
		return s
	}
	left := (width - len(s)) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-left-len(s))
}
