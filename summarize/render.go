package summarize

import (
	"fmt"
	"io"
	"strings"

	"github.com/mbafford/cli-tools/ir"
)

const (
	topValues     = 5
	maxValueWidth = 30
)

type renderOpts struct {
	values bool
	colors *Colors
}

type RenderOption func(*renderOpts)

func RenderValues(v bool) RenderOption {
	return func(o *renderOpts) { o.values = v }
}

func RenderColors(c *Colors) RenderOption {
	return func(o *renderOpts) { o.colors = c }
}

// Render writes one row per shape path, sorted lexicographically, with
// the count right aligned and the path column padded to the longest
// path. With RenderValues each row is followed by the top values for
// that path and a separating blank line.
func Render(sum *Summary, w io.Writer, opts ...RenderOption) error {
	o := &renderOpts{}
	for _, f := range opts {
		f(o)
	}
	paths := sum.Paths()
	pathWidth := 0
	countWidth := 1
	for _, p := range paths {
		pathWidth = max(pathWidth, len(p))
		countWidth = max(countWidth, len(fmt.Sprint(sum.Records[p].Count)))
	}
	for _, path := range paths {
		rec := sum.Records[path]
		types := make([]string, len(rec.Types))
		for i, tc := range rec.Types {
			types[i] = fmt.Sprintf("%s (%d)", tc.Type, tc.Count)
		}
		count := fmt.Sprintf("%*d", countWidth, rec.Count)
		padded := fmt.Sprintf("%-*s", pathWidth, path)
		if o.colors != nil {
			count = o.colors.Count(count)
			padded = o.colors.Path(padded)
		}
		if _, err := fmt.Fprintf(w, "%s %s %s\n", count, padded, strings.Join(types, ", ")); err != nil {
			return err
		}
		if !o.values {
			continue
		}
		for _, vc := range rec.TopValues(topValues) {
			val := displayValue(vc)
			if o.colors != nil {
				val = o.colors.Value(val)
			}
			if _, err := fmt.Fprintf(w, "%*s   %s (%d)\n", countWidth, "", val, vc.Count); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}

// displayValue truncates long strings for display only; the underlying
// tallies are unaffected.
func displayValue(vc *ValueCount) string {
	if vc.Type != ir.StringType {
		return vc.Literal
	}
	runes := []rune(vc.Literal)
	if len(runes) <= maxValueWidth {
		return vc.Literal
	}
	return string(runes[:maxValueWidth-3]) + "..."
}
