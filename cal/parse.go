package cal

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"
)

// ErrNotADate marks lines matching neither date pattern. Callers warn
// and continue; any other parse error means the line looked like a
// date but names an invalid one.
var ErrNotADate = errors.New("not a date")

var (
	rangeRe  = regexp.MustCompile(`^(\d{4}-\d{2}-\d{2})-(\d{4}-\d{2}-\d{2})$`)
	singleRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

const dayLayout = "2006-01-02"

// ParseLine parses a trimmed input line as either a range
// YYYY-MM-DD-YYYY-MM-DD or a single date YYYY-MM-DD. A single date
// becomes a degenerate range with start == end.
func ParseLine(line string) (Range, error) {
	line = strings.TrimSpace(line)
	if m := rangeRe.FindStringSubmatch(line); m != nil {
		start, err := parseDay(m[1])
		if err != nil {
			return Range{}, err
		}
		end, err := parseDay(m[2])
		if err != nil {
			return Range{}, err
		}
		if end.Time().Before(start.Time()) {
			return Range{}, fmt.Errorf("range ends before it starts: %q", line)
		}
		return Range{Start: start, End: end}, nil
	}
	if singleRe.MatchString(line) {
		d, err := parseDay(line)
		if err != nil {
			return Range{}, err
		}
		return Range{Start: d, End: d}, nil
	}
	return Range{}, fmt.Errorf("%w: %q", ErrNotADate, line)
}

func parseDay(s string) (Date, error) {
	// time.Parse rejects out-of-range days rather than normalizing
	t, err := time.Parse(dayLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return DateOf(t), nil
}
