package cal

import (
	"slices"
	"time"

	"github.com/mbafford/cli-tools/debug"
)

type DaySet map[Date]struct{}

// Markers buckets marked days by year. Every date in a year's set has
// that year; set semantics absorb overlapping ranges.
type Markers map[int]DaySet

// Expand enumerates every day of r inclusive into per-year sets.
func Expand(r Range) Markers {
	if debug.Expand() {
		debug.Logf("expand %s\n", r)
	}
	res := Markers{}
	end := r.End.Time()
	for t := r.Start.Time(); !t.After(end); t = t.AddDate(0, 0, 1) {
		res.Mark(DateOf(t))
	}
	return res
}

func (m Markers) Mark(d Date) {
	set := m[d.Year]
	if set == nil {
		set = DaySet{}
		m[d.Year] = set
	}
	set[d] = struct{}{}
}

func (m Markers) Merge(other Markers) {
	for _, set := range other {
		for d := range set {
			m.Mark(d)
		}
	}
}

// Years returns the marked years in ascending order.
func (m Markers) Years() []int {
	years := make([]int, 0, len(m))
	for y := range m {
		years = append(years, y)
	}
	slices.Sort(years)
	return years
}

// FullyMarked reports whether every day of the month is in the set.
func FullyMarked(set DaySet, year int, month time.Month) bool {
	n := DaysIn(year, month)
	for day := 1; day <= n; day++ {
		if _, ok := set[Date{Year: year, Month: month, Day: day}]; !ok {
			return false
		}
	}
	return true
}
