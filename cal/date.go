// Package cal parses date ranges from text lines and renders yearly
// calendars with matched days marked.
package cal

import (
	"fmt"
	"time"
)

// Date is a calendar day with no time-of-day component.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// Range is an inclusive span of days with Start <= End by construction.
type Range struct {
	Start Date
	End   Date
}

func (r Range) String() string {
	if r.Start == r.End {
		return r.Start.String()
	}
	return r.Start.String() + "-" + r.End.String()
}

// DaysIn returns the number of days in a month, leap-year aware.
func DaysIn(year int, month time.Month) int {
	// day zero of the following month
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
