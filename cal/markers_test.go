package cal

import (
	"testing"
	"time"
)

func day(y int, m time.Month, d int) Date {
	return Date{Year: y, Month: m, Day: d}
}

func TestExpandSingleDay(t *testing.T) {
	d := day(2019, time.March, 5)
	got := Expand(Range{Start: d, End: d})
	if len(got) != 1 || len(got[2019]) != 1 {
		t.Fatalf("Expand = %v, want singleton for 2019", got)
	}
	if _, ok := got[2019][d]; !ok {
		t.Errorf("marked set missing %v", d)
	}
}

func TestExpandDayCount(t *testing.T) {
	tests := []struct {
		name       string
		start, end Date
		want       int
	}{
		{name: "one week", start: day(2019, time.January, 1), end: day(2019, time.January, 7), want: 7},
		{name: "across leap february", start: day(2020, time.February, 27), end: day(2020, time.March, 1), want: 4},
		{name: "across plain february", start: day(2019, time.February, 27), end: day(2019, time.March, 1), want: 3},
		{name: "full leap year", start: day(2020, time.January, 1), end: day(2020, time.December, 31), want: 366},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Expand(Range{Start: tt.start, End: tt.end})
			total := 0
			for year, set := range got {
				for d := range set {
					if d.Year != year {
						t.Errorf("triple %v bucketed under %d", d, year)
					}
				}
				total += len(set)
			}
			if total != tt.want {
				t.Errorf("total marked days = %d, want %d", total, tt.want)
			}
		})
	}
}

func TestExpandSplitsYears(t *testing.T) {
	got := Expand(Range{Start: day(2019, time.December, 30), End: day(2020, time.January, 2)})
	if len(got[2019]) != 2 || len(got[2020]) != 2 {
		t.Fatalf("year split = %d/%d, want 2/2", len(got[2019]), len(got[2020]))
	}
	for _, d := range []Date{
		day(2019, time.December, 30),
		day(2019, time.December, 31),
		day(2020, time.January, 1),
		day(2020, time.January, 2),
	} {
		if _, ok := got[d.Year][d]; !ok {
			t.Errorf("missing %v", d)
		}
	}
}

func TestMergeAbsorbsOverlap(t *testing.T) {
	m := Markers{}
	m.Merge(Expand(Range{Start: day(2019, time.January, 1), End: day(2019, time.January, 5)}))
	m.Merge(Expand(Range{Start: day(2019, time.January, 3), End: day(2019, time.January, 7)}))
	if len(m[2019]) != 7 {
		t.Errorf("merged days = %d, want 7", len(m[2019]))
	}
}

func TestYearsSorted(t *testing.T) {
	m := Markers{}
	m.Mark(day(2021, time.May, 1))
	m.Mark(day(2019, time.May, 1))
	m.Mark(day(2020, time.May, 1))
	got := m.Years()
	want := []int{2019, 2020, 2021}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Years() = %v, want %v", got, want)
		}
	}
}

func TestDaysIn(t *testing.T) {
	tests := []struct {
		year  int
		month time.Month
		want  int
	}{
		{2019, time.January, 31},
		{2019, time.February, 28},
		{2020, time.February, 29},
		{2000, time.February, 29},
		{1900, time.February, 28},
		{2019, time.April, 30},
		{2019, time.December, 31},
	}
	for _, tt := range tests {
		if got := DaysIn(tt.year, tt.month); got != tt.want {
			t.Errorf("DaysIn(%d, %s) = %d, want %d", tt.year, tt.month, got, tt.want)
		}
	}
}

func TestFullyMarked(t *testing.T) {
	m := Expand(Range{Start: day(2020, time.February, 1), End: day(2020, time.February, 29)})
	if !FullyMarked(m[2020], 2020, time.February) {
		t.Error("leap february with all 29 days is not fully marked")
	}
	if FullyMarked(m[2020], 2020, time.March) {
		t.Error("unmarked march reported fully marked")
	}
	short := Expand(Range{Start: day(2019, time.February, 1), End: day(2019, time.February, 27)})
	if FullyMarked(short[2019], 2019, time.February) {
		t.Error("february missing a day reported fully marked")
	}
}
