package main

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/mbafford/cli-tools/cal"
)

func TestScanLinesMixedInput(t *testing.T) {
	in := strings.NewReader(strings.Join([]string{
		"2019-01-01",
		"not-a-date",
		"",
		"  2019-03-01-2019-03-03  ",
		"2019-02-30",
	}, "\n"))
	markers := cal.Markers{}
	if err := scanLines(markers, in); err != nil {
		t.Fatal(err)
	}
	set := markers[2019]
	if len(set) != 4 {
		t.Fatalf("marked %d days, want 4", len(set))
	}
	for _, d := range []cal.Date{
		{Year: 2019, Month: time.January, Day: 1},
		{Year: 2019, Month: time.March, Day: 1},
		{Year: 2019, Month: time.March, Day: 2},
		{Year: 2019, Month: time.March, Day: 3},
	} {
		if _, ok := set[d]; !ok {
			t.Errorf("day %s not marked", d)
		}
	}
}

func TestScanLinesAllInvalid(t *testing.T) {
	in := strings.NewReader("nope\n2019/01/02\n2019-02-30\n")
	markers := cal.Markers{}
	if err := scanLines(markers, in); err != nil {
		t.Fatal(err)
	}
	if len(markers) != 0 {
		t.Errorf("markers = %v, want none", markers)
	}
}

func TestRenderMarkersNoValidDates(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	if err := renderMarkers(&MainConfig{}, buf, cal.Markers{}); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "no valid dates found\n" {
		t.Errorf("output = %q, want the no-valid-dates notice", buf.String())
	}
}

func TestRenderMarkersYearsInOrder(t *testing.T) {
	markers := cal.Markers{}
	markers.Merge(cal.Expand(cal.Range{
		Start: cal.Date{Year: 2020, Month: time.June, Day: 1},
		End:   cal.Date{Year: 2020, Month: time.June, Day: 1},
	}))
	markers.Merge(cal.Expand(cal.Range{
		Start: cal.Date{Year: 2019, Month: time.June, Day: 1},
		End:   cal.Date{Year: 2019, Month: time.June, Day: 1},
	}))
	buf := bytes.NewBuffer(nil)
	if err := renderMarkers(&MainConfig{}, buf, markers); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	i, j := strings.Index(out, "2019"), strings.Index(out, "2020")
	if i < 0 || j < 0 || i > j {
		t.Errorf("years out of order: 2019 at %d, 2020 at %d", i, j)
	}
}
