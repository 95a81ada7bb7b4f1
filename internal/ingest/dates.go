package ingest

import (
	"time"
)

// baseDate is the sentinel the export system writes for "no end date".
var baseDate = time.Date(1970, time.January, 1, 0, 0, 0, 0, time.UTC)

// maxDate replaces the sentinel so open-ended windows sort and compare
// normally.
var maxDate = time.Date(9999, time.December, 31, 0, 0, 0, 0, time.UTC)

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// startOfWeek walks a date backward to the preceding Sunday. Roster
// start dates are anchored to the week boundary.
func startOfWeek(t time.Time) time.Time {
	t = dateOnly(t)
	for t.Weekday() != time.Sunday {
		t = t.AddDate(0, 0, -1)
	}
	return t
}

// nextSunday walks a date forward to the next Sunday. Rotation pivot
// dates always fall on the week boundary following the raw date.
func nextSunday(t time.Time) time.Time {
	t = dateOnly(t)
	for t.Weekday() != time.Sunday {
		t = t.AddDate(0, 0, 1)
	}
	return t
}

func dayBefore(t time.Time) time.Time {
	return dateOnly(t.AddDate(0, 0, -1))
}

// cutoffDate is the temporal floor for auxiliary rows: January 1 of
// the year before the run date. Rows older than this are ignored.
func cutoffDate(now time.Time) time.Time {
	return time.Date(now.Year()-1, time.January, 1, 0, 0, 0, 0, time.UTC)
}
