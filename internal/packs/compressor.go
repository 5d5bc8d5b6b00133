package packs

import (
	"fmt"
	"strings"
	"time"

	"preplan.flightworks.org/internal/schedule"
)

// weeklyStep is the cadence of a recurring weekly pattern.
const weeklyStep = 7 * 24 * time.Hour

// DateRun is a maximal contiguous run of weekly dates.
type DateRun struct {
	From time.Time
	To   time.Time
}

// compressWeeklyRuns partitions a chronologically ordered list of dates into
// maximal runs whose consecutive elements are exactly seven days apart.
func compressWeeklyRuns(dates []time.Time) []DateRun {
	var runs []DateRun
	for _, d := range dates {
		if n := len(runs); n > 0 && d.Sub(runs[n-1].To) == weeklyStep {
			runs[n-1].To = d
			continue
		}
		runs = append(runs, DateRun{From: d, To: d})
	}
	return runs
}

// expandWeeklyRuns is the inverse of compressWeeklyRuns.
func expandWeeklyRuns(runs []DateRun) []time.Time {
	var dates []time.Time
	for _, run := range runs {
		for d := run.From; !d.After(run.To); d = d.Add(weeklyStep) {
			dates = append(dates, d)
		}
	}
	return dates
}

// formatReportDate renders a date the way cancellation reports expect:
// day without leading zero followed by the three-letter month ("13Jan").
func formatReportDate(d time.Time) string {
	return fmt.Sprintf("%d%s", d.Day(), d.Format("Jan"))
}

// CancellationNote compresses the expected-but-missing weekly dates into the
// printable note, e.g. "SAT CNL: 13Jan TILL 20Jan, 10Feb". An empty missing
// set yields the empty string; callers treat that as "no note", never as an
// empty note.
func CancellationNote(day schedule.Weekday, missing []time.Time) string {
	if len(missing) == 0 {
		return ""
	}

	runs := compressWeeklyRuns(missing)
	parts := make([]string, len(runs))
	for i, run := range runs {
		if run.From.Equal(run.To) {
			parts[i] = formatReportDate(run.From)
		} else {
			parts[i] = formatReportDate(run.From) + " TILL " + formatReportDate(run.To)
		}
	}

	return day.Abbrev() + " CNL: " + strings.Join(parts, ", ")
}

// missingDates returns the expected dates with no actual flight, preserving
// chronological order. Both inputs must be sorted.
func missingDates(expected, actual []time.Time) []time.Time {
	present := make(map[time.Time]bool, len(actual))
	for _, d := range actual {
		present[d] = true
	}
	var missing []time.Time
	for _, d := range expected {
		if !present[d] {
			missing = append(missing, d)
		}
	}
	return missing
}

// PermissionWindow is one element of a run-length-encoded permission
// sequence: a maximal date range of occurrences sharing the same permission
// value and user note.
type PermissionWindow struct {
	FromDate      time.Time `json:"fromDate"`
	ToDate        time.Time `json:"toDate"`
	UserNote      string    `json:"userNote,omitempty"`
	HasPermission bool      `json:"hasPermission"`
}

// compressPermissionWindows merges consecutive occurrences whose
// (note, permission) pair is identical, extending the running window's
// ToDate; a change in either field opens a new window. The very first
// occurrence seeds a window.
func compressPermissionWindows(dates []time.Time, perms []schedule.Permission) []PermissionWindow {
	var windows []PermissionWindow
	for i, d := range dates {
		p := perms[i]
		if n := len(windows); n > 0 &&
			windows[n-1].HasPermission == p.Allowed &&
			windows[n-1].UserNote == p.Note {
			windows[n-1].ToDate = d
			continue
		}
		windows = append(windows, PermissionWindow{
			FromDate:      d,
			ToDate:        d,
			UserNote:      p.Note,
			HasPermission: p.Allowed,
		})
	}
	return windows
}
