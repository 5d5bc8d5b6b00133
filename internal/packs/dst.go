package packs

import (
	"sort"
	"time"

	"preplan.flightworks.org/internal/models"
)

// TrimExpectedDates narrows the candidate list of expected weekly dates so
// it never straddles a daylight-saving offset change at any airport the pack
// touches. Returns the trimmed list and whether a DST record influenced it.
//
// Phase one: if any airport has a DST-flagged record covering the source
// flight's date, the candidates are clipped to that record's validity
// interval. Airports are checked in input order and the first match wins.
//
// Phase two (no airport covers the source date): every airport's records are
// scanned in ascending start order, and each DST record that ends or starts
// strictly inside the candidate window shaves the window from the near side,
// so no run of expected dates crosses an offset boundary.
//
// Airports with no offset history at all contribute nothing: a pack visiting
// only such airports keeps its full candidate range.
func TrimExpectedDates(candidates []time.Time, airports []*models.Airport, sourceDate time.Time) ([]time.Time, bool) {
	if len(candidates) == 0 {
		return candidates, false
	}

	for _, ap := range airports {
		for _, rec := range ap.OffsetRecords {
			if rec.DST && rec.Contains(sourceDate) {
				return clipToInterval(candidates, rec.StartUTC, rec.EndUTC), true
			}
		}
	}

	trimmed := candidates
	touched := false
	for _, rec := range sortedDstRecords(airports) {
		if len(trimmed) == 0 {
			break
		}
		first, last := trimmed[0], trimmed[len(trimmed)-1]
		if rec.EndUTC.After(first) && rec.EndUTC.Before(last) {
			trimmed = datesAfter(trimmed, rec.EndUTC)
			touched = true
		} else if rec.StartUTC.After(first) && rec.StartUTC.Before(last) {
			trimmed = datesBefore(trimmed, rec.StartUTC)
			touched = true
		}
	}
	return trimmed, touched
}

func sortedDstRecords(airports []*models.Airport) []models.UTCOffsetRecord {
	var records []models.UTCOffsetRecord
	for _, ap := range airports {
		for _, rec := range ap.OffsetRecords {
			if rec.DST {
				records = append(records, rec)
			}
		}
	}
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].StartUTC.Before(records[j].StartUTC)
	})
	return records
}

func clipToInterval(dates []time.Time, start, end time.Time) []time.Time {
	var kept []time.Time
	for _, d := range dates {
		if !d.Before(start) && !d.After(end) {
			kept = append(kept, d)
		}
	}
	return kept
}

func datesAfter(dates []time.Time, boundary time.Time) []time.Time {
	var kept []time.Time
	for _, d := range dates {
		if d.After(boundary) {
			kept = append(kept, d)
		}
	}
	return kept
}

func datesBefore(dates []time.Time, boundary time.Time) []time.Time {
	var kept []time.Time
	for _, d := range dates {
		if d.Before(boundary) {
			kept = append(kept, d)
		}
	}
	return kept
}
