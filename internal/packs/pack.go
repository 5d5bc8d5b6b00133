// Package packs re-aggregates many dated flight instances into canonical
// packs: recurring weekly patterns carrying compressed, human-readable
// cancellation and permission reports. Packs are a pure view, rebuilt on
// demand whenever the visible date range or the underlying flights change.
package packs

import (
	"sort"
	"time"

	"preplan.flightworks.org/internal/models"
	"preplan.flightworks.org/internal/schedule"
)

// DateRange is the inclusive preplan date range packs are built over.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// LegWeekdayPermissions holds the run-length-encoded permission windows for
// one leg on one weekday, origin and destination sides independently.
type LegWeekdayPermissions struct {
	Origin      []PermissionWindow `json:"originPermissions"`
	Destination []PermissionWindow `json:"destinationPermissions"`
}

// Pack is a set of dated flights sharing an identical structural signature,
// representing one recurring pattern across the preplan date range.
type Pack struct {
	ID        int64
	Signature Signature

	// Source is the first flight in chronological order; it supplies the
	// nominal schedule used for time-change detection and the anchor
	// weekday for the expected weekly cadence.
	Source  *schedule.Flight
	Flights []*schedule.Flight

	FlightDates []time.Time

	// CancellationNote is the compressed report of expected-but-missing
	// weekly dates; empty means no occurrences are missing.
	CancellationNote string

	Permissions map[int]map[schedule.Weekday]LegWeekdayPermissions

	HasTimeChange bool
	InDstChange   bool
}

// WeeklyDates lists every date of the given operational weekday within the
// range, at UTC midnight.
func WeeklyDates(rng DateRange, day schedule.Weekday) []time.Time {
	start := midnightUTC(rng.Start)
	end := midnightUTC(rng.End)

	d := start
	for schedule.WeekdayOf(d) != day {
		d = d.Add(24 * time.Hour)
	}

	var dates []time.Time
	for !d.After(end) {
		dates = append(dates, d)
		d = d.Add(weeklyStep)
	}
	return dates
}

// BuildPacks groups flights by structural signature and derives each pack's
// reports. Flights are considered in chronological order; grouping is a pure
// partition, so a one-minute local-time shift produces a separate pack.
func BuildPacks(flights []*schedule.Flight, rng DateRange, lookup AirportLookup, ids *IDAllocator) []*Pack {
	ordered := make([]*schedule.Flight, len(flights))
	copy(ordered, flights)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Date.Before(ordered[j].Date)
	})

	var result []*Pack
	var signatures []Signature
	for _, f := range ordered {
		sig := signatureOf(f, lookup)
		placed := false
		for i, existing := range signatures {
			if existing.Equal(sig) {
				result[i].Flights = append(result[i].Flights, f)
				placed = true
				break
			}
		}
		if !placed {
			signatures = append(signatures, sig)
			result = append(result, &Pack{
				ID:        ids.Next(),
				Signature: sig,
				Source:    f,
				Flights:   []*schedule.Flight{f},
			})
		}
	}

	for _, pack := range result {
		finishPack(pack, rng, lookup)
	}
	return result
}

func finishPack(pack *Pack, rng DateRange, lookup AirportLookup) {
	pack.FlightDates = make([]time.Time, len(pack.Flights))
	for i, f := range pack.Flights {
		pack.FlightDates[i] = f.Date
	}

	day := pack.Source.Day
	expected := WeeklyDates(rng, day)
	expected, inDst := TrimExpectedDates(expected, packAirports(pack, lookup), pack.Source.Date)
	pack.InDstChange = inDst
	pack.CancellationNote = CancellationNote(day, missingDates(expected, pack.FlightDates))

	pack.Permissions = buildPermissions(pack.Flights)
	pack.HasTimeChange = detectTimeChange(pack.Flights)
}

// packAirports collects the master data of every airport the source flight
// visits, in leg order, departure before arrival. Unknown airports are
// skipped; they cannot contribute offset records.
func packAirports(pack *Pack, lookup AirportLookup) []*models.Airport {
	if lookup == nil {
		return nil
	}
	var airports []*models.Airport
	seen := make(map[string]bool)
	for _, leg := range pack.Source.Legs {
		for _, code := range []string{leg.DepartureAirport, leg.ArrivalAirport} {
			if seen[code] {
				continue
			}
			seen[code] = true
			if ap := lookup(code); ap != nil {
				airports = append(airports, ap)
			}
		}
	}
	return airports
}

// buildPermissions run-length-encodes permission values per leg and weekday.
// Windows never extend across weekday boundaries: each (leg, weekday) group
// is compressed on its own.
func buildPermissions(flights []*schedule.Flight) map[int]map[schedule.Weekday]LegWeekdayPermissions {
	perms := make(map[int]map[schedule.Weekday]LegWeekdayPermissions)

	byDay := make(map[schedule.Weekday][]*schedule.Flight)
	var dayOrder []schedule.Weekday
	for _, f := range flights {
		if _, ok := byDay[f.Day]; !ok {
			dayOrder = append(dayOrder, f.Day)
		}
		byDay[f.Day] = append(byDay[f.Day], f)
	}

	for _, day := range dayOrder {
		group := byDay[day]
		dates := make([]time.Time, len(group))
		for i, f := range group {
			dates[i] = f.Date
		}

		for legIndex := range group[0].Legs {
			origin := make([]schedule.Permission, len(group))
			destination := make([]schedule.Permission, len(group))
			for i, f := range group {
				origin[i] = f.Legs[legIndex].Origin
				destination[i] = f.Legs[legIndex].Destination
			}

			if perms[legIndex] == nil {
				perms[legIndex] = make(map[schedule.Weekday]LegWeekdayPermissions)
			}
			perms[legIndex][day] = LegWeekdayPermissions{
				Origin:      compressPermissionWindows(dates, origin),
				Destination: compressPermissionWindows(dates, destination),
			}
		}
	}
	return perms
}

// detectTimeChange reports whether any occurrence's actual departure
// time-of-day or block time differs from its nominal weekday schedule, which
// happens when individual dates carry edited times.
func detectTimeChange(flights []*schedule.Flight) bool {
	for _, f := range flights {
		for _, leg := range f.Legs {
			if clipToDay(leg.ActualStd) != leg.Std.Minutes() {
				return true
			}
			if blockMinutes(leg) != leg.BlockTime.Minutes() {
				return true
			}
		}
	}
	return false
}

func midnightUTC(t time.Time) time.Time {
	utc := t.UTC()
	return time.Date(utc.Year(), utc.Month(), utc.Day(), 0, 0, 0, 0, time.UTC)
}
