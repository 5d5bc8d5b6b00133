package schedule

import (
	"fmt"
	"time"

	"preplan.flightworks.org/internal/daytime"
)

// AssembleFlight combines a dated anchor (the calendar date for the given
// operational weekday) with the authored per-leg schedules, resolving day
// offsets and producing absolute departure/arrival instants, week-relative
// positions, and timeline section fractions.
//
// The anchor date's wall clock is ignored; minutes are added as wall-clock
// offsets from its UTC midnight. Local/UTC conversion is an airport-level
// concern handled by the master-data layer.
func AssembleFlight(id string, date time.Time, route []RouteLeg, days []LegDaySchedule) (*Flight, error) {
	if len(route) == 0 {
		return nil, fmt.Errorf("flight %s: empty route", id)
	}
	if len(route) != len(days) {
		return nil, fmt.Errorf("flight %s: %d route legs but %d day schedules", id, len(route), len(days))
	}

	timings := make([]LegTiming, len(route))
	for i := range route {
		timings[i] = LegTiming{Std: days[i].Std, BlockTime: route[i].BlockTime}
	}
	resolved, err := ResolveDayOffsets(timings)
	if err != nil {
		return nil, fmt.Errorf("flight %s: %w", id, err)
	}

	day := WeekdayOf(date)
	midnight := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	dayBase := int(day) * daytime.MinutesPerDay

	legs := make([]FlightLeg, len(route))
	for i := range route {
		r := resolved[i]
		legs[i] = FlightLeg{
			RouteLeg:    route[i],
			Std:         days[i].Std,
			DayOffset:   r.DayOffset,
			ActualStd:   r.ActualStd,
			ActualSta:   r.ActualSta,
			StdDateTime: midnight.Add(time.Duration(r.ActualStd.Minutes()) * time.Minute),
			StaDateTime: midnight.Add(time.Duration(r.ActualSta.Minutes()) * time.Minute),
			WeekStd:     dayBase + r.ActualStd.Minutes(),
			WeekSta:     dayBase + r.ActualSta.Minutes(),
			Origin:      days[i].Origin,
			Destination: days[i].Destination,
			DerivedID:   fmt.Sprintf("%s#%d", id, route[i].Index),
		}
	}

	weekStart := legs[0].WeekStd
	weekEnd := legs[len(legs)-1].WeekSta
	if weekEnd == weekStart {
		// Section fractions would divide by zero. Reachable only for a
		// single-leg flight with zero block time; reject rather than
		// invent a fallback fraction the timeline would mis-render.
		return nil, fmt.Errorf("flight %s: zero duration (weekStart == weekEnd == %d)", id, weekStart)
	}

	span := float64(weekEnd - weekStart)
	sections := make([]Section, len(legs))
	for i, leg := range legs {
		sections[i] = Section{
			Start: float64(leg.WeekStd-weekStart) / span,
			End:   float64(leg.WeekSta-weekStart) / span,
		}
	}

	return &Flight{
		ID:        id,
		Date:      midnight,
		Day:       day,
		Legs:      legs,
		WeekStart: weekStart,
		WeekEnd:   weekEnd,
		Sections:  sections,
	}, nil
}
