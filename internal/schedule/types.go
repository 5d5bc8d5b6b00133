// Package schedule turns weekly-recurring flight requirement definitions into
// concrete, day-correct flight instances: it resolves per-leg day offsets so
// every departure strictly follows the previous leg's arrival, and assembles
// dated flights with week-relative positions and timeline section fractions.
package schedule

import (
	"time"

	"preplan.flightworks.org/internal/daytime"
)

// RouteLeg is the week-invariant definition of one leg of a requirement.
// Created once when the requirement is authored; immutable thereafter.
type RouteLeg struct {
	Index            int             `json:"index"`
	FlightNumber     string          `json:"flightNumber"`
	DepartureAirport string          `json:"departureAirport"`
	ArrivalAirport   string          `json:"arrivalAirport"`
	BlockTime        daytime.Daytime `json:"-"`
	ServiceType      string          `json:"serviceType"`
}

// Permission is one side (origin or destination) of a leg's slot permission
// on a given weekday, with its free-text note.
type Permission struct {
	Allowed bool   `json:"allowed"`
	Note    string `json:"note,omitempty"`
}

// LegDaySchedule is the exact-form authored data for one leg on one weekday:
// a nominal departure time-of-day with no day offset.
type LegDaySchedule struct {
	Std         daytime.Daytime
	Origin      Permission
	Destination Permission
}

// LegDayWindow is the bounded-window form used by the "change" (what-if)
// representation: a permissible departure window instead of a single time.
// An invalid upper bound means the window collapses to the lower bound.
type LegDayWindow struct {
	StdLowerBound daytime.Daytime
	StdUpperBound daytime.Daytime
	Origin        Permission
	Destination   Permission
}

// ResolvedLeg is the output of exact-form day-offset resolution. ActualStd
// and ActualSta are absolute minute values unbounded by 24:00.
type ResolvedLeg struct {
	DayOffset int
	ActualStd daytime.Daytime
	ActualSta daytime.Daytime
}

// ResolvedWindow is the output of bounded-window resolution. Both bounds
// carry the same day offset; StaLowerBound is the earliest possible arrival.
type ResolvedWindow struct {
	DayOffset     int
	StdLowerBound daytime.Daytime
	StdUpperBound daytime.Daytime
	StaLowerBound daytime.Daytime
}

// Section is one leg's position within [weekStart, weekEnd] normalized to
// [0, 1], used purely for timeline rendering.
type Section struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
}

// FlightLeg is one dated, resolved leg of a Flight.
type FlightLeg struct {
	RouteLeg

	// Std is the nominal weekday time-of-day the leg was authored with.
	Std daytime.Daytime

	DayOffset int
	ActualStd daytime.Daytime
	ActualSta daytime.Daytime

	StdDateTime time.Time
	StaDateTime time.Time

	// Week-relative minute positions, day*1440 based.
	WeekStd int
	WeekSta int

	Origin      Permission
	Destination Permission

	// DerivedID is the stable identity the constraint engine attaches
	// violations to, formed as "<flightID>#<legIndex>".
	DerivedID string
}

// Flight is one dated realization of a weekday schedule.
type Flight struct {
	ID        string
	Date      time.Time
	Day       Weekday
	Legs      []FlightLeg
	WeekStart int
	WeekEnd   int
	Sections  []Section
}
