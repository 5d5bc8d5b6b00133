package packs

import (
	"preplan.flightworks.org/internal/daytime"
	"preplan.flightworks.org/internal/models"
	"preplan.flightworks.org/internal/schedule"
)

// LegSignature is the structural identity of one leg for grouping purposes:
// the local hour and minute of departure, the block time, and the service
// type. Compared by value, never through a concatenated string, so distinct
// minute values can never collide.
type LegSignature struct {
	LocalHour    int
	LocalMinute  int
	BlockMinutes int
	ServiceType  string
}

// Signature is the per-leg structural identity of a whole flight. Two
// flights belong to the same pack iff their signatures are equal leg by
// leg. The grouping is a pure partition: a one-minute shift yields a
// separate pack.
type Signature []LegSignature

// Equal compares two signatures by value.
func (s Signature) Equal(other Signature) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// AirportLookup resolves an airport code to its master data. A nil result
// means the airport is unknown; departure times then stay in UTC.
type AirportLookup func(code string) *models.Airport

// signatureOf builds the grouping signature for a flight. Departure times
// are converted to the departure airport's local clock so that packs stay
// together across dates as long as the local schedule is unchanged.
func signatureOf(f *schedule.Flight, lookup AirportLookup) Signature {
	sig := make(Signature, len(f.Legs))
	for i, leg := range f.Legs {
		local := leg.StdDateTime
		if lookup != nil {
			if ap := lookup(leg.DepartureAirport); ap != nil {
				local = ap.ConvertUTCToLocal(leg.StdDateTime)
			}
		}
		sig[i] = LegSignature{
			LocalHour:    local.Hour(),
			LocalMinute:  local.Minute(),
			BlockMinutes: blockMinutes(leg),
			ServiceType:  leg.ServiceType,
		}
	}
	return sig
}

func blockMinutes(leg schedule.FlightLeg) int {
	return leg.ActualSta.Minutes() - leg.ActualStd.Minutes()
}

func clipToDay(d daytime.Daytime) int {
	m := d.Minutes() % daytime.MinutesPerDay
	if m < 0 {
		m += daytime.MinutesPerDay
	}
	return m
}
