package schedule

import (
	"fmt"
	"math"

	"preplan.flightworks.org/internal/daytime"
)

// WindowTiming is the timing input to bounded-window resolution. An invalid
// upper bound collapses the window to its lower bound.
type WindowTiming struct {
	StdLowerBound daytime.Daytime
	StdUpperBound daytime.Daytime
	BlockTime     daytime.Daytime
}

// NormalizeWindow returns the window with its upper bound lifted past the
// lower bound: an authored upper < lower means the window closes on the next
// day. Normalizing an already-normalized pair is a no-op.
func NormalizeWindow(lower, upper daytime.Daytime) (daytime.Daytime, daytime.Daytime) {
	if !upper.IsValid() {
		upper = lower
	}
	for upper.Compare(lower) < 0 {
		upper = upper.AddDays(1)
	}
	return lower, upper
}

// ResolveWindowDayOffsets applies the rollover algorithm to departure-time
// windows. A window is rolled only when even its latest edge cannot follow
// the previous leg's earliest possible arrival, which keeps the widest
// feasible window open for downstream constraint solving.
func ResolveWindowDayOffsets(legs []WindowTiming) ([]ResolvedWindow, error) {
	resolved := make([]ResolvedWindow, 0, len(legs))

	dayOffset := 0
	previousStaLower := math.MinInt

	for i, leg := range legs {
		if err := validateLegTiming(i, leg.StdLowerBound, leg.BlockTime); err != nil {
			return nil, err
		}
		if leg.StdUpperBound.IsValid() &&
			(leg.StdUpperBound.Minutes() < 0 || leg.StdUpperBound.Minutes() >= daytime.MinutesPerDay) {
			return nil, fmt.Errorf("leg %d: std upper bound %s is not a time of day", i, leg.StdUpperBound)
		}

		lower, upper := NormalizeWindow(leg.StdLowerBound, leg.StdUpperBound)

		lowerM := lower.Minutes() + dayOffset*daytime.MinutesPerDay
		upperM := upper.Minutes() + dayOffset*daytime.MinutesPerDay
		for upperM <= previousStaLower {
			dayOffset++
			lowerM += daytime.MinutesPerDay
			upperM += daytime.MinutesPerDay
		}

		staLower := lowerM + leg.BlockTime.Minutes()

		resolved = append(resolved, ResolvedWindow{
			DayOffset:     dayOffset,
			StdLowerBound: daytime.FromMinutes(lowerM),
			StdUpperBound: daytime.FromMinutes(upperM),
			StaLowerBound: daytime.FromMinutes(staLower),
		})
		previousStaLower = staLower
	}

	return resolved, nil
}
