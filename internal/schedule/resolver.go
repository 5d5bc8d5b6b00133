package schedule

import (
	"fmt"
	"math"

	"preplan.flightworks.org/internal/daytime"
)

// LegTiming is the timing input to exact-form day-offset resolution: a
// nominal departure time-of-day (no offset) and a block time.
type LegTiming struct {
	Std       daytime.Daytime
	BlockTime daytime.Daytime
}

// validateLegTiming enforces the rollover preconditions once, at the engine
// boundary: the nominal std must be a time-of-day in [0:00, 24:00) and the
// block time must be non-negative and under 24h. Without these the roll
// loops below have no termination guarantee.
func validateLegTiming(i int, std, block daytime.Daytime) error {
	if !std.IsValid() {
		return fmt.Errorf("leg %d: invalid std", i)
	}
	if !block.IsValid() {
		return fmt.Errorf("leg %d: invalid block time", i)
	}
	if std.Minutes() < 0 || std.Minutes() >= daytime.MinutesPerDay {
		return fmt.Errorf("leg %d: std %s is not a time of day", i, std)
	}
	if block.Minutes() < 0 {
		return fmt.Errorf("leg %d: negative block time %s", i, block)
	}
	if block.Minutes() >= daytime.MinutesPerDay {
		return fmt.Errorf("leg %d: block time %s exceeds 24h", i, block)
	}
	return nil
}

// ResolveDayOffsets computes, for each leg in index order, how many whole
// days past the anchor date its departure actually falls. A leg rolls
// forward one day at a time until its departure strictly follows the
// previous leg's arrival; equality counts as a conflict, so back-to-back
// legs on the same absolute minute force a roll. The greedy one-day steps
// yield the minimal offsets satisfying the monotonic invariant.
func ResolveDayOffsets(legs []LegTiming) ([]ResolvedLeg, error) {
	resolved := make([]ResolvedLeg, 0, len(legs))

	dayOffset := 0
	previousSta := math.MinInt

	for i, leg := range legs {
		if err := validateLegTiming(i, leg.Std, leg.BlockTime); err != nil {
			return nil, err
		}

		actualStd := leg.Std.Minutes() + dayOffset*daytime.MinutesPerDay
		for actualStd <= previousSta {
			dayOffset++
			actualStd += daytime.MinutesPerDay
		}

		actualSta := actualStd + leg.BlockTime.Minutes()
		// Unreachable for validated non-negative block times, kept as a
		// guard on the arrival-follows-departure invariant.
		for actualSta < actualStd {
			actualSta += daytime.MinutesPerDay
		}

		resolved = append(resolved, ResolvedLeg{
			DayOffset: dayOffset,
			ActualStd: daytime.FromMinutes(actualStd),
			ActualSta: daytime.FromMinutes(actualSta),
		})
		previousSta = actualSta
	}

	return resolved, nil
}
