package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"preplan.flightworks.org/internal/daytime"
)

func TestNormalizeWindow(t *testing.T) {
	t.Run("already normalized is a no-op", func(t *testing.T) {
		lower, upper := NormalizeWindow(daytime.Parse("8:00"), daytime.Parse("8:30"))
		assert.Equal(t, 480, lower.Minutes())
		assert.Equal(t, 510, upper.Minutes())

		lower2, upper2 := NormalizeWindow(lower, upper)
		assert.Equal(t, lower, lower2)
		assert.Equal(t, upper, upper2)
	})

	t.Run("upper below lower closes next day", func(t *testing.T) {
		lower, upper := NormalizeWindow(daytime.Parse("23:00"), daytime.Parse("1:00"))
		assert.Equal(t, 23*60, lower.Minutes())
		assert.Equal(t, 25*60, upper.Minutes())
	})

	t.Run("absent upper collapses to lower", func(t *testing.T) {
		lower, upper := NormalizeWindow(daytime.Parse("9:15"), daytime.Invalid)
		assert.Equal(t, lower, upper)
	})
}

func TestResolveWindowDayOffsetsNoRollWhenUpperEdgeClears(t *testing.T) {
	legs := []WindowTiming{
		{
			StdLowerBound: daytime.Parse("8:00"),
			StdUpperBound: daytime.Parse("8:30"),
			BlockTime:     daytime.Parse("0:10"),
		},
		{
			StdLowerBound: daytime.Parse("8:15"),
			StdUpperBound: daytime.Parse("8:45"),
			BlockTime:     daytime.Parse("1:00"),
		},
	}

	resolved, err := ResolveWindowDayOffsets(legs)
	require.NoError(t, err)

	// First leg's earliest arrival is 08:10; the second window's upper
	// bound 08:45 clears it, so both legs stay on day 0.
	assert.Equal(t, 0, resolved[0].DayOffset)
	assert.Equal(t, 0, resolved[1].DayOffset)
	assert.Equal(t, 490, resolved[0].StaLowerBound.Minutes())
	assert.Equal(t, 495, resolved[1].StdLowerBound.Minutes())
	assert.Equal(t, 525, resolved[1].StdUpperBound.Minutes())
}

func TestResolveWindowDayOffsetsRollsWholeWindow(t *testing.T) {
	legs := []WindowTiming{
		{
			StdLowerBound: daytime.Parse("20:00"),
			StdUpperBound: daytime.Parse("21:00"),
			BlockTime:     daytime.Parse("3:00"),
		},
		{
			// Even the latest edge (22:30) cannot follow the earliest
			// possible arrival (23:00): the whole window rolls a day.
			StdLowerBound: daytime.Parse("22:00"),
			StdUpperBound: daytime.Parse("22:30"),
			BlockTime:     daytime.Parse("1:00"),
		},
	}

	resolved, err := ResolveWindowDayOffsets(legs)
	require.NoError(t, err)

	assert.Equal(t, 1, resolved[1].DayOffset)
	assert.Equal(t, 22*60+daytime.MinutesPerDay, resolved[1].StdLowerBound.Minutes())
	assert.Equal(t, 22*60+30+daytime.MinutesPerDay, resolved[1].StdUpperBound.Minutes())
}

func TestResolveWindowDayOffsetsUpperEqualToArrivalForcesRoll(t *testing.T) {
	legs := []WindowTiming{
		{
			StdLowerBound: daytime.Parse("8:00"),
			StdUpperBound: daytime.Parse("8:00"),
			BlockTime:     daytime.Parse("2:00"),
		},
		{
			StdLowerBound: daytime.Parse("9:30"),
			StdUpperBound: daytime.Parse("10:00"),
			BlockTime:     daytime.Parse("0:30"),
		},
	}

	resolved, err := ResolveWindowDayOffsets(legs)
	require.NoError(t, err)

	assert.Equal(t, 1, resolved[1].DayOffset)
}

func TestResolveWindowDayOffsetsCollapsedWindowMatchesExactForm(t *testing.T) {
	windows := []WindowTiming{
		{StdLowerBound: daytime.Parse("08:00"), BlockTime: daytime.Parse("1:00")},
		{StdLowerBound: daytime.Parse("09:30"), BlockTime: daytime.Parse("0:30")},
		{StdLowerBound: daytime.Parse("07:00"), BlockTime: daytime.Parse("2:00")},
	}
	exact := legTimings(
		"08:00", "1:00",
		"09:30", "0:30",
		"07:00", "2:00",
	)

	windowed, err := ResolveWindowDayOffsets(windows)
	require.NoError(t, err)
	plain, err := ResolveDayOffsets(exact)
	require.NoError(t, err)

	for i := range plain {
		assert.Equal(t, plain[i].DayOffset, windowed[i].DayOffset, "leg %d", i)
		assert.Equal(t, plain[i].ActualStd.Minutes(), windowed[i].StdLowerBound.Minutes(), "leg %d", i)
		assert.Equal(t, plain[i].ActualSta.Minutes(), windowed[i].StaLowerBound.Minutes(), "leg %d", i)
	}
}

func TestResolveWindowDayOffsetsRejectsBadBounds(t *testing.T) {
	_, err := ResolveWindowDayOffsets([]WindowTiming{
		{
			StdLowerBound: daytime.Parse("8:00"),
			StdUpperBound: daytime.Parse("25:00"),
			BlockTime:     daytime.Parse("1:00"),
		},
	})
	assert.Error(t, err)
}
