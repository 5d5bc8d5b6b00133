// Package daytime provides the minutes-since-midnight value that all schedule
// arithmetic is built on. A Daytime may exceed 24 hours once day offsets have
// been accumulated, and carries an explicit invalid state instead of a NaN.
package daytime

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// MinutesPerDay is the length of one operational day.
const MinutesPerDay = 24 * 60

// Daytime is an immutable minutes-since-midnight value. The zero value is
// invalid; use FromMinutes, Parse, or FromTime to construct valid values.
//
// Two Daytimes are equal only when their minute values are equal: 26:35 and
// 2:35 are distinct instants. Clipping to a 24h clock face is a formatting
// concern, never an equality relation.
type Daytime struct {
	minutes int
	valid   bool
}

// Invalid is the canonical invalid Daytime.
var Invalid = Daytime{}

// FromMinutes builds a Daytime from a minute count. Negative values are
// permitted; they arise transiently during window normalization.
func FromMinutes(m int) Daytime {
	return Daytime{minutes: m, valid: true}
}

// FromDuration builds a Daytime from a duration, truncated to whole minutes.
func FromDuration(d time.Duration) Daytime {
	return FromMinutes(int(d / time.Minute))
}

// Parse builds a Daytime from an "H:MM" string. Hours may exceed 24
// ("26:35"); minutes must be two digits in 00..59. Malformed input yields
// the invalid Daytime rather than an error, matching the upstream contract
// where validation happens in the authoring form.
func Parse(s string) Daytime {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 || len(parts[1]) != 2 {
		return Invalid
	}
	hours, err := strconv.Atoi(parts[0])
	if err != nil || hours < 0 {
		return Invalid
	}
	mins, err := strconv.Atoi(parts[1])
	if err != nil || mins < 0 || mins > 59 {
		return Invalid
	}
	return FromMinutes(hours*60 + mins)
}

// FromTime builds a Daytime from the UTC wall-clock of t.
func FromTime(t time.Time) Daytime {
	utc := t.UTC()
	return FromMinutes(utc.Hour()*60 + utc.Minute())
}

// FromTimeSince builds a Daytime from t measured against the UTC midnight of
// base, so a time on the day after base yields a value past 24:00.
func FromTimeSince(t, base time.Time) Daytime {
	utc := base.UTC()
	midnight := time.Date(utc.Year(), utc.Month(), utc.Day(), 0, 0, 0, 0, time.UTC)
	return FromMinutes(int(t.UTC().Sub(midnight) / time.Minute))
}

// IsValid reports whether the value carries a usable minute count.
func (d Daytime) IsValid() bool {
	return d.valid
}

// Minutes returns the raw minute value. It panics on an invalid Daytime: a
// silent zero here would corrupt every downstream day-roll comparison.
func (d Daytime) Minutes() int {
	d.mustBeValid()
	return d.minutes
}

// Compare returns -1, 0, or +1 as d sorts before, equal to, or after other.
// Panics if either side is invalid.
func (d Daytime) Compare(other Daytime) int {
	d.mustBeValid()
	other.mustBeValid()
	switch {
	case d.minutes < other.minutes:
		return -1
	case d.minutes > other.minutes:
		return 1
	default:
		return 0
	}
}

// Add returns d shifted by other's minutes. Panics if either side is invalid.
func (d Daytime) Add(other Daytime) Daytime {
	d.mustBeValid()
	other.mustBeValid()
	return FromMinutes(d.minutes + other.minutes)
}

// AddMinutes returns d shifted by m minutes.
func (d Daytime) AddMinutes(m int) Daytime {
	d.mustBeValid()
	return FromMinutes(d.minutes + m)
}

// AddDays returns d shifted by whole days.
func (d Daytime) AddDays(days int) Daytime {
	return d.AddMinutes(days * MinutesPerDay)
}

// String formats the value unclipped, so accumulated offsets stay visible:
// 1595 minutes renders as "26:35".
func (d Daytime) String() string {
	if !d.valid {
		return "--:--"
	}
	m := d.minutes
	sign := ""
	if m < 0 {
		sign = "-"
		m = -m
	}
	return fmt.Sprintf("%s%d:%02d", sign, m/60, m%60)
}

// StringClipped formats the value on a 24h clock face: 1595 minutes renders
// as "2:35".
func (d Daytime) StringClipped() string {
	if !d.valid {
		return "--:--"
	}
	m := ((d.minutes % MinutesPerDay) + MinutesPerDay) % MinutesPerDay
	return fmt.Sprintf("%d:%02d", m/60, m%60)
}

func (d Daytime) mustBeValid() {
	if !d.valid {
		panic("daytime: arithmetic on invalid Daytime")
	}
}
