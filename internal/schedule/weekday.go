package schedule

import (
	"fmt"
	"strings"
	"time"
)

// Weekday indexes a day within the operational planning week, which starts on
// Saturday. Week-relative minute positions (weekStart/weekEnd on a Flight)
// are measured from Saturday 00:00.
type Weekday int

const (
	Saturday Weekday = iota
	Sunday
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
)

var weekdayNames = [7]string{
	"Saturday", "Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday",
}

// WeekdayOf maps a calendar date to its operational weekday.
func WeekdayOf(t time.Time) Weekday {
	// time.Weekday has Sunday == 0; shift so Saturday == 0.
	return Weekday((int(t.Weekday()) + 1) % 7)
}

// ParseWeekday parses a full weekday name ("Saturday") or its three-letter
// abbreviation ("SAT"), case-insensitively.
func ParseWeekday(s string) (Weekday, error) {
	for i, name := range weekdayNames {
		if strings.EqualFold(s, name) || strings.EqualFold(s, name[:3]) {
			return Weekday(i), nil
		}
	}
	return 0, fmt.Errorf("unknown weekday %q", s)
}

func (w Weekday) String() string {
	return weekdayNames[w]
}

// Abbrev returns the uppercase three-letter abbreviation used in reports.
func (w Weekday) Abbrev() string {
	return strings.ToUpper(weekdayNames[w][:3])
}
