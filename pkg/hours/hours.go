package hours

import (
	"fmt"
	"strings"
	"time"
)

// Day codes as stored on working-hour rows, Monday first.
var DayCodes = []string{"mon", "tue", "wed", "thu", "fri", "sat", "sun"}

// DayCode returns the three-letter lowercase code for t's weekday.
// This is the single derivation used both by the aggregate is_open filter
// and by per-entry flags.
func DayCode(t time.Time) string { return strings.ToLower(t.Format("Mon")) }

// ValidDay reports whether s is one of the seven day codes.
func ValidDay(s string) bool {
	for _, d := range DayCodes {
		if s == d {
			return true
		}
	}
	return false
}

// TimeOfDay is a wall-clock time in "HH:MM". Zero-padded, so lexicographic
// comparison matches chronological order.
type TimeOfDay string

// Clock projects t onto a TimeOfDay in t's location.
func Clock(t time.Time) TimeOfDay { return TimeOfDay(t.Format("15:04")) }

// Parse validates s as "HH:MM".
func Parse(s string) (TimeOfDay, error) {
	if _, err := time.Parse("15:04", s); err != nil {
		return "", fmt.Errorf("bad time of day %q: want HH:MM", s)
	}
	return TimeOfDay(s), nil
}

// OpenState classifies an entry against a reference instant.
type OpenState int

const (
	Closed OpenState = iota
	Open
	Unknown // opening or closing bound missing
)

// Status evaluates an entry already known to match the reference day.
// Bounds are inclusive at both ends. A missing bound yields Unknown; the
// entry counts as neither open nor closed.
func Status(opening, closing *TimeOfDay, ref time.Time) OpenState {
	if opening == nil || closing == nil {
		return Unknown
	}
	now := Clock(ref)
	if *opening <= now && now <= *closing {
		return Open
	}
	return Closed
}

// Flag renders an OpenState as the JSON is_open value: true, false, or
// null for Unknown.
func (s OpenState) Flag() *bool {
	switch s {
	case Open:
		v := true
		return &v
	case Closed:
		v := false
		return &v
	}
	return nil
}
