// Package datetime provides the calendar-day clock used to key daily rotations.
package datetime

import (
	"fmt"
	"strings"
	"time"

	"github.com/iwvelando/vendor-insights/pkg/constants"
)

// DayKeyLayout is the format of a day key, e.g. 2025-01-15.
const DayKeyLayout = constants.DayKeyLayout

// Clock reports the current instant. Production code uses SystemClock; tests
// inject a FixedClock.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a function to the Clock interface.
type ClockFunc func() time.Time

// Now implements Clock.
func (f ClockFunc) Now() time.Time { return f() }

// SystemClock is the wall clock.
var SystemClock Clock = ClockFunc(time.Now)

// FixedClock always reports the same instant.
type FixedClock time.Time

// Now implements Clock.
func (c FixedClock) Now() time.Time { return time.Time(c) }

// LoadLocation resolves a timezone name. An empty name means UTC.
func LoadLocation(name string) (*time.Location, error) {
	name = strings.TrimSpace(name)
	if name == "" || strings.EqualFold(name, constants.DefaultTimezone) {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("unknown timezone %q: %w", name, err)
	}
	return loc, nil
}

// DayKey formats the calendar day of t in loc as YYYY-MM-DD. A nil location
// means UTC.
func DayKey(t time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	return t.In(loc).Format(DayKeyLayout)
}

// OffsetDay returns the calendar day that is days before (negative) or after
// (positive) t, at the same wall time in loc. Calendar arithmetic is used so
// DST transitions never skip or repeat a day.
func OffsetDay(t time.Time, loc *time.Location, days int) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	return t.In(loc).AddDate(0, 0, days)
}

// ParseDay parses a YYYY-MM-DD string as midday in loc. Midday keeps the
// instant inside the intended calendar day whatever the zone offset.
func ParseDay(value string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	t, err := time.ParseInLocation(DayKeyLayout, strings.TrimSpace(value), loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid day %q, expected %s: %w", value, DayKeyLayout, err)
	}
	return t.Add(12 * time.Hour), nil
}

// MustParseDay parses a day string and panics on error.
// This is intended for use in tests where the date string is known to be valid.
func MustParseDay(value string) time.Time {
	t, err := ParseDay(value, time.UTC)
	if err != nil {
		panic(err)
	}
	return t
}
