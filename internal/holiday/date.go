// Package holiday computes French bank holidays.
//
// The package is pure: it works on CalendarDate values that callers have already
// resolved to a calendar day in the timezone of their choice.
package holiday

import (
	"cmp"
	"fmt"
	"time"
)

// CalendarDate is a Gregorian calendar day with no time-of-day and no timezone.
//
// Values built with NewDate are always valid dates: out-of-range months and days
// are normalised the way time.Date does (e.g. April 31 becomes May 1).
type CalendarDate struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDate returns the normalised CalendarDate for year, month and day.
func NewDate(year int, month time.Month, day int) CalendarDate {
	return FromTime(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// FromTime returns the calendar day of t in t's own location.
func FromTime(t time.Time) CalendarDate {
	y, m, d := t.Date()
	return CalendarDate{Year: y, Month: m, Day: d}
}

// Time returns midnight of the date in loc. A nil loc means UTC.
func (d CalendarDate) Time(loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc)
}

// AddDays returns the date n calendar days after d (before d when n < 0),
// rolling over month and year boundaries.
func (d CalendarDate) AddDays(n int) CalendarDate {
	return NewDate(d.Year, d.Month, d.Day+n)
}

// Compare returns -1, 0 or +1 depending on whether d is before, equal to or
// after other.
func (d CalendarDate) Compare(other CalendarDate) int {
	switch {
	case d.Year != other.Year:
		return cmp.Compare(d.Year, other.Year)
	case d.Month != other.Month:
		return cmp.Compare(d.Month, other.Month)
	default:
		return cmp.Compare(d.Day, other.Day)
	}
}

// Before reports whether d is strictly earlier than other.
func (d CalendarDate) Before(other CalendarDate) bool {
	return d.Compare(other) < 0
}

// Weekday returns the day of the week of d.
func (d CalendarDate) Weekday() time.Weekday {
	return d.Time(time.UTC).Weekday()
}

// String formats d as YYYY-MM-DD.
func (d CalendarDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}
