package dates

import (
	"time"

	"github.com/guttosm/frholidays/internal/holiday"
)

// Clock supplies the current instant for "no date given" defaults.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// FixedClock always returns the same instant. Useful in tests and for
// reproducible CLI runs.
type FixedClock struct {
	At time.Time
}

func (c FixedClock) Now() time.Time { return c.At }

// Today returns the current calendar day in the Normalizer's zone.
func (n *Normalizer) Today(c Clock) holiday.CalendarDate {
	return n.FromTime(c.Now())
}

// CurrentYear returns the current year in the Normalizer's zone.
func (n *Normalizer) CurrentYear(c Clock) int {
	return n.Today(c).Year
}
