// Package businessday answers working-day questions for France: a business day
// is Monday to Friday and not a bank holiday observed that year.
package businessday

import (
	"time"

	cal "github.com/rickar/cal/v2"

	"github.com/guttosm/frholidays/internal/holiday"
)

// Calendar is a business calendar seeded with the French bank-holiday catalog.
// It is safe for concurrent reads once built.
type Calendar struct {
	bc *cal.BusinessCalendar
}

// New builds a Calendar from the holiday catalog.
func New() *Calendar {
	bc := cal.NewBusinessCalendar()
	for _, r := range holiday.Catalog() {
		bc.AddHoliday(toCalHoliday(r))
	}
	return &Calendar{bc: bc}
}

// toCalHoliday adapts a catalog rule. Years in which the rule is not observed
// yield a zero time, which the business calendar treats as "no holiday".
func toCalHoliday(r holiday.Rule) *cal.Holiday {
	return &cal.Holiday{
		Name: r.Name(),
		Type: cal.ObservancePublic,
		Func: func(_ *cal.Holiday, year int) time.Time {
			if !r.ObservedIn(year) {
				return time.Time{}
			}
			return r.DateIn(year).Time(time.UTC)
		},
	}
}

// IsBusinessDay reports whether d is a working day.
func (c *Calendar) IsBusinessDay(d holiday.CalendarDate) bool {
	return c.bc.IsWorkday(d.Time(time.UTC))
}

// HolidayName returns the name of the holiday on d, if the business calendar
// knows one.
func (c *Calendar) HolidayName(d holiday.CalendarDate) (string, bool) {
	actual, observed, h := c.bc.IsHoliday(d.Time(time.UTC))
	if (!actual && !observed) || h == nil {
		return "", false
	}
	return h.Name, true
}

// Closure is a weekday lost to a bank holiday.
type Closure struct {
	Date holiday.CalendarDate
	Name string
}

// ClosuresBetween lists the bank holidays falling Monday to Friday in [a, b],
// in chronological order. The bounds may be given in either order.
func (c *Calendar) ClosuresBetween(a, b holiday.CalendarDate) []Closure {
	if b.Before(a) {
		a, b = b, a
	}
	var out []Closure
	for d := a; !b.Before(d); d = d.AddDays(1) {
		if wd := d.Weekday(); wd == time.Saturday || wd == time.Sunday {
			continue
		}
		if name, ok := c.HolidayName(d); ok {
			out = append(out, Closure{Date: d, Name: name})
		}
	}
	return out
}

// LastNBusinessDays returns the last n business days ending at from
// (inclusive), most recent first.
func (c *Calendar) LastNBusinessDays(n int, from holiday.CalendarDate) []holiday.CalendarDate {
	if n <= 0 {
		return nil
	}
	out := make([]holiday.CalendarDate, 0, n)
	for d := from; len(out) < n; d = d.AddDays(-1) {
		if c.IsBusinessDay(d) {
			out = append(out, d)
		}
	}
	return out
}

// NextBusinessDay returns the first business day strictly after from.
func (c *Calendar) NextBusinessDay(from holiday.CalendarDate) holiday.CalendarDate {
	d := from.AddDays(1)
	for !c.IsBusinessDay(d) {
		d = d.AddDays(1)
	}
	return d
}

// AddBusinessDays moves n business days forward from from, or backward when
// n is negative. n == 0 returns from unchanged, business day or not.
func (c *Calendar) AddBusinessDays(from holiday.CalendarDate, n int) holiday.CalendarDate {
	step := 1
	if n < 0 {
		step, n = -1, -n
	}
	d := from
	for n > 0 {
		d = d.AddDays(step)
		if c.IsBusinessDay(d) {
			n--
		}
	}
	return d
}
