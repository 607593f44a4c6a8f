package holiday

import "slices"

// Observance is a holiday rule resolved to its date in a given year.
type Observance struct {
	Rule Rule
	Date CalendarDate
}

// Observances returns every holiday observed in year, one per rule, in
// chronological order. Two rules can share a date (Ascension Thursday falls on
// 1 May or 8 May in some years); ties keep catalog order. Easter Sunday is
// computed at most once per call. Years before any holiday existed yield an
// empty slice.
func Observances(year int) []Observance {
	var (
		easter   CalendarDate
		computed bool
	)
	easterOf := func() CalendarDate {
		if !computed {
			easter = EasterSunday(year)
			computed = true
		}
		return easter
	}

	out := make([]Observance, 0, len(catalog))
	for _, r := range catalog {
		if !r.ObservedIn(year) {
			continue
		}
		out = append(out, Observance{Rule: r, Date: r.resolve(year, easterOf)})
	}
	slices.SortStableFunc(out, func(a, b Observance) int { return a.Date.Compare(b.Date) })
	return out
}

// HolidaysForYear returns the distinct dates of the bank holidays observed in
// year, in chronological order.
func HolidaysForYear(year int) []CalendarDate {
	obs := Observances(year)
	out := make([]CalendarDate, 0, len(obs))
	for _, o := range obs {
		if n := len(out); n > 0 && out[n-1] == o.Date {
			continue
		}
		out = append(out, o.Date)
	}
	return out
}

// HolidayOn returns the observance falling on d, if any.
func HolidayOn(d CalendarDate) (Observance, bool) {
	for _, o := range Observances(d.Year) {
		if o.Date == d {
			return o, true
		}
	}
	return Observance{}, false
}

// IsHoliday reports whether d is a French bank holiday.
func IsHoliday(d CalendarDate) bool {
	_, ok := HolidayOn(d)
	return ok
}

// Per-holiday getters. They return the date the holiday falls on in year
// without checking whether it was observed; use Rule.ObservedIn for that.

func NewYearsDay(year int) CalendarDate       { return NewDate(year, 1, 1) }
func EasterMonday(year int) CalendarDate      { return EasterSunday(year).AddDays(easterMondayOffset) }
func LabourDay(year int) CalendarDate         { return NewDate(year, 5, 1) }
func VictoryDay(year int) CalendarDate        { return NewDate(year, 5, 8) }
func AscensionThursday(year int) CalendarDate { return EasterSunday(year).AddDays(ascensionThursdayOffset) }
func WhitMonday(year int) CalendarDate        { return EasterSunday(year).AddDays(whitMondayOffset) }
func NationalDay(year int) CalendarDate       { return NewDate(year, 7, 14) }
func AssumptionDay(year int) CalendarDate     { return NewDate(year, 8, 15) }
func AllSaintsDay(year int) CalendarDate      { return NewDate(year, 11, 1) }
func ArmisticeDay(year int) CalendarDate      { return NewDate(year, 11, 11) }
func ChristmasDay(year int) CalendarDate      { return NewDate(year, 12, 25) }
