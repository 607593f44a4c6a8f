package holiday

import "time"

// Key identifies a catalog entry. Keys are stable and URL-safe.
type Key string

const (
	NewYearsDayKey       Key = "new-years-day"
	EasterMondayKey      Key = "easter-monday"
	LabourDayKey         Key = "labour-day"
	VictoryDayKey        Key = "victory-day"
	AscensionThursdayKey Key = "ascension-thursday"
	WhitMondayKey        Key = "whit-monday"
	NationalDayKey       Key = "national-day"
	AssumptionDayKey     Key = "assumption-day"
	AllSaintsDayKey      Key = "all-saints-day"
	ArmisticeDayKey      Key = "armistice-day"
	ChristmasDayKey      Key = "christmas-day"
)

// Offsets from Easter Sunday, in days.
const (
	easterMondayOffset      = 1
	ascensionThursdayOffset = 39
	whitMondayOffset        = 50
)

// Rule describes one bank holiday: how its date is derived and in which years
// it is observed. Rules are immutable; the catalog is fixed at build time.
type Rule struct {
	key        Key
	name       string
	frenchName string

	// fixed-date rules
	month time.Month
	day   int

	// Easter-relative rules
	movable      bool
	easterOffset int

	valid func(year int) bool
}

func fixedRule(key Key, name, frenchName string, month time.Month, day int, valid func(int) bool) Rule {
	return Rule{key: key, name: name, frenchName: frenchName, month: month, day: day, valid: valid}
}

func easterRule(key Key, name, frenchName string, offset int, valid func(int) bool) Rule {
	return Rule{key: key, name: name, frenchName: frenchName, movable: true, easterOffset: offset, valid: valid}
}

func after(y int) func(int) bool   { return func(year int) bool { return year > y } }
func atLeast(y int) func(int) bool { return func(year int) bool { return year >= y } }

// The 8 May holiday existed from 1953 to 1959, was abolished, and came back in 1982.
func victoryDayObserved(year int) bool {
	return (year >= 1953 && year <= 1959) || year > 1981
}

// catalog is in chronological order for every year.
var catalog = [...]Rule{
	fixedRule(NewYearsDayKey, "New Year's Day", "Jour de l'an", time.January, 1, after(1810)),
	easterRule(EasterMondayKey, "Easter Monday", "Lundi de Pâques", easterMondayOffset, atLeast(1886)),
	fixedRule(LabourDayKey, "Labour Day", "Fête du travail", time.May, 1, atLeast(1920)),
	fixedRule(VictoryDayKey, "Victory in Europe Day", "8 mai 1945", time.May, 8, victoryDayObserved),
	easterRule(AscensionThursdayKey, "Ascension Thursday", "Jeudi de l'Ascension", ascensionThursdayOffset, atLeast(1802)),
	easterRule(WhitMondayKey, "Whit Monday", "Lundi de Pentecôte", whitMondayOffset, atLeast(1886)),
	fixedRule(NationalDayKey, "National Day", "Fête nationale", time.July, 14, atLeast(1880)),
	fixedRule(AssumptionDayKey, "Assumption Day", "Assomption", time.August, 15, atLeast(1802)),
	fixedRule(AllSaintsDayKey, "All Saints' Day", "Toussaint", time.November, 1, atLeast(1802)),
	fixedRule(ArmisticeDayKey, "Armistice Day", "Armistice 1918", time.November, 11, atLeast(1918)),
	fixedRule(ChristmasDayKey, "Christmas Day", "Noël", time.December, 25, atLeast(1802)),
}

// Catalog returns a copy of every rule in catalog order.
func Catalog() []Rule {
	out := make([]Rule, len(catalog))
	copy(out, catalog[:])
	return out
}

// Lookup returns the rule registered under key.
func Lookup(key Key) (Rule, bool) {
	for _, r := range catalog {
		if r.key == key {
			return r, true
		}
	}
	return Rule{}, false
}

func (r Rule) Key() Key           { return r.key }
func (r Rule) Name() string       { return r.name }
func (r Rule) FrenchName() string { return r.frenchName }

// Movable reports whether the date is derived from Easter Sunday.
func (r Rule) Movable() bool { return r.movable }

// EasterOffset is the number of days after Easter Sunday; zero for fixed rules.
func (r Rule) EasterOffset() int { return r.easterOffset }

// ObservedIn reports whether the holiday was an official bank holiday in year.
func (r Rule) ObservedIn(year int) bool {
	return r.valid != nil && r.valid(year)
}

// DateIn returns the date the holiday falls on in year, whether or not it was
// observed that year.
func (r Rule) DateIn(year int) CalendarDate {
	return r.resolve(year, func() CalendarDate { return EasterSunday(year) })
}

func (r Rule) resolve(year int, easter func() CalendarDate) CalendarDate {
	if r.movable {
		return easter().AddDays(r.easterOffset)
	}
	return NewDate(year, r.month, r.day)
}
