// Package dates is the boundary between raw caller input (strings, timestamps,
// integers) and holiday.CalendarDate values. It owns the timezone policy: the
// holiday engine itself never sees a *time.Location.
package dates

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/guttosm/frholidays/internal/holiday"
)

// Layout is the canonical YYYY-MM-DD format used for input and output.
const Layout = "2006-01-02"

// DefaultTimezone is the zone French bank holidays are evaluated in unless the
// caller configures another one.
const DefaultTimezone = "Europe/Paris"

// ErrInvalidDateInput is returned when a value is neither a recognised date
// representation nor a parseable calendar-date string.
var ErrInvalidDateInput = errors.New("invalid date input")

// Normalizer turns caller input into calendar dates in a fixed location.
type Normalizer struct {
	loc *time.Location
}

// NewNormalizer returns a Normalizer for loc. A nil loc means UTC.
func NewNormalizer(loc *time.Location) *Normalizer {
	if loc == nil {
		loc = time.UTC
	}
	return &Normalizer{loc: loc}
}

// LoadNormalizer resolves the IANA zone name and returns a Normalizer for it.
func LoadNormalizer(name string) (*Normalizer, error) {
	if strings.TrimSpace(name) == "" {
		name = DefaultTimezone
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", name, err)
	}
	return NewNormalizer(loc), nil
}

// Location returns the zone timestamps are converted to.
func (n *Normalizer) Location() *time.Location {
	return n.loc
}

// FromTime converts t to the Normalizer's zone and drops the time of day.
func (n *Normalizer) FromTime(t time.Time) holiday.CalendarDate {
	return holiday.FromTime(t.In(n.loc))
}

// Parse accepts:
//   - "YYYY-MM-DD": that calendar day.
//   - "YYYY": January 1 of that year.
//   - RFC 3339 timestamps: converted to the Normalizer's zone, then truncated.
func (n *Normalizer) Parse(s string) (holiday.CalendarDate, error) {
	s = strings.TrimSpace(s)
	switch {
	case s == "":
		return holiday.CalendarDate{}, fmt.Errorf("%w: empty string", ErrInvalidDateInput)
	case isYear(s):
		y, err := strconv.Atoi(s)
		if err != nil {
			return holiday.CalendarDate{}, fmt.Errorf("%w: %q: %v", ErrInvalidDateInput, s, err)
		}
		return holiday.NewDate(y, time.January, 1), nil
	}

	if t, err := time.ParseInLocation(Layout, s, n.loc); err == nil {
		return holiday.FromTime(t), nil
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return n.FromTime(t), nil
	}
	return holiday.CalendarDate{}, fmt.Errorf("%w: %q is not YYYY-MM-DD, YYYY or RFC 3339", ErrInvalidDateInput, s)
}

// Resolve converts any supported representation to a calendar date:
// holiday.CalendarDate, time.Time, *time.Time, string, or an integer year.
func (n *Normalizer) Resolve(v any) (holiday.CalendarDate, error) {
	switch x := v.(type) {
	case holiday.CalendarDate:
		return x, nil
	case time.Time:
		return n.FromTime(x), nil
	case *time.Time:
		if x == nil {
			return holiday.CalendarDate{}, fmt.Errorf("%w: nil *time.Time", ErrInvalidDateInput)
		}
		return n.FromTime(*x), nil
	case string:
		return n.Parse(x)
	case int:
		return holiday.NewDate(x, time.January, 1), nil
	case int64:
		return holiday.NewDate(int(x), time.January, 1), nil
	default:
		return holiday.CalendarDate{}, fmt.Errorf("%w: unsupported type %T", ErrInvalidDateInput, v)
	}
}

// ParseYear parses a year given on its own, as in a year query parameter.
// Any integer is accepted: years outside the catalog simply have no holidays.
func ParseYear(s string) (int, error) {
	s = strings.TrimSpace(s)
	y, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: year %q is not an integer", ErrInvalidDateInput, s)
	}
	return y, nil
}

// Format renders d as YYYY-MM-DD.
func Format(d holiday.CalendarDate) string {
	return d.String()
}

// FormatAll renders every date as YYYY-MM-DD.
func FormatAll(ds []holiday.CalendarDate) []string {
	out := make([]string, len(ds))
	for i, d := range ds {
		out[i] = d.String()
	}
	return out
}

func isYear(s string) bool {
	if len(s) == 0 || len(s) > 4 {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
