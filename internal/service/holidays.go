package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/guttosm/frholidays/internal/businessday"
	"github.com/guttosm/frholidays/internal/dates"
	"github.com/guttosm/frholidays/internal/domain/models"
	"github.com/guttosm/frholidays/internal/holiday"
	"github.com/guttosm/frholidays/internal/logger"
)

const (
	// MaxRangeYears caps the number of years a single range query may span.
	MaxRangeYears = 200
	// MaxBusinessDays caps LastBusinessDays.
	MaxBusinessDays = 31
	// MaxBusinessShift caps |n| for AddBusinessDays (about one working year).
	MaxBusinessShift = 260
)

var (
	// ErrUnknownHoliday is returned for a key that is not in the catalog.
	ErrUnknownHoliday = errors.New("unknown holiday")
	// ErrInvalidRange is returned for inverted or oversized year ranges and
	// out-of-bounds business-day counts.
	ErrInvalidRange = errors.New("invalid range")
)

// HolidayService exposes the holiday engine to transports (HTTP, CLI).
// Raw date input is parsed with the configured timezone; a nil year or an
// empty date means "now" according to the injected clock.
//
// Check accepts any form dates.Normalizer.Resolve understands: a string, a
// time.Time, a holiday.CalendarDate or an integer year (January 1).
type HolidayService interface {
	ForYear(ctx context.Context, year *int) (models.YearHolidays, error)
	ForRange(ctx context.Context, from, to int) ([]models.YearHolidays, error)
	Check(ctx context.Context, date any) (models.Check, error)
	Named(ctx context.Context, key string, year *int) (models.NamedHoliday, error)
	Easter(ctx context.Context, year *int) (holiday.CalendarDate, error)
	LastBusinessDays(ctx context.Context, from string, n int) ([]holiday.CalendarDate, error)
	NextBusinessDay(ctx context.Context, from string) (holiday.CalendarDate, error)
	AddBusinessDays(ctx context.Context, from string, n int) (models.BusinessShift, error)
}

type holidayService struct {
	norm        *dates.Normalizer
	clock       dates.Clock
	cal         *businessday.Calendar
	parallelism int
}

// NewHolidayService wires the engine with a timezone policy and a clock.
// parallelism bounds ForRange's concurrency; values below 1 mean 1.
func NewHolidayService(norm *dates.Normalizer, clock dates.Clock, parallelism int) HolidayService {
	if clock == nil {
		clock = dates.SystemClock{}
	}
	if parallelism < 1 {
		parallelism = 1
	}
	return &holidayService{
		norm:        norm,
		clock:       clock,
		cal:         businessday.New(),
		parallelism: parallelism,
	}
}

func (s *holidayService) year(year *int) int {
	if year != nil {
		return *year
	}
	return s.norm.CurrentYear(s.clock)
}

func (s *holidayService) date(v any) (holiday.CalendarDate, error) {
	if v == nil || v == "" {
		return s.norm.Resolve(s.clock.Now())
	}
	return s.norm.Resolve(v)
}

func (s *holidayService) ForYear(_ context.Context, year *int) (models.YearHolidays, error) {
	return yearHolidays(s.year(year)), nil
}

// ForRange computes every year in [from, to] concurrently and returns them in
// ascending order. The first cancellation aborts the remaining years.
func (s *holidayService) ForRange(ctx context.Context, from, to int) ([]models.YearHolidays, error) {
	if to < from {
		return nil, fmt.Errorf("%w: from %d is after to %d", ErrInvalidRange, from, to)
	}
	// to >= from, so uint(to-from) is exact even when the int subtraction wraps.
	if uint(to-from) >= MaxRangeYears {
		return nil, fmt.Errorf("%w: %d..%d spans more than %d years", ErrInvalidRange, from, to, MaxRangeYears)
	}

	out := make([]models.YearHolidays, to-from+1)
	g, gctx := errgroup.WithContext(ctx)
	sem := make(chan struct{}, s.parallelism)

	for i := range out {
		idx := i
		select {
		case sem <- struct{}{}:
		case <-gctx.Done():
			_ = g.Wait()
			return nil, gctx.Err()
		}
		g.Go(func() error {
			defer func() { <-sem }()
			if err := gctx.Err(); err != nil {
				return err
			}
			out[idx] = yearHolidays(from + idx)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	logger.L().Debug().Int("from", from).Int("to", to).Int("parallel", s.parallelism).Msg("range computed")
	return out, nil
}

func (s *holidayService) Check(_ context.Context, v any) (models.Check, error) {
	d, err := s.date(v)
	if err != nil {
		return models.Check{}, err
	}
	res := models.Check{Date: d.String()}
	if o, ok := holiday.HolidayOn(d); ok {
		h := toModel(o)
		res.IsHoliday = true
		res.Holiday = &h
	}
	return res, nil
}

func (s *holidayService) Named(_ context.Context, key string, year *int) (models.NamedHoliday, error) {
	r, ok := holiday.Lookup(holiday.Key(key))
	if !ok {
		return models.NamedHoliday{}, fmt.Errorf("%w: %q", ErrUnknownHoliday, key)
	}
	y := s.year(year)
	return models.NamedHoliday{
		Holiday:  toModel(holiday.Observance{Rule: r, Date: r.DateIn(y)}),
		Year:     y,
		Observed: r.ObservedIn(y),
	}, nil
}

func (s *holidayService) Easter(_ context.Context, year *int) (holiday.CalendarDate, error) {
	return holiday.EasterSunday(s.year(year)), nil
}

func (s *holidayService) LastBusinessDays(_ context.Context, from string, n int) ([]holiday.CalendarDate, error) {
	if n < 1 || n > MaxBusinessDays {
		return nil, fmt.Errorf("%w: n must be between 1 and %d, got %d", ErrInvalidRange, MaxBusinessDays, n)
	}
	d, err := s.date(from)
	if err != nil {
		return nil, err
	}
	return s.cal.LastNBusinessDays(n, d), nil
}

func (s *holidayService) NextBusinessDay(_ context.Context, from string) (holiday.CalendarDate, error) {
	d, err := s.date(from)
	if err != nil {
		return holiday.CalendarDate{}, err
	}
	return s.cal.NextBusinessDay(d), nil
}

// AddBusinessDays moves n business days from from (backwards when n < 0) and
// reports the weekday holidays skipped on the way.
func (s *holidayService) AddBusinessDays(_ context.Context, from string, n int) (models.BusinessShift, error) {
	if n < -MaxBusinessShift || n > MaxBusinessShift {
		return models.BusinessShift{}, fmt.Errorf("%w: n must be between -%d and %d, got %d", ErrInvalidRange, MaxBusinessShift, MaxBusinessShift, n)
	}
	d, err := s.date(from)
	if err != nil {
		return models.BusinessShift{}, err
	}

	to := s.cal.AddBusinessDays(d, n)
	var closures []businessday.Closure
	switch {
	case n > 0:
		closures = s.cal.ClosuresBetween(d.AddDays(1), to)
	case n < 0:
		closures = s.cal.ClosuresBetween(to, d.AddDays(-1))
	}

	out := models.BusinessShift{
		From:    dates.Format(d),
		N:       n,
		Date:    dates.Format(to),
		Skipped: make([]models.Closure, len(closures)),
	}
	for i, c := range closures {
		out.Skipped[i] = models.Closure{Date: dates.Format(c.Date), Name: c.Name}
	}
	return out, nil
}

func yearHolidays(year int) models.YearHolidays {
	obs := holiday.Observances(year)
	out := models.YearHolidays{Year: year, Holidays: make([]models.Holiday, len(obs))}
	for i, o := range obs {
		out.Holidays[i] = toModel(o)
	}
	return out
}

func toModel(o holiday.Observance) models.Holiday {
	return models.Holiday{
		Key:        string(o.Rule.Key()),
		Name:       o.Rule.Name(),
		FrenchName: o.Rule.FrenchName(),
		Date:       dates.Format(o.Date),
		Movable:    o.Rule.Movable(),
	}
}
