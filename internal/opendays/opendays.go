// Package opendays converts rental lengths expressed in shop-open days into
// calendar dates, using the shop's weekly open/closed schedule.
package opendays

import (
	"sort"
	"strings"
	"time"

	"github.com/segyhp/consignment-engine/internal/domain"
	customError "github.com/segyhp/consignment-engine/pkg/errors"
	"github.com/segyhp/consignment-engine/pkg/utils"
)

// WeeklyConfig maps each weekday to whether the shop is open on it.
//
// An empty config means every day is open. A non-empty config that omits a
// weekday treats that weekday as closed.
type WeeklyConfig map[time.Weekday]bool

var weekdayByName = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// AllOpen returns a fully populated config with every weekday open.
func AllOpen() WeeklyConfig {
	cfg := make(WeeklyConfig, 7)
	for _, d := range weekdayByName {
		cfg[d] = true
	}
	return cfg
}

// ParseWeeklyConfig builds a config from weekday names such as "monday".
// Names are case-insensitive; unknown names are a validation error.
func ParseWeeklyConfig(days map[string]bool) (WeeklyConfig, error) {
	cfg := make(WeeklyConfig, len(days))
	var unknown []string
	for name, open := range days {
		d, ok := weekdayByName[strings.ToLower(strings.TrimSpace(name))]
		if !ok {
			unknown = append(unknown, name)
			continue
		}
		cfg[d] = open
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return nil, customError.WrapValidation("unknown weekday names: %s", strings.Join(unknown, ", "))
	}
	return cfg, nil
}

// IsOpen reports whether the shop is open on weekday d.
func (c WeeklyConfig) IsOpen(d time.Weekday) bool {
	if len(c) == 0 {
		return true
	}
	return c[d]
}

// HasOpenDay reports whether at least one weekday is open.
func (c WeeklyConfig) HasOpenDay() bool {
	for d := time.Sunday; d <= time.Saturday; d++ {
		if c.IsOpen(d) {
			return true
		}
	}
	return false
}

// Names renders all seven weekdays by lower-case name.
func (c WeeklyConfig) Names() map[string]bool {
	names := make(map[string]bool, 7)
	for name, d := range weekdayByName {
		names[name] = c.IsOpen(d)
	}
	return names
}

// ComputeEndDate returns the date of the openDays-th open day, counting start
// itself as the first day when the shop is open on it.
func ComputeEndDate(start time.Time, openDays int, cfg WeeklyConfig) (time.Time, error) {
	if openDays < 1 {
		return time.Time{}, customError.WrapValidation("open days must be at least 1, got %d", openDays)
	}
	// with no open weekday the scan below would never finish
	if !cfg.HasOpenDay() {
		return time.Time{}, customError.WrapInvalidConfiguration("every weekday is marked closed")
	}

	day := utils.DateOnly(start)
	remaining := openDays
	var end time.Time
	for remaining > 0 {
		if cfg.IsOpen(day.Weekday()) {
			remaining--
			end = day
		}
		day = day.AddDate(0, 0, 1)
	}

	return end, nil
}

// CountOpenDays counts open days in [start, end]. An end before start yields 0.
func CountOpenDays(start, end time.Time, cfg WeeklyConfig) int {
	day, last := utils.DateOnly(start), utils.DateOnly(end)
	count := 0
	for !day.After(last) {
		if cfg.IsOpen(day.Weekday()) {
			count++
		}
		day = day.AddDate(0, 0, 1)
	}
	return count
}

// Period computes the full rental period for openDays open days from start.
func Period(start time.Time, openDays int, cfg WeeklyConfig) (*domain.RentalPeriod, error) {
	end, err := ComputeEndDate(start, openDays, cfg)
	if err != nil {
		return nil, err
	}

	start = utils.DateOnly(start)
	return &domain.RentalPeriod{
		StartDate:         start,
		RequestedOpenDays: openDays,
		EndDate:           end,
		CalendarDaySpan:   utils.DaysInclusive(start, end),
	}, nil
}
