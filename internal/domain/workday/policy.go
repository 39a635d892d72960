// Package workday decides whether a calendar day accepts a schedule and
// attendance.
package workday

import (
	"errors"
	"time"
)

// ErrDayNotWorking is returned when a write targets a weekend or holiday
// without the workday override.
var ErrDayNotWorking = errors.New("schedule and attendance cannot be saved on a weekend or holiday")

// Day is the eligibility of one date. ForceWorkday comes from the caller on
// every request and is never stored.
type Day struct {
	Date         string `json:"date"`
	IsHoliday    bool   `json:"isHoliday"`
	IsWeekend    bool   `json:"isWeekend"`
	ForceWorkday bool   `json:"forceWorkday"`
	Blocked      bool   `json:"blocked"`
}

// Blocked reports whether entry is suppressed. The override only lifts a
// block; it never introduces one.
func Blocked(isHoliday, isWeekend, forceWorkday bool) bool {
	return (isHoliday && !forceWorkday) || (isWeekend && !forceWorkday)
}

// IsWeekend reports whether t falls on Saturday or Sunday.
func IsWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

func Evaluate(date time.Time, isHoliday, forceWorkday bool) Day {
	weekend := IsWeekend(date)
	return Day{
		Date:         date.Format("2006-01-02"),
		IsHoliday:    isHoliday,
		IsWeekend:    weekend,
		ForceWorkday: forceWorkday,
		Blocked:      Blocked(isHoliday, weekend, forceWorkday),
	}
}

// Check returns ErrDayNotWorking when the day is blocked.
func (d Day) Check() error {
	if d.Blocked {
		return ErrDayNotWorking
	}
	return nil
}
