package analytics

import (
	"strings"
	"time"

	"github.com/jinzhu/now"
	"github.com/pkg/errors"
)

type Granularity string

const (
	Day   Granularity = "day"
	Month Granularity = "month"
)

var ErrUnknownGranularity = errors.New("unknown granularity")

func ParseGranularity(s string) (Granularity, error) {
	switch g := Granularity(strings.ToLower(strings.TrimSpace(s))); g {
	case Day, Month:
		return g, nil
	}
	return "", errors.Wrapf(ErrUnknownGranularity, "parse %q", s)
}

// PeriodRange returns the first and the last instant of the day or month
// containing ref.
func PeriodRange(ref time.Time, granularity Granularity) (from, to time.Time) {
	t := now.With(ref)
	if granularity == Month {
		return t.BeginningOfMonth(), t.EndOfMonth()
	}
	return t.BeginningOfDay(), t.EndOfDay()
}

// Shift moves ref by n days or months. Moving past current is refused and
// ref is returned unchanged with ok set to false.
func Shift(ref time.Time, granularity Granularity, n int, current time.Time) (time.Time, bool) {
	var next time.Time
	if granularity == Month {
		next = AddMonths(ref, n)
	} else {
		next = ref.AddDate(0, 0, n)
	}
	if next.After(current) {
		return ref, false
	}
	return next, true
}

func CanNavigateForward(ref time.Time, granularity Granularity, current time.Time) bool {
	_, ok := Shift(ref, granularity, 1, current)
	return ok
}

// AddMonths adds n calendar months, clamping the day to the length of the
// target month (Jan 31 + 1 month is Feb 28 or 29).
func AddMonths(t time.Time, n int) time.Time {
	first := time.Date(t.Year(), t.Month(), 1, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
	target := first.AddDate(0, n, 0)
	day := t.Day()
	if last := DaysInMonth(target); day > last {
		day = last
	}
	return target.AddDate(0, 0, day-1)
}

func DaysInMonth(t time.Time) int {
	return now.With(t).EndOfMonth().Day()
}
