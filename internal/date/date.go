// Package date provides age calculation, month boundaries, seasons and
// humanized relative times.
package date

import (
	"fmt"
	"time"

	"github.com/damacus/iron-kit/internal/errs"
)

// DaysThreshold is the distance in milliseconds below which DisplayTime
// still reports "N days ago". It reads like 30 days but is about 19.7 days;
// the value is kept as published so existing displays do not shift.
const DaysThreshold = 1702967296

// DisplayLayout formats dates that fall outside the relative range.
const DisplayLayout = "2006-01-02"

// ErrFutureBirthday is returned by Age when the birthday is after now.
var ErrFutureBirthday = fmt.Errorf("%w: birthday is after the current time", errs.ErrInvalidArgument)

// now is the clock used by every function in the package.
var now = time.Now

// Age returns the number of whole years between birthday and now.
func Age(birthday time.Time) (int, error) {
	current := now()
	if current.Before(birthday) {
		return 0, ErrFutureBirthday
	}
	birthday = birthday.In(current.Location())

	age := current.Year() - birthday.Year()
	if current.Month() < birthday.Month() ||
		(current.Month() == birthday.Month() && current.Day() < birthday.Day()) {
		age--
	}
	return age, nil
}

// FirstDayOfMonth returns midnight of the first day of t's month, in t's location.
//
//	2018-11-11 08:30:16 -> 2018-11-01 00:00:00.000
func FirstDayOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// LastDayOfMonth returns the last millisecond of the last day of t's month.
//
//	2018-11-11 08:30:16 -> 2018-11-30 23:59:59.999
func LastDayOfMonth(t time.Time) time.Time {
	// Day 0 of the following month normalizes to the last day of this one.
	return time.Date(t.Year(), t.Month()+1, 0, 23, 59, 59, int(999*time.Millisecond), t.Location())
}

// OffsetDate returns now moved by days calendar days; negative values move back.
func OffsetDate(days int) time.Time {
	return now().AddDate(0, 0, days)
}

// DisplayTime renders t relative to now: "just now", "N minutes ago",
// "N hours ago", "N days ago", or the plain date once the distance reaches
// DaysThreshold. The zero time renders as "".
func DisplayTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	ms := now().Sub(t).Milliseconds()
	if ms < 0 {
		ms = -ms
	}

	switch {
	case ms < 60_000:
		return "just now"
	case ms < 3_600_000:
		return plural(ms/60_000, "minute")
	case ms < 86_400_000:
		return plural(ms/3_600_000, "hour")
	case ms < DaysThreshold:
		return plural(ms/86_400_000, "day")
	default:
		return t.Format(DisplayLayout)
	}
}

func plural(n int64, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s ago", unit)
	}
	return fmt.Sprintf("%d %ss ago", n, unit)
}
