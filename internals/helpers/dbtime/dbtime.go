// Package dbtime holds the calendar-day helpers shared by the billing code and
// the date columns: every date the API stores is a local midnight.
package dbtime

import (
	"errors"
	"strings"
	"time"
)

// Now is swapped in tests that need a fixed "today".
var Now = time.Now

var ErrInvalidDate = errors.New("invalid date")

// Accepted input layouts, date-only first.
var layouts = []string{
	"2006-01-02",
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
}

// ParseDate parses a request date. Zoned inputs are moved to the local zone
// before any truncation so that "the day" is the local calendar day.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, ErrInvalidDate
	}
	for _, layout := range layouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t.In(time.Local), nil
		}
	}
	return time.Time{}, ErrInvalidDate
}

// ParseDay is ParseDate followed by StartOfDay.
func ParseDay(s string) (time.Time, error) {
	t, err := ParseDate(s)
	if err != nil {
		return time.Time{}, err
	}
	return StartOfDay(t), nil
}

func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// AddDays is calendar-day arithmetic (DST safe, unlike Add(24h*n)).
func AddDays(t time.Time, days int) time.Time {
	return t.AddDate(0, 0, days)
}

// StartOfTomorrow is local midnight of the next calendar day. Date columns
// compared with `< StartOfTomorrow()` include today.
func StartOfTomorrow() time.Time {
	return AddDays(StartOfDay(Now().In(time.Local)), 1)
}
