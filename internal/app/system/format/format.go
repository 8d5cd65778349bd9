// Package format renders numbers and times the way the pages display them.
package format

import (
	"time"

	"github.com/dustin/go-humanize"
)

// Int renders n with thousands separators: 52340 -> "52,340".
func Int(n int) string {
	return humanize.Comma(int64(n))
}

// Decimal renders f with thousands separators and at most one decimal
// place: 84.5 -> "84.5", 98 -> "98".
func Decimal(f float64) string {
	return humanize.CommafWithDigits(f, 1)
}

// Percent renders a rate as "84.5%".
func Percent(f float64) string {
	return Decimal(f) + "%"
}

// ShortDate renders t as "1/20/2026".
func ShortDate(t time.Time) string {
	return t.Format("1/2/2006")
}

// LongDate renders t as "Tuesday, January 20, 2026".
func LongDate(t time.Time) string {
	return t.Format("Monday, January 2, 2006")
}

// ClockTime renders t as "9:05:00 AM".
func ClockTime(t time.Time) string {
	return t.Format("3:04:05 PM")
}

// Timestamp renders t as "1/20/2026, 9:05:00 AM".
func Timestamp(t time.Time) string {
	return ShortDate(t) + ", " + ClockTime(t)
}

// CalendarDate renders a YYYY-MM-DD string as "Jan 25, 2026". Strings that
// do not parse are returned unchanged.
func CalendarDate(s string) string {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return s
	}
	return t.Format("Jan 2, 2006")
}
