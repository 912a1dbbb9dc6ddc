// Package calendar holds the date-only arithmetic shared by reports and the
// report repository. Values carry no time zone: a timestamp is reduced to the
// wall-clock date of its own location and never shifted.
package calendar

import (
	"fmt"
	"time"
)

const Layout = "2006-01-02"

type Date struct {
	Year  int
	Month time.Month
	Day   int
}

func New(year int, month time.Month, day int) Date {
	return Date{Year: year, Month: month, Day: day}
}

// DateOf returns the calendar date of t as read in t's own location.
func DateOf(t time.Time) Date {
	year, month, day := t.Date()

	return Date{Year: year, Month: month, Day: day}
}

func ParseDate(value string) (Date, error) {
	if len(value) != len(Layout) {
		return Date{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", value)
	}

	t, err := time.Parse(Layout, value)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", value)
	}

	return DateOf(t), nil
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// Time returns midnight of d in loc.
func (d Date) Time(loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc)
}

func (d Date) AddDays(days int) Date {
	return DateOf(d.Time(time.UTC).AddDate(0, 0, days))
}

func (d Date) Before(other Date) bool {
	if d.Year != other.Year {
		return d.Year < other.Year
	}
	if d.Month != other.Month {
		return d.Month < other.Month
	}

	return d.Day < other.Day
}

// IsLeap applies the proleptic Gregorian rule.
func IsLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysIn returns the number of days of month in year, or 0 for a month
// outside 1..12.
func DaysIn(year int, month time.Month) int {
	switch month {
	case time.January, time.March, time.May, time.July, time.August, time.October, time.December:
		return 31
	case time.April, time.June, time.September, time.November:
		return 30
	case time.February:
		if IsLeap(year) {
			return 29
		}
		return 28
	default:
		return 0
	}
}

// MonthBounds returns the first and last day of month in year.
func MonthBounds(year int, month time.Month) (Date, Date) {
	return New(year, month, 1), New(year, month, DaysIn(year, month))
}

// MonthEndsBefore reports whether the whole of month in year lies before today.
func MonthEndsBefore(year int, month time.Month, today Date) bool {
	_, last := MonthBounds(year, month)

	return last.Before(today)
}
