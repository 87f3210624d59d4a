package models

import (
	"fmt"
	"time"
)

// CalendarDate is a timezone-free year-month-day. The app compares "today"
// across the season resolver, the seen-tip tracker and the health scorer, so
// dates are kept semantic instead of as raw strings or time.Time instants.
type CalendarDate struct {
	Year  int
	Month time.Month
	Day   int
}

const dateLayout = "2006-01-02"

// DateOf truncates a time.Time to its calendar date in that time's location.
func DateOf(t time.Time) CalendarDate {
	y, m, d := t.Date()
	return CalendarDate{Year: y, Month: m, Day: d}
}

// ParseDate parses the canonical YYYY-MM-DD form.
func ParseDate(s string) (CalendarDate, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return CalendarDate{}, fmt.Errorf("parse calendar date %q: %w", s, err)
	}
	return DateOf(t), nil
}

func (d CalendarDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

func (d CalendarDate) IsZero() bool {
	return d == CalendarDate{}
}

// Time returns midnight UTC of the date. Only used for arithmetic; never
// compared against wall-clock instants.
func (d CalendarDate) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

func (d CalendarDate) Weekday() time.Weekday {
	return d.Time().Weekday()
}

func (d CalendarDate) AddDays(n int) CalendarDate {
	return DateOf(d.Time().AddDate(0, 0, n))
}

func (d CalendarDate) Before(other CalendarDate) bool {
	return d.Time().Before(other.Time())
}

// DaysSince returns the whole days elapsed from other to d. Negative when
// other is in the future.
func (d CalendarDate) DaysSince(other CalendarDate) int {
	return int(d.Time().Sub(other.Time()).Hours() / 24)
}

// MarshalText and UnmarshalText keep the canonical form in JSON state records.
func (d CalendarDate) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *CalendarDate) UnmarshalText(b []byte) error {
	parsed, err := ParseDate(string(b))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
