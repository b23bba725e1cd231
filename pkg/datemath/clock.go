package datemath

import (
	"fmt"
	"time"
)

// DateLayout is the calendar-date layout used for due dates.
const DateLayout = "2006-01-02"

// Clock answers "what day is it" questions in a fixed IANA timezone,
// independent of the host's local zone.
type Clock struct {
	location *time.Location
	now      func() time.Time
}

// NewClock creates a Clock for the given IANA timezone string, e.g. "Asia/Tokyo".
func NewClock(timezone string) (*Clock, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Clock{location: loc, now: time.Now}, nil
}

// Fixed returns a copy of c whose Now always reports t.
func (c *Clock) Fixed(t time.Time) *Clock {
	return &Clock{location: c.location, now: func() time.Time { return t }}
}

// Location returns the clock's timezone.
func (c *Clock) Location() *time.Location {
	return c.location
}

// Now returns the current instant in the clock's timezone.
func (c *Clock) Now() time.Time {
	return c.now().In(c.location)
}

// Today returns the current calendar date as YYYY-MM-DD.
func (c *Clock) Today() string {
	return c.Now().Format(DateLayout)
}

// Yesterday returns the previous calendar date as YYYY-MM-DD.
func (c *Clock) Yesterday() string {
	return c.addDays(c.Now(), -1).Format(DateLayout)
}

// Weekday returns today's weekday, 0=Sunday..6=Saturday.
func (c *Clock) Weekday() int {
	return int(c.Now().Weekday())
}

// addDays moves by calendar days anchored at noon, so a DST shift never
// lands the result on the wrong date.
func (c *Clock) addDays(t time.Time, days int) time.Time {
	t = t.In(c.location)
	return time.Date(t.Year(), t.Month(), t.Day()+days, 12, 0, 0, 0, c.location)
}

// IsDate reports whether s is a valid YYYY-MM-DD calendar date.
func IsDate(s string) bool {
	_, err := time.Parse(DateLayout, s)
	return err == nil
}

// WeekdayOf returns the weekday (0=Sunday) of a YYYY-MM-DD date.
func WeekdayOf(date string) (int, error) {
	t, err := time.Parse(DateLayout, date)
	if err != nil {
		return 0, fmt.Errorf("invalid date %q: %w", date, err)
	}
	return int(t.Weekday()), nil
}
