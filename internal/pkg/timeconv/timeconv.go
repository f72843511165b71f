// Package timeconv converts UTC epoch seconds to a fixed-offset local time.
// There are no DST rules and no tz database lookups: the offset is a
// constant number of hours.
package timeconv

import (
	"errors"
	"fmt"
	"time"
)

// DateLayout is the YYYY-MM-DD form used for target dates.
const DateLayout = "2006-01-02"

var ErrInvalidDate = errors.New("invalid date")

// Date is a local calendar date without time of day.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("%w %q: expected YYYY-MM-DD", ErrInvalidDate, s)
	}
	return DateOf(t), nil
}

// DateOf takes the calendar date of t in its own location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// Converter applies a constant UTC offset.
type Converter struct {
	offsetHours int
	loc         *time.Location
}

func NewFixedOffset(hours int) *Converter {
	name := fmt.Sprintf("UTC%+d", hours)
	return &Converter{
		offsetHours: hours,
		loc:         time.FixedZone(name, hours*int(time.Hour/time.Second)),
	}
}

func (c *Converter) OffsetHours() int { return c.offsetHours }

// Name is the zone label, e.g. "UTC+1".
func (c *Converter) Name() string { return c.loc.String() }

// ToLocal converts unix seconds to local wall time.
func (c *Converter) ToLocal(unix int64) time.Time {
	return time.Unix(unix, 0).In(c.loc)
}

// LocalDate is the calendar date of unix seconds after the offset is applied.
func (c *Converter) LocalDate(unix int64) Date {
	return DateOf(c.ToLocal(unix))
}

// IsSameDay compares local calendar dates, not a 24 hour window.
func (c *Converter) IsSameDay(a, b int64) bool {
	return c.LocalDate(a) == c.LocalDate(b)
}

// OnDate reports whether unix seconds fall on the given local date.
func (c *Converter) OnDate(unix int64, d Date) bool {
	return c.LocalDate(unix) == d
}
