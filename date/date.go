// Package date implements a calendar day value type, free of any time of day
// or timezone, and the day ranges built from it.
package date

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

const readDateFormat = "2006-1-2" // Permissive read date format (allows single-digit month/day).

// DateFormat is the format used to represent dates as strings in ISO-8601 format.
const DateFormat = "2006-01-02" // write date format

const Day = 24 * time.Hour

// timestamp layouts accepted by Parse, the time of day is dropped.
var timestampFormats = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.000-0700",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// Date represents a date with day-level granularity.
//
// Dates are comparable with == and can be used as map keys.
type Date struct {
	y int        // year
	m time.Month // month
	d int        // day
}

// New returns a normalized Date for the given year, month, and day.
func New(year int, month time.Month, day int) Date {
	d := Date{year, month, day}
	d.y, d.m, d.d = d.time().Date()
	return d
}

// Today returns the current date.
func Today() Date { return New(time.Now().Date()) }

// Year returns current year.
func (d Date) Year() int { return d.y }

// Month returns the month of the date.
func (d Date) Month() time.Month { return d.m }

// Day returns current day of the month.
func (d Date) Day() int { return d.d }

// IsZero returns true if the date is the zero value.
func (d Date) IsZero() bool { return d.y == 0 && d.m == 0 && d.d == 0 }

// time returns a time.Time that is a canonical representation of that day (at midnight UTC).
func (d Date) time() time.Time { return time.Date(d.y, d.m, d.d, 0, 0, 0, 0, time.UTC) }

// String format the date in its standard format.
func (d Date) String() string { return d.time().Format(DateFormat) }

// Before reports whether the day d is before x.
func (d Date) Before(x Date) bool { return d.Compare(x) < 0 }

// After reports whether the day d is after x.
func (d Date) After(x Date) bool { return d.Compare(x) > 0 }

// Compare returns -1 if d is before x, +1 if d is after x and 0 on the same day.
//
// Fields are compared directly, so it is safe on un-normalized values too.
func (d Date) Compare(x Date) int {
	switch {
	case d.y != x.y:
		return cmpInt(d.y, x.y)
	case d.m != x.m:
		return cmpInt(int(d.m), int(x.m))
	default:
		return cmpInt(d.d, x.d)
	}
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// Add returns a new Date with the given number of days added.
func (d Date) Add(i int) Date { return New(d.y, d.m, d.d+i) }

// Sub returns the signed number of days from x to d.
func (d Date) Sub(x Date) int {
	// both instants are midnight UTC, so the difference is an exact number of days.
	return int(d.time().Sub(x.time()) / Day)
}

// Parse parses a Date from a string. It is lenient and accepts formats like "2025-7-1".
//
// Timestamps (RFC3339 and the usual API variants) are accepted too, and truncated to
// the calendar day written in the string, the offset is not applied.
func Parse(str string) (Date, error) {
	str = strings.TrimSpace(str)
	on, err := time.Parse(readDateFormat, str)
	if err == nil {
		return New(on.Date()), nil
	}
	for _, layout := range timestampFormats {
		if ts, terr := time.Parse(layout, str); terr == nil {
			return New(ts.Date()), nil
		}
	}
	return Date{}, fmt.Errorf("invalid date %q want format %q: %w", str, readDateFormat, err)
}

// MustParse is like Parse but panics on error.
func MustParse(str string) Date {
	d, err := Parse(str)
	if err != nil {
		panic(err.Error())
	}
	return d
}

// UnmarshalJSON implements the json specific way to unmarshall a date from a json string.
func (j *Date) UnmarshalJSON(bytes []byte) error {
	var str string
	if err := json.Unmarshal(bytes, &str); err != nil {
		return err
	}
	d, err := Parse(str)
	if err != nil {
		return err
	}
	*j = d
	return nil
}

func (j Date) MarshalJSON() ([]byte, error) {
	str := j.String()
	return json.Marshal(&str)
}

// check that a Date pointer is a valid json marshall/unmarshaller type.
var _ json.Marshaler = (*Date)(nil)
var _ json.Unmarshaler = (*Date)(nil)
