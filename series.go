package chartdata

import (
	"fmt"
	"slices"

	"github.com/etnz/chartdata/date"
)

// Sample is a single value observed at a date-like key.
//
// Most of the package works on Point, but the merge and decimation functions only
// need an ordering on keys and accept any key type.
type Sample[K any] struct {
	Date  K       `json:"date"`
	Value float64 `json:"value"`
}

// Point is a value observed on a calendar day.
type Point = Sample[date.Date]

// P is a convenient factory for Points.
func P(on date.Date, value float64) Point { return Point{Date: on, Value: value} }

// Series is a sequence of Points with unique dates.
//
// A Series may be sparse: a missing day means the value did not change. It is
// either sorted ascending or descending, and callers must know which.
type Series []Point

// Order is the direction a Series is sorted in.
type Order int

const (
	// Ascending series start with the oldest point.
	Ascending Order = iota
	// Descending series start with the latest point, as the API returns them.
	Descending
)

func (o Order) String() string {
	switch o {
	case Ascending:
		return "ascending"
	case Descending:
		return "descending"
	default:
		panic(fmt.Sprintf("unknown order %d", o))
	}
}

// compare returns the comparator that sorts dates in that order.
func (o Order) compare() func(a, b date.Date) int {
	if o == Descending {
		return latestFirst
	}
	return date.Date.Compare
}

func latestFirst(a, b date.Date) int { return b.Compare(a) }

// First returns the first point of the series, or false if it is empty.
func (s Series) First() (Point, bool) {
	if len(s) == 0 {
		return Point{}, false
	}
	return s[0], true
}

// Last returns the last point of the series, or false if it is empty.
func (s Series) Last() (Point, bool) {
	if len(s) == 0 {
		return Point{}, false
	}
	return s[len(s)-1], true
}

// Reverse returns a reversed copy of s.
func (s Series) Reverse() Series {
	r := slices.Clone(s)
	slices.Reverse(r)
	return r
}

// Sorted reports whether s is strictly sorted in that order, which also implies
// unique dates.
func (s Series) Sorted(o Order) bool { return s.Validate(o) == nil }

// Validate returns an error describing the first point breaking the order o or
// repeating a date.
func (s Series) Validate(o Order) error {
	cmp := o.compare()
	for i := 1; i < len(s); i++ {
		switch c := cmp(s[i-1].Date, s[i].Date); {
		case c == 0:
			return fmt.Errorf("duplicate date %v at index %d", s[i].Date, i)
		case c > 0:
			return fmt.Errorf("date %v at index %d breaks %v order after %v", s[i].Date, i, o, s[i-1].Date)
		}
	}
	return nil
}

// Ascending returns an ascending copy of s, whatever its order. Duplicate dates
// keep the last value seen.
func (s Series) Ascending() Series {
	a := slices.Clone(s)
	slices.SortStableFunc(a, func(x, y Point) int { return x.Date.Compare(y.Date) })
	out := a[:0]
	for _, p := range a {
		if n := len(out); n > 0 && out[n-1].Date == p.Date {
			out[n-1].Value = p.Value
			continue
		}
		out = append(out, p)
	}
	return out
}

// Values returns the values of s in order.
func (s Series) Values() []float64 {
	values := make([]float64, len(s))
	for i, p := range s {
		values[i] = p.Value
	}
	return values
}

// Dates returns the dates of s in order.
func (s Series) Dates() []date.Date {
	days := make([]date.Date, len(s))
	for i, p := range s {
		days[i] = p.Date
	}
	return days
}

// Clip returns the points of s within r, in the same order.
func (s Series) Clip(r date.Range) Series {
	clipped := make(Series, 0, len(s))
	for _, p := range s {
		if r.Contains(p.Date) {
			clipped = append(clipped, p)
		}
	}
	return clipped
}
