package date

import "iter"

// Range represents a range of dates, boundaries included.
type Range struct{ From, To Date }

// NewRange creates a new date range. If 'from' is after 'to', they are swapped.
func NewRange(from, to Date) Range {
	if from.After(to) {
		from, to = to, from
	}
	return Range{From: from, To: to}
}

// Contains return true date is included in the range (boundaries included)
func (r Range) Contains(date Date) bool { return !date.Before(r.From) && !date.After(r.To) }

// Len returns the number of days in the range, or 0 if To is before From.
func (r Range) Len() int {
	if r.To.Before(r.From) {
		return 0
	}
	return r.To.Sub(r.From) + 1
}

// Days returns an iterator that yields each date within the range, inclusive.
func (r Range) Days() iter.Seq[Date] {
	return func(yield func(Date) bool) {
		for d := r.From; !d.After(r.To); d = d.Add(1) {
			if !yield(d) {
				return
			}
		}
	}
}

// String returns the range as "from..to".
func (r Range) String() string { return r.From.String() + ".." + r.To.String() }

// Daily returns every calendar day from start to end inclusive, in ascending order.
//
// It returns an empty slice when end is before start.
func Daily(start, end Date) []Date {
	if end.Before(start) {
		return []Date{}
	}
	days := make([]Date, 0, end.Sub(start)+1)
	// incrementing the day fields, never an instant, keeps DST and timezones out of the loop.
	for d := start; !d.After(end); d = d.Add(1) {
		days = append(days, d)
	}
	return days
}

// DailyStrings is like Daily but returns the days in their YYYY-MM-DD form.
func DailyStrings(start, end Date) []string {
	days := Daily(start, end)
	strs := make([]string, len(days))
	for i, d := range days {
		strs[i] = d.String()
	}
	return strs
}
