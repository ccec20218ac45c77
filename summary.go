package chartdata

import "github.com/etnz/chartdata/date"

// Summary describes a series at a glance.
type Summary struct {
	From, To    date.Date
	First, Last float64
	Min, Max    float64
	MinOn       date.Date // first day the minimum is reached
	MaxOn       date.Date // first day the maximum is reached
	Points      int
}

// Summarize computes the summary of a series, in any order.
func Summarize(series Series) Summary {
	points := series.Ascending()
	if len(points) == 0 {
		return Summary{}
	}
	first, last := points[0], points[len(points)-1]
	sum := Summary{
		From:   first.Date,
		To:     last.Date,
		First:  first.Value,
		Last:   last.Value,
		Min:    first.Value,
		MinOn:  first.Date,
		Max:    first.Value,
		MaxOn:  first.Date,
		Points: len(points),
	}
	for _, p := range points[1:] {
		if p.Value < sum.Min {
			sum.Min, sum.MinOn = p.Value, p.Date
		}
		if p.Value > sum.Max {
			sum.Max, sum.MaxOn = p.Value, p.Date
		}
	}
	return sum
}

// Change returns the difference between the last and the first value.
func (s Summary) Change() float64 { return s.Last - s.First }

// Return returns the change relative to the first value, as a ratio.
// It is 0 when the first value is 0.
func (s Summary) Return() float64 {
	if s.First == 0 {
		return 0
	}
	return s.Change() / s.First
}

// Days returns the number of calendar days covered.
func (s Summary) Days() int {
	if s.Points == 0 {
		return 0
	}
	return date.NewRange(s.From, s.To).Len()
}
