package chartdata

import (
	"fmt"
	"slices"

	"github.com/etnz/chartdata/date"
)

// SumAligned sums series on the keys they all share.
//
// All series must be sorted in the same order, the one defined by compare
// (compare(a, b) < 0 when a comes first). A key missing from any series is
// dropped from the result, and the result stops as soon as one series is
// exhausted. The result follows the input order.
func SumAligned[S ~[]Sample[K], K any](series []S, compare func(a, b K) int) S {
	if len(series) == 0 {
		return S{}
	}
	for _, s := range series {
		if len(s) == 0 {
			return S{}
		}
	}

	indexes := make([]int, len(series))
	// the target starts at the first key of the first series, every cursor behind
	// it catches up, any cursor ahead of it moves the target forward.
	target := series[0][0].Date
	sums := S{}
	for {
		aligned := true
		for i, index := range indexes {
			if index >= len(series[i]) {
				return sums
			}
			on := series[i][index].Date
			switch c := compare(on, target); {
			case c < 0:
				indexes[i]++
				aligned = false
			case c > 0:
				target = on
				aligned = false
			}
		}
		if !aligned {
			continue
		}
		var total float64
		for i, index := range indexes {
			total += series[i][index].Value
			indexes[i]++
		}
		sums = append(sums, Sample[K]{Date: target, Value: total})
	}
}

// SumAlignedDates is SumAligned on descending (latest first) date series.
func SumAlignedDates(series []Series) Series {
	return SumAligned(series, latestFirst)
}

// SumWithForwardFill sums series on every calendar day they cover.
//
// Each series must be sorted descending. The result is ascending and has one
// point per day, from the oldest point of any series to the latest point of any
// series. On each day a series contributes its value of that day, or its last
// value before that day, or 0 if it has not started yet.
//
// If any series is empty the result is empty.
func SumWithForwardFill(series []Series) Series {
	if len(series) == 0 {
		return Series{}
	}
	var start, end date.Date
	for i, s := range series {
		if len(s) == 0 {
			return Series{}
		}
		newest, oldest := s[0].Date, s[len(s)-1].Date
		if i == 0 || oldest.Before(start) {
			start = oldest
		}
		if i == 0 || newest.After(end) {
			end = newest
		}
	}

	// cursors walk each series backward, from its oldest point to its newest.
	cursors := make([]int, len(series))
	contributions := make([]float64, len(series))
	for i, s := range series {
		cursors[i] = len(s) - 1
	}

	days := date.Daily(start, end)
	sums := make(Series, 0, len(days))
	for _, day := range days {
		var total float64
		for i, s := range series {
			for cursors[i] >= 0 && !s[cursors[i]].Date.After(day) {
				contributions[i] = s[cursors[i]].Value
				cursors[i]--
			}
			total += contributions[i]
		}
		sums = append(sums, Point{Date: day, Value: total})
	}
	return sums
}

// ValueAsOf returns the value of a descending series on a given day, or its most
// recent value before it. It returns false if the series starts after day.
func ValueAsOf(day date.Date, series Series) (float64, bool) {
	// first index whose date is on or before day.
	i, _ := slices.BinarySearchFunc(series, day, func(p Point, t date.Date) int {
		return latestFirst(p.Date, t)
	})
	if i == len(series) {
		return 0, false
	}
	return series[i].Value, true
}

// MergePolicy selects how component series are summed into a total.
type MergePolicy int

const (
	// Aligned keeps only the dates present in every series.
	Aligned MergePolicy = iota
	// ForwardFill covers every day, carrying each series' last known value.
	ForwardFill
)

func (m MergePolicy) String() string {
	switch m {
	case Aligned:
		return "aligned"
	case ForwardFill:
		return "forward-fill"
	default:
		panic(fmt.Sprintf("unknown merge policy %d", m))
	}
}

// ParseMergePolicy parses the name of a merge policy.
func ParseMergePolicy(s string) (MergePolicy, error) {
	switch s {
	case "aligned", "strict", "intersection":
		return Aligned, nil
	case "forward-fill", "fill", "ffill":
		return ForwardFill, nil
	default:
		return Aligned, fmt.Errorf("unknown merge policy %q", s)
	}
}

// Merge sums descending series with the given policy and returns an ascending
// series, ready to be drawn.
func Merge(policy MergePolicy, series []Series) Series {
	switch policy {
	case Aligned:
		return SumAlignedDates(series).Reverse()
	case ForwardFill:
		return SumWithForwardFill(series)
	default:
		panic(fmt.Sprintf("unknown merge policy %d", policy))
	}
}
