package chartdata

import "github.com/etnz/chartdata/date"

// NearestValue returns the value of the point closest to target in a descending
// series. It is meant for chart cursors, and runs in logarithmic time.
//
// It returns 0 if the series is empty or if target is before its oldest point.
// When target is exactly between two points, the older one wins.
func NearestValue(target date.Date, series Series) float64 {
	n := len(series)
	if n == 0 || target.Before(series[n-1].Date) {
		return 0
	}
	if n == 1 {
		return series[0].Value
	}
	// series[start] is newer than series[end], narrow until they are adjacent.
	start, end := 0, n-1
	for end-start > 1 {
		mid := (start + end) / 2
		if series[mid].Date.After(target) {
			start = mid
		} else {
			end = mid
		}
	}
	if distance(series[start].Date, target) < distance(series[end].Date, target) {
		return series[start].Value
	}
	return series[end].Value
}

// distance is the absolute number of days between a and b.
func distance(a, b date.Date) int {
	if d := a.Sub(b); d >= 0 {
		return d
	}
	return b.Sub(a)
}
