package chartdata

import "fmt"

// Kind tells how a series is thinned before being drawn.
type Kind int

const (
	// ValueChart series (quantities, market values) keep every value change.
	ValueChart Kind = iota
	// PriceChart series are thinned uniformly.
	PriceChart
)

func (k Kind) String() string {
	switch k {
	case ValueChart:
		return "value"
	case PriceChart:
		return "price"
	default:
		panic(fmt.Sprintf("unknown chart kind %d", k))
	}
}

// ParseKind parses the name of a chart kind.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "value", "quantity":
		return ValueChart, nil
	case "price":
		return PriceChart, nil
	default:
		return ValueChart, fmt.Errorf("unknown chart kind %q", s)
	}
}

// Prepare returns the ascending, decimated points of series to draw over the
// window d ending on the latest point of series.
//
// The decimation factor depends on the window length, not on the number of
// points, so that every chart of the same window looks alike.
func (s Settings) Prepare(series Series, kind Kind, d Duration) Series {
	points := series.Ascending()
	last, ok := points.Last()
	if !ok {
		return Series{}
	}
	days := s.WindowDays(d)
	points = points.Clip(s.Window(d, last.Date))
	every := s.DecimationEvery(days)
	switch kind {
	case ValueChart:
		return DecimateKeepingTransitions(points, every)
	case PriceChart:
		return DecimateUniform(points, every)
	default:
		panic(fmt.Sprintf("unknown chart kind %d", kind))
	}
}

// Total merges descending component series with policy, and prepares the total
// as a ValueChart over the window d.
func (s Settings) Total(series []Series, policy MergePolicy, d Duration) Series {
	return s.Prepare(Merge(policy, series), ValueChart, d)
}
