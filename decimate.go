package chartdata

import "slices"

// DecimateKeepingTransitions thins an ascending series for drawing.
//
// The first and last points are always kept. An interior point is kept if its
// value differs from one of its neighbours, or if its index is a multiple of
// every. So flat runs are thinned and value changes are never lost.
func DecimateKeepingTransitions[S ~[]Sample[K], K any](points S, every int) S {
	return decimate(points, every, true)
}

// DecimateUniform is like DecimateKeepingTransitions but keeps interior points
// only by index, whatever their value. It suits prices, whose small moves
// should not force a point.
func DecimateUniform[S ~[]Sample[K], K any](points S, every int) S {
	return decimate(points, every, false)
}

func decimate[S ~[]Sample[K], K any](points S, every int, transitions bool) S {
	if len(points) <= 2 {
		return slices.Clone(points)
	}
	if every < 1 {
		every = 1
	}
	last := len(points) - 1
	kept := make(S, 0, len(points)/every+2)
	kept = append(kept, points[0])
	for i := 1; i < last; i++ {
		keep := i%every == 0
		if transitions && !keep {
			v := points[i].Value
			keep = v != points[i-1].Value || v != points[i+1].Value
		}
		if keep {
			kept = append(kept, points[i])
		}
	}
	return append(kept, points[last])
}
