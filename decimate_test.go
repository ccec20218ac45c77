package chartdata

import (
	"reflect"
	"testing"
)

// values builds an ascending integer keyed series from its values.
func values(vs ...float64) []Sample[int] {
	s := make([]Sample[int], len(vs))
	for i, v := range vs {
		s[i] = Sample[int]{Date: i, Value: v}
	}
	return s
}

func keys(s []Sample[int]) []int {
	k := make([]int, len(s))
	for i, p := range s {
		k[i] = p.Date
	}
	return k
}

func TestDecimateKeepingTransitions(t *testing.T) {
	tests := []struct {
		name   string
		points []Sample[int]
		every  int
		want   []int // kept keys
	}{
		{name: "every 1 keeps all", points: values(1, 1, 1, 1, 1), every: 1, want: []int{0, 1, 2, 3, 4}},
		{name: "flat run thinned", points: values(1, 1, 1, 1, 1, 1, 1), every: 3, want: []int{0, 3, 6}},
		{name: "step kept on both sides", points: values(1, 1, 1, 2, 2, 2, 2), every: 10, want: []int{0, 2, 3, 6}},
		{name: "spike kept with neighbours", points: values(1, 1, 5, 1, 1, 1), every: 10, want: []int{0, 1, 2, 3, 5}},
		{name: "zero every is every 1", points: values(1, 1, 1), every: 0, want: []int{0, 1, 2}},
		{name: "two points", points: values(1, 2), every: 3, want: []int{0, 1}},
		{name: "one point", points: values(1), every: 3, want: []int{0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DecimateKeepingTransitions(tt.points, tt.every)
			if !reflect.DeepEqual(keys(got), tt.want) {
				t.Errorf("DecimateKeepingTransitions() kept %v want %v", keys(got), tt.want)
			}
		})
	}
}

func TestDecimateUniform(t *testing.T) {
	got := DecimateUniform(values(1, 2, 3, 4, 5, 6, 7, 8), 3)
	if want := []int{0, 3, 6, 7}; !reflect.DeepEqual(keys(got), want) {
		t.Errorf("DecimateUniform() kept %v want %v", keys(got), want)
	}
}

// TestDecimationProperties checks on many generated series that endpoints and
// value changes always survive, and that the input is left untouched.
func TestDecimationProperties(t *testing.T) {
	for n := 3; n < 60; n += 5 {
		vs := make([]float64, n)
		for i := range vs {
			// long plateaus with a change every 7 points.
			vs[i] = float64(i / 7)
		}
		points := values(vs...)
		original := values(vs...)
		for every := 1; every < 10; every++ {
			for _, decimate := range []func([]Sample[int], int) []Sample[int]{
				DecimateKeepingTransitions[[]Sample[int], int],
				DecimateUniform[[]Sample[int], int],
			} {
				got := decimate(points, every)
				if got[0] != points[0] || got[len(got)-1] != points[n-1] {
					t.Fatalf("n=%d every=%d: endpoints lost: %v", n, every, keys(got))
				}
			}
			got := DecimateKeepingTransitions(points, every)
			kept := make(map[int]bool)
			for _, p := range got {
				kept[p.Date] = true
			}
			for i := 1; i < n; i++ {
				if points[i].Value != points[i-1].Value && !kept[i] {
					t.Fatalf("n=%d every=%d: transition at %d lost: %v", n, every, i, keys(got))
				}
			}
		}
		if !reflect.DeepEqual(points, original) {
			t.Fatalf("decimation modified its input")
		}
	}
}
