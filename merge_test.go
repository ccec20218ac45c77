package chartdata

import (
	"cmp"
	"reflect"
	"testing"

	"github.com/etnz/chartdata/date"
)

// ints builds integer keyed samples from [key, value] pairs.
func ints(pairs ...[2]int) []Sample[int] {
	s := make([]Sample[int], len(pairs))
	for i, p := range pairs {
		s[i] = Sample[int]{Date: p[0], Value: float64(p[1])}
	}
	return s
}

// daily builds a descending series from its newest day and its values, newest first.
func daily(newest string, values ...float64) Series {
	on := date.MustParse(newest)
	s := make(Series, len(values))
	for i, v := range values {
		s[i] = P(on.Add(-i), v)
	}
	return s
}

func TestSumAligned(t *testing.T) {
	a := ints([2]int{1, 100}, [2]int{2, 101}, [2]int{3, 103}, [2]int{5, 106}, [2]int{6, 107})
	b := ints([2]int{1, 100}, [2]int{3, 101}, [2]int{4, 103}, [2]int{5, 106}, [2]int{7, 108})
	c := ints([2]int{1, 100}, [2]int{3, 101}, [2]int{3, 103}, [2]int{5, 106})

	got := SumAligned([][]Sample[int]{a, b, c}, cmp.Compare[int])
	want := ints([2]int{1, 300}, [2]int{3, 305}, [2]int{5, 318})
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SumAligned() = %v want %v", got, want)
	}
}

func TestSumAlignedEdges(t *testing.T) {
	a := ints([2]int{1, 1}, [2]int{2, 2}, [2]int{3, 3})
	tests := []struct {
		name   string
		series [][]Sample[int]
		want   []Sample[int]
	}{
		{name: "no series", series: nil, want: []Sample[int]{}},
		{name: "single series", series: [][]Sample[int]{a}, want: a},
		{name: "one empty series", series: [][]Sample[int]{a, {}}, want: []Sample[int]{}},
		{
			name:   "late start is tolerated",
			series: [][]Sample[int]{a, ints([2]int{2, 10}, [2]int{3, 10})},
			want:   ints([2]int{2, 12}, [2]int{3, 13}),
		},
		{
			name:   "shorter series truncates",
			series: [][]Sample[int]{a, ints([2]int{1, 10}, [2]int{2, 10})},
			want:   ints([2]int{1, 11}, [2]int{2, 12}),
		},
		{
			name:   "disjoint series",
			series: [][]Sample[int]{ints([2]int{1, 1}, [2]int{3, 1}), ints([2]int{2, 1}, [2]int{4, 1})},
			want:   []Sample[int]{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SumAligned(tt.series, cmp.Compare[int])
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SumAligned() = %v want %v", got, tt.want)
			}
		})
	}
}

func TestSumAlignedCommutes(t *testing.T) {
	newest := "2020-03-31"
	a := daily(newest, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10)
	b := Series{a[0], a[2], a[3], a[7], a[9]}
	for i := range b {
		b[i].Value *= 10
	}
	c := Series{a[1], a[2], a[3], a[6], a[7]}

	inputs := [][]Series{{a, b}, {a, b, c}, {a, c}}
	for _, in := range inputs {
		forward := SumAlignedDates(in)
		reversed := SumAlignedDates([]Series{in[len(in)-1], in[0]})
		if len(in) == 3 {
			reversed = SumAlignedDates([]Series{in[2], in[0], in[1]})
		}
		if !reflect.DeepEqual(forward, reversed) {
			t.Errorf("SumAlignedDates() depends on the series order: %v != %v", forward, reversed)
		}
	}
	if got, want := SumAlignedDates([]Series{a, b}), (Series{
		P(a[0].Date, 11), P(a[2].Date, 33), P(a[3].Date, 44), P(a[7].Date, 88), P(a[9].Date, 110),
	}); !reflect.DeepEqual(got, want) {
		t.Errorf("SumAlignedDates() = %v want %v", got, want)
	}
}

func TestSumWithForwardFill(t *testing.T) {
	a := daily("2020-01-06", 107, 106, 105, 103, 101, 100)
	b := daily("2020-01-07", 108, 106, 106, 104, 101, 100, 100)
	c := daily("2020-01-05", 106, 102, 101, 100, 100)

	got := SumWithForwardFill([]Series{a, b, c})
	want := daily("2020-01-07", 321, 319, 318, 311, 305, 301, 300).Reverse()
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SumWithForwardFill() = %v want %v", got, want)
	}
}

func TestSumWithForwardFillEdges(t *testing.T) {
	d := date.MustParse
	tests := []struct {
		name   string
		series []Series
		want   Series
	}{
		{name: "no series", series: nil, want: Series{}},
		{name: "one empty series", series: []Series{daily("2020-01-02", 1, 1), {}}, want: Series{}},
		{
			name: "old single point is carried over the whole range",
			series: []Series{
				{P(d("2019-12-01"), 5)},
				{P(d("2020-01-03"), 2), P(d("2020-01-01"), 1)},
			},
			want: Series(nil),
		},
		{
			name: "late series contributes zero before it starts",
			series: []Series{
				daily("2020-01-03", 3, 2, 1),
				{P(d("2020-01-03"), 10)},
			},
			want: Series{P(d("2020-01-01"), 1), P(d("2020-01-02"), 2), P(d("2020-01-03"), 13)},
		},
		{
			name: "sparse series",
			series: []Series{
				{P(d("2020-01-04"), 4), P(d("2020-01-01"), 1)},
			},
			want: Series{P(d("2020-01-01"), 1), P(d("2020-01-02"), 1), P(d("2020-01-03"), 1), P(d("2020-01-04"), 4)},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SumWithForwardFill(tt.series)
			want := tt.want
			if want == nil {
				// the flat carry over case spans from 2019-12-01 to 2020-01-03.
				days := date.Daily(d("2019-12-01"), d("2020-01-03"))
				for _, on := range days {
					v := 5.0
					switch {
					case on == d("2020-01-03"):
						v += 2
					case !on.Before(d("2020-01-01")):
						v++
					}
					want = append(want, P(on, v))
				}
			}
			if !reflect.DeepEqual(got, want) {
				t.Errorf("SumWithForwardFill() = %v want %v", got, want)
			}
		})
	}
}

// TestSumWithForwardFillTotality checks that the result spans from the oldest to
// the newest point of all series, one point per day.
func TestSumWithForwardFillTotality(t *testing.T) {
	d := date.MustParse
	series := []Series{
		{P(d("2021-06-30"), 3), P(d("2021-02-01"), 2), P(d("2020-11-15"), 1)},
		{P(d("2021-03-01"), 7)},
		{P(d("2022-01-01"), 4), P(d("2021-12-31"), 4)},
	}
	got := SumWithForwardFill(series)
	start, end := d("2020-11-15"), d("2022-01-01")
	if want := end.Sub(start) + 1; len(got) != want {
		t.Fatalf("len(SumWithForwardFill()) = %d want %d", len(got), want)
	}
	for i, p := range got {
		if p.Date != start.Add(i) {
			t.Fatalf("SumWithForwardFill()[%d] is on %v want %v", i, p.Date, start.Add(i))
		}
	}
	if last := got[len(got)-1]; last.Value != 3+7+4 {
		t.Errorf("last total = %v want %v", last.Value, 3+7+4)
	}
}

func TestValueAsOf(t *testing.T) {
	d := date.MustParse
	s := Series{P(d("2020-01-10"), 3), P(d("2020-01-05"), 2), P(d("2020-01-01"), 1)}
	tests := []struct {
		on     string
		want   float64
		wantOK bool
	}{
		{"2019-12-31", 0, false},
		{"2020-01-01", 1, true},
		{"2020-01-04", 1, true},
		{"2020-01-05", 2, true},
		{"2020-01-09", 2, true},
		{"2020-02-01", 3, true},
	}
	for _, tt := range tests {
		got, ok := ValueAsOf(d(tt.on), s)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("ValueAsOf(%s) = %v, %v want %v, %v", tt.on, got, ok, tt.want, tt.wantOK)
		}
	}
	if _, ok := ValueAsOf(d("2020-01-01"), nil); ok {
		t.Errorf("ValueAsOf() on an empty series should not find anything")
	}
}

func TestMerge(t *testing.T) {
	a := daily("2020-01-03", 3, 2, 1)
	b := daily("2020-01-02", 20, 10)

	aligned := Merge(Aligned, []Series{a, b})
	if want := daily("2020-01-02", 22, 11).Reverse(); !reflect.DeepEqual(aligned, want) {
		t.Errorf("Merge(Aligned) = %v want %v", aligned, want)
	}
	filled := Merge(ForwardFill, []Series{a, b})
	if want := daily("2020-01-03", 23, 22, 11).Reverse(); !reflect.DeepEqual(filled, want) {
		t.Errorf("Merge(ForwardFill) = %v want %v", filled, want)
	}
}

func TestParseMergePolicy(t *testing.T) {
	for _, p := range []MergePolicy{Aligned, ForwardFill} {
		got, err := ParseMergePolicy(p.String())
		if err != nil || got != p {
			t.Errorf("ParseMergePolicy(%q) = %v, %v want %v", p.String(), got, err, p)
		}
	}
	if _, err := ParseMergePolicy("sum"); err == nil {
		t.Errorf("ParseMergePolicy(%q) should fail", "sum")
	}
}
