package chartdata

import (
	"reflect"
	"testing"

	"github.com/etnz/chartdata/date"
)

// flat returns a descending daily series of n points with the same value.
func flat(newest date.Date, n int, v float64) Series {
	s := make(Series, n)
	for i := range s {
		s[i] = P(newest.Add(-i), v)
	}
	return s
}

func TestPrepareShortWindowKeepsAll(t *testing.T) {
	s := DefaultSettings()
	newest := date.New(2024, 6, 30)
	series := flat(newest, 200, 1)

	got := s.Prepare(series, ValueChart, Months(1))
	if len(got) != 32 {
		t.Fatalf("len(Prepare(1m)) = %d want 32", len(got))
	}
	if !got.Sorted(Ascending) {
		t.Errorf("Prepare() is not ascending")
	}
	if last, _ := got.Last(); last.Date != newest {
		t.Errorf("Prepare() ends on %v want %v", last.Date, newest)
	}
}

func TestPrepareLongWindowDecimates(t *testing.T) {
	s := DefaultSettings()
	newest := date.New(2024, 6, 30)
	series := flat(newest, 400, 1)
	// a single step, which must survive the thinning.
	for i := 0; i < 100; i++ {
		series[i].Value = 2
	}

	got := s.Prepare(series, ValueChart, Years(1))
	// 366 days in the window, every third kept, plus both sides of the step.
	if len(got) >= 366/2 || len(got) < 366/3 {
		t.Errorf("len(Prepare(1y)) = %d, want about a third of 366", len(got))
	}
	step := map[date.Date]bool{newest.Add(-99): false, newest.Add(-100): false}
	for _, p := range got {
		if _, ok := step[p.Date]; ok {
			step[p.Date] = true
		}
	}
	for on, found := range step {
		if !found {
			t.Errorf("Prepare() lost the step point on %v", on)
		}
	}

	prices := s.Prepare(series, PriceChart, Years(1))
	// both endpoints and the 121 interior multiples of 3.
	if len(prices) != 123 {
		t.Errorf("len(Prepare(price, 1y)) = %d want %d", len(prices), 123)
	}
}

func TestPrepareEmpty(t *testing.T) {
	if got := DefaultSettings().Prepare(nil, ValueChart, Max{}); len(got) != 0 {
		t.Errorf("Prepare(nil) = %v want empty", got)
	}
}

func TestPrepareDoesNotModifyInput(t *testing.T) {
	series := flat(date.New(2024, 6, 30), 10, 1)
	original := append(Series(nil), series...)
	DefaultSettings().Prepare(series, PriceChart, Days(5))
	if !reflect.DeepEqual(series, original) {
		t.Errorf("Prepare() modified its input")
	}
}

func TestTotal(t *testing.T) {
	s := DefaultSettings()
	newest := date.New(2020, 1, 7)
	a := flat(newest, 7, 1)
	b := Series{P(newest.Add(-3), 10)}

	total := s.Total([]Series{a, b}, ForwardFill, Max{})
	// the max window is decimated by 3, flat interior points go unless on a multiple of 3.
	want := Series{P(newest.Add(-6), 1), P(newest.Add(-4), 1), P(newest.Add(-3), 11), P(newest, 11)}
	if !reflect.DeepEqual(total, want) {
		t.Errorf("Total(ForwardFill) = %v want %v", total, want)
	}

	aligned := s.Total([]Series{a, b}, Aligned, Max{})
	if want := (Series{P(newest.Add(-3), 11)}); !reflect.DeepEqual(aligned, want) {
		t.Errorf("Total(Aligned) = %v want %v", aligned, want)
	}
}

func TestParseKind(t *testing.T) {
	for _, k := range []Kind{ValueChart, PriceChart} {
		if got, err := ParseKind(k.String()); err != nil || got != k {
			t.Errorf("ParseKind(%q) = %v, %v want %v", k.String(), got, err, k)
		}
	}
	if _, err := ParseKind("candle"); err == nil {
		t.Errorf("ParseKind(%q) should fail", "candle")
	}
}
