package chart

import (
	"math"
	"testing"
)

func fixedAxis(k ScaleKind, min, max float64) *Axis {
	a := NewAxis(k)
	a.SetLimits(min, max)
	return a
}

func TestMapperEndToEnd(t *testing.T) {
	m := NewMapper(PlotArea{Left: 0, Top: 0, Right: 100, Bottom: 50},
		fixedAxis(Linear, 0, 10), fixedAxis(Linear, 0, 10))

	for _, tc := range []struct{ x, px float64 }{{0, 0}, {10, 100}, {5, 50}} {
		px, _, ok := m.ToPixel(tc.x, 5)
		if !ok || px != tc.px {
			t.Errorf("ToPixel(%g, 5) x = %g (%t), want %g", tc.x, px, ok, tc.px)
		}
	}
	// y is inverted.
	for _, tc := range []struct{ y, py float64 }{{0, 50}, {10, 0}, {5, 25}} {
		_, py, ok := m.ToPixel(5, tc.y)
		if !ok || py != tc.py {
			t.Errorf("ToPixel(5, %g) y = %g (%t), want %g", tc.y, py, ok, tc.py)
		}
	}
}

func TestMapperMonotonic(t *testing.T) {
	for _, k := range []ScaleKind{Linear, Log, SymLog, Time} {
		min, max := -50.0, 50.0
		if k == Log {
			min = 0.01
		}
		m := NewMapper(PlotArea{Left: 10, Top: 20, Right: 310, Bottom: 220},
			fixedAxis(k, min, max), fixedAxis(k, min, max))

		px0, py0, _ := m.ToPixel(min, min)
		px1, py1, _ := m.ToPixel(max, max)
		if !near(px0, 10) || !near(px1, 310) || !near(py0, 220) || !near(py1, 20) {
			t.Errorf("%s: edges map to (%g,%g) and (%g,%g)", k, px0, py0, px1, py1)
		}

		lastX, lastY := math.Inf(-1), math.Inf(1)
		for i := 0; i <= 100; i++ {
			v := min + (max-min)*float64(i)/100
			px, py, ok := m.ToPixel(v, v)
			if !ok {
				t.Fatalf("%s: %g unplottable", k, v)
			}
			if px <= lastX || py >= lastY {
				t.Fatalf("%s: not monotonic at %g: (%g,%g) after (%g,%g)", k, v, px, py, lastX, lastY)
			}
			lastX, lastY = px, py
		}
	}
}

func TestMapperUnplottable(t *testing.T) {
	m := NewMapper(PlotArea{Right: 100, Bottom: 100}, fixedAxis(Linear, 0, 1), fixedAxis(Log, 1, 100))
	for _, tc := range []struct{ x, y float64 }{
		{0.5, 0},
		{0.5, -3},
		{math.NaN(), 10},
		{0.5, math.NaN()},
		{math.Inf(1), 10},
	} {
		if _, _, ok := m.ToPixel(tc.x, tc.y); ok {
			t.Errorf("ToPixel(%g, %g) is plottable", tc.x, tc.y)
		}
	}
	if _, _, ok := m.ToPixel(0.5, 10); !ok {
		t.Errorf("ToPixel(0.5, 10) is unplottable")
	}
}

func TestMapperDegenerateAxis(t *testing.T) {
	x := NewAxis(Linear)
	x.Interval = Interval{3, 3}
	m := NewMapper(PlotArea{Right: 100, Bottom: 40}, x, fixedAxis(Linear, 0, 1))
	for _, v := range []float64{-7, 3, 1e9} {
		px, _, ok := m.ToPixel(v, 0.5)
		if !ok || px != 50 {
			t.Errorf("ToPixel(%g) on degenerate axis = %g (%t), want 50", v, px, ok)
		}
	}
}

func TestMapperToData(t *testing.T) {
	for _, k := range []ScaleKind{Linear, Log, SymLog, Time} {
		m := NewMapper(PlotArea{Left: 5, Top: 5, Right: 205, Bottom: 105},
			fixedAxis(k, 1, 1000), fixedAxis(k, 1, 1000))
		for _, v := range []float64{1, 2.5, 37, 500, 1000} {
			px, py, _ := m.ToPixel(v, v)
			x, y := m.ToData(px, py)
			if !near(x, v) || !near(y, v) {
				t.Errorf("%s: ToData(ToPixel(%g)) = (%g, %g)", k, v, x, y)
			}
		}
	}
}

func TestPlotAreaValid(t *testing.T) {
	tests := []struct {
		a    PlotArea
		want bool
	}{
		{PlotArea{0, 0, 100, 50}, true},
		{PlotArea{0, 0, 0, 50}, false},
		{PlotArea{0, 60, 100, 50}, false},
		{PlotArea{}, false},
	}
	for _, tc := range tests {
		if got := tc.a.Valid(); got != tc.want {
			t.Errorf("%+v.Valid() = %t, want %t", tc.a, got, tc.want)
		}
	}
}
