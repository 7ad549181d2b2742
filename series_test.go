package chart

import (
	"errors"
	"slices"
	"testing"

	"github.com/gogpu/gg"
	"github.com/vdobler/chart/shade"
)

func TestSeriesBuild(t *testing.T) {
	x, y := []float64{1, 2, 3}, []float64{4, 5, 6}
	s, err := NewSeries("a", x, y).
		WithColor(gg.RGB(1, 0, 0)).
		WithLineStyle(shade.Dashed).
		WithLineWidth(3).
		WithMarker(shade.Star, 9).
		WithStep(StepMid).
		WithYErr([]float64{1, 1, 1}, nil).
		Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	x[0], y[0] = 100, 100
	if s.X[0] != 1 || s.Y[0] != 4 {
		t.Errorf("series shares its slices with the caller")
	}
	if s.LineStyle != shade.Dashed || s.MarkerStyle != shade.Star || s.MarkerSize != 9 ||
		s.StepStyle != StepMid || s.LineWidth != 3 || s.Color != gg.RGB(1, 0, 0) {
		t.Errorf("attributes lost: %+v", s)
	}
	if !s.YErr.Present() || s.XErr.Present() {
		t.Errorf("error bars: x %t, y %t", s.XErr.Present(), s.YErr.Present())
	}
	if s.Len() != 3 {
		t.Errorf("Len = %d", s.Len())
	}
}

func TestSeriesLengthMismatch(t *testing.T) {
	tests := []struct {
		name  string
		b     *SeriesBuilder
		field string
	}{
		{"y", NewSeries("s", []float64{1, 2}, []float64{1}), "y"},
		{"y-nil", NewSeries("s", []float64{1, 2}, nil), "y"},
		{"xerr", NewSeries("s", []float64{1, 2}, []float64{1, 2}).WithXErr([]float64{1}, nil), "xerr.minus"},
		{"yerr", NewSeries("s", []float64{1, 2}, []float64{1, 2}).WithYErr(nil, []float64{1, 2, 3}), "yerr.plus"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s, err := tc.b.Build()
			if s != nil {
				t.Errorf("got a series despite the error")
			}
			if !errors.Is(err, ErrLengthMismatch) {
				t.Fatalf("err = %v, want ErrLengthMismatch", err)
			}
			var se *SeriesError
			if !errors.As(err, &se) || se.Field != tc.field || se.Label != "s" {
				t.Errorf("err = %#v, want field %q", err, tc.field)
			}
		})
	}
}

func TestSeriesEmptyIsValid(t *testing.T) {
	if _, err := NewSeries("empty", nil, nil).Build(); err != nil {
		t.Errorf("empty series: %v", err)
	}
}

func TestSeriesPath(t *testing.T) {
	x, y := []float64{0, 1, 2}, []float64{0, 10, 20}
	tests := []struct {
		step   StepStyle
		xs, ys []float64
	}{
		{StepNone, []float64{0, 1, 2}, []float64{0, 10, 20}},
		{StepPre, []float64{0, 0, 1, 1, 2}, []float64{0, 10, 10, 20, 20}},
		{StepPost, []float64{0, 1, 1, 2, 2}, []float64{0, 0, 10, 10, 20}},
		{StepMid, []float64{0, 0.5, 0.5, 1, 1.5, 1.5, 2}, []float64{0, 0, 10, 10, 10, 20, 20}},
	}
	for _, tc := range tests {
		t.Run(tc.step.String(), func(t *testing.T) {
			s := &Series{X: x, Y: y, StepStyle: tc.step}
			xs, ys := s.Path()
			if !slices.Equal(xs, tc.xs) || !slices.Equal(ys, tc.ys) {
				t.Errorf("Path() = %v %v, want %v %v", xs, ys, tc.xs, tc.ys)
			}
		})
	}
}

func TestErrorBarBounds(t *testing.T) {
	e := ErrorBar{Minus: []float64{1, 2}, Plus: []float64{3, 4}}
	if lo, hi := e.Bounds(1, 10); lo != 8 || hi != 14 {
		t.Errorf("Bounds = %g, %g, want 8, 14", lo, hi)
	}
	e = ErrorBar{Plus: []float64{3, 4}}
	if lo, hi := e.Bounds(0, 10); lo != 10 || hi != 13 {
		t.Errorf("one sided Bounds = %g, %g, want 10, 13", lo, hi)
	}
}
