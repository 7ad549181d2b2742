package chart

import (
	"slices"

	"github.com/gogpu/gg"
	"github.com/vdobler/chart/shade"
)

// StepStyle selects how consecutive points of a series are connected.
type StepStyle int

const (
	StepNone StepStyle = iota // straight lines
	StepPre                   // vertical first, then horizontal
	StepPost                  // horizontal first, then vertical
	StepMid                   // horizontal to the middle, vertical, horizontal
)

func (s StepStyle) String() string {
	switch s {
	case StepNone:
		return "none"
	case StepPre:
		return "pre"
	case StepPost:
		return "post"
	case StepMid:
		return "mid"
	}
	return "unknown"
}

// ErrorBar holds asymmetric errors: the bar of point i spans from
// v-Minus[i] to v+Plus[i]. A nil slice means no error on that side.
type ErrorBar struct {
	Minus, Plus []float64
}

// Present reports whether e has at least one side.
func (e ErrorBar) Present() bool { return e.Minus != nil || e.Plus != nil }

// Bounds returns the lower and upper end of the bar at point i with
// value v.
func (e ErrorBar) Bounds(i int, v float64) (lo, hi float64) {
	lo, hi = v, v
	if e.Minus != nil {
		lo -= e.Minus[i]
	}
	if e.Plus != nil {
		hi += e.Plus[i]
	}
	return lo, hi
}

// A Series is a labeled sequence of (x, y) points and how to draw them.
// Create one with NewSeries. A Series is not modified by drawing.
type Series struct {
	Label string
	X, Y  []float64

	// Color is the colour of lines and markers. A zero Color (alpha 0)
	// picks the next colour of the plot's palette.
	Color gg.RGBA

	LineStyle   shade.LineStyle
	MarkerStyle shade.MarkerStyle
	StepStyle   StepStyle

	// LineWidth and MarkerSize are in pixels; 0 means the style default.
	LineWidth  float64
	MarkerSize float64

	XErr, YErr ErrorBar
}

// Len returns the number of points in s.
func (s *Series) Len() int { return len(s.X) }

// XY returns the i-th point. With Len it makes a Series a gonum
// plotter.XYer.
func (s *Series) XY(i int) (x, y float64) { return s.X[i], s.Y[i] }

// Validate checks that all slices of s have the same length.
func (s *Series) Validate() error {
	n := len(s.X)
	check := []struct {
		field string
		vs    []float64
	}{
		{"y", s.Y},
		{"xerr.minus", s.XErr.Minus},
		{"xerr.plus", s.XErr.Plus},
		{"yerr.minus", s.YErr.Minus},
		{"yerr.plus", s.YErr.Plus},
	}
	for i, c := range check {
		if i > 0 && c.vs == nil {
			continue
		}
		if len(c.vs) != n {
			return &SeriesError{Label: s.Label, Field: c.field, Err: ErrLengthMismatch}
		}
	}
	return nil
}

// Path returns the vertices of the line through s, expanded into a
// staircase according to s.StepStyle.
func (s *Series) Path() (xs, ys []float64) {
	n := len(s.X)
	if s.StepStyle == StepNone || n < 2 {
		return s.X, s.Y
	}
	m := 2*n - 1
	if s.StepStyle == StepMid {
		m = 3*n - 2
	}
	xs, ys = make([]float64, 0, m), make([]float64, 0, m)
	xs, ys = append(xs, s.X[0]), append(ys, s.Y[0])
	for i := 1; i < n; i++ {
		x0, y0, x1, y1 := s.X[i-1], s.Y[i-1], s.X[i], s.Y[i]
		switch s.StepStyle {
		case StepPre:
			xs, ys = append(xs, x0, x1), append(ys, y1, y1)
		case StepPost:
			xs, ys = append(xs, x1, x1), append(ys, y0, y1)
		case StepMid:
			mid := (x0 + x1) / 2
			xs, ys = append(xs, mid, mid, x1), append(ys, y0, y1, y1)
		}
	}
	return xs, ys
}

// ----------------------------------------------------------------------------
// SeriesBuilder

// SeriesBuilder collects the attributes of a Series.
type SeriesBuilder struct {
	s Series
}

// NewSeries starts a series with the given label and points.
func NewSeries(label string, x, y []float64) *SeriesBuilder {
	return &SeriesBuilder{s: Series{Label: label, X: x, Y: y}}
}

func (b *SeriesBuilder) WithColor(c gg.RGBA) *SeriesBuilder {
	b.s.Color = c
	return b
}

func (b *SeriesBuilder) WithLineStyle(ls shade.LineStyle) *SeriesBuilder {
	b.s.LineStyle = ls
	return b
}

func (b *SeriesBuilder) WithLineWidth(w float64) *SeriesBuilder {
	b.s.LineWidth = w
	return b
}

// WithMarker draws a marker of the given style and size in pixels at
// every point.
func (b *SeriesBuilder) WithMarker(ms shade.MarkerStyle, size float64) *SeriesBuilder {
	b.s.MarkerStyle, b.s.MarkerSize = ms, size
	return b
}

func (b *SeriesBuilder) WithStep(st StepStyle) *SeriesBuilder {
	b.s.StepStyle = st
	return b
}

// WithXErr sets horizontal error bars. Either slice may be nil.
func (b *SeriesBuilder) WithXErr(minus, plus []float64) *SeriesBuilder {
	b.s.XErr = ErrorBar{Minus: minus, Plus: plus}
	return b
}

// WithYErr sets vertical error bars. Either slice may be nil.
func (b *SeriesBuilder) WithYErr(minus, plus []float64) *SeriesBuilder {
	b.s.YErr = ErrorBar{Minus: minus, Plus: plus}
	return b
}

// Build validates the collected series and returns a copy which does not
// share its slices with the caller.
func (b *SeriesBuilder) Build() (*Series, error) {
	s := b.s
	if err := s.Validate(); err != nil {
		return nil, err
	}
	s.X, s.Y = slices.Clone(s.X), slices.Clone(s.Y)
	s.XErr = ErrorBar{slices.Clone(s.XErr.Minus), slices.Clone(s.XErr.Plus)}
	s.YErr = ErrorBar{slices.Clone(s.YErr.Minus), slices.Clone(s.YErr.Plus)}
	return &s, nil
}
