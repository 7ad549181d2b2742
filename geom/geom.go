// Package geom provides the chart types which can be added to a
// chart.Plot.
//
// Each geom turns its data into shade primitives in pixel space using the
// Mapper of the chart.Panel it is drawn on. Geoms which know their data
// implement chart.DataValuer or gonum's plot.DataRanger so the plot can
// fit its axes, and chart.Validator if their data can be inconsistent.
//
// The different geoms have singular names like Bar or Line even if
// they may draw several bars or lines.
package geom

import (
	"github.com/gogpu/gg"
	"github.com/vdobler/chart"
	"github.com/vdobler/chart/shade"
	"gonum.org/v1/plot/plotter"
)

// ----------------------------------------------------------------------------
// Line

// Line draws a series as a connected line with optional markers and
// error bars. The line is broken at unplottable points.
type Line struct {
	Series *chart.Series
}

// Validate implements chart.Validator.
func (l Line) Validate() error { return validSeries(l.Series) }

// DataValues implements chart.DataValuer.
func (l Line) DataValues() (xs, ys [][]float64) { return seriesValues(l.Series) }

// Draw implements chart.Geom.
func (l Line) Draw(p *chart.Panel) {
	s := l.Series
	col := p.Color(s.Color)
	width := p.LineWidth(s.LineWidth)

	var run []gg.Point
	flush := func() {
		for _, seg := range shade.Polyline(run, width, s.LineStyle, col) {
			p.Fill(seg, true)
		}
		run = run[:0]
	}
	xs, ys := s.Path()
	for i := range xs {
		pt, ok := p.MapXY(xs[i], ys[i])
		if !ok {
			flush()
			continue
		}
		run = append(run, pt)
	}
	flush()

	drawErrorBars(p, s, col, 0)
	if s.MarkerStyle != shade.NoMarker {
		r := p.MarkerSize(s.MarkerSize) / 2
		for i := range s.X {
			if pt, ok := p.MapXY(s.X[i], s.Y[i]); ok {
				p.Fill(shade.NewMarker(pt, r, s.MarkerStyle, col))
			}
		}
	}
	p.AddLegend(chart.LegendEntry{Label: s.Label, Color: col, Line: s.LineStyle, Marker: s.MarkerStyle})
}

// ----------------------------------------------------------------------------
// Scatter

// Scatter draws a marker at each point of XY.
type Scatter struct {
	XY    plotter.XYer
	Label string

	// Color of the markers; zero picks the next palette colour.
	Color  gg.RGBA
	Marker shade.MarkerStyle // NoMarker draws circles
	Radius float64           // in pixels; 0 is half the style's marker size

	// Size, if set, is the radius in pixels of point i. Such points are
	// drawn as bubbles with a radial gradient instead of markers.
	Size Aesthetic

	// Alpha, if set, is the opacity of point i. Points with an opacity
	// outside [0,1] are not drawn.
	Alpha Aesthetic
}

// NewScatter returns a Scatter of the points of s, drawn with the
// colour, marker and marker size of s.
func NewScatter(s *chart.Series) Scatter {
	return Scatter{
		XY:     s,
		Label:  s.Label,
		Color:  s.Color,
		Marker: s.MarkerStyle,
		Radius: s.MarkerSize / 2,
	}
}

// Validate implements chart.Validator. Points which can validate
// themselves, like a *chart.Series, are validated too.
func (s Scatter) Validate() error {
	if s.XY == nil {
		return ErrNoData
	}
	if v, ok := s.XY.(chart.Validator); ok {
		return v.Validate()
	}
	return nil
}

// DataValues implements chart.DataValuer.
func (s Scatter) DataValues() (xs, ys [][]float64) {
	return [][]float64{values(plotter.XValues{XYer: s.XY})},
		[][]float64{values(plotter.YValues{XYer: s.XY})}
}

func values(v plotter.Valuer) []float64 {
	vs := make([]float64, v.Len())
	for i := range vs {
		vs[i] = v.Value(i)
	}
	return vs
}

// Draw implements chart.Geom.
func (s Scatter) Draw(p *chart.Panel) {
	col := p.Color(s.Color)
	marker := s.Marker
	if marker == shade.NoMarker {
		marker = shade.Circle
	}
	r := s.Radius
	if r <= 0 {
		r = p.MarkerSize(0) / 2
	}

	for i := 0; i < s.XY.Len(); i++ {
		center, ok := p.MapXY(s.XY.XY(i))
		if !ok {
			continue
		}
		c, ok := pointColor(col, i, s.Alpha)
		if !ok {
			continue
		}
		if s.Size != nil {
			p.Fill(shade.NewGradientPoint(center, s.Size(i), shade.RadialGradient(c)))
			continue
		}
		p.Fill(shade.NewMarker(center, r, marker, c))
	}
	p.AddLegend(chart.LegendEntry{Label: s.Label, Color: col, Marker: marker, NoLine: true})
}

// ----------------------------------------------------------------------------
// ErrorBars

// ErrorBars draws only the error bars of a series, e.g. to combine them
// with a Bar.
type ErrorBars struct {
	Series *chart.Series

	// Cap is the width of the caps in pixels; 0 uses the style's
	// marker size.
	Cap float64
}

// Validate implements chart.Validator.
func (e ErrorBars) Validate() error { return validSeries(e.Series) }

// DataValues implements chart.DataValuer.
func (e ErrorBars) DataValues() (xs, ys [][]float64) { return seriesValues(e.Series) }

// Draw implements chart.Geom.
func (e ErrorBars) Draw(p *chart.Panel) {
	drawErrorBars(p, e.Series, p.Color(e.Series.Color), e.Cap)
}

// drawErrorBars draws the x and y error bars of s with caps of width
// capw.
func drawErrorBars(p *chart.Panel, s *chart.Series, col gg.RGBA, capw float64) {
	if !s.XErr.Present() && !s.YErr.Present() {
		return
	}
	width := p.LineWidth(s.LineWidth)
	if capw <= 0 {
		capw = p.MarkerSize(s.MarkerSize)
	}
	h := capw / 2
	for i := range s.X {
		x, y := s.X[i], s.Y[i]
		if s.YErr.Present() {
			lo, hi := s.YErr.Bounds(i, y)
			a, ok0 := p.MapXY(x, lo)
			b, ok1 := p.MapXY(x, hi)
			if ok0 && ok1 && a != b {
				line(p, a, b, width, col)
				line(p, a.Sub(gg.Pt(h, 0)), a.Add(gg.Pt(h, 0)), width, col)
				line(p, b.Sub(gg.Pt(h, 0)), b.Add(gg.Pt(h, 0)), width, col)
			}
		}
		if s.XErr.Present() {
			lo, hi := s.XErr.Bounds(i, x)
			a, ok0 := p.MapXY(lo, y)
			b, ok1 := p.MapXY(hi, y)
			if ok0 && ok1 && a != b {
				line(p, a, b, width, col)
				line(p, a.Sub(gg.Pt(0, h)), a.Add(gg.Pt(0, h)), width, col)
				line(p, b.Sub(gg.Pt(0, h)), b.Add(gg.Pt(0, h)), width, col)
			}
		}
	}
}
