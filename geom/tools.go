package geom

import (
	"errors"
	"math"

	"github.com/gogpu/gg"
	"github.com/vdobler/chart"
	"github.com/vdobler/chart/data"
	"github.com/vdobler/chart/shade"
)

// ErrNoData is returned by Validate of geoms without data source.
var ErrNoData = errors.New("geom: no data")

// Aesthetic is a function mapping a certain data point to an aesthetic
// like its size or opacity.
type Aesthetic func(i int) float64

// pointColor applies the opacity alpha(i) to col. Points with an opacity
// outside [0,1] are not drawn.
func pointColor(col gg.RGBA, i int, alpha Aesthetic) (gg.RGBA, bool) {
	if alpha == nil {
		return col, true
	}
	a := alpha(i)
	if !(a >= 0 && a <= 1) {
		return col, false
	}
	col.A *= a
	return col, true
}

// mapRect maps the data rectangle r to the canvas. It is false if a
// corner is unplottable.
func mapRect(p *chart.Panel, r data.XYUV) (shade.Rect, bool) {
	x0, ok0 := p.MapX(r.X)
	x1, ok1 := p.MapX(r.U)
	y0, ok2 := p.MapY(r.Y)
	y1, ok3 := p.MapY(r.V)
	if !ok0 || !ok1 || !ok2 || !ok3 {
		return shade.Rect{}, false
	}
	return shade.R(x0, y0, x1, y1), true
}

// fillRects fills all rectangles in rects with g. Rectangles of zero
// width or height are skipped.
func fillRects(p *chart.Panel, rects data.XYUVer, g shade.Gradient) {
	for i := 0; i < rects.Len(); i++ {
		x, y, u, v := rects.XYUV(i)
		if x == u || y == v {
			continue
		}
		if r, ok := mapRect(p, data.XYUV{X: x, Y: y, U: u, V: v}); ok {
			p.Fill(shade.NewFill(r, g))
		}
	}
}

// line draws a solid line between two canvas points unless they
// coincide.
func line(p *chart.Panel, a, b gg.Point, width float64, col gg.RGBA) {
	if a == b {
		return
	}
	p.Fill(shade.NewSegment(a, b, width, shade.Solid, 0, col))
}

// dataLine is like line for data coordinates.
func dataLine(p *chart.Panel, x0, y0, x1, y1, width float64, col gg.RGBA) {
	a, ok0 := p.MapXY(x0, y0)
	b, ok1 := p.MapXY(x1, y1)
	if ok0 && ok1 {
		line(p, a, b, width, col)
	}
}

// fillQuad fills the convex quadrilateral a b c d as two triangles.
func fillQuad(p *chart.Panel, a, b, c, d gg.Point, g shade.Gradient) {
	triangle(p, a, b, c, g)
	triangle(p, a, c, d, g)
}

// triangle fills the triangle a b c unless two of its corners coincide.
func triangle(p *chart.Panel, a, b, c gg.Point, g shade.Gradient) {
	if a == b || b == c || c == a {
		return
	}
	p.Fill(shade.NewTriangle([3]gg.Point{a, b, c}, g, shade.VerticalTriangle, 0))
}

func label(labels []string, k int) string {
	if k < len(labels) {
		return labels[k]
	}
	return ""
}

// colorOf returns the k-th colour; a missing one is zero and thus picked
// from the palette by Panel.Color.
func colorOf(colors []gg.RGBA, k int) gg.RGBA {
	if k < len(colors) {
		return colors[k]
	}
	return gg.RGBA{}
}

// errorBounds returns the lower and upper ends of the error bars e for
// the values vs.
func errorBounds(e chart.ErrorBar, vs []float64) (lo, hi []float64) {
	lo, hi = make([]float64, len(vs)), make([]float64, len(vs))
	for i, v := range vs {
		lo[i], hi[i] = e.Bounds(i, v)
	}
	return lo, hi
}

// seriesValues returns the values of s including its error bars.
func seriesValues(s *chart.Series) (xs, ys [][]float64) {
	xs, ys = [][]float64{s.X}, [][]float64{s.Y}
	if s.XErr.Present() {
		lo, hi := errorBounds(s.XErr, s.X)
		xs = append(xs, lo, hi)
	}
	if s.YErr.Present() {
		lo, hi := errorBounds(s.YErr, s.Y)
		ys = append(ys, lo, hi)
	}
	return xs, ys
}

func validSeries(s *chart.Series) error {
	if s == nil {
		return ErrNoData
	}
	return s.Validate()
}

// sturges returns the number of histogram bins for n samples suggested
// by Sturges' rule.
func sturges(n int) int {
	if n < 2 {
		return 1
	}
	return int(math.Ceil(math.Log2(float64(n)))) + 1
}
