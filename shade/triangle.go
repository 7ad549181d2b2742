package shade

import (
	"math"

	"github.com/gogpu/gg"
)

// minTriangleArea is the area below which a triangle is not drawn.
const minTriangleArea = 1e-9

// TriangleGradient selects how a Triangle interpolates its gradient.
type TriangleGradient int

const (
	// RadialTriangle runs from the centre vertex (From) to the opposite
	// edge (To).
	RadialTriangle TriangleGradient = iota
	// VerticalTriangle runs from the top of the bounding box (From) to
	// its bottom (To).
	VerticalTriangle
)

// Triangle is a filled triangle tested with barycentric coordinates.
// Area fills, violins and other polygons are decomposed into triangles.
type Triangle struct {
	bounds   Rect
	a, b, c  gg.Point // local vertices
	denom    float64
	alt      [3]float64 // altitude onto the edge opposite each vertex
	gradient Gradient
	mode     TriangleGradient
	center   int
}

// NewTriangle returns the triangle through the three points. For
// RadialTriangle the gradient starts at pts[center]. It returns false for
// (nearly) zero area.
func NewTriangle(pts [3]gg.Point, g Gradient, mode TriangleGradient, center int) (Triangle, bool) {
	for _, p := range pts {
		if !finite(p.X, p.Y) {
			return Triangle{}, false
		}
	}
	area2 := pts[1].Sub(pts[0]).Cross(pts[2].Sub(pts[0]))
	if math.Abs(area2)/2 < minTriangleArea {
		return Triangle{}, false
	}
	b := boundsOf(pts[:]...).Inset(2 * aa)
	t := Triangle{
		bounds:   b,
		a:        pts[0].Sub(b.Min),
		b:        pts[1].Sub(b.Min),
		c:        pts[2].Sub(b.Min),
		gradient: g,
		mode:     mode,
	}
	if center > 0 && center < 3 {
		t.center = center
	}
	v0, v1 := t.b.Sub(t.a), t.c.Sub(t.a)
	t.denom = v0.Dot(v0)*v1.Dot(v1) - v0.Dot(v1)*v0.Dot(v1)
	a := math.Abs(area2)
	t.alt = [3]float64{
		a / t.b.Distance(t.c),
		a / t.c.Distance(t.a),
		a / t.a.Distance(t.b),
	}
	return t, true
}

// Bounds implements Shader.
func (t Triangle) Bounds() Rect { return t.bounds }

// Barycentric returns the barycentric coordinates (u, v, w) of the local
// point p with respect to the vertices a, b, c; u+v+w == 1.
func (t Triangle) Barycentric(p gg.Point) (u, v, w float64) {
	v0, v1, v2 := t.b.Sub(t.a), t.c.Sub(t.a), p.Sub(t.a)
	d00, d01, d11 := v0.Dot(v0), v0.Dot(v1), v1.Dot(v1)
	d20, d21 := v2.Dot(v0), v2.Dot(v1)
	v = (d11*d20 - d01*d21) / t.denom
	w = (d00*d21 - d01*d20) / t.denom
	return 1 - v - w, v, w
}

// Shade implements Shader. The smallest barycentric coordinate, scaled to
// pixels by the matching altitude, feeds the anti-aliasing band; triangles
// sharing an edge add up to full coverage along it.
func (t Triangle) Shade(p gg.Point) gg.RGBA {
	l := [3]float64{}
	l[0], l[1], l[2] = t.Barycentric(p)
	d := math.Inf(1)
	for i := range l {
		d = math.Min(d, l[i]*t.alt[i])
	}
	cov := smoothstep(-aa, aa, d)
	if cov <= 0 {
		return gg.Transparent
	}

	var s float64
	switch t.mode {
	case VerticalTriangle:
		s = p.Y / t.bounds.Dy()
	default:
		s = 1 - l[t.center]
	}
	return Premul(t.gradient.At(s), cov)
}
