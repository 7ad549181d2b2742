package shade

import (
	"math"

	"github.com/gogpu/gg"
)

// MarkerStyle selects the glyph drawn at a data point.
type MarkerStyle int

const (
	NoMarker MarkerStyle = iota
	Circle
	Square
	TriangleUp
	TriangleDown
	Diamond
	Cross
	Plus
	Star
)

var markerNames = []string{"none", "circle", "square", "triangle-up",
	"triangle-down", "diamond", "cross", "plus", "star"}

// String returns the name of ms.
func (ms MarkerStyle) String() string {
	if ms < 0 || int(ms) >= len(markerNames) {
		return "unknown"
	}
	return markerNames[ms]
}

// Markers lists all drawable marker styles in cycling order.
var Markers = []MarkerStyle{Circle, Square, TriangleUp, TriangleDown, Diamond, Cross, Plus, Star}

// Glyph extents in the unit square [-0.5,0.5]², centred at the origin.
const (
	circleRadius   = 0.45
	squareHalf     = 0.4
	diamondRadius  = 0.4
	barHalfWidth   = 0.08
	starBase       = 0.35
	starAmplitude  = 0.15
	starPhase      = math.Pi / 2 // puts one spike straight up in screen space
	triangleApex   = 0.42
	triangleBase   = 0.36
	triangleHalfBW = 0.42
)

// Marker is a glyph of a given style centred in a square of side 2·radius.
type Marker struct {
	bounds Rect
	size   float64
	band   float64 // half a pixel in unit square coordinates
	style  MarkerStyle
	color  gg.RGBA
}

// NewMarker returns the marker glyph at center. It returns false for
// NoMarker, non-positive radius or non-finite input.
func NewMarker(center gg.Point, radius float64, style MarkerStyle, col gg.RGBA) (Marker, bool) {
	if style == NoMarker || style < 0 || int(style) >= len(markerNames) {
		return Marker{}, false
	}
	if !finite(center.X, center.Y, radius) || radius <= 0 {
		return Marker{}, false
	}
	size := 2 * radius
	return Marker{
		bounds: R(center.X-radius, center.Y-radius, center.X+radius, center.Y+radius).Inset(aa),
		size:   size,
		band:   aa / size,
		style:  style,
		color:  col,
	}, true
}

// Bounds implements Shader.
func (m Marker) Bounds() Rect { return m.bounds }

// Shade implements Shader.
func (m Marker) Shade(p gg.Point) gg.RGBA {
	u := gg.Pt((p.X-aa)/m.size-0.5, (p.Y-aa)/m.size-0.5)
	return Premul(m.color, coverage(MarkerDistance(m.style, u), m.band))
}

// MarkerDistance returns the signed distance of the unit square point u
// to the outline of the glyph style. Negative values are inside.
// NoMarker is never inside.
func MarkerDistance(style MarkerStyle, u gg.Point) float64 {
	x, y := u.X, u.Y
	ax, ay := math.Abs(x), math.Abs(y)
	r := math.Hypot(x, y)

	switch style {
	case Circle:
		return r - circleRadius
	case Square:
		return math.Max(ax, ay) - squareHalf
	case TriangleUp:
		return triangleDistance(x, y)
	case TriangleDown:
		return triangleDistance(x, -y)
	case Diamond:
		return ax + ay - diamondRadius
	case Cross:
		d := math.Min(math.Abs(x-y), math.Abs(x+y)) / math.Sqrt2
		return math.Max(d-barHalfWidth, r-circleRadius)
	case Plus:
		return math.Max(math.Min(ax, ay)-barHalfWidth, r-circleRadius)
	case Star:
		theta := math.Atan2(y, x)
		return r - (starBase + starAmplitude*math.Cos(5*theta+starPhase))
	}
	return math.Inf(1)
}

// triangleDistance intersects three half planes forming a triangle with
// its apex at the top (negative y in screen space).
func triangleDistance(x, y float64) float64 {
	apex := gg.Pt(0, -triangleApex)
	left := gg.Pt(-triangleHalfBW, triangleBase)
	right := gg.Pt(triangleHalfBW, triangleBase)
	p := gg.Pt(x, y)
	return math.Max(math.Max(edgeDistance(p, apex, right), edgeDistance(p, right, left)), edgeDistance(p, left, apex))
}

// edgeDistance is the signed distance of p to the line a→b, positive on
// the right hand side when walking clockwise in screen space (outside).
func edgeDistance(p, a, b gg.Point) float64 {
	e := b.Sub(a)
	n := gg.Pt(e.Y, -e.X).Normalize()
	return p.Sub(a).Dot(n)
}

// GradientPoint is a circular marker shaded with a radial gradient from
// its centre to its rim.
type GradientPoint struct {
	bounds   Rect
	radius   float64
	gradient Gradient
}

// NewGradientPoint returns the gradient disc at center. It returns false
// for non-positive radius.
func NewGradientPoint(center gg.Point, radius float64, g Gradient) (GradientPoint, bool) {
	if !finite(center.X, center.Y, radius) || radius <= 0 {
		return GradientPoint{}, false
	}
	return GradientPoint{
		bounds:   R(center.X-radius, center.Y-radius, center.X+radius, center.Y+radius).Inset(aa),
		radius:   radius,
		gradient: g,
	}, true
}

// Bounds implements Shader.
func (g GradientPoint) Bounds() Rect { return g.bounds }

// Shade implements Shader.
func (g GradientPoint) Shade(p gg.Point) gg.RGBA {
	c := g.radius + aa
	d := math.Hypot(p.X-c, p.Y-c)
	return Premul(g.gradient.At(d/g.radius), coverage(d-g.radius, aa))
}
