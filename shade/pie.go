package shade

import (
	"math"

	"github.com/gogpu/gg"
)

const twoPi = 2 * math.Pi

// sweep describes an angular range. Angles are in radians, measured
// counter-clockwise on screen starting at the positive x axis.
type sweep struct {
	start float64 // normalized to [0, 2π)
	span  float64 // in (0, 2π]
	full  bool
}

func newSweep(start, end float64) (sweep, bool) {
	span := end - start
	if !finite(start, end) || span <= 0 {
		return sweep{}, false
	}
	if span >= twoPi-1e-9 {
		return sweep{span: twoPi, full: true}, true
	}
	return sweep{start: normAngle(start), span: span}, true
}

func normAngle(a float64) float64 {
	a = math.Mod(a, twoPi)
	if a < 0 {
		a += twoPi
	}
	return a
}

// at returns the position of the polar angle theta relative to the sweep
// start, in [0, 2π).
func (s sweep) at(theta float64) float64 {
	return normAngle(theta - s.start)
}

// coverage returns the anti-aliased angular coverage at polar angle theta
// and distance r from the centre. The band is measured as arc length so
// neighbouring slices add up to full coverage.
func (s sweep) coverage(theta, r float64) float64 {
	if s.full {
		return 1
	}
	rel := s.at(theta)
	var d float64 // arc length to the nearest sweep edge, negative outside
	if rel <= s.span {
		d = math.Min(rel, s.span-rel) * r
	} else {
		d = -math.Min(rel-s.span, twoPi-rel) * r
	}
	return clamp01(d + aa)
}

// polar returns the screen angle and radius of p relative to c.
func polar(p, c gg.Point) (theta, r float64) {
	d := p.Sub(c)
	return normAngle(math.Atan2(-d.Y, d.X)), d.Length()
}

// Pie is a circular slice between two angles, solid or with a radial
// gradient from the centre (Gradient.From) to the rim (Gradient.To).
type Pie struct {
	bounds   Rect
	center   gg.Point // local
	radius   float64
	sweep    sweep
	gradient Gradient
}

// NewPie returns the slice of the circle at center between startAngle and
// endAngle. The end may exceed 2π to wrap around the x axis; a span of at
// least 2π draws the full disc. It returns false for non-positive radius
// or an empty span.
func NewPie(center gg.Point, radius, startAngle, endAngle float64, g Gradient) (Pie, bool) {
	sw, ok := newSweep(startAngle, endAngle)
	if !ok || !finite(center.X, center.Y, radius) || radius <= 0 {
		return Pie{}, false
	}
	b := R(center.X-radius, center.Y-radius, center.X+radius, center.Y+radius).Inset(1)
	return Pie{
		bounds:   b,
		center:   center.Sub(b.Min),
		radius:   radius,
		sweep:    sw,
		gradient: g,
	}, true
}

// Bounds implements Shader.
func (s Pie) Bounds() Rect { return s.bounds }

// Shade implements Shader.
func (s Pie) Shade(p gg.Point) gg.RGBA {
	theta, r := polar(p, s.center)
	cov := coverage(r-s.radius, aa) * s.sweep.coverage(theta, r)
	return Premul(s.gradient.At(r/s.radius), cov)
}

// ArcGradient selects how an Arc interpolates its gradient.
type ArcGradient int

const (
	// RadialArc runs from the inner edge (From) to the outer edge (To).
	RadialArc ArcGradient = iota
	// AngularArc runs from the start angle (From) to the end angle (To).
	AngularArc
)

// Arc is a pie slice with a concentric hole: the part of an annulus
// between two angles. Donut charts and gauges use it.
type Arc struct {
	Pie
	inner float64
	mode  ArcGradient
}

// NewArc returns the annular slice at center. innerRatio is the inner
// radius as a fraction of radius and must lie in [0,1).
func NewArc(center gg.Point, radius, innerRatio, startAngle, endAngle float64, g Gradient, mode ArcGradient) (Arc, bool) {
	if !(innerRatio >= 0 && innerRatio < 1) {
		return Arc{}, false
	}
	p, ok := NewPie(center, radius, startAngle, endAngle, g)
	if !ok {
		return Arc{}, false
	}
	return Arc{Pie: p, inner: innerRatio * radius, mode: mode}, true
}

// Shade implements Shader. The inner and outer edges are anti-aliased
// independently.
func (a Arc) Shade(p gg.Point) gg.RGBA {
	theta, r := polar(p, a.center)
	outer := coverage(r-a.radius, aa)
	inner := 1.0
	if a.inner > 0 {
		inner = coverage(a.inner-r, aa)
	}
	cov := outer * inner * a.sweep.coverage(theta, r)

	var t float64
	switch a.mode {
	case AngularArc:
		t = a.sweep.at(theta) / a.sweep.span
	default:
		t = (r - a.inner) / (a.radius - a.inner)
	}
	return Premul(a.gradient.At(t), cov)
}
