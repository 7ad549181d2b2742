// Package shade provides the per-pixel shading contracts used to draw
// chart primitives.
//
// Every primitive is a pure function of its geometry and style. A
// constructor takes absolute pixel geometry, computes the smallest
// bounding rectangle, converts the geometry into that rectangle's local
// frame and returns a Shader. A host canvas evaluates the Shader once
// per pixel inside Bounds, passing the pixel centre relative to
// Bounds().Min. Whether that loop runs on the CPU or in a GPU fragment
// stage is up to the host.
//
// All shaders return premultiplied colours: the colour channels are the
// shading colour multiplied by coverage and by the colour's own alpha, the
// alpha channel is coverage times the colour's alpha.
//
// Constructors report degenerate geometry (zero length segments, zero
// area triangles, empty rectangles) by returning ok == false. Callers
// skip such primitives.
package shade

import (
	"math"

	"github.com/gogpu/gg"
)

// aa is the half width of the anti-aliasing band in pixels.
const aa = 0.5

// A Shader computes the premultiplied colour of every pixel inside its
// bounding rectangle.
type Shader interface {
	// Bounds is the absolute pixel rectangle outside of which the
	// shader produces no coverage.
	Bounds() Rect

	// Shade returns the premultiplied colour at local, the pixel centre
	// relative to Bounds().Min.
	Shade(local gg.Point) gg.RGBA
}

// Rect is an axis aligned rectangle in pixel space. Y grows downwards.
type Rect struct {
	Min, Max gg.Point
}

// R returns the canonical rectangle spanned by the two corners.
func R(x0, y0, x1, y1 float64) Rect {
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	return Rect{Min: gg.Pt(x0, y0), Max: gg.Pt(x1, y1)}
}

// Dx returns the width of r.
func (r Rect) Dx() float64 { return r.Max.X - r.Min.X }

// Dy returns the height of r.
func (r Rect) Dy() float64 { return r.Max.Y - r.Min.Y }

// Empty reports whether r has no area or is not finite.
func (r Rect) Empty() bool {
	return !(r.Dx() > 0 && r.Dy() > 0) || math.IsInf(r.Dx(), 0) || math.IsInf(r.Dy(), 0)
}

// Inset returns r grown by d on every side (shrunk for negative d).
func (r Rect) Inset(d float64) Rect {
	return Rect{Min: gg.Pt(r.Min.X-d, r.Min.Y-d), Max: gg.Pt(r.Max.X+d, r.Max.Y+d)}
}

// Intersect returns the largest rectangle contained in r and s.
func (r Rect) Intersect(s Rect) Rect {
	r.Min.X = math.Max(r.Min.X, s.Min.X)
	r.Min.Y = math.Max(r.Min.Y, s.Min.Y)
	r.Max.X = math.Min(r.Max.X, s.Max.X)
	r.Max.Y = math.Min(r.Max.Y, s.Max.Y)
	return r
}

// Contains reports whether p lies inside r (edges included).
func (r Rect) Contains(p gg.Point) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

// boundsOf returns the bounding rectangle of the given points.
func boundsOf(pts ...gg.Point) Rect {
	r := Rect{Min: pts[0], Max: pts[0]}
	for _, p := range pts[1:] {
		r.Min.X = math.Min(r.Min.X, p.X)
		r.Min.Y = math.Min(r.Min.Y, p.Y)
		r.Max.X = math.Max(r.Max.X, p.X)
		r.Max.Y = math.Max(r.Max.Y, p.Y)
	}
	return r
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// smoothstep is the GLSL Hermite interpolation between e0 and e1.
func smoothstep(e0, e1, x float64) float64 {
	t := clamp01((x - e0) / (e1 - e0))
	return t * t * (3 - 2*t)
}

// coverage converts a signed distance (negative inside) measured in
// units where band is half a pixel into an anti-aliased coverage.
func coverage(sd, band float64) float64 {
	return 1 - smoothstep(-band, band, sd)
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// Premul returns c at the given coverage in premultiplied form.
func Premul(c gg.RGBA, cov float64) gg.RGBA {
	a := clamp01(cov) * c.A
	return gg.RGBA{R: c.R * a, G: c.G * a, B: c.B * a, A: a}
}

// Composite blends the premultiplied src over the premultiplied dst.
func Composite(dst, src gg.RGBA) gg.RGBA {
	k := 1 - src.A
	return gg.RGBA{
		R: src.R + dst.R*k,
		G: src.G + dst.G*k,
		B: src.B + dst.B*k,
		A: src.A + dst.A*k,
	}
}
