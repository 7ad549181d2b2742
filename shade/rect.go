package shade

import "github.com/gogpu/gg"

// Fill is an axis aligned rectangle, solid or with a linear gradient
// from its bottom edge (Gradient.From) to its top edge (Gradient.To).
// Bars, spans and the strips of area charts are all drawn with it.
type Fill struct {
	bounds   Rect
	gradient Gradient
}

// NewFill returns the rectangle r filled with g. It returns false if r
// is empty. Use Flat for a single colour.
func NewFill(r Rect, g Gradient) (Fill, bool) {
	r = R(r.Min.X, r.Min.Y, r.Max.X, r.Max.Y)
	if !finite(r.Min.X, r.Min.Y, r.Max.X, r.Max.Y) || r.Empty() {
		return Fill{}, false
	}
	return Fill{bounds: r, gradient: g}, true
}

// Bounds implements Shader.
func (f Fill) Bounds() Rect { return f.bounds }

// Shade implements Shader. Fractional edges get partial coverage, so two
// fills sharing an edge add up to full coverage along it.
func (f Fill) Shade(p gg.Point) gg.RGBA {
	w, h := f.bounds.Dx(), f.bounds.Dy()
	cx := clamp01(min(p.X, w-p.X) + aa)
	cy := clamp01(min(p.Y, h-p.Y) + aa)
	t := 1 - p.Y/h
	return Premul(f.gradient.At(t), cx*cy)
}
