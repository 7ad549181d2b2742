package shade

import (
	"math"

	"github.com/gogpu/gg"
)

// LineStyle selects the dash pattern of a stroked line.
type LineStyle int

const (
	Solid LineStyle = iota
	Dashed
	Dotted
	DashDot
)

// String returns the name of ls.
func (ls LineStyle) String() string {
	if ls < 0 || int(ls) >= len(lineStyleNames) {
		return "unknown"
	}
	return lineStyleNames[ls]
}

var lineStyleNames = []string{"solid", "dashed", "dotted", "dashdot"}

// Dash returns the on/off pattern of ls in pixels, nil for Solid.
//
//	Dashed   10 on, 5 off            (period 15)
//	Dotted    2 on, 4 off            (period 6)
//	DashDot  10 on, 4 off, 2 on, 4 off (period 20)
func (ls LineStyle) Dash() *gg.Dash {
	switch ls {
	case Dashed:
		return gg.NewDash(10, 5)
	case Dotted:
		return gg.NewDash(2, 4)
	case DashDot:
		return gg.NewDash(10, 4, 2, 4)
	}
	return nil
}

// Visible reports whether the pattern of ls is "on" at the given arc
// length along the line.
func (ls LineStyle) Visible(along float64) bool {
	d := ls.Dash()
	return visible(d, period(d), along)
}

// period returns the pattern length of d, 0 if d draws a solid line.
func period(d *gg.Dash) float64 {
	if !d.IsDashed() {
		return 0
	}
	return d.PatternLength()
}

// visible reports whether d is "on" at along. An odd number of lengths
// is repeated once to form the period.
func visible(d *gg.Dash, period, along float64) bool {
	if period <= 0 {
		return true
	}
	pos := math.Mod(along, period)
	if pos < 0 {
		pos += period
	}
	n := len(d.Array)
	if n%2 != 0 {
		n *= 2
	}
	on := true
	for i := 0; i < n; i++ {
		l := d.Array[i%len(d.Array)]
		if pos < l {
			return on
		}
		pos -= l
		on = !on
	}
	return on
}

// minSegmentLength is the length below which a segment is not drawn.
const minSegmentLength = 1e-6

// Segment is an anti-aliased, optionally dashed, straight line between
// two points.
type Segment struct {
	bounds Rect
	a, b   gg.Point // endpoints in the local frame
	length float64
	half   float64 // half the stroke width
	fade   float64 // alpha factor for strokes thinner than a pixel
	dash   *gg.Dash
	period float64 // of dash, 0 for solid lines
	offset float64
	color  gg.RGBA
}

// NewSegment returns the segment from p1 to p2. The dash pattern of style
// starts at dashOffset, the arc length already travelled along the
// polyline p1 belongs to. It returns false for segments of (nearly) zero
// length, non-positive width or non-finite coordinates.
func NewSegment(p1, p2 gg.Point, width float64, style LineStyle, dashOffset float64, col gg.RGBA) (Segment, bool) {
	if !finite(p1.X, p1.Y, p2.X, p2.Y, width, dashOffset) || width <= 0 {
		return Segment{}, false
	}
	length := p1.Distance(p2)
	if length < minSegmentLength {
		return Segment{}, false
	}

	fade := 1.0
	if width < 1 {
		fade, width = width, 1
	}
	half := width / 2
	bounds := boundsOf(p1, p2).Inset(half + 2*aa)
	dash := style.Dash()
	return Segment{
		bounds: bounds,
		a:      p1.Sub(bounds.Min),
		b:      p2.Sub(bounds.Min),
		length: length,
		half:   half,
		fade:   fade,
		dash:   dash,
		period: period(dash),
		offset: dashOffset,
		color:  col,
	}, true
}

// Bounds implements Shader.
func (s Segment) Bounds() Rect { return s.bounds }

// Length returns the length of the segment in pixels.
func (s Segment) Length() float64 { return s.length }

// Shade implements Shader.
func (s Segment) Shade(p gg.Point) gg.RGBA {
	pa, ba := p.Sub(s.a), s.b.Sub(s.a)
	h := clamp01(pa.Dot(ba) / ba.LengthSquared())
	d := pa.Sub(ba.Mul(h)).Length()

	if !visible(s.dash, s.period, s.offset+h*s.length) {
		return gg.Transparent
	}
	return Premul(s.color, s.fade*coverage(d-s.half, aa))
}

// Polyline splits the connected line through pts into segments which
// share one continuous dash phase. Degenerate segments are dropped and
// do not advance the pattern.
func Polyline(pts []gg.Point, width float64, style LineStyle, col gg.RGBA) []Segment {
	var segs []Segment
	offset := 0.0
	for i := 1; i < len(pts); i++ {
		s, ok := NewSegment(pts[i-1], pts[i], width, style, offset, col)
		if !ok {
			continue
		}
		segs = append(segs, s)
		offset += s.length
	}
	return segs
}
