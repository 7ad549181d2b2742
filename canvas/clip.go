package canvas

import (
	"github.com/gogpu/gg"
	"github.com/vdobler/chart/shade"
)

// Clipped restricts all shapes drawn on it to a rectangle of the
// underlying canvas. Text is not clipped.
type Clipped struct {
	Canvas
	Clip shade.Rect
}

// Clip returns c restricted to r.
func Clip(c Canvas, r shade.Rect) *Clipped {
	return &Clipped{Canvas: c, Clip: r}
}

// Fill implements Canvas. Shapes entirely outside the clip rectangle are
// dropped.
func (c *Clipped) Fill(s shade.Shader) {
	b := s.Bounds().Intersect(c.Clip)
	if b.Empty() {
		return
	}
	c.Canvas.Fill(clippedShader{s: s, bounds: b, shift: b.Min.Sub(s.Bounds().Min)})
}

// clippedShader narrows the bounds of s and translates local coordinates
// back into the frame of s.
type clippedShader struct {
	s      shade.Shader
	bounds shade.Rect
	shift  gg.Point
}

func (c clippedShader) Bounds() shade.Rect { return c.bounds }

func (c clippedShader) Shade(p gg.Point) gg.RGBA {
	return c.s.Shade(p.Add(c.shift))
}

// Unwrap returns the shader s was created from if s is the result of
// clipping, and s itself otherwise.
func Unwrap(s shade.Shader) shade.Shader {
	for {
		c, ok := s.(clippedShader)
		if !ok {
			return s
		}
		s = c.s
	}
}
