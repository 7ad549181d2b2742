// Package canvas defines the drawing surface the chart core renders to
// and provides two implementations: Pixmap, a CPU rasterizer on top of a
// gg.Pixmap, and Recorder, which keeps the draw calls for later
// submission or inspection.
//
// The surface only needs to draw a rectangle with a per-pixel shader and
// to measure and place text. Everything else is done by package shade.
package canvas

import (
	"github.com/gogpu/gg"
	"github.com/vdobler/chart/shade"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"gonum.org/v1/plot/vg/draw"
)

// A Canvas is a 2D pixel surface with the origin at the top left corner
// and y growing downwards.
type Canvas interface {
	// Size returns the width and height in pixels.
	Size() (width, height int)

	// Fill evaluates s for every pixel inside s.Bounds() and composites
	// the premultiplied result over the surface.
	Fill(s shade.Shader)

	// MeasureText returns the extent of txt in pixels.
	MeasureText(txt string) (width, height float64)

	// FillText draws txt anchored at (x, y). The alignments follow
	// gonum's convention: XLeft/XCenter/XRight and YTop/YCenter/YBottom
	// name the part of the text box placed at the anchor.
	FillText(txt string, x, y float64, xa draw.XAlignment, ya draw.YAlignment, col gg.RGBA)
}

// DefaultFace is the font face used by the canvases of this package.
var DefaultFace font.Face = basicfont.Face7x13

func measure(face font.Face, txt string) (w, h float64) {
	if txt == "" {
		return 0, 0
	}
	m := face.Metrics()
	return float64(font.MeasureString(face, txt).Ceil()), float64(m.Height.Ceil())
}

// textBox returns the top left corner of the w×h box of a text anchored
// at (x, y) with the given alignment.
func textBox(x, y, w, h float64, xa draw.XAlignment, ya draw.YAlignment) (left, top float64) {
	return x + float64(xa)*w, y - (1+float64(ya))*h
}

// Bounds returns the full surface of c as a rectangle.
func Bounds(c Canvas) shade.Rect {
	w, h := c.Size()
	return shade.R(0, 0, float64(w), float64(h))
}
