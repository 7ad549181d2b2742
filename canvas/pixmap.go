package canvas

import (
	"image"
	"image/color"
	"math"

	"github.com/gogpu/gg"
	"github.com/vdobler/chart/shade"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
	"gonum.org/v1/plot/vg/draw"
)

// Pixmap is a CPU canvas. It stores premultiplied colours in a gg.Pixmap
// and runs each shader once per covered pixel, which is what a GPU
// fragment stage would do for the same draw call.
type Pixmap struct {
	pm   *gg.Pixmap
	Face font.Face
}

var _ Canvas = (*Pixmap)(nil)

// NewPixmap returns a transparent w×h pixmap canvas.
func NewPixmap(w, h int) *Pixmap {
	return &Pixmap{pm: gg.NewPixmap(w, h), Face: DefaultFace}
}

// Size implements Canvas.
func (p *Pixmap) Size() (int, int) { return p.pm.Width(), p.pm.Height() }

// Clear fills the whole pixmap with c.
func (p *Pixmap) Clear(c gg.RGBA) {
	p.pm.Clear(c.Premultiply())
}

// Pixel returns the premultiplied colour stored at (x, y).
func (p *Pixmap) Pixel(x, y int) gg.RGBA { return p.pm.GetPixel(x, y) }

// Fill implements Canvas.
func (p *Pixmap) Fill(s shade.Shader) {
	sb := s.Bounds()
	b := sb.Intersect(Bounds(p))
	if b.Empty() {
		return
	}
	x0, x1 := int(math.Floor(b.Min.X)), int(math.Ceil(b.Max.X))
	y0, y1 := int(math.Floor(b.Min.Y)), int(math.Ceil(b.Max.Y))
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			local := gg.Pt(float64(x)+0.5-sb.Min.X, float64(y)+0.5-sb.Min.Y)
			c := s.Shade(local)
			if c.A <= 0 {
				continue
			}
			p.pm.SetPixel(x, y, shade.Composite(p.pm.GetPixel(x, y), c))
		}
	}
}

// MeasureText implements Canvas.
func (p *Pixmap) MeasureText(txt string) (float64, float64) {
	return measure(p.Face, txt)
}

// FillText implements Canvas.
func (p *Pixmap) FillText(txt string, x, y float64, xa draw.XAlignment, ya draw.YAlignment, col gg.RGBA) {
	if txt == "" {
		return
	}
	w, h := p.MeasureText(txt)
	left, top := textBox(x, y, w, h, xa, ya)
	d := font.Drawer{
		Dst:  target{p.pm},
		Src:  image.NewUniform(col.Color()),
		Face: p.Face,
		Dot:  fixed.P(int(math.Round(left)), int(math.Round(top))+p.Face.Metrics().Ascent.Ceil()),
	}
	d.DrawString(txt)
}

// Image returns a copy of the pixels. image.RGBA is premultiplied just
// like the pixmap's storage.
func (p *Pixmap) Image() *image.RGBA { return p.pm.ToImage() }

// SavePNG writes the pixmap to a PNG file.
func (p *Pixmap) SavePNG(path string) error { return p.pm.SavePNG(path) }

// target adapts a premultiplied gg.Pixmap to draw.Image for the font
// drawer.
type target struct{ pm *gg.Pixmap }

func (t target) ColorModel() color.Model { return color.RGBAModel }
func (t target) Bounds() image.Rectangle { return t.pm.Bounds() }

func (t target) At(x, y int) color.Color {
	c := t.pm.GetPixel(x, y)
	return color.RGBA{
		R: uint8(math.Round(c.R * 255)),
		G: uint8(math.Round(c.G * 255)),
		B: uint8(math.Round(c.B * 255)),
		A: uint8(math.Round(c.A * 255)),
	}
}

func (t target) Set(x, y int, c color.Color) {
	t.pm.SetPixel(x, y, gg.FromColor(c))
}
