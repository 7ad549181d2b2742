package canvas

import (
	"github.com/gogpu/gg"
	"github.com/vdobler/chart/shade"
	"golang.org/x/image/font"
	"gonum.org/v1/plot/vg/draw"
)

// Text is a recorded FillText call.
type Text struct {
	Text   string
	X, Y   float64
	XAlign draw.XAlignment
	YAlign draw.YAlignment
	Color  gg.RGBA
}

// Recorder is a Canvas which draws nothing but keeps every call in
// order. It is the draw-call queue a GPU host would consume and a
// convenient fake in tests.
type Recorder struct {
	Width, Height int
	Face          font.Face

	Shapes []shade.Shader
	Texts  []Text
}

var _ Canvas = (*Recorder)(nil)

// NewRecorder returns an empty w×h recorder.
func NewRecorder(w, h int) *Recorder {
	return &Recorder{Width: w, Height: h, Face: DefaultFace}
}

// Size implements Canvas.
func (r *Recorder) Size() (int, int) { return r.Width, r.Height }

// Fill implements Canvas.
func (r *Recorder) Fill(s shade.Shader) { r.Shapes = append(r.Shapes, s) }

// MeasureText implements Canvas.
func (r *Recorder) MeasureText(txt string) (float64, float64) { return measure(r.Face, txt) }

// FillText implements Canvas.
func (r *Recorder) FillText(txt string, x, y float64, xa draw.XAlignment, ya draw.YAlignment, col gg.RGBA) {
	r.Texts = append(r.Texts, Text{Text: txt, X: x, Y: y, XAlign: xa, YAlign: ya, Color: col})
}

// Replay issues all recorded calls on c in their original order of
// kind: shapes first, then text.
func (r *Recorder) Replay(c Canvas) {
	for _, s := range r.Shapes {
		c.Fill(s)
	}
	for _, t := range r.Texts {
		c.FillText(t.Text, t.X, t.Y, t.XAlign, t.YAlign, t.Color)
	}
}

// Reset drops all recorded calls.
func (r *Recorder) Reset() {
	r.Shapes = r.Shapes[:0]
	r.Texts = r.Texts[:0]
}
