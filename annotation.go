package chart

import (
	"github.com/gogpu/gg"
	"github.com/vdobler/chart/shade"
)

// VLine is a vertical line across the plot area at X.
type VLine struct {
	X     float64
	Color gg.RGBA
	Width float64
	Style shade.LineStyle
}

// Draw implements Geom.
func (l VLine) Draw(p *Panel) {
	x, ok := p.MapX(l.X)
	if !ok {
		return
	}
	p.Fill(shade.NewSegment(gg.Pt(x, p.Area.Top), gg.Pt(x, p.Area.Bottom),
		p.LineWidth(l.Width), l.Style, 0, l.Color))
}

// HLine is a horizontal line across the plot area at Y.
type HLine struct {
	Y     float64
	Color gg.RGBA
	Width float64
	Style shade.LineStyle
}

// Draw implements Geom.
func (l HLine) Draw(p *Panel) {
	y, ok := p.MapY(l.Y)
	if !ok {
		return
	}
	p.Fill(shade.NewSegment(gg.Pt(p.Area.Left, y), gg.Pt(p.Area.Right, y),
		p.LineWidth(l.Width), l.Style, 0, l.Color))
}

// VSpan shades the full height of the plot area between X1 and X2.
type VSpan struct {
	X1, X2 float64
	Color  gg.RGBA
}

// Draw implements Geom.
func (s VSpan) Draw(p *Panel) {
	x1, ok1 := p.MapX(s.X1)
	x2, ok2 := p.MapX(s.X2)
	if !ok1 || !ok2 {
		return
	}
	p.Fill(shade.NewFill(shade.R(x1, p.Area.Top, x2, p.Area.Bottom), shade.Flat(s.Color)))
}

// HSpan shades the full width of the plot area between Y1 and Y2.
type HSpan struct {
	Y1, Y2 float64
	Color  gg.RGBA
}

// Draw implements Geom.
func (s HSpan) Draw(p *Panel) {
	y1, ok1 := p.MapY(s.Y1)
	y2, ok2 := p.MapY(s.Y2)
	if !ok1 || !ok2 {
		return
	}
	p.Fill(shade.NewFill(shade.R(p.Area.Left, y1, p.Area.Right, y2), shade.Flat(s.Color)))
}
