package chart

import (
	"math"

	"github.com/gogpu/gg"
	"github.com/vdobler/chart/shade"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg/draw"
)

// TextStyle places and colours text.
type TextStyle struct {
	Color  gg.RGBA
	XAlign draw.XAlignment
	YAlign draw.YAlignment
}

// Stroke describes a line. A Width of 0 draws nothing.
type Stroke struct {
	Color gg.RGBA
	Width float64
	Style shade.LineStyle
}

// AxisStyle controls how an axis is drawn.
type AxisStyle struct {
	Title TextStyle
	Line  Stroke

	// Ticks is the number of intervals between major ticks that Linear
	// and Time axes aim at. Values < 1 use the default of the kind.
	Ticks int

	MajorTick struct {
		Stroke
		Length float64
		Label  TextStyle
	}
	MinorTick struct {
		Stroke
		Length float64
	}
}

// A Style controls how a Plot is drawn. All lengths are in pixels.
type Style struct {
	Background gg.RGBA

	Title TextStyle
	Pad   float64 // around the plot and between its parts

	Panel struct {
		Background gg.RGBA
	}

	Grid struct {
		Major Stroke
		Minor Stroke
	}

	XAxis AxisStyle
	YAxis AxisStyle

	Legend struct {
		Label      TextStyle
		Background gg.RGBA
		Swatch     float64 // size of the colour sample
		Pad        float64
	}

	// Palette is cycled for series without an explicit colour.
	Palette []gg.RGBA

	LineWidth  float64
	MarkerSize float64
}

// DefaultStyle returns a Style which mimics the appearance of ggplot2.
// The baseFontSize scales paddings and tick lengths.
func DefaultStyle(baseFontSize float64) Style {
	scale := func(x, f float64) float64 {
		return math.Round(f * x)
	}
	black := gg.Black
	grey := gg.Hex("#111111")

	s := Style{}
	s.Background = gg.White
	s.Pad = scale(baseFontSize, 0.5)

	s.Title.Color = black
	s.Title.XAlign = draw.XCenter
	s.Title.YAlign = draw.YTop

	s.Panel.Background = gg.Hex("#eeeeee")

	s.Grid.Major = Stroke{Color: gg.White, Width: 1}
	s.Grid.Minor = Stroke{Color: gg.White, Width: 0.5}

	for _, a := range []*AxisStyle{&s.XAxis, &s.YAxis} {
		a.Title.Color = black
		a.MajorTick.Stroke = Stroke{Color: grey, Width: 1}
		a.MajorTick.Length = scale(baseFontSize, 5.0/12)
		a.MajorTick.Label.Color = black
		a.MinorTick.Stroke = Stroke{Color: grey, Width: 1}
		a.MinorTick.Length = scale(baseFontSize, 2.5/12)
		a.Ticks = 5
	}
	s.XAxis.Title.XAlign = draw.XCenter
	s.XAxis.Title.YAlign = draw.YBottom
	s.XAxis.MajorTick.Label.XAlign = draw.XCenter
	s.XAxis.MajorTick.Label.YAlign = draw.YTop

	s.YAxis.Title.XAlign = draw.XLeft
	s.YAxis.Title.YAlign = draw.YTop
	s.YAxis.MajorTick.Label.XAlign = draw.XRight
	s.YAxis.MajorTick.Label.YAlign = draw.YCenter

	s.Legend.Label.Color = black
	s.Legend.Label.XAlign = draw.XLeft
	s.Legend.Label.YAlign = draw.YCenter
	s.Legend.Background = gg.RGBA2(1, 1, 1, 0.8)
	s.Legend.Swatch = scale(baseFontSize, 1)
	s.Legend.Pad = scale(baseFontSize, 1.0/3)

	for i := range plotutil.DefaultColors {
		s.Palette = append(s.Palette, gg.FromColor(plotutil.Color(i)))
	}

	s.LineWidth = scale(baseFontSize, 1.0/6)
	s.MarkerSize = scale(baseFontSize, 2.0/3)

	return s
}

// PaletteColor returns the i-th palette colour, cycling.
func (s *Style) PaletteColor(i int) gg.RGBA {
	if len(s.Palette) == 0 {
		return gg.Black
	}
	return s.Palette[i%len(s.Palette)]
}
