package chart

import (
	"github.com/gogpu/gg"
	"github.com/vdobler/chart/shade"
)

// PlotArea is the pixel rectangle data is mapped into.
type PlotArea struct {
	Left, Top, Right, Bottom float64
}

// Valid reports whether a has a positive width and height.
func (a PlotArea) Valid() bool {
	return a.Right > a.Left && a.Bottom > a.Top
}

func (a PlotArea) Width() float64  { return a.Right - a.Left }
func (a PlotArea) Height() float64 { return a.Bottom - a.Top }

// Rect returns a as a rectangle.
func (a PlotArea) Rect() shade.Rect {
	return shade.R(a.Left, a.Top, a.Right, a.Bottom)
}

// ----------------------------------------------------------------------------
// Mapper

// A Mapper maps data coordinates to pixels inside Area and back.
type Mapper struct {
	Area PlotArea
	X, Y *Axis
}

// NewMapper returns a mapper for the two axes.
func NewMapper(area PlotArea, x, y *Axis) *Mapper {
	return &Mapper{Area: area, X: x, Y: y}
}

func (m *Mapper) xPixels() Interval { return Interval{m.Area.Left, m.Area.Right} }

// yPixels is upside down: the axis minimum is at the bottom.
func (m *Mapper) yPixels() Interval { return Interval{m.Area.Bottom, m.Area.Top} }

// MapX maps the data value x to its pixel column. The result is false if
// x cannot be placed on the x axis.
func (m *Mapper) MapX(x float64) (float64, bool) {
	px := m.X.Transformation().Trans(m.X.Interval, m.xPixels(), x)
	return px, finite(px)
}

// MapY maps the data value y to its pixel row.
func (m *Mapper) MapY(y float64) (float64, bool) {
	py := m.Y.Transformation().Trans(m.Y.Interval, m.yPixels(), y)
	return py, finite(py)
}

// ToPixel maps the data point (x, y) to pixel coordinates. ok is false if
// the point is unplottable, e.g. y <= 0 on a Log axis or NaN.
func (m *Mapper) ToPixel(x, y float64) (px, py float64, ok bool) {
	px, okx := m.MapX(x)
	py, oky := m.MapY(y)
	return px, py, okx && oky
}

// Point is ToPixel returning a gg.Point.
func (m *Mapper) Point(x, y float64) (gg.Point, bool) {
	px, py, ok := m.ToPixel(x, y)
	return gg.Pt(px, py), ok
}

// ToData maps the pixel (px, py) back to data coordinates.
func (m *Mapper) ToData(px, py float64) (x, y float64) {
	x = m.X.Transformation().Inverse(m.X.Interval, m.xPixels(), px)
	y = m.Y.Transformation().Inverse(m.Y.Interval, m.yPixels(), py)
	return x, y
}
