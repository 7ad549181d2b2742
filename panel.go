package chart

import (
	"github.com/gogpu/gg"
	"github.com/vdobler/chart/canvas"
	"github.com/vdobler/chart/shade"
)

// A Geom draws some data onto a Panel.
type Geom interface {
	Draw(p *Panel)
}

// DataValuer is implemented by geoms which know the values they place on
// the x and y axis. Plot uses it to fit its axes. Geoms implementing only
// plot.DataRanger contribute their minimum and maximum.
type DataValuer interface {
	DataValues() (xs, ys [][]float64)
}

// Validator is implemented by geoms which can be invalid. Plot.Draw
// refuses to draw if one of its geoms fails validation.
type Validator interface {
	Validate() error
}

// LegendEntry describes one line of a plot's legend.
type LegendEntry struct {
	Label  string
	Color  gg.RGBA
	Line   shade.LineStyle
	Marker shade.MarkerStyle // drawn on top of the line

	NoLine bool // only the marker
	Swatch bool // a filled square instead of line and marker
}

// ----------------------------------------------------------------------------
// Panel

// A Panel is the data area of a plot as seen by a Geom. Shapes filled
// on its Canvas are clipped to the plot area.
type Panel struct {
	*Mapper
	Canvas canvas.Canvas
	Style  *Style

	legend  []LegendEntry
	palette int
}

// NewPanel returns a panel drawing on c with coordinates mapped by m.
func NewPanel(c canvas.Canvas, m *Mapper, style *Style) *Panel {
	return &Panel{
		Mapper: m,
		Canvas: canvas.Clip(c, m.Area.Rect()),
		Style:  style,
	}
}

// MapXY maps the data coordinate (x,y) to a canvas point. The result is
// false for unplottable points.
func (p *Panel) MapXY(x, y float64) (gg.Point, bool) {
	return p.Point(x, y)
}

// Fill fills s on the panel's canvas if ok. Geoms pass the results of the
// shade constructors directly:
//
//	p.Fill(shade.NewSegment(a, b, w, style, 0, col))
func (p *Panel) Fill(s shade.Shader, ok bool) bool {
	if !ok {
		Logger().Debug("degenerate shape skipped", "shape", shapeName(s))
		return false
	}
	p.Canvas.Fill(s)
	return true
}

// Color returns c if it is set and the next palette colour otherwise.
func (p *Panel) Color(c gg.RGBA) gg.RGBA {
	if c.A > 0 {
		return c
	}
	c = p.Style.PaletteColor(p.palette)
	p.palette++
	return c
}

// AddLegend adds e to the legend of the plot. Entries without a label
// are ignored.
func (p *Panel) AddLegend(e LegendEntry) {
	if e.Label == "" {
		return
	}
	p.legend = append(p.legend, e)
}

// Legend returns the entries added so far.
func (p *Panel) Legend() []LegendEntry {
	return p.legend
}

// LineWidth returns w or the style's default line width if w is 0.
func (p *Panel) LineWidth(w float64) float64 {
	if w > 0 {
		return w
	}
	return p.Style.LineWidth
}

// MarkerSize returns size or the style's default marker size if size
// is 0.
func (p *Panel) MarkerSize(size float64) float64 {
	if size > 0 {
		return size
	}
	return p.Style.MarkerSize
}

func shapeName(s shade.Shader) string {
	switch s.(type) {
	case shade.Segment:
		return "segment"
	case shade.Marker:
		return "marker"
	case shade.GradientPoint:
		return "point"
	case shade.Fill:
		return "rect"
	case shade.Pie:
		return "pie"
	case shade.Arc:
		return "arc"
	case shade.Triangle:
		return "triangle"
	}
	return "shape"
}
