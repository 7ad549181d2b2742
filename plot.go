package chart

import (
	"fmt"
	"math"

	"github.com/gogpu/gg"
	"github.com/vdobler/chart/canvas"
	"github.com/vdobler/chart/shade"
	"gonum.org/v1/plot"
)

// ----------------------------------------------------------------------------
// Plot

// Plot describes a single x-y plot.
type Plot struct {
	Title  string
	X, Y   *Axis
	Style  Style
	Geoms  []Geom
	Annots []Geom // drawn above the geoms and ignored when fitting

	// NoLegend suppresses the legend.
	NoLegend bool

	mapper *Mapper
	view   *View
}

// NewPlot returns an empty plot with two linear autoscaling axes and the
// default style.
func NewPlot() *Plot {
	return &Plot{
		X:     NewAxis(Linear),
		Y:     NewAxis(Linear),
		Style: DefaultStyle(12),
	}
}

// Add adds geoms to p.
func (p *Plot) Add(g ...Geom) {
	p.Geoms = append(p.Geoms, g...)
}

// Annotate adds annotations like VLine or HSpan to p.
func (p *Plot) Annotate(a ...Geom) {
	p.Annots = append(p.Annots, a...)
}

// Mapper returns the mapper of p. Its Area is the one of the last Draw.
func (p *Plot) Mapper() *Mapper {
	if p.mapper == nil {
		p.mapper = &Mapper{}
	}
	p.mapper.X, p.mapper.Y = p.X, p.Y
	return p.mapper
}

// View returns the pan and zoom state of p. It is created on first use
// and remembers the axis limits present at that time.
func (p *Plot) View() *View {
	m := p.Mapper()
	if p.view == nil || p.view.Mapper != m {
		p.view = NewView(m)
	}
	return p.view
}

// Validate checks all geoms of p which can be checked.
func (p *Plot) Validate() error {
	if p.X == nil || p.Y == nil {
		return ErrNoAxis
	}
	for i, g := range p.Geoms {
		if v, ok := g.(Validator); ok {
			if err := v.Validate(); err != nil {
				return fmt.Errorf("geom %d: %w", i, err)
			}
		}
	}
	return nil
}

// learnDataRange fits both axes to the data of all geoms.
func (p *Plot) learnDataRange() {
	var xs, ys [][]float64
	for _, g := range p.Geoms {
		switch g := g.(type) {
		case DataValuer:
			gx, gy := g.DataValues()
			xs, ys = append(xs, gx...), append(ys, gy...)
		case plot.DataRanger:
			xmin, xmax, ymin, ymax := g.DataRange()
			xs, ys = append(xs, []float64{xmin, xmax}), append(ys, []float64{ymin, ymax})
		}
	}
	p.X.Fit(xs...)
	p.Y.Fit(ys...)
}

// Draw validates p, fits its axes and draws everything onto c. Nothing is
// drawn if validation fails.
func (p *Plot) Draw(c canvas.Canvas) error {
	if err := p.Validate(); err != nil {
		return fmt.Errorf("chart: %w", err)
	}
	style := &p.Style
	p.learnDataRange()

	if style.Background.A > 0 {
		c.Fill(fill(canvas.Bounds(c), style.Background))
	}

	xticks, yticks := p.X.TicksN(style.XAxis.Ticks), p.Y.TicksN(style.YAxis.Ticks)
	area := p.layout(c, xticks, yticks)
	m := p.Mapper()
	m.Area = area
	if !area.Valid() {
		Logger().Debug("canvas too small for plot", "area", area)
		return nil
	}
	Logger().Debug("plot layout", "area", area, "x", p.X, "y", p.Y)

	panel := NewPanel(c, m, style)
	if style.Panel.Background.A > 0 {
		c.Fill(fill(area.Rect(), style.Panel.Background))
	}
	p.drawGrid(panel, xticks, yticks)

	for _, g := range p.Geoms {
		g.Draw(panel)
	}
	for _, a := range p.Annots {
		a.Draw(panel)
	}

	p.drawTicks(c, m, xticks, yticks)
	p.drawTitles(c, area)
	if !p.NoLegend {
		p.drawLegend(panel)
	}
	return nil
}

func fill(r shade.Rect, col gg.RGBA) shade.Shader {
	f, _ := shade.NewFill(r, shade.Flat(col))
	return f
}

// layout determines the plot area: the canvas minus room for the title,
// the axis titles, and the tick marks and labels.
func (p *Plot) layout(c canvas.Canvas, xticks, yticks []plot.Tick) PlotArea {
	style := &p.Style
	w, h := c.Size()
	pad := style.Pad
	area := PlotArea{Left: pad, Top: pad, Right: float64(w) - pad, Bottom: float64(h) - pad}

	if p.Title != "" {
		_, th := c.MeasureText(p.Title)
		area.Top += th + pad
	}
	if p.Y.Title != "" {
		_, th := c.MeasureText(p.Y.Title)
		area.Top += th + pad/2
	}
	if p.X.Title != "" {
		_, th := c.MeasureText(p.X.Title)
		area.Bottom -= th + pad/2
	}

	var ylabel, xlabel, xhalf float64
	for _, t := range yticks {
		lw, _ := c.MeasureText(t.Label)
		ylabel = math.Max(ylabel, lw)
	}
	for _, t := range xticks {
		lw, lh := c.MeasureText(t.Label)
		xlabel = math.Max(xlabel, lh)
		xhalf = math.Max(xhalf, lw/2)
	}
	area.Left += ylabel + style.YAxis.MajorTick.Length + pad/2
	area.Bottom -= xlabel + style.XAxis.MajorTick.Length + pad/2
	area.Right -= xhalf
	return area
}

func (p *Plot) drawGrid(panel *Panel, xticks, yticks []plot.Tick) {
	style := &p.Style
	area := panel.Area
	for _, t := range xticks {
		if !p.X.Contains(t.Value) {
			continue
		}
		x, ok := panel.MapX(t.Value)
		sty := style.Grid.Major
		if t.IsMinor() {
			sty = style.Grid.Minor
		}
		if !ok || sty.Width <= 0 {
			continue
		}
		panel.Fill(shade.NewSegment(gg.Pt(x, area.Top), gg.Pt(x, area.Bottom), sty.Width, sty.Style, 0, sty.Color))
	}
	for _, t := range yticks {
		if !p.Y.Contains(t.Value) {
			continue
		}
		y, ok := panel.MapY(t.Value)
		sty := style.Grid.Major
		if t.IsMinor() {
			sty = style.Grid.Minor
		}
		if !ok || sty.Width <= 0 {
			continue
		}
		panel.Fill(shade.NewSegment(gg.Pt(area.Left, y), gg.Pt(area.Right, y), sty.Width, sty.Style, 0, sty.Color))
	}
}

// drawTicks draws tick marks and labels outside the plot area.
func (p *Plot) drawTicks(c canvas.Canvas, m *Mapper, xticks, yticks []plot.Tick) {
	area := m.Area
	stroke := func(a, b gg.Point, s Stroke) {
		if s.Width <= 0 {
			return
		}
		if seg, ok := shade.NewSegment(a, b, s.Width, s.Style, 0, s.Color); ok {
			c.Fill(seg)
		}
	}

	xs := &p.Style.XAxis
	for _, t := range xticks {
		x, ok := m.MapX(t.Value)
		if !ok || !p.X.Contains(t.Value) {
			continue
		}
		if t.IsMinor() {
			stroke(gg.Pt(x, area.Bottom), gg.Pt(x, area.Bottom+xs.MinorTick.Length), xs.MinorTick.Stroke)
			continue
		}
		length := xs.MajorTick.Length
		stroke(gg.Pt(x, area.Bottom), gg.Pt(x, area.Bottom+length), xs.MajorTick.Stroke)
		l := xs.MajorTick.Label
		c.FillText(t.Label, x, area.Bottom+length+p.Style.Pad/4, l.XAlign, l.YAlign, l.Color)
	}

	ys := &p.Style.YAxis
	for _, t := range yticks {
		y, ok := m.MapY(t.Value)
		if !ok || !p.Y.Contains(t.Value) {
			continue
		}
		if t.IsMinor() {
			stroke(gg.Pt(area.Left-ys.MinorTick.Length, y), gg.Pt(area.Left, y), ys.MinorTick.Stroke)
			continue
		}
		length := ys.MajorTick.Length
		stroke(gg.Pt(area.Left-length, y), gg.Pt(area.Left, y), ys.MajorTick.Stroke)
		l := ys.MajorTick.Label
		c.FillText(t.Label, area.Left-length-p.Style.Pad/4, y, l.XAlign, l.YAlign, l.Color)
	}
}

func (p *Plot) drawTitles(c canvas.Canvas, area PlotArea) {
	style := &p.Style
	w, h := c.Size()
	if p.Title != "" {
		t := style.Title
		c.FillText(p.Title, float64(w)/2, style.Pad, t.XAlign, t.YAlign, t.Color)
	}
	if p.X.Title != "" {
		t := style.XAxis.Title
		c.FillText(p.X.Title, (area.Left+area.Right)/2, float64(h)-style.Pad, t.XAlign, t.YAlign, t.Color)
	}
	if p.Y.Title != "" {
		t := style.YAxis.Title
		_, th := c.MeasureText(p.Y.Title)
		c.FillText(p.Y.Title, style.Pad, area.Top-th-style.Pad/2, t.XAlign, t.YAlign, t.Color)
	}
}

// drawLegend draws the legend entries collected by panel in the top right
// corner of the plot area.
func (p *Plot) drawLegend(panel *Panel) {
	entries := panel.Legend()
	if len(entries) == 0 {
		return
	}
	ls := &p.Style.Legend
	c := panel.Canvas
	var labelW, rowH float64
	for _, e := range entries {
		w, h := c.MeasureText(e.Label)
		labelW, rowH = math.Max(labelW, w), math.Max(rowH, h)
	}
	rowH = math.Max(rowH, ls.Swatch) + ls.Pad
	width := ls.Pad + ls.Swatch + ls.Pad + labelW + ls.Pad
	height := ls.Pad + float64(len(entries))*rowH

	area := panel.Area
	box := shade.R(area.Right-ls.Pad-width, area.Top+ls.Pad, area.Right-ls.Pad, area.Top+ls.Pad+height)
	if ls.Background.A > 0 {
		c.Fill(fill(box, ls.Background))
	}

	x := box.Min.X + ls.Pad
	y := box.Min.Y + ls.Pad + (rowH-ls.Pad)/2
	half := ls.Swatch / 2
	for _, e := range entries {
		if e.Swatch {
			panel.Fill(shade.NewFill(shade.R(x, y-half, x+ls.Swatch, y+half), shade.VerticalGradient(e.Color)))
		} else {
			if !e.NoLine {
				panel.Fill(shade.NewSegment(gg.Pt(x, y), gg.Pt(x+ls.Swatch, y), p.Style.LineWidth, e.Line, 0, e.Color))
			}
			if e.Marker != shade.NoMarker {
				panel.Fill(shade.NewMarker(gg.Pt(x+half, y), half*0.8, e.Marker, e.Color))
			}
		}
		l := ls.Label
		c.FillText(e.Label, x+ls.Swatch+ls.Pad, y, l.XAlign, l.YAlign, l.Color)
		y += rowH
	}
}
