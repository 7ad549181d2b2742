package geom

import (
	"github.com/gogpu/gg"
	"github.com/vdobler/chart"
	"github.com/vdobler/chart/data"
	"github.com/vdobler/chart/shade"
)

// ----------------------------------------------------------------------------
// Histogram

// Histogram bins Values into equal width bins and draws a bar per bin.
type Histogram struct {
	Values []float64
	Bins   int // 0 chooses the number of bins by Sturges' rule
	Label  string
	Color  gg.RGBA
}

func (h Histogram) histogram() *data.Histogram {
	n := h.Bins
	if n <= 0 {
		n = sturges(len(h.Values))
	}
	return data.NewHistogram(h.Values, n)
}

// DataRange implements gonum's plot.DataRanger.
func (h Histogram) DataRange() (xmin, xmax, ymin, ymax float64) {
	return h.histogram().Rects().DataRange()
}

// Draw implements chart.Geom.
func (h Histogram) Draw(p *chart.Panel) {
	col := p.Color(h.Color)
	hist := h.histogram()
	if hist.Dropped > 0 {
		chart.Logger().Debug("histogram dropped values", "label", h.Label, "n", hist.Dropped)
	}
	fillRects(p, hist.Rects(), shade.VerticalGradient(col))
	p.AddLegend(chart.LegendEntry{Label: h.Label, Color: col, Swatch: true})
}

// ----------------------------------------------------------------------------
// Boxplot

// Boxplot draws a box plot of each sample at the matching X: a box from
// the first to the third quartile, a line at the median, whiskers and
// the outliers as points.
type Boxplot struct {
	X       []float64
	Samples [][]float64
	Label   string
	Color   gg.RGBA

	GroupGap float64 // between boxes as fraction of the smallest x distance
}

// Validate implements chart.Validator.
func (b Boxplot) Validate() error {
	if len(b.Samples) != len(b.X) {
		return &chart.SeriesError{Label: b.Label, Field: "samples", Err: chart.ErrLengthMismatch}
	}
	return nil
}

func (b Boxplot) groups() *BarGroups {
	return slots(b.X, b.GroupGap)
}

// slots returns BarGroups placing one member at each x.
func slots(xs []float64, gap float64) *BarGroups {
	g := NewBarGroups(false, gap, 0)
	for i, x := range xs {
		g.Record(x, i)
	}
	return g
}

// DataValues implements chart.DataValuer.
func (b Boxplot) DataValues() (xs, ys [][]float64) {
	if len(b.X) == 0 {
		return nil, nil
	}
	xmin, xmax := b.groups().XRange()
	var lo, hi []float64
	for _, s := range b.Samples {
		if st, ok := data.NewBoxStats(s); ok {
			lo, hi = append(lo, st.Min), append(hi, st.Max)
		}
	}
	return [][]float64{{xmin, xmax}}, [][]float64{lo, hi}
}

// Draw implements chart.Geom.
func (b Boxplot) Draw(p *chart.Panel) {
	col := p.Color(b.Color)
	fill := shade.Flat(shade.Lighten(col, 0.6))
	width := p.LineWidth(0)
	radius := p.MarkerSize(0) / 2
	g := b.groups()

	for i, x := range b.X {
		st, ok := data.NewBoxStats(b.Samples[i])
		if !ok {
			continue
		}
		center, hw := g.Width(x, i)
		x0, x1 := center-hw, center+hw

		// The box.
		fillRects(p, data.XYUVs{{X: x0, Y: st.Q1, U: x1, V: st.Q3}}, fill)
		if r, ok := mapRect(p, data.XYUV{X: x0, Y: st.Q1, U: x1, V: st.Q3}); ok {
			corners := []gg.Point{r.Min, gg.Pt(r.Max.X, r.Min.Y), r.Max, gg.Pt(r.Min.X, r.Max.Y), r.Min}
			for _, seg := range shade.Polyline(corners, width, shade.Solid, col) {
				p.Fill(seg, true)
			}
		}

		// The lines.
		dataLine(p, x0, st.Median, x1, st.Median, 2*width, col)
		dataLine(p, center, st.LowerWhisker, center, st.Q1, width, col)
		dataLine(p, center, st.Q3, center, st.UpperWhisker, width, col)
		dataLine(p, center-hw/2, st.LowerWhisker, center+hw/2, st.LowerWhisker, width, col)
		dataLine(p, center-hw/2, st.UpperWhisker, center+hw/2, st.UpperWhisker, width, col)

		// The outliers.
		for _, o := range st.Outliers {
			if pt, ok := p.MapXY(center, o); ok {
				p.Fill(shade.NewMarker(pt, radius, shade.Circle, col))
			}
		}
	}
	p.AddLegend(chart.LegendEntry{Label: b.Label, Color: col, Swatch: true})
}

// ----------------------------------------------------------------------------
// Violin

// Violin draws the kernel density estimate of each sample at the matching
// X as a symmetric silhouette, with the interquartile range and the
// median marked inside.
type Violin struct {
	X       []float64
	Samples [][]float64
	Points  int // grid points of the density estimate; 0 uses data.DefaultKDEPoints
	Label   string
	Color   gg.RGBA

	GroupGap float64 // between violins as fraction of the smallest x distance
}

// Validate implements chart.Validator.
func (v Violin) Validate() error {
	if len(v.Samples) != len(v.X) {
		return &chart.SeriesError{Label: v.Label, Field: "samples", Err: chart.ErrLengthMismatch}
	}
	return nil
}

// DataValues implements chart.DataValuer.
func (v Violin) DataValues() (xs, ys [][]float64) {
	if len(v.X) == 0 {
		return nil, nil
	}
	xmin, xmax := slots(v.X, v.GroupGap).XRange()
	ys = make([][]float64, 0, len(v.Samples))
	for _, s := range v.Samples {
		ys = append(ys, data.NewKDE(s, v.Points).X)
	}
	return [][]float64{{xmin, xmax}}, ys
}

// Draw implements chart.Geom.
func (v Violin) Draw(p *chart.Panel) {
	col := p.Color(v.Color)
	g := shade.Flat(col)
	dark := shade.Darken(col, 0.6)
	width := p.LineWidth(0)
	slot := slots(v.X, v.GroupGap)

	for i, x := range v.X {
		kde := data.NewKDE(v.Samples[i], v.Points)
		dmax := kde.Max()
		if kde.Len() < 2 || dmax <= 0 {
			continue
		}
		center, hw := slot.Width(x, i)

		var l0, r0 gg.Point
		prev := false
		for j := range kde.X {
			w := hw * kde.Density[j] / dmax
			l1, okl := p.MapXY(center-w, kde.X[j])
			r1, okr := p.MapXY(center+w, kde.X[j])
			if !okl || !okr {
				prev = false
				continue
			}
			if prev {
				fillQuad(p, l0, r0, r1, l1, g)
			}
			l0, r0, prev = l1, r1, true
		}

		if st, ok := data.NewBoxStats(v.Samples[i]); ok {
			dataLine(p, center, st.Q1, center, st.Q3, 3*width, dark)
			if pt, ok := p.MapXY(center, st.Median); ok {
				p.Fill(shade.NewMarker(pt, 1.5*width, shade.Circle, gg.White))
			}
		}
	}
	p.AddLegend(chart.LegendEntry{Label: v.Label, Color: col, Swatch: true})
}
