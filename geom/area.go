package geom

import (
	"github.com/gogpu/gg"
	"github.com/vdobler/chart"
	"github.com/vdobler/chart/data"
	"github.com/vdobler/chart/shade"
)

// Area fills the region between the line (X, Y) and either the line
// (X, Y0) or the constant Base. Each strip between two neighbouring x
// values is drawn as triangles; strips where the two lines cross are
// split at the crossing.
type Area struct {
	X, Y  []float64
	Y0    []float64 // lower edge; nil means Base
	Base  float64
	Label string
	Color gg.RGBA

	// Outline draws the line (X, Y) on top of the area.
	Outline bool
	Width   float64
}

// StackedAreas returns one Area per row of values, each stacked on the
// ones before.
func StackedAreas(x []float64, values [][]float64, labels []string) []chart.Geom {
	st := data.NewStack(values)
	geoms := make([]chart.Geom, st.Len())
	for k := range geoms {
		geoms[k] = Area{X: x, Y: st.Top[k], Y0: st.Base[k], Label: label(labels, k)}
	}
	return geoms
}

// Validate implements chart.Validator.
func (a Area) Validate() error {
	switch {
	case len(a.Y) != len(a.X):
		return &chart.SeriesError{Label: a.Label, Field: "y", Err: chart.ErrLengthMismatch}
	case a.Y0 != nil && len(a.Y0) != len(a.X):
		return &chart.SeriesError{Label: a.Label, Field: "y0", Err: chart.ErrLengthMismatch}
	}
	return nil
}

// DataValues implements chart.DataValuer.
func (a Area) DataValues() (xs, ys [][]float64) {
	lower := a.Y0
	if lower == nil {
		lower = []float64{a.Base}
	}
	return [][]float64{a.X}, [][]float64{a.Y, lower}
}

func (a Area) lower(i int) float64 {
	if a.Y0 == nil {
		return a.Base
	}
	return a.Y0[i]
}

// Draw implements chart.Geom.
func (a Area) Draw(p *chart.Panel) {
	col := p.Color(a.Color)
	g := shade.Flat(col)

	var top []gg.Point
	for i := 1; i < len(a.X); i++ {
		t0, ok0 := p.MapXY(a.X[i-1], a.Y[i-1])
		t1, ok1 := p.MapXY(a.X[i], a.Y[i])
		b0, ok2 := p.MapXY(a.X[i-1], a.lower(i-1))
		b1, ok3 := p.MapXY(a.X[i], a.lower(i))
		if !ok0 || !ok1 || !ok2 || !ok3 {
			continue
		}
		d0, d1 := b0.Y-t0.Y, b1.Y-t1.Y
		switch {
		case d0 == 0 && d1 == 0:
		case d0*d1 < 0:
			m := t0.Lerp(t1, d0/(d0-d1))
			triangle(p, t0, m, b0, g)
			triangle(p, m, t1, b1, g)
		default:
			fillQuad(p, t0, t1, b1, b0, g)
		}
	}

	if a.Outline {
		for i := range a.X {
			if pt, ok := p.MapXY(a.X[i], a.Y[i]); ok {
				top = append(top, pt)
			}
		}
		for _, seg := range shade.Polyline(top, p.LineWidth(a.Width), shade.Solid, shade.Darken(col, 0.3)) {
			p.Fill(seg, true)
		}
	}
	p.AddLegend(chart.LegendEntry{Label: a.Label, Color: col, Swatch: true})
}
