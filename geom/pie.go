package geom

import (
	"fmt"
	"math"

	"github.com/gogpu/gg"
	"github.com/vdobler/chart"
	"github.com/vdobler/chart/shade"
	"gonum.org/v1/plot/vg/draw"
)

// Pie draws Values as slices of a circle centred in the plot area,
// clockwise starting at 12 o'clock. It works in pixel space and ignores
// the axes. Non-positive and non-finite values get no slice.
type Pie struct {
	Values []float64
	Labels []string
	Colors []gg.RGBA

	// Hole is the radius of the hole as a fraction of the radius. A
	// positive Hole draws a donut.
	Hole float64

	// Radius is the radius as a fraction of half the smaller side of
	// the plot area; 0 means 0.9.
	Radius float64

	// Rotate turns the first slice clockwise by this many radians.
	Rotate float64

	// Percent writes the share of each slice onto it.
	Percent bool
}

// Validate implements chart.Validator.
func (pie Pie) Validate() error {
	if !(pie.Hole >= 0 && pie.Hole < 1) {
		return fmt.Errorf("geom: pie hole %g outside [0,1)", pie.Hole)
	}
	return nil
}

// Draw implements chart.Geom.
func (pie Pie) Draw(p *chart.Panel) {
	total := 0.0
	for _, v := range pie.Values {
		if v > 0 && !math.IsInf(v, 1) {
			total += v
		}
	}
	if total == 0 {
		chart.Logger().Debug("empty pie")
		return
	}

	a := p.Area
	center := gg.Pt((a.Left+a.Right)/2, (a.Top+a.Bottom)/2)
	rf := pie.Radius
	if rf <= 0 {
		rf = 0.9
	}
	radius := rf * math.Min(a.Width(), a.Height()) / 2

	cum := 0.0
	for k, v := range pie.Values {
		if !(v > 0) || math.IsInf(v, 1) {
			continue
		}
		col := p.Color(colorOf(pie.Colors, k))
		share := v / total
		// Screen angles run counter-clockwise from 3 o'clock.
		end := math.Pi/2 - pie.Rotate - 2*math.Pi*cum
		start := end - 2*math.Pi*share
		if pie.Hole > 0 {
			p.Fill(shade.NewArc(center, radius, pie.Hole, start, end, shade.RadialGradient(col), shade.RadialArc))
		} else {
			p.Fill(shade.NewPie(center, radius, start, end, shade.RadialGradient(col)))
		}
		if pie.Percent {
			mid := (start + end) / 2
			r := radius * (1 + pie.Hole) / 2
			if pie.Hole == 0 {
				r = radius * 0.65
			}
			x, y := center.X+r*math.Cos(mid), center.Y-r*math.Sin(mid)
			p.Canvas.FillText(fmt.Sprintf("%.0f%%", 100*share), x, y, draw.XCenter, draw.YCenter, gg.White)
		}
		p.AddLegend(chart.LegendEntry{Label: label(pie.Labels, k), Color: col, Swatch: true})
		cum += share
	}
}
