//go:build ignore

package main

import (
	"log"

	"github.com/gogpu/gg"
	"github.com/vdobler/chart"
	"github.com/vdobler/chart/canvas"
	"github.com/vdobler/chart/geom"
	"github.com/vdobler/chart/shade"
	"gonum.org/v1/plot/plotter"
)

func main() {
	xy := plotter.XYs{
		{X: 1, Y: 1},
		{X: 2, Y: 2},
		{X: 3, Y: 3},
		{X: 4, Y: 4},
		{X: 5, Y: 3},
		{X: 6, Y: 2},
		{X: 7, Y: 1},
	}

	line, err := chart.NewSeries("line", []float64{1, 2, 3, 4, 5, 6, 7}, []float64{2, 3, 5, 4, 6, 5, 7}).
		WithLineStyle(shade.Dashed).
		WithMarker(shade.Diamond, 10).
		WithYErr([]float64{0.5, 0.5, 0.5, 0.5, 0.5, 0.5, 0.5}, nil).
		Build()
	if err != nil {
		log.Fatal(err)
	}

	p := chart.NewPlot()
	p.Title = "Geom Points"
	p.X.Title = "X-Axis"
	p.Y.Title = "Y-Axis"
	p.Add(
		geom.Scatter{
			XY:     xy,
			Label:  "sized",
			Marker: shade.Circle,
			Size:   func(i int) float64 { return 4 + 2*float64(i) },
		},
		geom.Scatter{
			XY:     xy,
			Label:  "faded",
			Marker: shade.Star,
			Color:  gg.Hex("#2a9d8f"),
			Alpha:  func(i int) float64 { return 1 - float64(i)/10 },
		},
		geom.Line{Series: line},
	)
	p.Annotate(chart.HLine{Y: 4, Color: gg.Black, Style: shade.Dotted})

	pm := canvas.NewPixmap(600, 480)
	if err := p.Draw(pm); err != nil {
		log.Fatal(err)
	}
	if err := pm.SavePNG("testdata/points.png"); err != nil {
		log.Fatal(err)
	}
}
