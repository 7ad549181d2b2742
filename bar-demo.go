//go:build ignore

package main

import (
	"fmt"
	"log"
	"math/rand"

	"github.com/vdobler/chart"
	"github.com/vdobler/chart/canvas"
	"github.com/vdobler/chart/geom"
)

func main() {
	x := []float64{10, 20, 30, 40, 50}
	values := [][]float64{
		{5, 3, 7, 2, 6},
		{2, 4, 1, 3, 5},
		{0, 4, 0, 2, 1},
	}

	for _, pos := range []geom.Position{geom.Stack, geom.Fill, geom.Dodge} {
		p := chart.NewPlot()
		p.Title = "Bars: " + pos.String()
		p.X.Title = "X-Axis"
		p.Y.Title = "Y-Axis"
		p.Add(geom.Bar{
			X:        x,
			Values:   values,
			Labels:   []string{"A", "B", "C"},
			Position: pos,
			BarGap:   0.05,
		})
		write(p, fmt.Sprintf("testdata/bar-%s.png", pos))
	}

	rng := rand.New(rand.NewSource(1))
	samples := make([][]float64, 3)
	for k := range samples {
		for i := 0; i < 200; i++ {
			samples[k] = append(samples[k], float64(k)+rng.NormFloat64()*(1+float64(k)/2))
		}
	}

	p := chart.NewPlot()
	p.Title = "Distributions"
	p.Add(
		geom.Boxplot{X: []float64{1, 2, 3}, Samples: samples, Label: "box"},
		geom.Violin{X: []float64{5, 6, 7}, Samples: samples, Label: "violin"},
	)
	write(p, "testdata/distributions.png")

	h := chart.NewPlot()
	h.Title = "Histogram"
	h.Add(geom.Histogram{Values: samples[2], Label: "n=200"})
	write(h, "testdata/histogram.png")
}

func write(p *chart.Plot, name string) {
	pm := canvas.NewPixmap(800, 600)
	if err := p.Draw(pm); err != nil {
		log.Fatal(err)
	}
	if err := pm.SavePNG(name); err != nil {
		log.Fatal(err)
	}
}
