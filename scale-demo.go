//go:build ignore

package main

import (
	"fmt"
	"log"
	"log/slog"
	"math"
	"math/rand"
	"os"
	"time"

	"github.com/vdobler/chart"
	"github.com/vdobler/chart/canvas"
	"github.com/vdobler/chart/geom"
	"github.com/vdobler/chart/shade"
)

var xs, ys []float64

func init() {
	x := 10.0
	for i := 0; i < 50; i++ {
		xs = append(xs, x+rand.NormFloat64()+x/10)
		ys = append(ys, float64(i)+2*rand.NormFloat64())
		x *= 1.2
	}
}

func main() {
	chart.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})))

	// Log x axis with bubbles growing along the series.
	p := chart.NewPlot()
	p.Title = "Scaling"
	p.X = chart.NewAxis(chart.Log)
	p.X.Title = "log10"
	s, err := chart.NewSeries("growth", xs, ys).WithMarker(shade.Circle, 0).Build()
	if err != nil {
		log.Fatal(err)
	}
	sc := geom.NewScatter(s)
	sc.Size = func(i int) float64 { return 2 + float64(i)/4 }
	p.Add(sc)
	write(p, "testdata/scale-00.png")

	// Zoom into the middle and pan a bit to the right.
	v := p.View()
	v.Zoom(2, 300, 240)
	v.Pan(50, 0)
	write(p, "testdata/scale-01.png")

	// SymLog y axis through zero.
	q := chart.NewPlot()
	q.Title = "SymLog"
	q.Y = chart.NewAxis(chart.SymLog)
	var sx, sy []float64
	for i := -50; i <= 50; i++ {
		sx = append(sx, float64(i))
		sy = append(sy, math.Pow(float64(i), 3))
	}
	cube, err := chart.NewSeries("x³", sx, sy).Build()
	if err != nil {
		log.Fatal(err)
	}
	q.Add(geom.Line{Series: cube})
	q.Annotate(chart.HSpan{Y1: -10, Y2: 10, Color: shade.Lighten(q.Style.PaletteColor(1), 0.7)})
	write(q, "testdata/scale-02.png")

	// Time axis over three days, drawn as a step line.
	t := chart.NewPlot()
	t.Title = "Time"
	t.X = chart.NewAxis(chart.Time)
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC).Unix()
	var tx, ty []float64
	for h := 0; h < 72; h += 3 {
		tx = append(tx, float64(start+int64(h)*3600))
		ty = append(ty, math.Sin(float64(h)/12*math.Pi))
	}
	wave, err := chart.NewSeries("wave", tx, ty).WithStep(chart.StepPost).Build()
	if err != nil {
		log.Fatal(err)
	}
	t.Add(geom.Line{Series: wave})
	write(t, "testdata/scale-03.png")

	fmt.Println(p.X, p.Y)
}

func write(p *chart.Plot, name string) {
	pm := canvas.NewPixmap(600, 480)
	if err := p.Draw(pm); err != nil {
		log.Fatal(err)
	}
	if err := pm.SavePNG(name); err != nil {
		log.Fatal(err)
	}
}
