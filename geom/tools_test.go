package geom

import (
	"math"
	"testing"

	"github.com/gogpu/gg"
	"github.com/vdobler/chart"
	"github.com/vdobler/chart/canvas"
	"github.com/vdobler/chart/shade"
)

// newPanel returns a panel on a 100x100 recorder showing [x0,x1]x[y0,y1].
func newPanel(x0, x1, y0, y1 float64) (*chart.Panel, *canvas.Recorder) {
	x, y := chart.NewAxis(chart.Linear), chart.NewAxis(chart.Linear)
	x.SetLimits(x0, x1)
	y.SetLimits(y0, y1)
	m := chart.NewMapper(chart.PlotArea{Right: 100, Bottom: 100}, x, y)
	style := chart.DefaultStyle(12)
	r := canvas.NewRecorder(100, 100)
	return chart.NewPanel(r, m, &style), r
}

// shapes returns the recorded shapes of type T.
func shapes[T shade.Shader](r *canvas.Recorder) []T {
	var out []T
	for _, s := range r.Shapes {
		if t, ok := canvas.Unwrap(s).(T); ok {
			out = append(out, t)
		}
	}
	return out
}

func TestPointColor(t *testing.T) {
	red := gg.RGB(1, 0, 0)
	tests := []struct {
		alpha Aesthetic
		want  float64
		ok    bool
	}{
		{nil, 1, true},
		{func(i int) float64 { return 0.25 * float64(i) }, 0.5, true},
		{func(int) float64 { return 1.5 }, 0, false},
		{func(int) float64 { return math.NaN() }, 0, false},
	}
	for i, tc := range tests {
		c, ok := pointColor(red, 2, tc.alpha)
		if ok != tc.ok || (ok && c.A != tc.want) {
			t.Errorf("%d: pointColor = %v, %t, want alpha %g, %t", i, c, ok, tc.want, tc.ok)
		}
	}
}

func TestSturges(t *testing.T) {
	for _, tc := range []struct{ n, want int }{{0, 1}, {1, 1}, {2, 2}, {8, 4}, {100, 8}, {1000, 11}} {
		if got := sturges(tc.n); got != tc.want {
			t.Errorf("sturges(%d) = %d, want %d", tc.n, got, tc.want)
		}
	}
}

func TestBarGroups(t *testing.T) {
	g := NewBarGroups(true, 0, 0)
	for _, x := range []float64{1, 2, 4} {
		g.Record(x, 0)
		g.Record(x, 1)
	}
	g.Record(4, 2)

	if g.MinDelta() != 1 || g.MaxGroupSize() != 3 {
		t.Errorf("MinDelta %g, MaxGroupSize %d", g.MinDelta(), g.MaxGroupSize())
	}
	// Slots are 0.8/3 wide; the group of two at x=1 is centred.
	w := 0.8 / 3
	for _, tc := range []struct {
		x       float64
		i       int
		center  float64
		halfwid float64
	}{
		{1, 0, 1 - w/2, w / 2},
		{1, 1, 1 + w/2, w / 2},
		{4, 0, 4 - w, w / 2},
		{4, 2, 4 + w, w / 2},
		{2, 7, 2, 0},
	} {
		c, hw := g.Width(tc.x, tc.i)
		if math.Abs(c-tc.center) > 1e-12 || math.Abs(hw-tc.halfwid) > 1e-12 {
			t.Errorf("Width(%g, %d) = %g, %g, want %g, %g", tc.x, tc.i, c, hw, tc.center, tc.halfwid)
		}
	}
	if lo, hi := g.XRange(); math.Abs(lo-(1-w)) > 1e-12 || math.Abs(hi-(4+1.5*w)) > 1e-12 {
		t.Errorf("XRange = %g, %g", lo, hi)
	}

	single := NewBarGroups(false, 0.5, 0)
	single.Record(10, 0)
	if c, hw := single.Width(10, 0); c != 10 || hw != 0.25 {
		t.Errorf("single bar: %g, %g", c, hw)
	}
	if lo, hi := NewBarGroups(false, 0, 0).XRange(); !math.IsNaN(lo) || !math.IsNaN(hi) {
		t.Errorf("empty XRange = %g, %g", lo, hi)
	}
}
