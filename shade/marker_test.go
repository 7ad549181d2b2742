package shade

import (
	"math"
	"testing"

	"github.com/gogpu/gg"
)

func TestMarkerCircleContainment(t *testing.T) {
	const r = 10.0
	m, ok := NewMarker(gg.Pt(50, 50), r, Circle, gg.RGB(0, 0, 1))
	if !ok {
		t.Fatal("circle marker rejected")
	}
	if got := at(m, 50, 50); got.A != 1 {
		t.Errorf("alpha at centre = %f, want 1", got.A)
	}
	// Zero coverage beyond 0.45·size plus the half pixel smoothing band.
	edge := circleRadius*2*r + aa
	for _, angle := range []float64{0, 0.7, 2, 4} {
		x := 50 + (edge+0.01)*math.Cos(angle)
		y := 50 + (edge+0.01)*math.Sin(angle)
		if got := at(m, x, y); got.A != 0 {
			t.Errorf("alpha at distance %f = %f, want 0", edge+0.01, got.A)
		}
	}
}

func TestMarkerStarTipBand(t *testing.T) {
	m, ok := NewMarker(gg.Pt(50, 50), 10, Star, gg.Black)
	if !ok {
		t.Fatal("star marker rejected")
	}
	if want := R(40, 40, 60, 60).Inset(aa); m.Bounds() != want {
		t.Errorf("bounds = %v, want %v", m.Bounds(), want)
	}
	// The top spike ends at y=40; its smoothing band reaches beyond.
	tip := gg.Pt(50, 39.8)
	if !m.Bounds().Contains(tip) {
		t.Errorf("bounds %v miss %v", m.Bounds(), tip)
	}
	if got := at(m, tip.X, tip.Y); !(got.A > 0 && got.A < 0.5) {
		t.Errorf("alpha just outside the tip = %f", got.A)
	}
	if got := at(m, 50, 50); got.A != 1 {
		t.Errorf("alpha at centre = %f, want 1", got.A)
	}
}

func TestMarkerNone(t *testing.T) {
	if _, ok := NewMarker(gg.Pt(1, 1), 5, NoMarker, gg.Black); ok {
		t.Errorf("NoMarker produced a shader")
	}
	if _, ok := NewMarker(gg.Pt(1, 1), 0, Circle, gg.Black); ok {
		t.Errorf("zero radius produced a shader")
	}
}

func TestMarkerDistance(t *testing.T) {
	corner := gg.Pt(0.5, 0.5)
	for _, style := range Markers {
		t.Run(style.String(), func(t *testing.T) {
			if d := MarkerDistance(style, gg.Pt(0, 0)); d >= 0 {
				t.Errorf("origin not inside: distance %f", d)
			}
			if d := MarkerDistance(style, corner); d <= 0 {
				t.Errorf("corner inside: distance %f", d)
			}
		})
	}
}

var markerShapeTests = []struct {
	style  MarkerStyle
	p      gg.Point
	inside bool
}{
	{Square, gg.Pt(0.38, -0.38), true},
	{Circle, gg.Pt(0.38, -0.38), false},
	{TriangleUp, gg.Pt(0, -0.38), true},
	{TriangleDown, gg.Pt(0, -0.38), false},
	{TriangleDown, gg.Pt(0, 0.38), true},
	{Diamond, gg.Pt(0.3, 0), true},
	{Diamond, gg.Pt(0.25, 0.25), false},
	{Cross, gg.Pt(0.2, 0.2), true},
	{Cross, gg.Pt(0.2, 0), false},
	{Plus, gg.Pt(0.2, 0), true},
	{Plus, gg.Pt(0.2, 0.2), false},
	{Star, gg.Pt(0, -0.45), true},  // top spike
	{Star, gg.Pt(0, 0.3), false},   // notch straight below
	{Star, gg.Pt(0.1, 0.1), true},  // body
	{Circle, gg.Pt(0.44, 0), true}, // just inside 0.45
}

func TestMarkerShapes(t *testing.T) {
	for _, tc := range markerShapeTests {
		d := MarkerDistance(tc.style, tc.p)
		if (d < 0) != tc.inside {
			t.Errorf("%s at %v: distance %f, inside = %t", tc.style, tc.p, d, tc.inside)
		}
	}
}

func TestGradientPoint(t *testing.T) {
	g := Gradient{From: gg.RGB(1, 1, 1), To: gg.RGB(0, 0, 0)}
	p, ok := NewGradientPoint(gg.Pt(20, 20), 10, g)
	if !ok {
		t.Fatal("gradient point rejected")
	}
	if c := at(p, 20, 20); c.A != 1 || c.R != 1 {
		t.Errorf("centre = %v, want opaque white", c)
	}
	if c := at(p, 28, 20); !(c.R > 0.1 && c.R < 0.3) || c.A != 1 {
		t.Errorf("near rim = %v, want dark grey", c)
	}
	if c := at(p, 31, 20); c.A != 0 {
		t.Errorf("outside = %v, want transparent", c)
	}
}
