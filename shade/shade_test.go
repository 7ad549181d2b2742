package shade

import (
	"math"
	"testing"

	"github.com/gogpu/gg"
)

const eps = 1e-9

// at evaluates s at the absolute pixel position (x, y).
func at(s Shader, x, y float64) gg.RGBA {
	return s.Shade(gg.Pt(x, y).Sub(s.Bounds().Min))
}

func TestPremul(t *testing.T) {
	c := gg.RGBA{R: 1, G: 0.5, B: 0, A: 0.5}
	got := Premul(c, 0.5)
	want := gg.RGBA{R: 0.25, G: 0.125, B: 0, A: 0.25}
	if math.Abs(got.R-want.R) > eps || math.Abs(got.G-want.G) > eps ||
		math.Abs(got.B-want.B) > eps || math.Abs(got.A-want.A) > eps {
		t.Errorf("Premul(%v, 0.5) = %v, want %v", c, got, want)
	}
	if got := Premul(c, 3); math.Abs(got.A-0.5) > eps {
		t.Errorf("coverage is not clamped: alpha = %f", got.A)
	}
}

func TestComposite(t *testing.T) {
	dst := gg.RGBA{R: 0, G: 0, B: 1, A: 1}
	src := Premul(gg.RGB(1, 0, 0), 0.25)
	got := Composite(dst, src)
	if math.Abs(got.R-0.25) > eps || math.Abs(got.B-0.75) > eps || math.Abs(got.A-1) > eps {
		t.Errorf("Composite = %v", got)
	}
}

func TestSmoothstep(t *testing.T) {
	tests := []struct {
		x, want float64
	}{
		{-1, 0}, {-0.5, 0}, {0, 0.5}, {0.5, 1}, {2, 1},
	}
	for _, tt := range tests {
		if got := smoothstep(-0.5, 0.5, tt.x); math.Abs(got-tt.want) > eps {
			t.Errorf("smoothstep(-0.5,0.5,%f) = %f, want %f", tt.x, got, tt.want)
		}
	}
	// Symmetry makes neighbouring primitives add up.
	for x := -1.0; x <= 1; x += 0.125 {
		if s := smoothstep(-0.5, 0.5, x) + smoothstep(-0.5, 0.5, -x); math.Abs(s-1) > eps {
			t.Errorf("smoothstep(x)+smoothstep(-x) = %f at x=%f", s, x)
		}
	}
}

func TestRect(t *testing.T) {
	r := R(10, 20, 0, 5)
	if r.Min != gg.Pt(0, 5) || r.Max != gg.Pt(10, 20) {
		t.Errorf("R not canonical: %v", r)
	}
	if r.Empty() {
		t.Errorf("%v reported empty", r)
	}
	if !R(3, 3, 3, 9).Empty() {
		t.Errorf("zero width rectangle not empty")
	}
	if got := r.Intersect(R(5, 0, 50, 10)); got != R(5, 5, 10, 10) {
		t.Errorf("Intersect = %v", got)
	}
}

func TestColorHelpers(t *testing.T) {
	c := gg.RGBA{R: 0.5, G: 0.5, B: 0.5, A: 0.8}
	if l := Lighten(c, 1); l.R != 1 || l.A != 0.8 {
		t.Errorf("Lighten(c,1) = %v", l)
	}
	if d := Darken(c, 1); d.R != 0 || d.A != 0.8 {
		t.Errorf("Darken(c,1) = %v", d)
	}
	g := VerticalGradient(c)
	if !(g.From.R < c.R && g.To.R > c.R) {
		t.Errorf("VerticalGradient = %v", g)
	}
	if got := Flat(c).At(0.7); got != c {
		t.Errorf("Flat.At = %v", got)
	}
}
