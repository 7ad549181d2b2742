package shade

import "github.com/gogpu/gg"

// Lighten moves c towards white by t in [0,1]. Alpha is kept.
func Lighten(c gg.RGBA, t float64) gg.RGBA {
	w := gg.RGBA{R: 1, G: 1, B: 1, A: c.A}
	return c.Lerp(w, clamp01(t))
}

// Darken moves c towards black by t in [0,1]. Alpha is kept.
func Darken(c gg.RGBA, t float64) gg.RGBA {
	b := gg.RGBA{A: c.A}
	return c.Lerp(b, clamp01(t))
}

// A Gradient is a pair of colours interpolated by a primitive. What the
// interpolation parameter means (vertical position, radius, angle)
// depends on the primitive.
type Gradient struct {
	From, To gg.RGBA
}

// At returns the gradient colour at t in [0,1].
func (g Gradient) At(t float64) gg.RGBA {
	return g.From.Lerp(g.To, clamp01(t))
}

// Flat returns a gradient which is c everywhere.
func Flat(c gg.RGBA) Gradient {
	return Gradient{From: c, To: c}
}

// VerticalGradient derives a bottom to top gradient from base: the
// bottom is darkened, the top lightened.
func VerticalGradient(base gg.RGBA) Gradient {
	return Gradient{From: Darken(base, 0.25), To: Lighten(base, 0.25)}
}

// RadialGradient derives a centre to outer gradient from base: the
// centre is lightened, the rim slightly darkened.
func RadialGradient(base gg.RGBA) Gradient {
	return Gradient{From: Lighten(base, 0.4), To: Darken(base, 0.1)}
}
