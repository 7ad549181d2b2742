package chart

import "math"

// A View holds the pan and zoom state of one chart. It remembers the
// axis limits present when it was created and rewrites the limits of its
// Mapper's axes in response to input. Pan and Zoom pin both edges of
// both axes; Reset restores the remembered limits.
type View struct {
	Mapper *Mapper

	home [2]Interval
}

// NewView returns a view on m.
func NewView(m *Mapper) *View {
	return &View{Mapper: m, home: [2]Interval{m.X.Limits(), m.Y.Limits()}}
}

// Pan moves the visible range as if the content was dragged by (dx, dy)
// pixels.
func (v *View) Pan(dx, dy float64) {
	area := v.Mapper.Area
	if !area.Valid() || !finite(dx) || !finite(dy) {
		return
	}
	shift(v.Mapper.X, -dx/area.Width())
	shift(v.Mapper.Y, dy/area.Height())
}

// Zoom scales the visible range by 1/factor around the pixel (px, py),
// which keeps showing the same data point. A factor > 1 zooms in.
func (v *View) Zoom(factor, px, py float64) {
	area := v.Mapper.Area
	if !area.Valid() || !(factor > 0) || math.IsInf(factor, 0) {
		return
	}
	zoom(v.Mapper.X, factor, (px-area.Left)/area.Width())
	zoom(v.Mapper.Y, factor, (area.Bottom-py)/area.Height())
}

// Reset drops all pan and zoom changes. The next Fit of the axes
// autoscales again unless limits were set before the view was created.
func (v *View) Reset() {
	for i, a := range []*Axis{v.Mapper.X, v.Mapper.Y} {
		a.SetLimits(v.home[i].Min, v.home[i].Max)
	}
}

// transformedRange returns the range of a in transformed space.
func transformedRange(a *Axis) (float64, float64) {
	return a.Kind.Transform(a.Min), a.Kind.Transform(a.Max)
}

// shift moves a by the fraction f of its transformed width.
func shift(a *Axis, f float64) {
	t0, t1 := transformedRange(a)
	d := f * (t1 - t0)
	setTransformed(a, t0+d, t1+d)
}

// zoom scales a by 1/factor keeping the point at fraction f in place.
func zoom(a *Axis, factor, f float64) {
	t0, t1 := transformedRange(a)
	anchor := t0 + f*(t1-t0)
	setTransformed(a, anchor-(anchor-t0)/factor, anchor+(t1-anchor)/factor)
}

func setTransformed(a *Axis, t0, t1 float64) {
	if !finite(t0) || !finite(t1) || !(t0 < t1) {
		Logger().Debug("view change ignored", "axis", a.Title, "from", t0, "to", t1)
		return
	}
	a.SetLimits(a.Kind.Inverse(t0), a.Kind.Inverse(t1))
}
