package chart

import (
	"fmt"
	"math"

	"gonum.org/v1/plot"
)

// ----------------------------------------------------------------------------
// Axis

// Axis is one of the two scales of a plot. Its range [Min, Max] is
// either fitted to the data or fixed by the caller, edge by edge.
type Axis struct {
	// Title is the axis title.
	Title string

	// Kind determines the fundamental nature of the axis.
	Kind ScaleKind

	// Interval is the current range of this axis. It may be larger or
	// smaller than the actual Data range.
	Interval

	// Data is the range covered by the data seen in the last Fit.
	Data Interval

	// Expand widens a fitted range on both sides by this fraction of
	// its transformed width. Fixed edges are not expanded.
	Expand float64

	// Ticker generates the ticks. If nil the Ticker of the kind's
	// Transformation is used.
	Ticker plot.Ticker

	// limits holds the fixed edges, NaN means autoscaled.
	limits Interval
}

// NewAxis returns an autoscaling axis of kind k.
func NewAxis(k ScaleKind) *Axis {
	return &Axis{
		Kind:     k,
		Interval: Interval{0, 1},
		Data:     unsetInterval(),
		Expand:   0.05,
		limits:   unsetInterval(),
	}
}

// FixMin fixes the min of a to x. If x is NaN the min is determined by
// autoscaling to the actual data.
func (a *Axis) FixMin(x float64) {
	a.limits.Min = x
	if finite(a.Kind.Transform(x)) {
		a.Min = x
	}
}

// FixMax fixes the max of a to x. If x is NaN the max is determined by
// autoscaling to the actual data.
func (a *Axis) FixMax(x float64) {
	a.limits.Max = x
	if finite(a.Kind.Transform(x)) {
		a.Max = x
	}
}

// SetLimits fixes both edges of a.
func (a *Axis) SetLimits(min, max float64) {
	a.FixMin(min)
	a.FixMax(max)
}

// ClearLimits turns autoscaling on for both edges.
func (a *Axis) ClearLimits() {
	a.limits = unsetInterval()
}

// Limits returns the fixed edges of a. Unfixed edges are NaN.
func (a *Axis) Limits() Interval {
	return a.limits
}

// Transformation returns the transformation of a's kind with a's Ticker
// if one is set.
func (a *Axis) Transformation() Transformation {
	t := a.Kind.Transformation()
	if a.Ticker != nil {
		t.Ticker = a.Ticker
	}
	return t
}

// Ticks returns the ticks within the current range of a.
func (a *Axis) Ticks() []plot.Tick {
	return a.Transformation().Ticker.Ticks(a.Min, a.Max)
}

// TicksN is like Ticks but Linear and Time axes without a Ticker aim at
// target intervals. A target < 1 behaves like Ticks.
func (a *Axis) TicksN(target int) []plot.Tick {
	if a.Ticker == nil && target >= 1 {
		switch a.Kind {
		case Linear:
			return LinearTicks{N: target}.Ticks(a.Min, a.Max)
		case Time:
			return TimeTicks{N: target}.Ticks(a.Min, a.Max)
		}
	}
	return a.Ticks()
}

// Fit sets the range of a to cover all values. Values which cannot be
// transformed (non-finite, or <= 0 on a Log axis) are ignored. Without
// any usable value the range becomes [0,1], or [1,10] for Log. A single
// distinct value is padded by 5% of its transformed magnitude, or by 1
// if it transforms to 0. Fixed edges always win.
func (a *Axis) Fit(values ...[]float64) {
	k := a.Kind
	a.Data = unsetInterval()
	for _, vs := range values {
		for _, v := range vs {
			if finite(k.Transform(v)) {
				a.Data.Update(v)
			}
		}
	}

	var lo, hi float64
	switch {
	case !a.Data.Valid():
		dmin, dmax := 0.0, 1.0
		if k == Log {
			dmin, dmax = 1, 10
		}
		lo, hi = k.Transform(dmin), k.Transform(dmax)
	default:
		lo, hi = k.Transform(a.Data.Min), k.Transform(a.Data.Max)
		if lo == hi {
			lo, hi = pad(lo)
		} else if a.Expand > 0 {
			ext := a.Expand * (hi - lo)
			lo, hi = lo-ext, hi+ext
		}
	}

	fixedMin := finite(k.Transform(a.limits.Min))
	fixedMax := finite(k.Transform(a.limits.Max))
	if fixedMin {
		lo = k.Transform(a.limits.Min)
	}
	if fixedMax {
		hi = k.Transform(a.limits.Max)
	}
	if !(lo < hi) {
		switch {
		case fixedMin && fixedMax:
			lo, hi = hi, lo
			if lo == hi {
				lo, hi = pad(lo)
			}
		case fixedMin:
			_, p := pad(lo)
			hi = lo + 2*(p-lo)
		case fixedMax:
			p, _ := pad(hi)
			lo = hi - 2*(hi-p)
		}
	}

	a.Min, a.Max = k.Inverse(lo), k.Inverse(hi)
	// Fixed edges are kept exactly, not as their transform round trip.
	if fixedMin && lo == k.Transform(a.limits.Min) {
		a.Min = a.limits.Min
	}
	if fixedMax && hi == k.Transform(a.limits.Max) {
		a.Max = a.limits.Max
	}
	Logger().Debug("axis fitted", "kind", k, "title", a.Title,
		"data", a.Data, "range", a.Interval)
}

// pad widens the degenerate transformed range [t,t].
func pad(t float64) (float64, float64) {
	d := 0.05 * math.Abs(t)
	if d == 0 {
		d = 1
	}
	return t - d, t + d
}

func (a *Axis) String() string {
	if a == nil {
		return "<nil>"
	}
	return fmt.Sprintf("Range=[%.2f:%.2f] Data=[%.2f:%.2f] %s %q",
		a.Min, a.Max, a.Data.Min, a.Data.Max, a.Kind, a.Title)
}

// ----------------------------------------------------------------------------
// Interval

// Interval represents a (potentially degenerate) real interval.
// Both edges of the interval may be NaN indicating this edge is not
// set determined.
type Interval struct {
	Min, Max float64
}

func unsetInterval() Interval {
	return Interval{math.NaN(), math.NaN()}
}

// Update expands i to include x. Non-finite values are ignored.
func (i *Interval) Update(x ...float64) {
	for _, v := range x {
		if !finite(v) {
			continue
		}
		if !(i.Min <= v) {
			i.Min = v
		}
		if !(i.Max >= v) {
			i.Max = v
		}
	}
}

// Valid reports whether both edges of i are set.
func (i Interval) Valid() bool {
	return !math.IsNaN(i.Min) && !math.IsNaN(i.Max)
}

// Contains reports whether x lies in i.
func (i Interval) Contains(x float64) bool {
	return x >= i.Min && x <= i.Max
}
