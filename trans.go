// Scale Transformations

package chart

import (
	"math"

	"gonum.org/v1/plot"
)

// ScaleKind selects one of the known scale types.
type ScaleKind int

const (
	Linear ScaleKind = iota
	Log
	SymLog
	Time
)

// String returns the name of k.
func (k ScaleKind) String() string {
	switch k {
	case Linear:
		return "linear"
	case Log:
		return "log"
	case SymLog:
		return "symlog"
	case Time:
		return "time"
	}
	return "unknown"
}

// Transform maps a data value to its position in transformed space.
// Under Log a value <= 0 maps to -Inf which callers must treat as
// unplottable.
func (k ScaleKind) Transform(v float64) float64 {
	switch k {
	case Log:
		if v <= 0 {
			return math.Inf(-1)
		}
		return math.Log10(v)
	case SymLog:
		return math.Copysign(math.Log10(1+math.Abs(v)), v)
	}
	return v
}

// Inverse is the inverse of Transform.
func (k ScaleKind) Inverse(v float64) float64 {
	switch k {
	case Log:
		return math.Pow(10, v)
	case SymLog:
		return math.Copysign(math.Pow(10, math.Abs(v))-1, v)
	}
	return v
}

// A Transformation bundles two functions Trans and Inverse together with
// an appropiate Ticker. Trans maps the interval from onto the interval to
// in the transformed space of Kind, Inverse undoes this.
type Transformation struct {
	Name    string
	Kind    ScaleKind
	Trans   func(from, to Interval, x float64) float64
	Inverse func(from, to Interval, y float64) float64
	Ticker  plot.Ticker
}

// LinearTrans implements a linear mapping of from to to. It ticks at six
// equally spaced values including the range ends. Set an Axis' Ticker
// to plot.DefaultTicks{} for ticks at round numbers instead.
var LinearTrans = newTransformation(Linear, LinearTicks{N: 5})

// Log10Trans maps the decimal logarithm of from linearly onto to.
var Log10Trans = newTransformation(Log, LogTicks{})

// SymLogTrans maps sign(x)*log10(1+|x|) linearly onto to.
var SymLogTrans = newTransformation(SymLog, SymLogTicks{})

// TimeTrans maps Unix seconds linearly onto to and ticks on calendar
// friendly intervals.
var TimeTrans = newTransformation(Time, TimeTicks{N: 5})

// Transformation returns the default transformation of kind k.
func (k ScaleKind) Transformation() Transformation {
	switch k {
	case Log:
		return Log10Trans
	case SymLog:
		return SymLogTrans
	case Time:
		return TimeTrans
	}
	return LinearTrans
}

func newTransformation(k ScaleKind, ticker plot.Ticker) Transformation {
	return Transformation{
		Name: k.String(),
		Kind: k,
		Trans: func(from, to Interval, x float64) float64 {
			t := normalize(k, from, x)
			return to.Min + t*(to.Max-to.Min)
		},
		Inverse: func(from, to Interval, y float64) float64 {
			t0, t1 := k.Transform(from.Min), k.Transform(from.Max)
			if to.Min == to.Max {
				return k.Inverse((t0 + t1) / 2)
			}
			t := (y - to.Min) / (to.Max - to.Min)
			return k.Inverse(t0 + t*(t1-t0))
		},
		Ticker: ticker,
	}
}

// normalize maps x into [0,1] relative to i in the transformed space of
// k. A degenerate interval puts every finite value in the middle. The
// result is not finite if x cannot be transformed.
func normalize(k ScaleKind, i Interval, x float64) float64 {
	tx := k.Transform(x)
	if math.IsInf(tx, 0) || math.IsNaN(tx) {
		return tx
	}
	t0, t1 := k.Transform(i.Min), k.Transform(i.Max)
	if t0 == t1 {
		return 0.5
	}
	return (tx - t0) / (t1 - t0)
}
