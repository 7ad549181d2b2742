// Package data contains the statistics behind the aggregating chart
// types: histogram binning, box plot statistics, kernel density estimates
// and stacking offsets.
//
// Results are plain slices in data coordinates. Rectangles, like the bins
// of a histogram, are reported as XYUVs: the corners (X,Y) and (U,V).
package data

import "math"

// XYUVer wraps the Len and XYUV methods.
type XYUVer interface {
	// Len returns the number of x, y, u, v quadruples.
	Len() int

	// XYUV returns an x, y, u, v quadruple.
	XYUV(int) (x, y, u, v float64)
}

// XYUVRange returns the minimum and maximum x and y values of the
// rectangles in xyuvs, treating u like x and v like y. Non-finite
// coordinates are ignored. Without data the minima are +Inf and the
// maxima -Inf.
func XYUVRange(xyuvs XYUVer) (xmin, xmax, ymin, ymax float64) {
	xmin, xmax = math.Inf(1), math.Inf(-1)
	ymin, ymax = math.Inf(1), math.Inf(-1)
	update := func(v float64, lo, hi *float64) {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return
		}
		*lo, *hi = math.Min(*lo, v), math.Max(*hi, v)
	}
	for i := 0; i < xyuvs.Len(); i++ {
		x, y, u, v := xyuvs.XYUV(i)
		update(x, &xmin, &xmax)
		update(u, &xmin, &xmax)
		update(y, &ymin, &ymax)
		update(v, &ymin, &ymax)
	}
	return xmin, xmax, ymin, ymax
}

// XYUV is a rectangle with the corners (X,Y) and (U,V).
type XYUV struct{ X, Y, U, V float64 }

// XYUVs implements the XYUVer interface.
type XYUVs []XYUV

func (d XYUVs) Len() int                        { return len(d) }
func (d XYUVs) XYUV(i int) (x, y, u, v float64) { return d[i].X, d[i].Y, d[i].U, d[i].V }

// DataRange implements gonum's plot.DataRanger.
func (d XYUVs) DataRange() (xmin, xmax, ymin, ymax float64) { return XYUVRange(d) }

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

// finiteValues returns the finite values of vs in a new slice.
func finiteValues(vs []float64) []float64 {
	out := make([]float64, 0, len(vs))
	for _, v := range vs {
		if finite(v) {
			out = append(out, v)
		}
	}
	return out
}
