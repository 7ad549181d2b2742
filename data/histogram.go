package data

import (
	"fmt"
	"math"
)

// A Bin is the half open interval [Lo, Hi) of a histogram together with
// the number of samples falling into it. The last bin of a histogram
// also contains its Hi edge.
type Bin struct {
	Lo, Hi float64
	Count  int
}

// Histogram counts samples in equal width bins.
type Histogram struct {
	Bins []Bin

	// Dropped counts the samples which are in no bin: non-finite
	// values and values outside an explicit range.
	Dropped int
}

// NewHistogram bins the finite values into nbins equal width bins
// covering their range. Every finite value falls into exactly one bin.
// A value on the boundary between two bins is counted in the upper one.
func NewHistogram(values []float64, nbins int) *Histogram {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, v := range values {
		if finite(v) {
			lo, hi = math.Min(lo, v), math.Max(hi, v)
		}
	}
	if lo > hi {
		lo, hi = 0, 1
	}
	return NewHistogramRange(values, nbins, lo, hi)
}

// NewHistogramRange is like NewHistogram but the bins cover [lo, hi].
// Values outside are dropped. A degenerate range is widened by 0.5 on
// both sides; nbins < 1 is treated as 1.
func NewHistogramRange(values []float64, nbins int, lo, hi float64) *Histogram {
	if nbins < 1 {
		nbins = 1
	}
	if lo > hi {
		lo, hi = hi, lo
	}
	if lo == hi {
		lo, hi = lo-0.5, hi+0.5
	}
	h := &Histogram{Bins: make([]Bin, nbins)}
	w := (hi - lo) / float64(nbins)
	for i := range h.Bins {
		h.Bins[i].Lo = lo + float64(i)*w
		h.Bins[i].Hi = lo + float64(i+1)*w
	}
	h.Bins[nbins-1].Hi = hi

	for _, v := range values {
		i, ok := h.Index(v)
		if !ok {
			h.Dropped++
			continue
		}
		h.Bins[i].Count++
	}
	return h
}

// Index returns the bin v falls into. It is false if v lies outside the
// histogram.
func (h *Histogram) Index(v float64) (int, bool) {
	n := len(h.Bins)
	if n == 0 || !finite(v) {
		return 0, false
	}
	lo, hi := h.Bins[0].Lo, h.Bins[n-1].Hi
	if v < lo || v > hi {
		return 0, false
	}
	w := (hi - lo) / float64(n)
	i := int(math.Floor((v - lo) / w))
	i = max(0, min(i, n-1))
	// Rounding in the division may put v one bin off; the stored edges
	// decide.
	if i+1 < n && v >= h.Bins[i+1].Lo {
		i++
	} else if i > 0 && v < h.Bins[i].Lo {
		i--
	}
	return i, true
}

// Total returns the number of binned samples.
func (h *Histogram) Total() int {
	n := 0
	for _, b := range h.Bins {
		n += b.Count
	}
	return n
}

// MaxCount returns the count of the fullest bin.
func (h *Histogram) MaxCount() int {
	m := 0
	for _, b := range h.Bins {
		m = max(m, b.Count)
	}
	return m
}

// Rects returns the bins as rectangles from 0 to their count.
func (h *Histogram) Rects() XYUVs {
	r := make(XYUVs, len(h.Bins))
	for i, b := range h.Bins {
		r[i] = XYUV{X: b.Lo, Y: 0, U: b.Hi, V: float64(b.Count)}
	}
	return r
}

// Label returns the interval of b in the form "[lo, hi)".
func (b Bin) Label() string {
	return fmt.Sprintf("[%g, %g)", b.Lo, b.Hi)
}
