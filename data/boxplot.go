package data

import (
	"math"

	"github.com/aclements/go-moremath/stats"
)

// BoxStats are the summary statistics drawn by a box plot.
type BoxStats struct {
	N        int
	Min, Max float64
	Mean     float64

	Q1, Median, Q3 float64

	// The whiskers lie 1.5 interquartile ranges beyond Q1 and Q3 but
	// never outside [Min, Max].
	LowerWhisker, UpperWhisker float64

	// Outliers are the samples beyond the whiskers, sorted.
	Outliers []float64
}

// NewBoxStats computes the box plot statistics of the finite values. It
// returns false if there are none.
func NewBoxStats(values []float64) (BoxStats, bool) {
	s := stats.Sample{Xs: finiteValues(values)}
	if len(s.Xs) == 0 {
		return BoxStats{}, false
	}
	s.Sort()
	xs := s.Xs

	b := BoxStats{N: len(xs), Mean: s.Mean()}
	b.Min, b.Max = s.Bounds()
	b.Q1 = Quantile(xs, 0.25)
	b.Median = Quantile(xs, 0.5)
	b.Q3 = Quantile(xs, 0.75)

	iqr := b.Q3 - b.Q1
	b.LowerWhisker = math.Max(b.Q1-1.5*iqr, b.Min)
	b.UpperWhisker = math.Min(b.Q3+1.5*iqr, b.Max)
	for _, x := range xs {
		if x < b.LowerWhisker || x > b.UpperWhisker {
			b.Outliers = append(b.Outliers, x)
		}
	}
	return b, true
}

// IQR returns the interquartile range.
func (b BoxStats) IQR() float64 { return b.Q3 - b.Q1 }

// Quantile returns the p-quantile of the sorted values, interpolating
// linearly between the closest ranks (method 7 of Hyndman and Fan, the
// default of R and NumPy). It is NaN for empty input.
func Quantile(sorted []float64, p float64) float64 {
	n := len(sorted)
	switch {
	case n == 0 || math.IsNaN(p):
		return math.NaN()
	case p <= 0:
		return sorted[0]
	case p >= 1:
		return sorted[n-1]
	}
	h := float64(n-1) * p
	i := int(math.Floor(h))
	if i+1 >= n {
		return sorted[n-1]
	}
	return sorted[i] + (h-float64(i))*(sorted[i+1]-sorted[i])
}
