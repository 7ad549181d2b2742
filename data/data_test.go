package data

import (
	"math"
	"slices"
	"testing"
)

func near(a, b float64) bool {
	return math.Abs(a-b) <= 1e-9*math.Max(1, math.Abs(b))
}

func TestHistogram(t *testing.T) {
	values := []float64{0, 1, 2, 2.5, 3, 4, 5, 6, 7, 8, 9, 10}
	h := NewHistogram(values, 5)
	want := []int{2, 3, 2, 2, 3} // 2, 4, 6 and 8 go up, 10 is in the last bin
	for i, b := range h.Bins {
		if b.Count != want[i] {
			t.Errorf("bin %d %s: count %d, want %d", i, b.Label(), b.Count, want[i])
		}
	}
	if h.Total() != len(values) || h.Dropped != 0 {
		t.Errorf("Total %d, Dropped %d", h.Total(), h.Dropped)
	}
	if h.Bins[0].Lo != 0 || h.Bins[4].Hi != 10 || h.Bins[1].Label() != "[2, 4)" {
		t.Errorf("bins %+v", h.Bins)
	}
	if h.MaxCount() != 3 {
		t.Errorf("MaxCount = %d", h.MaxCount())
	}
}

func TestHistogramEverySampleInOneBin(t *testing.T) {
	var values []float64
	for i := 0; i < 1000; i++ {
		values = append(values, math.Sin(float64(i))*float64(i%37)/3)
	}
	for _, nbins := range []int{1, 2, 3, 7, 10, 64, 1000} {
		h := NewHistogram(values, nbins)
		if got := h.Total(); got != len(values) {
			t.Errorf("%d bins: total %d, want %d", nbins, got, len(values))
		}
		for _, v := range values {
			i, ok := h.Index(v)
			if !ok || i < 0 || i >= nbins {
				t.Fatalf("%d bins: %g in bin %d (%t)", nbins, v, i, ok)
			}
			b := h.Bins[i]
			if v < b.Lo || (v >= b.Hi && i < nbins-1) || v > b.Hi {
				t.Fatalf("%d bins: %g not in %s", nbins, v, b.Label())
			}
		}
	}
}

func TestHistogramEdgeCases(t *testing.T) {
	tests := []struct {
		name    string
		values  []float64
		nbins   int
		counts  []int
		dropped int
	}{
		{"empty", nil, 3, []int{0, 0, 0}, 0},
		{"non-finite", []float64{math.NaN(), 1, math.Inf(1)}, 2, []int{0, 1}, 2},
		{"single", []float64{4, 4, 4}, 2, []int{0, 3}, 0},
		{"no-bins", []float64{1, 2, 3}, 0, []int{3}, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			h := NewHistogram(tc.values, tc.nbins)
			var got []int
			for _, b := range h.Bins {
				got = append(got, b.Count)
			}
			if !slices.Equal(got, tc.counts) || h.Dropped != tc.dropped {
				t.Errorf("counts %v dropped %d, want %v and %d", got, h.Dropped, tc.counts, tc.dropped)
			}
		})
	}

	h := NewHistogramRange([]float64{-1, 0, 0.5, 1, 2}, 2, 0, 1)
	if h.Bins[0].Count != 1 || h.Bins[1].Count != 2 || h.Dropped != 2 {
		t.Errorf("explicit range: %+v, dropped %d", h.Bins, h.Dropped)
	}
}

func TestHistogramRects(t *testing.T) {
	h := NewHistogram([]float64{0, 1, 1, 2}, 2)
	r := h.Rects()
	want := XYUVs{{0, 0, 1, 1}, {1, 0, 2, 3}}
	if !slices.Equal(r, want) {
		t.Errorf("Rects = %v, want %v", r, want)
	}
	xmin, xmax, ymin, ymax := r.DataRange()
	if xmin != 0 || xmax != 2 || ymin != 0 || ymax != 3 {
		t.Errorf("DataRange = %g %g %g %g", xmin, xmax, ymin, ymax)
	}
}

func TestBoxStats(t *testing.T) {
	b, ok := NewBoxStats([]float64{10, 20, 30, 25, 15, 35, 22})
	if !ok {
		t.Fatal("no stats")
	}
	for _, tc := range []struct {
		name      string
		got, want float64
	}{
		{"Q1", b.Q1, 17.5},
		{"Median", b.Median, 22},
		{"Q3", b.Q3, 27.5},
		{"LowerWhisker", b.LowerWhisker, 10},
		{"UpperWhisker", b.UpperWhisker, 35},
		{"Min", b.Min, 10},
		{"Max", b.Max, 35},
		{"IQR", b.IQR(), 10},
	} {
		if !near(tc.got, tc.want) {
			t.Errorf("%s = %g, want %g", tc.name, tc.got, tc.want)
		}
	}
	if len(b.Outliers) != 0 || b.N != 7 {
		t.Errorf("N %d, outliers %v", b.N, b.Outliers)
	}
}

func TestBoxStatsOutliers(t *testing.T) {
	b, _ := NewBoxStats([]float64{1, 2, 3, 4, 5, 6, 7, 8, 100, -50, math.NaN()})
	// Q1 2.25, Q3 6.75, IQR 4.5: fences at -4.5 and 13.5.
	if !near(b.LowerWhisker, -4.5) || !near(b.UpperWhisker, 13.5) {
		t.Errorf("whiskers %g %g", b.LowerWhisker, b.UpperWhisker)
	}
	if !slices.Equal(b.Outliers, []float64{-50, 100}) {
		t.Errorf("outliers %v", b.Outliers)
	}

	if _, ok := NewBoxStats([]float64{math.NaN()}); ok {
		t.Errorf("stats of nothing")
	}
	b, _ = NewBoxStats([]float64{3})
	if b.Q1 != 3 || b.Median != 3 || b.Q3 != 3 || b.LowerWhisker != 3 || b.UpperWhisker != 3 {
		t.Errorf("single value: %+v", b)
	}
}

func TestQuantile(t *testing.T) {
	xs := []float64{1, 2, 3, 4}
	tests := []struct{ p, want float64 }{
		{0, 1}, {1, 4}, {0.5, 2.5}, {0.25, 1.75}, {-1, 1}, {2, 4},
	}
	for _, tc := range tests {
		if got := Quantile(xs, tc.p); !near(got, tc.want) {
			t.Errorf("Quantile(%g) = %g, want %g", tc.p, got, tc.want)
		}
	}
	if !math.IsNaN(Quantile(nil, 0.5)) {
		t.Errorf("Quantile of nothing is a number")
	}
}

func TestKDE(t *testing.T) {
	values := []float64{1, 2, 2, 3, 3, 3, 4, 4, 5}
	k := NewKDE(values, 41)
	if k.Len() != 41 || k.X[0] != 1 || k.X[40] != 5 {
		t.Fatalf("grid %v", k.X)
	}
	if !(k.Bandwidth > 0) {
		t.Fatalf("bandwidth %g", k.Bandwidth)
	}
	// Symmetric sample: symmetric estimate with its mode at 3.
	for i := range k.Density {
		if !near(k.Density[i], k.Density[40-i]) {
			t.Errorf("density not symmetric at %g", k.X[i])
		}
		if k.Density[i] < 0 || k.Density[i] > k.Density[20] {
			t.Errorf("density %g at %g", k.Density[i], k.X[i])
		}
	}
	if k.Max() != k.Density[20] {
		t.Errorf("Max = %g", k.Max())
	}

	// Check one value against the kernel sum.
	k = NewKDEBandwidth(values, 41, 0.5)
	want := 0.0
	for _, v := range values {
		z := (3 - v) / 0.5
		want += math.Exp(-z*z/2) / (0.5 * math.Sqrt(2*math.Pi))
	}
	want /= float64(len(values))
	if got := k.Density[20]; math.Abs(got-want) > 1e-6*want {
		t.Errorf("density at 3 = %g, want %g", got, want)
	}
}

func TestKDEDegenerate(t *testing.T) {
	if k := NewKDE(nil, 10); k.Len() != 0 {
		t.Errorf("KDE of nothing has %d points", k.Len())
	}
	k := NewKDE([]float64{7, 7, 7}, 0)
	if k.Len() != DefaultKDEPoints || k.Bandwidth != 1 {
		t.Fatalf("len %d, bandwidth %g", k.Len(), k.Bandwidth)
	}
	if k.X[0] != 4 || k.X[k.Len()-1] != 10 {
		t.Errorf("grid [%g, %g]", k.X[0], k.X[k.Len()-1])
	}
	for _, d := range k.Density {
		if math.IsNaN(d) || math.IsInf(d, 0) {
			t.Fatalf("density %g", d)
		}
	}
}

func TestStack(t *testing.T) {
	values := [][]float64{
		{1, 2, 3},
		{0.1, 0.2},
		{0.3, math.NaN(), 0.7},
	}
	s := NewStack(values)
	if s.Len() != 3 {
		t.Fatalf("Len = %d", s.Len())
	}
	for k := range values {
		for i := 0; i < 3; i++ {
			if k == 0 && s.Base[k][i] != 0 {
				t.Errorf("series 0 starts at %g", s.Base[k][i])
			}
			if k > 0 && s.Base[k][i] != s.Top[k-1][i] {
				t.Errorf("gap between series %d and %d at %d", k-1, k, i)
			}
			v := 0.0
			if i < len(values[k]) && !math.IsNaN(values[k][i]) {
				v = values[k][i]
			}
			if s.Top[k][i] != s.Base[k][i]+v {
				t.Errorf("series %d at %d: top %g, base %g, value %g", k, i, s.Top[k][i], s.Base[k][i], v)
			}
		}
	}
	if lo, hi := s.Range(); lo != 0 || !near(hi, 3.7) {
		t.Errorf("Range = %g, %g", lo, hi)
	}
}
