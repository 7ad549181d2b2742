package data

import (
	"math"

	"github.com/aclements/go-moremath/stats"
	"github.com/aclements/go-moremath/vec"
)

// DefaultKDEPoints is the number of grid points used if none are given.
const DefaultKDEPoints = 100

// KDE is a Gaussian kernel density estimate sampled on a regular grid
// spanning the sample range.
type KDE struct {
	X       []float64 // grid
	Density []float64 // estimated density at X

	Bandwidth float64
}

// NewKDE estimates the density of the finite values at points grid
// points. The bandwidth follows Scott's rule. A sample without spread
// gets a bandwidth of 1 and a grid of three bandwidths around its value.
// The result is empty if there are no finite values.
func NewKDE(values []float64, points int) *KDE {
	return NewKDEBandwidth(values, points, 0)
}

// NewKDEBandwidth is like NewKDE with an explicit bandwidth. A bandwidth
// <= 0 selects Scott's rule.
func NewKDEBandwidth(values []float64, points int, bandwidth float64) *KDE {
	sample := stats.Sample{Xs: finiteValues(values)}
	if len(sample.Xs) == 0 {
		return &KDE{}
	}
	if points < 2 {
		points = DefaultKDEPoints
	}
	if !(bandwidth > 0) || math.IsInf(bandwidth, 1) {
		bandwidth = stats.BandwidthScott(sample)
	}
	lo, hi := sample.Bounds()
	if !(bandwidth > 0) || !finite(bandwidth) {
		bandwidth = 1
	}
	if lo == hi {
		lo, hi = lo-3*bandwidth, hi+3*bandwidth
	}

	kde := stats.KDE{
		Sample:    sample,
		Kernel:    stats.GaussianKernel,
		Bandwidth: bandwidth,
	}
	grid := vec.Linspace(lo, hi, points)
	return &KDE{
		X:         grid,
		Density:   vec.Map(kde.PDF, grid),
		Bandwidth: bandwidth,
	}
}

// Len returns the number of grid points.
func (k *KDE) Len() int { return len(k.X) }

// Max returns the largest estimated density.
func (k *KDE) Max() float64 {
	m := 0.0
	for _, d := range k.Density {
		m = math.Max(m, d)
	}
	return m
}
