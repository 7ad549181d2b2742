package data

// Stack holds the baselines and tops of series stacked on each other.
// Series k at index i spans [Base[k][i], Top[k][i]]. Base[0] is zero and
// Base[k+1][i] is Top[k][i], the very same float, so adjacent stacked
// shapes share their boundary exactly.
type Stack struct {
	Base, Top [][]float64
}

// NewStack stacks the series in values in order. Missing and non-finite
// values count as 0. All rows of the result have the length of the
// longest series.
func NewStack(values [][]float64) *Stack {
	n := 0
	for _, vs := range values {
		n = max(n, len(vs))
	}
	s := &Stack{
		Base: make([][]float64, len(values)),
		Top:  make([][]float64, len(values)),
	}
	base := make([]float64, n)
	for k, vs := range values {
		top := make([]float64, n)
		for i := range top {
			top[i] = base[i]
			if i < len(vs) && finite(vs[i]) {
				top[i] += vs[i]
			}
		}
		s.Base[k], s.Top[k] = base, top
		base = top
	}
	return s
}

// Len returns the number of stacked series.
func (s *Stack) Len() int { return len(s.Top) }

// Range returns the smallest and largest baseline or top.
func (s *Stack) Range() (lo, hi float64) {
	for k := range s.Top {
		for i := range s.Top[k] {
			lo = min(lo, s.Base[k][i], s.Top[k][i])
			hi = max(hi, s.Base[k][i], s.Top[k][i])
		}
	}
	return lo, hi
}
