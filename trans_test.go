package chart

import (
	"fmt"
	"math"
	"testing"
)

var transformationTests = []struct {
	trans   Transformation
	a, b    float64 // from
	u, v    float64 // to
	x, want float64
}{
	{LinearTrans, 10, 20, 10, 20, 12, 12},
	{LinearTrans, 10, 20, 100, 200, 12, 120},
	{LinearTrans, 3, 5, 0, 1, 3, 0},
	{LinearTrans, 3, 5, 0, 1, 4, 0.5},
	{LinearTrans, 3, 5, 0, 1, 5, 1},
	{LinearTrans, 5, 5, 0, 10, 7, 5},
	{LinearTrans, 0, 10, 50, 0, 10, 0},

	{Log10Trans, 1, 100, 0, 1, 1, 0},
	{Log10Trans, 1, 100, 0, 1, 10, 0.5},
	{Log10Trans, 1, 100, 0, 1, 100, 1},
	{Log10Trans, 1, 1000, 0, 300, 10, 100},

	{SymLogTrans, -9, 9, 0, 1, 0, 0.5},
	{SymLogTrans, -9, 9, 0, 1, 9, 1},
	{SymLogTrans, -9, 9, 0, 1, -9, 0},
	{SymLogTrans, 0, 99, 0, 2, 9, 1},

	{TimeTrans, 0, 86400, 0, 24, 3600, 1},
}

func equal64(a, b float64) bool {
	ai, af := math.Modf(a)
	bi, bf := math.Modf(b)
	if af == 0 && bf == 0 {
		return ai == bi
	}
	return math.Abs(a-b) < 0.006
}

func TestTransform(t *testing.T) {
	for i, tc := range transformationTests {
		t.Run(fmt.Sprintf("%s/%d", tc.trans.Name, i), func(t *testing.T) {
			from, to := Interval{tc.a, tc.b}, Interval{tc.u, tc.v}
			got := tc.trans.Trans(from, to, tc.x)
			if !equal64(got, tc.want) {
				t.Errorf("%s.Trans(%v,%v,%f) = %f, want %f",
					tc.trans.Name, from, to, tc.x, got, tc.want)
			}
			if tc.a == tc.b {
				return
			}
			if back := tc.trans.Inverse(from, to, got); math.Abs(back-tc.x) > 1e-9*math.Max(1, math.Abs(tc.x)) {
				t.Errorf("%s.Inverse(%v,%v,%f) = %f, want %f",
					tc.trans.Name, from, to, got, back, tc.x)
			}
		})
	}
}

func TestScaleKindRoundTrip(t *testing.T) {
	values := []float64{-1e6, -123.456, -5, -1, -0.01, 0, 1e-9, 0.01, 0.5, 1, 5, 42, 1e3, 7.5e8}
	for _, k := range []ScaleKind{Linear, Log, SymLog, Time} {
		for _, v := range values {
			if k == Log && v <= 0 {
				continue
			}
			got := k.Inverse(k.Transform(v))
			if math.Abs(got-v) > 1e-9*math.Max(1, math.Abs(v)) {
				t.Errorf("%s: Inverse(Transform(%g)) = %g", k, v, got)
			}
		}
	}
}

func TestLogTransformOfNonPositive(t *testing.T) {
	for _, v := range []float64{0, -1, math.Inf(-1)} {
		if got := Log.Transform(v); !math.IsInf(got, -1) {
			t.Errorf("Log.Transform(%g) = %g, want -Inf", v, got)
		}
	}
}

func TestSymLogIsOdd(t *testing.T) {
	for _, v := range []float64{0.3, 1, 5, 99, 12345} {
		if SymLog.Transform(-v) != -SymLog.Transform(v) {
			t.Errorf("SymLog.Transform(-%g) = %g, want %g", v, SymLog.Transform(-v), -SymLog.Transform(v))
		}
	}
	if SymLog.Transform(0) != 0 {
		t.Errorf("SymLog.Transform(0) = %g", SymLog.Transform(0))
	}
}

func TestScaleKindString(t *testing.T) {
	want := map[ScaleKind]string{Linear: "linear", Log: "log", SymLog: "symlog", Time: "time", 17: "unknown"}
	for k, s := range want {
		if k.String() != s {
			t.Errorf("ScaleKind(%d).String() = %q, want %q", int(k), k.String(), s)
		}
	}
}
