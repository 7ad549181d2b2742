package chart

import (
	"fmt"
	"math"
	"strconv"

	"gonum.org/v1/plot"
)

// GenerateTicks returns the tick positions (in data space) of an axis of
// kind k spanning [min, max], aiming at target intervals. An invalid
// domain, e.g. a non-positive bound on a Log axis, yields no ticks.
func GenerateTicks(k ScaleKind, min, max float64, target int) []float64 {
	if !finite(min) || !finite(max) || min > max {
		return nil
	}
	if target < 1 {
		target = 1
	}
	switch k {
	case Log:
		return logTicks(min, max)
	case SymLog:
		return symLogTicks(min, max)
	case Time:
		ticks, _ := timeTicks(min, max, target)
		return ticks
	}
	return linearTicks(min, max, target)
}

// linearTicks returns target+1 equally spaced values from min to max.
func linearTicks(min, max float64, target int) []float64 {
	if min == max {
		return []float64{min}
	}
	step := (max - min) / float64(target)
	ticks := make([]float64, target+1)
	for i := range ticks {
		v := min + float64(i)*step
		if math.Abs(v) < 1e-12*(max-min) {
			v = 0
		}
		ticks[i] = v
	}
	ticks[target] = max
	return ticks
}

func logTicks(min, max float64) []float64 {
	if min <= 0 || max <= 0 {
		return nil
	}
	var ticks []float64
	lo, hi := int(math.Floor(math.Log10(min))), int(math.Ceil(math.Log10(max)))
	for e := lo; e <= hi; e++ {
		if v := math.Pow10(e); v >= min && v <= max {
			ticks = append(ticks, v)
		}
	}
	return ticks
}

// symLogTicks returns the negative powers of ten from large to small
// magnitude, zero and the positive powers of ten, all within range.
func symLogTicks(min, max float64) []float64 {
	m := math.Max(math.Abs(min), math.Abs(max))
	hi := 0
	if m > 1 {
		hi = int(math.Ceil(math.Log10(m)))
	}
	var ticks []float64
	for e := hi; e >= 0; e-- {
		if v := -math.Pow10(e); v >= min && v <= max {
			ticks = append(ticks, v)
		}
	}
	if min <= 0 && max >= 0 {
		ticks = append(ticks, 0)
	}
	for e := 0; e <= hi; e++ {
		if v := math.Pow10(e); v >= min && v <= max {
			ticks = append(ticks, v)
		}
	}
	return ticks
}

const (
	minute = 60
	hour   = 60 * minute
	day    = 24 * hour
)

// timeLadder lists the tick intervals of a Time axis in seconds.
var timeLadder = []float64{
	1, 5, 10, 30,
	minute, 5 * minute, 15 * minute, 30 * minute,
	hour, 3 * hour, 6 * hour, 12 * hour,
	day, 7 * day, 30 * day, 90 * day, 365 * day,
}

// maxTimeTicks bounds the work done for absurdly long time ranges.
const maxTimeTicks = 10000

// timeInterval returns the smallest ladder interval which is at least
// (max-min)/target or the largest interval if none is.
func timeInterval(min, max float64, target int) float64 {
	want := (max - min) / float64(target)
	for _, iv := range timeLadder {
		if iv >= want {
			return iv
		}
	}
	return timeLadder[len(timeLadder)-1]
}

// timeTicks returns the multiples of the chosen interval in [min, max].
func timeTicks(min, max float64, target int) ([]float64, float64) {
	iv := timeInterval(min, max, target)
	var ticks []float64
	for t := math.Ceil(min/iv) * iv; t <= max && len(ticks) < maxTimeTicks; t += iv {
		ticks = append(ticks, t)
	}
	return ticks, iv
}

// FormatTick returns the label of a tick at v on an axis of kind k. Time
// ticks are labeled "{month}/{day}" in UTC.
func FormatTick(k ScaleKind, v float64) string {
	if k == Time {
		return formatTime(v, day)
	}
	return formatNumber(v)
}

func formatNumber(v float64) string {
	if v == 0 {
		return "0" // not "-0"
	}
	return strconv.FormatFloat(v, 'g', 6, 64)
}

// formatTime labels a timestamp with a precision suitable for ticks
// which are interval seconds apart.
func formatTime(v, interval float64) string {
	if !finite(v) {
		return ""
	}
	_, month, dd, h, m, s := Civil(int64(math.Floor(clampUnix(v))))
	switch {
	case interval < minute:
		return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
	case interval < day:
		return fmt.Sprintf("%02d:%02d", h, m)
	}
	return fmt.Sprintf("%d/%d", month, dd)
}

// ----------------------------------------------------------------------------
// Tickers

// LinearTicks is a plot.Ticker producing N+1 equally spaced ticks.
type LinearTicks struct {
	N int
}

var _ plot.Ticker = LinearTicks{}

// Ticks implements plot.Ticker.
func (lt LinearTicks) Ticks(min, max float64) []plot.Tick {
	return labeled(Linear, GenerateTicks(Linear, min, max, lt.N))
}

// LogTicks is a plot.Ticker with a labeled tick at each power of ten and
// unlabeled minor ticks at its multiples.
type LogTicks struct{}

// Ticks implements plot.Ticker.
func (LogTicks) Ticks(min, max float64) []plot.Tick {
	major := GenerateTicks(Log, min, max, 1)
	if major == nil {
		return nil
	}
	ticks := labeled(Log, major)
	lo, hi := int(math.Floor(math.Log10(min))), int(math.Ceil(math.Log10(max)))
	if hi-lo > 6 {
		return ticks
	}
	for e := lo; e < hi; e++ {
		for m := 2.0; m < 10; m++ {
			if v := m * math.Pow10(e); v >= min && v <= max {
				ticks = append(ticks, plot.Tick{Value: v})
			}
		}
	}
	return ticks
}

// SymLogTicks is a plot.Ticker for SymLog axes.
type SymLogTicks struct{}

// Ticks implements plot.Ticker.
func (SymLogTicks) Ticks(min, max float64) []plot.Tick {
	return labeled(SymLog, GenerateTicks(SymLog, min, max, 1))
}

// TimeTicks is a plot.Ticker for Time axes aiming at N intervals. Labels
// show the time of day for intervals below one day and the date
// otherwise.
type TimeTicks struct {
	N int
}

// Ticks implements plot.Ticker.
func (tt TimeTicks) Ticks(min, max float64) []plot.Tick {
	if !finite(min) || !finite(max) || min > max {
		return nil
	}
	n := tt.N
	if n < 1 {
		n = 1
	}
	values, iv := timeTicks(min, max, n)
	ticks := make([]plot.Tick, len(values))
	for i, v := range values {
		ticks[i] = plot.Tick{Value: v, Label: formatTime(v, iv)}
	}
	return ticks
}

func labeled(k ScaleKind, values []float64) []plot.Tick {
	if len(values) == 0 {
		return nil
	}
	ticks := make([]plot.Tick, len(values))
	for i, v := range values {
		ticks[i] = plot.Tick{Value: v, Label: FormatTick(k, v)}
	}
	return ticks
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
