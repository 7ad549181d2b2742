package geom

import (
	"math"
	"sort"

	"github.com/gogpu/gg"
	"github.com/vdobler/chart"
	"github.com/vdobler/chart/data"
	"github.com/vdobler/chart/shade"
)

// Position determines how the bars of several series at the same x are
// arranged.
type Position int

const (
	Stack Position = iota // on top of each other
	Dodge                 // side by side
	Fill                  // stacked and scaled to a total height of 1
)

func (p Position) String() string {
	switch p {
	case Stack:
		return "stack"
	case Dodge:
		return "dodge"
	case Fill:
		return "fill"
	}
	return "unknown"
}

// ----------------------------------------------------------------------------
// Bar

// Bar draws one or more series of bars standing on y=0.
type Bar struct {
	X      []float64
	Values [][]float64 // one row per series, each as long as X
	Labels []string    // per series, for the legend
	Colors []gg.RGBA   // per series; missing ones come from the palette

	Position Position
	GroupGap float64 // between groups as fraction of the smallest x distance
	BarGap   float64 // between dodged bars as fraction of the smallest x distance
}

// Validate implements chart.Validator.
func (b Bar) Validate() error {
	for k, vs := range b.Values {
		if len(vs) != len(b.X) {
			return &chart.SeriesError{Label: label(b.Labels, k), Field: "values", Err: chart.ErrLengthMismatch}
		}
	}
	return nil
}

// DataValues implements chart.DataValuer.
func (b Bar) DataValues() (xs, ys [][]float64) {
	rects := b.rects()
	if len(rects) == 0 || len(b.X) == 0 {
		return nil, nil
	}
	xmin, xmax := b.groups().XRange()
	ys = [][]float64{{0}}
	for _, rs := range rects {
		ymin, ymax := make([]float64, len(rs)), make([]float64, len(rs))
		for i, r := range rs {
			ymin[i], ymax[i] = r.Y, r.V
		}
		ys = append(ys, ymin, ymax)
	}
	return [][]float64{{xmin, xmax}}, ys
}

// Draw implements chart.Geom.
func (b Bar) Draw(p *chart.Panel) {
	for k, rs := range b.rects() {
		col := p.Color(colorOf(b.Colors, k))
		fillRects(p, rs, shade.VerticalGradient(col))
		p.AddLegend(chart.LegendEntry{Label: label(b.Labels, k), Color: col, Swatch: true})
	}
}

// rects returns the bars of each series in data coordinates.
func (b Bar) rects() []data.XYUVs {
	g := b.groups()
	var st *data.Stack
	if b.Position != Dodge {
		st = data.NewStack(b.Values)
	}
	last := len(b.Values) - 1

	out := make([]data.XYUVs, len(b.Values))
	for k, vs := range b.Values {
		rs := make(data.XYUVs, len(vs))
		for i := range vs {
			if i >= len(b.X) {
				break
			}
			center, halfwidth := g.Width(b.X[i], k)
			r := data.XYUV{X: center - halfwidth, U: center + halfwidth}
			switch b.Position {
			case Dodge:
				r.Y, r.V = 0, vs[i]
			case Fill:
				r.Y, r.V = st.Base[k][i], st.Top[k][i]
				if total := math.Abs(st.Top[last][i]); total != 0 {
					r.Y, r.V = r.Y/total, r.V/total
				}
			default:
				r.Y, r.V = st.Base[k][i], st.Top[k][i]
			}
			rs[i] = r
		}
		out[k] = rs
	}
	return out
}

func (b Bar) groups() *BarGroups {
	g := NewBarGroups(b.Position == Dodge, b.GroupGap, b.BarGap)
	for k := range b.Values {
		for _, x := range b.X {
			g.Record(x, k)
		}
	}
	return g
}

// ----------------------------------------------------------------------------
// BarGroups helps determining bar sizes for Bar, Boxplot and Violin.

// BarGroups collects the members (series or boxes) drawn at each x value
// and computes where and how wide each of them is drawn.
type BarGroups struct {
	Group    map[float64][]int
	Dodge    bool    // place members of a group side by side
	GroupGap float64 // between groups
	BarGap   float64 // between bars inside a group if dodged

	xs []float64
	md float64
	lg int
}

// NewBarGroups creates a BarGroups with sensible gaps between groups. A
// groupGap of 0 means 0.2.
func NewBarGroups(dodge bool, groupGap, barGap float64) *BarGroups {
	if groupGap == 0 {
		groupGap = 0.2
	}
	return &BarGroups{
		Group:    make(map[float64][]int),
		Dodge:    dodge,
		GroupGap: groupGap,
		BarGap:   barGap,
	}
}

// Record the member i at the given x coordinate.
func (bg *BarGroups) Record(x float64, i int) {
	bg.Group[x] = append(bg.Group[x], i)
	bg.xs = nil
}

// Width returns the center and the halfwidth of member i at x. Unknown
// members have zero width.
func (bg *BarGroups) Width(x float64, i int) (center float64, halfwidth float64) {
	minDelta := bg.MinDelta()
	nonGapWidth := minDelta * (1 - bg.GroupGap)

	if !bg.Dodge {
		return x, nonGapWidth / 2
	}

	g := -1
	for j, k := range bg.Group[x] {
		if k == i {
			g = j
			break
		}
	}
	if g == -1 {
		return x, 0
	}

	// All groups use the slot width of the largest group and are
	// centered at their x.
	halfwidth = nonGapWidth / float64(2*bg.MaxGroupSize())
	m := len(bg.Group[x])
	center = x + float64(2*g-m+1)*halfwidth
	halfwidth = math.Max(0, halfwidth-minDelta*bg.BarGap/2)
	return center, halfwidth
}

// MinDelta returns the smallest difference between recorded x values,
// or 1 if there are less than two.
func (bg *BarGroups) MinDelta() float64 {
	bg.recalc()
	return bg.md
}

// MaxGroupSize determines the maximum number of members recorded per x
// value.
func (bg *BarGroups) MaxGroupSize() int {
	bg.recalc()
	return bg.lg
}

// XRange returns the left edge of the leftmost and the right edge of the
// rightmost member.
func (bg *BarGroups) XRange() (xmin float64, xmax float64) {
	bg.recalc()
	if len(bg.xs) == 0 {
		return math.NaN(), math.NaN()
	}

	left, right := bg.xs[0], bg.xs[len(bg.xs)-1]

	c, hw := bg.Width(left, bg.Group[left][0])
	xmin = c - hw

	rg := bg.Group[right]
	c, hw = bg.Width(right, rg[len(rg)-1])
	xmax = c + hw

	return xmin, xmax
}

func (bg *BarGroups) recalc() {
	if bg.xs != nil {
		return
	}

	// xs: all x values in sorted order
	bg.xs = make([]float64, 0, len(bg.Group))
	for x := range bg.Group {
		bg.xs = append(bg.xs, x)
	}
	sort.Float64s(bg.xs)

	// md: minimum distance between two x values
	bg.md = 1
	if len(bg.xs) > 1 {
		bg.md = bg.xs[1] - bg.xs[0]
		for i := 2; i < len(bg.xs); i++ {
			bg.md = math.Min(bg.md, bg.xs[i]-bg.xs[i-1])
		}
	}

	// lg: largest group size
	bg.lg = 0
	for _, is := range bg.Group {
		bg.lg = max(bg.lg, len(is))
	}
}
