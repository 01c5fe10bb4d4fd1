package donut

import (
	"math"

	"max.ks1230/spend-easy/internal/entity/expense"
	"max.ks1230/spend-easy/internal/model/analytics"
)

const (
	DefaultSize = 280
	// golden ratio hole
	innerRatio = 0.618
	fullCircle = 360.0
	// the first slice starts at 12 o'clock
	topOffset = 90.0
)

type Point struct {
	X, Y float64
}

// Chart describes a donut drawn in a Size x Size square.
type Chart struct {
	size float64
}

func NewChart(size float64) *Chart {
	if size <= 0 {
		size = DefaultSize
	}
	return &Chart{size: size}
}

func (c *Chart) Size() float64 {
	return c.size
}

func (c *Chart) Center() Point {
	return Point{X: c.size / 2, Y: c.size / 2}
}

func (c *Chart) OuterRadius() float64 {
	return c.size / 2
}

func (c *Chart) InnerRadius() float64 {
	return c.OuterRadius() * innerRatio
}

// Slice is the angular span of one category, in degrees clockwise from the top.
type Slice struct {
	Category expense.Category
	Start    float64
	End      float64
}

func (s Slice) contains(angle float64) bool {
	return angle >= s.Start && angle < s.End
}

// Slices lays the totals out clockwise in the given order. Nothing is returned
// when the grand total is not positive.
func Slices(totals []analytics.CategoryTotal) []Slice {
	grand := analytics.GrandTotal(totals)
	if !grand.IsPositive() {
		return nil
	}
	grandF := grand.InexactFloat64()

	res := make([]Slice, 0, len(totals))
	start := 0.0
	last := -1
	for _, t := range totals {
		width := fullCircle * t.TotalAmount.InexactFloat64() / grandF
		res = append(res, Slice{Category: t.Category, Start: start, End: start + width})
		if width > 0 {
			last = len(res) - 1
		}
		start += width
	}
	// absorb floating point drift so the circle is closed
	if last >= 0 {
		res[last].End = fullCircle
	}
	return res
}

// angleOf returns the clockwise angle of p measured from 12 o'clock and the
// distance of p from the center.
func (c *Chart) angleOf(p Point) (angle, distance float64) {
	center := c.Center()
	dx, dy := p.X-center.X, p.Y-center.Y
	distance = math.Sqrt(dx*dx + dy*dy)

	raw := math.Atan2(dy, dx) * 180 / math.Pi
	if raw < 0 {
		raw += fullCircle
	}
	return math.Mod(raw+topOffset, fullCircle), distance
}

func (c *Chart) onRing(distance float64) bool {
	return distance >= c.InnerRadius() && distance <= c.OuterRadius()
}

// CategoryAt returns the category under p, if p lies on the ring.
func (c *Chart) CategoryAt(p Point, totals []analytics.CategoryTotal) (expense.Category, bool) {
	angle, distance := c.angleOf(p)
	if !c.onRing(distance) {
		return "", false
	}
	for _, s := range Slices(totals) {
		if s.contains(angle) {
			return s.Category, true
		}
	}
	return "", false
}

// HitTest toggles the category under p in sel. Taps off the ring or on an
// empty chart leave sel untouched.
func (c *Chart) HitTest(p Point, totals []analytics.CategoryTotal, sel *Selection) (expense.Category, bool) {
	category, ok := c.CategoryAt(p, totals)
	if !ok {
		return "", false
	}
	if sel != nil {
		sel.Toggle(category)
	}
	return category, true
}
