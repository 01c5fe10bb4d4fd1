package donut

import (
	"math"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"max.ks1230/spend-easy/internal/entity/expense"
	"max.ks1230/spend-easy/internal/model/analytics"
)

func total(c expense.Category, amount int64) analytics.CategoryTotal {
	return analytics.CategoryTotal{Category: c, TotalAmount: decimal.NewFromInt(amount), TransactionCount: 1}
}

// pointAt returns the point at radius r and the given clockwise angle from the top.
func pointAt(c *Chart, r, deg float64) Point {
	rad := (deg - topOffset) * math.Pi / 180
	center := c.Center()
	return Point{X: center.X + r*math.Cos(rad), Y: center.Y + r*math.Sin(rad)}
}

func midRadius(c *Chart) float64 {
	return (c.InnerRadius() + c.OuterRadius()) / 2
}

func Test_OnNewChart_ShouldUseGoldenRatioHole(t *testing.T) {
	c := NewChart(0)

	assert.Equal(t, float64(DefaultSize), c.Size())
	assert.Equal(t, Point{X: 140, Y: 140}, c.Center())
	assert.Equal(t, 140.0, c.OuterRadius())
	assert.InDelta(t, 86.52, c.InnerRadius(), 1e-9)
}

func Test_OnHitTest_ShouldSelectSingleCategoryAtAnyAngle(t *testing.T) {
	c := NewChart(DefaultSize)
	totals := []analytics.CategoryTotal{total(expense.Food, 500)}

	for deg := 0.0; deg < 360; deg += 7.5 {
		sel := NewSelection()
		category, ok := c.HitTest(pointAt(c, midRadius(c), deg), totals, sel)
		require.True(t, ok, "angle %v", deg)
		assert.Equal(t, expense.Food, category)
		assert.True(t, sel.Contains(expense.Food))
	}
}

func Test_OnHitTest_ShouldIgnoreTapsOffTheRing(t *testing.T) {
	c := NewChart(DefaultSize)
	totals := []analytics.CategoryTotal{total(expense.Food, 500), total(expense.Bills, 100)}
	sel := NewSelection()

	for deg := 0.0; deg < 360; deg += 15 {
		_, ok := c.HitTest(pointAt(c, c.InnerRadius()-1, deg), totals, sel)
		assert.False(t, ok)
		_, ok = c.HitTest(pointAt(c, c.OuterRadius()+1, deg), totals, sel)
		assert.False(t, ok)
	}
	_, ok := c.HitTest(c.Center(), totals, sel)
	assert.False(t, ok)
	assert.Equal(t, 0, sel.Len())
}

func Test_OnHitTest_ShouldMapAnglesClockwiseFromTop(t *testing.T) {
	c := NewChart(DefaultSize)
	// Food covers [0, 270), Bills covers [270, 360)
	totals := []analytics.CategoryTotal{total(expense.Food, 750), total(expense.Bills, 250)}
	r := midRadius(c)
	center := c.Center()

	cases := []struct {
		name string
		p    Point
		want expense.Category
	}{
		{"top", Point{X: center.X, Y: center.Y - r}, expense.Food},
		{"right", Point{X: center.X + r, Y: center.Y}, expense.Food},
		{"bottom", Point{X: center.X, Y: center.Y + r}, expense.Food},
		{"left", Point{X: center.X - r, Y: center.Y}, expense.Bills},
		{"upper left", pointAt(c, r, 315), expense.Bills},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := c.CategoryAt(tc.p, totals)
			require.True(t, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func Test_OnHitTest_ShouldToggleBackOnSecondTap(t *testing.T) {
	c := NewChart(DefaultSize)
	totals := []analytics.CategoryTotal{total(expense.Food, 750), total(expense.Bills, 250)}
	sel := NewSelection()
	p := pointAt(c, midRadius(c), 300)

	_, ok := c.HitTest(p, totals, sel)
	require.True(t, ok)
	assert.Equal(t, []expense.Category{expense.Bills}, sel.Categories())

	_, ok = c.HitTest(p, totals, sel)
	require.True(t, ok)
	assert.Equal(t, 0, sel.Len())
}

func Test_OnHitTest_ShouldWorkWithZeroValueAndNilSelection(t *testing.T) {
	c := NewChart(DefaultSize)
	totals := []analytics.CategoryTotal{total(expense.Food, 750), total(expense.Bills, 250)}
	p := pointAt(c, midRadius(c), 300)

	var sel Selection
	category, ok := c.HitTest(p, totals, &sel)
	require.True(t, ok)
	assert.Equal(t, expense.Bills, category)
	assert.True(t, sel.Contains(expense.Bills))

	category, ok = c.HitTest(p, totals, nil)
	require.True(t, ok)
	assert.Equal(t, expense.Bills, category)

	var none *Selection
	assert.Equal(t, 0, none.Len())
	assert.Empty(t, none.Categories())
	assert.Equal(t, "Total", SelectionLabel(none))
	assert.Equal(t, "1000", SelectionTotal(none, totals).String())

	var state State
	state.SetPeriod(time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC), analytics.Month)
	assert.True(t, state.Selection.Toggle(expense.Food))
}

func Test_OnHitTest_ShouldIgnoreEmptyChart(t *testing.T) {
	c := NewChart(DefaultSize)
	sel := NewSelection()
	p := pointAt(c, midRadius(c), 45)

	_, ok := c.HitTest(p, nil, sel)
	assert.False(t, ok)
	_, ok = c.HitTest(p, []analytics.CategoryTotal{total(expense.Food, 0)}, sel)
	assert.False(t, ok)
	assert.Equal(t, 0, sel.Len())
}

func Test_OnSlices_ShouldCloseTheCircle(t *testing.T) {
	slices := Slices([]analytics.CategoryTotal{total(expense.Food, 1), total(expense.Bills, 1), total(expense.Health, 1)})

	require.Len(t, slices, 3)
	assert.Equal(t, 0.0, slices[0].Start)
	assert.InDelta(t, 120, slices[1].Start, 1e-9)
	assert.Equal(t, 360.0, slices[2].End)
}

func Test_OnSelectionTotal_ShouldDefaultToGrandTotal(t *testing.T) {
	totals := []analytics.CategoryTotal{total(expense.Food, 750), total(expense.Bills, 250), total(expense.Health, 40)}
	sel := NewSelection()

	assert.Equal(t, "1040", SelectionTotal(sel, totals).String())
	assert.Equal(t, "Total", SelectionLabel(sel))

	sel.Toggle(expense.Bills)
	assert.Equal(t, "250", SelectionTotal(sel, totals).String())
	assert.Equal(t, "Bills", SelectionLabel(sel))

	sel.Toggle(expense.Health)
	assert.Equal(t, "290", SelectionTotal(sel, totals).String())
	assert.Equal(t, "2 Categories", SelectionLabel(sel))
}

func Test_OnSetPeriod_ShouldResetSelectionWhenFilterChanges(t *testing.T) {
	ref := time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC)
	state := NewState(ref, analytics.Day)
	state.Selection.Toggle(expense.Food)

	state.SetPeriod(ref, analytics.Day)
	assert.Equal(t, 1, state.Selection.Len())

	state.SetPeriod(ref, analytics.Month)
	assert.Equal(t, 0, state.Selection.Len())

	state.Selection.Toggle(expense.Food)
	state.SetPeriod(ref.AddDate(0, -1, 0), analytics.Month)
	assert.Equal(t, 0, state.Selection.Len())
}
