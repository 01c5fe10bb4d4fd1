package donut

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"max.ks1230/spend-easy/internal/entity/expense"
	"max.ks1230/spend-easy/internal/model/analytics"
)

const totalLabel = "Total"

// Selection is the set of highlighted categories. The zero value is an empty
// selection ready to use, and a nil *Selection reads as empty.
type Selection struct {
	set map[expense.Category]struct{}
}

func NewSelection() *Selection {
	return &Selection{set: make(map[expense.Category]struct{})}
}

// Toggle adds or removes c and reports whether c is selected afterwards.
func (s *Selection) Toggle(c expense.Category) bool {
	if s.set == nil {
		s.set = make(map[expense.Category]struct{})
	}
	if _, ok := s.set[c]; ok {
		delete(s.set, c)
		return false
	}
	s.set[c] = struct{}{}
	return true
}

func (s *Selection) Contains(c expense.Category) bool {
	if s == nil {
		return false
	}
	_, ok := s.set[c]
	return ok
}

func (s *Selection) Len() int {
	if s == nil {
		return 0
	}
	return len(s.set)
}

func (s *Selection) Reset() {
	s.set = make(map[expense.Category]struct{})
}

// Categories lists the selection in the canonical category order, followed by
// any categories outside the canonical set sorted by name.
func (s *Selection) Categories() []expense.Category {
	if s == nil {
		return nil
	}
	res := make([]expense.Category, 0, len(s.set))
	for _, c := range expense.Categories {
		if s.Contains(c) {
			res = append(res, c)
		}
	}
	extra := make([]expense.Category, 0)
	for c := range s.set {
		if !c.Valid() {
			extra = append(extra, c)
		}
	}
	sort.Slice(extra, func(i, j int) bool { return extra[i] < extra[j] })
	return append(res, extra...)
}

// SelectionTotal sums the selected categories; an empty selection stands for
// every category.
func SelectionTotal(sel *Selection, totals []analytics.CategoryTotal) decimal.Decimal {
	if sel.Len() == 0 {
		return analytics.GrandTotal(totals)
	}
	sum := decimal.Zero
	for _, t := range totals {
		if sel.Contains(t.Category) {
			sum = sum.Add(t.TotalAmount)
		}
	}
	return sum
}

// SelectionLabel is the caption shown in the hole of the donut.
func SelectionLabel(sel *Selection) string {
	switch sel.Len() {
	case 0:
		return totalLabel
	case 1:
		return string(sel.Categories()[0])
	default:
		return fmt.Sprintf("%d Categories", sel.Len())
	}
}

// State ties a selection to the period it was made in.
type State struct {
	Reference   time.Time
	Granularity analytics.Granularity
	Selection   *Selection
}

func NewState(ref time.Time, granularity analytics.Granularity) *State {
	return &State{
		Reference:   ref,
		Granularity: granularity,
		Selection:   NewSelection(),
	}
}

// SetPeriod switches the active period and clears the selection when the
// period or the granularity changes.
func (s *State) SetPeriod(ref time.Time, granularity analytics.Granularity) {
	if ref.Equal(s.Reference) && granularity == s.Granularity {
		return
	}
	s.Reference, s.Granularity = ref, granularity
	if s.Selection == nil {
		s.Selection = NewSelection()
		return
	}
	s.Selection.Reset()
}
