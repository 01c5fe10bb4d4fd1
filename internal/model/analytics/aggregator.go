package analytics

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"max.ks1230/spend-easy/internal/entity/expense"
)

var hundred = decimal.NewFromInt(100)

type CategoryTotal struct {
	Category         expense.Category `json:"category"`
	TotalAmount      decimal.Decimal  `json:"total_amount"`
	TransactionCount int              `json:"transaction_count"`
}

// FilterByPeriod keeps the expenses that fall into the same calendar day or
// month as ref, in ref's location.
func FilterByPeriod(exps []expense.Expense, ref time.Time, granularity Granularity) []expense.Expense {
	from, to := PeriodRange(ref, granularity)
	res := make([]expense.Expense, 0)
	for _, exp := range exps {
		if inRange(exp.Date, from, to) {
			res = append(res, exp)
		}
	}
	return res
}

func inRange(t, from, to time.Time) bool {
	return !t.Before(from) && !t.After(to)
}

// GroupByCategory sums expenses per category. The result is ordered by total
// descending; equal totals keep the order in which categories were first seen.
func GroupByCategory(exps []expense.Expense) []CategoryTotal {
	index := make(map[expense.Category]int)
	records := make([]CategoryTotal, 0)
	for _, exp := range exps {
		i, ok := index[exp.Category]
		if !ok {
			i = len(records)
			index[exp.Category] = i
			records = append(records, CategoryTotal{Category: exp.Category, TotalAmount: decimal.Zero})
		}
		records[i].TotalAmount = records[i].TotalAmount.Add(exp.Amount)
		records[i].TransactionCount++
	}
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].TotalAmount.GreaterThan(records[j].TotalAmount)
	})
	return records
}

func GrandTotal(totals []CategoryTotal) decimal.Decimal {
	sum := decimal.Zero
	for _, t := range totals {
		sum = sum.Add(t.TotalAmount)
	}
	return sum
}

// PercentageOf returns the rounded share of grandTotal taken by ct.
// A non-positive grandTotal yields 0.
func PercentageOf(ct CategoryTotal, grandTotal decimal.Decimal) int {
	if !grandTotal.IsPositive() {
		return 0
	}
	return int(ct.TotalAmount.Mul(hundred).Div(grandTotal).Round(0).IntPart())
}
