package analytics

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"max.ks1230/spend-easy/internal/entity/expense"
)

func exp(category expense.Category, amount int64, date time.Time) expense.Expense {
	return expense.Expense{
		Title:    string(category),
		Amount:   decimal.NewFromInt(amount),
		Date:     date,
		Category: category,
	}
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 12, 0, 0, 0, time.UTC)
}

func Test_OnGroupByCategory_ShouldSumAndSortDescending(t *testing.T) {
	ref := day(2024, time.March, 10)
	totals := GroupByCategory([]expense.Expense{
		exp(expense.Bills, 1000, ref),
		exp(expense.Shopping, 1500, ref),
		exp(expense.Shopping, 100, ref),
		exp(expense.Food, 300, ref),
	})

	require.Len(t, totals, 3)
	assert.Equal(t, expense.Shopping, totals[0].Category)
	assert.Equal(t, "1600", totals[0].TotalAmount.String())
	assert.Equal(t, 2, totals[0].TransactionCount)
	assert.Equal(t, expense.Bills, totals[1].Category)
	assert.Equal(t, expense.Food, totals[2].Category)
	assert.Equal(t, 1, totals[2].TransactionCount)
}

func Test_OnGroupByCategory_ShouldKeepEncounterOrderForEqualTotals(t *testing.T) {
	ref := day(2024, time.March, 10)
	totals := GroupByCategory([]expense.Expense{
		exp(expense.Health, 200, ref),
		exp(expense.Transport, 200, ref),
		exp(expense.Food, 500, ref),
		exp(expense.Other, 100, ref),
		exp(expense.Other, 100, ref),
	})

	require.Len(t, totals, 4)
	assert.Equal(t, []expense.Category{expense.Food, expense.Health, expense.Transport, expense.Other},
		[]expense.Category{totals[0].Category, totals[1].Category, totals[2].Category, totals[3].Category})
}

func Test_OnGroupByCategory_ShouldConserveTotal(t *testing.T) {
	ref := day(2024, time.March, 10)
	exps := []expense.Expense{
		exp(expense.Food, 120, ref),
		exp(expense.Bills, 999, ref),
		exp(expense.Food, 1, ref),
		{Title: "coffee", Amount: decimal.RequireFromString("3.75"), Date: ref, Category: expense.Food},
	}

	totals := GroupByCategory(exps)
	assert.True(t, GrandTotal(totals).Equal(expense.Sum(exps)))
	assert.Equal(t, "1123.75", GrandTotal(totals).String())
}

func Test_OnGroupByCategory_ShouldReturnEmptyForNoExpenses(t *testing.T) {
	assert.Empty(t, GroupByCategory(nil))
	assert.True(t, GrandTotal(nil).IsZero())
}

func Test_OnFilterByPeriod_ShouldKeepSameDay(t *testing.T) {
	ref := time.Date(2024, time.March, 10, 8, 0, 0, 0, time.UTC)
	exps := []expense.Expense{
		exp(expense.Food, 1, time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC)),
		exp(expense.Food, 2, time.Date(2024, time.March, 10, 23, 59, 59, 0, time.UTC)),
		exp(expense.Food, 3, time.Date(2024, time.March, 11, 0, 0, 0, 0, time.UTC)),
		exp(expense.Food, 4, time.Date(2024, time.March, 9, 23, 59, 59, 0, time.UTC)),
	}

	res := FilterByPeriod(exps, ref, Day)
	require.Len(t, res, 2)
	assert.Equal(t, "1", res[0].Amount.String())
	assert.Equal(t, "2", res[1].Amount.String())
}

func Test_OnFilterByPeriod_ShouldKeepSameMonthAndYear(t *testing.T) {
	ref := day(2024, time.March, 10)
	exps := []expense.Expense{
		exp(expense.Food, 1, day(2024, time.March, 1)),
		exp(expense.Food, 2, day(2024, time.March, 31)),
		exp(expense.Food, 3, day(2023, time.March, 15)),
		exp(expense.Food, 4, day(2024, time.April, 1)),
	}

	res := FilterByPeriod(exps, ref, Month)
	require.Len(t, res, 2)
	assert.Equal(t, "3", expense.Sum(res).String())
}

func Test_OnFilterByPeriod_ShouldReturnEmptyForEmptyInput(t *testing.T) {
	res := FilterByPeriod(nil, day(2024, time.March, 10), Month)
	assert.NotNil(t, res)
	assert.Empty(t, res)
}

func Test_OnPercentageOf_ShouldRoundShare(t *testing.T) {
	grand := decimal.NewFromInt(3)
	ct := CategoryTotal{Category: expense.Food, TotalAmount: decimal.NewFromInt(2)}

	assert.Equal(t, 67, PercentageOf(ct, grand))
	assert.Equal(t, 100, PercentageOf(ct, decimal.NewFromInt(2)))
}

func Test_OnPercentageOf_ShouldReturnZeroForZeroGrandTotal(t *testing.T) {
	ct := CategoryTotal{Category: expense.Food, TotalAmount: decimal.Zero}
	assert.Equal(t, 0, PercentageOf(ct, decimal.Zero))
}

func Test_OnPercentageOf_ShouldSumCloseToHundred(t *testing.T) {
	ref := day(2024, time.March, 10)
	totals := GroupByCategory([]expense.Expense{
		exp(expense.Food, 1, ref),
		exp(expense.Bills, 1, ref),
		exp(expense.Health, 1, ref),
	})
	grand := GrandTotal(totals)

	sum := 0
	for _, ct := range totals {
		p := PercentageOf(ct, grand)
		assert.GreaterOrEqual(t, p, 0)
		assert.LessOrEqual(t, p, 100)
		sum += p
	}
	assert.InDelta(t, 100, sum, float64(len(totals)-1))
}
