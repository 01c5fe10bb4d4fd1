package analytics

import (
	"context"
	"testing"
	"time"

	"github.com/bradfitz/gomemcache/memcache"
	"github.com/gojuno/minimock/v3"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"max.ks1230/spend-easy/internal/entity/expense"
	"max.ks1230/spend-easy/internal/model/analytics/mock"
)

func Test_OnGenerateReport_ShouldQueryMonthAndComputeShares(t *testing.T) {
	ctx := context.Background()

	m := minimock.NewController(t)
	defer m.Finish()
	storage := mock.NewExpensesStorageMock(m)

	ref := time.Date(2024, time.March, 10, 12, 0, 0, 0, time.UTC)
	storage.QueryExpensesMock.
		Inspect(func(_ context.Context, from, to time.Time) {
			assert.Equal(m, time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC), from)
			assert.Equal(m, 31, to.Day())
		}).
		Return([]expense.Expense{
			exp(expense.Bills, 1000, ref),
			exp(expense.Shopping, 1500, ref),
			exp(expense.Shopping, 100, ref),
		}, nil)

	generator := NewGenerator(storage, nil, WithLocation(time.UTC))
	report, err := generator.GenerateReport(ctx, ref, Month)
	require.NoError(t, err)

	assert.Equal(t, "2600", report.TotalAmount.String())
	require.Len(t, report.Records, 2)
	assert.Equal(t, expense.Shopping, report.Records[0].Category)
	assert.Equal(t, 62, report.Records[0].Percentage)
	assert.Equal(t, expense.Bills, report.Records[1].Category)
	assert.Equal(t, 38, report.Records[1].Percentage)
	assert.Len(t, report.Totals(), 2)
	assert.Contains(t, report.Format(), "Total: 2600.00")
}

func Test_OnGenerateReport_ShouldFailOnStorageError(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	storage := mock.NewExpensesStorageMock(m)
	storage.QueryExpensesMock.Return(nil, errors.New("connection refused"))

	report, err := NewGenerator(storage, nil).GenerateReport(context.Background(), time.Now(), Day)
	assert.Error(t, err)
	assert.Nil(t, report)
}

func Test_OnGenerateReport_ShouldRejectUnknownGranularity(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	storage := mock.NewExpensesStorageMock(m)

	_, err := NewGenerator(storage, nil).GenerateReport(context.Background(), time.Now(), Granularity("year"))
	assert.ErrorIs(t, err, ErrUnknownGranularity)
}

func Test_OnGenerateReport_ShouldServeFromCacheUntilInvalidated(t *testing.T) {
	ctx := context.Background()

	m := minimock.NewController(t)
	defer m.Finish()
	storage := mock.NewExpensesStorageMock(m)
	cache := mock.NewReportCacheMock(m)

	ref := time.Date(2024, time.March, 10, 12, 0, 0, 0, time.UTC)
	storage.QueryExpensesMock.Return([]expense.Expense{exp(expense.Food, 250, ref)}, nil)

	cached := make(map[string][]byte)
	cache.GetReportMock.Set(func(key string) ([]byte, error) {
		raw, ok := cached[key]
		if !ok {
			return nil, memcache.ErrCacheMiss
		}
		return raw, nil
	})
	cache.CacheReportMock.Set(func(key string, report []byte) error {
		cached[key] = report
		return nil
	})
	cache.InvalidateReportsMock.Set(func(keys []string) error {
		assert.Equal(m, []string{"report:day:1710028800", "report:month:1709251200"}, keys)
		for _, key := range keys {
			delete(cached, key)
		}
		return nil
	})

	generator := NewGenerator(storage, cache, WithLocation(time.UTC))
	first, err := generator.GenerateReport(ctx, ref, Day)
	require.NoError(t, err)
	second, err := generator.GenerateReport(ctx, ref, Day)
	require.NoError(t, err)

	assert.Equal(t, uint64(1), storage.QueryExpensesAfterCounter())
	assert.True(t, first.TotalAmount.Equal(second.TotalAmount))
	assert.Equal(t, expense.Food, second.Records[0].Category)

	require.NoError(t, generator.Invalidate(ref))
	assert.Equal(t, uint64(1), cache.InvalidateReportsAfterCounter())

	_, err = generator.GenerateReport(ctx, ref, Day)
	require.NoError(t, err)
	assert.Equal(t, uint64(2), storage.QueryExpensesAfterCounter())
	assert.Equal(t, uint64(2), cache.CacheReportAfterCounter())
}

func Test_OnInvalidate_ShouldDropKeysOfGeneratorZoneForForeignZoneDate(t *testing.T) {
	ctx := context.Background()

	m := minimock.NewController(t)
	defer m.Finish()
	storage := mock.NewExpensesStorageMock(m)
	cache := mock.NewReportCacheMock(m)

	ist := time.FixedZone("IST", 5*60*60+30*60)
	ref := time.Date(2024, time.June, 1, 10, 0, 0, 0, ist)
	storage.QueryExpensesMock.Return([]expense.Expense{exp(expense.Food, 250, ref)}, nil)

	var stored []string
	cache.GetReportMock.Return(nil, memcache.ErrCacheMiss)
	cache.CacheReportMock.
		Inspect(func(key string, _ []byte) {
			stored = append(stored, key)
		}).
		Return(nil)
	cache.InvalidateReportsMock.
		Expect([]string{"report:day:1717180200", "report:month:1717180200"}).
		Return(nil)

	generator := NewGenerator(storage, cache, WithLocation(ist))
	_, err := generator.GenerateReport(ctx, ref, Day)
	require.NoError(t, err)
	_, err = generator.GenerateReport(ctx, ref.UTC(), Month)
	require.NoError(t, err)
	assert.Equal(t, []string{"report:day:1717180200", "report:month:1717180200"}, stored)

	require.NoError(t, generator.Invalidate(ref.UTC()))
}
