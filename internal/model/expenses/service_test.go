package expenses

import (
	"context"
	"testing"
	"time"

	"github.com/gojuno/minimock/v3"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"max.ks1230/spend-easy/internal/entity/expense"
	"max.ks1230/spend-easy/internal/model/expenses/mock"
	"max.ks1230/spend-easy/internal/model/storage"
)

type fixture struct {
	store    *storage.InMemStorage
	reports  *mock.ReportInvalidatorMock
	listener *mock.SavedListenerMock
	service  *Service
}

func newFixture(m *minimock.Controller) *fixture {
	f := &fixture{
		store:    storage.NewInMemStorage(),
		reports:  mock.NewReportInvalidatorMock(m),
		listener: mock.NewSavedListenerMock(m),
	}
	f.service = NewService(f.store, f.reports, f.listener)
	return f
}

var june10 = time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)

func Test_OnAdd_ShouldStoreInvalidateAndNotify(t *testing.T) {
	ctx := context.Background()
	m := minimock.NewController(t)
	defer m.Finish()
	f := newFixture(m)
	f.reports.InvalidateMock.Expect(june10).Return(nil)
	f.listener.ExpenseSavedMock.Return(true)

	e, err := f.service.Add(ctx, "Lunch", decimal.NewFromInt(250), june10, expense.Food)

	require.NoError(t, err)
	stored, err := f.store.GetExpense(ctx, e.ID)
	require.NoError(t, err)
	assert.Equal(t, "Lunch", stored.Title)
	assert.Equal(t, uint64(1), f.reports.InvalidateAfterCounter())
	assert.Equal(t, uint64(1), f.listener.ExpenseSavedAfterCounter())
}

func Test_OnAdd_ShouldRejectNegativeAmount(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	f := newFixture(m)

	_, err := f.service.Add(context.Background(), "Refund", decimal.NewFromInt(-5), june10, expense.Food)

	assert.True(t, errors.Is(err, expense.ErrNegativeAmount))
	assert.Zero(t, f.reports.InvalidateBeforeCounter())
	assert.Zero(t, f.listener.ExpenseSavedBeforeCounter())
}

func Test_OnAdd_ShouldAcceptZeroAmount(t *testing.T) {
	ctx := context.Background()
	m := minimock.NewController(t)
	defer m.Finish()
	f := newFixture(m)
	f.reports.InvalidateMock.Expect(june10).Return(nil)
	f.listener.ExpenseSavedMock.Return(true)

	e, err := f.service.Add(ctx, "Free sample", decimal.Zero, june10, expense.Food)

	require.NoError(t, err)
	assert.True(t, e.Amount.IsZero())
}

func Test_OnAdd_ShouldIgnoreInvalidationFailure(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	f := newFixture(m)
	f.reports.InvalidateMock.Return(errors.New("memcache is down"))
	f.listener.ExpenseSavedMock.Return(true)

	_, err := f.service.Add(context.Background(), "Taxi", decimal.NewFromInt(300), june10, expense.Transport)

	assert.NoError(t, err)
	assert.Equal(t, uint64(1), f.listener.ExpenseSavedAfterCounter())
}

func Test_OnUpdate_ShouldInvalidateOldAndNewDates(t *testing.T) {
	ctx := context.Background()
	m := minimock.NewController(t)
	defer m.Finish()
	f := newFixture(m)
	moved := june10.AddDate(0, 1, 0)
	f.reports.InvalidateMock.When(june10).Then(nil)
	f.reports.InvalidateMock.When(moved).Then(nil)
	f.listener.ExpenseSavedMock.Return(true)

	e, err := f.service.Add(ctx, "Rent", decimal.NewFromInt(9000), june10, expense.Bills)
	require.NoError(t, err)

	e.Date = moved
	e.Amount = decimal.NewFromInt(9500)
	require.NoError(t, f.service.Update(ctx, e))

	assert.Equal(t, uint64(3), f.reports.InvalidateAfterCounter())
	assert.Equal(t, uint64(2), f.listener.ExpenseSavedAfterCounter())
	stored, err := f.store.GetExpense(ctx, e.ID)
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(9500).Equal(stored.Amount))
}

func Test_OnUpdate_ShouldFailForMissingExpense(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	f := newFixture(m)
	e, err := expense.New("Ghost", decimal.NewFromInt(1), june10, expense.Other)
	require.NoError(t, err)

	err = f.service.Update(context.Background(), e)

	assert.True(t, errors.Is(err, storage.ErrNotFound))
	assert.Zero(t, f.listener.ExpenseSavedBeforeCounter())
}

func Test_OnDelete_ShouldRemoveAndInvalidate(t *testing.T) {
	ctx := context.Background()
	m := minimock.NewController(t)
	defer m.Finish()
	f := newFixture(m)
	f.reports.InvalidateMock.Expect(june10).Return(nil)
	f.listener.ExpenseSavedMock.Return(true)
	e, err := f.service.Add(ctx, "Movie", decimal.NewFromInt(400), june10, expense.Entertainment)
	require.NoError(t, err)

	require.NoError(t, f.service.Delete(ctx, e.ID))

	_, err = f.store.GetExpense(ctx, e.ID)
	assert.True(t, errors.Is(err, storage.ErrNotFound))
	assert.Equal(t, uint64(2), f.reports.InvalidateAfterCounter())
	assert.Equal(t, uint64(1), f.listener.ExpenseSavedAfterCounter())
	assert.Error(t, f.service.Delete(ctx, uuid.New()))
}
