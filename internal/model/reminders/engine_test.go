package reminders

import (
	"context"
	"testing"
	"time"

	"github.com/gojuno/minimock/v3"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	appconfig "max.ks1230/spend-easy/internal/config"
	"max.ks1230/spend-easy/internal/entity/expense"
	"max.ks1230/spend-easy/internal/entity/notification"
	"max.ks1230/spend-easy/internal/model/reminders/mock"
	"max.ks1230/spend-easy/internal/model/storage"
)

func testConfig() *appconfig.RemindersConfig {
	return &appconfig.RemindersConfig{
		FirstMilestone:       10000,
		SecondMilestone:      15000,
		DailyHour:            20,
		EndOfMonthDays:       7,
		InactivityHours:      24,
		PassIntervalMinutes:  60,
		NotificationDelaySec: 1,
	}
}

type fixture struct {
	store   *storage.InMemStorage
	gateway *mock.GatewayMock
	current time.Time
	engine  *Engine

	scheduled []notification.Notification
	cancelled [][]string
}

func newFixture(t *testing.T, m *minimock.Controller, current time.Time, cfg *appconfig.RemindersConfig) *fixture {
	t.Helper()
	f := &fixture{
		store:   storage.NewInMemStorage(),
		gateway: mock.NewGatewayMock(m),
		current: current,
	}
	f.engine = NewEngine(f.store, f.gateway, f.store, cfg,
		WithClock(func() time.Time { return f.current }),
		WithLocation(time.UTC))

	// results are set per test, a call without them fails the test
	f.gateway.ScheduleMock.Inspect(func(_ context.Context, n notification.Notification) {
		f.scheduled = append(f.scheduled, n)
	})
	f.gateway.CancelPendingMock.Inspect(func(_ context.Context, ids []string) {
		f.cancelled = append(f.cancelled, ids)
	})
	return f
}

func (f *fixture) forget() {
	f.scheduled = nil
	f.cancelled = nil
}

func (f *fixture) spend(t *testing.T, amount int64, date time.Time) {
	t.Helper()
	e, err := expense.New("item", decimal.NewFromInt(amount), date, expense.Shopping)
	require.NoError(t, err)
	require.NoError(t, f.store.SaveExpense(context.Background(), e))
}

func kinds(intents []Intent) []Kind {
	res := make([]Kind, 0, len(intents))
	for _, i := range intents {
		res = append(res, i.Kind)
	}
	return res
}

func Test_OnSmartPass_ShouldScheduleFirstMilestoneOnly(t *testing.T) {
	ctx := context.Background()
	m := minimock.NewController(t)
	defer m.Finish()

	// June has 30 days
	f := newFixture(t, m, time.Date(2024, time.June, 15, 18, 0, 0, 0, time.UTC), testConfig())
	f.spend(t, 7000, time.Date(2024, time.June, 3, 10, 0, 0, 0, time.UTC))
	f.spend(t, 5000, time.Date(2024, time.June, 15, 9, 0, 0, 0, time.UTC))
	f.gateway.CancelPendingMock.Return(nil).ScheduleMock.Return(nil)

	intents, err := f.engine.RunSmartPass(ctx)
	require.NoError(t, err)

	assert.Equal(t, []Kind{KindMilestone10k}, kinds(intents))
	scheduled := f.scheduled
	require.Len(t, scheduled, 1)
	assert.Equal(t, "milestone10k", scheduled[0].ID)
	assert.Equal(t, "Spending Alert", scheduled[0].Title)
	assert.Equal(t, "Today is day 15 & you have already spent ₹10,000. Spend the rest of the money wisely.", scheduled[0].Body)
	assert.Equal(t, notification.AfterDelay(time.Second), scheduled[0].Trigger)
	assert.Equal(t, [][]string{{"milestone10k", "milestone15k", "endOfMonthAdvice", "monthlyComparison"}},
		f.cancelled)

	monthStart := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)
	shown, err := f.store.IsShown(ctx, AlertKey(KindMilestone10k, monthStart))
	require.NoError(t, err)
	assert.True(t, shown)
	assert.Equal(t, "alert_milestone_10k_1717200000", AlertKey(KindMilestone10k, monthStart))
}

func Test_OnSmartPass_ShouldScheduleSecondMilestoneAndEndOfMonth(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()

	f := newFixture(t, m, time.Date(2024, time.June, 25, 18, 0, 0, 0, time.UTC), testConfig())
	f.spend(t, 16000, time.Date(2024, time.June, 20, 10, 0, 0, 0, time.UTC))
	f.gateway.CancelPendingMock.Return(nil).ScheduleMock.Return(nil)

	intents, err := f.engine.RunSmartPass(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []Kind{KindMilestone15k, KindEndOfMonth}, kinds(intents))
	assert.Equal(t, "Today is day 25 & you have already spent ₹15,000. Please control your spendings.",
		intents[0].Notification.Body)
	assert.Equal(t, "endOfMonthAdvice", intents[1].Notification.ID)
	assert.Equal(t, "Control your spendings for the remaining days.", intents[1].Notification.Body)
	assert.Equal(t, [][]string{{"milestone10k", "milestone15k", "endOfMonthAdvice", "monthlyComparison"}},
		f.cancelled)
	require.Len(t, f.scheduled, 2)
	assert.Equal(t, "milestone15k", f.scheduled[0].ID)
	assert.Equal(t, "endOfMonthAdvice", f.scheduled[1].ID)
}

func Test_OnSmartPass_ShouldPickEndOfMonthAdviceByBand(t *testing.T) {
	cases := []struct {
		name  string
		spent int64
		body  string
	}{
		{"nothing spent", 0, "You have money left! You can spend it on something useful or entertainment."},
		{"first milestone exactly", 10000, "You have money left! You can spend it on something useful or entertainment."},
		{"second milestone exactly", 15000, "Money spent this month was calculated. You are within limits."},
		{"above second milestone", 15001, "Control your spendings for the remaining days."},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := minimock.NewController(t)
			defer m.Finish()

			f := newFixture(t, m, time.Date(2024, time.June, 30, 12, 0, 0, 0, time.UTC), testConfig())
			if tc.spent > 0 {
				f.spend(t, tc.spent, time.Date(2024, time.June, 2, 10, 0, 0, 0, time.UTC))
			}
			f.gateway.CancelPendingMock.Return(nil).ScheduleMock.Return(nil)

			intents, err := f.engine.RunSmartPass(context.Background())
			require.NoError(t, err)
			require.NotEmpty(t, intents)

			last := intents[len(intents)-1]
			assert.Equal(t, KindEndOfMonth, last.Kind)
			assert.Equal(t, tc.body, last.Notification.Body)
		})
	}
}

func Test_OnSmartPass_ShouldScheduleNothingOnRerun(t *testing.T) {
	ctx := context.Background()
	m := minimock.NewController(t)
	defer m.Finish()

	f := newFixture(t, m, time.Date(2024, time.June, 25, 18, 0, 0, 0, time.UTC), testConfig())
	f.spend(t, 16000, time.Date(2024, time.June, 20, 10, 0, 0, 0, time.UTC))
	f.spend(t, 500, time.Date(2024, time.May, 20, 10, 0, 0, 0, time.UTC))
	f.gateway.CancelPendingMock.Return(nil).ScheduleMock.Return(nil)

	intents, err := f.engine.RunSmartPass(ctx)
	require.NoError(t, err)
	assert.Len(t, intents, 3)

	f.forget()
	f.current = f.current.Add(time.Hour)

	intents, err = f.engine.RunSmartPass(ctx)
	require.NoError(t, err)
	assert.Empty(t, intents)
	assert.Empty(t, f.scheduled)
	assert.Empty(t, f.cancelled)
	assert.Equal(t, uint64(1), f.gateway.CancelPendingAfterCounter())
}

func Test_OnSmartPass_ShouldCompareWithPreviousMonthOnce(t *testing.T) {
	ctx := context.Background()
	m := minimock.NewController(t)
	defer m.Finish()

	f := newFixture(t, m, time.Date(2024, time.June, 1, 9, 0, 0, 0, time.UTC), testConfig())
	f.spend(t, 3000, time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC))
	f.spend(t, 5000, time.Date(2024, time.May, 31, 22, 30, 0, 0, time.UTC))
	f.spend(t, 9999, time.Date(2024, time.April, 30, 22, 30, 0, 0, time.UTC))
	f.gateway.CancelPendingMock.Return(nil).ScheduleMock.Return(nil)

	intents, err := f.engine.RunSmartPass(ctx)
	require.NoError(t, err)
	require.Equal(t, []Kind{KindMonthlyComparison}, kinds(intents))
	assert.Equal(t, "New Month Started", intents[0].Notification.Title)
	assert.Contains(t, intents[0].Notification.Body, "8000")

	f.forget()
	intents, err = f.engine.RunSmartPass(ctx)
	require.NoError(t, err)
	assert.Empty(t, intents)
	assert.Empty(t, f.scheduled)
	assert.Empty(t, f.cancelled)
}

func Test_OnSmartPass_ShouldSkipComparisonWithoutPreviousSpending(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()

	f := newFixture(t, m, time.Date(2024, time.June, 1, 9, 0, 0, 0, time.UTC), testConfig())

	intents, err := f.engine.RunSmartPass(context.Background())
	require.NoError(t, err)
	assert.Empty(t, intents)
}

func Test_OnSmartPass_ShouldAbortOnQueryFailure(t *testing.T) {
	ctx := context.Background()
	m := minimock.NewController(t)
	defer m.Finish()

	exps := mock.NewExpensesStorageMock(m)
	exps.QueryExpensesMock.Return(nil, errors.New("disk I/O error"))
	gateway := mock.NewGatewayMock(m)
	flags := storage.NewInMemStorage()
	current := time.Date(2024, time.June, 28, 9, 0, 0, 0, time.UTC)

	engine := NewEngine(exps, gateway, flags, testConfig(),
		WithClock(func() time.Time { return current }), WithLocation(time.UTC))

	intents, err := engine.RunSmartPass(ctx)
	assert.Error(t, err)
	assert.Empty(t, intents)
	assert.Equal(t, uint64(0), gateway.ScheduleBeforeCounter())
	assert.Equal(t, uint64(0), gateway.CancelPendingBeforeCounter())

	shown, err := flags.IsShown(ctx, AlertKey(KindEndOfMonth, time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)))
	require.NoError(t, err)
	assert.False(t, shown)
}

func Test_OnSmartPass_ShouldRetryAfterScheduleFailure(t *testing.T) {
	ctx := context.Background()
	m := minimock.NewController(t)
	defer m.Finish()

	f := newFixture(t, m, time.Date(2024, time.June, 15, 18, 0, 0, 0, time.UTC), testConfig())
	f.spend(t, 12000, time.Date(2024, time.June, 3, 10, 0, 0, 0, time.UTC))
	f.gateway.CancelPendingMock.Return(nil).ScheduleMock.Return(errors.New("not authorized"))

	intents, err := f.engine.RunSmartPass(ctx)
	require.Error(t, err)
	assert.Empty(t, intents)

	key := AlertKey(KindMilestone10k, time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC))
	shown, err := f.store.IsShown(ctx, key)
	require.NoError(t, err)
	assert.False(t, shown)

	f.gateway.ScheduleMock.Return(nil)
	intents, err = f.engine.RunSmartPass(ctx)
	require.NoError(t, err)
	assert.Equal(t, []Kind{KindMilestone10k}, kinds(intents))
}

func Test_OnSmartPass_ShouldPruneOldFlags(t *testing.T) {
	ctx := context.Background()
	m := minimock.NewController(t)
	defer m.Finish()

	cfg := testConfig()
	cfg.FlagRetentionMonths = 2
	f := newFixture(t, m, time.Date(2024, time.June, 10, 9, 0, 0, 0, time.UTC), cfg)

	jan := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	apr := time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, f.store.MarkShown(ctx, AlertKey(KindEndOfMonth, jan), jan))
	require.NoError(t, f.store.MarkShown(ctx, AlertKey(KindEndOfMonth, apr), apr))

	_, err := f.engine.RunSmartPass(ctx)
	require.NoError(t, err)

	shown, err := f.store.IsShown(ctx, AlertKey(KindEndOfMonth, jan))
	require.NoError(t, err)
	assert.False(t, shown)
	shown, err = f.store.IsShown(ctx, AlertKey(KindEndOfMonth, apr))
	require.NoError(t, err)
	assert.True(t, shown)
}

func Test_OnCheckInactivity_ShouldRecordFirstOpenThenNudge(t *testing.T) {
	ctx := context.Background()
	m := minimock.NewController(t)
	defer m.Finish()

	start := time.Date(2024, time.June, 10, 9, 0, 0, 0, time.UTC)
	f := newFixture(t, m, start, testConfig())
	f.gateway.ScheduleMock.Return(nil)

	intents, err := f.engine.CheckInactivity(ctx)
	require.NoError(t, err)
	assert.Empty(t, intents)
	last, ok, err := f.store.LastAppOpen(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, last.Equal(start))

	f.current = start.Add(23 * time.Hour)
	intents, err = f.engine.CheckInactivity(ctx)
	require.NoError(t, err)
	assert.Empty(t, intents)

	f.current = start.Add(24 * time.Hour)
	intents, err = f.engine.CheckInactivity(ctx)
	require.NoError(t, err)
	require.Equal(t, []Kind{KindInactivity}, kinds(intents))
	assert.Equal(t, "inactivityReminder", intents[0].Notification.ID)
}

func Test_OnScheduleDailyReminder_ShouldRepeatAtEightPM(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()

	f := newFixture(t, m, time.Date(2024, time.June, 10, 9, 0, 0, 0, time.UTC), testConfig())
	f.gateway.ScheduleMock.Return(nil)

	intent, err := f.engine.ScheduleDailyReminder(context.Background())
	require.NoError(t, err)
	assert.Equal(t, KindDailyReminder, intent.Kind)
	assert.Equal(t, notification.DailyAt(20, 0), intent.Notification.Trigger)
	assert.Equal(t, "dailyReminder", intent.Notification.ID)
}

func Test_OnForeground_ShouldStopWhenPermissionFails(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()

	f := newFixture(t, m, time.Date(2024, time.June, 10, 9, 0, 0, 0, time.UTC), testConfig())
	f.gateway.RequestPermissionMock.Return(errors.New("denied"))

	intents, err := f.engine.OnForeground(context.Background())
	assert.Error(t, err)
	assert.Empty(t, intents)
	assert.Empty(t, f.scheduled)
}

func Test_OnForeground_ShouldRunEveryStep(t *testing.T) {
	ctx := context.Background()
	m := minimock.NewController(t)
	defer m.Finish()

	f := newFixture(t, m, time.Date(2024, time.June, 27, 9, 0, 0, 0, time.UTC), testConfig())
	require.NoError(t, f.store.SetLastAppOpen(ctx, f.current.Add(-48*time.Hour)))
	f.spend(t, 11000, time.Date(2024, time.June, 20, 10, 0, 0, 0, time.UTC))
	f.gateway.RequestPermissionMock.Return(nil).
		CancelPendingMock.Return(nil).
		ScheduleMock.Return(nil)

	intents, err := f.engine.OnForeground(ctx)
	require.NoError(t, err)
	assert.Equal(t, []Kind{KindDailyReminder, KindInactivity, KindMilestone10k, KindEndOfMonth}, kinds(intents))
	assert.Equal(t, uint64(1), f.gateway.RequestPermissionAfterCounter())
	assert.Len(t, f.cancelled, 1)
	assert.Len(t, f.scheduled, 4)
}

func Test_OnExpenseSaved_ShouldRecordOpenAndRunPass(t *testing.T) {
	ctx := context.Background()
	m := minimock.NewController(t)
	defer m.Finish()

	f := newFixture(t, m, time.Date(2024, time.June, 10, 9, 0, 0, 0, time.UTC), testConfig())
	f.spend(t, 15000, time.Date(2024, time.June, 10, 8, 0, 0, 0, time.UTC))
	f.gateway.CancelPendingMock.Return(nil).ScheduleMock.Return(nil)

	intents, err := f.engine.OnExpenseSaved(ctx)
	require.NoError(t, err)
	assert.Equal(t, []Kind{KindMilestone15k}, kinds(intents))

	last, ok, err := f.store.LastAppOpen(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.True(t, last.Equal(f.current))
}

func Test_OnSmartPass_ShouldCancelPendingOnlyWithCandidates(t *testing.T) {
	ctx := context.Background()
	monthStart := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		name    string
		prepare func(t *testing.T, f *fixture)
	}{
		{
			name:    "nothing crossed",
			prepare: func(t *testing.T, f *fixture) { f.spend(t, 500, monthStart) },
		},
		{
			name: "everything already shown",
			prepare: func(t *testing.T, f *fixture) {
				f.spend(t, 12000, monthStart)
				f.spend(t, 700, monthStart.AddDate(0, -1, 0))
				require.NoError(t, f.store.MarkShown(ctx, AlertKey(KindMilestone10k, monthStart), monthStart))
				require.NoError(t, f.store.MarkShown(ctx, AlertKey(KindMonthlyComparison, monthStart), monthStart))
			},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := minimock.NewController(t)
			defer m.Finish()

			// no results are set on the gateway, so any call fails the test
			f := newFixture(t, m, time.Date(2024, time.June, 12, 9, 0, 0, 0, time.UTC), testConfig())
			tc.prepare(t, f)

			intents, err := f.engine.RunSmartPass(ctx)
			require.NoError(t, err)
			assert.Empty(t, intents)
			assert.Equal(t, uint64(0), f.gateway.CancelPendingBeforeCounter())
			assert.Empty(t, f.cancelled)
		})
	}
}
