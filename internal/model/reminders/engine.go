// Package reminders decides which spending reminders to hand to the
// notification gateway and remembers which ones were already shown.
//
// Passes are not atomic: callers must run at most one pass at a time
// (Runner does that).
package reminders

import (
	"context"
	"time"

	"github.com/jinzhu/now"
	"github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/ext"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"max.ks1230/spend-easy/internal/entity/expense"
	"max.ks1230/spend-easy/internal/entity/notification"
	"max.ks1230/spend-easy/internal/logger"
	"max.ks1230/spend-easy/internal/model/analytics"
)

//go:generate minimock -i max.ks1230/spend-easy/internal/model/reminders.expensesStorage -o ./mock/expenses_storage_mock.go -n ExpensesStorageMock -p mock
type expensesStorage interface {
	QueryExpenses(ctx context.Context, from, to time.Time) ([]expense.Expense, error)
}

//go:generate minimock -i max.ks1230/spend-easy/internal/model/reminders.notificationGateway -o ./mock/gateway_mock.go -n GatewayMock -p mock
type notificationGateway interface {
	RequestPermission(ctx context.Context) error
	Schedule(ctx context.Context, n notification.Notification) error
	CancelPending(ctx context.Context, ids []string) error
}

// FlagStore persists the reminder bookkeeping.
type FlagStore interface {
	IsShown(ctx context.Context, key string) (bool, error)
	MarkShown(ctx context.Context, key string, periodStart time.Time) error
	LastAppOpen(ctx context.Context) (time.Time, bool, error)
	SetLastAppOpen(ctx context.Context, t time.Time) error
	PruneBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

type config interface {
	Milestones() (first, second decimal.Decimal)
	DailyReminderHour() int
	EndOfMonthWindow() int
	InactivityThreshold() time.Duration
	RetentionMonths() int
	NotificationDelay() time.Duration
}

type Engine struct {
	storage expensesStorage
	gateway notificationGateway
	flags   FlagStore

	firstMilestone  decimal.Decimal
	secondMilestone decimal.Decimal
	dailyHour       int
	endOfMonthDays  int
	inactivity      time.Duration
	retention       int
	delay           time.Duration

	clock    func() time.Time
	location *time.Location
}

type Option func(*Engine)

// WithClock replaces time.Now.
func WithClock(clock func() time.Time) Option {
	return func(e *Engine) {
		e.clock = clock
	}
}

// WithLocation sets the zone whose calendar defines days and months.
func WithLocation(loc *time.Location) Option {
	return func(e *Engine) {
		e.location = loc
	}
}

func NewEngine(storage expensesStorage, gateway notificationGateway, flags FlagStore, config config, opts ...Option) *Engine {
	first, second := config.Milestones()
	e := &Engine{
		storage:         storage,
		gateway:         gateway,
		flags:           flags,
		firstMilestone:  first,
		secondMilestone: second,
		dailyHour:       config.DailyReminderHour(),
		endOfMonthDays:  config.EndOfMonthWindow(),
		inactivity:      config.InactivityThreshold(),
		retention:       config.RetentionMonths(),
		delay:           config.NotificationDelay(),
		clock:           time.Now,
		location:        time.Local,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Engine) now() time.Time {
	return e.clock().In(e.location)
}

// candidate is an intent together with the flag that guards it.
type candidate struct {
	intent Intent
	key    string
}

// RunSmartPass evaluates the milestone, end-of-month and monthly comparison
// reminders. Every read happens before anything is cancelled or scheduled, so
// a failed query leaves no trace. A flag is written only after its
// notification was scheduled.
func (e *Engine) RunSmartPass(ctx context.Context) (intents []Intent, err error) {
	logger.Info("RunSmartPass - start")
	defer logger.Info("RunSmartPass - end")

	span, ctx := opentracing.StartSpanFromContext(ctx, "smartReminderPass")
	defer span.Finish()

	start := time.Now()
	defer func() {
		observePass(time.Since(start), err)
		if err != nil {
			ext.Error.Set(span, true)
		}
	}()

	current := e.now()
	monthStart := now.With(current).BeginningOfMonth()

	candidates, err := e.collect(ctx, current, monthStart)
	if err != nil {
		return nil, errors.Wrap(err, "smart pass")
	}

	if len(candidates) > 0 {
		err = e.gateway.CancelPending(ctx, smartIDs)
		if err != nil {
			return nil, errors.Wrap(err, "smart pass: cancel pending")
		}
	}

	intents = make([]Intent, 0, len(candidates))
	for _, c := range candidates {
		if err = e.schedule(ctx, c.intent); err != nil {
			return intents, errors.Wrap(err, "smart pass")
		}
		intents = append(intents, c.intent)

		if err = e.flags.MarkShown(ctx, c.key, monthStart); err != nil {
			return intents, errors.Wrapf(err, "smart pass: mark %s", c.intent.Kind)
		}
	}

	if err = e.prune(ctx, monthStart); err != nil {
		return intents, errors.Wrap(err, "smart pass")
	}
	return intents, nil
}

func (e *Engine) collect(ctx context.Context, current, monthStart time.Time) ([]candidate, error) {
	exps, err := e.storage.QueryExpenses(ctx, monthStart, current)
	if err != nil {
		return nil, errors.Wrap(err, "query current month")
	}
	monthTotal := expense.Sum(exps)
	day := current.Day()
	logger.Info("month total", zap.String("total", monthTotal.String()), zap.Int("day", day))

	candidates := make([]candidate, 0, 3)
	add := func(intent Intent) error {
		key := AlertKey(intent.Kind, monthStart)
		shown, err := e.flags.IsShown(ctx, key)
		if err != nil {
			return errors.Wrapf(err, "read flag %s", key)
		}
		if shown {
			logger.Debug("reminder already shown", zap.String("key", key))
			return nil
		}
		candidates = append(candidates, candidate{intent: intent, key: key})
		return nil
	}

	// the second milestone supersedes the first one
	switch {
	case monthTotal.GreaterThanOrEqual(e.secondMilestone):
		err = add(milestoneIntent(KindMilestone15k, day, e.secondMilestone, e.delay))
	case monthTotal.GreaterThanOrEqual(e.firstMilestone):
		err = add(milestoneIntent(KindMilestone10k, day, e.firstMilestone, e.delay))
	}
	if err != nil {
		return nil, err
	}

	daysRemaining := analytics.DaysInMonth(current) - day
	if daysRemaining <= e.endOfMonthDays {
		if err = add(endOfMonthIntent(e.endOfMonthAdvice(monthTotal), e.delay)); err != nil {
			return nil, err
		}
	}

	comparison, err := e.comparison(ctx, monthStart)
	if err != nil {
		return nil, err
	}
	if comparison != nil {
		candidates = append(candidates, *comparison)
	}
	return candidates, nil
}

func (e *Engine) endOfMonthAdvice(monthTotal decimal.Decimal) string {
	switch {
	case monthTotal.LessThanOrEqual(e.firstMilestone):
		return moneyLeftBody
	case monthTotal.LessThanOrEqual(e.secondMilestone):
		return withinLimitsBody
	default:
		return controlBody
	}
}

// comparison reports last month's total once per month. The previous month
// is only queried while the comparison is still due.
func (e *Engine) comparison(ctx context.Context, monthStart time.Time) (*candidate, error) {
	key := AlertKey(KindMonthlyComparison, monthStart)
	shown, err := e.flags.IsShown(ctx, key)
	if err != nil {
		return nil, errors.Wrapf(err, "read flag %s", key)
	}
	if shown {
		return nil, nil
	}

	prevStart := monthStart.AddDate(0, -1, 0)
	prevEnd := now.With(analytics.AddMonths(prevStart, 1).AddDate(0, 0, -1)).EndOfDay()
	exps, err := e.storage.QueryExpenses(ctx, prevStart, prevEnd)
	if err != nil {
		return nil, errors.Wrap(err, "query previous month")
	}
	prevTotal := expense.Sum(exps)
	if !prevTotal.IsPositive() {
		return nil, nil
	}
	return &candidate{intent: comparisonIntent(prevTotal, e.delay), key: key}, nil
}

func (e *Engine) schedule(ctx context.Context, intent Intent) error {
	span, ctx := opentracing.StartSpanFromContext(ctx, "scheduleNotification")
	defer span.Finish()
	span.SetTag("kind", string(intent.Kind))

	err := e.gateway.Schedule(ctx, intent.Notification)
	if err != nil {
		ext.Error.Set(span, true)
		logger.Error("failed to schedule notification", zap.String("kind", string(intent.Kind)), zap.Error(err))
		return errors.Wrapf(err, "schedule %s", intent.Kind)
	}
	observeIntent(intent.Kind)
	logger.Info("scheduled notification",
		zap.String("kind", string(intent.Kind)),
		zap.String("id", intent.Notification.ID),
		zap.Stringer("trigger", intent.Notification.Trigger))
	return nil
}

func (e *Engine) prune(ctx context.Context, monthStart time.Time) error {
	if e.retention <= 0 {
		return nil
	}
	cutoff := monthStart.AddDate(0, -e.retention, 0)
	removed, err := e.flags.PruneBefore(ctx, cutoff)
	if err != nil {
		return errors.Wrap(err, "prune flags")
	}
	if removed > 0 {
		logger.Info("pruned reminder flags", zap.Int64("removed", removed), zap.Time("cutoff", cutoff))
	}
	return nil
}

// ScheduleDailyReminder (re)arms the repeating evening reminder.
func (e *Engine) ScheduleDailyReminder(ctx context.Context) (Intent, error) {
	intent := dailyIntent(e.dailyHour)
	if err := e.schedule(ctx, intent); err != nil {
		return Intent{}, err
	}
	return intent, nil
}

// CheckInactivity schedules a nudge when the app was not opened for the
// inactivity threshold. The first check only records the current time.
func (e *Engine) CheckInactivity(ctx context.Context) ([]Intent, error) {
	current := e.now()
	last, ok, err := e.flags.LastAppOpen(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "check inactivity")
	}
	if !ok {
		return nil, errors.Wrap(e.flags.SetLastAppOpen(ctx, current), "check inactivity")
	}
	if current.Sub(last) < e.inactivity {
		return nil, nil
	}

	intent := inactivityIntent(e.delay)
	if err = e.schedule(ctx, intent); err != nil {
		return nil, errors.Wrap(err, "check inactivity")
	}
	return []Intent{intent}, nil
}

func (e *Engine) RecordAppOpen(ctx context.Context) error {
	return errors.Wrap(e.flags.SetLastAppOpen(ctx, e.now()), "record app open")
}

// OnForeground runs the sequence triggered by the app coming to the
// foreground. It stops at the first failing step.
func (e *Engine) OnForeground(ctx context.Context) ([]Intent, error) {
	if err := e.gateway.RequestPermission(ctx); err != nil {
		return nil, errors.Wrap(err, "request permission")
	}

	daily, err := e.ScheduleDailyReminder(ctx)
	if err != nil {
		return nil, err
	}
	intents := []Intent{daily}

	inactive, err := e.CheckInactivity(ctx)
	if err != nil {
		return intents, err
	}
	intents = append(intents, inactive...)

	smart, err := e.RunSmartPass(ctx)
	return append(intents, smart...), err
}

// OnExpenseSaved runs after an expense was added or edited.
func (e *Engine) OnExpenseSaved(ctx context.Context) ([]Intent, error) {
	if err := e.RecordAppOpen(ctx); err != nil {
		return nil, err
	}
	return e.RunSmartPass(ctx)
}
