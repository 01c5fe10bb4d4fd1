// Package expenses applies expense changes and fans them out to the report
// cache and the reminder runner.
package expenses

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/ext"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"max.ks1230/spend-easy/internal/entity/expense"
	"max.ks1230/spend-easy/internal/logger"
)

type expensesStorage interface {
	GetExpense(ctx context.Context, id uuid.UUID) (expense.Expense, error)
	SaveExpense(ctx context.Context, e expense.Expense) error
	DeleteExpense(ctx context.Context, id uuid.UUID) error
}

//go:generate minimock -i max.ks1230/spend-easy/internal/model/expenses.reportInvalidator -o ./mock/report_invalidator_mock.go -n ReportInvalidatorMock -p mock
type reportInvalidator interface {
	Invalidate(date time.Time) error
}

//go:generate minimock -i max.ks1230/spend-easy/internal/model/expenses.savedListener -o ./mock/saved_listener_mock.go -n SavedListenerMock -p mock
type savedListener interface {
	ExpenseSaved() bool
}

type Service struct {
	storage  expensesStorage
	reports  reportInvalidator
	listener savedListener
}

func NewService(storage expensesStorage, reports reportInvalidator, listener savedListener) *Service {
	return &Service{
		storage:  storage,
		reports:  reports,
		listener: listener,
	}
}

func (s *Service) Add(ctx context.Context, title string, amount decimal.Decimal, date time.Time, category expense.Category) (expense.Expense, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "addExpense")
	defer span.Finish()

	e, err := expense.New(title, amount, date, category)
	if err != nil {
		return expense.Expense{}, errors.Wrap(err, "add expense")
	}
	if err = s.storage.SaveExpense(ctx, e); err != nil {
		ext.Error.Set(span, true)
		return expense.Expense{}, errors.Wrap(err, "add expense")
	}
	s.invalidate(e.Date)
	s.saved()
	logger.Info("expense added", zap.String("id", e.ID.String()), zap.String("category", e.Category.String()))
	return e, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (expense.Expense, error) {
	e, err := s.storage.GetExpense(ctx, id)
	return e, errors.Wrap(err, "get expense")
}

// Update replaces a stored expense. Reports of both the old and the new date
// are invalidated.
func (s *Service) Update(ctx context.Context, e expense.Expense) error {
	span, ctx := opentracing.StartSpanFromContext(ctx, "updateExpense")
	defer span.Finish()

	if err := e.Validate(); err != nil {
		return errors.Wrap(err, "update expense")
	}
	old, err := s.storage.GetExpense(ctx, e.ID)
	if err != nil {
		return errors.Wrap(err, "update expense")
	}
	if err = s.storage.SaveExpense(ctx, e); err != nil {
		ext.Error.Set(span, true)
		return errors.Wrap(err, "update expense")
	}
	s.invalidate(old.Date)
	s.invalidate(e.Date)
	s.saved()
	return nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	span, ctx := opentracing.StartSpanFromContext(ctx, "deleteExpense")
	defer span.Finish()

	old, err := s.storage.GetExpense(ctx, id)
	if err != nil {
		return errors.Wrap(err, "delete expense")
	}
	if err = s.storage.DeleteExpense(ctx, id); err != nil {
		ext.Error.Set(span, true)
		return errors.Wrap(err, "delete expense")
	}
	s.invalidate(old.Date)
	return nil
}

// a stale cache entry is only a slower report, so failures are logged
func (s *Service) invalidate(date time.Time) {
	if err := s.reports.Invalidate(date); err != nil {
		logger.Error("cannot invalidate reports", zap.Time("date", date), zap.Error(err))
	}
}

func (s *Service) saved() {
	if s.listener != nil {
		s.listener.ExpenseSaved()
	}
}
