package storage

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"max.ks1230/spend-easy/internal/entity/expense"
	"max.ks1230/spend-easy/internal/entity/notification"
)

var ErrNotFound = errors.New("not found")

// InMemStorage keeps expenses, reminder flags and pending notifications in
// process memory.
type InMemStorage struct {
	mu        sync.RWMutex
	expenses  map[uuid.UUID]expense.Expense
	flags     map[string]time.Time
	lastOpen  *time.Time
	pending   map[string]notification.Pending
	permitted bool
}

func NewInMemStorage() *InMemStorage {
	return &InMemStorage{
		expenses: make(map[uuid.UUID]expense.Expense),
		flags:    make(map[string]time.Time),
		pending:  make(map[string]notification.Pending),
	}
}

// QueryExpenses returns expenses dated within [from, to], newest first.
func (s *InMemStorage) QueryExpenses(_ context.Context, from, to time.Time) ([]expense.Expense, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	res := make([]expense.Expense, 0)
	for _, e := range s.expenses {
		if !e.Date.Before(from) && !e.Date.After(to) {
			res = append(res, e)
		}
	}
	sort.Slice(res, func(i, j int) bool {
		return res[i].Date.After(res[j].Date)
	})
	return res, nil
}

func (s *InMemStorage) GetExpense(_ context.Context, id uuid.UUID) (expense.Expense, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.expenses[id]
	if !ok {
		return expense.Expense{}, errors.Wrapf(ErrNotFound, "expense %s", id)
	}
	return e, nil
}

func (s *InMemStorage) SaveExpense(_ context.Context, e expense.Expense) error {
	if err := e.Validate(); err != nil {
		return errors.Wrap(err, "save expense")
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.expenses[e.ID] = e
	return nil
}

func (s *InMemStorage) DeleteExpense(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.expenses[id]; !ok {
		return errors.Wrapf(ErrNotFound, "delete expense %s", id)
	}
	delete(s.expenses, id)
	return nil
}

func (s *InMemStorage) IsShown(_ context.Context, key string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.flags[key]
	return ok, nil
}

func (s *InMemStorage) MarkShown(_ context.Context, key string, periodStart time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.flags[key] = periodStart
	return nil
}

func (s *InMemStorage) PruneBefore(_ context.Context, cutoff time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var removed int64
	for key, period := range s.flags {
		if period.Before(cutoff) {
			delete(s.flags, key)
			removed++
		}
	}
	return removed, nil
}

func (s *InMemStorage) LastAppOpen(_ context.Context) (time.Time, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.lastOpen == nil {
		return time.Time{}, false, nil
	}
	return *s.lastOpen, true, nil
}

func (s *InMemStorage) SetLastAppOpen(_ context.Context, t time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastOpen = &t
	return nil
}

// ListPending returns the stored pending notifications ordered by id.
func (s *InMemStorage) ListPending(_ context.Context) ([]notification.Pending, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	res := make([]notification.Pending, 0, len(s.pending))
	for _, p := range s.pending {
		res = append(res, p)
	}
	sort.Slice(res, func(i, j int) bool {
		return res[i].Notification.ID < res[j].Notification.ID
	})
	return res, nil
}

func (s *InMemStorage) SavePending(_ context.Context, p notification.Pending) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.pending[p.Notification.ID] = p
	return nil
}

func (s *InMemStorage) DeletePending(_ context.Context, ids []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, id := range ids {
		delete(s.pending, id)
	}
	return nil
}

func (s *InMemStorage) DeliveryPermitted(_ context.Context) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.permitted, nil
}

func (s *InMemStorage) PermitDelivery(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.permitted = true
	return nil
}
