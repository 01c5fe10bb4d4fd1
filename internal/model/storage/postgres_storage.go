package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	// postgres driver
	_ "github.com/lib/pq"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/spend-easy/internal/entity/expense"
	"max.ks1230/spend-easy/internal/entity/notification"
	"max.ks1230/spend-easy/internal/logger"
)

const (
	dsnTemplate = "user=%s password=%s host=%s dbname=%s sslmode=disable"

	lastAppOpenKey       = "lastAppOpenTime"
	deliveryPermittedKey = "deliveryPermittedTime"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type config interface {
	Host() string
	Username() string
	Password() string
	Database() string
}

type PostgresStorage struct {
	db *sql.DB
}

func dsn(config config) string {
	return fmt.Sprintf(dsnTemplate,
		config.Username(),
		config.Password(),
		config.Host(),
		config.Database())
}

func NewPostgresStorage(config config) (*PostgresStorage, error) {
	db, err := sql.Open("postgres", dsn(config))
	if err != nil {
		return nil, errors.Wrap(err, "cannot connect to database")
	}
	if err = db.Ping(); err != nil {
		return nil, errors.Wrap(err, "cannot connect to database")
	}
	return &PostgresStorage{db}, nil
}

func (s *PostgresStorage) Close() {
	if err := s.db.Close(); err != nil {
		logger.Error("error closing database", zap.Error(err))
	}
}

func (s *PostgresStorage) QueryExpenses(ctx context.Context, from, to time.Time) ([]expense.Expense, error) {
	query := psql.Select("id", "title", "amount", "category", "spent_at").
		From("expenses").
		Where(sq.GtOrEq{"spent_at": from}).
		Where(sq.LtOrEq{"spent_at": to}).
		OrderBy("spent_at DESC")

	rows, err := query.RunWith(s.db).QueryContext(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "query expenses")
	}
	defer func() {
		rowErr := rows.Close()
		if rowErr != nil {
			logger.Error("error closing rows", zap.Error(rowErr))
		}
	}()

	exps := make([]expense.Expense, 0)
	for rows.Next() {
		var e expense.Expense
		var category string
		err = rows.Scan(&e.ID, &e.Title, &e.Amount, &category, &e.Date)
		if err != nil {
			return nil, errors.Wrap(err, "query expenses")
		}
		e.Category = expense.Category(category)
		exps = append(exps, e)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.Wrap(err, "query expenses")
	}
	return exps, nil
}

func (s *PostgresStorage) GetExpense(ctx context.Context, id uuid.UUID) (expense.Expense, error) {
	query := psql.Select("id", "title", "amount", "category", "spent_at").
		From("expenses").
		Where(sq.Eq{"id": id})

	var e expense.Expense
	var category string
	err := query.RunWith(s.db).QueryRowContext(ctx).Scan(&e.ID, &e.Title, &e.Amount, &category, &e.Date)
	if errors.Is(err, sql.ErrNoRows) {
		return expense.Expense{}, errors.Wrapf(ErrNotFound, "expense %s", id)
	}
	if err != nil {
		return expense.Expense{}, errors.Wrap(err, "get expense")
	}
	e.Category = expense.Category(category)
	return e, nil
}

func (s *PostgresStorage) SaveExpense(ctx context.Context, e expense.Expense) error {
	if err := e.Validate(); err != nil {
		return errors.Wrap(err, "save expense")
	}
	updated := time.Now()
	query := psql.Insert("expenses").
		Columns("id", "title", "amount", "category", "spent_at", "updated_at").
		Values(e.ID, e.Title, e.Amount, string(e.Category), e.Date, updated).
		Suffix("ON CONFLICT(id) DO UPDATE SET title = ?, amount = ?, category = ?, spent_at = ?, updated_at = ?",
			e.Title, e.Amount, string(e.Category), e.Date, updated)

	_, err := query.RunWith(s.db).ExecContext(ctx)
	return errors.Wrap(err, "save expense")
}

func (s *PostgresStorage) DeleteExpense(ctx context.Context, id uuid.UUID) error {
	query := psql.Delete("expenses").Where(sq.Eq{"id": id})

	res, err := query.RunWith(s.db).ExecContext(ctx)
	if err != nil {
		return errors.Wrap(err, "delete expense")
	}
	n, err := res.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "delete expense")
	}
	if n == 0 {
		return errors.Wrapf(ErrNotFound, "delete expense %s", id)
	}
	return nil
}

func (s *PostgresStorage) IsShown(ctx context.Context, key string) (bool, error) {
	query := psql.Select("shown").
		From("reminder_flags").
		Where(sq.Eq{"key": key})

	var shown bool
	err := query.RunWith(s.db).QueryRowContext(ctx).Scan(&shown)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, errors.Wrap(err, "is shown")
	}
	return shown, nil
}

func (s *PostgresStorage) MarkShown(ctx context.Context, key string, periodStart time.Time) error {
	marked := time.Now()
	query := psql.Insert("reminder_flags").
		Columns("key", "period_start", "shown", "marked_at").
		Values(key, periodStart, true, marked).
		Suffix("ON CONFLICT(key) DO UPDATE SET shown = TRUE, marked_at = ?", marked)

	_, err := query.RunWith(s.db).ExecContext(ctx)
	return errors.Wrap(err, "mark shown")
}

func (s *PostgresStorage) PruneBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	query := psql.Delete("reminder_flags").Where(sq.Lt{"period_start": cutoff})

	res, err := query.RunWith(s.db).ExecContext(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "prune flags")
	}
	n, err := res.RowsAffected()
	return n, errors.Wrap(err, "prune flags")
}

func (s *PostgresStorage) LastAppOpen(ctx context.Context) (time.Time, bool, error) {
	query := psql.Select("value_time").
		From("app_state").
		Where(sq.Eq{"key": lastAppOpenKey})

	var t time.Time
	err := query.RunWith(s.db).QueryRowContext(ctx).Scan(&t)
	if errors.Is(err, sql.ErrNoRows) {
		return time.Time{}, false, nil
	}
	if err != nil {
		return time.Time{}, false, errors.Wrap(err, "last app open")
	}
	return t, true, nil
}

func (s *PostgresStorage) SetLastAppOpen(ctx context.Context, t time.Time) error {
	query := psql.Insert("app_state").
		Columns("key", "value_time").
		Values(lastAppOpenKey, t).
		Suffix("ON CONFLICT(key) DO UPDATE SET value_time = ?", t)

	_, err := query.RunWith(s.db).ExecContext(ctx)
	return errors.Wrap(err, "set last app open")
}

func (s *PostgresStorage) ListPending(ctx context.Context) ([]notification.Pending, error) {
	query := psql.Select("id", "title", "body", "trigger_kind", "trigger_after", "trigger_hour", "trigger_minute", "due").
		From("pending_notifications").
		OrderBy("id")

	rows, err := query.RunWith(s.db).QueryContext(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list pending")
	}
	defer func() {
		rowErr := rows.Close()
		if rowErr != nil {
			logger.Error("error closing rows", zap.Error(rowErr))
		}
	}()

	res := make([]notification.Pending, 0)
	for rows.Next() {
		var (
			p     notification.Pending
			kind  int
			after int64
		)
		err = rows.Scan(&p.Notification.ID, &p.Notification.Title, &p.Notification.Body,
			&kind, &after, &p.Notification.Trigger.Hour, &p.Notification.Trigger.Minute, &p.Due)
		if err != nil {
			return nil, errors.Wrap(err, "list pending")
		}
		p.Notification.Trigger.Kind = notification.TriggerKind(kind)
		p.Notification.Trigger.After = time.Duration(after)
		res = append(res, p)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.Wrap(err, "list pending")
	}
	return res, nil
}

func (s *PostgresStorage) SavePending(ctx context.Context, p notification.Pending) error {
	n := p.Notification
	query := psql.Insert("pending_notifications").
		Columns("id", "title", "body", "trigger_kind", "trigger_after", "trigger_hour", "trigger_minute", "due").
		Values(n.ID, n.Title, n.Body, int(n.Trigger.Kind), int64(n.Trigger.After), n.Trigger.Hour, n.Trigger.Minute, p.Due).
		Suffix(`ON CONFLICT(id) DO UPDATE SET title = EXCLUDED.title, body = EXCLUDED.body,
			trigger_kind = EXCLUDED.trigger_kind, trigger_after = EXCLUDED.trigger_after,
			trigger_hour = EXCLUDED.trigger_hour, trigger_minute = EXCLUDED.trigger_minute, due = EXCLUDED.due`)

	_, err := query.RunWith(s.db).ExecContext(ctx)
	return errors.Wrap(err, "save pending")
}

func (s *PostgresStorage) DeletePending(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	query := psql.Delete("pending_notifications").Where(sq.Eq{"id": ids})

	_, err := query.RunWith(s.db).ExecContext(ctx)
	return errors.Wrap(err, "delete pending")
}

func (s *PostgresStorage) DeliveryPermitted(ctx context.Context) (bool, error) {
	query := psql.Select("1").
		From("app_state").
		Where(sq.Eq{"key": deliveryPermittedKey})

	var one int
	err := query.RunWith(s.db).QueryRowContext(ctx).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, errors.Wrap(err, "delivery permitted")
	}
	return true, nil
}

func (s *PostgresStorage) PermitDelivery(ctx context.Context) error {
	query := psql.Insert("app_state").
		Columns("key", "value_time").
		Values(deliveryPermittedKey, time.Now()).
		Suffix("ON CONFLICT(key) DO NOTHING")

	_, err := query.RunWith(s.db).ExecContext(ctx)
	return errors.Wrap(err, "permit delivery")
}
