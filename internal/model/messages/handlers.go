package messages

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"max.ks1230/spend-easy/internal/entity/expense"
	"max.ks1230/spend-easy/internal/model/analytics"
	"max.ks1230/spend-easy/internal/model/donut"
	"max.ks1230/spend-easy/internal/model/storage"
)

const (
	dontUnderstandMessage = "I don't understand you :("
	helloMessage          = "Hello! I am SpendEasy bot 🤖"
	loveToTalkMessage     = "I would love to talk about it more!"
	okMessage             = "Gotcha!"
	deletedMessage        = "Deleted"
	updatedMessage        = "Updated"
	noExpensesMessage     = "You have no expenses for this period"
	latestPeriodMessage   = "You are already looking at the latest period"
	missedChartMessage    = "That is not on the chart"

	incorrectUsageMessage    = "That is an incorrect command usage"
	incorrectExpenseMessage  = "Your expense amount is incorrect"
	incorrectCategoryMessage = "Unknown category. Try one of:\n"
	incorrectDateMessage     = "The date is incorrect. Should be dd.mm.yyyy"
	incorrectPeriodMessage   = "The period should be day or month"
	incorrectIDMessage       = "The expense id is incorrect"
	unknownExpenseMessage    = "There is no such expense"
	incorrectPointMessage    = "The point should be two numbers: x y"
	cannotGetExpensesMessage = "Can't get your expenses atm. Try later"
	cannotSaveExpenseMessage = "Can't save your expense atm. Try later"
)

const (
	startCommand      = "/start"
	expenseCommand    = "/expense"
	editCommand       = "/edit"
	deleteCommand     = "/delete"
	reportCommand     = "/report"
	prevCommand       = "/prev"
	nextCommand       = "/next"
	tapCommand        = "/tap"
	categoriesCommand = "/categories"
)

type expenseService interface {
	Add(ctx context.Context, title string, amount decimal.Decimal, date time.Time, category expense.Category) (expense.Expense, error)
	Get(ctx context.Context, id uuid.UUID) (expense.Expense, error)
	Update(ctx context.Context, e expense.Expense) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type reportGenerator interface {
	GenerateReport(ctx context.Context, ref time.Time, granularity analytics.Granularity) (*analytics.Report, error)
}

type config interface {
	Location() *time.Location
	ChartSize() float64
}

type handler func(ctx context.Context, arg string, userID int64) (string, error)

type handlerMap map[string]handler

type HandlerService struct {
	handlersMap handlerMap
	expenses    expenseService
	reports     reportGenerator
	chart       *donut.Chart
	location    *time.Location
	clock       func() time.Time

	mu     sync.Mutex
	charts map[int64]*donut.State
}

func newHandler(expenses expenseService, reports reportGenerator, config config) *HandlerService {
	res := &HandlerService{
		expenses: expenses,
		reports:  reports,
		chart:    donut.NewChart(config.ChartSize()),
		location: config.Location(),
		clock:    time.Now,
		charts:   make(map[int64]*donut.State),
	}
	res.handlersMap = newMap(res)
	return res
}

func (s *HandlerService) HandleMessage(ctx context.Context, text string, userID int64) (string, error) {
	cmd, arg := parseCommand(text)

	handler, ok := s.handlersMap[cmd]
	if ok {
		return handler(ctx, arg, userID)
	}
	return dontUnderstandMessage, nil
}

func newMap(s *HandlerService) handlerMap {
	m := make(handlerMap)
	m[startCommand] = s.handleStart
	m[expenseCommand] = s.handleExpense
	m[editCommand] = s.handleEdit
	m[deleteCommand] = s.handleDelete
	m[reportCommand] = s.handleReport
	m[prevCommand] = s.handlePrev
	m[nextCommand] = s.handleNext
	m[tapCommand] = s.handleTap
	m[categoriesCommand] = s.handleCategories

	m[""] = s.handleNoCommand

	return m
}

func (s *HandlerService) now() time.Time {
	return s.clock().In(s.location)
}

// state returns the chart state of the user, starting at the current month.
func (s *HandlerService) state(userID int64) *donut.State {
	st, ok := s.charts[userID]
	if !ok {
		st = donut.NewState(s.now(), analytics.Month)
		s.charts[userID] = st
	}
	return st
}

func (s *HandlerService) handleStart(_ context.Context, _ string, _ int64) (string, error) {
	return helloMessage, nil
}

func (s *HandlerService) handleCategories(_ context.Context, _ string, _ int64) (string, error) {
	return formatCategories(), nil
}

type expenseInput struct {
	category expense.Category
	amount   decimal.Decimal
	date     time.Time
	title    string
}

// parseExpense reads "<category> <amount> [dd.mm.yyyy] [title]". Omitted
// date and title stay zero. A non-empty reply means the input is invalid.
func (s *HandlerService) parseExpense(args []string) (expenseInput, string) {
	var in expenseInput
	if len(args) < 2 {
		return in, incorrectUsageMessage
	}
	category, err := parseCategory(args[0])
	if err != nil {
		return in, incorrectCategoryMessage + formatCategories()
	}
	amount, err := decimal.NewFromString(args[1])
	if err != nil || amount.IsNegative() {
		return in, incorrectExpenseMessage
	}
	in.category, in.amount = category, amount

	rest := args[2:]
	if len(rest) > 0 {
		parsed, err := time.ParseInLocation(dateLayout, rest[0], s.location)
		switch {
		case err == nil:
			in.date, rest = parsed, rest[1:]
		case strings.Count(rest[0], ".") == 2:
			return in, incorrectDateMessage
		}
	}
	in.title = strings.Join(rest, " ")
	return in, ""
}

// handleExpense expects "<category> <amount> [dd.mm.yyyy] [title]".
func (s *HandlerService) handleExpense(ctx context.Context, arg string, _ int64) (string, error) {
	in, reply := s.parseExpense(strings.Fields(arg))
	if reply != "" {
		return reply, nil
	}
	if in.date.IsZero() {
		in.date = s.now()
	}
	if in.title == "" {
		in.title = in.category.String()
	}

	e, err := s.expenses.Add(ctx, in.title, in.amount, in.date, in.category)
	if err != nil {
		return cannotSaveExpenseMessage, errors.Wrap(err, "handle expense")
	}
	return fmt.Sprintf("%s %s", okMessage, e.ID), nil
}

// handleEdit expects "<id> <category> <amount> [dd.mm.yyyy] [title]". An
// omitted date or title keeps the stored one.
func (s *HandlerService) handleEdit(ctx context.Context, arg string, _ int64) (string, error) {
	args := strings.Fields(arg)
	if len(args) == 0 {
		return incorrectUsageMessage, nil
	}
	id, err := uuid.Parse(args[0])
	if err != nil {
		return incorrectIDMessage, nil
	}
	in, reply := s.parseExpense(args[1:])
	if reply != "" {
		return reply, nil
	}

	e, err := s.expenses.Get(ctx, id)
	if errors.Is(err, storage.ErrNotFound) {
		return unknownExpenseMessage, nil
	}
	if err != nil {
		return cannotGetExpensesMessage, errors.Wrap(err, "handle edit")
	}
	e.Category, e.Amount = in.category, in.amount
	if !in.date.IsZero() {
		e.Date = in.date
	}
	if in.title != "" {
		e.Title = in.title
	}

	if err = s.expenses.Update(ctx, e); err != nil {
		return cannotSaveExpenseMessage, errors.Wrap(err, "handle edit")
	}
	return updatedMessage, nil
}

func (s *HandlerService) handleDelete(ctx context.Context, arg string, _ int64) (string, error) {
	id, err := uuid.Parse(arg)
	if err != nil {
		return incorrectIDMessage, nil
	}
	if err = s.expenses.Delete(ctx, id); err != nil {
		return cannotSaveExpenseMessage, errors.Wrap(err, "handle delete")
	}
	return deletedMessage, nil
}

// handleReport expects "[day|month] [dd.mm.yyyy]".
func (s *HandlerService) handleReport(ctx context.Context, arg string, userID int64) (string, error) {
	args := strings.Fields(arg)
	granularity, ref := analytics.Month, s.now()
	if len(args) > 0 {
		g, err := analytics.ParseGranularity(args[0])
		if err != nil {
			return incorrectPeriodMessage, nil
		}
		granularity = g
	}
	if len(args) > 1 {
		parsed, err := time.ParseInLocation(dateLayout, args[1], s.location)
		if err != nil {
			return incorrectDateMessage, nil
		}
		ref = parsed
	}

	s.mu.Lock()
	s.state(userID).SetPeriod(ref, granularity)
	s.mu.Unlock()
	return s.report(ctx, ref, granularity)
}

func (s *HandlerService) handlePrev(ctx context.Context, _ string, userID int64) (string, error) {
	return s.shift(ctx, userID, -1)
}

func (s *HandlerService) handleNext(ctx context.Context, _ string, userID int64) (string, error) {
	return s.shift(ctx, userID, 1)
}

func (s *HandlerService) shift(ctx context.Context, userID int64, n int) (string, error) {
	s.mu.Lock()
	st := s.state(userID)
	ref, ok := analytics.Shift(st.Reference, st.Granularity, n, s.now())
	if !ok {
		s.mu.Unlock()
		return latestPeriodMessage, nil
	}
	granularity := st.Granularity
	st.SetPeriod(ref, granularity)
	s.mu.Unlock()

	return s.report(ctx, ref, granularity)
}

func (s *HandlerService) report(ctx context.Context, ref time.Time, granularity analytics.Granularity) (string, error) {
	report, err := s.reports.GenerateReport(ctx, ref, granularity)
	if err != nil {
		return cannotGetExpensesMessage, errors.Wrap(err, "handle report")
	}
	header := formatPeriod(ref, granularity)
	if len(report.Records) == 0 {
		return header + "\n" + noExpensesMessage, nil
	}
	return header + "\n" + report.Format(), nil
}

// handleTap expects "<x> <y>" in chart coordinates and toggles the slice
// under the point in the user's selection.
func (s *HandlerService) handleTap(ctx context.Context, arg string, userID int64) (string, error) {
	args := strings.Fields(arg)
	if len(args) != 2 {
		return incorrectPointMessage, nil
	}
	x, errX := strconv.ParseFloat(args[0], 64)
	y, errY := strconv.ParseFloat(args[1], 64)
	if errX != nil || errY != nil {
		return incorrectPointMessage, nil
	}

	s.mu.Lock()
	st := s.state(userID)
	ref, granularity := st.Reference, st.Granularity
	s.mu.Unlock()

	report, err := s.reports.GenerateReport(ctx, ref, granularity)
	if err != nil {
		return cannotGetExpensesMessage, errors.Wrap(err, "handle tap")
	}
	totals := report.Totals()

	s.mu.Lock()
	defer s.mu.Unlock()
	st = s.state(userID)
	if !st.Reference.Equal(ref) || st.Granularity != granularity {
		return missedChartMessage, nil
	}
	if _, ok := s.chart.HitTest(donut.Point{X: x, Y: y}, totals, st.Selection); !ok {
		return missedChartMessage, nil
	}
	total := donut.SelectionTotal(st.Selection, totals)
	return fmt.Sprintf("%s: %s", donut.SelectionLabel(st.Selection), total.StringFixed(2)), nil
}

func (s *HandlerService) handleNoCommand(_ context.Context, _ string, _ int64) (string, error) {
	return loveToTalkMessage, nil
}
