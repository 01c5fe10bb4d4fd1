package messages

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/gojuno/minimock/v3"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	appconfig "max.ks1230/spend-easy/internal/config"
	"max.ks1230/spend-easy/internal/entity/expense"
	"max.ks1230/spend-easy/internal/model/analytics"
	"max.ks1230/spend-easy/internal/model/expenses"
	expensesmock "max.ks1230/spend-easy/internal/model/expenses/mock"
	"max.ks1230/spend-easy/internal/model/messages/mock"
	"max.ks1230/spend-easy/internal/model/storage"
)

const userID = int64(123)

var june10 = time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)

type fixture struct {
	sender     *mock.MessageSenderMock
	foreground *mock.ForegroundListenerMock
	saved      *expensesmock.SavedListenerMock
	store      *storage.InMemStorage
	model      *Service

	replies []string
}

// newFixture expects at least one message. ExpenseSaved has no result until
// a test sets one, so an unexpected save fails the test.
func newFixture(m *minimock.Controller) *fixture {
	f := &fixture{
		sender:     mock.NewMessageSenderMock(m),
		foreground: mock.NewForegroundListenerMock(m),
		saved:      expensesmock.NewSavedListenerMock(m),
		store:      storage.NewInMemStorage(),
	}
	f.foreground.ForegroundMock.Return(true)
	f.sender.SendMessageMock.Inspect(func(text string, _ int64) {
		f.replies = append(f.replies, text)
	})

	generator := analytics.NewGenerator(f.store, nil, analytics.WithLocation(time.UTC))
	service := expenses.NewService(f.store, generator, f.saved)
	f.model = NewService(f.sender, service, generator, f.foreground, &appconfig.AppConfig{TimeZone: "UTC", ChartSide: 280})
	f.model.handler.(*HandlerService).clock = func() time.Time { return june10 }
	return f
}

func (f *fixture) send(t *testing.T, text string) string {
	t.Helper()
	require.NoError(t, f.model.HandleIncomingMessage(context.Background(), Message{Text: text, UserID: userID}))
	require.NotEmpty(t, f.replies)
	return f.replies[len(f.replies)-1]
}

func (f *fixture) spend(t *testing.T, category expense.Category, amount int64) {
	t.Helper()
	e, err := expense.New("item", decimal.NewFromInt(amount), june10, category)
	require.NoError(t, err)
	require.NoError(t, f.store.SaveExpense(context.Background(), e))
}

func Test_OnStartCommand_ShouldAnswerWithIntroMessage(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	f := newFixture(m)

	f.sender.SendMessageMock.
		Expect("Hello! I am SpendEasy bot 🤖", userID).
		Return(nil)

	err := f.model.HandleIncomingMessage(context.Background(), Message{
		Text:   "/start",
		UserID: userID,
	})

	assert.NoError(t, err)
	assert.Equal(t, uint64(1), f.foreground.ForegroundAfterCounter())
}

func Test_OnUnknownCommand_ShouldAnswerWithHelpMessage(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	f := newFixture(m)

	f.sender.SendMessageMock.
		Expect("I don't understand you :(", userID).
		Return(nil)

	err := f.model.HandleIncomingMessage(context.Background(), Message{
		Text:   "/none",
		UserID: userID,
	})

	assert.NoError(t, err)
}

func Test_OnExpenseCommand_ShouldSaveExpense(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	f := newFixture(m)
	f.sender.SendMessageMock.Return(nil)
	f.saved.ExpenseSavedMock.Return(true)

	resp := f.send(t, "/expense food 250.50 09.06.2024 lunch with team")

	assert.True(t, strings.HasPrefix(resp, "Gotcha!"))
	exps, err := f.store.QueryExpenses(context.Background(), june10.AddDate(0, 0, -5), june10)
	require.NoError(t, err)
	require.Len(t, exps, 1)
	assert.Equal(t, "lunch with team", exps[0].Title)
	assert.Equal(t, expense.Food, exps[0].Category)
	assert.Equal(t, 9, exps[0].Date.Day())
	assert.True(t, decimal.RequireFromString("250.50").Equal(exps[0].Amount))
	assert.Equal(t, uint64(1), f.saved.ExpenseSavedAfterCounter())
}

func Test_OnExpenseCommand_ShouldDefaultDateAndTitle(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	f := newFixture(m)
	f.sender.SendMessageMock.Return(nil)
	f.saved.ExpenseSavedMock.Return(true)

	f.send(t, "/expense Transport 300")

	exps, err := f.store.QueryExpenses(context.Background(), june10, june10)
	require.NoError(t, err)
	require.Len(t, exps, 1)
	assert.Equal(t, "Transport", exps[0].Title)
}

func Test_OnExpenseCommand_ShouldRejectBadInput(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{text: "/expense food", want: incorrectUsageMessage},
		{text: "/expense food -5", want: incorrectExpenseMessage},
		{text: "/expense food abc", want: incorrectExpenseMessage},
		{text: "/expense food 10 31.02.2024", want: incorrectDateMessage},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			m := minimock.NewController(t)
			defer m.Finish()
			f := newFixture(m)
			f.sender.SendMessageMock.Return(nil)

			assert.Equal(t, tt.want, f.send(t, tt.text))
			assert.Zero(t, f.saved.ExpenseSavedBeforeCounter())
		})
	}
}

func Test_OnExpenseCommand_ShouldListCategoriesForUnknownOne(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	f := newFixture(m)
	f.sender.SendMessageMock.Return(nil)

	resp := f.send(t, "/expense crypto 10")

	assert.True(t, strings.HasPrefix(resp, incorrectCategoryMessage))
	assert.Contains(t, resp, "Health (heart.fill)")
}

func Test_OnReportCommand_ShouldShowPercentages(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	f := newFixture(m)
	f.sender.SendMessageMock.Return(nil)
	f.spend(t, expense.Food, 600)
	f.spend(t, expense.Transport, 400)

	resp := f.send(t, "/report month 01.06.2024")

	assert.Equal(t, "June 2024\nFood: 600.00 (60%)\nTransport: 400.00 (40%)\n\nTotal: 1000.00", resp)
}

func Test_OnReportCommand_ShouldReportEmptyPeriod(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	f := newFixture(m)
	f.sender.SendMessageMock.Return(nil)

	assert.Equal(t, "09.06.2024\n"+noExpensesMessage, f.send(t, "/report day 09.06.2024"))
	assert.Equal(t, incorrectPeriodMessage, f.send(t, "/report week"))
}

func Test_OnNavigation_ShouldStopAtCurrentPeriod(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	f := newFixture(m)
	f.sender.SendMessageMock.Return(nil)

	assert.Equal(t, latestPeriodMessage, f.send(t, "/next"))
	assert.True(t, strings.HasPrefix(f.send(t, "/prev"), "May 2024"))
	assert.True(t, strings.HasPrefix(f.send(t, "/next"), "June 2024"))
}

func Test_OnTapCommand_ShouldToggleSelection(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	f := newFixture(m)
	f.sender.SendMessageMock.Return(nil)
	f.spend(t, expense.Food, 600)
	f.spend(t, expense.Transport, 400)

	// 12 o'clock lies in the first slice, 9 o'clock in the last one
	assert.Equal(t, "Food: 600.00", f.send(t, "/tap 140 20"))
	assert.Equal(t, "2 Categories: 1000.00", f.send(t, "/tap 20 140"))
	assert.Equal(t, "Transport: 400.00", f.send(t, "/tap 140 20"))
	assert.Equal(t, missedChartMessage, f.send(t, "/tap 140 140"))
	assert.Equal(t, "Total: 1000.00", f.send(t, "/tap 20 140"))
	assert.Equal(t, incorrectPointMessage, f.send(t, "/tap 1"))
}

func Test_OnDeleteCommand_ShouldRemoveExpense(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	f := newFixture(m)
	f.sender.SendMessageMock.Return(nil)
	f.saved.ExpenseSavedMock.Return(true)

	resp := f.send(t, "/expense bills 900")
	id := strings.TrimPrefix(resp, okMessage+" ")

	assert.Equal(t, deletedMessage, f.send(t, "/delete "+id))
	assert.Equal(t, incorrectIDMessage, f.send(t, "/delete nope"))
	exps, err := f.store.QueryExpenses(context.Background(), june10, june10)
	require.NoError(t, err)
	assert.Empty(t, exps)
}

func Test_OnPlainText_ShouldAnswerPolitely(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	f := newFixture(m)
	f.sender.SendMessageMock.Expect(loveToTalkMessage, userID).Return(nil)

	assert.NoError(t, f.model.HandleIncomingMessage(context.Background(), Message{Text: "hi there", UserID: userID}))
}

func Test_OnExpenseCommand_ShouldAcceptZeroAmount(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	f := newFixture(m)
	f.sender.SendMessageMock.Return(nil)
	f.saved.ExpenseSavedMock.Return(true)

	resp := f.send(t, "/expense food 0 free coffee")

	assert.True(t, strings.HasPrefix(resp, okMessage))
	exps, err := f.store.QueryExpenses(context.Background(), june10, june10)
	require.NoError(t, err)
	require.Len(t, exps, 1)
	assert.True(t, exps[0].Amount.IsZero())
	assert.Equal(t, "free coffee", exps[0].Title)
}

func Test_OnEditCommand_ShouldUpdateExpense(t *testing.T) {
	ctx := context.Background()
	m := minimock.NewController(t)
	defer m.Finish()
	f := newFixture(m)
	f.sender.SendMessageMock.Return(nil)
	f.saved.ExpenseSavedMock.Return(true)

	resp := f.send(t, "/expense food 250 09.06.2024 lunch")
	id := strings.TrimPrefix(resp, okMessage+" ")

	assert.Equal(t, updatedMessage, f.send(t, "/edit "+id+" transport 300"))
	exps, err := f.store.QueryExpenses(ctx, june10.AddDate(0, 0, -5), june10)
	require.NoError(t, err)
	require.Len(t, exps, 1)
	assert.Equal(t, id, exps[0].ID.String())
	assert.Equal(t, expense.Transport, exps[0].Category)
	assert.True(t, decimal.NewFromInt(300).Equal(exps[0].Amount))
	assert.Equal(t, "lunch", exps[0].Title)
	assert.Equal(t, 9, exps[0].Date.Day())

	assert.Equal(t, updatedMessage, f.send(t, "/edit "+id+" bills 310 10.06.2024 taxi home"))
	exps, err = f.store.QueryExpenses(ctx, june10.AddDate(0, 0, -5), june10)
	require.NoError(t, err)
	require.Len(t, exps, 1)
	assert.Equal(t, "taxi home", exps[0].Title)
	assert.Equal(t, expense.Bills, exps[0].Category)
	assert.Equal(t, 10, exps[0].Date.Day())
	assert.Equal(t, uint64(3), f.saved.ExpenseSavedAfterCounter())

	resp = f.send(t, "/report month 01.06.2024")
	assert.Equal(t, "June 2024\nBills: 310.00 (100%)\n\nTotal: 310.00", resp)
}

func Test_OnEditCommand_ShouldRejectBadInput(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{text: "/edit", want: incorrectUsageMessage},
		{text: "/edit nope food 10", want: incorrectIDMessage},
		{text: "/edit 1b4e28ba-2fa1-11d2-883f-0016d3cca427 food", want: incorrectUsageMessage},
		{text: "/edit 1b4e28ba-2fa1-11d2-883f-0016d3cca427 food -1", want: incorrectExpenseMessage},
		{text: "/edit 1b4e28ba-2fa1-11d2-883f-0016d3cca427 food 10", want: unknownExpenseMessage},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			m := minimock.NewController(t)
			defer m.Finish()
			f := newFixture(m)
			f.sender.SendMessageMock.Return(nil)

			assert.Equal(t, tt.want, f.send(t, tt.text))
			assert.Zero(t, f.saved.ExpenseSavedBeforeCounter())
		})
	}
}
