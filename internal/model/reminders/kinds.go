package reminders

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
	"max.ks1230/spend-easy/internal/entity/notification"
)

type Kind string

const (
	KindMilestone10k      Kind = "milestone_10k"
	KindMilestone15k      Kind = "milestone_15k"
	KindEndOfMonth        Kind = "endOfMonth"
	KindMonthlyComparison Kind = "monthlyComparison"
	KindDailyReminder     Kind = "dailyReminder"
	KindInactivity        Kind = "inactivity"
)

// notification identifiers, one pending notification per id
const (
	idMilestone10k      = "milestone10k"
	idMilestone15k      = "milestone15k"
	idEndOfMonth        = "endOfMonthAdvice"
	idMonthlyComparison = "monthlyComparison"
	idDailyReminder     = "dailyReminder"
	idInactivity        = "inactivityReminder"
)

// smartIDs are owned by the smart pass: it cancels them before rescheduling.
var smartIDs = []string{idMilestone10k, idMilestone15k, idEndOfMonth, idMonthlyComparison}

const (
	spendingAlertTitle = "Spending Alert"
	endOfMonthTitle    = "End of Month Check"
	newMonthTitle      = "New Month Started"
	dailyTitle         = "Daily Expense Check"
	inactivityTitle    = "Missing Your Expenses?"

	milestoneWiselyBody  = "Today is day %d & you have already spent %s. Spend the rest of the money wisely."
	milestoneControlBody = "Today is day %d & you have already spent %s. Please control your spendings."
	moneyLeftBody        = "You have money left! You can spend it on something useful or entertainment."
	withinLimitsBody     = "Money spent this month was calculated. You are within limits."
	controlBody          = "Control your spendings for the remaining days."
	comparisonBody       = "Your last month total was %s. Try to beat that this month!"
	dailyBody            = "Don't forget to log your expenses for today!"
	inactivityBody       = "You haven't tracked your expenses today. Don't forget to log them!"
)

const currencySign = "₹"

// Intent is a notification handed to the gateway by a pass.
type Intent struct {
	Kind         Kind
	Notification notification.Notification
}

// AlertKey is the idempotency key of kind for the month starting at monthStart.
func AlertKey(kind Kind, monthStart time.Time) string {
	return fmt.Sprintf("alert_%s_%d", kind, monthStart.Unix())
}

func formatAmount(d decimal.Decimal) string {
	return currencySign + humanize.Comma(d.IntPart())
}

func milestoneIntent(kind Kind, day int, threshold decimal.Decimal, delay time.Duration) Intent {
	id, body := idMilestone10k, milestoneWiselyBody
	if kind == KindMilestone15k {
		id, body = idMilestone15k, milestoneControlBody
	}
	return Intent{
		Kind: kind,
		Notification: notification.Notification{
			ID:      id,
			Title:   spendingAlertTitle,
			Body:    fmt.Sprintf(body, day, formatAmount(threshold)),
			Trigger: notification.AfterDelay(delay),
		},
	}
}

func endOfMonthIntent(body string, delay time.Duration) Intent {
	return Intent{
		Kind: KindEndOfMonth,
		Notification: notification.Notification{
			ID:      idEndOfMonth,
			Title:   endOfMonthTitle,
			Body:    body,
			Trigger: notification.AfterDelay(delay),
		},
	}
}

func comparisonIntent(previousTotal decimal.Decimal, delay time.Duration) Intent {
	return Intent{
		Kind: KindMonthlyComparison,
		Notification: notification.Notification{
			ID:      idMonthlyComparison,
			Title:   newMonthTitle,
			Body:    fmt.Sprintf(comparisonBody, currencySign+previousTotal.Truncate(0).String()),
			Trigger: notification.AfterDelay(delay),
		},
	}
}

func dailyIntent(hour int) Intent {
	return Intent{
		Kind: KindDailyReminder,
		Notification: notification.Notification{
			ID:      idDailyReminder,
			Title:   dailyTitle,
			Body:    dailyBody,
			Trigger: notification.DailyAt(hour, 0),
		},
	}
}

func inactivityIntent(delay time.Duration) Intent {
	return Intent{
		Kind: KindInactivity,
		Notification: notification.Notification{
			ID:      idInactivity,
			Title:   inactivityTitle,
			Body:    inactivityBody,
			Trigger: notification.AfterDelay(delay),
		},
	}
}
