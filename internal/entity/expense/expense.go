package expense

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

var (
	ErrNegativeAmount = errors.New("amount must not be negative")
	ErrEmptyTitle     = errors.New("title must not be empty")
)

type Expense struct {
	ID       uuid.UUID
	Title    string
	Amount   decimal.Decimal
	Date     time.Time
	Category Category
}

// New creates an expense with a fresh identifier.
func New(title string, amount decimal.Decimal, date time.Time, category Category) (Expense, error) {
	e := Expense{
		ID:       uuid.New(),
		Title:    title,
		Amount:   amount,
		Date:     date,
		Category: category,
	}
	if err := e.Validate(); err != nil {
		return Expense{}, errors.Wrap(err, "new expense")
	}
	return e, nil
}

func (e Expense) Validate() error {
	if strings.TrimSpace(e.Title) == "" {
		return ErrEmptyTitle
	}
	if e.Amount.IsNegative() {
		return ErrNegativeAmount
	}
	if !e.Category.Valid() {
		return errors.Wrapf(ErrUnknownCategory, "%q", e.Category)
	}
	return nil
}

func Sum(expenses []Expense) decimal.Decimal {
	total := decimal.Zero
	for _, e := range expenses {
		total = total.Add(e.Amount)
	}
	return total
}
