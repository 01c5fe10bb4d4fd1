package messages

import (
	"fmt"
	"strings"
	"time"

	"max.ks1230/spend-easy/internal/entity/expense"
	"max.ks1230/spend-easy/internal/model/analytics"
)

const (
	commandParts = 2
	dateLayout   = "02.01.2006"
)

func parseCommand(text string) (cmd, arg string) {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "/") {
		return "", text
	}
	split := strings.SplitN(text, " ", commandParts)
	if len(split) == commandParts {
		return split[0], strings.TrimSpace(split[1])
	}
	return text, ""
}

// parseCategory accepts any letter case: "food", "FOOD" and "Food" match.
func parseCategory(s string) (expense.Category, error) {
	if s != "" {
		s = strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
	}
	return expense.ParseCategory(s)
}

func formatCategories() string {
	res := make([]string, 0, len(expense.Categories))
	for _, c := range expense.Categories {
		res = append(res, fmt.Sprintf("%s (%s)", c, c.Icon()))
	}
	return strings.Join(res, "\n")
}

func formatPeriod(ref time.Time, granularity analytics.Granularity) string {
	if granularity == analytics.Day {
		return ref.Format(dateLayout)
	}
	return ref.Format("January 2006")
}
