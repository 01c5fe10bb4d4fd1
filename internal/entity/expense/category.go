package expense

import "github.com/pkg/errors"

type Category string

const (
	Food          Category = "Food"
	Transport     Category = "Transport"
	Shopping      Category = "Shopping"
	Bills         Category = "Bills"
	Entertainment Category = "Entertainment"
	Health        Category = "Health"
	Other         Category = "Other"
)

var Categories = []Category{Food, Transport, Shopping, Bills, Entertainment, Health, Other}

var ErrUnknownCategory = errors.New("unknown category")

const (
	defaultIcon  = "tag.fill"
	defaultColor = "94a3b8"
)

type appearance struct {
	icon  string
	color string
}

var appearances = map[Category]appearance{
	Food:          {"fork.knife", "ff6b6b"},
	Transport:     {"car.fill", "4ecdc4"},
	Shopping:      {"bag.fill", "ff6bcb"},
	Bills:         {"doc.text.fill", "ffa500"},
	Entertainment: {"tv.fill", "a78bfa"},
	Health:        {"heart.fill", "51cf66"},
	Other:         {"ellipsis.circle.fill", "94a3b8"},
}

func ParseCategory(name string) (Category, error) {
	c := Category(name)
	if !c.Valid() {
		return "", errors.Wrapf(ErrUnknownCategory, "parse %q", name)
	}
	return c, nil
}

func (c Category) Valid() bool {
	_, ok := appearances[c]
	return ok
}

func (c Category) String() string {
	return string(c)
}

// Icon returns the symbol name shown next to the category.
func (c Category) Icon() string {
	if a, ok := appearances[c]; ok {
		return a.icon
	}
	return defaultIcon
}

// Color returns the category colour as a hex string without the leading '#'.
func (c Category) Color() string {
	if a, ok := appearances[c]; ok {
		return a.color
	}
	return defaultColor
}
