// Package seasonal maps months to the vegetables in season and answers
// availability questions for the current month.
package seasonal

import (
	"errors"
	"fmt"
	"time"

	mwerrors "github.com/julianstephens/mealweek/internal/errors"
)

var (
	ErrDuplicateMonth = errors.New("month already present in calendar")
	ErrMonthNotFound  = errors.New("month not found in calendar")
)

// Month is one calendar entry.
type Month struct {
	Month time.Month
	// Name is the key as written in the source document.
	Name        string
	Ingredients []string
}

// Calendar is an ordered list of months. Ingredients are compared exactly;
// callers normalize case.
type Calendar struct {
	months []Month
	now    func() time.Time
}

type Option func(*Calendar)

// WithClock replaces the clock used to resolve the current month.
func WithClock(now func() time.Time) Option {
	return func(c *Calendar) { c.now = now }
}

func New(opts ...Option) *Calendar {
	c := &Calendar{now: time.Now}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Add appends a month. The name defaults to the English month name.
func (c *Calendar) Add(month time.Month, ingredients ...string) error {
	return c.AddNamed(month, month.String(), ingredients...)
}

// AddNamed appends a month keeping the key it was parsed from.
func (c *Calendar) AddNamed(month time.Month, name string, ingredients ...string) error {
	if month < time.January || month > time.December {
		return fmt.Errorf("invalid month %d", month)
	}
	for _, m := range c.months {
		if m.Month == month {
			return fmt.Errorf("%w: %s", ErrDuplicateMonth, month)
		}
	}
	c.months = append(c.months, Month{
		Month:       month,
		Name:        name,
		Ingredients: append([]string(nil), ingredients...),
	})
	return nil
}

func (c *Calendar) Months() []Month {
	return c.months
}

func (c *Calendar) Len() int {
	return len(c.months)
}

// RestrictedIngredients returns every ingredient listed in any month, in
// calendar order. Duplicates are kept.
func (c *Calendar) RestrictedIngredients() []string {
	var out []string
	for _, m := range c.months {
		out = append(out, m.Ingredients...)
	}
	return out
}

// CurrentMonth returns the entry for the clock's month.
func (c *Calendar) CurrentMonth() (Month, error) {
	current := c.now().Month()
	for _, m := range c.months {
		if m.Month == current {
			return m, nil
		}
	}
	return Month{}, &mwerrors.LookupError{What: "seasonal month", Key: current.String(), Err: ErrMonthNotFound}
}

// CurrentIngredients returns the ingredients in season this month. A month
// missing from the calendar is an error, never an empty list.
func (c *Calendar) CurrentIngredients() ([]string, error) {
	m, err := c.CurrentMonth()
	if err != nil {
		return nil, err
	}
	return m.Ingredients, nil
}

// IsRestricted reports whether the ingredient is seasonal at all.
func (c *Calendar) IsRestricted(ingredient string) bool {
	for _, m := range c.months {
		for _, i := range m.Ingredients {
			if i == ingredient {
				return true
			}
		}
	}
	return false
}

// InSeason reports whether the ingredient can be used this month.
// Unrestricted ingredients are always in season.
func (c *Calendar) InSeason(ingredient string) (bool, error) {
	if !c.IsRestricted(ingredient) {
		return true, nil
	}
	current, err := c.CurrentIngredients()
	if err != nil {
		return false, err
	}
	for _, i := range current {
		if i == ingredient {
			return true, nil
		}
	}
	return false, nil
}
