// Package catalog holds the dish collection used both as the catalog and as
// the generated plan, with its category views and random draws.
package catalog

import (
	"errors"
	"fmt"

	"github.com/julianstephens/mealweek/internal/config"
	"github.com/julianstephens/mealweek/internal/models"
)

var ErrDishNotFound = errors.New("dish not found in collection")

// Collection is an ordered sequence of dishes. It stores references, so a
// dish disabled through one collection is disabled in every collection
// holding it. A dish appears at most once per collection; Add does not check.
type Collection struct {
	cfg    *config.Config
	dishes []*models.Dish
}

func New(cfg *config.Config) *Collection {
	return &Collection{cfg: cfg}
}

// Add appends a dish. Callers avoid duplicates.
func (c *Collection) Add(d *models.Dish) {
	c.dishes = append(c.dishes, d)
}

// Extend appends dishes in order.
func (c *Collection) Extend(dishes ...*models.Dish) {
	c.dishes = append(c.dishes, dishes...)
}

// Remove removes the first occurrence of d, compared by reference.
func (c *Collection) Remove(d *models.Dish) error {
	for i, dish := range c.dishes {
		if dish == d {
			c.dishes = append(c.dishes[:i], c.dishes[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrDishNotFound, d.Name())
}

// Dishes returns every dish, enabled or not. The slice must not be modified.
func (c *Collection) Dishes() []*models.Dish {
	return c.dishes
}

func (c *Collection) Len() int {
	return len(c.dishes)
}

func (c *Collection) Contains(d *models.Dish) bool {
	for _, dish := range c.dishes {
		if dish == d {
			return true
		}
	}
	return false
}

func (c *Collection) Names() []string {
	names := make([]string, 0, len(c.dishes))
	for _, d := range c.dishes {
		names = append(names, d.Name())
	}
	return names
}

// Entries returns the name and flag tuples handed to display and persistence.
func (c *Collection) Entries() []models.PlanEntry {
	entries := make([]models.PlanEntry, 0, len(c.dishes))
	for _, d := range c.dishes {
		entries = append(entries, d.Entry())
	}
	return entries
}

// VeggieDishes returns enabled dishes that are veggie and not special.
func (c *Collection) VeggieDishes() []*models.Dish {
	var out []*models.Dish
	for _, d := range c.dishes {
		if d.IsEnabled() && d.IsVeggieClassified() {
			out = append(out, d)
		}
	}
	return out
}

// SpecialDishes returns enabled special dishes.
func (c *Collection) SpecialDishes() []*models.Dish {
	var out []*models.Dish
	for _, d := range c.dishes {
		if d.IsEnabled() && d.IsSpecial() {
			out = append(out, d)
		}
	}
	return out
}

// NormalDishes returns enabled dishes. In strict mode special dishes are
// excluded; veggie dishes are always included.
func (c *Collection) NormalDishes(strict bool) []*models.Dish {
	var out []*models.Dish
	for _, d := range c.dishes {
		if !d.IsEnabled() {
			continue
		}
		if strict && d.IsSpecial() {
			continue
		}
		out = append(out, d)
	}
	return out
}

func (c *Collection) RandomVeggie() *models.Dish {
	return c.pick(c.VeggieDishes())
}

func (c *Collection) RandomSpecial() *models.Dish {
	return c.pick(c.SpecialDishes())
}

// RandomNormal draws from the strict normal view, or from every enabled dish
// when leftover mode is on.
func (c *Collection) RandomNormal() *models.Dish {
	if c.cfg.LeftoverMode {
		return c.RandomAny()
	}
	return c.pick(c.NormalDishes(true))
}

// RandomAny draws from every enabled dish.
func (c *Collection) RandomAny() *models.Dish {
	return c.pick(c.NormalDishes(false))
}

// RandomByCategory draws a dish of the given category, or nil if none is eligible.
func (c *Collection) RandomByCategory(cat models.Category) *models.Dish {
	switch cat {
	case models.CategoryVeggie:
		return c.RandomVeggie()
	case models.CategorySpecial:
		return c.RandomSpecial()
	case models.CategoryNormal:
		return c.RandomNormal()
	}
	return nil
}

func (c *Collection) pick(dishes []*models.Dish) *models.Dish {
	if len(dishes) == 0 {
		return nil
	}
	return dishes[c.cfg.IntN(len(dishes))]
}

func (c *Collection) CountVeggie() int {
	return len(c.VeggieDishes())
}

func (c *Collection) CountSpecial() int {
	return len(c.SpecialDishes())
}

// CountTotal counts every dish, disabled ones included.
func (c *Collection) CountTotal() int {
	return len(c.dishes)
}

// CountByCategory returns the quota count for cat. NORMAL counts the whole
// collection rather than the normal view: the NORMAL quota is the plan size.
func (c *Collection) CountByCategory(cat models.Category) int {
	switch cat {
	case models.CategoryVeggie:
		return c.CountVeggie()
	case models.CategorySpecial:
		return c.CountSpecial()
	case models.CategoryNormal:
		return c.CountTotal()
	}
	return 0
}

// RestrictByIngredients returns the dishes usable with the given leftovers.
// See Matcher for the matching rules.
func (c *Collection) RestrictByIngredients(ingredients []string) *Collection {
	return NewMatcher(c.cfg).Match(c, ingredients).Pool
}
