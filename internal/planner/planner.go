// Package planner draws a weekly plan from a filtered catalog under veggie,
// special and total quotas.
package planner

import (
	"fmt"

	"github.com/julianstephens/mealweek/internal/catalog"
	"github.com/julianstephens/mealweek/internal/config"
	"github.com/julianstephens/mealweek/internal/errors"
	"github.com/julianstephens/mealweek/internal/logger"
	"github.com/julianstephens/mealweek/internal/models"
)

// Quotas are the per-category targets. Total is the plan size; veggie
// dishes drawn while filling NORMAL count toward Veggie as well, so Veggie
// is a minimum.
type Quotas struct {
	Total   int
	Veggie  int
	Special int
}

// For returns the quota of a category.
func (q Quotas) For(cat models.Category) int {
	switch cat {
	case models.CategoryVeggie:
		return q.Veggie
	case models.CategorySpecial:
		return q.Special
	case models.CategoryNormal:
		return q.Total
	}
	return 0
}

// Planner consumes a source collection to build one plan.
type Planner struct {
	cfg    *config.Config
	source *catalog.Collection
	quotas Quotas
	plan   *catalog.Collection
	match  *catalog.Match
}

func New(cfg *config.Config, source *catalog.Collection, quotas Quotas) *Planner {
	return &Planner{
		cfg:    cfg,
		source: source,
		quotas: quotas,
		plan:   catalog.New(cfg),
	}
}

// IsConfigValid reports whether the quotas fit the filtered source.
func (p *Planner) IsConfigValid() bool {
	return p.Validate() == nil
}

// Validate returns a ConfigurationError naming the first quota the source
// cannot satisfy.
func (p *Planner) Validate() error {
	q := p.quotas
	switch {
	case q.Total < 0 || q.Veggie < 0 || q.Special < 0:
		return &errors.ConfigurationError{Reason: fmt.Sprintf(
			"quotas must not be negative: %d meals, %d veggie, %d special", q.Total, q.Veggie, q.Special)}
	case q.Veggie+q.Special > q.Total:
		return &errors.ConfigurationError{Reason: fmt.Sprintf(
			"veggie (%d) and special (%d) meals exceed the total of %d", q.Veggie, q.Special, q.Total)}
	case q.Total > p.source.CountTotal():
		return &errors.ConfigurationError{Reason: fmt.Sprintf(
			"%d meals requested but the catalog holds %d dishes", q.Total, p.source.CountTotal())}
	case q.Veggie > p.source.CountVeggie():
		return &errors.ConfigurationError{Reason: fmt.Sprintf(
			"%d veggie meals requested but only %d are available", q.Veggie, p.source.CountVeggie())}
	case q.Special > p.source.CountSpecial():
		return &errors.ConfigurationError{Reason: fmt.Sprintf(
			"%d special meals requested but only %d are available", q.Special, p.source.CountSpecial())}
	}
	return nil
}

// Generate fills the plan category by category. Leftover-compatible dishes
// are drawn first; the source is used once they run out. Drawn dishes are
// removed from the source. Generate does not validate quotas: call Validate
// first.
func (p *Planner) Generate(leftovers []string) (*catalog.Collection, error) {
	// Step 1: Restrict to dishes that use up leftovers
	var pool *catalog.Collection
	if len(leftovers) > 0 {
		m := catalog.NewMatcher(p.cfg).Match(p.source, leftovers)
		p.match = &m
		pool = m.Pool
		logger.Debug("Leftover pool built", "dishes", pool.Len(), "unused", m.Unused)
	}

	// Step 2: Fill each category in order
	for _, cat := range p.cfg.CategoryOrder {
		quota := p.quotas.For(cat)
		for p.plan.CountByCategory(cat) < quota {
			dish, err := p.draw(pool, cat)
			if err != nil {
				return p.plan, err
			}
			if dish == nil {
				return p.plan, &errors.ExhaustionError{
					Category: cat.String(),
					Quota:    quota,
					Reached:  p.plan.CountByCategory(cat),
				}
			}
			if p.plan.Contains(dish) {
				continue
			}
			p.plan.Add(dish)
			if err := p.source.Remove(dish); err != nil {
				return p.plan, fmt.Errorf("failed to consume %s: %w", dish.Name(), err)
			}
			logger.Debug("Dish selected", "category", cat, "dish", dish.Name())
		}
	}

	return p.plan, nil
}

// draw takes a dish of cat from the leftover pool, removing it there, or
// from the source when the pool has none.
func (p *Planner) draw(pool *catalog.Collection, cat models.Category) (*models.Dish, error) {
	if pool != nil {
		if dish := pool.RandomByCategory(cat); dish != nil {
			if err := pool.Remove(dish); err != nil {
				return nil, fmt.Errorf("failed to take leftover dish %s: %w", dish.Name(), err)
			}
			return dish, nil
		}
	}
	return p.source.RandomByCategory(cat), nil
}

// Plan returns the plan built so far.
func (p *Planner) Plan() *catalog.Collection {
	return p.plan
}

// Leftovers returns the leftover match of the last Generate, or nil when no
// leftovers were given.
func (p *Planner) Leftovers() *catalog.Match {
	return p.match
}

// UnplacedLeftoverDishes lists leftover-compatible dishes that did not make
// it into the plan.
func (p *Planner) UnplacedLeftoverDishes() []string {
	if p.match == nil {
		return nil
	}
	var out []string
	for _, d := range p.match.Pool.Dishes() {
		if !p.plan.Contains(d) {
			out = append(out, d.Name())
		}
	}
	return out
}
