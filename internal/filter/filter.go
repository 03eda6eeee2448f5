// Package filter disables catalog dishes that are out of season or were
// served too recently.
package filter

import (
	"github.com/julianstephens/mealweek/internal/catalog"
	"github.com/julianstephens/mealweek/internal/config"
	"github.com/julianstephens/mealweek/internal/constants"
	"github.com/julianstephens/mealweek/internal/logger"
	"github.com/julianstephens/mealweek/internal/seasonal"
)

// Result names the dishes each rule disabled, in catalog order. A dish
// disabled by both rules appears in both lists.
type Result struct {
	Seasonal []string
	History  []string
}

// Disabled returns the union of both lists without duplicates.
func (r Result) Disabled() []string {
	seen := make(map[string]bool)
	var out []string
	for _, names := range [][]string{r.Seasonal, r.History} {
		for _, n := range names {
			if !seen[n] {
				seen[n] = true
				out = append(out, n)
			}
		}
	}
	return out
}

type Filter struct {
	cfg *config.Config
}

func New(cfg *config.Config) *Filter {
	return &Filter{cfg: cfg}
}

// Apply disables dishes in coll. The seasonal rule is skipped when cal is nil
// and the history rule when history is empty or weeks is not positive. Rules
// only ever disable, so Apply is idempotent.
func (f *Filter) Apply(coll *catalog.Collection, cal *seasonal.Calendar, history []string, weeks int) (Result, error) {
	var res Result

	if cal != nil {
		names, err := applySeasonal(coll, cal)
		if err != nil {
			return res, err
		}
		res.Seasonal = names
	}

	if len(history) > 0 && weeks > 0 {
		res.History = applyHistory(coll, history, weeks)
	}

	if f.cfg.Verbose {
		logger.Info("Catalog filtered", "seasonal", len(res.Seasonal), "history", len(res.History))
	}
	return res, nil
}

func applySeasonal(coll *catalog.Collection, cal *seasonal.Calendar) ([]string, error) {
	current, err := cal.CurrentIngredients()
	if err != nil {
		return nil, err
	}
	inSeason := make(map[string]bool, len(current))
	for _, i := range current {
		inSeason[i] = true
	}
	restricted := make(map[string]bool)
	for _, i := range cal.RestrictedIngredients() {
		restricted[i] = true
	}

	var disabled []string
	for _, dish := range coll.Dishes() {
		if !dish.IsEnabled() {
			continue
		}
		for _, ingredient := range dish.Ingredients() {
			if restricted[ingredient] && !inSeason[ingredient] {
				logger.Debug("Out of season", "dish", dish.Name(), "ingredient", ingredient)
				dish.Disable()
				disabled = append(disabled, dish.Name())
				break
			}
		}
	}
	return disabled, nil
}

// Window returns the last weeks*7 entries of history, or all of it when
// shorter.
func Window(history []string, weeks int) []string {
	if weeks <= 0 {
		return nil
	}
	n := weeks * constants.DaysPerWeek
	if n >= len(history) {
		return history
	}
	return history[len(history)-n:]
}

func applyHistory(coll *catalog.Collection, history []string, weeks int) []string {
	recent := make(map[string]bool)
	for _, name := range Window(history, weeks) {
		recent[name] = true
	}

	var disabled []string
	for _, dish := range coll.Dishes() {
		if recent[dish.Name()] {
			logger.Debug("Served recently", "dish", dish.Name())
			dish.Disable()
			disabled = append(disabled, dish.Name())
		}
	}
	return disabled
}
