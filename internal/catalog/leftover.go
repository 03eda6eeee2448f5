package catalog

import (
	"github.com/julianstephens/mealweek/internal/config"
	"github.com/julianstephens/mealweek/internal/logger"
	"github.com/julianstephens/mealweek/internal/models"
)

// Match is the outcome of matching leftovers against a collection.
type Match struct {
	// Pool holds the matched dishes in match order.
	Pool *Collection
	// Claimed maps a matched dish name to the leftovers it used up.
	Claimed map[string][]string
	// Unused lists leftovers no dish claimed, in input order.
	Unused []string
}

// Matcher derives the sub-collection of dishes usable with a set of leftover
// ingredients.
type Matcher struct {
	cfg *config.Config
}

func NewMatcher(cfg *config.Config) *Matcher {
	return &Matcher{cfg: cfg}
}

// Match walks src in shuffled order. A dish matches when one of its mandatory
// ingredients is still among the remaining leftovers; it is then enabled,
// added to the pool, and every ingredient it requires is removed from the
// remaining leftovers. The pass is greedy and never backtracks, so which of
// two dishes competing for one leftover wins depends on the shuffle.
//
// Matching enables dishes previously disabled by the seasonal or history
// filters: using up leftovers takes priority.
func (m *Matcher) Match(src *Collection, ingredients []string) Match {
	result := Match{
		Pool:    New(m.cfg),
		Claimed: make(map[string][]string),
	}

	remaining := append([]string(nil), ingredients...)
	if len(remaining) == 0 {
		return result
	}

	order := append([]*models.Dish(nil), src.Dishes()...)
	m.cfg.Shuffle(len(order), func(i, j int) {
		order[i], order[j] = order[j], order[i]
	})

	for _, dish := range order {
		if len(remaining) == 0 {
			break
		}

		var claimed []string
		var kept []string
		for _, leftover := range remaining {
			if dish.Requires(leftover) {
				claimed = append(claimed, leftover)
			} else {
				kept = append(kept, leftover)
			}
		}
		if len(claimed) == 0 {
			continue
		}

		if !dish.IsEnabled() {
			logger.Debug("Re-enabling dish to use leftovers", "dish", dish.Name())
			dish.Enable()
		}
		result.Pool.Add(dish)
		result.Claimed[dish.Name()] = claimed
		remaining = kept
		logger.Debug("Leftover-compatible dish", "dish", dish.Name(), "uses", claimed)
	}

	result.Unused = remaining
	return result
}
