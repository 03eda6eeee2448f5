// Package validation reports problems in the catalog, the seasonal calendar
// and the requested quotas before a plan is generated.
package validation

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/julianstephens/mealweek/internal/catalog"
	"github.com/julianstephens/mealweek/internal/planner"
	"github.com/julianstephens/mealweek/internal/seasonal"
)

// ConflictType represents the type of validation conflict
type ConflictType string

const (
	ConflictDuplicateDishName ConflictType = "duplicate_dish_name"
	ConflictEmptyDishName     ConflictType = "empty_dish_name"
	ConflictEmptyIngredient   ConflictType = "empty_ingredient"
	ConflictMissingMonth      ConflictType = "missing_month"
	ConflictQuotaExceeded     ConflictType = "quota_exceeded"
)

// Conflict is one detected problem.
type Conflict struct {
	Type        ConflictType
	Description string
	Items       []string // dish names or categories involved
}

type ValidationResult struct {
	Conflicts []Conflict
}

func (vr *ValidationResult) HasConflicts() bool {
	return len(vr.Conflicts) > 0
}

// Merge appends the conflicts of other.
func (vr *ValidationResult) Merge(other ValidationResult) {
	vr.Conflicts = append(vr.Conflicts, other.Conflicts...)
}

// FormatReport returns a human-readable report of all conflicts
func (vr *ValidationResult) FormatReport() string {
	if !vr.HasConflicts() {
		return "No conflicts detected."
	}

	var b strings.Builder
	b.WriteString("Conflicts detected:\n")
	for _, conflict := range vr.Conflicts {
		fmt.Fprintf(&b, "- %s\n", conflict.Description)
	}
	return b.String()
}

type Validator struct{}

func New() *Validator {
	return &Validator{}
}

// ValidateCatalog checks dish records and, when cal is not nil, that the
// calendar covers the current month.
func (v *Validator) ValidateCatalog(coll *catalog.Collection, cal *seasonal.Calendar) ValidationResult {
	result := ValidationResult{Conflicts: []Conflict{}}

	counts := make(map[string]int)
	for i, dish := range coll.Dishes() {
		if dish.Name() == "" {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictEmptyDishName,
				Description: fmt.Sprintf("Dish #%d has an empty name", i+1),
			})
			continue
		}
		counts[dish.Name()]++

		for _, ingredient := range dish.Ingredients() {
			if strings.TrimSpace(ingredient) == "" {
				result.Conflicts = append(result.Conflicts, Conflict{
					Type:        ConflictEmptyIngredient,
					Description: fmt.Sprintf("Dish %q lists an empty mandatory ingredient", dish.Name()),
					Items:       []string{dish.Name()},
				})
				break
			}
		}
	}

	var duplicates []string
	for name, n := range counts {
		if n > 1 {
			duplicates = append(duplicates, name)
		}
	}
	sort.Strings(duplicates)
	for _, name := range duplicates {
		result.Conflicts = append(result.Conflicts, Conflict{
			Type:        ConflictDuplicateDishName,
			Description: fmt.Sprintf("Duplicate dish name: %q (%d records)", name, counts[name]),
			Items:       []string{name},
		})
	}

	if cal != nil && cal.Len() > 0 {
		if _, err := cal.CurrentMonth(); errors.Is(err, seasonal.ErrMonthNotFound) {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictMissingMonth,
				Description: fmt.Sprintf("Seasonal calendar: %v", err),
			})
		}
	}

	return result
}

// ValidateQuotas reports every quota the filtered collection cannot
// satisfy, one conflict per violated constraint.
func (v *Validator) ValidateQuotas(coll *catalog.Collection, q planner.Quotas) ValidationResult {
	result := ValidationResult{Conflicts: []Conflict{}}
	add := func(items []string, format string, args ...interface{}) {
		result.Conflicts = append(result.Conflicts, Conflict{
			Type:        ConflictQuotaExceeded,
			Description: fmt.Sprintf(format, args...),
			Items:       items,
		})
	}

	if q.Veggie+q.Special > q.Total {
		add([]string{"VEGGIE", "SPECIAL"}, "Veggie (%d) and special (%d) meals exceed the total of %d", q.Veggie, q.Special, q.Total)
	}
	if n := coll.CountTotal(); q.Total > n {
		add([]string{"NORMAL"}, "%d meals requested but the catalog holds %d dishes", q.Total, n)
	}
	if n := coll.CountVeggie(); q.Veggie > n {
		add([]string{"VEGGIE"}, "%d veggie meals requested but only %d are available", q.Veggie, n)
	}
	if n := coll.CountSpecial(); q.Special > n {
		add([]string{"SPECIAL"}, "%d special meals requested but only %d are available", q.Special, n)
	}
	return result
}
