package cli

import (
	"fmt"

	"github.com/julianstephens/mealweek/internal/config"
	"github.com/julianstephens/mealweek/internal/documents"
	"github.com/julianstephens/mealweek/internal/errors"
	"github.com/julianstephens/mealweek/internal/filter"
	"github.com/julianstephens/mealweek/internal/logger"
	"github.com/julianstephens/mealweek/internal/models"
	"github.com/julianstephens/mealweek/internal/planner"
	"github.com/julianstephens/mealweek/internal/seasonal"
	"github.com/julianstephens/mealweek/internal/validation"
)

// Pipeline holds the inputs of a generation. Documents are read once and
// every Run rebuilds the catalog from them, so a rejected plan can be drawn
// again from untouched data.
type Pipeline struct {
	Config    *config.Config
	Catalog   *documents.Catalog
	Calendar  *seasonal.Calendar
	History   []string
	Weeks     int
	Quotas    planner.Quotas
	Leftovers []string
}

// Attempt is one generated plan and what was learned while drawing it.
type Attempt struct {
	Plan     []models.PlanEntry
	Filtered filter.Result
	Warnings validation.ValidationResult
	// Unused lists leftovers no catalog dish can use.
	Unused []string
	// Unplaced lists leftover dishes that did not make it into the plan.
	Unplaced []string
}

// Run builds, filters, validates and draws one plan. In check-only mode it
// stops after validation and the returned Attempt has no Plan.
func (p *Pipeline) Run() (*Attempt, error) {
	coll, err := documents.BuildCatalog(p.Catalog, p.Config)
	if err != nil {
		return nil, err
	}

	warnings := validation.New().ValidateCatalog(coll, p.Calendar)

	filtered, err := filter.New(p.Config).Apply(coll, p.Calendar, p.History, p.Weeks)
	if err != nil {
		return nil, err
	}

	gen := planner.New(p.Config, coll, p.Quotas)
	if err := gen.Validate(); err != nil {
		return nil, err
	}
	if p.Config.Verbose {
		logger.Info("Config is valid", "meals", p.Quotas.Total, "veggie", p.Quotas.Veggie, "special", p.Quotas.Special)
	}
	if p.Config.CheckOnly {
		return &Attempt{Filtered: filtered, Warnings: warnings}, nil
	}

	plan, err := gen.Generate(p.Leftovers)
	if err != nil {
		return nil, err
	}

	a := &Attempt{
		Plan:     plan.Entries(),
		Filtered: filtered,
		Warnings: warnings,
		Unplaced: gen.UnplacedLeftoverDishes(),
	}
	if m := gen.Leftovers(); m != nil {
		a.Unused = m.Unused
	}
	return a, nil
}

// loadDocuments reads the catalog, the optional seasonal calendar and, when
// weeks is positive, the history of the store.
func (c *Context) loadDocuments(weeks int) (*documents.Catalog, *seasonal.Calendar, []string, error) {
	if c.CatalogPath == "" {
		return nil, nil, nil, &errors.DataSourceError{
			Source: "catalog",
			Err:    fmt.Errorf("cannot find catalog file, pass --catalog or create it in %s", config.Dir()),
		}
	}
	catalogDoc, err := documents.ReadCatalog(c.CatalogPath)
	if err != nil {
		return nil, nil, nil, err
	}

	var cal *seasonal.Calendar
	if c.SeasonalPath != "" {
		seasonalDoc, err := documents.ReadSeasonal(c.SeasonalPath)
		if err != nil {
			return nil, nil, nil, err
		}
		cal, err = documents.BuildCalendar(seasonalDoc)
		if err != nil {
			return nil, nil, nil, err
		}
		// An empty calendar restricts nothing
		if cal.Len() == 0 {
			cal = nil
		}
	}

	var history []string
	if weeks > 0 && c.Store != nil {
		history, err = c.Store.History()
		if err != nil {
			return nil, nil, nil, fmt.Errorf("failed to read history: %w", err)
		}
	}

	logger.Debug("Documents loaded",
		"catalog", c.CatalogPath,
		"seasonal", c.SeasonalPath,
		"history", len(history))
	return catalogDoc, cal, history, nil
}
