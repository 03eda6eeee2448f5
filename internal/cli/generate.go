package cli

import (
	stderrors "errors"
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/charmbracelet/huh"
	"github.com/go-playground/validator/v10"

	"github.com/julianstephens/mealweek/internal/config"
	"github.com/julianstephens/mealweek/internal/errors"
	"github.com/julianstephens/mealweek/internal/logger"
	"github.com/julianstephens/mealweek/internal/models"
	"github.com/julianstephens/mealweek/internal/planner"
)

const (
	choiceAccept     = "accept"
	choiceRegenerate = "regenerate"
	choiceQuit       = "quit"
)

// QuotaFlags are the generation inputs shared by generate and check. Unset
// flags fall back to the settings.
type QuotaFlags struct {
	Meals        *int     `short:"m" help:"Number of meals (default from settings, 7)." validate:"omitempty,gte=0"`
	VeggieMeals  *int     `help:"Minimum number of vegetarian meals." validate:"omitempty,gte=0"`
	SpecialMeals *int     `help:"Number of special meals." validate:"omitempty,gte=0"`
	Leftovers    []string `short:"l" help:"Leftover ingredients to use up (repeatable or comma separated)."`
	HistoryMeals *int     `help:"Skip dishes served over the last N weeks." validate:"omitempty,gte=0"`
}

var flagValidator = validator.New()

// validate rejects negative counts before any document is read.
func (f *QuotaFlags) validate() error {
	err := flagValidator.Struct(f)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if stderrors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return &errors.ConfigurationError{Reason: fmt.Sprintf("%s must not be negative", kebab(fe.Field()))}
	}
	return &errors.ConfigurationError{Reason: err.Error()}
}

// kebab turns a field name into its flag name, VeggieMeals into veggie-meals.
func kebab(field string) string {
	var b strings.Builder
	for i, r := range field {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('-')
			}
			r = unicode.ToLower(r)
		}
		b.WriteRune(r)
	}
	return "--" + b.String()
}

func (f *QuotaFlags) quotas(s *config.Settings) planner.Quotas {
	q := planner.Quotas{Total: s.Meals, Veggie: s.VeggieMeals, Special: s.SpecialMeals}
	if f.Meals != nil {
		q.Total = *f.Meals
	}
	if f.VeggieMeals != nil {
		q.Veggie = *f.VeggieMeals
	}
	if f.SpecialMeals != nil {
		q.Special = *f.SpecialMeals
	}
	return q
}

func (f *QuotaFlags) weeks(s *config.Settings) int {
	if f.HistoryMeals != nil {
		return *f.HistoryMeals
	}
	return s.HistoryWeeks
}

// BuildPipeline assembles the generation inputs from the flags, the
// settings and the documents of ctx. Leftovers switch on leftover mode;
// opts are applied last.
func (f *QuotaFlags) BuildPipeline(ctx *Context, opts ...config.Option) (*Pipeline, error) {
	if err := f.validate(); err != nil {
		return nil, err
	}
	leftovers := splitList(f.Leftovers)
	weeks := f.weeks(ctx.Settings)

	catalogDoc, cal, history, err := ctx.loadDocuments(weeks)
	if err != nil {
		return nil, err
	}

	cfg := config.New(append([]config.Option{
		config.WithVerbose(ctx.Verbose),
		config.WithDebug(ctx.Debug),
		config.WithLeftoverMode(len(leftovers) > 0),
	}, opts...)...)
	logger.Debug("Generation configured", "seed", cfg.Seed, "leftovers", leftovers, "weeks", weeks)

	return &Pipeline{
		Config:    cfg,
		Catalog:   catalogDoc,
		Calendar:  cal,
		History:   history,
		Weeks:     weeks,
		Quotas:    f.quotas(ctx.Settings),
		Leftovers: leftovers,
	}, nil
}

type GenerateCmd struct {
	QuotaFlags `embed:""`

	Pretend bool   `short:"p" help:"Show a plan without saving it."`
	Yes     bool   `short:"y" help:"Accept the first plan without prompting."`
	Seed    uint64 `help:"Seed the random source for a reproducible plan."`

	ask func() (string, error)
}

func (c *GenerateCmd) Run(ctx *Context) error {
	opts := []config.Option{config.WithPretend(c.Pretend)}
	if c.Seed != 0 {
		opts = append(opts, config.WithSeed(c.Seed))
	}
	p, err := c.BuildPipeline(ctx, opts...)
	if err != nil {
		return err
	}
	out := ctx.out()

	for attempt := 1; ; attempt++ {
		a, err := p.Run()
		if err != nil {
			return err
		}
		logger.Debug("Plan generated", "attempt", attempt, "dishes", len(a.Plan))

		printAttempt(out, a)

		if c.Pretend {
			return nil
		}

		choice := choiceAccept
		if !c.Yes {
			choice, err = c.prompt()
			if err != nil {
				return err
			}
		}

		switch choice {
		case choiceAccept:
			return ctx.savePlan(a.Plan)
		case choiceQuit:
			fmt.Fprintln(out, "Plan discarded.")
			return nil
		}
		fmt.Fprintln(out)
	}
}

func (c *GenerateCmd) prompt() (string, error) {
	if c.ask != nil {
		return c.ask()
	}

	var choice string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Is this list of meals OK?").
				Options(
					huh.NewOption("Accept", choiceAccept),
					huh.NewOption("Regenerate", choiceRegenerate),
					huh.NewOption("Quit", choiceQuit),
				).
				Value(&choice),
		),
	)
	if err := form.Run(); err != nil {
		return "", fmt.Errorf("interactive form error: %w", err)
	}
	return choice, nil
}

// savePlan backs up the history store and appends the plan to it.
func (c *Context) savePlan(entries []models.PlanEntry) error {
	c.PerformAutomaticBackup()

	record := models.NewPlanRecord(entries, time.Now())
	if err := c.Store.SavePlan(record); err != nil {
		return fmt.Errorf("failed to save plan: %w", err)
	}
	logger.Info("Plan saved", "id", record.ID, "dishes", len(record.Dishes))

	fmt.Fprintf(c.out(), "✓ Plan saved to history (%d dishes)\n", len(record.Dishes))
	return nil
}
