package cli

import (
	"fmt"

	"github.com/julianstephens/mealweek/internal/config"
	"github.com/julianstephens/mealweek/internal/documents"
	"github.com/julianstephens/mealweek/internal/filter"
	"github.com/julianstephens/mealweek/internal/validation"
)

// CheckCmd validates the documents and quotas without drawing a plan.
type CheckCmd struct {
	QuotaFlags `embed:""`
}

func (c *CheckCmd) Run(ctx *Context) error {
	p, err := c.BuildPipeline(ctx, config.WithCheckOnly(true))
	if err != nil {
		return err
	}
	out := ctx.out()

	coll, err := documents.BuildCatalog(p.Catalog, p.Config)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, "Validating catalog...")
	result := validation.New().ValidateCatalog(coll, p.Calendar)

	filtered, err := filter.New(p.Config).Apply(coll, p.Calendar, p.History, p.Weeks)
	if err != nil {
		// A calendar without the current month is already among the conflicts
		fmt.Fprintln(out)
		fmt.Fprintln(out, result.FormatReport())
		return err
	}
	fmt.Fprintf(out, "  %d dishes, %d out of season, %d served recently\n",
		coll.Len(), len(filtered.Seasonal), len(filtered.History))

	fmt.Fprintln(out, "Validating quotas...")
	result.Merge(validation.New().ValidateQuotas(coll, p.Quotas))
	fmt.Fprintf(out, "  %d meals: %d/%d veggie, %d/%d special available\n",
		p.Quotas.Total, p.Quotas.Veggie, coll.CountVeggie(), p.Quotas.Special, coll.CountSpecial())

	fmt.Fprintln(out)
	fmt.Fprintln(out, result.FormatReport())

	if _, err := p.Run(); err != nil {
		return err
	}
	fmt.Fprintln(out, "✓ Config is valid")
	return nil
}
