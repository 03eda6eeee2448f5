package cli

import (
	"fmt"
	"strings"

	"github.com/julianstephens/mealweek/internal/constants"
)

// HistoryListCmd shows accepted plans, newest last.
type HistoryListCmd struct {
	Limit int `help:"Show only the N most recent plans (0 for all)." default:"0"`
}

func (c *HistoryListCmd) Run(ctx *Context) error {
	if c.Limit < 0 {
		return fmt.Errorf("limit must not be negative: %d", c.Limit)
	}

	plans, err := ctx.Store.ListPlans()
	if err != nil {
		return fmt.Errorf("failed to list plans: %w", err)
	}
	out := ctx.out()

	if len(plans) == 0 {
		fmt.Fprintln(out, "No plans accepted yet.")
		return nil
	}
	if c.Limit > 0 && len(plans) > c.Limit {
		plans = plans[len(plans)-c.Limit:]
	}

	for i, plan := range plans {
		if i > 0 {
			fmt.Fprintln(out)
		}
		accepted := "unknown date"
		if !plan.AcceptedAt.IsZero() {
			accepted = plan.AcceptedAt.Local().Format(constants.DateFormat + " 15:04")
		}
		fmt.Fprintf(out, "%s  %s  (%d dishes)\n", accepted, dimStyle.Render(shortID(plan.ID)), len(plan.Dishes))
		fmt.Fprintf(out, "  %s\n", strings.Join(plan.Names(), ", "))
	}
	return nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
