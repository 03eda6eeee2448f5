package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/julianstephens/mealweek/internal/storage"
)

type InitCmd struct {
	Force  bool   `help:"Delete an existing history file before initialization."`
	Source string `help:"History store (file, postgres URL or 'postgres') to copy accepted plans from."`
}

func (c *InitCmd) Run(ctx *Context) error {
	out := ctx.out()
	path := ctx.Store.GetConfigPath()

	if c.Force && storage.KindOf(path) != storage.KindPostgres {
		if c.Source != "" && samePath(c.Source, path) {
			return fmt.Errorf("cannot use --force when source and destination are the same: %s", path)
		}
		if _, err := os.Stat(path); err == nil {
			if err := ctx.Store.Close(); err != nil {
				return fmt.Errorf("failed to close existing history store: %w", err)
			}
			if err := os.Remove(path); err != nil {
				return fmt.Errorf("failed to delete existing history store: %w", err)
			}
			fmt.Fprintf(out, "Deleted existing history at: %s\n", path)
		} else if !os.IsNotExist(err) {
			return fmt.Errorf("failed to access existing history store: %w", err)
		}
	}

	if err := ctx.Store.Init(); err != nil {
		return err
	}
	fmt.Fprintf(out, "Initialized mealweek history at: %s\n", path)

	if c.Source != "" {
		fmt.Fprintf(out, "Migrating plans from: %s\n", maskPassword(c.Source))
		n, err := migratePlans(c.Source, ctx.Store)
		if err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
		fmt.Fprintf(out, "✓ Migrated %d plans\n", n)
	}
	return nil
}

// migratePlans copies every accepted plan of the source store into dst.
func migratePlans(source string, dst storage.Provider) (int, error) {
	src, err := storage.Open(source)
	if err != nil {
		return 0, err
	}
	if err := src.Load(); err != nil {
		return 0, fmt.Errorf("failed to load source history: %w", err)
	}
	defer src.Close()

	plans, err := src.ListPlans()
	if err != nil {
		return 0, fmt.Errorf("failed to list plans from source: %w", err)
	}
	for _, plan := range plans {
		if err := dst.SavePlan(plan); err != nil {
			return 0, fmt.Errorf("failed to save plan %s: %w", plan.ID, err)
		}
	}
	return len(plans), nil
}

func samePath(a, b string) bool {
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	if errA != nil || errB != nil {
		return a == b
	}
	return absA == absB
}
