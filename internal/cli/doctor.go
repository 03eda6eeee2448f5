package cli

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/julianstephens/mealweek/internal/backup"
	"github.com/julianstephens/mealweek/internal/config"
	"github.com/julianstephens/mealweek/internal/documents"
	"github.com/julianstephens/mealweek/internal/logger"
	"github.com/julianstephens/mealweek/internal/seasonal"
	"github.com/julianstephens/mealweek/internal/storage"
)

// schemaVersioner is implemented by the database backed history stores.
type schemaVersioner interface {
	SchemaVersion() (current, latest int, err error)
}

type DoctorCmd struct{}

func (cmd *DoctorCmd) Run(ctx *Context) error {
	out := ctx.out()
	fmt.Fprintln(out, "Running diagnostics...")
	fmt.Fprintln(out)

	hasError := false
	report := func(name string, err error) {
		if err != nil {
			fmt.Fprintf(out, "❌ %s: FAIL\n", name)
			fmt.Fprintf(out, "   Error: %v\n", err)
			hasError = true
			return
		}
		fmt.Fprintf(out, "✓ %s: OK\n", name)
	}

	report("Catalog readable", checkCatalog(ctx))
	report("Seasonal calendar", checkSeasonal(ctx))
	report("History reachable", checkHistory(ctx))
	report("Schema version", checkSchemaVersion(ctx))

	// Backups are a warning only
	if err := checkBackupsPresent(ctx); err != nil {
		fmt.Fprintf(out, "⚠ Backups present: WARNING\n")
		fmt.Fprintf(out, "   %v\n", err)
	} else {
		fmt.Fprintf(out, "✓ Backups present: OK\n")
	}

	report("Clock", checkClock(out))

	if path := logger.Path(); path != "" {
		fmt.Fprintf(out, "\nLog file: %s\n", path)
	}

	fmt.Fprintln(out)
	if hasError {
		fmt.Fprintln(out, "Diagnostics completed with errors.")
		return errors.New("one or more health checks failed")
	}
	fmt.Fprintln(out, "All diagnostics passed!")
	return nil
}

func checkCatalog(ctx *Context) error {
	if ctx.CatalogPath == "" {
		return fmt.Errorf("no catalog found in %s", config.Dir())
	}
	doc, err := documents.ReadCatalog(ctx.CatalogPath)
	if err != nil {
		return err
	}
	coll, err := documents.BuildCatalog(doc, config.New())
	if err != nil {
		return err
	}
	if coll.Len() == 0 {
		return errors.New("catalog holds no dishes")
	}
	return nil
}

func checkSeasonal(ctx *Context) error {
	if ctx.SeasonalPath == "" {
		return nil
	}
	doc, err := documents.ReadSeasonal(ctx.SeasonalPath)
	if err != nil {
		return err
	}
	cal, err := documents.BuildCalendar(doc)
	if err != nil {
		return err
	}
	if cal.Len() == 0 {
		return nil
	}
	if _, err := cal.CurrentMonth(); errors.Is(err, seasonal.ErrMonthNotFound) {
		return err
	}
	return nil
}

func checkHistory(ctx *Context) error {
	if _, err := ctx.Store.History(); err != nil {
		return fmt.Errorf("failed to read history: %w", err)
	}
	return nil
}

func checkSchemaVersion(ctx *Context) error {
	sv, ok := ctx.Store.(schemaVersioner)
	if !ok {
		// YAML history has no schema
		return nil
	}
	current, latest, err := sv.SchemaVersion()
	if err != nil {
		return err
	}
	if current > latest {
		return fmt.Errorf("history schema version (%d) is newer than supported version (%d)", current, latest)
	}
	if current < latest {
		return fmt.Errorf("migrations incomplete: current version %d, latest version %d", current, latest)
	}
	return nil
}

func checkBackupsPresent(ctx *Context) error {
	path := ctx.Store.GetConfigPath()
	if storage.KindOf(path) == storage.KindPostgres {
		return errPostgresBackup
	}
	backups, err := backup.NewManager(path).List()
	if err != nil {
		return fmt.Errorf("failed to list backups: %w", err)
	}
	if len(backups) == 0 {
		return errors.New("no backups found, consider creating one with 'mealweek backup create'")
	}
	return nil
}

// checkClock guards the seasonal lookup, which trusts the system date.
func checkClock(out io.Writer) error {
	now := time.Now()
	if now.Year() < 2020 || now.Year() > 2100 {
		return fmt.Errorf("system time appears incorrect: %s", now.Format(time.RFC3339))
	}
	if _, offset := now.Zone(); offset == 0 && now.Location() == time.UTC {
		fmt.Fprintf(out, "   Note: timezone is UTC\n")
	}
	return nil
}
