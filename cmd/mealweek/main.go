package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/mealweek/internal/cli"
	"github.com/julianstephens/mealweek/internal/config"
	"github.com/julianstephens/mealweek/internal/constants"
	"github.com/julianstephens/mealweek/internal/documents"
	"github.com/julianstephens/mealweek/internal/errors"
	"github.com/julianstephens/mealweek/internal/logger"
	"github.com/julianstephens/mealweek/internal/storage"
)

var CLI struct {
	Version  kong.VersionFlag
	Config   string `help:"Settings file path (default ~/.config/mealweek/config.yaml or $MEALWEEK_CONFIG)." type:"path"`
	Catalog  string `short:"c" help:"Dish catalog YAML file." type:"path"`
	Seasonal string `short:"s" help:"Seasonal vegetables YAML file." type:"path"`
	History  string `help:"History store: YAML file, SQLite file (.db), PostgreSQL URL or 'postgres' for the keyring/environment connection string. Credentials must NOT be embedded in a URL."`
	Verbose  bool   `short:"v" xor:"verbosity" help:"Verbose output."`
	Debug    bool   `short:"d" xor:"verbosity" help:"Debug output."`

	Generate cli.GenerateCmd `cmd:"" help:"Generate a weekly meal plan." default:"withargs"`
	Check    cli.CheckCmd    `cmd:"" help:"Validate the catalog, seasonal calendar and quotas."`
	Plans    struct {
		List cli.HistoryListCmd `cmd:"" help:"List accepted plans." default:"1"`
	} `cmd:"" name:"history" help:"Show the history of accepted plans."`
	Init   cli.InitCmd   `cmd:"" help:"Initialize the history store."`
	Doctor cli.DoctorCmd `cmd:"" help:"Run health checks and diagnostics."`
	Backup struct {
		Create  cli.BackupCreateCmd  `cmd:"" help:"Create a manual backup." default:"1"`
		List    cli.BackupListCmd    `cmd:"" help:"List available backups."`
		Restore cli.BackupRestoreCmd `cmd:"" help:"Restore from a backup."`
	} `cmd:"" help:"Manage history backups."`
	Keyring struct {
		Set    cli.KeyringSetCmd    `cmd:"" help:"Store the PostgreSQL connection string in the OS keyring."`
		Delete cli.KeyringDeleteCmd `cmd:"" help:"Remove the connection string from the OS keyring."`
		Status cli.KeyringStatusCmd `cmd:"" help:"Show keyring availability and the connection string source."`
	} `cmd:"" help:"Manage the history database connection string."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Weekly meal plan generator with seasonal, history and leftover awareness"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": constants.Version},
	)

	settings, err := config.LoadSettings(config.SettingsPath(CLI.Config))
	if err != nil {
		errors.Fatal(&errors.ConfigurationError{Reason: err.Error()})
	}

	if err := logger.Init(logger.Config{
		Verbose: CLI.Verbose,
		Debug:   CLI.Debug,
		LogDir:  settings.LogDir,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize logging: %v\n", err)
	}

	appCtx := &cli.Context{
		Settings:     settings,
		CatalogPath:  documents.Resolve(firstNonEmpty(CLI.Catalog, settings.CatalogPath), constants.DefaultCatalogFile),
		SeasonalPath: documents.Resolve(firstNonEmpty(CLI.Seasonal, settings.SeasonalPath), constants.DefaultSeasonalFile),
		Verbose:      CLI.Verbose,
		Debug:        CLI.Debug,
	}

	// Keyring commands manage the credentials the store would need
	command := ctx.Command()
	if !strings.HasPrefix(command, "keyring") {
		historyTarget := firstNonEmpty(CLI.History, settings.HistoryPath,
			filepath.Join(config.Dir(), constants.DefaultHistoryFile))
		store, err := storage.Open(historyTarget)
		if err != nil {
			errors.Fatal(err)
		}
		appCtx.Store = store

		// Init handles its own loading
		if !strings.HasPrefix(command, "init") {
			if err := store.Load(); err != nil {
				errors.Fatal(err)
			}
		}
		defer store.Close()
	}

	logger.Debug("Running command", "command", command, "catalog", appCtx.CatalogPath, "seasonal", appCtx.SeasonalPath)

	if err := ctx.Run(appCtx); err != nil {
		if appCtx.Store != nil {
			appCtx.Store.Close()
		}
		code := errors.Report(os.Stderr, err)
		logger.Close()
		os.Exit(code)
	}
	logger.Close()
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
