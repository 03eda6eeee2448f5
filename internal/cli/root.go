package cli

import (
	"io"
	"os"
	"strings"

	"github.com/julianstephens/mealweek/internal/backup"
	"github.com/julianstephens/mealweek/internal/config"
	"github.com/julianstephens/mealweek/internal/logger"
	"github.com/julianstephens/mealweek/internal/storage"
)

// Context is handed to every command's Run method.
type Context struct {
	Settings *config.Settings
	Store    storage.Provider

	// Resolved document paths. SeasonalPath may be empty.
	CatalogPath  string
	SeasonalPath string

	Verbose bool
	Debug   bool

	Out io.Writer
}

func (c *Context) out() io.Writer {
	if c.Out == nil {
		return os.Stdout
	}
	return c.Out
}

// PerformAutomaticBackup snapshots file-based history stores and only logs
// failures.
func (c *Context) PerformAutomaticBackup() {
	path := c.Store.GetConfigPath()
	if storage.KindOf(path) == storage.KindPostgres {
		return
	}
	// Nothing to snapshot before the first accepted plan
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return
	}
	mgr := backup.NewManager(path)
	if _, err := mgr.Create(); err != nil {
		// Don't interrupt the user's workflow
		logger.Warn("Automatic backup failed", "error", err)
	}
}

// splitList flattens repeated and comma separated values, dropping blanks.
func splitList(values []string) []string {
	var out []string
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			part = strings.ToLower(strings.TrimSpace(part))
			if part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
