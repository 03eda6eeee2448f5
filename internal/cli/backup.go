package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/mealweek/internal/backup"
	"github.com/julianstephens/mealweek/internal/constants"
	"github.com/julianstephens/mealweek/internal/storage"
)

var errPostgresBackup = errors.New("backups of a PostgreSQL history are not supported, use pg_dump instead")

func (c *Context) backupManager() (*backup.Manager, error) {
	path := c.Store.GetConfigPath()
	if storage.KindOf(path) == storage.KindPostgres {
		return nil, errPostgresBackup
	}
	return backup.NewManager(path), nil
}

type BackupCreateCmd struct{}

func (c *BackupCreateCmd) Run(ctx *Context) error {
	mgr, err := ctx.backupManager()
	if err != nil {
		return err
	}
	backupPath, err := mgr.Create()
	if err != nil {
		return fmt.Errorf("backup failed: %w", err)
	}

	fmt.Fprintf(ctx.out(), "✓ Backup created: %s\n", filepath.Base(backupPath))
	return nil
}

type BackupListCmd struct{}

func (c *BackupListCmd) Run(ctx *Context) error {
	mgr, err := ctx.backupManager()
	if err != nil {
		return err
	}
	backups, err := mgr.List()
	if err != nil {
		return fmt.Errorf("failed to list backups: %w", err)
	}
	out := ctx.out()

	if len(backups) == 0 {
		fmt.Fprintln(out, "No backups found.")
		fmt.Fprintf(out, "Backups are stored in: %s\n", mgr.BackupDir())
		return nil
	}

	fmt.Fprintf(out, "Available backups (%d total, keeping most recent %d):\n\n", len(backups), constants.MaxBackups)
	for _, b := range backups {
		sizeKB := float64(b.Size) / 1024.0
		fmt.Fprintf(out, "  %s  %s  (%.1f KB)\n", b.Timestamp.Format("2006-01-02 15:04:05"), filepath.Base(b.Path), sizeKB)
	}
	fmt.Fprintf(out, "\nBackup directory: %s\n", mgr.BackupDir())
	return nil
}

type BackupRestoreCmd struct {
	BackupFile string `arg:"" help:"Path or filename of the backup to restore."`
	Yes        bool   `short:"y" help:"Restore without asking for confirmation."`
}

func (c *BackupRestoreCmd) Run(ctx *Context) error {
	mgr, err := ctx.backupManager()
	if err != nil {
		return err
	}
	out := ctx.out()

	backupPath := c.resolve(mgr)
	if _, err := os.Stat(backupPath); os.IsNotExist(err) {
		return fmt.Errorf("backup file not found: %s", backupPath)
	}

	if !c.Yes {
		fmt.Fprintln(out, "⚠ This will replace your current history with the backup.")
		fmt.Fprintln(out, "A backup of the current history will be created before restoring.")

		confirmed := false
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title(fmt.Sprintf("Restore from %s?", filepath.Base(backupPath))).
					Value(&confirmed),
			),
		)
		if err := form.Run(); err != nil {
			return fmt.Errorf("interactive form error: %w", err)
		}
		if !confirmed {
			fmt.Fprintln(out, "Restore cancelled.")
			return nil
		}
	}

	// Release the database before its file is replaced
	if err := ctx.Store.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to close history store: %v\n", err)
	}

	if err := mgr.Restore(backupPath); err != nil {
		return fmt.Errorf("restore failed: %w", err)
	}

	fmt.Fprintln(out, "✓ History restored successfully!")
	return nil
}

// resolve accepts a bare backup file name as well as a path.
func (c *BackupRestoreCmd) resolve(mgr *backup.Manager) string {
	if filepath.IsAbs(c.BackupFile) {
		return c.BackupFile
	}
	candidate := filepath.Join(mgr.BackupDir(), c.BackupFile)
	if _, err := os.Stat(candidate); err == nil {
		return candidate
	}
	return c.BackupFile
}
