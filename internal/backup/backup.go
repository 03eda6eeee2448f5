// Package backup snapshots the file-based history stores before they are
// modified and restores them on request.
package backup

import (
	"database/sql"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/julianstephens/mealweek/internal/constants"
	"github.com/julianstephens/mealweek/internal/documents"
	"github.com/julianstephens/mealweek/internal/logger"
)

const (
	minuteStamp = "20060102-1504"
	secondStamp = "20060102-150405"
)

// Info describes one backup file.
type Info struct {
	Path      string
	Timestamp time.Time
	Size      int64
}

// Manager handles the backups of one history store file. SQLite stores are
// snapshotted with VACUUM INTO, YAML documents are copied.
type Manager struct {
	storePath string
	backupDir string
	ext       string
	sqlite    bool
}

func NewManager(storePath string) *Manager {
	ext := strings.ToLower(filepath.Ext(storePath))
	if ext == "" {
		ext = ".yaml"
	}
	return &Manager{
		storePath: storePath,
		backupDir: filepath.Join(filepath.Dir(storePath), constants.BackupDirName),
		ext:       ext,
		sqlite:    ext == ".db" || ext == ".sqlite" || ext == ".sqlite3",
	}
}

func (m *Manager) BackupDir() string {
	return m.backupDir
}

// Create snapshots the store and prunes old backups beyond MaxBackups.
func (m *Manager) Create() (string, error) {
	path, err := m.create()
	if err != nil {
		return "", err
	}
	if err := m.rotate(); err != nil {
		logger.Warn("Failed to rotate old backups", "error", err)
	}
	return path, nil
}

func (m *Manager) create() (string, error) {
	if err := os.MkdirAll(m.backupDir, 0700); err != nil {
		return "", fmt.Errorf("failed to create backup directory: %w", err)
	}
	if _, err := os.Stat(m.storePath); os.IsNotExist(err) {
		return "", fmt.Errorf("history store does not exist: %s", m.storePath)
	}

	dest, err := m.nextPath(time.Now())
	if err != nil {
		return "", err
	}

	if m.sqlite {
		err = vacuumInto(m.storePath, dest)
	} else {
		err = copyFile(m.storePath, dest)
	}
	if err != nil {
		return "", fmt.Errorf("failed to back up history store: %w", err)
	}
	logger.Debug("Backup created", "path", dest)
	return dest, nil
}

// nextPath picks a free file name, falling back from minute to second
// precision and then to a counter suffix.
func (m *Manager) nextPath(now time.Time) (string, error) {
	candidate := func(stamp string, counter int) string {
		name := constants.BackupFilePrefix + stamp
		if counter > 0 {
			name += "-" + strconv.Itoa(counter)
		}
		return filepath.Join(m.backupDir, name+m.ext)
	}
	free := func(path string) bool {
		_, err := os.Stat(path)
		return os.IsNotExist(err)
	}

	if p := candidate(now.Format(minuteStamp), 0); free(p) {
		return p, nil
	}
	stamp := now.Format(secondStamp)
	for counter := 0; counter <= 100; counter++ {
		if p := candidate(stamp, counter); free(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("failed to generate unique backup filename")
}

func vacuumInto(src, dest string) error {
	db, err := sql.Open("sqlite", src+"?mode=ro")
	if err != nil {
		return fmt.Errorf("failed to open history database: %w", err)
	}
	defer db.Close()

	if err := verifySQLite(db); err != nil {
		return fmt.Errorf("history database appears to be corrupted: %w", err)
	}
	if _, err := db.Exec("VACUUM INTO ?", dest); err != nil {
		db.Close()
		return copyFile(src, dest)
	}
	return nil
}

func verifySQLite(db *sql.DB) error {
	var count int
	return db.QueryRow("SELECT COUNT(*) FROM sqlite_master").Scan(&count)
}

// parseName extracts the timestamp of a backup file name, ignoring any
// counter suffix. ok is false for files that are not backups.
func (m *Manager) parseName(name string) (time.Time, bool) {
	if !strings.HasPrefix(name, constants.BackupFilePrefix) || !strings.HasSuffix(name, m.ext) {
		return time.Time{}, false
	}
	stamp := strings.TrimSuffix(strings.TrimPrefix(name, constants.BackupFilePrefix), m.ext)

	parts := strings.Split(stamp, "-")
	if len(parts) == 3 {
		if _, err := strconv.Atoi(parts[2]); err == nil {
			stamp = parts[0] + "-" + parts[1]
		}
	}

	for _, layout := range []string{minuteStamp, secondStamp} {
		if ts, err := time.ParseInLocation(layout, stamp, time.Local); err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}

// List returns the backups of this store, newest first.
func (m *Manager) List() ([]Info, error) {
	entries, err := os.ReadDir(m.backupDir)
	if os.IsNotExist(err) {
		return []Info{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read backup directory: %w", err)
	}

	var backups []Info
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ts, ok := m.parseName(entry.Name())
		if !ok {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		backups = append(backups, Info{
			Path:      filepath.Join(m.backupDir, entry.Name()),
			Timestamp: ts,
			Size:      info.Size(),
		})
	}

	sort.SliceStable(backups, func(i, j int) bool {
		if backups[i].Timestamp.Equal(backups[j].Timestamp) {
			return backups[i].Path > backups[j].Path
		}
		return backups[i].Timestamp.After(backups[j].Timestamp)
	})
	return backups, nil
}

func (m *Manager) rotate() error {
	backups, err := m.List()
	if err != nil {
		return err
	}
	for i := constants.MaxBackups; i < len(backups); i++ {
		if err := os.Remove(backups[i].Path); err != nil {
			return fmt.Errorf("failed to remove old backup %s: %w", backups[i].Path, err)
		}
	}
	return nil
}

// Restore replaces the store with a backup after verifying it. The current
// store is backed up first, without rotation.
func (m *Manager) Restore(backupPath string) error {
	if _, err := os.Stat(backupPath); os.IsNotExist(err) {
		return fmt.Errorf("backup file does not exist: %s", backupPath)
	}
	if err := m.verify(backupPath); err != nil {
		return fmt.Errorf("backup file is corrupted or invalid: %w", err)
	}

	if _, err := os.Stat(m.storePath); err == nil {
		current, err := m.create()
		if err != nil {
			return fmt.Errorf("failed to back up current history before restore: %w", err)
		}
		logger.Info("Backed up current history before restore", "path", current)
	}

	tmp := m.storePath + ".restore.tmp"
	if err := copyFile(backupPath, tmp); err != nil {
		return fmt.Errorf("failed to copy backup file: %w", err)
	}
	if err := os.Rename(tmp, m.storePath); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("failed to restore history: %w", err)
	}
	return nil
}

func (m *Manager) verify(path string) error {
	if !m.sqlite {
		_, err := documents.ReadHistory(path)
		return err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return err
	}
	defer db.Close()
	return verifySQLite(db)
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Sync()
}
