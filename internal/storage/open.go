package storage

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/julianstephens/mealweek/internal/constants"
	"github.com/julianstephens/mealweek/internal/keyring"
	"github.com/julianstephens/mealweek/internal/logger"
	"github.com/julianstephens/mealweek/internal/storage/postgres"
	"github.com/julianstephens/mealweek/internal/storage/sqlite"
)

// PostgresKeyword selects PostgreSQL with the connection string taken from
// the environment or the OS keyring.
const PostgresKeyword = "postgres"

var ErrNoStore = errors.New("no history store configured")

// Kind names a backend.
type Kind string

const (
	KindYAML     Kind = "yaml"
	KindSQLite   Kind = "sqlite"
	KindPostgres Kind = "postgres"
)

// KindOf picks the backend for a target: a PostgreSQL URL or the postgres
// keyword, a .db or .sqlite file, otherwise a YAML document.
func KindOf(target string) Kind {
	if postgres.IsConnString(target) || strings.EqualFold(target, PostgresKeyword) {
		return KindPostgres
	}
	switch strings.ToLower(filepath.Ext(target)) {
	case ".db", ".sqlite", ".sqlite3":
		return KindSQLite
	}
	return KindYAML
}

// Open returns an unopened provider for target. Connection strings given on
// the command line or in settings must not embed a password.
func Open(target string) (Provider, error) {
	if target == "" {
		return nil, ErrNoStore
	}

	switch KindOf(target) {
	case KindPostgres:
		if strings.EqualFold(target, PostgresKeyword) {
			connStr, source, err := keyring.Resolve()
			if err != nil {
				return nil, fmt.Errorf("failed to resolve PostgreSQL connection string: %w", err)
			}
			logger.Debug("Using PostgreSQL history store", "source", source)
			return postgres.New(connStr), nil
		}
		if err := postgres.ValidateConnString(target); err != nil {
			if errors.Is(err, postgres.ErrEmbeddedCredentials) {
				return nil, fmt.Errorf("%w: use $%s, .pgpass or 'mealweek keyring set' instead", err, constants.EnvDBConnection)
			}
			return nil, err
		}
		return postgres.New(target), nil
	case KindSQLite:
		return sqlite.New(target), nil
	}
	return NewYAMLStore(target), nil
}
