// Package keyring keeps the PostgreSQL connection string of the history
// store in the OS keyring.
package keyring

import (
	"errors"
	"fmt"
	"os"

	"github.com/zalando/go-keyring"

	"github.com/julianstephens/mealweek/internal/constants"
)

var (
	ErrNotFound           = errors.New("connection string not found in keyring")
	ErrKeyringUnavailable = errors.New("OS keyring is not available")
)

// Source tells where a resolved connection string came from.
type Source string

const (
	SourceEnv     Source = "environment"
	SourceKeyring Source = "keyring"
)

func Get() (string, error) {
	connStr, err := keyring.Get(constants.AppName, constants.DefaultKeyringUser)
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("%w: %v", ErrKeyringUnavailable, err)
	}
	return connStr, nil
}

func Set(connStr string) error {
	if connStr == "" {
		return errors.New("connection string cannot be empty")
	}
	if err := keyring.Set(constants.AppName, constants.DefaultKeyringUser, connStr); err != nil {
		return fmt.Errorf("failed to store connection string in keyring: %w", err)
	}
	return nil
}

func Delete() error {
	if err := keyring.Delete(constants.AppName, constants.DefaultKeyringUser); err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete connection string from keyring: %w", err)
	}
	return nil
}

// IsAvailable probes the keyring with a read. A missing entry still means
// the keyring works.
func IsAvailable() bool {
	_, err := keyring.Get(constants.AppName, "availability-probe")
	return err == nil || errors.Is(err, keyring.ErrNotFound)
}

// Resolve returns the connection string from $MEALWEEK_DB_CONNECTION, or
// from the keyring when the variable is unset.
func Resolve() (string, Source, error) {
	if connStr := os.Getenv(constants.EnvDBConnection); connStr != "" {
		return connStr, SourceEnv, nil
	}
	connStr, err := Get()
	if err != nil {
		return "", "", err
	}
	return connStr, SourceKeyring, nil
}
