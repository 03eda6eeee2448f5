package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/julianstephens/mealweek/internal/constants"
	"github.com/julianstephens/mealweek/internal/keyring"
	"github.com/julianstephens/mealweek/internal/storage"
	"github.com/julianstephens/mealweek/internal/storage/postgres"
)

// KeyringSetCmd stores the history database connection string in the OS keyring.
type KeyringSetCmd struct {
	ConnectionString string `arg:"" help:"PostgreSQL connection string to store in the keyring."`
}

func (cmd *KeyringSetCmd) Run(ctx *Context) error {
	out := ctx.out()
	if !postgres.IsConnString(cmd.ConnectionString) && !strings.Contains(cmd.ConnectionString, "host=") {
		return errors.New("connection string must be a valid PostgreSQL connection string")
	}

	if err := postgres.ValidateConnString(cmd.ConnectionString); err != nil {
		if !errors.Is(err, postgres.ErrEmbeddedCredentials) {
			return fmt.Errorf("invalid connection string: %w", err)
		}
		// The keyring is an acceptable home for a password
		fmt.Fprintln(out, "⚠ Connection string contains a password. It will be stored as-is in the OS keyring.")
	}

	if err := keyring.Set(cmd.ConnectionString); err != nil {
		return err
	}

	fmt.Fprintln(out, "✓ Connection string stored in OS keyring")
	fmt.Fprintf(out, "  Use --history %s to keep history in PostgreSQL\n", storage.PostgresKeyword)
	return nil
}

// KeyringDeleteCmd removes the connection string from the OS keyring.
type KeyringDeleteCmd struct{}

func (cmd *KeyringDeleteCmd) Run(ctx *Context) error {
	if err := keyring.Delete(); err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return errors.New("no connection string found in keyring")
		}
		return err
	}
	fmt.Fprintln(ctx.out(), "✓ Connection string deleted from OS keyring")
	return nil
}

// KeyringStatusCmd reports where the connection string would be taken from.
type KeyringStatusCmd struct{}

func (cmd *KeyringStatusCmd) Run(ctx *Context) error {
	out := ctx.out()
	if !keyring.IsAvailable() {
		fmt.Fprintln(out, "❌ OS keyring is not available on this system")
		return keyring.ErrKeyringUnavailable
	}
	fmt.Fprintln(out, "✓ OS keyring is available")

	connStr, source, err := keyring.Resolve()
	switch {
	case err == nil:
		fmt.Fprintf(out, "✓ Connection string from %s: %s\n", source, maskPassword(connStr))
	case errors.Is(err, keyring.ErrNotFound):
		fmt.Fprintf(out, "ℹ No connection string stored (set one with 'mealweek keyring set' or $%s)\n", constants.EnvDBConnection)
	default:
		return err
	}
	return nil
}

// maskPassword hides the password of a URL or key/value connection string.
func maskPassword(connStr string) string {
	if postgres.IsConnString(connStr) {
		idx := strings.Index(connStr, "://") + 3
		rest := connStr[idx:]
		// The last @ separates user info from the host
		if at := strings.LastIndex(rest, "@"); at != -1 {
			if colon := strings.Index(rest[:at], ":"); colon != -1 {
				return connStr[:idx] + rest[:colon] + ":****" + rest[at:]
			}
		}
		return connStr
	}

	if strings.Contains(connStr, "password=") {
		parts := strings.Fields(connStr)
		for i, part := range parts {
			if strings.HasPrefix(part, "password=") {
				parts[i] = "password=****"
			}
		}
		return strings.Join(parts, " ")
	}
	return connStr
}
