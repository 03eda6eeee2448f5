package keyring

import (
	"errors"
	"testing"

	gokeyring "github.com/zalando/go-keyring"

	"github.com/julianstephens/mealweek/internal/constants"
)

func TestSetAndGet(t *testing.T) {
	gokeyring.MockInit()

	connStr := "postgres://cook@localhost:5432/meals?sslmode=disable"
	if err := Set(connStr); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}

	got, err := Get()
	if err != nil {
		t.Fatalf("Get() failed: %v", err)
	}
	if got != connStr {
		t.Errorf("Get() = %q, want %q", got, connStr)
	}
}

func TestSetEmpty(t *testing.T) {
	gokeyring.MockInit()

	if err := Set(""); err == nil {
		t.Error("Set(\"\") should return an error")
	}
}

func TestDelete(t *testing.T) {
	gokeyring.MockInit()

	if err := Set("postgres://cook@localhost/meals"); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}
	if err := Delete(); err != nil {
		t.Fatalf("Delete() failed: %v", err)
	}
	if _, err := Get(); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get() after Delete() error = %v, want %v", err, ErrNotFound)
	}
	if err := Delete(); !errors.Is(err, ErrNotFound) {
		t.Errorf("second Delete() error = %v, want %v", err, ErrNotFound)
	}
}

func TestIsAvailable(t *testing.T) {
	gokeyring.MockInit()

	if !IsAvailable() {
		t.Error("IsAvailable() = false, want true with the mock keyring")
	}
}

func TestResolve(t *testing.T) {
	gokeyring.MockInit()
	_ = Delete()

	t.Setenv(constants.EnvDBConnection, "")
	if _, _, err := Resolve(); !errors.Is(err, ErrNotFound) {
		t.Errorf("Resolve() with nothing configured = %v, want ErrNotFound", err)
	}

	if err := Set("postgres://from-keyring@localhost/meals"); err != nil {
		t.Fatal(err)
	}
	connStr, source, err := Resolve()
	if err != nil || source != SourceKeyring || connStr != "postgres://from-keyring@localhost/meals" {
		t.Errorf("Resolve() = %q, %q, %v; want keyring value", connStr, source, err)
	}

	t.Setenv(constants.EnvDBConnection, "postgres://from-env@localhost/meals")
	connStr, source, err = Resolve()
	if err != nil || source != SourceEnv || connStr != "postgres://from-env@localhost/meals" {
		t.Errorf("Resolve() = %q, %q, %v; want environment value", connStr, source, err)
	}
}
