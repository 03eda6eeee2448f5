package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/julianstephens/mealweek/internal/constants"
)

func writeSettings(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write settings: %v", err)
	}
	return path
}

func TestLoadSettingsDefaults(t *testing.T) {
	s, err := LoadSettings(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("LoadSettings failed: %v", err)
	}

	if s.Meals != constants.DefaultMeals || s.HistoryWeeks != constants.DefaultHistoryWeeks {
		t.Errorf("unexpected defaults: %+v", s)
	}
	if s.VeggieMeals != 0 || s.SpecialMeals != 0 {
		t.Errorf("category quotas should default to 0: %+v", s)
	}
	if s.LogDir == "" {
		t.Error("LogDir should default under the config directory")
	}
}

func TestLoadSettingsFile(t *testing.T) {
	path := writeSettings(t, `catalog: /srv/meals/database.yaml
meals: 5
veggie_meals: 2
special_meals: 1
history_weeks: 3
`)
	s, err := LoadSettings(path)
	if err != nil {
		t.Fatalf("LoadSettings failed: %v", err)
	}

	want := Settings{
		CatalogPath:  "/srv/meals/database.yaml",
		Meals:        5,
		VeggieMeals:  2,
		SpecialMeals: 1,
		HistoryWeeks: 3,
		LogDir:       s.LogDir,
	}
	if *s != want {
		t.Errorf("LoadSettings() = %+v, want %+v", *s, want)
	}
}

func TestLoadSettingsEnvOverridesFile(t *testing.T) {
	path := writeSettings(t, "meals: 5\n")
	t.Setenv("MEALWEEK_MEALS", "6")
	t.Setenv("MEALWEEK_HISTORY_WEEKS", "2")
	t.Setenv("MEALWEEK_UNKNOWN", "ignored")

	s, err := LoadSettings(path)
	if err != nil {
		t.Fatalf("LoadSettings failed: %v", err)
	}
	if s.Meals != 6 || s.HistoryWeeks != 2 {
		t.Errorf("environment not applied: %+v", s)
	}
}

func TestLoadSettingsInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"negative meals", "meals: -1\n"},
		{"quotas exceed meals", "meals: 3\nveggie_meals: 2\nspecial_meals: 2\n"},
		{"malformed yaml", "meals: [unclosed\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadSettings(writeSettings(t, tt.content)); err == nil {
				t.Error("LoadSettings should fail")
			}
		})
	}
}

func TestSettingsPath(t *testing.T) {
	t.Setenv(constants.EnvConfigPath, "")
	if got := SettingsPath("/etc/mealweek.yaml"); got != "/etc/mealweek.yaml" {
		t.Errorf("explicit path ignored: %q", got)
	}
	if got := SettingsPath(""); got != filepath.Join(Dir(), constants.DefaultSettingsFile) {
		t.Errorf("default path = %q", got)
	}

	t.Setenv(constants.EnvConfigPath, "/tmp/custom.yaml")
	if got := SettingsPath(""); got != "/tmp/custom.yaml" {
		t.Errorf("$%s ignored: %q", constants.EnvConfigPath, got)
	}
}

func TestEnvTransformFunc(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"MEALWEEK_MEALS", "meals"},
		{"MEALWEEK_VEGGIE_MEALS", "veggie_meals"},
		{"MEALWEEK_DB_CONNECTION", ""},
		{"MEALWEEK_CONFIG", ""},
		{"HOME", ""},
	}

	for _, tt := range tests {
		if got := envTransformFunc(tt.in); got != tt.want {
			t.Errorf("envTransformFunc(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
