package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"

	"github.com/julianstephens/mealweek/internal/constants"
)

// Settings are the persistent defaults of the tool. Command line flags
// override them.
type Settings struct {
	CatalogPath  string `koanf:"catalog"`
	SeasonalPath string `koanf:"seasonal"`
	HistoryPath  string `koanf:"history"`
	Meals        int    `koanf:"meals" validate:"gte=0"`
	VeggieMeals  int    `koanf:"veggie_meals" validate:"gte=0"`
	SpecialMeals int    `koanf:"special_meals" validate:"gte=0"`
	HistoryWeeks int    `koanf:"history_weeks" validate:"gte=0"`
	LogDir       string `koanf:"log_dir"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

func defaultSettings() *Settings {
	return &Settings{
		Meals:        constants.DefaultMeals,
		VeggieMeals:  constants.DefaultVeggieMeals,
		SpecialMeals: constants.DefaultSpecialMeals,
		HistoryWeeks: constants.DefaultHistoryWeeks,
		LogDir:       filepath.Join(Dir(), "logs"),
	}
}

// Dir returns the per-user configuration directory of the tool.
func Dir() string {
	if base, err := os.UserConfigDir(); err == nil {
		return filepath.Join(base, constants.AppName)
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", constants.AppName)
}

// SettingsPath resolves the settings file: explicit path, then
// $MEALWEEK_CONFIG, then the default file in Dir.
func SettingsPath(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if p := os.Getenv(constants.EnvConfigPath); p != "" {
		return p
	}
	return filepath.Join(Dir(), constants.DefaultSettingsFile)
}

// LoadSettings layers defaults, the optional YAML settings file and
// MEALWEEK_* environment variables, then validates the result.
func LoadSettings(path string) (*Settings, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultSettings(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("failed to load settings file %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to access settings file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	s := &Settings{}
	if err := k.Unmarshal("", s); err != nil {
		return nil, fmt.Errorf("failed to unmarshal settings: %w", err)
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Validate checks field ranges and that the category quotas fit in the meal count.
func (s *Settings) Validate() error {
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}
	if s.VeggieMeals+s.SpecialMeals > s.Meals {
		return fmt.Errorf("invalid settings: %d veggie and %d special meals exceed %d meals",
			s.VeggieMeals, s.SpecialMeals, s.Meals)
	}
	return nil
}

var envKeys = map[string]string{
	"catalog":       "catalog",
	"seasonal":      "seasonal",
	"history":       "history",
	"meals":         "meals",
	"veggie_meals":  "veggie_meals",
	"special_meals": "special_meals",
	"history_weeks": "history_weeks",
	"log_dir":       "log_dir",
}

// envTransformFunc maps MEALWEEK_* variables onto settings keys. Anything else
// is skipped so unrelated environment does not leak into the settings.
func envTransformFunc(key string) string {
	if !strings.HasPrefix(key, constants.EnvPrefix) {
		return ""
	}
	key = strings.ToLower(strings.TrimPrefix(key, constants.EnvPrefix))
	return envKeys[key]
}
