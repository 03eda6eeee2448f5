// Package documents reads and writes the YAML catalog, seasonal and history
// documents and turns them into engine values.
package documents

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/julianstephens/mealweek/internal/catalog"
	"github.com/julianstephens/mealweek/internal/config"
	"github.com/julianstephens/mealweek/internal/errors"
	"github.com/julianstephens/mealweek/internal/logger"
	"github.com/julianstephens/mealweek/internal/models"
	"github.com/julianstephens/mealweek/internal/seasonal"
)

const (
	keyMeal        = "meal"
	keyVeggie      = "is_veggie_compatible"
	keySpecial     = "is_special"
	keyIngredients = "mandatory_ingredients"
)

// Catalog is the raw catalog document. Records are kept as maps because the
// veggie and special flags are presence flags: a key with a null value still
// sets the flag.
type Catalog struct {
	Path  string                   `yaml:"-"`
	Meals []map[string]interface{} `yaml:"meals"`
}

// Seasonal is the raw seasonal document.
type Seasonal struct {
	Path   string        `yaml:"-"`
	Months []MonthRecord `yaml:"months"`
}

type MonthRecord struct {
	Month      string   `yaml:"month"`
	Vegetables []string `yaml:"vegetables"`
}

// History is the served-dish log, oldest first.
type History struct {
	Path  string             `yaml:"-"`
	Meals []models.PlanEntry `yaml:"meals"`
}

// Names returns the logged dish names, lowercased.
func (h *History) Names() []string {
	names := make([]string, 0, len(h.Meals))
	for _, m := range h.Meals {
		if m.Name != "" {
			names = append(names, normalize(m.Name))
		}
	}
	return names
}

// Append adds the entries of an accepted plan at the end of the log.
func (h *History) Append(entries ...models.PlanEntry) {
	for _, e := range entries {
		h.Meals = append(h.Meals, models.PlanEntry{Name: e.Name})
	}
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func readYAML(source, path string, out interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return &errors.DataSourceError{Source: source, Path: path, Err: err}
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return &errors.DataSourceError{Source: source, Path: path, Err: fmt.Errorf("failed to parse YAML: %w", err)}
	}
	return nil
}

func ReadCatalog(path string) (*Catalog, error) {
	doc := &Catalog{Path: path}
	if err := readYAML("catalog", path, doc); err != nil {
		return nil, err
	}
	logger.Debug("Catalog document loaded", "path", path, "records", len(doc.Meals))
	return doc, nil
}

func ReadSeasonal(path string) (*Seasonal, error) {
	doc := &Seasonal{Path: path}
	if err := readYAML("seasonal", path, doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// ReadHistory loads the history log. A missing file is an empty log.
func ReadHistory(path string) (*History, error) {
	doc := &History{Path: path}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return doc, nil
	}
	if err := readYAML("history", path, doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// WriteHistory rewrites the history document atomically.
func WriteHistory(doc *History) error {
	data, err := yaml.Marshal(doc)
	if err != nil {
		return &errors.DataSourceError{Source: "history", Path: doc.Path, Err: err}
	}
	if err := os.MkdirAll(filepath.Dir(doc.Path), 0755); err != nil {
		return &errors.DataSourceError{Source: "history", Path: doc.Path, Err: err}
	}
	tmp := doc.Path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return &errors.DataSourceError{Source: "history", Path: doc.Path, Err: err}
	}
	if err := os.Rename(tmp, doc.Path); err != nil {
		_ = os.Remove(tmp)
		return &errors.DataSourceError{Source: "history", Path: doc.Path, Err: err}
	}
	return nil
}

// BuildCatalog builds a fresh collection from the document. Every call
// returns new dishes, so a consumed collection can be rebuilt for another
// attempt. Records without a meal name are skipped.
func BuildCatalog(doc *Catalog, cfg *config.Config) (*catalog.Collection, error) {
	coll := catalog.New(cfg)
	for i, record := range doc.Meals {
		raw, ok := record[keyMeal]
		if !ok {
			continue
		}
		name, ok := raw.(string)
		if !ok {
			return nil, &errors.DataSourceError{Source: "catalog", Path: doc.Path,
				Err: fmt.Errorf("record %d: meal must be a string, got %T", i, raw)}
		}

		dish := models.NewDish(normalize(name))
		if _, ok := record[keyVeggie]; ok {
			dish.SetVeggie(true)
		}
		if _, ok := record[keySpecial]; ok {
			dish.SetSpecial(true)
		}
		if rawIngredients, ok := record[keyIngredients]; ok && rawIngredients != nil {
			list, ok := rawIngredients.([]interface{})
			if !ok {
				return nil, &errors.DataSourceError{Source: "catalog", Path: doc.Path,
					Err: fmt.Errorf("record %d: %s must be a list", i, keyIngredients)}
			}
			for _, item := range list {
				ingredient, ok := item.(string)
				if !ok {
					return nil, &errors.DataSourceError{Source: "catalog", Path: doc.Path,
						Err: fmt.Errorf("record %d: ingredient must be a string, got %T", i, item)}
				}
				dish.AddIngredient(normalize(ingredient))
			}
		}
		coll.Add(dish)
	}
	return coll, nil
}

// BuildCalendar builds the seasonal calendar. Records without a month key are
// skipped; unknown or repeated months are errors.
func BuildCalendar(doc *Seasonal, opts ...seasonal.Option) (*seasonal.Calendar, error) {
	cal := seasonal.New(opts...)
	for _, record := range doc.Months {
		if strings.TrimSpace(record.Month) == "" {
			continue
		}
		month, err := seasonal.ParseMonth(record.Month)
		if err != nil {
			return nil, &errors.DataSourceError{Source: "seasonal", Path: doc.Path, Err: err}
		}
		vegetables := make([]string, 0, len(record.Vegetables))
		for _, v := range record.Vegetables {
			vegetables = append(vegetables, normalize(v))
		}
		if err := cal.AddNamed(month, normalize(record.Month), vegetables...); err != nil {
			return nil, &errors.DataSourceError{Source: "seasonal", Path: doc.Path, Err: err}
		}
	}
	return cal, nil
}

// Resolve returns explicit when set, else the default file in the config
// directory if it exists, else "".
func Resolve(explicit, defaultName string) string {
	if explicit != "" {
		return explicit
	}
	path := filepath.Join(config.Dir(), defaultName)
	if _, err := os.Stat(path); err == nil {
		return path
	}
	return ""
}
