package config

import (
	"reflect"
	"testing"

	"github.com/julianstephens/mealweek/internal/models"
)

func TestNewDefaults(t *testing.T) {
	cfg := New()

	if !reflect.DeepEqual(cfg.CategoryOrder, models.DefaultCategoryOrder) {
		t.Errorf("CategoryOrder = %v, want %v", cfg.CategoryOrder, models.DefaultCategoryOrder)
	}
	if cfg.Rand == nil || cfg.Seed == 0 {
		t.Error("New should seed a random source")
	}
	if cfg.Verbose || cfg.Debug || cfg.CheckOnly || cfg.Pretend || cfg.LeftoverMode {
		t.Errorf("mode flags should default to false: %+v", cfg)
	}

	// The default order must not alias the package variable
	cfg.CategoryOrder[0] = models.CategoryNormal
	if models.DefaultCategoryOrder[0] != models.CategoryVeggie {
		t.Error("New shares its category order with DefaultCategoryOrder")
	}
}

func TestOptions(t *testing.T) {
	cfg := New(
		WithVerbose(true),
		WithDebug(true),
		WithCheckOnly(true),
		WithPretend(true),
		WithLeftoverMode(true),
		WithCategoryOrder(models.CategoryNormal, models.CategoryVeggie),
	)

	if !cfg.Verbose || !cfg.Debug || !cfg.CheckOnly || !cfg.Pretend || !cfg.LeftoverMode {
		t.Errorf("options not applied: %+v", cfg)
	}
	want := []models.Category{models.CategoryNormal, models.CategoryVeggie}
	if !reflect.DeepEqual(cfg.CategoryOrder, want) {
		t.Errorf("CategoryOrder = %v, want %v", cfg.CategoryOrder, want)
	}

	if got := New(WithCategoryOrder()).CategoryOrder; !reflect.DeepEqual(got, models.DefaultCategoryOrder) {
		t.Errorf("empty WithCategoryOrder changed the order to %v", got)
	}
}

func TestSeedIsReproducible(t *testing.T) {
	a := New(WithSeed(42))
	b := New(WithSeed(42))

	if a.Seed != 42 {
		t.Errorf("Seed = %d, want 42", a.Seed)
	}
	for i := 0; i < 20; i++ {
		if x, y := a.IntN(1000), b.IntN(1000); x != y {
			t.Fatalf("draw %d differs: %d != %d", i, x, y)
		}
	}

	perm := func(cfg *Config) []int {
		s := []int{0, 1, 2, 3, 4, 5, 6, 7}
		cfg.Shuffle(len(s), func(i, j int) { s[i], s[j] = s[j], s[i] })
		return s
	}
	if x, y := perm(New(WithSeed(7))), perm(New(WithSeed(7))); !reflect.DeepEqual(x, y) {
		t.Errorf("shuffles differ: %v != %v", x, y)
	}
}
