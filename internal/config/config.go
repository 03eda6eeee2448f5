package config

import (
	"math/rand/v2"
	"time"

	"github.com/julianstephens/mealweek/internal/models"
)

// Config is the runtime configuration for one invocation. It carries the mode
// flags and the single random source shared by every component of a run.
type Config struct {
	Verbose      bool
	Debug        bool
	CheckOnly    bool
	Pretend      bool
	LeftoverMode bool

	// CategoryOrder is the order in which quotas are filled.
	CategoryOrder []models.Category

	// Seed is the seed of Rand, reported so a plan can be reproduced.
	Seed uint64
	Rand *rand.Rand
}

type Option func(*Config)

// New returns a Config with the default category order and a time-seeded
// random source, then applies opts in order.
func New(opts ...Option) *Config {
	cfg := &Config{
		CategoryOrder: append([]models.Category(nil), models.DefaultCategoryOrder...),
	}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.Rand == nil {
		if cfg.Seed == 0 {
			cfg.Seed = uint64(time.Now().UnixNano())
		}
		cfg.Rand = newRand(cfg.Seed)
	}
	return cfg
}

func newRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// WithSeed makes every random draw of the run reproducible.
func WithSeed(seed uint64) Option {
	return func(c *Config) {
		c.Seed = seed
		c.Rand = newRand(seed)
	}
}

func WithVerbose(v bool) Option {
	return func(c *Config) { c.Verbose = v }
}

func WithDebug(v bool) Option {
	return func(c *Config) { c.Debug = v }
}

func WithCheckOnly(v bool) Option {
	return func(c *Config) { c.CheckOnly = v }
}

func WithPretend(v bool) Option {
	return func(c *Config) { c.Pretend = v }
}

// WithLeftoverMode switches the NORMAL category to its non-strict form, where
// special dishes are eligible too.
func WithLeftoverMode(v bool) Option {
	return func(c *Config) { c.LeftoverMode = v }
}

// WithCategoryOrder overrides the quota fill order. Empty input keeps the default.
func WithCategoryOrder(order ...models.Category) Option {
	return func(c *Config) {
		if len(order) > 0 {
			c.CategoryOrder = append([]models.Category(nil), order...)
		}
	}
}

// IntN returns a uniform int in [0, n) from the shared source.
func (c *Config) IntN(n int) int {
	return c.Rand.IntN(n)
}

// Shuffle permutes n elements with the shared source.
func (c *Config) Shuffle(n int, swap func(i, j int)) {
	c.Rand.Shuffle(n, swap)
}
