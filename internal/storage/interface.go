// Package storage persists accepted plans, the history log the filter reads.
package storage

import "github.com/julianstephens/mealweek/internal/models"

type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// History returns every served dish name, oldest first.
	History() ([]string, error)
	// SavePlan appends an accepted plan to the history.
	SavePlan(models.PlanRecord) error
	// ListPlans returns accepted plans, oldest first.
	ListPlans() ([]models.PlanRecord, error)

	// Utils
	GetConfigPath() string
}
