package models

import (
	"time"

	"github.com/google/uuid"
)

// PlanEntry is the tuple handed to display and persistence for each planned dish.
type PlanEntry struct {
	Name    string `json:"name" yaml:"meal"`
	Veggie  bool   `json:"veggie" yaml:"-"`
	Special bool   `json:"special" yaml:"-"`
}

// PlanRecord is an accepted plan as stored in history.
type PlanRecord struct {
	ID         string      `json:"id"`
	AcceptedAt time.Time   `json:"accepted_at"`
	Dishes     []PlanEntry `json:"dishes"`
}

// Names returns the dish names in plan order.
func (p PlanRecord) Names() []string {
	names := make([]string, 0, len(p.Dishes))
	for _, d := range p.Dishes {
		names = append(names, d.Name)
	}
	return names
}

// NewPlanRecord stamps an accepted plan with a fresh ID and the acceptance time.
func NewPlanRecord(entries []PlanEntry, acceptedAt time.Time) PlanRecord {
	return PlanRecord{Dishes: append([]PlanEntry(nil), entries...)}.Stamped(acceptedAt)
}

// Stamped fills a missing ID and acceptance time.
func (p PlanRecord) Stamped(now time.Time) PlanRecord {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.AcceptedAt.IsZero() {
		p.AcceptedAt = now
	}
	p.AcceptedAt = p.AcceptedAt.UTC()
	return p
}
