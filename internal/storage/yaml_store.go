package storage

import (
	"fmt"
	"os"

	"github.com/julianstephens/mealweek/internal/documents"
	"github.com/julianstephens/mealweek/internal/models"
)

// YAMLStore keeps history in the plain YAML document, a flat list of served
// dishes. Plan boundaries are not recorded.
type YAMLStore struct {
	path string
	doc  *documents.History
}

func NewYAMLStore(path string) *YAMLStore {
	return &YAMLStore{path: path}
}

// Init writes an empty history document unless one already exists.
func (s *YAMLStore) Init() error {
	if _, err := os.Stat(s.path); err == nil {
		return s.Load()
	}
	s.doc = &documents.History{Path: s.path, Meals: []models.PlanEntry{}}
	return documents.WriteHistory(s.doc)
}

// Load reads the document. A missing file is an empty history.
func (s *YAMLStore) Load() error {
	doc, err := documents.ReadHistory(s.path)
	if err != nil {
		return err
	}
	s.doc = doc
	return nil
}

func (s *YAMLStore) Close() error {
	return nil
}

func (s *YAMLStore) History() ([]string, error) {
	if s.doc == nil {
		return nil, fmt.Errorf("history not loaded")
	}
	return s.doc.Names(), nil
}

func (s *YAMLStore) SavePlan(plan models.PlanRecord) error {
	if s.doc == nil {
		return fmt.Errorf("history not loaded")
	}
	s.doc.Append(plan.Dishes...)
	return documents.WriteHistory(s.doc)
}

// ListPlans returns the whole log as one record dated by the file's
// modification time.
func (s *YAMLStore) ListPlans() ([]models.PlanRecord, error) {
	if s.doc == nil {
		return nil, fmt.Errorf("history not loaded")
	}
	if len(s.doc.Meals) == 0 {
		return nil, nil
	}
	record := models.PlanRecord{ID: "history", Dishes: s.doc.Meals}
	if info, err := os.Stat(s.path); err == nil {
		record.AcceptedAt = info.ModTime().UTC()
	}
	return []models.PlanRecord{record}, nil
}

func (s *YAMLStore) GetConfigPath() string {
	return s.path
}
