package postgres

import (
	"fmt"
	"time"

	"github.com/julianstephens/mealweek/internal/logger"
	"github.com/julianstephens/mealweek/internal/models"
)

func (s *Store) SavePlan(plan models.PlanRecord) error {
	plan = plan.Stamped(time.Now())

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("INSERT INTO plans (id, accepted_at) VALUES ($1, $2)", plan.ID, plan.AcceptedAt); err != nil {
		return fmt.Errorf("failed to insert plan: %w", err)
	}
	for i, d := range plan.Dishes {
		_, err := tx.Exec("INSERT INTO plan_dishes (plan_id, position, name, veggie, special) VALUES ($1, $2, $3, $4, $5)",
			plan.ID, i, d.Name, d.Veggie, d.Special)
		if err != nil {
			return fmt.Errorf("failed to insert dish %s: %w", d.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}
	logger.Debug("Plan saved", "id", plan.ID, "dishes", len(plan.Dishes))
	return nil
}

func (s *Store) History() ([]string, error) {
	rows, err := s.db.Query(`
		SELECT d.name FROM plan_dishes d
		JOIN plans p ON p.id = d.plan_id
		ORDER BY p.accepted_at, p.id, d.position`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

func (s *Store) ListPlans() ([]models.PlanRecord, error) {
	rows, err := s.db.Query(`
		SELECT p.id, p.accepted_at, d.name, d.veggie, d.special
		FROM plans p
		JOIN plan_dishes d ON d.plan_id = p.id
		ORDER BY p.accepted_at, p.id, d.position`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var plans []models.PlanRecord
	for rows.Next() {
		var id string
		var acceptedAt time.Time
		var entry models.PlanEntry
		if err := rows.Scan(&id, &acceptedAt, &entry.Name, &entry.Veggie, &entry.Special); err != nil {
			return nil, err
		}
		if len(plans) == 0 || plans[len(plans)-1].ID != id {
			plans = append(plans, models.PlanRecord{ID: id, AcceptedAt: acceptedAt.UTC()})
		}
		last := &plans[len(plans)-1]
		last.Dishes = append(last.Dishes, entry)
	}
	return plans, rows.Err()
}
