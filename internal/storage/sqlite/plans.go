package sqlite

import (
	"fmt"
	"time"

	"github.com/julianstephens/mealweek/internal/logger"
	"github.com/julianstephens/mealweek/internal/models"
)

// acceptedAtLayout keeps every timestamp the same width so that accepted_at
// sorts chronologically as text.
const acceptedAtLayout = "2006-01-02T15:04:05.000000000Z07:00"

func (s *Store) SavePlan(plan models.PlanRecord) error {
	plan = plan.Stamped(time.Now())

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.Exec("INSERT INTO plans (id, accepted_at) VALUES (?, ?)",
		plan.ID, plan.AcceptedAt.UTC().Format(acceptedAtLayout))
	if err != nil {
		return fmt.Errorf("failed to insert plan: %w", err)
	}

	for i, d := range plan.Dishes {
		_, err = tx.Exec("INSERT INTO plan_dishes (plan_id, position, name, veggie, special) VALUES (?, ?, ?, ?, ?)",
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
		var id, acceptedAt string
		var entry models.PlanEntry
		if err := rows.Scan(&id, &acceptedAt, &entry.Name, &entry.Veggie, &entry.Special); err != nil {
			return nil, err
		}
		if len(plans) == 0 || plans[len(plans)-1].ID != id {
			at, err := time.Parse(time.RFC3339Nano, acceptedAt)
			if err != nil {
				return nil, fmt.Errorf("invalid accepted_at for plan %s: %w", id, err)
			}
			plans = append(plans, models.PlanRecord{ID: id, AcceptedAt: at})
		}
		last := &plans[len(plans)-1]
		last.Dishes = append(last.Dishes, entry)
	}
	return plans, rows.Err()
}
