package seeder

import (
	"context"
	"fmt"
	"sort"

	"career-compass/internal/database"
	"career-compass/internal/domain/career"
)

// CareersSeeder upserts a catalog and its details. Skill and benefit lists are
// replaced wholesale so re-running converges on the given data.
type CareersSeeder struct {
	Jobs    []career.Job
	Details map[int]career.Detail
}

func (CareersSeeder) Name() string { return "careers" }

func (s CareersSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "careers", "id", "title", "min_education", "field", "salary", "risk_level", "pace", "growth_score"); err != nil {
		return err
	}
	if err := EnsureTableColumns(ctx, db, "career_details", "career_id", "work_time", "work_type", "work_life_balance", "progression", "why_best"); err != nil {
		return err
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	for _, j := range s.Jobs {
		if err := upsertCareer(ctx, tx, j); err != nil {
			return fmt.Errorf("career %d: %w", j.ID, err)
		}
	}

	ids := make([]int, 0, len(s.Details))
	for id := range s.Details {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	for _, id := range ids {
		if err := upsertDetail(ctx, tx, id, s.Details[id]); err != nil {
			return fmt.Errorf("career detail %d: %w", id, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

func upsertCareer(ctx context.Context, tx database.Tx, j career.Job) error {
	_, err := tx.Exec(
		ctx,
		`INSERT INTO careers (id, title, min_education, field, salary, risk_level, pace, growth_score)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 ON CONFLICT (id) DO UPDATE SET
			title = EXCLUDED.title,
			min_education = EXCLUDED.min_education,
			field = EXCLUDED.field,
			salary = EXCLUDED.salary,
			risk_level = EXCLUDED.risk_level,
			pace = EXCLUDED.pace,
			growth_score = EXCLUDED.growth_score`,
		j.ID, j.Title, string(j.MinEducation), j.Field, j.Salary, string(j.RiskLevel), string(j.Pace), j.GrowthScore,
	)
	if err != nil {
		return err
	}

	if _, err := tx.Exec(ctx, `DELETE FROM career_skills WHERE career_id = $1`, j.ID); err != nil {
		return err
	}
	for i, name := range j.Skills {
		if _, err := tx.Exec(ctx, `INSERT INTO career_skills (career_id, position, name) VALUES ($1, $2, $3)`, j.ID, i, name); err != nil {
			return err
		}
	}
	return nil
}

func upsertDetail(ctx context.Context, tx database.Tx, id int, d career.Detail) error {
	_, err := tx.Exec(
		ctx,
		`INSERT INTO career_details (career_id, work_time, work_type, work_life_balance, progression, why_best)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 ON CONFLICT (career_id) DO UPDATE SET
			work_time = EXCLUDED.work_time,
			work_type = EXCLUDED.work_type,
			work_life_balance = EXCLUDED.work_life_balance,
			progression = EXCLUDED.progression,
			why_best = EXCLUDED.why_best`,
		id, d.WorkTime, d.WorkType, d.WorkLifeBalance, d.Progression, d.WhyBest,
	)
	if err != nil {
		return err
	}

	if _, err := tx.Exec(ctx, `DELETE FROM career_benefits WHERE career_id = $1`, id); err != nil {
		return err
	}
	for i, name := range d.Benefits {
		if _, err := tx.Exec(ctx, `INSERT INTO career_benefits (career_id, position, name) VALUES ($1, $2, $3)`, id, i, name); err != nil {
			return err
		}
	}
	return nil
}
