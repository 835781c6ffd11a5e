package repository

import (
	"context"
	"fmt"

	"career-compass/internal/database"
	"career-compass/internal/domain/career"

	sq "github.com/Masterminds/squirrel"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var (
	listCareers = psql.
		Select("id", "title", "min_education", "field", "salary", "risk_level", "pace", "growth_score").
		From("careers").
		OrderBy("id")

	listCareerSkills = psql.
		Select("career_id", "name").
		From("career_skills").
		OrderBy("career_id", "position")

	listCareerDetails = psql.
		Select("career_id", "work_time", "work_type", "work_life_balance", "progression", "why_best").
		From("career_details")

	listCareerBenefits = psql.
		Select("career_id", "name").
		From("career_benefits").
		OrderBy("career_id", "position")
)

type PostgresCatalogRepository struct {
	db database.Querier
}

func NewPostgresCatalogRepository(db database.Querier) *PostgresCatalogRepository {
	return &PostgresCatalogRepository{db: db}
}

func (r *PostgresCatalogRepository) ListJobs(ctx context.Context) ([]career.Job, error) {
	rows, err := r.query(ctx, listCareers)
	if err != nil {
		return nil, fmt.Errorf("list careers: %w", err)
	}
	defer rows.Close()

	out := make([]career.Job, 0)
	index := map[int]int{}
	for rows.Next() {
		var (
			j                  career.Job
			minEdu, risk, pace string
		)
		if err := rows.Scan(&j.ID, &j.Title, &minEdu, &j.Field, &j.Salary, &risk, &pace, &j.GrowthScore); err != nil {
			return nil, fmt.Errorf("scan career: %w", err)
		}
		j.MinEducation = career.EducationLevel(minEdu)
		j.RiskLevel = career.RiskLevel(risk)
		j.Pace = career.Pace(pace)
		j.Skills = []string{}
		index[j.ID] = len(out)
		out = append(out, j)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list careers: %w", err)
	}

	skills, err := r.namesByCareer(ctx, listCareerSkills)
	if err != nil {
		return nil, fmt.Errorf("list career skills: %w", err)
	}
	for id, names := range skills {
		if i, ok := index[id]; ok {
			out[i].Skills = names
		}
	}

	return out, nil
}

func (r *PostgresCatalogRepository) ListDetails(ctx context.Context) (map[int]career.Detail, error) {
	rows, err := r.query(ctx, listCareerDetails)
	if err != nil {
		return nil, fmt.Errorf("list career details: %w", err)
	}
	defer rows.Close()

	out := map[int]career.Detail{}
	for rows.Next() {
		var (
			id int
			d  career.Detail
		)
		if err := rows.Scan(&id, &d.WorkTime, &d.WorkType, &d.WorkLifeBalance, &d.Progression, &d.WhyBest); err != nil {
			return nil, fmt.Errorf("scan career detail: %w", err)
		}
		d.Benefits = []string{}
		out[id] = d
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list career details: %w", err)
	}

	benefits, err := r.namesByCareer(ctx, listCareerBenefits)
	if err != nil {
		return nil, fmt.Errorf("list career benefits: %w", err)
	}
	for id, names := range benefits {
		d, ok := out[id]
		if !ok {
			continue
		}
		d.Benefits = names
		out[id] = d
	}

	return out, nil
}

// namesByCareer runs a (career_id, name) query and groups names per career in
// row order.
func (r *PostgresCatalogRepository) namesByCareer(ctx context.Context, q sq.SelectBuilder) (map[int][]string, error) {
	rows, err := r.query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := map[int][]string{}
	for rows.Next() {
		var (
			id   int
			name string
		)
		if err := rows.Scan(&id, &name); err != nil {
			return nil, err
		}
		out[id] = append(out[id], name)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresCatalogRepository) query(ctx context.Context, q sq.SelectBuilder) (database.Rows, error) {
	sqlStr, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}
	return r.db.Query(ctx, sqlStr, args...)
}
