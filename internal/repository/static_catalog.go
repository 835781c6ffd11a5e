package repository

import (
	"context"

	"career-compass/internal/domain/career"
)

// StaticCatalogRepository serves a catalog fixed at construction time.
type StaticCatalogRepository struct {
	jobs    []career.Job
	details map[int]career.Detail
}

// NewStaticCatalogRepository copies jobs and details so later changes by the
// caller are not observed.
func NewStaticCatalogRepository(jobs []career.Job, details map[int]career.Detail) *StaticCatalogRepository {
	d := make(map[int]career.Detail, len(details))
	for id, det := range details {
		d[id] = cloneDetail(det)
	}
	return &StaticCatalogRepository{jobs: cloneJobs(jobs), details: d}
}

// NewReferenceCatalogRepository serves the built-in reference catalog.
func NewReferenceCatalogRepository() *StaticCatalogRepository {
	return NewStaticCatalogRepository(ReferenceJobs(), ReferenceDetails())
}

func (r *StaticCatalogRepository) ListJobs(_ context.Context) ([]career.Job, error) {
	return cloneJobs(r.jobs), nil
}

func (r *StaticCatalogRepository) ListDetails(_ context.Context) (map[int]career.Detail, error) {
	out := make(map[int]career.Detail, len(r.details))
	for id, d := range r.details {
		out[id] = cloneDetail(d)
	}
	return out, nil
}

func cloneJobs(in []career.Job) []career.Job {
	out := make([]career.Job, len(in))
	for i, j := range in {
		j.Skills = append([]string(nil), j.Skills...)
		out[i] = j
	}
	return out
}

func cloneDetail(d career.Detail) career.Detail {
	d.Benefits = append([]string(nil), d.Benefits...)
	return d
}

// ReferenceJobs returns a fresh copy of the reference catalog.
func ReferenceJobs() []career.Job {
	return []career.Job{
		{
			ID:           1,
			Title:        "Data Scientist",
			Skills:       []string{"Python", "Machine Learning", "Statistics"},
			MinEducation: career.EducationUndergraduate,
			Field:        "Technology",
			Salary:       120000,
			RiskLevel:    career.RiskModerate,
			Pace:         career.PaceBalanced,
			GrowthScore:  9,
		},
		{
			ID:           2,
			Title:        "Frontend Developer",
			Skills:       []string{"React", "JavaScript", "CSS", "Figma"},
			MinEducation: career.EducationDiploma,
			Field:        "Technology",
			Salary:       90000,
			RiskLevel:    career.RiskLow,
			Pace:         career.PaceFast,
			GrowthScore:  8,
		},
		{
			ID:           3,
			Title:        "UX Designer",
			Skills:       []string{"Design", "Figma", "Prototyping", "User Research"},
			MinEducation: career.EducationUndergraduate,
			Field:        "Design",
			Salary:       95000,
			RiskLevel:    career.RiskLow,
			Pace:         career.PaceBalanced,
			GrowthScore:  7,
		},
		{
			ID:           4,
			Title:        "Healthcare Administrator",
			Skills:       []string{"Management", "Communication", "Healthcare", "Operations"},
			MinEducation: career.EducationPostgraduate,
			Field:        "Healthcare",
			Salary:       85000,
			RiskLevel:    career.RiskStable,
			Pace:         career.PaceSlowSteady,
			GrowthScore:  6,
		},
		{
			ID:           5,
			Title:        "Investment Banker",
			Skills:       []string{"Finance", "Analysis", "Excel", "Communication"},
			MinEducation: career.EducationPostgraduate,
			Field:        "Business",
			Salary:       150000,
			RiskLevel:    career.RiskHigh,
			Pace:         career.PaceFast,
			GrowthScore:  10,
		},
	}
}

// ReferenceDetails returns a fresh copy of the comparison details keyed by job
// id.
func ReferenceDetails() map[int]career.Detail {
	return map[int]career.Detail{
		1: {
			WorkTime:        "40-50 hrs/week",
			WorkType:        "Hybrid",
			Benefits:        []string{"Health Insurance", "Stock Options", "Remote Work"},
			WorkLifeBalance: "Moderate",
			Progression:     "Fast (Senior DS -> Lead -> AI Director)",
			WhyBest:         "Best for High Growth & Innovation",
		},
		2: {
			WorkTime:        "35-40 hrs/week",
			WorkType:        "Remote Possible",
			Benefits:        []string{"Flexible Hours", "Learning Budget", "Gym"},
			WorkLifeBalance: "Good",
			Progression:     "Steady (Senior Dev -> Tech Lead -> Architect)",
			WhyBest:         "Best for Work-Life Balance",
		},
		3: {
			WorkTime:        "40-45 hrs/week",
			WorkType:        "Hybrid",
			Benefits:        []string{"Creative Environment", "Health", "Bonuses"},
			WorkLifeBalance: "Good",
			Progression:     "Moderate (Senior UX -> Product Designer -> Head of Design)",
			WhyBest:         "Best for Creativity",
		},
		4: {
			WorkTime:        "40 hrs/week",
			WorkType:        "On-site",
			Benefits:        []string{"Pension", "Stable Job", "Healthcare"},
			WorkLifeBalance: "Excellent",
			Progression:     "Slow but Stable",
			WhyBest:         "Lowest Risk Option",
		},
		5: {
			WorkTime:        "60-80 hrs/week",
			WorkType:        "On-site",
			Benefits:        []string{"Huge Bonuses", "Prestige", "Networking"},
			WorkLifeBalance: "Poor",
			Progression:     "Very Fast (Associate -> VP -> MD)",
			WhyBest:         "Best for High Salary",
		},
	}
}
