package dto

import "career-compass/internal/domain/career"

type JobResponse struct {
	ID           int      `json:"id"`
	Title        string   `json:"title"`
	Skills       []string `json:"skills"`
	MinEducation string   `json:"min_education"`
	Field        string   `json:"field"`
	Salary       int      `json:"salary"`
	RiskLevel    string   `json:"risk_level"`
	Pace         string   `json:"pace"`
	GrowthScore  int      `json:"growth_score"`
}

func NewJobResponse(j career.Job) JobResponse {
	skills := j.Skills
	if skills == nil {
		skills = []string{}
	}
	return JobResponse{
		ID:           j.ID,
		Title:        j.Title,
		Skills:       skills,
		MinEducation: string(j.MinEducation),
		Field:        j.Field,
		Salary:       j.Salary,
		RiskLevel:    string(j.RiskLevel),
		Pace:         string(j.Pace),
		GrowthScore:  j.GrowthScore,
	}
}
