package dto

import "career-compass/internal/domain/matching"

type JobMatchResponse struct {
	Job           JobResponse `json:"job"`
	MatchScore    float64     `json:"match_score"`
	MissingSkills []string    `json:"missing_skills"`
}

func NewJobMatchResponses(in []matching.JobMatch) []JobMatchResponse {
	out := make([]JobMatchResponse, 0, len(in))
	for _, m := range in {
		missing := m.MissingSkills
		if missing == nil {
			missing = []string{}
		}
		out = append(out, JobMatchResponse{
			Job:           NewJobResponse(m.Job),
			MatchScore:    m.MatchScore,
			MissingSkills: missing,
		})
	}
	return out
}
