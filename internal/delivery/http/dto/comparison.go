package dto

import "career-compass/internal/domain/career"

type CompareCareersRequest struct {
	JobIDs []int `json:"job_ids"`
}

type DetailResponse struct {
	WorkTime        string   `json:"work_time"`
	WorkType        string   `json:"work_type"`
	Benefits        []string `json:"benefits"`
	WorkLifeBalance string   `json:"work_life_balance"`
	Progression     string   `json:"progression"`
	WhyBest         string   `json:"why_best"`
}

// CareerComparisonResponse flattens a job and its detail into one object.
// Detail fields are omitted when the job has no detail record.
type CareerComparisonResponse struct {
	JobResponse
	*DetailResponse
}

func NewCareerComparisonResponses(in []career.Comparison) []CareerComparisonResponse {
	out := make([]CareerComparisonResponse, 0, len(in))
	for _, c := range in {
		item := CareerComparisonResponse{JobResponse: NewJobResponse(c.Job)}
		if c.Detail != nil {
			benefits := c.Detail.Benefits
			if benefits == nil {
				benefits = []string{}
			}
			item.DetailResponse = &DetailResponse{
				WorkTime:        c.Detail.WorkTime,
				WorkType:        c.Detail.WorkType,
				Benefits:        benefits,
				WorkLifeBalance: c.Detail.WorkLifeBalance,
				Progression:     c.Detail.Progression,
				WhyBest:         c.Detail.WhyBest,
			}
		}
		out = append(out, item)
	}
	return out
}
