package dto

import (
	"career-compass/internal/domain/career"
	"career-compass/internal/domain/profile"
)

// SkillRequest carries proficiency as a pointer so a missing value can be told
// apart from an explicit 0.
type SkillRequest struct {
	Name        string `json:"name"`
	Proficiency *int   `json:"proficiency"`
	Domain      string `json:"domain,omitempty"`
}

func (s SkillRequest) proficiency() int {
	if s.Proficiency == nil {
		return profile.DefaultProficiency
	}
	return *s.Proficiency
}

type EducationRequest struct {
	Level string `json:"level"`
}

type BehavioralRequest struct {
	Pace string `json:"pace"`
	Risk string `json:"risk"`
}

// ProfileRequest is the wire form of a user profile. Absent sections are
// allowed and resolve to defaults.
type ProfileRequest struct {
	Skills     []SkillRequest     `json:"skills"`
	Education  *EducationRequest  `json:"education"`
	Interests  []string           `json:"interests"`
	Behavioral *BehavioralRequest `json:"behavioral"`
}

func (r ProfileRequest) ToDomain() profile.Profile {
	p := profile.Profile{
		Skills:    make([]profile.Skill, 0, len(r.Skills)),
		Interests: r.Interests,
	}
	for _, s := range r.Skills {
		p.Skills = append(p.Skills, profile.Skill{
			Name:        s.Name,
			Proficiency: s.proficiency(),
			Domain:      s.Domain,
		})
	}
	if r.Education != nil {
		p.Education = career.EducationLevel(r.Education.Level)
	}
	if r.Behavioral != nil {
		p.Behavioral = profile.Behavioral{
			Pace: career.Pace(r.Behavioral.Pace),
			Risk: career.RiskLevel(r.Behavioral.Risk),
		}
	}
	return p
}

type ProfileReceiptResponse struct {
	SkillCount int                `json:"skill_count"`
	Domains    []string           `json:"domains"`
	Education  string             `json:"education"`
	Interests  []string           `json:"interests"`
	Behavioral BehavioralResponse `json:"behavioral"`
	Warnings   []string           `json:"warnings"`
}

type BehavioralResponse struct {
	Pace string `json:"pace"`
	Risk string `json:"risk"`
}
