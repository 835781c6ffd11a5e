package profile

import "career-compass/internal/domain/career"

// DefaultProficiency is used for a skill whose proficiency was not supplied.
// Request decoding applies it; an explicit 0 is a real proficiency.
const DefaultProficiency = 3

type Skill struct {
	Name        string
	Proficiency int
	Domain      string
}

type Behavioral struct {
	Pace career.Pace
	Risk career.RiskLevel
}

// Profile is a single user's submission. It is supplied per request and never
// stored.
type Profile struct {
	Skills     []Skill
	Education  career.EducationLevel
	Interests  []string
	Behavioral Behavioral
}

// WithDefaults returns a copy of p with absent optional fields filled in.
// Skills and interests are copied so callers can keep mutating their input.
func (p Profile) WithDefaults() Profile {
	out := p
	out.Skills = make([]Skill, len(p.Skills))
	copy(out.Skills, p.Skills)
	out.Interests = append([]string(nil), p.Interests...)

	if out.Behavioral.Pace == "" {
		out.Behavioral.Pace = career.DefaultPace
	}
	if out.Behavioral.Risk == "" {
		out.Behavioral.Risk = career.DefaultRisk
	}
	return out
}

// Domains returns the set of non-empty skill domains, compared verbatim.
func (p Profile) Domains() map[string]struct{} {
	out := make(map[string]struct{}, len(p.Skills))
	for _, s := range p.Skills {
		if s.Domain == "" {
			continue
		}
		out[s.Domain] = struct{}{}
	}
	return out
}
