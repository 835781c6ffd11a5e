package matching

import (
	"math"
	"sort"
	"strings"

	"career-compass/internal/domain/career"
	"career-compass/internal/domain/profile"
)

const (
	skillBreadthWeight = 40.0
	skillDepthWeight   = 10.0
	proficiencyFactor  = 0.2

	domainBonus = 20.0

	paceExactBonus    = 10.0
	paceBalancedBonus = 5.0

	riskAdjacentBonus = 10.0
	riskMismatch      = -5.0
	riskMaxDistance   = 1

	educationMetBonus  = 20.0
	educationShortfall = -10.0

	minScore = 0.0
	maxScore = 100.0
)

type JobMatch struct {
	Job           career.Job
	MatchScore    float64
	MissingSkills []string
}

// Match scores every catalog job against p and returns one JobMatch per job,
// ordered by score descending. Jobs with equal scores keep catalog order.
func Match(p profile.Profile, catalog []career.Job) []JobMatch {
	u := newUserView(p)

	out := make([]JobMatch, 0, len(catalog))
	for _, j := range catalog {
		out = append(out, score(u, j))
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].MatchScore > out[j].MatchScore
	})
	return out
}

type userView struct {
	skills    map[string]int
	domains   map[string]struct{}
	pace      career.Pace
	risk      int
	education int
}

func newUserView(p profile.Profile) userView {
	p = p.WithDefaults()

	skills := make(map[string]int, len(p.Skills))
	for _, s := range p.Skills {
		skills[strings.ToLower(s.Name)] = s.Proficiency
	}

	return userView{
		skills:    skills,
		domains:   p.Domains(),
		pace:      p.Behavioral.Pace,
		risk:      p.Behavioral.Risk.Ordinal(),
		education: p.Education.Ordinal(),
	}
}

func score(u userView, job career.Job) JobMatch {
	jobSkills := normalizeSkills(job.Skills)

	overlap := make([]string, 0, len(jobSkills))
	missing := make([]string, 0, len(jobSkills))
	for _, s := range jobSkills {
		if _, ok := u.skills[s]; ok {
			overlap = append(overlap, s)
		} else {
			missing = append(missing, s)
		}
	}

	var total float64
	total += skillComponent(u, jobSkills, overlap)
	total += domainComponent(u, job)
	total += paceComponent(u.pace, job.Pace)
	total += riskComponent(u.risk, job.RiskLevel.Ordinal())
	total += educationComponent(u.education, job.MinEducation.RequirementOrdinal())

	return JobMatch{
		Job:           job,
		MatchScore:    clampFloat(total, minScore, maxScore),
		MissingSkills: missing,
	}
}

func skillComponent(u userView, jobSkills, overlap []string) float64 {
	if len(jobSkills) == 0 {
		return 0
	}

	var depth float64
	for _, s := range overlap {
		depth += 1 + float64(u.skills[s])*proficiencyFactor
	}

	n := float64(len(jobSkills))
	breadth := float64(len(overlap)) / n
	return breadth*skillBreadthWeight + (depth/(n*2))*skillDepthWeight
}

func domainComponent(u userView, job career.Job) float64 {
	if _, ok := u.domains[job.Field]; ok {
		return domainBonus
	}
	return 0
}

func paceComponent(user, job career.Pace) float64 {
	if user == job {
		return paceExactBonus
	}
	if user.IsBalanced() || job.IsBalanced() {
		return paceBalancedBonus
	}
	return 0
}

func riskComponent(user, job int) float64 {
	if absInt(job-user) <= riskMaxDistance {
		return riskAdjacentBonus
	}
	return riskMismatch
}

func educationComponent(user, required int) float64 {
	if user >= required {
		return educationMetBonus
	}
	return educationShortfall
}

// normalizeSkills lowercases names and drops duplicates, keeping the first
// occurrence's position.
func normalizeSkills(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		k := strings.ToLower(s)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	return out
}

func clampFloat(v, minV, maxV float64) float64 {
	return math.Min(math.Max(v, minV), maxV)
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
