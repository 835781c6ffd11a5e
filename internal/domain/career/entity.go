package career

// Job is a catalog entry. Catalog entries are built once at startup and never
// mutated afterwards.
type Job struct {
	ID           int
	Title        string
	Skills       []string
	MinEducation EducationLevel
	Field        string
	Salary       int
	RiskLevel    RiskLevel
	Pace         Pace
	GrowthScore  int
}

// Detail holds the comparison-only attributes of a job.
type Detail struct {
	WorkTime        string
	WorkType        string
	Benefits        []string
	WorkLifeBalance string
	Progression     string
	WhyBest         string
}

// Comparison is a catalog job merged with its detail record. Detail is nil
// when the detail lookup has no entry for the job.
type Comparison struct {
	Job    Job
	Detail *Detail
}
