package career

// EducationLevel is a label on the education ordinal scale.
type EducationLevel string

const (
	EducationSecondary     EducationLevel = "Secondary"
	EducationDiploma       EducationLevel = "Diploma"
	EducationUndergraduate EducationLevel = "Undergraduate"
	EducationPostgraduate  EducationLevel = "Postgraduate"
	EducationDoctorate     EducationLevel = "Doctorate"
)

// Known reports whether l is one of the recognised labels.
func (l EducationLevel) Known() bool {
	return l.rank() > 0
}

// Ordinal is the attainment rank of a user's level. Empty or unrecognised
// labels rank 0, below every known level.
func (l EducationLevel) Ordinal() int {
	return l.rank()
}

// RequirementOrdinal is the rank of a job's minimum level. Unrecognised
// labels fall back to 1 (Secondary).
func (l EducationLevel) RequirementOrdinal() int {
	if r := l.rank(); r > 0 {
		return r
	}
	return 1
}

func (l EducationLevel) rank() int {
	switch l {
	case EducationSecondary:
		return 1
	case EducationDiploma:
		return 2
	case EducationUndergraduate:
		return 3
	case EducationPostgraduate:
		return 4
	case EducationDoctorate:
		return 5
	default:
		return 0
	}
}

// RiskLevel is a label on the risk ordinal scale.
type RiskLevel string

const (
	RiskStable   RiskLevel = "Stable"
	RiskLow      RiskLevel = "Low"
	RiskModerate RiskLevel = "Moderate"
	RiskHigh     RiskLevel = "High Risk"
)

// DefaultRisk is the tolerance assumed when a profile declares none.
const DefaultRisk = RiskModerate

// Known reports whether r is one of the recognised labels.
func (r RiskLevel) Known() bool {
	switch r {
	case RiskStable, RiskLow, RiskModerate, RiskHigh:
		return true
	}
	return false
}

// Ordinal maps r onto 1..4. Unrecognised labels, the empty one included,
// map to 2 (Low) for jobs and users alike.
func (r RiskLevel) Ordinal() int {
	switch r {
	case RiskStable:
		return 1
	case RiskLow:
		return 2
	case RiskModerate:
		return 3
	case RiskHigh:
		return 4
	default:
		return 2
	}
}

// Pace is a categorical work-pace label. Values outside the constants below
// are kept verbatim and only ever compared for equality.
type Pace string

const (
	PaceBalanced   Pace = "Balanced"
	PaceFast       Pace = "Fast-paced"
	PaceSlowSteady Pace = "Slow & Steady"
)

// DefaultPace is the pace assumed when a profile declares none.
const DefaultPace = PaceBalanced

// Known reports whether p is one of the recognised labels.
func (p Pace) Known() bool {
	switch p {
	case PaceBalanced, PaceFast, PaceSlowSteady:
		return true
	}
	return false
}

// IsBalanced reports whether p is the neutral pace that is half-compatible
// with every other pace.
func (p Pace) IsBalanced() bool {
	return p == PaceBalanced
}
