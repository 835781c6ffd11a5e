package career

import "testing"

func TestEducationLevel_Ordinals(t *testing.T) {
	cases := []struct {
		level       EducationLevel
		ordinal     int
		requirement int
	}{
		{EducationSecondary, 1, 1},
		{EducationDiploma, 2, 2},
		{EducationUndergraduate, 3, 3},
		{EducationPostgraduate, 4, 4},
		{EducationDoctorate, 5, 5},
		{"", 0, 1},
		{"Bootcamp", 0, 1},
		{"undergraduate", 0, 1},
	}
	for _, tc := range cases {
		if got := tc.level.Ordinal(); got != tc.ordinal {
			t.Fatalf("%q: expected ordinal %d, got %d", tc.level, tc.ordinal, got)
		}
		if got := tc.level.RequirementOrdinal(); got != tc.requirement {
			t.Fatalf("%q: expected requirement ordinal %d, got %d", tc.level, tc.requirement, got)
		}
	}
}

func TestRiskLevel_Ordinal(t *testing.T) {
	cases := map[RiskLevel]int{
		RiskStable:   1,
		RiskLow:      2,
		RiskModerate: 3,
		RiskHigh:     4,
		"":           2,
		"High":       2,
	}
	for level, want := range cases {
		if got := level.Ordinal(); got != want {
			t.Fatalf("%q: expected %d, got %d", level, want, got)
		}
	}
	if RiskLevel("High").Known() {
		t.Fatalf("expected High to be unknown")
	}
	if !RiskHigh.Known() {
		t.Fatalf("expected High Risk to be known")
	}
}

func TestPace(t *testing.T) {
	for _, p := range []Pace{PaceBalanced, PaceFast, PaceSlowSteady} {
		if !p.Known() {
			t.Fatalf("%q: expected known", p)
		}
	}
	if Pace("fast-paced").Known() {
		t.Fatalf("pace labels are case-sensitive")
	}
	if !DefaultPace.IsBalanced() || PaceFast.IsBalanced() {
		t.Fatalf("only Balanced is balanced")
	}
}
