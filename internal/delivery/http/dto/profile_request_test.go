package dto

import (
	"encoding/json"
	"testing"

	"career-compass/internal/domain/career"
	"career-compass/internal/domain/profile"
)

func TestProfileRequest_ToDomainProficiency(t *testing.T) {
	raw := `{"skills": [
		{"name": "Figma"},
		{"name": "Excel", "proficiency": null},
		{"name": "Go", "proficiency": 0},
		{"name": "Python", "proficiency": 4, "domain": "Technology"}
	]}`

	var req ProfileRequest
	if err := json.Unmarshal([]byte(raw), &req); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	got := req.ToDomain().Skills
	want := []int{profile.DefaultProficiency, profile.DefaultProficiency, 0, 4}
	if len(got) != len(want) {
		t.Fatalf("expected %d skills, got %d", len(want), len(got))
	}
	for i, w := range want {
		if got[i].Proficiency != w {
			t.Fatalf("skill %q: expected proficiency %d, got %d", got[i].Name, w, got[i].Proficiency)
		}
	}
	if got[3].Domain != "Technology" {
		t.Fatalf("expected domain to be kept, got %q", got[3].Domain)
	}
}

func TestProfileRequest_ToDomainOptionalSections(t *testing.T) {
	p := ProfileRequest{}.ToDomain()
	if p.Education != "" || p.Behavioral.Pace != "" || p.Behavioral.Risk != "" {
		t.Fatalf("expected empty optional sections, got %+v", p)
	}

	p = ProfileRequest{
		Education:  &EducationRequest{Level: "Diploma"},
		Behavioral: &BehavioralRequest{Pace: "Fast-paced", Risk: "High Risk"},
	}.ToDomain()
	if p.Education != career.EducationDiploma {
		t.Fatalf("unexpected education %q", p.Education)
	}
	if p.Behavioral.Pace != career.PaceFast || p.Behavioral.Risk != career.RiskHigh {
		t.Fatalf("unexpected behavioral %+v", p.Behavioral)
	}
}
