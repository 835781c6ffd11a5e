package repository

import (
	"context"
	"testing"

	"career-compass/internal/domain/career"
)

func TestReferenceCatalog(t *testing.T) {
	repo := NewReferenceCatalogRepository()

	jobs, err := repo.ListJobs(context.Background())
	if err != nil {
		t.Fatalf("ListJobs: %v", err)
	}
	if len(jobs) != 5 {
		t.Fatalf("expected 5 jobs, got %d", len(jobs))
	}
	for i, j := range jobs {
		if j.ID != i+1 {
			t.Fatalf("expected catalog order by id, got %d at %d", j.ID, i)
		}
		if !j.MinEducation.Known() || !j.RiskLevel.Known() {
			t.Fatalf("job %d uses an unknown label", j.ID)
		}
	}

	details, err := repo.ListDetails(context.Background())
	if err != nil {
		t.Fatalf("ListDetails: %v", err)
	}
	for _, j := range jobs {
		if _, ok := details[j.ID]; !ok {
			t.Fatalf("missing detail for job %d", j.ID)
		}
	}
}

func TestStaticCatalogRepository_IsReadOnly(t *testing.T) {
	src := []career.Job{{ID: 1, Title: "A", Skills: []string{"Go"}}}
	repo := NewStaticCatalogRepository(src, map[int]career.Detail{1: {Benefits: []string{"Gym"}}})

	src[0].Skills[0] = "Rust"

	jobs, _ := repo.ListJobs(context.Background())
	if jobs[0].Skills[0] != "Go" {
		t.Fatalf("repository observed caller mutation")
	}

	jobs[0].Title = "changed"
	jobs[0].Skills[0] = "changed"
	again, _ := repo.ListJobs(context.Background())
	if again[0].Title != "A" || again[0].Skills[0] != "Go" {
		t.Fatalf("repository state leaked through ListJobs")
	}

	details, _ := repo.ListDetails(context.Background())
	details[1].Benefits[0] = "changed"
	details2, _ := repo.ListDetails(context.Background())
	if details2[1].Benefits[0] != "Gym" {
		t.Fatalf("repository state leaked through ListDetails")
	}
}
