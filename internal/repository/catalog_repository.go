package repository

import (
	"context"

	"career-compass/internal/domain/career"
)

// CatalogRepository is the read-only source of catalog jobs and their
// comparison details. Implementations return jobs in catalog order, which is
// the tie-break order for ranking.
type CatalogRepository interface {
	ListJobs(ctx context.Context) ([]career.Job, error)
	ListDetails(ctx context.Context) (map[int]career.Detail, error)
}
