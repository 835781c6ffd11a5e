package usecase

import (
	"context"
	"fmt"

	"career-compass/internal/domain/career"
	"career-compass/internal/repository"
)

type CatalogUsecase interface {
	ListCareers(ctx context.Context) ([]career.Job, error)
}

type Catalog struct {
	catalog repository.CatalogRepository
}

func NewCatalogUsecase(catalog repository.CatalogRepository) *Catalog {
	return &Catalog{catalog: catalog}
}

func (u *Catalog) ListCareers(ctx context.Context) ([]career.Job, error) {
	jobs, err := u.catalog.ListJobs(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCatalogUnavailable, err)
	}
	return jobs, nil
}
