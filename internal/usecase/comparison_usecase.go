package usecase

import (
	"context"
	"fmt"

	"career-compass/internal/domain/career"
	"career-compass/internal/pkg/logger"
	"career-compass/internal/repository"

	"go.uber.org/zap"
)

type ComparisonUsecase interface {
	CompareCareers(ctx context.Context, jobIDs []int) ([]career.Comparison, error)
}

type Comparison struct {
	catalog repository.CatalogRepository
	logger  *zap.Logger
}

func NewComparisonUsecase(catalog repository.CatalogRepository, log *zap.Logger) *Comparison {
	return &Comparison{catalog: catalog, logger: logger.OrNop(log).Named("comparison")}
}

// CompareCareers returns the selected jobs merged with their details, in
// catalog order. Unknown ids are skipped.
func (u *Comparison) CompareCareers(ctx context.Context, jobIDs []int) ([]career.Comparison, error) {
	if len(jobIDs) == 0 {
		return nil, ErrNoJobsSelected
	}

	wanted := make(map[int]struct{}, len(jobIDs))
	for _, id := range jobIDs {
		wanted[id] = struct{}{}
	}

	jobs, err := u.catalog.ListJobs(ctx)
	if err != nil {
		u.logger.Error("list catalog jobs failed", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrCatalogUnavailable, err)
	}
	details, err := u.catalog.ListDetails(ctx)
	if err != nil {
		u.logger.Error("list catalog details failed", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrCatalogUnavailable, err)
	}

	out := make([]career.Comparison, 0, len(wanted))
	for _, j := range jobs {
		if _, ok := wanted[j.ID]; !ok {
			continue
		}
		c := career.Comparison{Job: j}
		if d, ok := details[j.ID]; ok {
			c.Detail = &d
		}
		out = append(out, c)
	}
	return out, nil
}
