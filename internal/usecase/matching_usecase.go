package usecase

import (
	"context"
	"fmt"

	"career-compass/internal/domain/matching"
	"career-compass/internal/domain/profile"
	"career-compass/internal/pkg/logger"
	"career-compass/internal/repository"

	"go.uber.org/zap"
)

type MatchParams struct {
	// Limit caps the number of results; zero or negative returns all.
	Limit int
	// MinScore drops results scoring below it.
	MinScore float64
}

type MatchingUsecase interface {
	MatchCareers(ctx context.Context, p profile.Profile, params MatchParams) ([]matching.JobMatch, error)
}

type Matching struct {
	catalog repository.CatalogRepository
	cache   MatchCache
	logger  *zap.Logger
}

// NewMatchingUsecase wires the matcher to a catalog. cache may be nil.
func NewMatchingUsecase(catalog repository.CatalogRepository, cache MatchCache, log *zap.Logger) *Matching {
	return &Matching{catalog: catalog, cache: cache, logger: logger.OrNop(log).Named("matching")}
}

func (u *Matching) MatchCareers(ctx context.Context, p profile.Profile, params MatchParams) ([]matching.JobMatch, error) {
	if err := ValidateProfile(p); err != nil {
		return nil, err
	}

	ranked, err := u.rank(ctx, p)
	if err != nil {
		return nil, err
	}

	return filterMatches(ranked, params), nil
}

func (u *Matching) rank(ctx context.Context, p profile.Profile) ([]matching.JobMatch, error) {
	key := MatchCacheKey(p)
	if u.cache != nil {
		var cached []matching.JobMatch
		found, err := u.cache.GetJSON(ctx, key, &cached)
		if err != nil {
			u.logger.Warn("match cache read failed", zap.String("key", key), zap.Error(err))
		}
		if found {
			u.logger.Debug("match cache hit", zap.String("key", key))
			return cached, nil
		}
	}

	jobs, err := u.catalog.ListJobs(ctx)
	if err != nil {
		u.logger.Error("list catalog jobs failed", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrCatalogUnavailable, err)
	}

	ranked := matching.Match(p, jobs)
	u.logger.Debug("catalog ranked",
		zap.Int("jobs", len(jobs)),
		zap.Int("skills", len(p.Skills)),
	)

	if u.cache != nil {
		if err := u.cache.SetJSON(ctx, key, ranked, 0); err != nil {
			u.logger.Warn("match cache write failed", zap.String("key", key), zap.Error(err))
		}
	}
	return ranked, nil
}

func filterMatches(ranked []matching.JobMatch, params MatchParams) []matching.JobMatch {
	if params.MinScore <= 0 && params.Limit <= 0 {
		return ranked
	}

	out := make([]matching.JobMatch, 0, len(ranked))
	for _, m := range ranked {
		if m.MatchScore < params.MinScore {
			continue
		}
		out = append(out, m)
		if params.Limit > 0 && len(out) == params.Limit {
			break
		}
	}
	return out
}
