package usecase

import (
	"context"
	"time"

	"career-compass/internal/repository"
)

// Pinger is satisfied by the database handle and the cache client.
type Pinger interface {
	Ping(ctx context.Context) error
}

// ServiceStatus reports what the service is scoring against and whether its
// backing stores answer. Components that are not configured report false.
type ServiceStatus struct {
	CatalogSource   string
	TotalCareers    int
	CatalogHealthy  bool
	DatabaseHealthy bool
	CacheHealthy    bool
	ServerTime      time.Time
}

type StatusUsecase interface {
	GetStatus(ctx context.Context) ServiceStatus
}

type Status struct {
	source  string
	catalog repository.CatalogRepository
	db      Pinger
	cache   Pinger
	now     func() time.Time
}

// NewStatusUsecase builds the status probe. db and cache may be nil.
func NewStatusUsecase(source string, catalog repository.CatalogRepository, db, cache Pinger) *Status {
	return &Status{source: source, catalog: catalog, db: db, cache: cache, now: time.Now}
}

func (u *Status) GetStatus(ctx context.Context) ServiceStatus {
	st := ServiceStatus{
		CatalogSource:   u.source,
		DatabaseHealthy: ping(ctx, u.db),
		CacheHealthy:    ping(ctx, u.cache),
		ServerTime:      u.now().UTC(),
	}

	if u.catalog != nil {
		jobs, err := u.catalog.ListJobs(ctx)
		if err == nil {
			st.CatalogHealthy = true
			st.TotalCareers = len(jobs)
		}
	}
	return st
}

func ping(ctx context.Context, p Pinger) bool {
	if p == nil {
		return false
	}
	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return p.Ping(pingCtx) == nil
}
