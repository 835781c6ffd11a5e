package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"career-compass/internal/config"
	dbpostgres "career-compass/internal/database/postgres"
	"career-compass/internal/infrastructure/cache"
	"career-compass/internal/pkg/logger"
	"career-compass/internal/repository"

	"go.uber.org/zap"
)

// Container owns the process-wide resources the handlers depend on.
type Container struct {
	Config  config.Config
	Logger  *zap.Logger
	DB      *dbpostgres.Pool
	Catalog repository.CatalogRepository
	Cache   *cache.Redis
}

func NewContainer(cfg config.Config, log *zap.Logger) (*Container, error) {
	log = logger.OrNop(log)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	c := &Container{Config: cfg, Logger: log}

	switch cfg.Catalog.Source {
	case config.CatalogSourcePostgres:
		db, err := dbpostgres.Connect(ctx, cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("connect catalog database: %w", err)
		}
		c.DB = db
		c.Catalog = repository.NewPostgresCatalogRepository(db)
	default:
		c.Catalog = repository.NewReferenceCatalogRepository()
	}
	log.Info("catalog ready", zap.String("source", sourceName(cfg.Catalog.Source)))

	if cfg.Redis.Enabled {
		c.Cache = cache.NewRedis(ctx, cfg.Redis, log)
	} else {
		c.Cache = cache.NewDisabled()
	}

	return c, nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}

	var errs []error
	if c.Cache != nil {
		errs = append(errs, c.Cache.Close())
	}
	if c.DB != nil {
		errs = append(errs, c.DB.Close())
	}
	return errors.Join(errs...)
}

func sourceName(s string) string {
	if s == "" {
		return config.CatalogSourceStatic
	}
	return s
}
