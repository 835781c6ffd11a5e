package cli

import (
	"context"
	"fmt"
	"strings"

	"career-compass/internal/config"
	"career-compass/internal/database/sqldb"
	"career-compass/internal/repository"

	"go.uber.org/zap"
)

// openStore connects to the catalog database described by the environment.
func openStore(ctx context.Context) (config.Config, *sqldb.DB, error) {
	cfg, err := config.LoadStores()
	if err != nil {
		return config.Config{}, nil, err
	}
	db, err := sqldb.Open(ctx, cfg.Database.DSN())
	if err != nil {
		return config.Config{}, nil, err
	}
	return cfg, db, nil
}

func openCatalog(ctx context.Context, source string, log *zap.Logger) (repository.CatalogRepository, func() error, error) {
	switch strings.ToLower(strings.TrimSpace(source)) {
	case "", config.CatalogSourceStatic:
		return repository.NewReferenceCatalogRepository(), func() error { return nil }, nil
	case config.CatalogSourcePostgres:
		_, db, err := openStore(ctx)
		if err != nil {
			return nil, nil, err
		}
		log.Debug("catalog opened", zap.String("source", config.CatalogSourcePostgres))
		return repository.NewPostgresCatalogRepository(db), db.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown catalog source %q (want %q or %q)",
			source, config.CatalogSourceStatic, config.CatalogSourcePostgres)
	}
}
