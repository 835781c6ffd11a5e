package seeder

import (
	"context"
	"errors"
	"fmt"
	"time"

	"career-compass/internal/database"
	"career-compass/internal/pkg/logger"

	"go.uber.org/zap"
)

type Runner struct {
	Seeders []Seeder
	Logger  *zap.Logger
}

// Run applies seeders in order and stops at the first failure.
func (r Runner) Run(ctx context.Context, db database.DB) error {
	if db == nil {
		return errors.New("nil db")
	}
	log := logger.OrNop(r.Logger)

	for _, s := range r.Seeders {
		if s == nil {
			continue
		}
		start := time.Now()
		if err := s.Run(ctx, db); err != nil {
			return fmt.Errorf("seed %s: %w", s.Name(), err)
		}
		log.Info("seeder applied", zap.String("seeder", s.Name()), zap.Duration("took", time.Since(start)))
	}
	return nil
}
