package cli

import (
	"fmt"

	"career-compass/internal/database/seeder"
	"career-compass/internal/infrastructure/cache"
	"career-compass/internal/usecase"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newSeedCommand(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Load the reference catalog into PostgreSQL",
		Long: "Upserts the reference careers and their comparison details, then drops\n" +
			"cached rankings so the server scores against the new catalog.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			log := o.logger()

			cfg, db, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer db.Close()

			seeders := seeder.Defaults()
			if err := (seeder.Runner{Seeders: seeders, Logger: log}).Run(ctx, db); err != nil {
				return err
			}

			if cfg.Redis.Enabled {
				rc := cache.NewRedis(ctx, cfg.Redis, log)
				defer rc.Close()
				if err := rc.DeleteByPattern(ctx, usecase.MatchCachePattern); err != nil {
					log.Warn("match cache not cleared", zap.Error(err))
				}
			}

			fmt.Fprintf(cmd.OutOrStdout(), "applied %d seeder(s)\n", len(seeders))
			return nil
		},
	}
}
