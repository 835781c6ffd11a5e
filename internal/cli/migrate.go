package cli

import (
	"fmt"

	"career-compass/internal/database/migration"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newMigrateCommand(o *options) *cobra.Command {
	var target int64

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply the catalog schema migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			log := o.logger()

			_, db, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer db.Close()

			if err := (migration.Runner{Target: target}).Run(ctx, db.SQLDB()); err != nil {
				return err
			}
			v, err := migration.Version(ctx, db.SQLDB())
			if err != nil {
				return err
			}

			log.Info("migrations applied", zap.Int64("version", v))
			fmt.Fprintf(cmd.OutOrStdout(), "schema at version %d\n", v)
			return nil
		},
	}

	cmd.Flags().Int64Var(&target, "to", 0, "migrate up to this version (default latest)")
	return cmd
}
