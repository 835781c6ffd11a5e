package cli

import (
	"fmt"
	"os"

	"career-compass/internal/pkg/logger"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const app = "careerctl"

// Actual version can be specified in build command.
var version = "unknown"

const (
	outputTable = "table"
	outputJSON  = "json"
)

type options struct {
	v   *viper.Viper
	log *zap.Logger
}

func (o *options) source() string {
	return o.v.GetString("source")
}

func (o *options) output() string {
	return o.v.GetString("output")
}

func (o *options) logger() *zap.Logger {
	if o.log != nil {
		return o.log
	}
	l, err := logger.New(o.v.GetString("env"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "creating a logger: %v\n", err)
		l = zap.NewNop()
	}
	o.log = l
	return l
}

// NewRootCommand builds the careerctl command tree. Flags fall back to
// APP_ENV and CATALOG_SOURCE when not given.
func NewRootCommand() *cobra.Command {
	o := &options{v: viper.New()}

	root := &cobra.Command{
		Use:           app,
		Short:         "careerctl manages the career catalog and runs matches from the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if o.log != nil {
				_ = o.log.Sync()
			}
		},
	}

	pf := root.PersistentFlags()
	pf.String("env", "development", "logging environment; production logs JSON")
	pf.String("source", "static", "catalog source: static or postgres")
	pf.StringP("output", "o", outputTable, "output format: table or json")

	_ = o.v.BindPFlag("env", pf.Lookup("env"))
	_ = o.v.BindPFlag("source", pf.Lookup("source"))
	_ = o.v.BindPFlag("output", pf.Lookup("output"))
	_ = o.v.BindEnv("env", "APP_ENV")
	_ = o.v.BindEnv("source", "CATALOG_SOURCE")

	root.AddCommand(
		newMigrateCommand(o),
		newSeedCommand(o),
		newMatchCommand(o),
		newCompareCommand(o),
		newCatalogCommand(o),
		newVersionCommand(),
	)
	return root
}

// Execute runs careerctl with os.Args.
func Execute() error {
	return NewRootCommand().Execute()
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s version: %s\n", app, version)
		},
	}
}
