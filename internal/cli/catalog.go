package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"career-compass/internal/delivery/http/dto"
	"career-compass/internal/domain/career"
	"career-compass/internal/usecase"

	"github.com/spf13/cobra"
)

func newCatalogCommand(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "List the careers in the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			catalog, closeCatalog, err := openCatalog(ctx, o.source(), o.logger())
			if err != nil {
				return err
			}
			defer closeCatalog()

			jobs, err := usecase.NewCatalogUsecase(catalog).ListCareers(ctx)
			if err != nil {
				return err
			}
			return writeCatalog(cmd.OutOrStdout(), o.output(), jobs)
		},
	}
}

func writeCatalog(w io.Writer, format string, jobs []career.Job) error {
	if format == outputJSON {
		out := make([]dto.JobResponse, 0, len(jobs))
		for _, j := range jobs {
			out = append(out, dto.NewJobResponse(j))
		}
		return writeJSON(w, out)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tFIELD\tMIN EDUCATION\tRISK\tPACE\tSALARY\tGROWTH")
	for _, j := range jobs {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%d\t%d\n",
			j.ID, j.Title, j.Field, j.MinEducation, j.RiskLevel, j.Pace, j.Salary, j.GrowthScore)
	}
	return tw.Flush()
}
