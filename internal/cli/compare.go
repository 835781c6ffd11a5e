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

func newCompareCommand(o *options) *cobra.Command {
	var ids []int

	cmd := &cobra.Command{
		Use:     "compare",
		Short:   "Show careers side by side with their comparison details",
		Example: "  careerctl compare --ids 1,3",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			log := o.logger()

			catalog, closeCatalog, err := openCatalog(ctx, o.source(), log)
			if err != nil {
				return err
			}
			defer closeCatalog()

			items, err := usecase.NewComparisonUsecase(catalog, log).CompareCareers(ctx, ids)
			if err != nil {
				return err
			}
			return writeComparison(cmd.OutOrStdout(), o.output(), items)
		},
	}

	cmd.Flags().IntSliceVar(&ids, "ids", nil, "comma-separated career ids")
	_ = cmd.MarkFlagRequired("ids")
	return cmd
}

func writeComparison(w io.Writer, format string, items []career.Comparison) error {
	if format == outputJSON {
		return writeJSON(w, dto.NewCareerComparisonResponses(items))
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tSALARY\tWORK TIME\tWORK TYPE\tBALANCE\tWHY BEST")
	for _, c := range items {
		d := career.Detail{WorkTime: "-", WorkType: "-", WorkLifeBalance: "-", WhyBest: "-"}
		if c.Detail != nil {
			d = *c.Detail
		}
		fmt.Fprintf(tw, "%d\t%s\t%d\t%s\t%s\t%s\t%s\n",
			c.Job.ID, c.Job.Title, c.Job.Salary, d.WorkTime, d.WorkType, d.WorkLifeBalance, d.WhyBest)
	}
	return tw.Flush()
}
