package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"career-compass/internal/delivery/http/dto"
	"career-compass/internal/domain/matching"
	"career-compass/internal/usecase"

	"github.com/spf13/cobra"
)

func newMatchCommand(o *options) *cobra.Command {
	var (
		profilePath string
		params      usecase.MatchParams
	)

	cmd := &cobra.Command{
		Use:   "match",
		Short: "Rank the catalog for a profile read from a JSON file",
		Example: "  careerctl match --profile profile.json\n" +
			"  cat profile.json | careerctl match --profile - --limit 3 -o json",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			log := o.logger()

			req, err := readProfile(cmd, profilePath)
			if err != nil {
				return err
			}

			catalog, closeCatalog, err := openCatalog(ctx, o.source(), log)
			if err != nil {
				return err
			}
			defer closeCatalog()

			uc := usecase.NewMatchingUsecase(catalog, nil, log)
			matches, err := uc.MatchCareers(ctx, req.ToDomain(), params)
			if err != nil {
				return err
			}

			return writeMatches(cmd.OutOrStdout(), o.output(), matches)
		},
	}

	cmd.Flags().StringVarP(&profilePath, "profile", "p", "", "profile JSON file, - for stdin")
	cmd.Flags().IntVar(&params.Limit, "limit", 0, "return at most this many careers (0 = all)")
	cmd.Flags().Float64Var(&params.MinScore, "min-score", 0, "drop careers scoring below this")
	_ = cmd.MarkFlagRequired("profile")
	return cmd
}

func readProfile(cmd *cobra.Command, path string) (dto.ProfileRequest, error) {
	var r io.Reader
	if strings.TrimSpace(path) == "-" {
		r = cmd.InOrStdin()
	} else {
		f, err := os.Open(path)
		if err != nil {
			return dto.ProfileRequest{}, fmt.Errorf("open profile: %w", err)
		}
		defer f.Close()
		r = f
	}

	var req dto.ProfileRequest
	if err := json.NewDecoder(r).Decode(&req); err != nil {
		return dto.ProfileRequest{}, fmt.Errorf("decode profile: %w", err)
	}
	return req, nil
}

func writeMatches(w io.Writer, format string, matches []matching.JobMatch) error {
	if format == outputJSON {
		return writeJSON(w, dto.NewJobMatchResponses(matches))
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "RANK\tID\tTITLE\tSCORE\tMISSING SKILLS")
	for i, m := range matches {
		missing := strings.Join(m.MissingSkills, ", ")
		if missing == "" {
			missing = "-"
		}
		fmt.Fprintf(tw, "%d\t%d\t%s\t%.2f\t%s\n", i+1, m.Job.ID, m.Job.Title, m.MatchScore, missing)
	}
	return tw.Flush()
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
