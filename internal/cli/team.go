package cli

import (
	"errors"
	"sort"

	"github.com/spf13/cobra"

	"github.com/yungbote/team-alchemy-backend/internal/app"
	types "github.com/yungbote/team-alchemy-backend/internal/domain"
	pkgerrors "github.com/yungbote/team-alchemy-backend/internal/pkg/errors"
	"github.com/yungbote/team-alchemy-backend/internal/psychology/mbti"
	"github.com/yungbote/team-alchemy-backend/internal/services"
)

func loadTeam(cmd *cobra.Command, a *app.App, teamID uint) (*types.Team, error) {
	team, err := a.Services.Team.Get(cmd.Context(), teamID)
	if err != nil {
		if errors.Is(err, pkgerrors.ErrNotFound) {
			return nil, fail("✗ Team %d not found in database", teamID)
		}
		return nil, err
	}
	return team, nil
}

func newAnalyzeTeamCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "analyze-team TEAM_ID",
		Short: "Analyze team dynamics and composition",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			teamID, err := parseID(args[0], "team")
			if err != nil {
				return err
			}
			out(cmd, "Analyzing team %d...", teamID)

			a, err := opts.openApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()

			team, err := loadTeam(cmd, a, teamID)
			if err != nil {
				return err
			}
			out(cmd, "✓ Team found: %s (%d members)", team.Name, len(team.Members))

			res, err := a.Services.Analysis.AnalyzeStoredTeam(cmd.Context(), teamID)
			if err != nil {
				return fail("✗ Analysis failed: %s", pkgerrors.Detail(err))
			}
			printTeamAnalysis(cmd, res)
			out(cmd, "✓ Analysis completed and saved")
			return nil
		},
	}
}

func printTeamAnalysis(cmd *cobra.Command, res *services.TeamAnalysisResult) {
	d := res.TeamDynamics
	out(cmd, "")
	out(cmd, "=== Team Composition ===")
	out(cmd, "Profiled members: %d", res.TeamSize)
	out(cmd, "MBTI Distribution:")
	seen := make([]mbti.Type, 0, len(d.MBTIDistribution))
	for t := range d.MBTIDistribution {
		seen = append(seen, t)
	}
	sort.Slice(seen, func(i, j int) bool { return seen[i] < seen[j] })
	for _, t := range seen {
		out(cmd, "  %s: %d", t, d.MBTIDistribution[t])
	}

	out(cmd, "")
	out(cmd, "=== Team Dynamics ===")
	out(cmd, "Diversity Score: %.2f", d.DiversityScore)
	out(cmd, "Balance: %s", d.Balance)
	out(cmd, "Average Compatibility: %.1f", d.AverageCompatibility)
	out(cmd, "Team Score: %.1f", res.TeamScore.TeamScore)
	if len(res.Recommendations) > 0 {
		out(cmd, "")
		out(cmd, "Recommendations:")
		for _, r := range res.Recommendations {
			out(cmd, "  - %s", r)
		}
	}
	out(cmd, "")
}

func newRecommendCmd(opts *options) *cobra.Command {
	var maxRecs int
	cmd := &cobra.Command{
		Use:   "recommend TEAM_ID",
		Short: "Generate recommendations for a team",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			teamID, err := parseID(args[0], "team")
			if err != nil {
				return err
			}
			if maxRecs < 1 {
				return fail("✗ --max-recommendations must be at least 1")
			}
			out(cmd, "Generating recommendations for team %d...", teamID)

			a, err := opts.openApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()

			team, err := loadTeam(cmd, a, teamID)
			if err != nil {
				return err
			}
			out(cmd, "✓ Team found: %s", team.Name)

			report, err := a.Services.Analysis.Recommend(cmd.Context(), teamID, maxRecs)
			if err != nil {
				if errors.Is(err, pkgerrors.ErrNotFound) {
					out(cmd, "⚠ No analysis found. Please run 'analyze-team' first.")
					return nil
				}
				return fail("✗ Recommendation failed: %s", pkgerrors.Detail(err))
			}
			out(cmd, "✓ Latest analysis loaded")
			printRecommendations(cmd, report)
			out(cmd, "✓ Recommendations generated")
			return nil
		},
	}
	cmd.Flags().IntVar(&maxRecs, "max-recommendations", 5, "Maximum recommendations")
	return cmd
}

func printRecommendations(cmd *cobra.Command, r *services.RecommendationReport) {
	out(cmd, "")
	out(cmd, "=== Top %d Recommendations ===", len(r.Recommendations))
	if len(r.Recommendations) == 0 {
		out(cmd, "No interventions needed; team metrics look healthy.")
	}
	for i, rec := range r.Recommendations {
		out(cmd, "%d. %s [%s, priority %d, effort %s]", i+1, rec.Title, rec.Type, rec.Priority, rec.Effort)
		out(cmd, "   %s", rec.Description)
	}
	if len(r.QuickWins) > 0 {
		out(cmd, "")
		out(cmd, "Quick wins:")
		for _, w := range r.QuickWins {
			out(cmd, "  - %s", w.Title)
		}
	}
	if len(r.TeamRecommendations) > 0 {
		out(cmd, "")
		out(cmd, "Team guidance:")
		for _, s := range r.TeamRecommendations {
			out(cmd, "  - %s", s)
		}
	}
	out(cmd, "")
}
