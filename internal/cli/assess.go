package cli

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	pkgerrors "github.com/yungbote/team-alchemy-backend/internal/pkg/errors"
	"github.com/yungbote/team-alchemy-backend/internal/psychology/mbti"
	"github.com/yungbote/team-alchemy-backend/internal/services"
)

func newAssessCmd(opts *options) *cobra.Command {
	var kind string
	cmd := &cobra.Command{
		Use:   "assess USER_ID",
		Short: "Run an assessment for a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := parseID(args[0], "user")
			if err != nil {
				return err
			}
			k, ok := services.ParseAssessmentKind(kind)
			if !ok {
				return fail("✗ Invalid assessment type: %s (expected full, mbti, archetype)", kind)
			}
			out(cmd, "Running %s assessment for user %d...", k, userID)

			a, err := opts.openApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()

			res, err := a.Services.Profile.Assess(cmd.Context(), userID, string(k))
			if err != nil {
				if errors.Is(err, pkgerrors.ErrNotFound) {
					return fail("✗ User %d not found in database", userID)
				}
				return fail("✗ Assessment failed: %s", pkgerrors.Detail(err))
			}
			printAssessment(cmd, res)
			out(cmd, "✓ Assessment completed and saved")
			return nil
		},
	}
	cmd.Flags().StringVar(&kind, "assessment-type", string(services.AssessFull), "Assessment type (full, mbti, archetype)")
	return cmd
}

func printAssessment(cmd *cobra.Command, res *services.ProfileAssessment) {
	out(cmd, "✓ User found: %s (%s)", res.User.Name, res.User.Email)
	if res.CreatedProfile {
		out(cmd, "ℹ No existing profile found. Creating sample profile...")
		out(cmd, "✓ Sample profile created")
	}

	if res.Kind == services.AssessFull || res.Kind == services.AssessMBTI {
		out(cmd, "")
		out(cmd, "=== Jungian Profile ===")
		if res.Jungian == nil {
			out(cmd, "⚠ No MBTI type on record")
		} else {
			out(cmd, "MBTI Type: %s", res.Jungian.MBTIType)
			out(cmd, "Function Stack: %s", joinFunctions(res.Jungian.Stack))
			if len(res.Jungian.Strengths) > 0 {
				out(cmd, "Strengths: %s", strings.Join(res.Jungian.Strengths, ", "))
			}
			if res.Jungian.Shadow != "" {
				out(cmd, "Shadow: %s", res.Jungian.Shadow)
			}
		}
	}

	if res.Kind == services.AssessFull || res.Kind == services.AssessArchetype {
		out(cmd, "")
		out(cmd, "=== Archetype Analysis ===")
		if res.PrimaryName == "" {
			out(cmd, "⚠ No archetype on record")
		} else {
			out(cmd, "Primary Archetype: %s", res.PrimaryName)
		}
		if c := res.Classification; c != nil {
			if c.Secondary != nil {
				out(cmd, "Secondary Archetype: %s", *c.Secondary)
			}
			out(cmd, "Confidence: %.2f", c.Confidence)
		}
	}
	out(cmd, "")
}

func joinFunctions(stack []mbti.Function) string {
	parts := make([]string, len(stack))
	for i, f := range stack {
		parts[i] = string(f)
	}
	return strings.Join(parts, " → ")
}
