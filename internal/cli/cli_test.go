package cli

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yungbote/team-alchemy-backend/internal/app"
	"github.com/yungbote/team-alchemy-backend/internal/platform/logger"
	"github.com/yungbote/team-alchemy-backend/internal/services"
)

type seeded struct {
	dbURL       string
	profiledID  uint
	bareID      uint
	teamID      uint
	emptyTeamID uint
}

func strPtr(s string) *string { return &s }

// seed writes three users (two profiled) and a team holding all of them
// into a fresh sqlite file.
func seed(t *testing.T) seeded {
	t.Helper()
	t.Setenv("TEAM_ALCHEMY_CONFIG", "")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("REDIS_URL", "")

	cfg := app.DefaultConfig()
	cfg.DatabaseURL = "sqlite://" + filepath.Join(t.TempDir(), "alchemy.db")
	ctx := context.Background()
	a, err := app.NewWithConfig(ctx, cfg, logger.Nop())
	require.NoError(t, err)
	defer a.Close()

	s := seeded{dbURL: cfg.DatabaseURL}
	var ids []uint
	profiles := []struct{ mbti, archetype string }{{"INTJ", "analyst"}, {"ENFP", "innovator"}, {}}
	for i, p := range profiles {
		u, err := a.Services.User.Create(ctx, services.CreateUserInput{
			Email: fmt.Sprintf("user%d@example.com", i+1),
			Name:  fmt.Sprintf("Test User %d", i+1),
		})
		require.NoError(t, err)
		ids = append(ids, u.ID)
		if p.mbti != "" {
			_, err := a.Services.Profile.Upsert(ctx, u.ID, services.ProfileUpdate{
				JungianType: strPtr(p.mbti),
				Archetype:   strPtr(p.archetype),
			})
			require.NoError(t, err)
		}
	}
	s.profiledID, s.bareID = ids[0], ids[2]

	team, err := a.Services.Team.Create(ctx, services.CreateTeamInput{Name: "Test Team"})
	require.NoError(t, err)
	for _, id := range ids {
		require.NoError(t, a.Services.Team.AddMember(ctx, team.ID, id))
	}
	s.teamID = team.ID

	empty, err := a.Services.Team.Create(ctx, services.CreateTeamInput{Name: "Empty Team"})
	require.NoError(t, err)
	s.emptyTeamID = empty.ID
	return s
}

func run(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := Execute(context.Background(), args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestVersion(t *testing.T) {
	code, stdout, _ := run(t, "version")
	assert.Equal(t, 0, code)
	assert.Equal(t, "Team Alchemy version "+Version+"\n", stdout)
}

func TestInit(t *testing.T) {
	t.Setenv("TEAM_ALCHEMY_CONFIG", "")
	t.Setenv("REDIS_URL", "")
	url := "sqlite://" + filepath.Join(t.TempDir(), "init.db")
	code, stdout, stderr := run(t, "init", "--db-url", url)
	require.Equal(t, 0, code, stderr)
	assert.Contains(t, stdout, "✓ Database initialized successfully!")
}

func TestInitBadURL(t *testing.T) {
	t.Setenv("TEAM_ALCHEMY_CONFIG", "")
	code, _, stderr := run(t, "init", "--db-url", "mysql://nowhere")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "✗ Error initializing database")
}

func TestAssessFull(t *testing.T) {
	s := seed(t)
	code, stdout, stderr := run(t, "assess", fmt.Sprint(s.profiledID), "--db-url", s.dbURL)
	require.Equal(t, 0, code, stderr)
	assert.Contains(t, stdout, "Running full assessment")
	assert.Contains(t, stdout, "✓ User found: Test User 1 (user1@example.com)")
	assert.NotContains(t, stdout, "Creating sample profile")
	assert.Contains(t, stdout, "=== Jungian Profile ===")
	assert.Contains(t, stdout, "MBTI Type: INTJ")
	assert.Contains(t, stdout, "Function Stack: Ni → Te → Fi → Se")
	assert.Contains(t, stdout, "=== Archetype Analysis ===")
	assert.Contains(t, stdout, "✓ Assessment completed and saved")
}

func TestAssessCreatesSampleProfile(t *testing.T) {
	s := seed(t)
	code, stdout, stderr := run(t, "assess", fmt.Sprint(s.bareID), "--assessment-type", "mbti", "--db-url", s.dbURL)
	require.Equal(t, 0, code, stderr)
	assert.Contains(t, stdout, "Test User 3")
	assert.Contains(t, stdout, "ℹ No existing profile found. Creating sample profile...")
	assert.Contains(t, stdout, "✓ Sample profile created")
	assert.Contains(t, stdout, "MBTI Type: INTJ")
	assert.NotContains(t, stdout, "=== Archetype Analysis ===")
}

func TestAssessArchetypeOnly(t *testing.T) {
	s := seed(t)
	code, stdout, stderr := run(t, "assess", fmt.Sprint(s.profiledID), "--assessment-type", "archetype", "--db-url", s.dbURL)
	require.Equal(t, 0, code, stderr)
	assert.Contains(t, stdout, "Primary Archetype: Analyst")
	assert.NotContains(t, stdout, "Function Stack:")
}

func TestAssessErrors(t *testing.T) {
	s := seed(t)
	code, _, stderr := run(t, "assess", "999", "--db-url", s.dbURL)
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "✗ User 999 not found in database")

	code, _, stderr = run(t, "assess", fmt.Sprint(s.profiledID), "--assessment-type", "invalid", "--db-url", s.dbURL)
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "✗ Invalid assessment type: invalid")

	code, _, stderr = run(t, "assess", "abc")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "✗ Invalid user id: abc")
}

func TestAnalyzeTeamThenRecommend(t *testing.T) {
	s := seed(t)
	id := fmt.Sprint(s.teamID)

	code, stdout, stderr := run(t, "recommend", id, "--db-url", s.dbURL)
	require.Equal(t, 0, code, stderr)
	assert.Contains(t, stdout, "⚠ No analysis found. Please run 'analyze-team' first.")

	code, stdout, stderr = run(t, "analyze-team", id, "--db-url", s.dbURL)
	require.Equal(t, 0, code, stderr)
	assert.Contains(t, stdout, "✓ Team found: Test Team (3 members)")
	assert.Contains(t, stdout, "=== Team Composition ===")
	assert.Contains(t, stdout, "MBTI Distribution:")
	assert.Contains(t, stdout, "  ENFP: 1")
	assert.Contains(t, stdout, "  INTJ: 1")
	assert.Contains(t, stdout, "=== Team Dynamics ===")
	assert.Contains(t, stdout, "Diversity Score:")
	assert.Contains(t, stdout, "✓ Analysis completed and saved")

	code, stdout, stderr = run(t, "recommend", id, "--max-recommendations", "3", "--db-url", s.dbURL)
	require.Equal(t, 0, code, stderr)
	assert.Contains(t, stdout, "✓ Team found: Test Team")
	assert.Contains(t, stdout, "✓ Latest analysis loaded")
	assert.Contains(t, stdout, "Recommendations ===")
	assert.Contains(t, stdout, "✓ Recommendations generated")
}

func TestTeamCommandErrors(t *testing.T) {
	s := seed(t)
	code, _, stderr := run(t, "analyze-team", "999", "--db-url", s.dbURL)
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "✗ Team 999 not found in database")

	code, _, stderr = run(t, "recommend", "999", "--db-url", s.dbURL)
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "✗ Team 999 not found in database")

	code, _, stderr = run(t, "analyze-team", fmt.Sprint(s.emptyTeamID), "--db-url", s.dbURL)
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "has no members with an MBTI profile")

	code, _, stderr = run(t, "recommend", fmt.Sprint(s.teamID), "--max-recommendations", "0", "--db-url", s.dbURL)
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "must be at least 1")
}
