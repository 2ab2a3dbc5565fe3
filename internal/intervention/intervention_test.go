package intervention

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateHealthyTeam(t *testing.T) {
	assert.Empty(t, Generate(nil, 5))
	assert.Empty(t, Generate(map[string]float64{DiversityScore: 10}, 0))
}

func TestGenerateOrdersByPriority(t *testing.T) {
	recs := Generate(map[string]float64{DiversityScore: 30, CommunicationScore: 40}, 10)
	require.Len(t, recs, 5)
	titles := make([]string, len(recs))
	for i, r := range recs {
		titles[i] = r.Title
	}
	assert.Equal(t, []string{
		"Implement Daily Standups",
		"Increase Team Diversity",
		"Establish Communication Protocols",
		"Balance Thinking Styles",
		"Implement Async Communication Tools",
	}, titles)

	capped := Generate(map[string]float64{DiversityScore: 30, CommunicationScore: 40}, 2)
	assert.Len(t, capped, 2)
}

func TestGenerateThresholdsAreStrict(t *testing.T) {
	assert.Empty(t, Generate(map[string]float64{DiversityScore: 50, ConflictScore: 70, BurnoutRisk: 60}, 10))
	assert.Len(t, Generate(map[string]float64{BurnoutRisk: 61}, 10), 2)
}

func TestQuickWins(t *testing.T) {
	recs := Generate(map[string]float64{SkillGapScore: 50, EngagementScore: 10}, 10)
	wins := QuickWins(recs)
	require.Len(t, wins, 3)
	for _, w := range wins {
		assert.Equal(t, EffortLow, w.Effort)
		assert.Greater(t, w.ExpectedImpact, 0.6)
	}
}

func TestGeneratePlan(t *testing.T) {
	now := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	recs := Generate(map[string]float64{CommunicationScore: 10, ConflictScore: 90}, 10)
	plan := GeneratePlan("Improve collaboration", recs, now)

	require.Len(t, plan.Items, 4)
	assert.Equal(t, "Implement: Implement Daily Standups", plan.Items[0].Title)
	assert.Equal(t, now.Add(2*week), plan.Items[0].Deadline)
	assert.Equal(t, now.Add(6*week), plan.Items[2].Deadline)

	review := plan.Items[3]
	assert.Equal(t, "Review Progress", review.Title)
	assert.Equal(t, now.Add(8*week), review.Deadline)
	assert.Equal(t, []string{plan.Items[0].Title, plan.Items[1].Title, plan.Items[2].Title}, review.Dependencies)
	assert.Equal(t, 8, plan.TimelineWeeks)
}

func TestGeneratePlanWithoutRecommendations(t *testing.T) {
	plan := GeneratePlan("Stay the course", nil, time.Now())
	require.Len(t, plan.Items, 1)
	assert.Empty(t, plan.Items[0].Dependencies)
}

func TestTrackProgress(t *testing.T) {
	plan := GeneratePlan("g", Generate(map[string]float64{ProcessScore: 0}, 10), time.Now())
	plan.Items[0].Status = Completed
	plan.Items[1].Status = InProgress
	p := TrackProgress(plan)
	assert.Equal(t, Progress{TotalItems: 4, Completed: 1, InProgress: 1, Pending: 2, CompletionPercentage: 25}, p)
	assert.Equal(t, 0.0, TrackProgress(ActionPlan{}).CompletionPercentage)
}
