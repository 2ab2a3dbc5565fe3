package freudian

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdentifyDefensesEmpty(t *testing.T) {
	assert.Empty(t, IdentifyDefenses(nil, nil))
	assert.Empty(t, IdentifyDefenses([]string{}, map[string]any{}))
}

func TestIdentifyDefensesRationalization(t *testing.T) {
	got := IdentifyDefenses([]string{"justifies behavior"}, nil)
	require.Len(t, got, 1)
	assert.Equal(t, Rationalization, got[0].Mechanism)
	assert.InDelta(t, 0.2, got[0].Frequency, 1e-9)
	assert.Equal(t, 0.5, got[0].Adaptiveness)
	assert.Equal(t, []string{"justifies behavior"}, got[0].Contexts)
}

func TestIdentifyDefensesCaseInsensitiveAndCapped(t *testing.T) {
	behaviors := []string{
		"Often REFUSES TO ACKNOWLEDGE mistakes",
		"ignores reality of deadlines",
		"dismisses evidence from QA",
		"refuses to acknowledge feedback",
		"ignores reality again",
		"dismisses evidence in reviews",
		"uses humor to cope with outages",
	}
	got := IdentifyDefenses(behaviors, nil)
	require.Len(t, got, 2)
	assert.Equal(t, Denial, got[0].Mechanism)
	assert.Equal(t, 1.0, got[0].Frequency, "frequency is capped at 1")
	assert.Len(t, got[0].Contexts, 3)
	assert.True(t, got[0].IsMaladaptive())
	assert.Equal(t, Humor, got[1].Mechanism)
	assert.False(t, got[1].IsMaladaptive())
}

func TestAdaptivenessTable(t *testing.T) {
	assert.Equal(t, 0.8, Adaptiveness(Sublimation))
	assert.Equal(t, 0.8, Adaptiveness(Intellectualization))
	assert.Equal(t, 0.3, Adaptiveness(Projection))
	assert.Equal(t, 0.5, Adaptiveness(Regression))
	for _, m := range AllMechanisms {
		assert.NotEmpty(t, Indicators(m), "%s needs indicators", m)
	}
}

func TestAnalyzeConflictPatterns(t *testing.T) {
	profiles := []DefenseProfile{
		{Mechanism: Denial, Frequency: 0.4, Adaptiveness: 0.3},
		{Mechanism: Projection, Frequency: 0.2, Adaptiveness: 0.3},
		{Mechanism: Humor, Frequency: 0.6, Adaptiveness: 0.8},
	}
	res := AnalyzeConflictPatterns(profiles)
	assert.InDelta(t, 0.4, res.DefensivenessLevel, 1e-9)
	assert.InDelta(t, 1.4/3, res.DefenseMaturity, 1e-9)
	assert.Equal(t, 2, res.MaladaptiveCount)
	assert.Equal(t, []Mechanism{Denial, Projection}, res.PrimaryConflicts)
	assert.Equal(t, []string{"Work on acknowledging difficult realities", "Practice self-reflection and ownership"}, res.Recommendations)

	empty := AnalyzeConflictPatterns(nil)
	assert.Zero(t, empty.DefensivenessLevel)
	assert.Empty(t, empty.Recommendations)
}

func TestStructuralBalanceDefaults(t *testing.T) {
	b := AnalyzeStructuralBalance(nil)
	assert.Equal(t, StructuralBalance{IDStrength: 0.6, EgoStrength: 0.7, SuperegoStrength: 0.6, BalanceScore: 0.7}, b)

	skewed := AnalyzeStructuralBalance(map[string]any{"impulsivity": 0.9, "moral_standards": 0.3, "reality_testing": 1.5})
	assert.Equal(t, 1.0, skewed.EgoStrength)
	assert.InDelta(t, 0.4, skewed.BalanceScore, 1e-9)
}

func TestPsychosexualDevelopment(t *testing.T) {
	assert.Equal(t, "genital", AssessPsychosexualDevelopment(nil).DominantStage)
	res := AssessPsychosexualDevelopment(map[string]any{"fixations": []any{"phallic", "oral", "bogus"}})
	assert.Equal(t, "oral", res.DominantStage)
	assert.Equal(t, []string{"oral", "phallic"}, res.Fixations)
	assert.InDelta(t, 0.5, res.OverallMaturity, 1e-9)
}
