package archetypes

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddScoreBounds(t *testing.T) {
	p := NewTraitProfile()
	for _, v := range []float64{0, 50, 100} {
		require.NoError(t, p.AddScore("Empathy", v))
	}
	got, ok := p.Score("Empathy")
	require.True(t, ok)
	assert.Equal(t, 100.0, got, "re-adding overwrites")

	for _, v := range []float64{-0.01, 100.5, -50} {
		err := p.AddScore("Empathy", v)
		var re *RangeError
		require.True(t, errors.As(err, &re), "value %v should be rejected", v)
	}
}

func TestClassifyLeaderProfile(t *testing.T) {
	p, err := ProfileFromScores(map[string]float64{"Extraversion": 80, "Decisiveness": 85, "Confidence": 90})
	require.NoError(t, err)

	res, err := NewClassifier().Classify(p)
	require.NoError(t, err)
	assert.Equal(t, Leader, res.Primary)
	assert.InDelta(t, 1.0, res.Confidence, 1e-9)
	require.NotNil(t, res.Secondary)
	assert.GreaterOrEqual(t, res.Ranking[0].Score, res.Ranking[1].Score)
	for _, s := range res.Ranking {
		assert.GreaterOrEqual(t, s.Score, 0.0)
		assert.LessOrEqual(t, s.Score, 100.0)
	}
}

func TestClassifyEmptyProfileUsesDeclarationOrder(t *testing.T) {
	res, err := NewClassifier().Classify(NewTraitProfile())
	require.NoError(t, err)
	assert.Equal(t, Leader, res.Primary)
	require.NotNil(t, res.Secondary)
	assert.Equal(t, Innovator, *res.Secondary)
	assert.Equal(t, 0.0, res.Confidence)
}

func TestClassifySinglePatternHasNoSecondary(t *testing.T) {
	c := NewClassifierWithPatterns(map[ArchetypeType]Pattern{Analyst: {"Analytical Thinking": 90}})
	p, _ := ProfileFromScores(map[string]float64{"Analytical Thinking": 60})
	res, err := c.Classify(p)
	require.NoError(t, err)
	assert.Nil(t, res.Secondary)
	assert.InDelta(t, 0.7, res.Confidence, 1e-9)
}

func TestPatternMatchSkipsMissingTraits(t *testing.T) {
	p, _ := ProfileFromScores(map[string]float64{"Extraversion": 70})
	assert.InDelta(t, 90.0, PatternMatch(p, Pattern{"Extraversion": 80, "Confidence": 10}), 1e-9)
	assert.Equal(t, 0.0, PatternMatch(p, Pattern{}))
	far, _ := ProfileFromScores(map[string]float64{"Extraversion": 0})
	assert.Equal(t, 20.0, PatternMatch(far, Pattern{"Extraversion": 80}))
}

func TestNewResultRejectsConfidence(t *testing.T) {
	_, err := NewResult(Leader, nil, 1.2, nil)
	require.Error(t, err)
	_, err = NewResult(Leader, nil, -0.1, nil)
	require.Error(t, err)
}

func TestLookupCaseInsensitive(t *testing.T) {
	d, ok := Lookup("LeAdEr")
	require.True(t, ok)
	assert.Equal(t, "The Leader", d.Name)
	assert.Equal(t, "ENTJ", d.JungianMapping["primary"])
	_, ok = Lookup("wizard")
	assert.False(t, ok)
	assert.Len(t, Definitions(), len(AllTypes))
}

func TestTraitCompatibility(t *testing.T) {
	a, _ := ProfileFromScores(map[string]float64{"Empathy": 80, "Drive": 40})
	b, _ := ProfileFromScores(map[string]float64{"Empathy": 60, "Drive": 60})
	assert.InDelta(t, 80.0, TraitCompatibility(a, b), 1e-9)
	assert.Equal(t, 50.0, TraitCompatibility(a, NewTraitProfile()))
}

func TestClassifyTeam(t *testing.T) {
	leader, _ := ProfileFromScores(map[string]float64{"Extraversion": 80, "Decisiveness": 85, "Confidence": 90})
	analyst, _ := ProfileFromScores(map[string]float64{"Analytical Thinking": 90, "Detail Orientation": 85, "Logical Reasoning": 88})
	comp, err := NewClassifier().ClassifyTeam([]*TraitProfile{leader, analyst, leader})
	require.NoError(t, err)
	assert.Equal(t, 3, comp.TeamSize)
	assert.Equal(t, 2, comp.ArchetypeDistribution[Leader])
	assert.InDelta(t, 25.0, comp.DiversityScore, 1e-9)
}

func TestStandardTraitsValid(t *testing.T) {
	for _, tr := range StandardTraits() {
		assert.NoError(t, tr.Validate())
	}
	assert.Error(t, Trait{Name: "x", Weight: 2}.Validate())
}
