package casestudy

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedLoads(t *testing.T) {
	m, err := NewMapper()
	require.NoError(t, err)

	all := m.All()
	require.Len(t, all, 6)
	assert.Equal(t, "CS001", all[0].ID)
	assert.Equal(t, "CS006", all[5].ID)
	assert.Equal(t, time.Date(2023, 2, 15, 0, 0, 0, 0, time.UTC), all[1].CreatedAt)
	assert.Equal(t, "Shadow Work in Leadership Development: Jungian approach", all[2].Summary())
	assert.Equal(t, []string{"Freudian", "Jungian"}, m.Frameworks())
}

func TestGet(t *testing.T) {
	m := MustNewMapper()
	c, ok := m.Get("CS004")
	require.True(t, ok)
	assert.Equal(t, 0.47, c.Outcomes["collaboration_improvement"])
	_, ok = m.Get("CS999")
	assert.False(t, ok)
}

func TestSimilarity(t *testing.T) {
	assert.Equal(t, 0.0, Similarity(map[string]any{"x": 1}, map[string]any{"y": 1}))
	assert.Equal(t, 1.0, Similarity(map[string]any{"team_size": 8.0}, map[string]any{"team_size": 8}))
	assert.Equal(t, 0.5, Similarity(
		map[string]any{"team_size": 5, "primary_issues": []any{"conflict"}},
		map[string]any{"team_size": 5, "primary_issues": []string{"stress"}},
	))
}

func TestFindSimilar(t *testing.T) {
	m := MustNewMapper()
	got := m.FindSimilar(map[string]any{"team_size": 3.0, "primary_issues": []any{"leadership", "authenticity"}}, 2)
	require.Len(t, got, 2)
	assert.Equal(t, "CS003", got[0].ID)
	// zero-similarity ties keep insertion order
	assert.Equal(t, "CS001", got[1].ID)

	assert.Len(t, m.FindSimilar(nil, 20), 6)
	assert.Empty(t, m.FindSimilar(nil, 0))
}

func TestRecommendInterventions(t *testing.T) {
	m := MustNewMapper()
	got := m.RecommendInterventions(map[string]any{"team_size": 5})
	want := []string{
		"Defense mechanism awareness training",
		"Stress management workshops",
		"Individual counseling",
		"Archetype identification",
		"Team composition analysis",
		"Communication workshops",
		"Shadow integration exercises",
		"Leadership coaching",
		"Reflective journaling",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("interventions mismatch (-want +got):\n%s", diff)
	}
}

func TestRecommendInterventionsDeduplicates(t *testing.T) {
	m := MustNewMapper()
	m.Add(Case{ID: "CS100", Title: "Dup", Framework: "Adlerian", Profile: map[string]any{"k": "v"}, Interventions: []string{"Leadership coaching", "Peer review"}})
	m.Add(Case{ID: "CS101", Title: "Dup2", Framework: "Adlerian", Profile: map[string]any{"k": "v"}, Interventions: []string{"Peer review", "Leadership coaching"}})

	got := m.RecommendInterventions(map[string]any{"k": "v"})
	assert.Equal(t, "Leadership coaching", got[0])
	assert.Equal(t, "Peer review", got[1])
	assert.Len(t, got, len(uniq(got)))
	assert.Equal(t, []string{"Adlerian", "Freudian", "Jungian"}, m.Frameworks())
}

func TestExtractLessonsAndReport(t *testing.T) {
	m := MustNewMapper()
	c, _ := m.Get("CS005")
	lessons := ExtractLessons([]Case{c})
	require.Len(t, lessons, 1)
	assert.Equal(t, "high", lessons[0].Applicability)
	assert.Equal(t, "low", applicability(nil))

	r := Report(c, false)
	assert.Equal(t, "2023-05-05T00:00:00", r["date"])
	assert.NotContains(t, r, "profile")
	assert.Contains(t, Report(c, true), "interventions")
}

func uniq(in []string) map[string]struct{} {
	out := map[string]struct{}{}
	for _, s := range in {
		out[s] = struct{}{}
	}
	return out
}
