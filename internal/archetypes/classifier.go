package archetypes

import (
	"fmt"
	"math"
	"sort"
)

// Pattern maps trait name to the score expected for an archetype.
type Pattern map[string]float64

var defaultPatterns = map[ArchetypeType]Pattern{
	Leader:       {"Extraversion": 80, "Decisiveness": 85, "Confidence": 90},
	Innovator:    {"Creativity": 90, "Extraversion": 65, "Detail Orientation": 35},
	Harmonizer:   {"Empathy": 90, "Extraversion": 70, "Decisiveness": 45},
	Analyst:      {"Analytical Thinking": 90, "Detail Orientation": 85, "Logical Reasoning": 88},
	Implementer:  {"Detail Orientation": 80, "Drive": 85, "Creativity": 40},
	Visionary:    {"Creativity": 85, "Analytical Thinking": 70, "Extraversion": 40},
	Collaborator: {"Empathy": 80, "Extraversion": 75, "Confidence": 60},
	Specialist:   {"Analytical Thinking": 80, "Detail Orientation": 90, "Extraversion": 30},
}

type Score struct {
	Archetype ArchetypeType `json:"archetype"`
	Score     float64       `json:"score"`
}

type Result struct {
	Primary     ArchetypeType      `json:"primary_archetype"`
	Secondary   *ArchetypeType     `json:"secondary_archetype"`
	Confidence  float64            `json:"confidence"`
	TraitScores map[string]float64 `json:"trait_scores"`
	Ranking     []Score            `json:"ranking"`
}

// NewResult enforces confidence in [0,1].
func NewResult(primary ArchetypeType, secondary *ArchetypeType, confidence float64, traits map[string]float64) (Result, error) {
	if math.IsNaN(confidence) || confidence < 0 || confidence > 1 {
		return Result{}, &RangeError{Field: "confidence", Value: confidence, Min: 0, Max: 1}
	}
	return Result{Primary: primary, Secondary: secondary, Confidence: confidence, TraitScores: traits}, nil
}

type Classifier struct {
	patterns map[ArchetypeType]Pattern
}

func NewClassifier() *Classifier {
	return &Classifier{patterns: defaultPatterns}
}

// NewClassifierWithPatterns is used for custom pattern sets; types not in AllTypes sort last.
func NewClassifierWithPatterns(patterns map[ArchetypeType]Pattern) *Classifier {
	return &Classifier{patterns: patterns}
}

func (c *Classifier) Classify(profile *TraitProfile) (Result, error) {
	if len(c.patterns) == 0 {
		return Result{}, fmt.Errorf("classifier has no patterns")
	}
	ranking := c.Rank(profile)
	var secondary *ArchetypeType
	if len(ranking) > 1 {
		s := ranking[1].Archetype
		secondary = &s
	}
	res, err := NewResult(ranking[0].Archetype, secondary, ranking[0].Score/100.0, profile.Scores())
	if err != nil {
		return Result{}, err
	}
	res.Ranking = ranking
	return res, nil
}

// Rank scores every pattern, highest first; equal scores keep declaration order.
func (c *Classifier) Rank(profile *TraitProfile) []Score {
	out := make([]Score, 0, len(c.patterns))
	for t, p := range c.patterns {
		out = append(out, Score{Archetype: t, Score: PatternMatch(profile, p)})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		oi, oj := out[i].Archetype.order(), out[j].Archetype.order()
		if oi != oj {
			return oi < oj
		}
		return out[i].Archetype < out[j].Archetype
	})
	return out
}

// PatternMatch is max(0, 100 - mean |expected-actual|) over traits present in the profile.
func PatternMatch(profile *TraitProfile, pattern Pattern) float64 {
	if len(pattern) == 0 {
		return 0
	}
	total, n := 0.0, 0
	for trait, expected := range pattern {
		actual, ok := profile.Score(trait)
		if !ok {
			continue
		}
		total += math.Abs(expected - actual)
		n++
	}
	if n == 0 {
		return 0
	}
	return math.Max(0, 100-total/float64(n))
}

type TeamComposition struct {
	TeamSize              int                   `json:"team_size"`
	ArchetypeDistribution map[ArchetypeType]int `json:"archetype_distribution"`
	Classifications       []Result              `json:"classifications"`
	DiversityScore        float64               `json:"diversity_score"`
}

func (c *Classifier) ClassifyTeam(profiles []*TraitProfile) (TeamComposition, error) {
	comp := TeamComposition{
		TeamSize:              len(profiles),
		ArchetypeDistribution: map[ArchetypeType]int{},
		Classifications:       make([]Result, 0, len(profiles)),
	}
	for _, p := range profiles {
		res, err := c.Classify(p)
		if err != nil {
			return TeamComposition{}, err
		}
		comp.Classifications = append(comp.Classifications, res)
		comp.ArchetypeDistribution[res.Primary]++
	}
	comp.DiversityScore = float64(len(comp.ArchetypeDistribution)) / float64(len(AllTypes)) * 100
	return comp, nil
}
