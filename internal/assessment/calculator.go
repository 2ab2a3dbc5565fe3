package assessment

import (
	"math"
	"strings"
	"unicode"

	"github.com/yungbote/team-alchemy-backend/internal/archetypes"
	"github.com/yungbote/team-alchemy-backend/internal/pkg/stats"
)

const neutralScore = 50.0

var defaultCategoryWeights = map[string]float64{
	"cognitive":     1.0,
	"emotional":     1.0,
	"behavioral":    1.0,
	"interpersonal": 1.2,
	"motivational":  1.0,
}

type Score struct {
	TotalScore           float64            `json:"total_score"`
	CategoryScores       map[string]float64 `json:"category_scores"`
	TraitScores          map[string]float64 `json:"trait_scores"`
	CompletionPercentage float64            `json:"completion_percentage"`
}

func emptyScore() Score {
	return Score{CategoryScores: map[string]float64{}, TraitScores: map[string]float64{}}
}

type Calculator struct {
	weights map[string]float64
}

func NewCalculator() *Calculator {
	return &Calculator{weights: defaultCategoryWeights}
}

func (c *Calculator) weight(category string) float64 {
	if w, ok := c.weights[strings.ToLower(category)]; ok {
		return w
	}
	return 1.0
}

// Calculate scores responses by category. Responses to unknown questions are ignored.
func (c *Calculator) Calculate(responses []Response, questions []Question) Score {
	if len(responses) == 0 {
		return emptyScore()
	}
	byID := make(map[uint]Question, len(questions))
	for _, q := range questions {
		byID[q.ID] = q
	}

	perCategory := map[string][]float64{}
	profile := archetypes.NewTraitProfile()
	answered := map[uint]bool{}
	for _, r := range responses {
		q, ok := byID[r.QuestionID]
		if !ok {
			continue
		}
		answered[q.ID] = true
		s := ScoreResponse(r)
		perCategory[q.Category] = append(perCategory[q.Category], s)
		// AddScore only fails outside [0,100]; clamped first.
		_ = profile.AddScore(titleCase(q.Category), math.Max(archetypes.MinTraitScore, math.Min(archetypes.MaxTraitScore, s)))
	}

	out := emptyScore()
	var weighted, total float64
	for cat, scores := range perCategory {
		avg := stats.Mean(scores)
		out.CategoryScores[cat] = avg
		w := c.weight(cat)
		weighted += avg * w
		total += w
	}
	if total > 0 {
		out.TotalScore = weighted / total
	}
	out.TraitScores = profile.Scores()
	if len(questions) > 0 {
		out.CompletionPercentage = float64(len(answered)) / float64(len(questions)) * 100
	}
	return out
}

// ScoreResponse reads numeric answers as-is and text answers as confidence*100.
func ScoreResponse(r Response) float64 {
	switch v := r.Answer.(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case string:
		if r.Confidence != nil && *r.Confidence != 0 {
			return *r.Confidence * 100
		}
		return neutralScore
	}
	return neutralScore
}

func titleCase(s string) string {
	var b strings.Builder
	prevLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			if prevLetter {
				b.WriteRune(unicode.ToLower(r))
			} else {
				b.WriteRune(unicode.ToUpper(r))
			}
			prevLetter = true
			continue
		}
		b.WriteRune(r)
		prevLetter = false
	}
	return b.String()
}

type TeamAggregate struct {
	TeamAverage      float64            `json:"team_average"`
	TeamVariance     float64            `json:"team_variance"`
	CategoryAverages map[string]float64 `json:"category_averages"`
	TeamSize         int                `json:"team_size"`
}

// Aggregate treats a category missing from a member's score as 0.
func Aggregate(scores []Score) TeamAggregate {
	out := TeamAggregate{CategoryAverages: map[string]float64{}, TeamSize: len(scores)}
	if len(scores) == 0 {
		return out
	}
	totals := make([]float64, len(scores))
	for i, s := range scores {
		totals[i] = s.TotalScore
		for cat := range s.CategoryScores {
			out.CategoryAverages[cat] = 0
		}
	}
	out.TeamAverage = stats.Mean(totals)
	out.TeamVariance = stats.PopulationVariance(totals)
	for cat := range out.CategoryAverages {
		var sum float64
		for _, s := range scores {
			sum += s.CategoryScores[cat]
		}
		out.CategoryAverages[cat] = sum / float64(len(scores))
	}
	return out
}
