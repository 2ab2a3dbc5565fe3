package scoring

import (
	"github.com/yungbote/team-alchemy-backend/internal/pkg/stats"
)

var DefaultWeights = map[string]float64{
	"personality":   1.0,
	"skills":        1.2,
	"values":        1.0,
	"communication": 1.1,
	"leadership":    0.9,
}

const (
	individualShare = 0.6
	dynamicsShare   = 0.4
)

type Scorer struct {
	weights map[string]float64
}

// NewScorer copies weights; nil selects DefaultWeights.
func NewScorer(weights map[string]float64) *Scorer {
	if weights == nil {
		weights = DefaultWeights
	}
	w := make(map[string]float64, len(weights))
	for k, v := range weights {
		w[k] = v
	}
	return &Scorer{weights: w}
}

func (s *Scorer) Weight(dimension string) float64 {
	if w, ok := s.weights[dimension]; ok {
		return w
	}
	return 1.0
}

// Composite is the weighted mean of the dimension scores.
func (s *Scorer) Composite(scores map[string]float64) float64 {
	var sum, total float64
	for dim, v := range scores {
		w := s.Weight(dim)
		sum += v * w
		total += w
	}
	if total <= 0 {
		return 0
	}
	return sum / total
}

type TeamScore struct {
	TeamScore         float64 `json:"team_score"`
	IndividualAverage float64 `json:"individual_average"`
	TeamDynamics      float64 `json:"team_dynamics"`
	Variance          float64 `json:"variance"`
	Cohesion          float64 `json:"cohesion"`
	Size              int     `json:"size"`
	Analysis          string  `json:"analysis,omitempty"`
}

func (s *Scorer) TeamScore(individuals []float64, dynamics float64) TeamScore {
	if len(individuals) == 0 {
		return TeamScore{Analysis: "No data"}
	}
	avg := stats.Mean(individuals)
	variance := stats.PopulationVariance(individuals)
	cohesion := 100 - variance
	if variance > 100 {
		cohesion = 0
	}
	return TeamScore{
		TeamScore:         avg*individualShare + dynamics*dynamicsShare,
		IndividualAverage: avg,
		TeamDynamics:      dynamics,
		Variance:          variance,
		Cohesion:          cohesion,
		Size:              len(individuals),
	}
}
