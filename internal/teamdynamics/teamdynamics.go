// Package teamdynamics aggregates member MBTI types into team-level
// diversity, balance and compatibility figures and derives recommendations.
package teamdynamics

import (
	"fmt"

	"github.com/yungbote/team-alchemy-backend/internal/pkg/stats"
	"github.com/yungbote/team-alchemy-backend/internal/psychology/mbti"
)

const (
	lowDiversity  = 0.5
	highDiversity = 0.8
)

// DiversityScore is unique types over members.
func DiversityScore(types []mbti.Type) float64 {
	if len(types) == 0 {
		return 0
	}
	uniq := map[mbti.Type]struct{}{}
	for _, t := range types {
		uniq[t] = struct{}{}
	}
	return float64(len(uniq)) / float64(len(types))
}

func BalanceLabel(diversity float64) string {
	switch {
	case diversity > 0.8:
		return "Highly Balanced"
	case diversity > 0.6:
		return "Balanced"
	case diversity > 0.4:
		return "Moderately Balanced"
	default:
		return "Homogeneous"
	}
}

type DimensionCounts struct {
	E int `json:"E"`
	I int `json:"I"`
	S int `json:"S"`
	N int `json:"N"`
	T int `json:"T"`
	F int `json:"F"`
	J int `json:"J"`
	P int `json:"P"`
}

func Dimensions(types []mbti.Type) DimensionCounts {
	var d DimensionCounts
	for _, t := range types {
		if len(t) != 4 {
			continue
		}
		for i := 0; i < 4; i++ {
			switch t.Letter(i) {
			case 'E':
				d.E++
			case 'I':
				d.I++
			case 'S':
				d.S++
			case 'N':
				d.N++
			case 'T':
				d.T++
			case 'F':
				d.F++
			case 'J':
				d.J++
			case 'P':
				d.P++
			}
		}
	}
	return d
}

// Distribution counts members per type.
func Distribution(types []mbti.Type) map[mbti.Type]int {
	out := map[mbti.Type]int{}
	for _, t := range types {
		out[t]++
	}
	return out
}

// mostCommon breaks count ties by the canonical type order.
func mostCommon(types []mbti.Type) (mbti.Type, int) {
	dist := Distribution(types)
	var best mbti.Type
	var n int
	for _, t := range mbti.AllTypes {
		if dist[t] > n {
			best, n = t, dist[t]
		}
	}
	return best, n
}

// skewed reports the minority side when one side outnumbers the other more than twofold.
func skewed(a, b int, aName, bName string) (string, int, bool) {
	switch {
	case a > 2*b:
		return bName, b, true
	case b > 2*a:
		return aName, a, true
	}
	return "", 0, false
}

// Recommend runs the rule cascade in order and stops once max entries exist.
func Recommend(types []mbti.Type, max int) []string {
	out := []string{}
	if max <= 0 || len(types) == 0 {
		return out
	}
	full := func() bool { return len(out) >= max }

	div := DiversityScore(types)
	switch {
	case div < lowDiversity:
		out = append(out, "Increase personality diversity: the team relies on few distinct MBTI types")
	case div >= highDiversity:
		out = append(out, "Leverage the team's cognitive diversity with structured decision-making")
	}
	if full() {
		return out
	}

	dims := Dimensions(types)
	total := len(types)
	if side, n, ok := skewed(dims.T, dims.F, "Thinking", "Feeling"); ok {
		out = append(out, fmt.Sprintf("Balance decision styles: only %d of %d members prefer %s", n, total, side))
		if full() {
			return out
		}
	}
	if side, n, ok := skewed(dims.N, dims.S, "Intuition", "Sensing"); ok {
		out = append(out, fmt.Sprintf("Balance information styles: only %d of %d members prefer %s", n, total, side))
		if full() {
			return out
		}
	}

	if total >= 2 {
		if t, n := mostCommon(types); n*2 > total {
			out = append(out, fmt.Sprintf("Avoid groupthink: %d members share the %s type", n, t))
			if full() {
				return out
			}
		}
	}

	if len(out) == 0 {
		out = append(out, "Maintain regular retrospectives to keep the team's dynamics balanced")
	}
	return out
}

type PairCompatibility struct {
	User1              uint      `json:"user1"`
	User2              uint      `json:"user2"`
	MBTI1              mbti.Type `json:"mbti1"`
	MBTI2              mbti.Type `json:"mbti2"`
	Compatible         bool      `json:"compatible"`
	CompatibilityScore int       `json:"compatibility_score"`
}

type Matrix struct {
	Pairs                []PairCompatibility `json:"compatibility_matrix"`
	OverallCompatibility float64             `json:"overall_compatibility"`
	TotalPairs           int                 `json:"total_pairs"`
}

// CompatibilityMatrix scores every i<j pair; ids and types are parallel.
func CompatibilityMatrix(ids []uint, types []mbti.Type) (Matrix, error) {
	if len(ids) != len(types) {
		return Matrix{}, fmt.Errorf("user_ids and mbti_types must have the same length (%d != %d)", len(ids), len(types))
	}
	return pairMatrix(ids, types), nil
}

// pairMatrix expects len(ids) == len(types).
func pairMatrix(ids []uint, types []mbti.Type) Matrix {
	m := Matrix{Pairs: []PairCompatibility{}}
	var sum float64
	for i := 0; i < len(ids); i++ {
		for j := i + 1; j < len(ids); j++ {
			c := mbti.AssessCompatibility(types[i], types[j])
			m.Pairs = append(m.Pairs, PairCompatibility{
				User1:              ids[i],
				User2:              ids[j],
				MBTI1:              types[i],
				MBTI2:              types[j],
				Compatible:         c.Compatible,
				CompatibilityScore: c.CompatibilityScore,
			})
			sum += float64(c.CompatibilityScore)
		}
	}
	m.TotalPairs = len(m.Pairs)
	if m.TotalPairs > 0 {
		m.OverallCompatibility = sum / float64(m.TotalPairs)
	}
	return m
}

// MemberCompatibility is each member's mean score against every teammate.
// A lone member scores 0.
func MemberCompatibility(types []mbti.Type) []float64 {
	out := make([]float64, len(types))
	if len(types) < 2 {
		return out
	}
	for i := range types {
		var sum float64
		for j := range types {
			if i == j {
				continue
			}
			sum += float64(mbti.AssessCompatibility(types[i], types[j]).CompatibilityScore)
		}
		out[i] = sum / float64(len(types)-1)
	}
	return out
}

type Dynamics struct {
	DiversityScore       float64           `json:"diversity_score"`
	Balance              string            `json:"balance"`
	MBTIDistribution     map[mbti.Type]int `json:"mbti_distribution"`
	Dimensions           DimensionCounts   `json:"dimensions"`
	SimpsonIndex         float64           `json:"simpson_index"`
	AverageCompatibility float64           `json:"average_compatibility"`
}

func Analyze(types []mbti.Type) Dynamics {
	div := DiversityScore(types)
	dist := Distribution(types)
	matrix := pairMatrix(make([]uint, len(types)), types)
	return Dynamics{
		DiversityScore:       div,
		Balance:              BalanceLabel(div),
		MBTIDistribution:     dist,
		Dimensions:           Dimensions(types),
		SimpsonIndex:         stats.SimpsonIndex(dist),
		AverageCompatibility: matrix.OverallCompatibility,
	}
}
