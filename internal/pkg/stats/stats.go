// Package stats has the small descriptive statistics used by team scoring.
package stats

import (
	"math"
	"sort"
)

func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// StdDev is the sample standard deviation; 0 below two values.
func StdDev(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}
	m := Mean(values)
	var ss float64
	for _, v := range values {
		ss += (v - m) * (v - m)
	}
	return math.Sqrt(ss / float64(len(values)-1))
}

// PopulationVariance divides by n.
func PopulationVariance(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	m := Mean(values)
	var ss float64
	for _, v := range values {
		ss += (v - m) * (v - m)
	}
	return ss / float64(len(values))
}

// Percentile uses the nearest-rank index floor(n*p/100), clamped to the last element.
func Percentile(values []float64, p float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)
	idx := int(float64(len(sorted)) * p / 100)
	if idx < 0 {
		idx = 0
	}
	if idx > len(sorted)-1 {
		idx = len(sorted) - 1
	}
	return sorted[idx]
}

func Median(values []float64) float64 {
	n := len(values)
	if n == 0 {
		return 0
	}
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}

// Normalize maps score into [min,max] -> [0,1]; a degenerate range yields 0.5.
func Normalize(score, min, max float64) float64 {
	if max == min {
		return 0.5
	}
	return (score - min) / (max - min)
}

// Correlation is Pearson's r, 0 when lengths differ, n<2, or either side is constant.
func Correlation(a, b []float64) float64 {
	if len(a) != len(b) || len(a) < 2 {
		return 0
	}
	ma, mb := Mean(a), Mean(b)
	var cov, va, vb float64
	for i := range a {
		da, db := a[i]-ma, b[i]-mb
		cov += da * db
		va += da * da
		vb += db * db
	}
	if va == 0 || vb == 0 {
		return 0
	}
	return cov / math.Sqrt(va*vb)
}

// SimpsonIndex is 1 - sum((n/N)^2).
func SimpsonIndex[K comparable](dist map[K]int) float64 {
	var total int
	for _, n := range dist {
		total += n
	}
	if total == 0 {
		return 0
	}
	var sum float64
	for _, n := range dist {
		p := float64(n) / float64(total)
		sum += p * p
	}
	return 1 - sum
}

type TeamMetrics struct {
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	StdDev float64 `json:"std_dev"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Range  float64 `json:"range"`
	P25    float64 `json:"p25"`
	P75    float64 `json:"p75"`
}

func Team(scores []float64) TeamMetrics {
	if len(scores) == 0 {
		return TeamMetrics{}
	}
	lo, hi := scores[0], scores[0]
	for _, s := range scores[1:] {
		lo = math.Min(lo, s)
		hi = math.Max(hi, s)
	}
	return TeamMetrics{
		Mean:   Mean(scores),
		Median: Median(scores),
		StdDev: StdDev(scores),
		Min:    lo,
		Max:    hi,
		Range:  hi - lo,
		P25:    Percentile(scores, 25),
		P75:    Percentile(scores, 75),
	}
}
