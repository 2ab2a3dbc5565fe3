package stats

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMeanAndStdDev(t *testing.T) {
	assert.Equal(t, 0.0, Mean(nil))
	assert.Equal(t, 2.5, Mean([]float64{1, 2, 3, 4}))
	assert.Equal(t, 0.0, StdDev([]float64{42}))
	assert.InDelta(t, math.Sqrt(5.0/3), StdDev([]float64{1, 2, 3, 4}), 1e-9)
	assert.InDelta(t, 1.25, PopulationVariance([]float64{1, 2, 3, 4}), 1e-9)
}

func TestPercentile(t *testing.T) {
	vals := []float64{40, 10, 30, 20}
	assert.Equal(t, 20.0, Percentile(vals, 25))
	assert.Equal(t, 30.0, Percentile(vals, 50))
	assert.Equal(t, 40.0, Percentile(vals, 100), "index clamps to the last value")
	assert.Equal(t, 10.0, Percentile(vals, 0))
	assert.Equal(t, 0.0, Percentile(nil, 50))
	assert.Equal(t, []float64{40, 10, 30, 20}, vals, "input is not reordered")
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, 0.75, Normalize(75, 0, 100))
	assert.Equal(t, 0.5, Normalize(3, 7, 7))
}

func TestCorrelation(t *testing.T) {
	assert.InDelta(t, 1.0, Correlation([]float64{1, 2, 3}, []float64{2, 4, 6}), 1e-9)
	assert.InDelta(t, -1.0, Correlation([]float64{1, 2, 3}, []float64{3, 2, 1}), 1e-9)
	assert.Equal(t, 0.0, Correlation([]float64{1, 2}, []float64{1}))
	assert.Equal(t, 0.0, Correlation([]float64{1, 1, 1}, []float64{1, 2, 3}))
}

func TestSimpsonIndex(t *testing.T) {
	assert.Equal(t, 0.0, SimpsonIndex(map[string]int{}))
	assert.Equal(t, 0.0, SimpsonIndex(map[string]int{"INTJ": 4}))
	assert.InDelta(t, 0.75, SimpsonIndex(map[string]int{"A": 1, "B": 1, "C": 1, "D": 1}), 1e-9)
}

func TestTeam(t *testing.T) {
	assert.Equal(t, TeamMetrics{}, Team(nil))
	m := Team([]float64{70, 80, 90})
	assert.Equal(t, 80.0, m.Mean)
	assert.Equal(t, 80.0, m.Median)
	assert.Equal(t, 20.0, m.Range)
	assert.Equal(t, 70.0, m.P25)
	assert.Equal(t, 90.0, m.P75)
}
