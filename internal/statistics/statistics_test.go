package statistics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmptyStatistics(t *testing.T) {
	t.Parallel()

	var s Statistics
	assert.Zero(t, s.Mean())
	assert.Zero(t, s.Variance())
	assert.Zero(t, s.StdError())
	assert.NoError(t, s.Validate())
}

func TestStatistics(t *testing.T) {
	t.Parallel()

	var s Statistics
	for _, v := range []float64{2, 4, 4, 4, 5, 5, 7, 9} {
		s.Add(v)
	}

	assert.Equal(t, 8, s.N)
	assert.InDelta(t, 5.0, s.Mean(), 1e-12)
	// Sample variance: sum of squared deviations 32 over 7.
	assert.InDelta(t, 32.0/7.0, s.Variance(), 1e-12)
	assert.InDelta(t, math.Sqrt(32.0/7.0), s.StdDev(), 1e-12)
	assert.InDelta(t, math.Sqrt(32.0/7.0)/math.Sqrt(8), s.StdError(), 1e-12)

	low, high := s.ConfidenceInterval95()
	assert.InDelta(t, s.Mean(), (low+high)/2, 1e-12)
	assert.InDelta(t, 2*1.96*s.StdError(), high-low, 1e-12)
	assert.NoError(t, s.Validate())
}

func TestAddNAndMerge(t *testing.T) {
	t.Parallel()

	var a, b, all Statistics
	a.AddN(1, 30)
	a.AddN(0.5, 10)
	b.AddN(0, 60)
	for range 30 {
		all.Add(1)
	}
	for range 10 {
		all.Add(0.5)
	}
	for range 60 {
		all.Add(0)
	}

	a.Merge(b)
	assert.Equal(t, all.N, a.N)
	assert.InDelta(t, all.Mean(), a.Mean(), 1e-12)
	assert.InDelta(t, all.Variance(), a.Variance(), 1e-12)
	assert.InDelta(t, 0.35, a.Mean(), 1e-12)
}

func TestConstantValuesHaveNoSpread(t *testing.T) {
	t.Parallel()

	var s Statistics
	s.AddN(0.1, 1000)
	assert.GreaterOrEqual(t, s.Variance(), 0.0)
	assert.InDelta(t, 0, s.Margin95(), 1e-6)
}

func TestValidate(t *testing.T) {
	t.Parallel()

	assert.Error(t, Statistics{N: -1}.Validate())
	assert.Error(t, Statistics{SumSq: -1}.Validate())
	assert.Error(t, Statistics{Sum: 3}.Validate())
}
