// Package statistics accumulates sample means with their sampling error.
package statistics

import (
	"fmt"
	"math"
)

// z95 is the two-sided 95% normal quantile.
const z95 = 1.96

// Statistics keeps the count, sum and sum of squares of a stream of values.
// It does not store the values, so it is cheap to keep one per worker and
// Merge them afterwards. The zero value is ready to use.
type Statistics struct {
	N     int
	Sum   float64
	SumSq float64 // Sum of squares for variance calculation
}

// Add incorporates a new value.
func (s *Statistics) Add(x float64) {
	s.N++
	s.Sum += x
	s.SumSq += x * x
}

// AddN incorporates the same value n times.
func (s *Statistics) AddN(x float64, n int) {
	s.N += n
	s.Sum += x * float64(n)
	s.SumSq += x * x * float64(n)
}

// Merge folds other into s.
func (s *Statistics) Merge(other Statistics) {
	s.N += other.N
	s.Sum += other.Sum
	s.SumSq += other.SumSq
}

// Mean returns the arithmetic mean.
func (s Statistics) Mean() float64 {
	if s.N == 0 {
		return 0
	}
	return s.Sum / float64(s.N)
}

// Variance returns the sample variance.
func (s Statistics) Variance() float64 {
	if s.N < 2 {
		return 0
	}
	mean := s.Mean()
	// Rounding can push a zero variance slightly negative.
	return max(0, (s.SumSq-float64(s.N)*mean*mean)/float64(s.N-1))
}

// StdDev returns the sample standard deviation.
func (s Statistics) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// StdError returns the standard error of the mean.
func (s Statistics) StdError() float64 {
	if s.N == 0 {
		return 0
	}
	return s.StdDev() / math.Sqrt(float64(s.N))
}

// Margin95 returns the half width of the 95% confidence interval.
func (s Statistics) Margin95() float64 {
	return z95 * s.StdError()
}

// ConfidenceInterval95 returns the 95% confidence interval for the mean.
func (s Statistics) ConfidenceInterval95() (float64, float64) {
	mean, margin := s.Mean(), s.Margin95()
	return mean - margin, mean + margin
}

// Validate checks the accumulator is internally consistent.
func (s Statistics) Validate() error {
	if s.N < 0 {
		return fmt.Errorf("negative sample count %d", s.N)
	}
	if s.SumSq < 0 {
		return fmt.Errorf("negative sum of squares %f", s.SumSq)
	}
	if s.N == 0 && (s.Sum != 0 || s.SumSq != 0) {
		return fmt.Errorf("empty statistics with non-zero sums")
	}
	return nil
}
