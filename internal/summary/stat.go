// Package summary rolls a completed battle's round-by-round results into
// human-readable statistics: mean and variance of IPC, unit count, and
// strength remaining on each side, and the probability of each outcome.
package summary

import (
	"fmt"
	"math"

	"github.com/rkowalski/battlecalc/internal/model"
)

// Stat tracks the running mean and variance of a probability-weighted
// value, updated incrementally (Welford's method) as outcomes are folded
// in one at a time rather than collected and averaged at the end.
type Stat struct {
	Mean     float64
	Variance float64
}

// AddValue folds value into the running mean and variance, weighted by p
// out of a running totalP (the sum of every p folded in so far, including
// this one).
func (s *Stat) AddValue(value float64, p, totalP model.Probability) {
	if totalP.IsZero() {
		return
	}
	oldMean := s.Mean
	s.Mean += (p.Float64() / totalP.Float64()) * (value - s.Mean)
	s.Variance += p.Float64() * (value - oldMean) * (value - s.Mean)
}

// StdDev returns the standard deviation implied by the running variance.
func (s Stat) StdDev() float64 {
	return math.Sqrt(s.Variance)
}

// Add combines two independent stats, summing their means and variances.
func (s Stat) Add(rhs Stat) Stat {
	return Stat{Mean: s.Mean + rhs.Mean, Variance: s.Variance + rhs.Variance}
}

// Sub returns the difference of two stats' means, with variances still
// summed (variance of a difference of independent variables adds, it
// doesn't subtract).
func (s Stat) Sub(rhs Stat) Stat {
	return Stat{Mean: s.Mean - rhs.Mean, Variance: s.Variance + rhs.Variance}
}

// String renders the stat as "μ: ..., σ: ...".
func (s Stat) String() string {
	return fmt.Sprintf("μ: %7.2f, σ: %6.2f", s.Mean, s.StdDev())
}
