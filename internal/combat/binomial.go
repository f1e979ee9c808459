package combat

import (
	"strconv"

	"github.com/rkowalski/battlecalc/internal/model"
)

// HitCount is the number of successful hits of one kind rolled by a dice
// pool; it exists so a plain uint32 can serve as a model.ProbDist item.
type HitCount uint32

// Key identifies a HitCount for ProbDist folding.
func (h HitCount) Key() string {
	return "h:" + strconv.FormatUint(uint64(h), 10)
}

// binomialHitDist computes the exact distribution of hit counts produced by
// rolling n independent dice that each hit with probability p, as a
// ProbDist<HitCount> over k in [0, n].
func binomialHitDist(p float64, n uint32) *model.ProbDist[HitCount] {
	b := model.NewProbDistBuilderWithCapacity[HitCount](int(n) + 1)
	q := 1 - p
	// Track the binomial coefficient C(n, k) incrementally to avoid computing
	// factorials directly: C(n, k) = C(n, k-1) * (n-k+1) / k.
	coeff := 1.0
	for k := uint32(0); k <= n; k++ {
		if k > 0 {
			coeff = coeff * float64(n-k+1) / float64(k)
		}
		mass := coeff * ipow(p, k) * ipow(q, n-k)
		b.Add(HitCount(k), model.NewProbability(clampUnit(mass)))
	}
	return b.Build()
}

// ipow raises base to a non-negative integer exponent.
func ipow(base float64, exp uint32) float64 {
	result := 1.0
	for i := uint32(0); i < exp; i++ {
		result *= base
	}
	return result
}

// clampUnit clamps a value computed via floating point into [0, 1],
// absorbing the same slop Probability itself tolerates on arithmetic.
func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
