package combat

import "github.com/rkowalski/battlecalc/internal/model"

// Roller expands QDs of rolls into PDs of hit-kind bundles, memoizing by the
// input roll pool's content key so repeated rounds with identical strike
// signatures reuse the same distribution. Owned exclusively by one
// RoundManager; not safe for concurrent use.
type Roller[THit Hit] struct {
	cache map[string]*model.ProbDist[*model.QuantDist[THit]]
}

// NewRoller constructs an empty, unseeded Roller.
func NewRoller[THit Hit]() *Roller[THit] {
	return &Roller[THit]{cache: make(map[string]*model.ProbDist[*model.QuantDist[THit]])}
}

// RollHits returns the PD of hit-kind bundles produced by rolling strike,
// computing it on first use and serving the cached result thereafter.
func (r *Roller[THit]) RollHits(strike *model.QuantDist[Roll[THit]]) *model.ProbDist[*model.QuantDist[THit]] {
	key := strike.Key()
	if cached, ok := r.cache[key]; ok {
		return cached
	}
	result := rollHits(strike)
	r.cache[key] = result
	return result
}

// rollHits is the pure, uncached expansion of a roll pool into the exact PD
// of hit-kind bundles it can produce:
//  1. Group rolls by hit kind; convolve the binomial PMFs of each distinct
//     (strength, count) pair within a group into one PD<HitCount> per kind.
//  2. Take the product distribution across hit kinds: one QD<Hit> leaf per
//     combination, probability the product of each kind's chosen count.
func rollHits[THit Hit](strike *model.QuantDist[Roll[THit]]) *model.ProbDist[*model.QuantDist[THit]] {
	var order []THit
	hitDists := make(map[string]*model.ProbDist[HitCount])
	seen := make(map[string]bool)

	for _, q := range strike.Outcomes() {
		roll := q.Item
		count := q.Count
		p := float64(roll.Strength) / 6.0
		dist := binomialHitDist(p, count)

		key := roll.HitKind.SortKey()
		if existing, ok := hitDists[key]; ok {
			hitDists[key] = combineHitCountDists(existing, dist)
		} else {
			hitDists[key] = dist
			if !seen[key] {
				seen[key] = true
				order = append(order, roll.HitKind)
			}
		}
	}

	results := model.NewProbDistBuilder[*model.QuantDist[THit]]()
	combineHitKindDists(order, hitDists, 0, model.One, nil, results)
	return results.Build()
}

// combineHitCountDists convolves two independent HitCount distributions:
// the distribution of their sum.
func combineHitCountDists(a, b *model.ProbDist[HitCount]) *model.ProbDist[HitCount] {
	result := model.NewProbDistBuilderWithCapacity[HitCount](a.Len() * b.Len())
	for _, first := range a.Outcomes() {
		for _, second := range b.Outcomes() {
			result.Add(first.Item+second.Item, first.P.Mul(second.P))
		}
	}
	return result.Build()
}

// combineHitKindDists recursively enumerates one hit count per kind in
// order, multiplying the running path probability, and emits one QD<Hit>
// per leaf with its accumulated probability.
func combineHitKindDists[THit Hit](
	order []THit,
	dists map[string]*model.ProbDist[HitCount],
	idx int,
	currentP model.Probability,
	stack []model.Quant[THit],
	results *model.ProbDistBuilder[*model.QuantDist[THit]],
) {
	if idx == len(order) {
		b := model.NewQuantDistBuilder[THit]()
		for _, q := range stack {
			b.AddQuant(q)
		}
		results.Add(b.Build(), currentP)
		return
	}

	hit := order[idx]
	dist := dists[hit.SortKey()]
	for _, prob := range dist.Outcomes() {
		if prob.Item == 0 {
			combineHitKindDists(order, dists, idx+1, currentP.Mul(prob.P), stack, results)
			continue
		}
		nextStack := append(append([]model.Quant[THit]{}, stack...), model.Quant[THit]{Item: hit, Count: uint32(prob.Item)})
		combineHitKindDists(order, dists, idx+1, currentP.Mul(prob.P), nextStack, results)
	}
}
