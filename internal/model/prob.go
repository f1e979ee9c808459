package model

import "sort"

// Keyed is the constraint ProbDist items must satisfy: a stable identity key
// used to fold duplicate items together on Add. *QuantDist[T] implements
// this via its content hash; Combat builds its Key() from its phase and the
// keys of its two forces.
type Keyed interface {
	Key() string
}

// Prob pairs an item with its probability.
type Prob[T Keyed] struct {
	Item T
	P    Probability
}

// Mul scales this outcome's probability by rhs, keeping the same item.
func (p Prob[T]) Mul(rhs Probability) Prob[T] {
	return Prob[T]{Item: p.Item, P: p.P.Mul(rhs)}
}

// ProbDist is an immutable set of (item, p>0) pairs: no duplicate items
// (merged by summing probabilities at build time), no zero probabilities,
// and Sigma(p) <= 1 + epsilon.
type ProbDist[T Keyed] struct {
	outcomes []Prob[T]
}

// Outcomes returns the (item, probability) pairs in canonical (sorted) order.
func (d *ProbDist[T]) Outcomes() []Prob[T] { return d.outcomes }

// Len returns the number of distinct outcomes.
func (d *ProbDist[T]) Len() int { return len(d.outcomes) }

// IsEmpty reports whether this distribution carries no outcomes.
func (d *ProbDist[T]) IsEmpty() bool { return len(d.outcomes) == 0 }

// TotalProbability sums the probability of every outcome.
func (d *ProbDist[T]) TotalProbability() Probability {
	total := Zero
	for _, o := range d.outcomes {
		total = total.Add(o.P)
	}
	return total
}

// EmptyProbDist returns a frozen ProbDist with no outcomes.
func EmptyProbDist[T Keyed]() *ProbDist[T] {
	return &ProbDist[T]{}
}

// SingleOutcome returns a frozen ProbDist with exactly one certain outcome.
func SingleOutcome[T Keyed](item T) *ProbDist[T] {
	return &ProbDist[T]{outcomes: []Prob[T]{{Item: item, P: One}}}
}

// ProbDistBuilder accumulates outcomes keyed by item identity before
// freezing into a ProbDist.
type ProbDistBuilder[T Keyed] struct {
	index    map[string]int
	outcomes []Prob[T]
}

// NewProbDistBuilder constructs an empty builder.
func NewProbDistBuilder[T Keyed]() *ProbDistBuilder[T] {
	return &ProbDistBuilder[T]{index: make(map[string]int)}
}

// NewProbDistBuilderWithCapacity preallocates room for n outcomes.
func NewProbDistBuilderWithCapacity[T Keyed](n int) *ProbDistBuilder[T] {
	return &ProbDistBuilder[T]{
		index:    make(map[string]int, n),
		outcomes: make([]Prob[T], 0, n),
	}
}

// Add folds p of probability into item's running total. A probability of
// zero is a no-op.
func (b *ProbDistBuilder[T]) Add(item T, p Probability) {
	b.AddProb(Prob[T]{Item: item, P: p})
}

// AddProb folds outcome into the builder by item identity.
func (b *ProbDistBuilder[T]) AddProb(outcome Prob[T]) {
	if outcome.P.IsZero() {
		return
	}
	key := outcome.Item.Key()
	if idx, ok := b.index[key]; ok {
		b.outcomes[idx].P = b.outcomes[idx].P.Add(outcome.P)
		return
	}
	b.index[key] = len(b.outcomes)
	b.outcomes = append(b.outcomes, outcome)
}

// Build freezes the builder into a ProbDist, sorted by item key so that
// equality and structure never depend on insertion or processing order.
func (b *ProbDistBuilder[T]) Build() *ProbDist[T] {
	outcomes := append([]Prob[T](nil), b.outcomes...)
	sort.Slice(outcomes, func(i, j int) bool {
		return outcomes[i].Item.Key() < outcomes[j].Item.Key()
	})
	return &ProbDist[T]{outcomes: outcomes}
}
