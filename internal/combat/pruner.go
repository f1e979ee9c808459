package combat

import "github.com/rkowalski/battlecalc/internal/model"

// DefaultPruneThreshold is used when a caller never calls
// RoundManager.SetPruneThreshold.
const DefaultPruneThreshold = 1e-9

// Pruner discards outcomes at or below a probability threshold, while
// retaining an accounting of what it threw away.
type Pruner struct {
	Threshold model.Probability
	Count     int
	Sum       model.Probability
}

// NewPruner constructs a Pruner with the given threshold.
func NewPruner(threshold model.Probability) *Pruner {
	return &Pruner{Threshold: threshold}
}

// Check reports whether p would be pruned: p <= threshold. Branches sitting
// exactly at the threshold are pruned, not kept.
func (pr *Pruner) Check(p model.Probability) bool {
	return p.LessEqual(pr.Threshold)
}

// Prune reports whether p is pruned and, if so, accumulates its count and
// probability into this pruner's running totals.
func (pr *Pruner) Prune(p model.Probability) bool {
	if !pr.Check(p) {
		return false
	}
	pr.Count++
	pr.Sum = pr.Sum.Add(p)
	return true
}
