package combat

import "github.com/rkowalski/battlecalc/internal/model"

// SurvivorSelector applies a PD of hit-kind bundles to a starting force and
// returns a PD over surviving forces. Ruleset-specific: it owns the removal
// order, the targetability filter, and any reserved-unit policy.
type SurvivorSelector[TUnit Unit, THit Hit] interface {
	Select(startingForce Force[TUnit], hitDists *model.ProbDist[*model.QuantDist[THit]]) *model.ProbDist[Force[TUnit]]
}
