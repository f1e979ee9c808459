package combat

import "github.com/rkowalski/battlecalc/internal/model"

// RoundResult partitions the combats reachable after one round into three
// disjoint PDs (pending, completed, pruned), plus the marginal PDs of each
// side's surviving force independent of the other side's outcome.
type RoundResult[TPhase Phase, TUnit Unit] struct {
	Pending            *model.ProbDist[Combat[TPhase, TUnit]]
	Completed          *model.ProbDist[Combat[TPhase, TUnit]]
	Pruned             *model.ProbDist[Combat[TPhase, TUnit]]
	SurvivingAttackers *model.ProbDist[Force[TUnit]]
	SurvivingDefenders *model.ProbDist[Force[TUnit]]
	Stalemate          bool
}

// maxPrunedOutcomes bounds how many pruned branches are recorded in
// RoundResult.Pruned. Branches pruned after that are dropped, so their
// probability is missing from Pruned's total and from TotalProbability; the
// Pruner's own Count and Sum cover every pruned branch, but RoundResult does
// not carry them.
const maxPrunedOutcomes = 100

// newRoundResultBuilder returns the mutable accumulators RoundManager folds
// combat resolutions into over the course of one round.
type roundResultBuilder[TPhase Phase, TUnit Unit] struct {
	pending            *model.ProbDistBuilder[Combat[TPhase, TUnit]]
	completed          *model.ProbDistBuilder[Combat[TPhase, TUnit]]
	pruned             *model.ProbDistBuilder[Combat[TPhase, TUnit]]
	prunedCount        int
	survivingAttackers *model.ProbDistBuilder[Force[TUnit]]
	survivingDefenders *model.ProbDistBuilder[Force[TUnit]]
}

func newRoundResultBuilder[TPhase Phase, TUnit Unit]() *roundResultBuilder[TPhase, TUnit] {
	return &roundResultBuilder[TPhase, TUnit]{
		pending:            model.NewProbDistBuilder[Combat[TPhase, TUnit]](),
		completed:          model.NewProbDistBuilder[Combat[TPhase, TUnit]](),
		pruned:             model.NewProbDistBuilder[Combat[TPhase, TUnit]](),
		survivingAttackers: model.NewProbDistBuilder[Force[TUnit]](),
		survivingDefenders: model.NewProbDistBuilder[Force[TUnit]](),
	}
}

// add folds one resolved combat's survivor PDs into this round, taking the
// cross product of surviving attacker and defender forces: the probability
// of a specific (attacker force, defender force) pair is the combat's
// incoming probability times each side's independent survival probability.
func (b *roundResultBuilder[TPhase, TUnit]) add(result CombatResult[TPhase, TUnit], pruner *Pruner) {
	attackers := result.SurvivingAttackers.Outcomes()
	defenders := result.SurvivingDefenders.Outcomes()

	for _, attacker := range attackers {
		for _, defender := range defenders {
			p := result.P.Mul(attacker.P).Mul(defender.P)
			state := Combat[TPhase, TUnit]{
				Phase:     result.NextPhase,
				Attackers: attacker.Item,
				Defenders: defender.Item,
			}
			if pruner.Prune(p) {
				if b.prunedCount < maxPrunedOutcomes {
					b.pruned.Add(state, p)
					b.prunedCount++
				}
				continue
			}
			if state.Completed() {
				b.completed.Add(state, p)
			} else {
				b.pending.Add(state, p)
			}
		}
	}

	for _, attacker := range attackers {
		b.survivingAttackers.Add(attacker.Item, attacker.P.Mul(result.P))
	}
	for _, defender := range defenders {
		b.survivingDefenders.Add(defender.Item, defender.P.Mul(result.P))
	}
}

func (b *roundResultBuilder[TPhase, TUnit]) build(stalemate bool) RoundResult[TPhase, TUnit] {
	return RoundResult[TPhase, TUnit]{
		Pending:            b.pending.Build(),
		Completed:          b.completed.Build(),
		Pruned:             b.pruned.Build(),
		SurvivingAttackers: b.survivingAttackers.Build(),
		SurvivingDefenders: b.survivingDefenders.Build(),
		Stalemate:          stalemate,
	}
}

// IsComplete reports whether this round ended the battle: no pending
// combats remain to advance further, or a stalemate was detected.
func (r RoundResult[TPhase, TUnit]) IsComplete() bool {
	return r.Pending.IsEmpty() || r.Stalemate
}

// TotalProbability sums the probability mass across pending, completed, and
// pruned combats. A round only holds the mass that was still pending when it
// began, so the total is at most 1 and falls as combats complete; RoundManager
// uses it to detect stalemates.
func (r RoundResult[TPhase, TUnit]) TotalProbability() model.Probability {
	total := model.Zero
	for _, o := range r.Pending.Outcomes() {
		total = total.Add(o.P)
	}
	for _, o := range r.Completed.Outcomes() {
		total = total.Add(o.P)
	}
	for _, o := range r.Pruned.Outcomes() {
		total = total.Add(o.P)
	}
	return total
}
