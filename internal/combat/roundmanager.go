package combat

import "github.com/rkowalski/battlecalc/internal/model"

// stalemateThreshold is how many consecutive rounds must repeat the previous
// round's total probability exactly before a battle is declared stalemated.
const stalemateThreshold = 4

// RoundManager drives a battle from its starting forces to completion, one
// round at a time. It owns the CombatManager (and, through it, the Roller
// cache) and the phase sequence, and is the sole mutator of round state —
// it is not safe for concurrent use.
type RoundManager[TPhase Phase, TUnit Unit, THit Hit] struct {
	combatManager       *CombatManager[TPhase, TUnit, THit]
	sequence            PhaseSequence[TPhase]
	pruneThreshold      model.Probability
	roundIndex          int
	lastRound           RoundResult[TPhase, TUnit]
	lastProbability     model.Probability
	probabilityRunCount int
	haveLastProbability bool
}

// NewRoundManager seeds a RoundManager with the starting forces at round 0,
// certain (probability 1) and pending.
func NewRoundManager[TPhase Phase, TUnit Unit, THit Hit](
	combatManager *CombatManager[TPhase, TUnit, THit],
	sequence PhaseSequence[TPhase],
	attackers, defenders Force[TUnit],
) *RoundManager[TPhase, TUnit, THit] {
	startPhase := sequence.CombatAt(1)
	pendingBuilder := model.NewProbDistBuilder[Combat[TPhase, TUnit]]()
	pendingBuilder.Add(Combat[TPhase, TUnit]{Phase: startPhase, Attackers: attackers, Defenders: defenders}, model.One)

	attackersBuilder := model.NewProbDistBuilder[Force[TUnit]]()
	attackersBuilder.Add(attackers, model.One)
	defendersBuilder := model.NewProbDistBuilder[Force[TUnit]]()
	defendersBuilder.Add(defenders, model.One)

	return &RoundManager[TPhase, TUnit, THit]{
		combatManager:  combatManager,
		sequence:       sequence,
		pruneThreshold: model.NewProbability(DefaultPruneThreshold),
		roundIndex:     0,
		lastRound: RoundResult[TPhase, TUnit]{
			Pending:            pendingBuilder.Build(),
			Completed:          model.EmptyProbDist[Combat[TPhase, TUnit]](),
			Pruned:             model.EmptyProbDist[Combat[TPhase, TUnit]](),
			SurvivingAttackers: attackersBuilder.Build(),
			SurvivingDefenders: defendersBuilder.Build(),
		},
	}
}

// SetPruneThreshold overrides the probability at or below which a branch is
// discarded rather than carried forward. Must be called before the first
// AdvanceRound to take effect on round 1.
func (m *RoundManager[TPhase, TUnit, THit]) SetPruneThreshold(threshold model.Probability) {
	m.pruneThreshold = threshold
}

// RoundIndex returns the index of the round last advanced to (0 before any
// AdvanceRound call).
func (m *RoundManager[TPhase, TUnit, THit]) RoundIndex() int {
	return m.roundIndex
}

// LastRound returns the most recently computed RoundResult.
func (m *RoundManager[TPhase, TUnit, THit]) LastRound() RoundResult[TPhase, TUnit] {
	return m.lastRound
}

// IsComplete reports whether the battle has finished: no pending combats
// remain, or a stalemate was detected.
func (m *RoundManager[TPhase, TUnit, THit]) IsComplete() bool {
	return m.lastRound.IsComplete()
}

// AdvanceRound resolves every pending combat from the prior round one phase
// forward, folding the results into a new RoundResult, and returns it.
// Detects stalemates by watching for the round's total probability mass
// repeating exactly across stalemateThreshold consecutive rounds — a sign
// neither side can hit the other (e.g. a submarine facing only aircraft,
// with no destroyer present).
func (m *RoundManager[TPhase, TUnit, THit]) AdvanceRound() RoundResult[TPhase, TUnit] {
	m.roundIndex++
	nextPhase := m.sequence.CombatAt(m.roundIndex + 1)
	pruner := NewPruner(m.pruneThreshold)
	builder := newRoundResultBuilder[TPhase, TUnit]()

	for _, combat := range m.lastRound.Pending.Outcomes() {
		result := m.combatManager.Resolve(combat, nextPhase)
		builder.add(result, pruner)
	}

	result := builder.build(false)
	totalProbability := result.TotalProbability()

	stalemate := false
	if m.haveLastProbability && totalProbability.AlmostEqual(m.lastProbability, 0) {
		m.probabilityRunCount++
		stalemate = m.probabilityRunCount >= stalemateThreshold
	} else {
		m.probabilityRunCount = 0
		m.lastProbability = totalProbability
		m.haveLastProbability = true
	}
	result.Stalemate = stalemate

	m.lastRound = result
	return m.lastRound
}
