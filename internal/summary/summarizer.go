package summary

import (
	"github.com/rkowalski/battlecalc/internal/combat"
	"github.com/rkowalski/battlecalc/internal/model"
)

// Summarizer accumulates round results as a battle is resolved and reduces
// them into a BattleSummary once the battle completes. Construct one per
// battle; it is not reusable across battles.
type Summarizer[TPhase combat.Phase, TUnit combat.Unit] struct {
	prebattle        RoundSummary
	roundSummaries   []RoundSummary
	attacker         battleSideBuilder[TPhase, TUnit]
	defender         battleSideBuilder[TPhase, TUnit]
	completedCombats *model.ProbDistBuilder[combat.Combat[TPhase, TUnit]]
	drawP            model.Probability
	totalP           model.Probability
	prunedP          model.Probability
}

// NewSummarizer seeds a Summarizer from the starting (prebattle) round
// result, round 0, used as the baseline every later round's "lost" figures
// are measured against.
func NewSummarizer[TPhase combat.Phase, TUnit combat.Unit](prebattle combat.RoundResult[TPhase, TUnit]) *Summarizer[TPhase, TUnit] {
	return &Summarizer[TPhase, TUnit]{
		prebattle:        NewRoundSummary[TPhase, TUnit](0, prebattle),
		completedCombats: model.NewProbDistBuilder[combat.Combat[TPhase, TUnit]](),
	}
}

// Prebattle returns the baseline round-0 summary.
func (s *Summarizer[TPhase, TUnit]) Prebattle() RoundSummary {
	return s.prebattle
}

// RoundCount returns how many rounds have been added so far.
func (s *Summarizer[TPhase, TUnit]) RoundCount() int {
	return len(s.roundSummaries)
}

// AddRound folds one resolved round into the running totals.
func (s *Summarizer[TPhase, TUnit]) AddRound(index int, round combat.RoundResult[TPhase, TUnit]) {
	s.roundSummaries = append(s.roundSummaries, NewRoundSummary[TPhase, TUnit](index, round))
	s.accumulateCompleted(round.Completed)
	s.prunedP = s.prunedP.Add(round.Pruned.TotalProbability())
}

func (s *Summarizer[TPhase, TUnit]) accumulateCompleted(completed *model.ProbDist[combat.Combat[TPhase, TUnit]]) {
	for _, outcome := range completed.Outcomes() {
		s.completedCombats.AddProb(outcome)
		s.accumulateCombat(outcome)
	}
}

func (s *Summarizer[TPhase, TUnit]) accumulateCombat(outcome model.Prob[combat.Combat[TPhase, TUnit]]) {
	p := outcome.P
	state := outcome.Item
	s.totalP = s.totalP.Add(p)

	s.attacker.accumulate(state, p, s.totalP, combat.Attacker)
	s.defender.accumulate(state, p, s.totalP, combat.Defender)

	if _, ok := state.Winner(); !ok {
		s.drawP = s.drawP.Add(p)
	}
}

// Summarize consumes this summarizer and builds the final BattleSummary.
func (s *Summarizer[TPhase, TUnit]) Summarize() BattleSummary[TPhase, TUnit] {
	return BattleSummary[TPhase, TUnit]{
		Prebattle:        s.prebattle,
		RoundSummaries:   s.roundSummaries,
		Attacker:         s.attacker.build(s.prebattle.Attacker),
		Defender:         s.defender.build(s.prebattle.Defender),
		CompletedCombats: s.completedCombats.Build(),
		DrawP:            s.drawP,
		TotalP:           s.totalP,
		PrunedP:          s.prunedP,
	}
}

// battleSideBuilder is the mutable accumulator behind one side of a
// BattleSideSummary.
type battleSideBuilder[TPhase combat.Phase, TUnit combat.Unit] struct {
	ipc       Stat
	unitCount Stat
	strength  Stat
	winP      model.Probability
}

func (b *battleSideBuilder[TPhase, TUnit]) accumulate(state combat.Combat[TPhase, TUnit], p, totalP model.Probability, side combat.Side) {
	if winner, ok := state.Winner(); ok && winner == side {
		b.winP = b.winP.Add(p)
	}

	force := state.Attackers
	if side == combat.Defender {
		force = state.Defenders
	}

	ipcSum, unitCountSum, strengthSum := forceTotals(force, side)
	b.ipc.AddValue(ipcSum, p, totalP)
	b.unitCount.AddValue(unitCountSum, p, totalP)
	b.strength.AddValue(strengthSum, p, totalP)
}

func (b *battleSideBuilder[TPhase, TUnit]) build(prebattle RoundSideSummary) BattleSideSummary {
	return BattleSideSummary{
		IPC:           b.ipc,
		IPCLost:       prebattle.IPC.Sub(b.ipc),
		UnitCount:     b.unitCount,
		UnitCountLost: prebattle.UnitCount.Sub(b.unitCount),
		Strength:      b.strength,
		StrengthLost:  prebattle.Strength.Sub(b.strength),
		WinP:          b.winP,
	}
}
