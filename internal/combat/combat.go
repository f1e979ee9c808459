package combat

import "github.com/rkowalski/battlecalc/internal/model"

// Combat is one reachable (phase, attackers, defenders) state.
type Combat[TPhase Phase, TUnit Unit] struct {
	Phase     TPhase
	Attackers Force[TUnit]
	Defenders Force[TUnit]
}

// Key identifies this combat by content so it can fold into a ProbDist.
func (c Combat[TPhase, TUnit]) Key() string {
	return c.Phase.SortKey() + "|" + c.Attackers.Key() + "|" + c.Defenders.Key()
}

// Winner reports which side has won (the other side is empty) and whether
// the combat has a winner at all — false, false means a draw or an ongoing
// combat with both sides present.
func (c Combat[TPhase, TUnit]) Winner() (side Side, ok bool) {
	attackersEmpty := c.Attackers.IsEmpty()
	defendersEmpty := c.Defenders.IsEmpty()
	switch {
	case attackersEmpty && !defendersEmpty:
		return Defender, true
	case defendersEmpty && !attackersEmpty:
		return Attacker, true
	default:
		return 0, false
	}
}

// Completed reports whether either side has been reduced to nothing.
func (c Combat[TPhase, TUnit]) Completed() bool {
	return c.Attackers.IsEmpty() || c.Defenders.IsEmpty()
}

// CombatResult is the outcome of resolving one Combat for one round: PDs of
// surviving forces on each side, conditioned on the path probability p that
// led into this combat.
type CombatResult[TPhase Phase, TUnit Unit] struct {
	NextPhase          TPhase
	SurvivingAttackers *model.ProbDist[Force[TUnit]]
	SurvivingDefenders *model.ProbDist[Force[TUnit]]
	P                  model.Probability
}

// PhaseSequence maps a round index to a phase: index 0 is always the
// ruleset's prebattle sentinel, indices 1..len(start) walk the start prefix,
// and indices beyond that cycle through cycle indefinitely.
type PhaseSequence[TPhase Phase] struct {
	prebattle TPhase
	start     []TPhase
	cycle     []TPhase
}

// NewPhaseSequence constructs a phase sequence. Panics via
// model.InvariantError if cycle is empty — a sequence must always have
// somewhere to go once the start prefix is exhausted.
func NewPhaseSequence[TPhase Phase](prebattle TPhase, start, cycle []TPhase) PhaseSequence[TPhase] {
	if len(cycle) == 0 {
		panic(&model.InvariantError{Msg: "phase sequence cycle must not be empty"})
	}
	return PhaseSequence[TPhase]{prebattle: prebattle, start: start, cycle: cycle}
}

// Start returns the one-time phases that precede the repeating cycle.
func (s PhaseSequence[TPhase]) Start() []TPhase { return s.start }

// Cycle returns the phases repeated indefinitely once the start prefix ends.
func (s PhaseSequence[TPhase]) Cycle() []TPhase { return s.cycle }

// CombatAt returns the phase for the given round index. Index 0 is always
// the ruleset's prebattle sentinel.
func (s PhaseSequence[TPhase]) CombatAt(index int) TPhase {
	if index == 0 {
		return s.prebattle
	}
	index--
	if index < len(s.start) {
		return s.start[index]
	}
	index -= len(s.start)
	return s.cycle[index%len(s.cycle)]
}
