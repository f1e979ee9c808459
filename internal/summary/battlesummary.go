package summary

import (
	"github.com/rkowalski/battlecalc/internal/combat"
	"github.com/rkowalski/battlecalc/internal/model"
)

// BattleSummary is the fully reduced result of a battle: one summary per
// round plus the battle-wide totals a report prints.
type BattleSummary[TPhase combat.Phase, TUnit combat.Unit] struct {
	Prebattle        RoundSummary
	RoundSummaries   []RoundSummary
	Attacker         BattleSideSummary
	Defender         BattleSideSummary
	CompletedCombats *model.ProbDist[combat.Combat[TPhase, TUnit]]
	DrawP            model.Probability
	TotalP           model.Probability
	PrunedP          model.Probability
}

// BattleSideSummary is one side's slice of a BattleSummary: what remains at
// battle's end, and how much was lost from the starting force.
type BattleSideSummary struct {
	IPC           Stat
	IPCLost       Stat
	UnitCount     Stat
	UnitCountLost Stat
	Strength      Stat
	StrengthLost  Stat
	WinP          model.Probability
}

// RoundCount returns how many rounds were resolved, not counting prebattle.
func (b BattleSummary[TPhase, TUnit]) RoundCount() int {
	return len(b.RoundSummaries)
}

// LastRound returns the final round's summary, and whether any rounds ran
// at all.
func (b BattleSummary[TPhase, TUnit]) LastRound() (RoundSummary, bool) {
	if len(b.RoundSummaries) == 0 {
		return RoundSummary{}, false
	}
	return b.RoundSummaries[len(b.RoundSummaries)-1], true
}
