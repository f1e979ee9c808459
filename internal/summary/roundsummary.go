package summary

import (
	"github.com/rkowalski/battlecalc/internal/combat"
	"github.com/rkowalski/battlecalc/internal/model"
)

// RoundSummary condenses one round's RoundResult into the statistics a
// report wants to show: each side's remaining strength and win
// probability, plus how much probability mass was a draw or pruned away.
type RoundSummary struct {
	Index    int
	Attacker RoundSideSummary
	Defender RoundSideSummary
	DrawP    model.Probability
	PrunedP  model.Probability
}

// RoundSideSummary is one side's slice of a RoundSummary.
type RoundSideSummary struct {
	IPC       Stat
	UnitCount Stat
	Strength  Stat
	WinP      model.Probability
}

// RoundDelta is the difference between two RoundSummaries, used to show a
// round-over-round trend in a report.
type RoundDelta struct {
	FromIndex int
	ToIndex   int
	Attacker  RoundSideDelta
	Defender  RoundSideDelta
	DrawP     model.Probability
	PrunedP   model.Probability
}

// RoundSideDelta is one side's slice of a RoundDelta.
type RoundSideDelta struct {
	IPC       Stat
	UnitCount Stat
	Strength  Stat
	WinP      model.Probability
}

// NewRoundSummary builds a RoundSummary from a resolved round at the given
// index.
func NewRoundSummary[TPhase combat.Phase, TUnit combat.Unit](index int, result combat.RoundResult[TPhase, TUnit]) RoundSummary {
	return RoundSummary{
		Index:    index,
		Attacker: newRoundSideSummary(result, combat.Attacker),
		Defender: newRoundSideSummary(result, combat.Defender),
		DrawP:    sumWinP[TPhase, TUnit](result.Completed.Outcomes(), nil),
		PrunedP:  result.Pruned.TotalProbability(),
	}
}

func newRoundSideSummary[TPhase combat.Phase, TUnit combat.Unit](result combat.RoundResult[TPhase, TUnit], side combat.Side) RoundSideSummary {
	var outcomes []model.Prob[combat.Force[TUnit]]
	if side == combat.Attacker {
		outcomes = result.SurvivingAttackers.Outcomes()
	} else {
		outcomes = result.SurvivingDefenders.Outcomes()
	}

	winP := sumWinP[TPhase, TUnit](result.Completed.Outcomes(), &side)

	var summary RoundSideSummary
	totalP := model.Zero
	for _, outcome := range outcomes {
		ipcSum, unitCountSum, strengthSum := forceTotals(outcome.Item, side)
		totalP = totalP.Add(outcome.P)
		summary.IPC.AddValue(ipcSum, outcome.P, totalP)
		summary.UnitCount.AddValue(unitCountSum, outcome.P, totalP)
		summary.Strength.AddValue(strengthSum, outcome.P, totalP)
	}
	summary.WinP = winP
	return summary
}

func forceTotals[TUnit combat.Unit](force combat.Force[TUnit], side combat.Side) (ipc, unitCount, strength float64) {
	for _, q := range force.Outcomes() {
		unit := q.Item
		count := q.Count
		ipc += float64(unit.IPC() * count)
		unitCount += float64(count)
		strength += float64(uint32(unit.Strength(side)) * count)
	}
	return
}

// sumWinP sums the probability of every completed combat whose winner
// matches side, or (when side is nil) every completed combat with no
// winner at all — a draw.
func sumWinP[TPhase combat.Phase, TUnit combat.Unit](outcomes []model.Prob[combat.Combat[TPhase, TUnit]], side *combat.Side) model.Probability {
	total := model.Zero
	for _, o := range outcomes {
		winner, ok := o.Item.Winner()
		if side == nil {
			if !ok {
				total = total.Add(o.P)
			}
			continue
		}
		if ok && winner == *side {
			total = total.Add(o.P)
		}
	}
	return total
}

// Sub returns the delta from rhs to this summary.
func (s RoundSummary) Sub(rhs RoundSummary) RoundDelta {
	return RoundDelta{
		FromIndex: rhs.Index,
		ToIndex:   s.Index,
		Attacker:  s.Attacker.Sub(rhs.Attacker),
		Defender:  s.Defender.Sub(rhs.Defender),
		DrawP:     s.DrawP.Sub(rhs.DrawP),
		PrunedP:   s.PrunedP.Sub(rhs.PrunedP),
	}
}

// Sub returns the delta from rhs to this side summary.
func (s RoundSideSummary) Sub(rhs RoundSideSummary) RoundSideDelta {
	return RoundSideDelta{
		IPC:       s.IPC.Sub(rhs.IPC),
		UnitCount: s.UnitCount.Sub(rhs.UnitCount),
		Strength:  s.Strength.Sub(rhs.Strength),
		WinP:      s.WinP.Sub(rhs.WinP),
	}
}
