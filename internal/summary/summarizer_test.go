package summary

import (
	"testing"

	"github.com/rkowalski/battlecalc/internal/combat"
	"github.com/rkowalski/battlecalc/internal/model"
	"github.com/rkowalski/battlecalc/internal/ruleset"
)

func forceOf(counts map[ruleset.Unit]uint32) *model.QuantDist[ruleset.Unit] {
	b := model.NewQuantDistBuilder[ruleset.Unit]()
	for u, c := range counts {
		b.Add(u, c)
	}
	return b.Build()
}

func prebattleResult(attackers, defenders *model.QuantDist[ruleset.Unit]) combat.RoundResult[ruleset.BattlePhase, ruleset.Unit] {
	state := combat.Combat[ruleset.BattlePhase, ruleset.Unit]{
		Phase:     ruleset.PreBattle,
		Attackers: attackers,
		Defenders: defenders,
	}
	pending := model.NewProbDistBuilder[combat.Combat[ruleset.BattlePhase, ruleset.Unit]]()
	pending.Add(state, model.One)
	return combat.RoundResult[ruleset.BattlePhase, ruleset.Unit]{
		Pending:            pending.Build(),
		Completed:          model.EmptyProbDist[combat.Combat[ruleset.BattlePhase, ruleset.Unit]](),
		Pruned:             model.EmptyProbDist[combat.Combat[ruleset.BattlePhase, ruleset.Unit]](),
		SurvivingAttackers: singleForce(attackers),
		SurvivingDefenders: singleForce(defenders),
	}
}

func singleForce(f *model.QuantDist[ruleset.Unit]) *model.ProbDist[combat.Force[ruleset.Unit]] {
	b := model.NewProbDistBuilder[combat.Force[ruleset.Unit]]()
	b.Add(f, model.One)
	return b.Build()
}

func decisiveRound(attackerWon bool) combat.RoundResult[ruleset.BattlePhase, ruleset.Unit] {
	var attackers, defenders *model.QuantDist[ruleset.Unit]
	if attackerWon {
		attackers = forceOf(map[ruleset.Unit]uint32{ruleset.Infantry: 1})
		defenders = forceOf(nil)
	} else {
		attackers = forceOf(nil)
		defenders = forceOf(map[ruleset.Unit]uint32{ruleset.Infantry: 1})
	}
	state := combat.Combat[ruleset.BattlePhase, ruleset.Unit]{
		Phase:     ruleset.General,
		Attackers: attackers,
		Defenders: defenders,
	}
	completed := model.NewProbDistBuilder[combat.Combat[ruleset.BattlePhase, ruleset.Unit]]()
	completed.Add(state, model.One)
	return combat.RoundResult[ruleset.BattlePhase, ruleset.Unit]{
		Pending:            model.EmptyProbDist[combat.Combat[ruleset.BattlePhase, ruleset.Unit]](),
		Completed:          completed.Build(),
		Pruned:             model.EmptyProbDist[combat.Combat[ruleset.BattlePhase, ruleset.Unit]](),
		SurvivingAttackers: singleForce(attackers),
		SurvivingDefenders: singleForce(defenders),
	}
}

func TestSummarizer_AttackerWinIsFullyAttributed(t *testing.T) {
	startAttackers := forceOf(map[ruleset.Unit]uint32{ruleset.Infantry: 1})
	startDefenders := forceOf(map[ruleset.Unit]uint32{ruleset.Infantry: 1})

	s := NewSummarizer[ruleset.BattlePhase, ruleset.Unit](prebattleResult(startAttackers, startDefenders))
	s.AddRound(1, decisiveRound(true))
	bs := s.Summarize()

	if bs.Attacker.WinP.Float64() != 1 {
		t.Errorf("attacker win p = %v, want 1", bs.Attacker.WinP.Float64())
	}
	if bs.Defender.WinP.Float64() != 0 {
		t.Errorf("defender win p = %v, want 0", bs.Defender.WinP.Float64())
	}
	if bs.DrawP.Float64() != 0 {
		t.Errorf("draw p = %v, want 0", bs.DrawP.Float64())
	}
	if bs.TotalP.Float64() != 1 {
		t.Errorf("total p = %v, want 1", bs.TotalP.Float64())
	}
}

func TestSummarizer_TracksUnitCountLost(t *testing.T) {
	startAttackers := forceOf(map[ruleset.Unit]uint32{ruleset.Infantry: 3})
	startDefenders := forceOf(map[ruleset.Unit]uint32{ruleset.Infantry: 1})

	s := NewSummarizer[ruleset.BattlePhase, ruleset.Unit](prebattleResult(startAttackers, startDefenders))
	s.AddRound(1, decisiveRound(true))
	bs := s.Summarize()

	if bs.Attacker.UnitCount.Mean != 1 {
		t.Errorf("surviving attacker unit count mean = %v, want 1", bs.Attacker.UnitCount.Mean)
	}
	if bs.Attacker.UnitCountLost.Mean != 2 {
		t.Errorf("attacker unit count lost mean = %v, want 2 (started with 3, ended with 1)", bs.Attacker.UnitCountLost.Mean)
	}
}

func TestSummarizer_RoundCountTracksAddedRounds(t *testing.T) {
	f := forceOf(map[ruleset.Unit]uint32{ruleset.Infantry: 1})
	s := NewSummarizer[ruleset.BattlePhase, ruleset.Unit](prebattleResult(f, f))
	if s.RoundCount() != 0 {
		t.Fatalf("RoundCount() = %d, want 0 before any round is added", s.RoundCount())
	}
	s.AddRound(1, decisiveRound(true))
	if s.RoundCount() != 1 {
		t.Errorf("RoundCount() = %d, want 1", s.RoundCount())
	}
}
