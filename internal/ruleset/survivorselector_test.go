package ruleset

import (
	"testing"

	"github.com/rkowalski/battlecalc/internal/model"
)

func hitsOf(counts map[Hit]uint32) *model.QuantDist[Hit] {
	b := model.NewQuantDistBuilder[Hit]()
	for h, c := range counts {
		b.Add(h, c)
	}
	return b.Build()
}

func onlySurvivor(t *testing.T, sel SurvivorSelector, startingForce *model.QuantDist[Unit], hits *model.QuantDist[Hit]) *model.QuantDist[Unit] {
	t.Helper()
	dist := model.NewProbDistBuilder[*model.QuantDist[Hit]]()
	dist.Add(hits, model.One)
	result := sel.Select(startingForce, dist.Build())
	outcomes := result.Outcomes()
	if len(outcomes) != 1 {
		t.Fatalf("expected exactly one resulting force, got %d", len(outcomes))
	}
	return outcomes[0].Item
}

func TestSurvivorSelector_RemovesInRemovalOrder(t *testing.T) {
	sel := SurvivorSelector{RemovalOrder: []Unit{Infantry, Tank}}
	starting := force(map[Unit]uint32{Infantry: 1, Tank: 1})
	survivors := onlySurvivor(t, sel, starting, hitsOf(map[Hit]uint32{NotSubmarines: 1}))

	if survivors.Count(Infantry) != 0 {
		t.Errorf("Infantry count = %d, want 0 (first in removal order)", survivors.Count(Infantry))
	}
	if survivors.Count(Tank) != 1 {
		t.Errorf("Tank count = %d, want 1 (untouched)", survivors.Count(Tank))
	}
}

func TestSurvivorSelector_BattleshipBecomesDamagedInstead(t *testing.T) {
	sel := SurvivorSelector{RemovalOrder: []Unit{Battleship}}
	starting := force(map[Unit]uint32{Battleship: 1})
	survivors := onlySurvivor(t, sel, starting, hitsOf(map[Hit]uint32{AllUnits: 1}))

	if survivors.Count(Battleship) != 0 {
		t.Errorf("Battleship count = %d, want 0", survivors.Count(Battleship))
	}
	if survivors.Count(BattleshipDamaged) != 1 {
		t.Errorf("BattleshipDamaged count = %d, want 1 (absorbed the first hit)", survivors.Count(BattleshipDamaged))
	}
}

func TestSurvivorSelector_NonTargetableNeverRemoved(t *testing.T) {
	sel := SurvivorSelector{RemovalOrder: []Unit{BombardingBattleship, Infantry}}
	starting := force(map[Unit]uint32{BombardingBattleship: 1, Infantry: 1})
	survivors := onlySurvivor(t, sel, starting, hitsOf(map[Hit]uint32{AllUnits: 5}))

	if survivors.Count(BombardingBattleship) != 0 {
		t.Error("expected BombardingBattleship to already be filtered out as non-targetable, not merely survive")
	}
	if survivors.Count(Infantry) != 0 {
		t.Errorf("Infantry count = %d, want 0 (the only targetable casualty available)", survivors.Count(Infantry))
	}
}

func TestSurvivorSelector_ReservedUnitSurvivesWhileAlternativesExist(t *testing.T) {
	reserved := Tank
	sel := SurvivorSelector{RemovalOrder: []Unit{Tank, Infantry}, Reserved: &reserved}
	starting := force(map[Unit]uint32{Tank: 1, Infantry: 1})
	survivors := onlySurvivor(t, sel, starting, hitsOf(map[Hit]uint32{NotSubmarines: 1}))

	if survivors.Count(Tank) != 1 {
		t.Errorf("Tank count = %d, want 1 (reserved while Infantry is still available)", survivors.Count(Tank))
	}
	if survivors.Count(Infantry) != 0 {
		t.Errorf("Infantry count = %d, want 0 (taken instead of the reserved tank)", survivors.Count(Infantry))
	}
}

func TestSurvivorSelector_ReservedUnitTakenOnceNothingElseRemains(t *testing.T) {
	reserved := Tank
	sel := SurvivorSelector{RemovalOrder: []Unit{Tank}, Reserved: &reserved}
	starting := force(map[Unit]uint32{Tank: 2})
	survivors := onlySurvivor(t, sel, starting, hitsOf(map[Hit]uint32{NotSubmarines: 2}))

	if survivors.Count(Tank) != 0 {
		t.Errorf("Tank count = %d, want 0 (second pass takes the reserved tank when nothing else is left)", survivors.Count(Tank))
	}
}
