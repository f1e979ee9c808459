package combat

import (
	"testing"

	"github.com/rkowalski/battlecalc/internal/model"
)

type testPhase int

func (p testPhase) SortKey() string { return "p" + string(rune('0'+p)) }

const (
	phaseStart testPhase = iota
	phaseA
	phaseB
)

type testUnit struct {
	name            string
	attack, defense uint8
}

func (u testUnit) SortKey() string { return u.name }
func (u testUnit) IPC() uint32     { return 1 }
func (u testUnit) Attack() uint8   { return u.attack }
func (u testUnit) Defense() uint8  { return u.defense }
func (u testUnit) Strength(s Side) uint8 {
	if s == Attacker {
		return u.attack
	}
	return u.defense
}

var soldier = testUnit{name: "soldier", attack: 2, defense: 2}

func forceOf(units ...testUnit) Force[testUnit] {
	b := model.NewQuantDistBuilder[testUnit]()
	for _, u := range units {
		b.Add(u, 1)
	}
	return b.Build()
}

func emptyForce() Force[testUnit] {
	return model.NewQuantDistBuilder[testUnit]().Build()
}

func TestCombat_WinnerAttacker(t *testing.T) {
	c := Combat[testPhase, testUnit]{Attackers: forceOf(soldier), Defenders: emptyForce()}
	side, ok := c.Winner()
	if !ok || side != Attacker {
		t.Errorf("Winner() = (%v, %v), want (Attacker, true)", side, ok)
	}
	if !c.Completed() {
		t.Error("expected Completed() = true when defenders are empty")
	}
}

func TestCombat_WinnerDefender(t *testing.T) {
	c := Combat[testPhase, testUnit]{Attackers: emptyForce(), Defenders: forceOf(soldier)}
	side, ok := c.Winner()
	if !ok || side != Defender {
		t.Errorf("Winner() = (%v, %v), want (Defender, true)", side, ok)
	}
}

func TestCombat_DrawBothEmpty(t *testing.T) {
	c := Combat[testPhase, testUnit]{Attackers: emptyForce(), Defenders: emptyForce()}
	_, ok := c.Winner()
	if ok {
		t.Error("expected no winner when both sides are empty (mutual destruction)")
	}
	if !c.Completed() {
		t.Error("expected Completed() = true when both sides are empty")
	}
}

func TestCombat_OngoingNoWinner(t *testing.T) {
	c := Combat[testPhase, testUnit]{Attackers: forceOf(soldier), Defenders: forceOf(soldier)}
	_, ok := c.Winner()
	if ok {
		t.Error("expected no winner while both sides still have units")
	}
	if c.Completed() {
		t.Error("expected Completed() = false while both sides still have units")
	}
}

func TestCombat_KeyDependsOnPhase(t *testing.T) {
	a := Combat[testPhase, testUnit]{Phase: phaseA, Attackers: forceOf(soldier), Defenders: emptyForce()}
	b := Combat[testPhase, testUnit]{Phase: phaseB, Attackers: forceOf(soldier), Defenders: emptyForce()}
	if a.Key() == b.Key() {
		t.Error("expected different keys for different phases")
	}
}

func TestPhaseSequence_StartThenCycle(t *testing.T) {
	seq := NewPhaseSequence(phaseStart, []testPhase{phaseA}, []testPhase{phaseB})
	cases := []struct {
		index int
		want  testPhase
	}{
		{0, phaseStart},
		{1, phaseA},
		{2, phaseB},
		{3, phaseB},
	}
	for _, c := range cases {
		if got := seq.CombatAt(c.index); got != c.want {
			t.Errorf("CombatAt(%d) = %v, want %v", c.index, got, c.want)
		}
	}
}

func TestPhaseSequence_PanicsOnEmptyCycle(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatal("expected panic for empty cycle")
		}
	}()
	NewPhaseSequence(phaseStart, nil, nil)
}
