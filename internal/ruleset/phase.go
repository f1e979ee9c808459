package ruleset

import (
	"fmt"

	"github.com/rkowalski/battlecalc/internal/combat"
)

// BattlePhase is one of the five slots a round of combat can occupy.
type BattlePhase int

const (
	PreBattle BattlePhase = iota
	Bombardment
	PhaseAntiAir
	SurpriseStrike
	General
)

// String renders the phase's display name.
func (p BattlePhase) String() string {
	switch p {
	case PreBattle:
		return "Pre-Battle"
	case Bombardment:
		return "Bombardment"
	case PhaseAntiAir:
		return "Anti-Air"
	case SurpriseStrike:
		return "Surprise Strike"
	case General:
		return "General Combat"
	default:
		return fmt.Sprintf("BattlePhase(%d)", int(p))
	}
}

// SortKey gives BattlePhase a deterministic total order for QuantDist
// hashing.
func (p BattlePhase) SortKey() string {
	return fmt.Sprintf("p%02d", int(p))
}

// CreateSequence builds the phase sequence for a battle given the units
// present on both sides: bombardment and anti-air each get a one-time slot
// in the start prefix only if a unit of that phase is present, surprise
// strike joins the repeating cycle only if a submarine is present, and
// general combat always repeats.
func CreateSequence(attackers, defenders combat.Force[Unit]) combat.PhaseSequence[BattlePhase] {
	present := make(map[BattlePhase]bool)
	for _, q := range attackers.Outcomes() {
		if q.Count > 0 {
			present[q.Item.Phase()] = true
		}
	}
	for _, q := range defenders.Outcomes() {
		if q.Count > 0 {
			present[q.Item.Phase()] = true
		}
	}

	var start []BattlePhase
	if present[Bombardment] {
		start = append(start, Bombardment)
	}
	if present[PhaseAntiAir] {
		start = append(start, PhaseAntiAir)
	}

	var cycle []BattlePhase
	if present[SurpriseStrike] {
		cycle = append(cycle, SurpriseStrike)
	}
	cycle = append(cycle, General)

	return combat.NewPhaseSequence(PreBattle, start, cycle)
}
