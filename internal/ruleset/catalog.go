package ruleset

import "github.com/rkowalski/battlecalc/internal/combat"

// reservedTank is the attacker's default reserved unit: one tank is always
// kept back from a hit of a kind it could otherwise satisfy, as long as
// another candidate remains, so a lone surviving tank can retreat.
var reservedTank = Tank

// NewRoundManager wires a fresh CombatManager and phase sequence for the
// given starting forces with the 1942 Second Edition defaults: the
// attacker reserves one tank, the defender reserves nothing.
func NewRoundManager(attackers, defenders combat.Force[Unit]) *combat.RoundManager[BattlePhase, Unit, Hit] {
	sequence := CreateSequence(attackers, defenders)

	attackerSurvivors := SurvivorSelector{
		RemovalOrder: DefaultAttackerOrder(),
		Reserved:     &reservedTank,
	}
	defenderSurvivors := SurvivorSelector{
		RemovalOrder: DefaultDefenderOrder(),
		Reserved:     nil,
	}

	manager := combat.NewCombatManager[BattlePhase, Unit, Hit](
		RollSelector{},
		attackerSurvivors,
		defenderSurvivors,
	)

	return combat.NewRoundManager[BattlePhase, Unit, Hit](manager, sequence, attackers, defenders)
}
