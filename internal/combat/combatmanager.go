package combat

import "github.com/rkowalski/battlecalc/internal/model"

// CombatManager resolves one Combat for one round: it asks the roll
// selector for each side's dice pool, converts dice into hit-kind bundles
// via the shared Roller, and applies each side's survivor selector to the
// other side's hits.
type CombatManager[TPhase Phase, TUnit Unit, THit Hit] struct {
	rollSelector             RollSelector[TPhase, TUnit, THit]
	attackerSurvivorSelector SurvivorSelector[TUnit, THit]
	defenderSurvivorSelector SurvivorSelector[TUnit, THit]
	roller                   *Roller[THit]
}

// NewCombatManager constructs a CombatManager from one roll selector shared
// by both sides and a survivor selector for each.
func NewCombatManager[TPhase Phase, TUnit Unit, THit Hit](
	rollSelector RollSelector[TPhase, TUnit, THit],
	attackerSurvivorSelector SurvivorSelector[TUnit, THit],
	defenderSurvivorSelector SurvivorSelector[TUnit, THit],
) *CombatManager[TPhase, TUnit, THit] {
	return &CombatManager[TPhase, TUnit, THit]{
		rollSelector:             rollSelector,
		attackerSurvivorSelector: attackerSurvivorSelector,
		defenderSurvivorSelector: defenderSurvivorSelector,
		roller:                   NewRoller[THit](),
	}
}

// Resolve rolls both sides' dice for combat and applies the resulting hits
// to produce a PD of surviving forces on each side, tagged with the phase
// the next round's Combat states should carry and the probability of
// reaching combat in the first place.
func (cm *CombatManager[TPhase, TUnit, THit]) Resolve(
	combat model.Prob[Combat[TPhase, TUnit]],
	nextPhase TPhase,
) CombatResult[TPhase, TUnit] {
	state := combat.Item

	attackContext := CombatContext[TPhase, TUnit]{
		Phase:     state.Phase,
		Attackers: state.Attackers,
		Defenders: state.Defenders,
		Defending: false,
	}
	defenseContext := CombatContext[TPhase, TUnit]{
		Phase:     state.Phase,
		Attackers: state.Attackers,
		Defenders: state.Defenders,
		Defending: true,
	}

	attackStrike := cm.rollSelector.GetRolls(attackContext)
	defenseStrike := cm.rollSelector.GetRolls(defenseContext)

	attackingHits := cm.roller.RollHits(attackStrike)
	defendingHits := cm.roller.RollHits(defenseStrike)

	survivingAttackers := cm.attackerSurvivorSelector.Select(state.Attackers, defendingHits)
	survivingDefenders := cm.defenderSurvivorSelector.Select(state.Defenders, attackingHits)

	return CombatResult[TPhase, TUnit]{
		NextPhase:          nextPhase,
		SurvivingAttackers: survivingAttackers,
		SurvivingDefenders: survivingDefenders,
		P:                  combat.P,
	}
}
