package ruleset

import (
	"github.com/rkowalski/battlecalc/internal/combat"
	"github.com/rkowalski/battlecalc/internal/model"
)

// RollSelector computes the dice pool a side rolls in a given phase,
// applying every situational modifier the rulebook calls for: artillery
// boosts infantry, a friendly destroyer strips a submarine hit's immunity,
// a hostile destroyer cancels a submarine's surprise strike, and anti-air
// multiplies its roll count by the number of hostile air units present
// (capped at three).
type RollSelector struct{}

// rollContext is the situational state GetRolls needs, derived once per
// call from the raw CombatContext.
type rollContext struct {
	phase                BattlePhase
	defending            bool
	boostCount           uint32
	hostileAirCount      uint32
	friendlyAntiSub      bool
	hostileUnsurprisable bool
}

func newRollContext(ctx combat.CombatContext[BattlePhase, Unit]) rollContext {
	var boostCount, hostileAirCount uint32
	var friendlyAntiSub, hostileUnsurprisable bool

	for _, q := range ctx.Friendlies().Outcomes() {
		if q.Item.IsBooster() {
			boostCount += q.Count
		}
		if q.Item.IsAntiSub() && q.Count > 0 {
			friendlyAntiSub = true
		}
	}
	for _, q := range ctx.Hostiles().Outcomes() {
		if q.Item.IsAir() {
			hostileAirCount += q.Count
		}
		if q.Item.IsUnsurprisable() && q.Count > 0 {
			hostileUnsurprisable = true
		}
	}

	return rollContext{
		phase:                ctx.Phase,
		defending:            ctx.Defending,
		boostCount:           boostCount,
		hostileAirCount:      hostileAirCount,
		friendlyAntiSub:      friendlyAntiSub,
		hostileUnsurprisable: hostileUnsurprisable,
	}
}

// GetRolls implements combat.RollSelector.
func (RollSelector) GetRolls(ctx combat.CombatContext[BattlePhase, Unit]) *model.QuantDist[combat.Roll[Hit]] {
	force := ctx.Friendlies()
	rc := newRollContext(ctx)

	rolls := model.NewQuantDistBuilder[combat.Roll[Hit]]()
	for _, q := range force.Outcomes() {
		unit := q.Item
		count := q.Count

		unitPhase := unit.Phase()
		if unitPhase == SurpriseStrike && rc.hostileUnsurprisable {
			unitPhase = General
		}
		if rc.phase != unitPhase {
			continue
		}

		boostedStrength, boostable := unit.BoostedStrength()
		var boostedCount uint32
		if boostable {
			boostedCount = min(rc.boostCount, count)
		}
		baseCount := count - boostedCount

		baseStrength := unit.Strength(sideOf(rc.defending))

		hit := unit.Hit()
		if hit == NotSubmarines && rc.friendlyAntiSub {
			hit = AllUnits
		}

		multiplier := uint32(1)
		if unit.Phase() == PhaseAntiAir {
			multiplier = min(3, rc.hostileAirCount)
		}

		rolls.Add(combat.Roll[Hit]{Strength: baseStrength, HitKind: hit}, baseCount*multiplier)
		if boostable {
			rolls.Add(combat.Roll[Hit]{Strength: boostedStrength, HitKind: hit}, boostedCount*multiplier)
		}
	}
	return rolls.Build()
}

func sideOf(defending bool) combat.Side {
	if defending {
		return combat.Defender
	}
	return combat.Attacker
}
