package combat

import (
	"fmt"

	"github.com/rkowalski/battlecalc/internal/model"
)

// Roll is a (strength, hit kind) pair: a die of the given strength hits with
// probability strength/6, and a successful hit is of the given kind.
type Roll[THit Hit] struct {
	Strength uint8
	HitKind  THit
}

// SortKey gives Roll a deterministic total order for QuantDist hashing.
func (r Roll[THit]) SortKey() string {
	return fmt.Sprintf("%02d:%s", r.Strength, r.HitKind.SortKey())
}

// CombatContext is the read-only view a RollSelector receives: the current
// phase and both forces, tagged with which side is rolling.
type CombatContext[TPhase Phase, TUnit Unit] struct {
	Phase     TPhase
	Attackers Force[TUnit]
	Defenders Force[TUnit]
	Defending bool
}

// Friendlies returns the force of the side that is about to roll.
func (c CombatContext[TPhase, TUnit]) Friendlies() Force[TUnit] {
	if c.Defending {
		return c.Defenders
	}
	return c.Attackers
}

// Hostiles returns the force of the side opposing the one about to roll.
func (c CombatContext[TPhase, TUnit]) Hostiles() Force[TUnit] {
	if c.Defending {
		return c.Attackers
	}
	return c.Defenders
}

// RollSelector is a pure function from a combat context to the pool of dice
// the friendly side rolls this phase. Ruleset-specific: it encodes every
// situational modifier (boosts, anti-sub promotion, surprise-strike
// cancellation, anti-air multipliers) for its domain.
type RollSelector[TPhase Phase, TUnit Unit, THit Hit] interface {
	GetRolls(ctx CombatContext[TPhase, TUnit]) *model.QuantDist[Roll[THit]]
}
