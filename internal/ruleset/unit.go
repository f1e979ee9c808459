// Package ruleset implements the Axis & Allies 1942 Second Edition combat
// rules as a concrete instantiation of the generic internal/combat engine:
// 14 unit types, 4 hit kinds, and a 5-phase battle sequence, wired together
// with the situational modifiers (boosts, anti-sub promotion, surprise
// strike, anti-air, bombardment) the rulebook calls for.
package ruleset

import (
	"fmt"

	"github.com/rkowalski/battlecalc/internal/combat"
)

// Unit is one of the 14 combatant kinds recognized by this ruleset.
type Unit int

const (
	Infantry Unit = iota
	Artillery
	Tank
	AntiAir
	BombardingCruiser
	BombardingBattleship
	Fighter
	Bomber
	Submarine
	Destroyer
	Cruiser
	Carrier
	Battleship
	BattleshipDamaged
)

// AllUnitKinds returns every unit kind, in enumeration order.
func AllUnitKinds() []Unit {
	return []Unit{
		Infantry, Artillery, Tank, AntiAir, BombardingCruiser, BombardingBattleship,
		Fighter, Bomber, Submarine, Destroyer, Cruiser, Carrier, Battleship, BattleshipDamaged,
	}
}

// Code returns a stable lowercase identifier for this unit, used as a
// storage and CLI key (unlike String, which is a display label).
func (u Unit) Code() string {
	switch u {
	case Infantry:
		return "infantry"
	case Artillery:
		return "artillery"
	case Tank:
		return "tank"
	case AntiAir:
		return "antiair"
	case BombardingCruiser:
		return "bombarding_cruiser"
	case BombardingBattleship:
		return "bombarding_battleship"
	case Fighter:
		return "fighter"
	case Bomber:
		return "bomber"
	case Submarine:
		return "submarine"
	case Destroyer:
		return "destroyer"
	case Cruiser:
		return "cruiser"
	case Carrier:
		return "carrier"
	case Battleship:
		return "battleship"
	case BattleshipDamaged:
		return "battleship_damaged"
	default:
		return fmt.Sprintf("unit_%d", int(u))
	}
}

// ParseUnitCode looks up a unit by its Code, reporting whether it matched.
func ParseUnitCode(code string) (Unit, bool) {
	for _, u := range AllUnitKinds() {
		if u.Code() == code {
			return u, true
		}
	}
	return 0, false
}

// String renders the unit's display name.
func (u Unit) String() string {
	switch u {
	case Infantry:
		return "Infantry"
	case Artillery:
		return "Artillery"
	case Tank:
		return "Tank"
	case AntiAir:
		return "Anti-Air"
	case BombardingCruiser:
		return "Bombarding Cruiser"
	case BombardingBattleship:
		return "Bombarding Battleship"
	case Fighter:
		return "Fighter"
	case Bomber:
		return "Bomber"
	case Submarine:
		return "Submarine"
	case Destroyer:
		return "Destroyer"
	case Cruiser:
		return "Cruiser"
	case Carrier:
		return "Carrier"
	case Battleship:
		return "Battleship"
	case BattleshipDamaged:
		return "Battleship (Damaged)"
	default:
		return fmt.Sprintf("Unit(%d)", int(u))
	}
}

// SortKey gives Unit a deterministic total order for QuantDist hashing.
func (u Unit) SortKey() string {
	return fmt.Sprintf("u%02d", int(u))
}

// IPC returns the unit's purchase cost in industrial production certificates.
func (u Unit) IPC() uint32 {
	switch u {
	case Infantry:
		return 3
	case Artillery:
		return 4
	case Tank:
		return 6
	case AntiAir:
		return 5
	case BombardingCruiser, BombardingBattleship:
		return 0
	case Fighter:
		return 10
	case Bomber:
		return 12
	case Submarine:
		return 6
	case Destroyer:
		return 8
	case Cruiser:
		return 12
	case Carrier:
		return 14
	case Battleship, BattleshipDamaged:
		return 20
	default:
		return 0
	}
}

// Attack returns the unit's base attack strength (out of six).
func (u Unit) Attack() uint8 {
	switch u {
	case Infantry:
		return 1
	case Artillery:
		return 2
	case Tank:
		return 3
	case AntiAir:
		return 0
	case BombardingCruiser:
		return 3
	case BombardingBattleship:
		return 4
	case Fighter:
		return 3
	case Bomber:
		return 4
	case Submarine:
		return 2
	case Destroyer:
		return 2
	case Cruiser:
		return 3
	case Carrier:
		return 1
	case Battleship, BattleshipDamaged:
		return 4
	default:
		return 0
	}
}

// Defense returns the unit's base defense strength (out of six).
func (u Unit) Defense() uint8 {
	switch u {
	case Infantry:
		return 2
	case Artillery:
		return 2
	case Tank:
		return 3
	case AntiAir:
		return 1
	case BombardingCruiser, BombardingBattleship:
		return 0
	case Fighter:
		return 4
	case Bomber:
		return 1
	case Submarine:
		return 1
	case Destroyer:
		return 2
	case Cruiser:
		return 3
	case Carrier:
		return 2
	case Battleship, BattleshipDamaged:
		return 4
	default:
		return 0
	}
}

// Strength returns Attack or Defense, depending on side.
func (u Unit) Strength(side combat.Side) uint8 {
	if side == combat.Attacker {
		return u.Attack()
	}
	return u.Defense()
}

// IsAir reports whether this unit flies.
func (u Unit) IsAir() bool {
	return u == Fighter || u == Bomber
}

// IsSubmarine reports whether this unit is a submarine.
func (u Unit) IsSubmarine() bool {
	return u == Submarine
}

// IsTargetable reports whether this unit can ever be hit. Bombarding units
// are off-board fire support and never themselves exposed to return fire.
func (u Unit) IsTargetable() bool {
	return u != BombardingCruiser && u != BombardingBattleship
}

// IsAntiSub reports whether this unit strips submarines of surprise strike
// and invisibility when present on the hostile side.
func (u Unit) IsAntiSub() bool {
	return u == Destroyer
}

// IsUnsurprisable is an alias for IsAntiSub: a destroyer cannot itself be
// caught by a surprise strike either.
func (u Unit) IsUnsurprisable() bool {
	return u == Destroyer
}

// IsBooster reports whether this unit raises a friendly infantry's attack
// strength when rolling together.
func (u Unit) IsBooster() bool {
	return u == Artillery
}

// BoostedStrength returns the strength this unit rolls at when accompanied
// by a booster, and whether it can be boosted at all.
func (u Unit) BoostedStrength() (uint8, bool) {
	if u == Infantry {
		return 2, true
	}
	return 0, false
}

// DamagedTo returns the unit this one becomes in place of being destroyed,
// and whether it has such a replacement. Only the battleship can soak a hit
// this way, and only once.
func (u Unit) DamagedTo() (Unit, bool) {
	if u == Battleship {
		return BattleshipDamaged, true
	}
	return 0, false
}

// Phase returns the battle phase in which this unit rolls.
func (u Unit) Phase() BattlePhase {
	switch u {
	case BombardingBattleship, BombardingCruiser:
		return Bombardment
	case AntiAir:
		return PhaseAntiAir
	case Submarine:
		return SurpriseStrike
	default:
		return General
	}
}

// Hit returns the hit kind this unit deals when it scores a hit.
func (u Unit) Hit() Hit {
	switch u {
	case AntiAir:
		return OnlyAirUnits
	case Submarine:
		return NotAirUnits
	case Destroyer, Cruiser, Carrier, Battleship, BattleshipDamaged:
		return AllUnits
	default:
		return NotSubmarines
	}
}
