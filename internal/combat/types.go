// Package combat is the ruleset-agnostic state-space expander at the heart
// of battlecalc: it turns one combat state at probability 1 into, round by
// round, an exact probability distribution over every reachable outcome. It
// knows nothing about Axis & Allies specifically — phases, units, and hit
// kinds are supplied by a ruleset package (see internal/ruleset) that
// implements the small interfaces declared here. New rulesets are new
// implementations of these interfaces, not new branches inside this package.
package combat

import "github.com/rkowalski/battlecalc/internal/model"

// Side identifies which party in a Combat a force belongs to.
type Side int

const (
	Attacker Side = iota
	Defender
)

func (s Side) String() string {
	if s == Attacker {
		return "Attacker"
	}
	return "Defender"
}

// Phase is a totally-ordered, ruleset-defined slot within a round during
// which a subset of units rolls.
type Phase interface {
	model.Enumerable
}

// Unit is a ruleset-defined kind of combatant. The core only needs its cost
// and per-side strength; everything else (phase, hit kind, targetability,
// boosts) is ruleset-specific and consumed only by that ruleset's
// RollSelector and SurvivorSelector implementations.
type Unit interface {
	model.Enumerable
	IPC() uint32
	Attack() uint8
	Defense() uint8
	Strength(side Side) uint8
}

// Hit is a ruleset-defined predicate identifying which units a successful
// roll of that kind can kill. The core treats it as an opaque, orderable tag;
// only the ruleset's SurvivorSelector interprets what it hits.
type Hit interface {
	model.Enumerable
}

// Force is an immutable, shared multiset of units belonging to one side.
// Many combats within the same round commonly share an identical Force;
// sharing the pointer keeps PD builders O(distinct forces), not O(combats).
type Force[TUnit Unit] = *model.QuantDist[TUnit]
