package ruleset

import "fmt"

// Hit identifies which units a successful roll of this kind can kill.
// HitOrder lists the kinds from most to least specific: it applies air-only
// and air-evading hits first, so a unit that can satisfy a narrow hit kind
// is removed before it could instead satisfy a broader one.
type Hit int

const (
	AllUnits Hit = iota
	NotSubmarines
	NotAirUnits
	OnlyAirUnits
)

// HitOrder returns hit kinds from most to least specific, the order in
// which a SurvivorSelector should resolve casualties.
func HitOrder() []Hit {
	return []Hit{OnlyAirUnits, NotAirUnits, NotSubmarines, AllUnits}
}

// String renders the hit kind's display name.
func (h Hit) String() string {
	switch h {
	case AllUnits:
		return "All Units"
	case NotSubmarines:
		return "Not Submarines"
	case NotAirUnits:
		return "Not Air Units"
	case OnlyAirUnits:
		return "Only Air Units"
	default:
		return fmt.Sprintf("Hit(%d)", int(h))
	}
}

// SortKey gives Hit a deterministic total order for QuantDist hashing.
func (h Hit) SortKey() string {
	return fmt.Sprintf("h%02d", int(h))
}

// Hits reports whether a roll of this kind can kill unit: the unit must be
// targetable at all, and must match the kind's specific exclusion.
func (h Hit) Hits(unit Unit) bool {
	if !unit.IsTargetable() {
		return false
	}
	switch h {
	case AllUnits:
		return true
	case NotSubmarines:
		return !unit.IsSubmarine()
	case NotAirUnits:
		return !unit.IsAir()
	case OnlyAirUnits:
		return unit.IsAir()
	default:
		return false
	}
}
