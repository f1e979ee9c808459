package ruleset

import (
	"github.com/rkowalski/battlecalc/internal/combat"
	"github.com/rkowalski/battlecalc/internal/model"
)

// SurvivorSelector removes casualties from a force given a distribution of
// hit-kind bundles, in a fixed removal order, optionally reserving the last
// unit of one kind until every other candidate is exhausted.
type SurvivorSelector struct {
	RemovalOrder []Unit
	Reserved     *Unit
}

// DefaultAttackerOrder is the 1942 Second Edition attacker casualty order:
// cheapest, least useful units die first, with the battleship spent before
// anything else to preserve its two-hit absorption for later rounds only
// while it remains relevant, and anti-air chosen dead last since it cannot
// itself attack.
func DefaultAttackerOrder() []Unit {
	return []Unit{
		Battleship, Infantry, Artillery, Tank, Submarine, Destroyer,
		Fighter, Bomber, Cruiser, Carrier, BattleshipDamaged, AntiAir,
	}
}

// DefaultDefenderOrder is the 1942 Second Edition defender casualty order.
func DefaultDefenderOrder() []Unit {
	return []Unit{
		Battleship, Infantry, Artillery, AntiAir, Tank, Submarine, Destroyer,
		Bomber, Fighter, Cruiser, Carrier, BattleshipDamaged,
	}
}

// Select implements combat.SurvivorSelector: it filters the starting force
// down to targetable units, then for each hit-kind bundle in hitDists,
// removes casualties in HitOrder and folds the resulting survivor force
// into the result PD at that bundle's probability.
func (s SurvivorSelector) Select(startingForce combat.Force[Unit], hitDists *model.ProbDist[*model.QuantDist[Hit]]) *model.ProbDist[combat.Force[Unit]] {
	result := model.NewProbDistBuilder[combat.Force[Unit]]()
	targetable := withoutNonTargetable(startingForce)
	for _, hitDist := range hitDists.Outcomes() {
		survivors := s.selectSurvivors(targetable, hitDist.Item)
		result.Add(survivors, hitDist.P)
	}
	return result.Build()
}

func (s SurvivorSelector) selectSurvivors(candidates *model.QuantDist[Unit], hits *model.QuantDist[Hit]) *model.QuantDist[Unit] {
	survivors := model.NewQuantDistBuilderFrom(candidates)
	for _, hit := range HitOrder() {
		count := hits.Count(hit)
		count -= s.removeDead(survivors, hit, count, s.Reserved)
		if count > 0 && s.Reserved != nil {
			s.removeDead(survivors, hit, count, nil)
		}
	}
	return survivors.Build()
}

// removeDead removes up to count casualties of the given hit kind from
// candidates, walking the removal order. When reserved names a unit kind,
// at least one of that kind is kept back on this pass (a second pass with
// reserved == nil, made by the caller, is what finally takes it if
// nothing else is left to kill).
func (s SurvivorSelector) removeDead(candidates *model.QuantDistBuilder[Unit], hit Hit, count uint32, reserved *Unit) uint32 {
	var totalRemoved uint32
	for _, unit := range s.RemovalOrder {
		if !hit.Hits(unit) {
			continue
		}

		removeCount := count
		if reserved != nil && *reserved == unit {
			candidateCount := candidates.Count(unit)
			keepable := uint32(0)
			if candidateCount > 1 {
				keepable = candidateCount - 1
			}
			removeCount = min32(count, keepable)
		}

		removed := candidates.Remove(unit, removeCount)
		totalRemoved += removed
		count -= removed

		if replacement, ok := unit.DamagedTo(); ok {
			candidates.Add(replacement, removed)
		}

		if count == 0 {
			return totalRemoved
		}
	}
	return totalRemoved
}

func withoutNonTargetable(force *model.QuantDist[Unit]) *model.QuantDist[Unit] {
	b := model.NewQuantDistBuilderFrom(force)
	for _, unit := range AllUnitKinds() {
		if unit.IsTargetable() {
			continue
		}
		b.RemoveAll(unit)
	}
	return b.Build()
}

func min32(a, b uint32) uint32 {
	if a < b {
		return a
	}
	return b
}
