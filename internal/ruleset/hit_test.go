package ruleset

import "testing"

func TestHit_HitsRespectsTargetability(t *testing.T) {
	if AllUnits.Hits(BombardingBattleship) {
		t.Error("expected non-targetable units to never be hit, even by AllUnits")
	}
}

func TestHit_NotSubmarinesExcludesSubmarine(t *testing.T) {
	if NotSubmarines.Hits(Submarine) {
		t.Error("expected NotSubmarines to not hit Submarine")
	}
	if !NotSubmarines.Hits(Infantry) {
		t.Error("expected NotSubmarines to hit Infantry")
	}
}

func TestHit_OnlyAirUnitsExcludesGround(t *testing.T) {
	if !OnlyAirUnits.Hits(Fighter) {
		t.Error("expected OnlyAirUnits to hit Fighter")
	}
	if OnlyAirUnits.Hits(Infantry) {
		t.Error("expected OnlyAirUnits to not hit Infantry")
	}
}

func TestHit_NotAirUnitsExcludesAir(t *testing.T) {
	if NotAirUnits.Hits(Bomber) {
		t.Error("expected NotAirUnits to not hit Bomber")
	}
	if !NotAirUnits.Hits(Submarine) {
		t.Error("expected NotAirUnits to hit Submarine")
	}
}

func TestHitOrder_MostToLeastSpecific(t *testing.T) {
	order := HitOrder()
	if order[0] != OnlyAirUnits || order[len(order)-1] != AllUnits {
		t.Errorf("HitOrder() = %v, want to start with OnlyAirUnits and end with AllUnits", order)
	}
}
