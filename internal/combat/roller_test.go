package combat

import (
	"fmt"
	"math"
	"testing"

	"github.com/rkowalski/battlecalc/internal/model"
)

type testHit int

func (h testHit) SortKey() string { return fmt.Sprintf("h%d", int(h)) }

const (
	hitA testHit = iota
	hitB
)

func TestRollHits_SingleKindMatchesBinomial(t *testing.T) {
	strike := model.NewQuantDist(model.Quant[Roll[testHit]]{Item: Roll[testHit]{Strength: 2, HitKind: hitA}, Count: 3})
	dist := rollHits(strike)

	if math.Abs(dist.TotalProbability().Float64()-1) > 1e-9 {
		t.Fatalf("total probability = %v, want 1", dist.TotalProbability().Float64())
	}

	want := binomialHitDist(2.0/6.0, 3)
	for _, o := range dist.Outcomes() {
		got := o.P.Float64()
		wantP := 0.0
		for _, w := range want.Outcomes() {
			if uint32(w.Item) == o.Item.Count(hitA) {
				wantP = w.P.Float64()
			}
		}
		if math.Abs(got-wantP) > 1e-9 {
			t.Errorf("P(%d hits) = %v, want %v", o.Item.Count(hitA), got, wantP)
		}
	}
}

func TestRollHits_IndependentKindsProduct(t *testing.T) {
	strike := model.NewQuantDist(
		model.Quant[Roll[testHit]]{Item: Roll[testHit]{Strength: 1, HitKind: hitA}, Count: 1},
		model.Quant[Roll[testHit]]{Item: Roll[testHit]{Strength: 1, HitKind: hitB}, Count: 1},
	)
	dist := rollHits(strike)

	// Each die hits at 1/6, so all-miss should have probability (5/6)^2.
	var allMissP float64
	for _, o := range dist.Outcomes() {
		if o.Item.Count(hitA) == 0 && o.Item.Count(hitB) == 0 {
			allMissP = o.P.Float64()
		}
	}
	want := (5.0 / 6.0) * (5.0 / 6.0)
	if math.Abs(allMissP-want) > 1e-9 {
		t.Errorf("P(all miss) = %v, want %v", allMissP, want)
	}
}

func TestRollHits_SameStrengthSameKindFolds(t *testing.T) {
	strike := model.NewQuantDist(
		model.Quant[Roll[testHit]]{Item: Roll[testHit]{Strength: 3, HitKind: hitA}, Count: 2},
		model.Quant[Roll[testHit]]{Item: Roll[testHit]{Strength: 3, HitKind: hitA}, Count: 1},
	)
	dist := rollHits(strike)
	// Two entries of the same (strength, kind) fold into one 3-die pool by
	// QuantDist construction, so this should match a single 3-die binomial.
	want := binomialHitDist(0.5, 3)
	if dist.Len() != want.Len() {
		t.Fatalf("Len() = %d, want %d", dist.Len(), want.Len())
	}
}

func TestRoller_CachesByStrikeKey(t *testing.T) {
	r := NewRoller[testHit]()
	strike := model.NewQuantDist(model.Quant[Roll[testHit]]{Item: Roll[testHit]{Strength: 4, HitKind: hitA}, Count: 2})
	first := r.RollHits(strike)
	second := r.RollHits(strike)
	if first != second {
		t.Error("expected cached RollHits result to be the same pointer on repeat calls")
	}
}
