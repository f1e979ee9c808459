package summary

import (
	"math"
	"testing"

	"github.com/rkowalski/battlecalc/internal/model"
)

func almostEqual(t *testing.T, got, want, tol float64, what string) {
	t.Helper()
	if math.Abs(got-want) > tol {
		t.Errorf("%s = %v, want %v (tolerance %v)", what, got, want, tol)
	}
}

func TestStat_AddValueSingleOutcomeIsExactMean(t *testing.T) {
	var s Stat
	s.AddValue(10, model.One, model.One)
	almostEqual(t, s.Mean, 10, 1e-12, "mean")
	almostEqual(t, s.Variance, 0, 1e-12, "variance")
}

func TestStat_AddValueWeightsByRunningTotal(t *testing.T) {
	var s Stat
	half := model.ProbabilityFromRatio(1, 2)
	s.AddValue(0, half, half)
	s.AddValue(10, half, model.One)
	almostEqual(t, s.Mean, 5, 1e-12, "mean")
}

func TestStat_AddValueIgnoresZeroTotalP(t *testing.T) {
	var s Stat
	s.AddValue(100, model.Zero, model.Zero)
	if s.Mean != 0 {
		t.Errorf("mean = %v, want 0 (no probability mass folded in)", s.Mean)
	}
}

func TestStat_AddCombinesIndependentStats(t *testing.T) {
	a := Stat{Mean: 3, Variance: 1}
	b := Stat{Mean: 4, Variance: 2}
	sum := a.Add(b)
	if sum.Mean != 7 || sum.Variance != 3 {
		t.Errorf("Add() = %+v, want {Mean:7 Variance:3}", sum)
	}
}

func TestStat_SubKeepsVarianceAdditive(t *testing.T) {
	a := Stat{Mean: 10, Variance: 1}
	b := Stat{Mean: 4, Variance: 2}
	diff := a.Sub(b)
	if diff.Mean != 6 || diff.Variance != 3 {
		t.Errorf("Sub() = %+v, want {Mean:6 Variance:3} (variances add even on subtraction)", diff)
	}
}

func TestStat_StdDevIsSqrtOfVariance(t *testing.T) {
	s := Stat{Variance: 9}
	if s.StdDev() != 3 {
		t.Errorf("StdDev() = %v, want 3", s.StdDev())
	}
}
