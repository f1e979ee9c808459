package storage

import (
	"path/filepath"
	"testing"

	"github.com/rkowalski/battlecalc/internal/ruleset"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenarios.db")
	db, err := Open(path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestOpen_SeedsBuiltinScenarios(t *testing.T) {
	db := openTestDB(t)
	infos, err := db.List()
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(infos) == 0 {
		t.Fatal("List() returned no scenarios, want the built-in seed set")
	}
}

func TestOpen_IsIdempotentOnExistingDatabase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenarios.db")
	db1, err := Open(path)
	if err != nil {
		t.Fatalf("first Open() error = %v", err)
	}
	want, err := db1.List()
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	db1.Close()

	db2, err := Open(path)
	if err != nil {
		t.Fatalf("second Open() error = %v", err)
	}
	defer db2.Close()
	got, err := db2.List()
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(got) != len(want) {
		t.Errorf("reopening the database seeded %d scenarios on top of %d, want no re-seeding", len(got), len(want))
	}
}

func TestGet_ReturnsScenarioByID(t *testing.T) {
	db := openTestDB(t)
	info, err := db.Get("bombardment")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if info.ID != "bombardment" || info.Name == "" {
		t.Errorf("Get(%q) = %+v, want populated name for the built-in scenario", "bombardment", info)
	}
}

func TestGet_UnknownIDErrors(t *testing.T) {
	db := openTestDB(t)
	if _, err := db.Get("does-not-exist"); err == nil {
		t.Error("expected an error for an unknown scenario id")
	}
}

func TestForces_RoundTripsSeededUnits(t *testing.T) {
	db := openTestDB(t)
	attackers, defenders, err := db.Forces("bombardment")
	if err != nil {
		t.Fatalf("Forces() error = %v", err)
	}
	if attackers.Count(ruleset.BombardingBattleship) != 1 {
		t.Errorf("attacker BombardingBattleship count = %d, want 1", attackers.Count(ruleset.BombardingBattleship))
	}
	if defenders.Count(ruleset.Infantry) != 1 {
		t.Errorf("defender Infantry count = %d, want 1", defenders.Count(ruleset.Infantry))
	}
}

func TestForces_UnknownScenarioErrors(t *testing.T) {
	db := openTestDB(t)
	if _, _, err := db.Forces("does-not-exist"); err == nil {
		t.Error("expected an error for an unknown scenario id")
	}
}
