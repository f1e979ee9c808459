// Package storage provides a SQLite-backed read-only catalog of named
// battle scenarios: the starting forces a user wants to evaluate, saved
// once and replayed by id rather than re-typed on every invocation. It
// holds inputs only — computed battle results are never persisted here.
package storage

import (
	"database/sql"
	_ "embed"
	"fmt"
	"sort"

	_ "modernc.org/sqlite"

	"github.com/rkowalski/battlecalc/internal/combat"
	"github.com/rkowalski/battlecalc/internal/model"
	"github.com/rkowalski/battlecalc/internal/ruleset"
)

//go:embed schema.sql
var schemaSQL string

// DB wraps a sql.DB for the scenario catalog.
type DB struct {
	conn *sql.DB
}

// ScenarioInfo is the id/name/description summary returned by List.
type ScenarioInfo struct {
	ID          string
	Name        string
	Description string
}

// Open opens (or creates) the SQLite database at path, applies the schema,
// and seeds the built-in scenario set on an empty database.
func Open(path string) (*DB, error) {
	dsn := fmt.Sprintf("file:%s?_foreign_keys=on&_journal_mode=WAL", path)
	conn, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if _, err := conn.Exec(schemaSQL); err != nil {
		conn.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	db := &DB{conn: conn}
	if err := db.seedBuiltins(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("seed builtins: %w", err)
	}
	return db, nil
}

// Close closes the underlying connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

// List returns every scenario in the catalog, ordered by id.
func (db *DB) List() ([]ScenarioInfo, error) {
	rows, err := db.conn.Query(`SELECT id, name, description FROM scenarios ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list scenarios: %w", err)
	}
	defer rows.Close()

	var infos []ScenarioInfo
	for rows.Next() {
		var info ScenarioInfo
		if err := rows.Scan(&info.ID, &info.Name, &info.Description); err != nil {
			return nil, fmt.Errorf("scan scenario: %w", err)
		}
		infos = append(infos, info)
	}
	return infos, rows.Err()
}

// Get returns the name and description of one scenario.
func (db *DB) Get(id string) (ScenarioInfo, error) {
	var info ScenarioInfo
	info.ID = id
	row := db.conn.QueryRow(`SELECT name, description FROM scenarios WHERE id = ?`, id)
	if err := row.Scan(&info.Name, &info.Description); err != nil {
		return ScenarioInfo{}, fmt.Errorf("get scenario %q: %w", id, err)
	}
	return info, nil
}

// Forces returns the starting attacker and defender forces for a scenario.
func (db *DB) Forces(id string) (attackers, defenders combat.Force[ruleset.Unit], err error) {
	rows, err := db.conn.Query(`SELECT side, unit, count FROM scenario_units WHERE scenario_id = ?`, id)
	if err != nil {
		return nil, nil, fmt.Errorf("load scenario %q units: %w", id, err)
	}
	defer rows.Close()

	attackerBuilder := model.NewQuantDistBuilder[ruleset.Unit]()
	defenderBuilder := model.NewQuantDistBuilder[ruleset.Unit]()
	found := false
	for rows.Next() {
		found = true
		var side, unitCode string
		var count uint32
		if err := rows.Scan(&side, &unitCode, &count); err != nil {
			return nil, nil, fmt.Errorf("scan scenario unit: %w", err)
		}
		unit, ok := ruleset.ParseUnitCode(unitCode)
		if !ok {
			return nil, nil, fmt.Errorf("scenario %q: unknown unit code %q", id, unitCode)
		}
		switch side {
		case "attacker":
			attackerBuilder.Add(unit, count)
		case "defender":
			defenderBuilder.Add(unit, count)
		default:
			return nil, nil, fmt.Errorf("scenario %q: unknown side %q", id, side)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, nil, err
	}
	if !found {
		return nil, nil, fmt.Errorf("scenario %q: no units on record", id)
	}
	return attackerBuilder.Build(), defenderBuilder.Build(), nil
}

// scenarioSeed is one built-in scenario's definition.
type scenarioSeed struct {
	id          string
	name        string
	description string
	attackers   map[ruleset.Unit]uint32
	defenders   map[ruleset.Unit]uint32
}

func builtinScenarios() []scenarioSeed {
	return []scenarioSeed{
		{
			id:          "bombardment",
			name:        "Coastal bombardment",
			description: "A bombarding battleship softens up a lone infantry before a landing.",
			attackers:   map[ruleset.Unit]uint32{ruleset.BombardingBattleship: 1},
			defenders:   map[ruleset.Unit]uint32{ruleset.Infantry: 1},
		},
		{
			id:          "surprise-strike",
			name:        "Submarine surprise strike",
			description: "A lone submarine ambushes a cruiser with no destroyer escort.",
			attackers:   map[ruleset.Unit]uint32{ruleset.Submarine: 1},
			defenders:   map[ruleset.Unit]uint32{ruleset.Cruiser: 1},
		},
		{
			id:          "surprise-strike-canceled",
			name:        "Surprise strike canceled by destroyer",
			description: "A submarine attacks into a defending destroyer, stripping its surprise strike.",
			attackers:   map[ruleset.Unit]uint32{ruleset.Submarine: 1},
			defenders:   map[ruleset.Unit]uint32{ruleset.Destroyer: 1},
		},
		{
			id:          "sub-plane-stalemate",
			name:        "Submarine vs. fighter stalemate",
			description: "Neither side can hit the other: a submerged submarine against a fighter with no destroyer present.",
			attackers:   map[ruleset.Unit]uint32{ruleset.Submarine: 1},
			defenders:   map[ruleset.Unit]uint32{ruleset.Fighter: 1},
		},
		{
			id:          "antiair-multi-target",
			name:        "Anti-air against a mixed air raid",
			description: "One anti-air gun multiplies its roll against two fighters and a bomber, capped at three dice.",
			attackers:   map[ruleset.Unit]uint32{ruleset.Fighter: 2, ruleset.Bomber: 1},
			defenders:   map[ruleset.Unit]uint32{ruleset.AntiAir: 1},
		},
		{
			id:          "battleship-two-hit",
			name:        "Battleship absorbing two hits",
			description: "A bomber attacks a battleship, which must be hit twice to sink thanks to its damaged state.",
			attackers:   map[ruleset.Unit]uint32{ruleset.Bomber: 1},
			defenders:   map[ruleset.Unit]uint32{ruleset.Battleship: 1},
		},
		{
			id:          "reserved-tank",
			name:        "Attacker's reserved tank",
			description: "A bomber and a tank attack into a fighter and a tank, exercising the attacker's default reserved-tank retreat rule.",
			attackers:   map[ruleset.Unit]uint32{ruleset.Tank: 1, ruleset.Bomber: 1},
			defenders:   map[ruleset.Unit]uint32{ruleset.Tank: 1, ruleset.Fighter: 1},
		},
		{
			id:          "combined-arms-landing",
			name:        "Combined-arms amphibious landing",
			description: "A larger illustrative battle: bombardment support, air cover, and a mixed landing force against an entrenched garrison.",
			attackers: map[ruleset.Unit]uint32{
				ruleset.BombardingBattleship: 1,
				ruleset.Infantry:             4,
				ruleset.Artillery:            2,
				ruleset.Tank:                 2,
				ruleset.Fighter:              2,
			},
			defenders: map[ruleset.Unit]uint32{
				ruleset.Infantry: 3,
				ruleset.Artillery: 1,
				ruleset.AntiAir:  1,
			},
		},
	}
}

func (db *DB) seedBuiltins() error {
	var count int
	if err := db.conn.QueryRow(`SELECT COUNT(*) FROM scenarios`).Scan(&count); err != nil {
		return fmt.Errorf("count scenarios: %w", err)
	}
	if count > 0 {
		return nil
	}

	tx, err := db.conn.Begin()
	if err != nil {
		return fmt.Errorf("begin seed transaction: %w", err)
	}
	defer tx.Rollback()

	for _, seed := range builtinScenarios() {
		if _, err := tx.Exec(
			`INSERT INTO scenarios (id, name, description) VALUES (?, ?, ?)`,
			seed.id, seed.name, seed.description,
		); err != nil {
			return fmt.Errorf("insert scenario %q: %w", seed.id, err)
		}
		if err := insertUnits(tx, seed.id, "attacker", seed.attackers); err != nil {
			return err
		}
		if err := insertUnits(tx, seed.id, "defender", seed.defenders); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func insertUnits(tx *sql.Tx, scenarioID, side string, units map[ruleset.Unit]uint32) error {
	codes := make([]ruleset.Unit, 0, len(units))
	for u := range units {
		codes = append(codes, u)
	}
	sort.Slice(codes, func(i, j int) bool { return codes[i].Code() < codes[j].Code() })

	for _, unit := range codes {
		count := units[unit]
		if _, err := tx.Exec(
			`INSERT INTO scenario_units (scenario_id, side, unit, count) VALUES (?, ?, ?, ?)`,
			scenarioID, side, unit.Code(), count,
		); err != nil {
			return fmt.Errorf("insert unit %s for scenario %q: %w", unit.Code(), scenarioID, err)
		}
	}
	return nil
}
