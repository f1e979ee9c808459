// Package report formats battle roster, round, and summary statistics as
// terminal tables using tablewriter.
package report

import (
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/rkowalski/battlecalc/internal/combat"
	"github.com/rkowalski/battlecalc/internal/ruleset"
	"github.com/rkowalski/battlecalc/internal/summary"
)

// Verbose controls whether a one-line legend is printed before each table.
var Verbose = true

func printSection(w io.Writer, title, desc string) {
	fmt.Fprintf(w, "\n--- %s ---\n", title)
	if Verbose && desc != "" {
		fmt.Fprintf(w, "%s\n", desc)
	}
}

func newTable(w io.Writer) *tablewriter.Table {
	return tablewriter.NewTable(w, tablewriter.WithConfig(tablewriter.Config{
		Row:    tw.CellConfig{Alignment: tw.CellAlignment{Global: tw.AlignRight}},
		Header: tw.CellConfig{Alignment: tw.CellAlignment{Global: tw.AlignCenter}},
	}))
}

// PrintRoster prints one side's starting force: unit, count, and total IPC.
func PrintRoster(w io.Writer, label string, force combat.Force[ruleset.Unit]) {
	printSection(w, label, "")
	table := newTable(w)
	table.Header("UNIT", "COUNT", "IPC EACH", "IPC TOTAL")

	units := append([]combatQuant(nil), toCombatQuants(force)...)
	sort.Slice(units, func(i, j int) bool { return units[i].unit.Code() < units[j].unit.Code() })

	var totalIPC uint32
	for _, q := range units {
		lineIPC := q.unit.IPC() * q.count
		totalIPC += lineIPC
		table.Append(
			q.unit.String(),
			strconv.FormatUint(uint64(q.count), 10),
			strconv.FormatUint(uint64(q.unit.IPC()), 10),
			strconv.FormatUint(uint64(lineIPC), 10),
		)
	}
	table.Render()
	fmt.Fprintf(w, "Total IPC: %d\n", totalIPC)
}

type combatQuant struct {
	unit  ruleset.Unit
	count uint32
}

func toCombatQuants(force combat.Force[ruleset.Unit]) []combatQuant {
	var out []combatQuant
	for _, q := range force.Outcomes() {
		out = append(out, combatQuant{unit: q.Item, count: q.Count})
	}
	return out
}

// PrintRound prints one round's attacker/defender statistics.
func PrintRound(w io.Writer, round summary.RoundSummary) {
	printSection(w, fmt.Sprintf("Round %d", round.Index),
		"IPC/UNITS/STRENGTH=probability-weighted mean (± std dev) remaining  WIN%=probability this side won a combat that completed on this round")
	table := newTable(w)
	table.Header("SIDE", "IPC", "UNITS", "STRENGTH", "WIN%")
	table.Append("Attacker", round.Attacker.IPC.String(), round.Attacker.UnitCount.String(), round.Attacker.Strength.String(), pctString(round.Attacker.WinP.Float64()))
	table.Append("Defender", round.Defender.IPC.String(), round.Defender.UnitCount.String(), round.Defender.Strength.String(), pctString(round.Defender.WinP.Float64()))
	table.Render()
	fmt.Fprintf(w, "Draw: %s   Pruned: %s\n", pctString(round.DrawP.Float64()), pctString(round.PrunedP.Float64()))
}

// PrintSummary prints the round-by-round trend and the final battle
// summary for a resolved battle.
func PrintSummary[TPhase combat.Phase, TUnit combat.Unit](w io.Writer, bs summary.BattleSummary[TPhase, TUnit]) {
	printSection(w, "Round-by-Round", "WIN%=probability this side has won a combat that completed exactly on this round")
	table := newTable(w)
	table.Header("ROUND", "ATK IPC", "ATK WIN%", "DEF IPC", "DEF WIN%", "DRAW%", "PRUNED%")
	table.Append("0 (start)",
		bs.Prebattle.Attacker.IPC.String(), pctString(bs.Prebattle.Attacker.WinP.Float64()),
		bs.Prebattle.Defender.IPC.String(), pctString(bs.Prebattle.Defender.WinP.Float64()),
		pctString(bs.Prebattle.DrawP.Float64()), pctString(bs.Prebattle.PrunedP.Float64()))
	for _, round := range bs.RoundSummaries {
		table.Append(strconv.Itoa(round.Index),
			round.Attacker.IPC.String(), pctString(round.Attacker.WinP.Float64()),
			round.Defender.IPC.String(), pctString(round.Defender.WinP.Float64()),
			pctString(round.DrawP.Float64()), pctString(round.PrunedP.Float64()))
	}
	table.Render()

	printSection(w, "Battle Outcome",
		"IPC_LOST/UNITS_LOST/STRENGTH_LOST=expected losses relative to the starting force  WIN%=overall probability of winning")
	outcome := newTable(w)
	outcome.Header("SIDE", "IPC LOST", "UNITS LOST", "STRENGTH LOST", "WIN%")
	outcome.Append("Attacker", bs.Attacker.IPCLost.String(), bs.Attacker.UnitCountLost.String(), bs.Attacker.StrengthLost.String(), colorPct(bs.Attacker.WinP.Float64()))
	outcome.Append("Defender", bs.Defender.IPCLost.String(), bs.Defender.UnitCountLost.String(), bs.Defender.StrengthLost.String(), colorPct(bs.Defender.WinP.Float64()))
	outcome.Render()
	fmt.Fprintf(w, "Draw: %s   Total resolved: %s   Pruned away: %s\n",
		pctString(bs.DrawP.Float64()), pctString(bs.TotalP.Float64()), pctString(bs.PrunedP.Float64()))
}

func pctString(p float64) string {
	return fmt.Sprintf("%.2f%%", p*100)
}

func colorPct(p float64) string {
	switch {
	case p >= 0.6:
		return color.GreenString(pctString(p))
	case p <= 0.4:
		return color.RedString(pctString(p))
	default:
		return color.YellowString(pctString(p))
	}
}
