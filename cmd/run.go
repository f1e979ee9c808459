package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rkowalski/battlecalc/internal/combat"
	"github.com/rkowalski/battlecalc/internal/model"
	"github.com/rkowalski/battlecalc/internal/report"
	"github.com/rkowalski/battlecalc/internal/ruleset"
	"github.com/rkowalski/battlecalc/internal/storage"
	"github.com/rkowalski/battlecalc/internal/summary"
)

// maxRounds bounds a battle that neither completes nor stalemates within a
// sane number of rounds, guarding against an unforeseen engine bug rather
// than any known rules case.
const maxRounds = 200

var (
	runScenario    string
	runAttacker    []string
	runDefender    []string
	runPruneThresh float64
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a battle and report its exact outcome distribution",
	Args:  cobra.NoArgs,
	RunE:  runRun,
}

func init() {
	runCmd.Flags().StringVar(&runScenario, "scenario", "", "saved scenario id to run")
	runCmd.Flags().StringSliceVar(&runAttacker, "attacker", nil, "attacker units as unit=count (repeatable)")
	runCmd.Flags().StringSliceVar(&runDefender, "defender", nil, "defender units as unit=count (repeatable)")
	runCmd.Flags().Float64Var(&runPruneThresh, "prune-threshold", combat.DefaultPruneThreshold, "probability at or below which a branch is discarded")
}

func runRun(cmd *cobra.Command, args []string) error {
	attackers, defenders, err := loadForces()
	if err != nil {
		return err
	}

	manager := ruleset.NewRoundManager(attackers, defenders)
	manager.SetPruneThreshold(model.NewProbability(runPruneThresh))

	summarizer := summary.NewSummarizer[ruleset.BattlePhase, ruleset.Unit](manager.LastRound())
	report.PrintRoster(os.Stdout, "Attacker", attackers)
	report.PrintRoster(os.Stdout, "Defender", defenders)

	for !manager.IsComplete() && manager.RoundIndex() < maxRounds {
		round := manager.AdvanceRound()
		summarizer.AddRound(manager.RoundIndex(), round)
		report.PrintRound(os.Stdout, summary.NewRoundSummary[ruleset.BattlePhase, ruleset.Unit](manager.RoundIndex(), round))
	}

	report.PrintSummary(os.Stdout, summarizer.Summarize())
	return nil
}

func loadForces() (attackers, defenders combat.Force[ruleset.Unit], err error) {
	if runScenario != "" {
		db, err := storage.Open(dbPath)
		if err != nil {
			return nil, nil, fmt.Errorf("open storage: %w", err)
		}
		defer db.Close()
		return db.Forces(runScenario)
	}

	if len(runAttacker) == 0 || len(runDefender) == 0 {
		return nil, nil, fmt.Errorf("either --scenario or both --attacker and --defender must be given")
	}

	attackers, err = parseForce(runAttacker)
	if err != nil {
		return nil, nil, fmt.Errorf("attacker: %w", err)
	}
	defenders, err = parseForce(runDefender)
	if err != nil {
		return nil, nil, fmt.Errorf("defender: %w", err)
	}
	return attackers, defenders, nil
}

func parseForce(specs []string) (combat.Force[ruleset.Unit], error) {
	builder := model.NewQuantDistBuilder[ruleset.Unit]()
	for _, spec := range specs {
		code, countStr, ok := strings.Cut(spec, "=")
		if !ok {
			return nil, fmt.Errorf("invalid unit spec %q, expected unit=count", spec)
		}
		unit, ok := ruleset.ParseUnitCode(strings.TrimSpace(code))
		if !ok {
			return nil, fmt.Errorf("unknown unit %q", code)
		}
		count, err := strconv.ParseUint(strings.TrimSpace(countStr), 10, 32)
		if err != nil {
			return nil, fmt.Errorf("invalid count in %q: %w", spec, err)
		}
		builder.Add(unit, uint32(count))
	}
	return builder.Build(), nil
}
