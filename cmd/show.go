package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rkowalski/battlecalc/internal/report"
	"github.com/rkowalski/battlecalc/internal/storage"
)

var showCmd = &cobra.Command{
	Use:   "show <scenario-id>",
	Short: "Show a saved scenario's starting forces",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func runShow(cmd *cobra.Command, args []string) error {
	id := args[0]

	db, err := storage.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer db.Close()

	info, err := db.Get(id)
	if err != nil {
		return fmt.Errorf("get scenario %q: %w", id, err)
	}
	attackers, defenders, err := db.Forces(id)
	if err != nil {
		return fmt.Errorf("get forces for %q: %w", id, err)
	}

	fmt.Fprintf(os.Stdout, "%s: %s\n", info.ID, info.Name)
	if info.Description != "" {
		fmt.Fprintln(os.Stdout, info.Description)
	}
	report.PrintRoster(os.Stdout, "Attacker", attackers)
	report.PrintRoster(os.Stdout, "Defender", defenders)
	return nil
}
