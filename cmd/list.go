package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rkowalski/battlecalc/internal/storage"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all saved scenarios",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func runList(cmd *cobra.Command, args []string) error {
	db, err := storage.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer db.Close()

	scenarios, err := db.List()
	if err != nil {
		return fmt.Errorf("list scenarios: %w", err)
	}
	if len(scenarios) == 0 {
		fmt.Fprintln(os.Stdout, "No scenarios saved.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-26s  %s\n", "ID", "NAME")
	fmt.Fprintf(os.Stdout, "%-26s  %s\n", "──────────────────────────", "────")
	for _, s := range scenarios {
		fmt.Fprintf(os.Stdout, "%-26s  %s\n", s.ID, s.Name)
	}
	return nil
}
