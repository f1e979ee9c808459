// Package cmd implements the CLI commands for battlecalc: listing and
// showing saved scenarios, and running an exact combat probability
// evaluation against a scenario or a hand-built force.
package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/rkowalski/battlecalc/internal/report"
)

// dbPath is the file path to the SQLite scenario catalog, set via --db.
var dbPath string

// silent suppresses the explanatory legend printed before each table.
var silent bool

// rootCmd is the top-level cobra command for the battlecalc CLI.
var rootCmd = &cobra.Command{
	Use:   "battlecalc",
	Short: "Exact Axis & Allies 1942 combat probability calculator",
	Long:  "Compute the exact win/draw probability distribution and expected losses of an Axis & Allies 1942 Second Edition battle.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		report.Verbose = !silent
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	defaultDB := filepath.Join(mustUserHome(), ".battlecalc", "scenarios.db")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", defaultDB, "path to SQLite scenario catalog")
	rootCmd.PersistentFlags().BoolVarP(&silent, "silent", "s", false, "hide explanatory legends before each table")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(runCmd)
}

func mustUserHome() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}
