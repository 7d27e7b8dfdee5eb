package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/cellsim-xyz/go-cellsim/runstore"
)

func runs(args []string) error {
	fs := flag.NewFlagSet("runs", flag.ExitOnError)
	dbPath := fs.String("db", "runs.db", "Run database path")
	limit := fs.Int("limit", 10, "Maximum number of runs to list")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: cellsim runs [run-id] [options]

List archived assembly runs, or show one run in detail.

Options:
`)
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Examples:
  # List the ten most recent runs
  cellsim runs --db runs.db

  # Show one run in detail
  cellsim runs 1b4e28ba-2fa1-11d2-883f-0016d3cca427 --db runs.db
`)
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	store, err := runstore.Open(*dbPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if fs.NArg() >= 1 {
		return showRun(store, fs.Arg(0))
	}

	list, err := store.Recent(*limit)
	if err != nil {
		return fmt.Errorf("list runs: %w", err)
	}
	if len(list) == 0 {
		fmt.Println("No archived runs.")
		return nil
	}

	fmt.Printf("%-36s  %-19s  %-7s  %-6s  %s\n", "ID", "ASSEMBLED", "THERMAL", "SOLVER", "MODEL")
	for _, run := range list {
		fmt.Printf("%-36s  %-19s  %-7s  %-6s  %s\n",
			run.ID, run.AssembledAt.Format("2006-01-02 15:04:05"),
			run.Thermal, run.Solver, run.Model)
	}
	return nil
}

func showRun(store *runstore.Store, id string) error {
	run, err := store.Get(id)
	if err != nil {
		return fmt.Errorf("get run %s: %w", id, err)
	}

	summary, err := run.DecodeSummary()
	if err != nil {
		return err
	}

	fmt.Printf("Run:       %s\n", run.ID)
	fmt.Printf("Model:     %s\n", run.Model)
	if run.Geometry != "" {
		fmt.Printf("Geometry:  %s\n", run.Geometry)
	}
	fmt.Printf("Solver:    %s\n", run.Solver)
	fmt.Printf("Thermal:   %s\n", run.Thermal)
	fmt.Printf("Assembled: %s\n", run.AssembledAt.Format("2006-01-02 15:04:05"))

	fmt.Printf("\nDifferential states (%d):\n", len(summary.Differential))
	for _, entry := range summary.Differential {
		fmt.Printf("  d/dt %s\n", entry.State)
	}
	fmt.Printf("\nAlgebraic states (%d):\n", len(summary.Algebraic))
	for _, entry := range summary.Algebraic {
		fmt.Printf("  0 = f(%s)\n", entry.State)
	}
	fmt.Printf("\nEvents (%d):\n", len(summary.Events))
	for _, name := range summary.Events {
		fmt.Printf("  %s\n", name)
	}
	return nil
}
