package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/cellsim-xyz/go-cellsim/battery"
)

func summary(args []string) error {
	fs := flag.NewFlagSet("summary", flag.ExitOnError)
	thermal := fs.String("thermal", "off", "Thermal submodel: off, full, or lumped")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: cellsim summary [options]

Assemble the DFN cell model and print a readable summary of its structure.

Options:
`)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	opts := battery.Options{Thermal: battery.ThermalOption(*thermal)}
	dfn, err := battery.NewDFN(nil, opts)
	if err != nil {
		return fmt.Errorf("assemble model: %w", err)
	}
	s := dfn.Summarize()

	fmt.Printf("%s\n", s.Name)
	fmt.Printf("Geometry: %s\n", s.Geometry)
	fmt.Printf("Solver:   %s\n", s.Solver)

	fmt.Printf("\nDifferential states (%d):\n", len(s.Differential))
	for _, entry := range s.Differential {
		fmt.Printf("  d/dt %s\n", entry.State)
	}
	fmt.Printf("\nAlgebraic states (%d):\n", len(s.Algebraic))
	for _, entry := range s.Algebraic {
		fmt.Printf("  %s\n", entry.State)
	}

	fmt.Printf("\nReporting variables (%d):\n", len(s.Variables))
	for _, name := range s.Variables {
		fmt.Printf("  %s\n", name)
	}

	fmt.Printf("\nEvents (%d):\n", len(s.Events))
	for _, name := range s.Events {
		fmt.Printf("  %s\n", name)
	}

	return nil
}
