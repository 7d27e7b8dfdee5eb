package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/cellsim-xyz/go-cellsim/battery"
	"github.com/cellsim-xyz/go-cellsim/render"
)

func visualize(args []string) error {
	fs := flag.NewFlagSet("visualize", flag.ExitOnError)
	thermal := fs.String("thermal", "off", "Thermal submodel: off, full, or lumped")
	output := fs.String("output", "", "Output SVG file (required)")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: cellsim visualize [options]

Generate SVG visualization of the assembled equation structure.

Options:
`)
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Examples:
  # Draw the isothermal DFN equations
  cellsim visualize --output dfn.svg

  # Include the whole-cell thermal PDE
  cellsim visualize --thermal full --output dfn-thermal.svg
`)
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if *output == "" {
		fs.Usage()
		return fmt.Errorf("--output required")
	}

	opts := battery.Options{Thermal: battery.ThermalOption(*thermal)}
	dfn, err := battery.NewDFN(nil, opts)
	if err != nil {
		return fmt.Errorf("assemble model: %w", err)
	}

	if err := render.SaveSVG(dfn.Model, *output); err != nil {
		return fmt.Errorf("generate SVG: %w", err)
	}

	summary := dfn.Summarize()
	fmt.Printf("✓ Visualization saved to %s\n", *output)
	fmt.Printf("  Differential states: %d\n", len(summary.Differential))
	fmt.Printf("  Algebraic states:    %d\n", len(summary.Algebraic))
	fmt.Printf("  Events:              %d\n", len(summary.Events))

	return nil
}
