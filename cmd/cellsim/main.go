package main

import (
	"fmt"
	"os"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "assemble":
		if err := assemble(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "summary":
		if err := summary(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "visualize":
		if err := visualize(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "runs":
		if err := runs(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "help", "-h", "--help":
		printUsage()
	case "version", "-v", "--version":
		fmt.Println("cellsim version 1.0.0")
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`cellsim - lithium-ion cell model assembly tool

Usage:
  cellsim <command> [options]

Commands:
  assemble   Assemble the DFN cell model and report its structure
  summary    Print a readable summary of the assembled model
  visualize  Generate SVG visualization of the assembled equations
  runs       List or inspect archived assembly runs
  help       Show this help message
  version    Show version information

Examples:
  # Assemble with a lumped thermal model, print the summary as JSON
  cellsim assemble --thermal lumped --json -

  # Assemble and archive the run
  cellsim assemble --record --db runs.db

  # Draw the equation structure
  cellsim visualize --thermal full --output dfn.svg

  # Show the five most recent archived runs
  cellsim runs --db runs.db --limit 5

For command-specific help, run:
  cellsim <command> --help`)
}
