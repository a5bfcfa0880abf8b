package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"svw.info/hanoi/internal/domain"
	"svw.info/hanoi/internal/solver"
)

var solveDisks int

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Print the optimal move sequence",
	Long: `Solve prints the shortest move sequence for a given stack height,
one move per line.

Examples:
  hanoi solve
  hanoi solve --disks 4`,
	RunE: runSolve,
}

func init() {
	solveCmd.Flags().IntVar(&solveDisks, "disks", 5, "number of disks (3-10)")
}

func runSolve(cmd *cobra.Command, args []string) error {
	if solveDisks < domain.MinDisks || solveDisks > domain.MaxDisks {
		return fmt.Errorf("disks must be between %d and %d", domain.MinDisks, domain.MaxDisks)
	}
	moves := solver.Sequence(solveDisks)
	names := [...]string{"source", "aux", "dest"}
	for i, mv := range moves {
		fmt.Fprintf(cmd.OutOrStdout(), "%3d: %s -> %s\n", i+1, names[mv.From], names[mv.To])
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%d moves\n", len(moves))
	return nil
}
