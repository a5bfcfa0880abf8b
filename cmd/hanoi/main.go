// Package main implements the hanoi CLI: a web server, a terminal client and
// a plain move printer around the same game core.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "hanoi",
	Short: "Tower of Hanoi game engine",
	Long: `hanoi hosts a Tower of Hanoi game engine behind several front ends.

The same rules, selection handling and auto-solver back every mode:

  hanoi serve   # JSON API plus a browser client
  hanoi play    # interactive terminal client
  hanoi solve   # print the optimal move sequence`,
	Version: version,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(solveCmd)
}
