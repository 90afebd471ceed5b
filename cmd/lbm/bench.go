package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/spatialmodel/lbm/bench"
)

var benchDir string

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Benchmark every configuration file in a directory.",
	Long: `bench walks --dir for *.csv configuration files, runs each one
through the solver, and reports wall-clock time per algorithm/layout
combination, mirroring the teacher's two-binary split by keeping this
command thin and delegating to the bench package.`,
	DisableAutoGenTag: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		entries, err := bench.Suite(benchDir)
		if err != nil {
			return fmt.Errorf("lbm: %w", err)
		}
		bench.Report(os.Stdout, entries)
		return nil
	},
}

func init() {
	benchCmd.Flags().StringVar(&benchDir, "dir", "./configs", "directory of configuration CSV files")
}
