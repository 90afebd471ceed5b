// Command lbm is the command-line interface for the D2Q9 lattice-Boltzmann
// fluid solver: it reads a key/value configuration file and runs the
// iteration loop, or benchmarks a whole directory of configurations.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var configFile string

// rootCmd mirrors the teacher's RootCmd shape: a persistent --config flag
// and subcommands doing the actual work, rather than flags scattered
// across every subcommand.
var rootCmd = &cobra.Command{
	Use:   "lbm",
	Short: "A D2Q9 lattice-Boltzmann fluid solver.",
	Long: `lbm runs a two-dimensional lattice-Boltzmann fluid simulation
over a rectangular channel, selecting among four streaming engines
(two-lattice, two-step, swap, shift), their parallel strip-decomposed
variants, and three distribution storage layouts.`,
	DisableAutoGenTag: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "./config.csv", "configuration file location")
	rootCmd.AddCommand(runCmd, benchCmd, versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

const version = "0.1.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Long:  "version prints the version number of this build of lbm.",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("lbm v%s\n", version)
	},
	DisableAutoGenTag: true,
}
