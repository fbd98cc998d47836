package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var scenarioPath = "scenario.yaml"

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "bestpath",
	Short: "BGP best path selection simulator",
	Long: `bestpath replays route advertisements against a single simulated BGP router.
Every advertisement is run through the router's import policy and best path selection, and the decision is reported.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddGroup(&cobra.Group{
		ID:    "init",
		Title: "Create Scenarios",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "sim",
		Title: "Simulation Commands",
	})
	rootCmd.PersistentFlags().StringVarP(&scenarioPath, "scenario", "s", scenarioPath, "scenario file")
}
