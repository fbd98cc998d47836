package cmd

import (
	"fmt"

	"github.com/encodeous/bestpath/state"
	"github.com/spf13/cobra"
)

var exampleCmd = &cobra.Command{
	Use:   "example",
	Short: "Writes an example scenario",
	Long: `Writes a scenario where AS300 learns 10.1.0.0/16 twice: over a short path via AS200,
and over a longer path via AS400 that local policy prefers.`,
	Run: func(cmd *cobra.Command, args []string) {
		out, _ := cmd.Flags().GetString("output")
		err := state.WriteScenario(out, state.ExampleScenario())
		if err != nil {
			panic(err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote example scenario to %s\n", out)
	},
	GroupID: "init",
}

func init() {
	rootCmd.AddCommand(exampleCmd)
	exampleCmd.Flags().StringP("output", "o", "scenario.yaml", "Path to write the scenario to")
}
