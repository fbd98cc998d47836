package cmd

import (
	"fmt"

	"github.com/encodeous/bestpath/state"
	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Validates a scenario and prints it in normalized form",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := state.ReadScenario(scenarioPath)
		if err != nil {
			panic(err)
		}
		err = state.ScenarioValidator(cfg)
		if err != nil {
			panic(err)
		}

		cfgYaml, err := yaml.Marshal(cfg)
		if err != nil {
			panic(err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "Scenario is valid")
		fmt.Fprintln(out, string(cfgYaml))
	},
	GroupID: "sim",
}

func init() {
	rootCmd.AddCommand(verifyCmd)
}
