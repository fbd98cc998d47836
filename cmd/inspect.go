package cmd

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/encodeous/bestpath/core"
	"github.com/encodeous/bestpath/render"
	"github.com/encodeous/bestpath/state"
	"github.com/spf13/cobra"
)

var inspectCmd = &cobra.Command{
	Use:     "inspect [destination...]",
	Aliases: []string{"i"},
	Short:   "Replays a scenario and shows how each destination's route was chosen",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := state.ReadScenario(scenarioPath)
		if err != nil {
			panic(err)
		}
		res, err := core.Start(cfg, slog.LevelWarn, nil)
		if err != nil {
			panic(err)
		}

		dsts := make([]state.Destination, 0)
		for _, arg := range args {
			dsts = append(dsts, state.Destination(arg))
		}
		if len(dsts) == 0 {
			for dst := range res.History {
				dsts = append(dsts, dst)
			}
			slices.Sort(dsts)
		}

		out := cmd.OutOrStdout()
		for _, dst := range dsts {
			fmt.Fprintf(out, "%s:\n", dst)
			history, ok := res.History[dst]
			if !ok || len(history) == 0 {
				fmt.Fprintln(out, "  (no advertisements)")
				continue
			}
			for _, d := range history {
				fmt.Fprintf(out, "  #%d %s\n", d.Seq, render.Decision(cfg.Router.Name, d))
			}
		}
	},
	GroupID: "sim",
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}
