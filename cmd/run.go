package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/encodeous/bestpath/core"
	"github.com/encodeous/bestpath/render"
	"github.com/encodeous/bestpath/state"
	"github.com/spf13/cobra"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Replay a scenario",
	Long:  `Replays every advertisement in the scenario, in order, and prints each decision together with the resulting route table.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := state.ReadScenario(scenarioPath)
		if err != nil {
			panic(err)
		}

		level := slog.LevelInfo
		if ok, _ := cmd.Flags().GetBool("verbose"); ok {
			level = slog.LevelDebug
		}
		if logPath, _ := cmd.Flags().GetString("log"); logPath != "" {
			cfg.Router.LogPath = logPath
		}
		quiet, _ := cmd.Flags().GetBool("quiet")

		out := cmd.OutOrStdout()
		name := cfg.Router.Name
		if !quiet {
			fmt.Fprint(out, render.Table(name, cfg.Router.As, nil))
		}
		res, err := core.Start(cfg, level, func(adv state.Advertisement, d state.Decision, table []state.TableEntry) {
			if quiet {
				return
			}
			from := ""
			if adv.From != "" {
				from = fmt.Sprintf(" from %s", adv.From)
			}
			fmt.Fprintf(out, "\n[event] received %s%s via %s\n", adv.Destination, from, adv.Path)
			fmt.Fprintln(out, render.Decision(name, d))
			fmt.Fprint(out, render.Table(name, cfg.Router.As, table))
		})
		if err != nil {
			panic(err)
		}

		fmt.Fprintln(out, "\n### Final decision ###")
		fmt.Fprint(out, render.Table(name, cfg.Router.As, res.Table))

		if dotPath, _ := cmd.Flags().GetString("dot"); dotPath != "" {
			dot := render.Dot(name, cfg.Router.As, res.Table, res.Decisions)
			err = os.WriteFile(dotPath, []byte(dot), 0600)
			if err != nil {
				panic(err)
			}
		}
	},
	GroupID: "sim",
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().BoolP("verbose", "v", false, "Verbose output")
	runCmd.Flags().BoolP("quiet", "q", false, "Only print the final route table")
	runCmd.Flags().StringP("log", "l", "", "Also write logs to this file")
	runCmd.Flags().StringP("dot", "d", "", "Write a Graphviz diagram of the chosen and rejected paths to this file")
	runCmd.Flags().BoolVar(&state.DBG_debug, "debug", false, "Serve expvar and /debug/metrics while running")
	runCmd.Flags().BoolVar(&state.DBG_trace, "trace", false, "Write a runtime trace to trace.out")
}
