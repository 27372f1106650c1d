package main

import (
	"fmt"
	"os"

	"github.com/aretw0/reducto/internal/cli"
	"github.com/spf13/cobra"
)

var replayCmd = &cobra.Command{
	Use:   "replay <script>",
	Short: "Replay a script of actions against the todo store",
	Long: `Loads a YAML or JSON script of named actions, dispatches them through the
middleware chain and prints the final state.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		level, _ := cmd.Flags().GetString("log-level")
		format, _ := cmd.Flags().GetString("output")
		metrics, _ := cmd.Flags().GetBool("metrics")
		record, _ := cmd.Flags().GetString("record")

		logger, err := cli.CreateLogger(level)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}

		err = cli.RunReplay(cli.ReplayOptions{
			ScriptPath: args[0],
			RecordPath: record,
			Format:     format,
			Metrics:    metrics,
			Logger:     logger,
			Out:        cmd.OutOrStdout(),
		})
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(replayCmd)

	replayCmd.Flags().StringP("output", "o", cli.FormatText, "Output format (text, markdown, yaml, json)")
	replayCmd.Flags().Bool("metrics", false, "Print dispatch counters after the state")
	replayCmd.Flags().String("record", "", "Write the dispatched actions to this script file")
}
