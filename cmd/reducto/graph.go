package main

import (
	"fmt"
	"os"

	"github.com/aretw0/reducto/internal/cli"
	"github.com/spf13/cobra"
)

var graphCmd = &cobra.Command{
	Use:   "graph",
	Short: "Visualize the reducer tree as a Mermaid flowchart",
	Long: `Prints the todo model's reducer tree: composite fields and the action kinds
that update each of them. With --script, the kinds the script dispatches are highlighted.`,
	Run: func(cmd *cobra.Command, args []string) {
		scriptPath, _ := cmd.Flags().GetString("script")
		if err := cli.RunGraph(cmd.OutOrStdout(), scriptPath); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
	graphCmd.Flags().String("script", "", "Highlight the kinds dispatched by this script")
}
