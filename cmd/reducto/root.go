package main

import (
	"fmt"
	"os"

	"github.com/aretw0/reducto"
	"github.com/aretw0/reducto/internal/presentation/tui"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "reducto",
	Short: "Reducto drives a reducer-based store from scripts",
	Long: `Reducto is a unidirectional state container. This command replays scripted actions
against the bundled todo model, showing the resulting state, metrics and reducer tree.`,
	Run: func(cmd *cobra.Command, args []string) {
		tui.PrintBanner(cmd.OutOrStdout(), reducto.Version)
		_ = cmd.Help()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("log-level", "off", "Log level written to stderr (debug, info, warn, error, off)")
}
