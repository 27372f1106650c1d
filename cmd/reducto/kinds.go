package main

import (
	"github.com/aretw0/reducto/internal/cli"
	"github.com/spf13/cobra"
)

var kindsCmd = &cobra.Command{
	Use:   "kinds",
	Short: "List the action names scripts can use",
	Run: func(cmd *cobra.Command, args []string) {
		cli.PrintKinds(cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(kindsCmd)
}
