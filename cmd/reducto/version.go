package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/reducto"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of reducto",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "reducto version %s\n", strings.TrimSpace(reducto.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
