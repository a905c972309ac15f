/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Launch the scanner in modular mode",
	Long: `Launch the scanner in modular mode.

Credentials are resolved through the standard search order and injected
into the scanner's environment before it starts. The launcher's exit code
is the scanner's exit code.`,
	Run: func(cmd *cobra.Command, args []string) {
		os.Exit(runLaunch(cmd.OutOrStdout(), "Bybit SHORT Scanner", runEntrypoint))
	},
}

var runEntrypoint string

func init() {
	rootCmd.AddCommand(runCmd)

	defaultEntry := getEnvWithDefault("LOGSHORT_ENTRYPOINT", "main.py")
	runCmd.Flags().StringVarP(&runEntrypoint, "entrypoint", "e", defaultEntry, "scanner entry point (env: LOGSHORT_ENTRYPOINT)")
}
