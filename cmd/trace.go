/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"logshort-launcher/internal/config"
)

// traceCmd represents the trace command
var traceCmd = &cobra.Command{
	Use:   "trace",
	Short: "Launch the trainer-bridge build with tick tracing enabled",
	Long: `Launch the trainer-bridge build with tick tracing enabled.

Identical to run, except DEBUG_TRACE=1 and TRACE_LEVEL are always set in
the scanner's environment and the default entry point is the
trainer-bridge script. Levels 3 and above emit per-tick markers.`,
	Run: func(cmd *cobra.Command, args []string) {
		os.Exit(runLaunch(cmd.OutOrStdout(), "Bybit SHORT Scanner (trace)", traceEntrypoint,
			config.Entry{Key: "DEBUG_TRACE", Value: "1"},
			config.Entry{Key: "TRACE_LEVEL", Value: strconv.Itoa(traceLevel)},
		))
	},
}

var (
	traceEntrypoint string
	traceLevel      int
)

func init() {
	rootCmd.AddCommand(traceCmd)

	defaultEntry := getEnvWithDefault("LOGSHORT_TRACE_ENTRYPOINT", "auto-short_v095_with_trainer_bridge.py")
	defaultLevel := getEnvIntWithDefault("LOGSHORT_TRACE_LEVEL", 3)

	traceCmd.Flags().StringVarP(&traceEntrypoint, "entrypoint", "e", defaultEntry, "scanner entry point (env: LOGSHORT_TRACE_ENTRYPOINT)")
	traceCmd.Flags().IntVarP(&traceLevel, "level", "l", defaultLevel, "trace verbosity 1-5 (env: LOGSHORT_TRACE_LEVEL)")
}
