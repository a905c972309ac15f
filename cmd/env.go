/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"logshort-launcher/internal/config"
)

// envCmd represents the env command
var envCmd = &cobra.Command{
	Use:   "env",
	Short: "Show credentials resolution without launching anything",
	Long: `Show credentials resolution without launching anything.

Prints the search order with existence marks, the resolved credentials
file, and the key names it would inject. Values are always masked; there
is no flag to reveal them.`,
	Run: func(cmd *cobra.Command, args []string) {
		runEnvReport(cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(envCmd)
}

func runEnvReport(out io.Writer) {
	fmt.Fprintf(out, "Launch directory: %s\n\nSearch order:\n", launchDir)

	for _, c := range config.Candidates(launchDir) {
		mark := " "
		if c.Exists {
			mark = "x"
		}
		fmt.Fprintf(out, "  [%s] %-8s %s\n", mark, c.Source, c.Path)
	}

	path, ok := config.ResolveCredentialsPath(launchDir)
	if !ok {
		fmt.Fprintln(out, "\nNo credentials file found; the scanner would launch with the existing environment.")
		return
	}

	entries, err := config.ParseEnvFile(path)
	if err != nil {
		slog.Error("credentials file unreadable", "err", err)
		return
	}

	fmt.Fprintf(out, "\nResolved: %s\nWould inject %d keys:\n", path, len(entries))
	for _, e := range entries {
		fmt.Fprintf(out, "  %s = ****\n", e.Key)
	}
}
