/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "logshort-launcher",
	Short: "Launcher for the Bybit SHORT scanner",
	Long: `Launcher for the Bybit SHORT scanner.

Resolves a credentials file (pointer file, then .env, keys/.env,
secrets/.env), injects its keys into the scanner's environment without
ever printing secret values, and starts the scanner with a project-local
Python interpreter when one is present.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(tint.NewHandler(os.Stderr, &tint.Options{
			Level:      level,
			TimeFormat: time.Kitchen,
		})))
	},
}

var (
	launchDir      string
	pythonOverride string
	noPause        bool
	noLock         bool
	verbose        bool
)

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	defaultDir := getEnvWithDefault("LOGSHORT_DIR", executableDir())

	rootCmd.PersistentFlags().StringVar(&launchDir, "dir", defaultDir, "launch directory (env: LOGSHORT_DIR)")
	rootCmd.PersistentFlags().StringVar(&pythonOverride, "python", os.Getenv("LOGSHORT_PYTHON"), "Python interpreter override (env: LOGSHORT_PYTHON)")
	rootCmd.PersistentFlags().BoolVar(&noPause, "no-pause", false, "do not wait for a key press after the scanner exits")
	rootCmd.PersistentFlags().BoolVar(&noLock, "no-lock", false, "skip the single-instance lock")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// executableDir mirrors the batch scripts' cd into their own directory:
// double-click launches should resolve credentials next to the binary,
// not in whatever working directory the shell happened to have.
func executableDir() string {
	exe, err := os.Executable()
	if err != nil {
		return "."
	}
	return filepath.Dir(exe)
}
