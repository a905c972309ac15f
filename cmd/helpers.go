package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"logshort-launcher/internal/config"
	"logshort-launcher/internal/launcher"
)

// getEnvWithDefault returns environment variable value or default if not set
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvIntWithDefault returns environment variable as int or default if not set
func getEnvIntWithDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

// bootstrapEnviron resolves and parses the credentials file for dir and
// overlays it, plus any extra entries, onto base. A missing or unreadable
// credentials file is a warning: the launch still proceeds with base and
// the extras. Key values are never logged.
func bootstrapEnviron(base []string, dir string, extra ...config.Entry) []string {
	path, ok := config.ResolveCredentialsPath(dir)
	if !ok {
		slog.Warn("no credentials file found, launching with existing environment", "dir", dir)
		return config.BuildEnviron(base, extra...)
	}

	entries, err := config.ParseEnvFile(path)
	if err != nil {
		slog.Warn("credentials file unreadable, launching with existing environment", "err", err)
		return config.BuildEnviron(base, extra...)
	}

	slog.Info("credentials loaded", "path", path, "keys", len(entries))
	return config.BuildEnviron(base, append(entries, extra...)...)
}

// runLaunch is the shared body of the run and trace commands: bootstrap
// the environment, spawn the scanner, surface its exit code, banner,
// pause. Returns the process exit code for the launcher itself.
func runLaunch(out io.Writer, title, entrypoint string, extra ...config.Entry) int {
	env := bootstrapEnviron(os.Environ(), launchDir, extra...)

	fmt.Fprintln(out, launcher.StartBanner(title, entrypoint))

	code, err := launcher.Launch(context.Background(), launcher.Options{
		Dir:        launchDir,
		Entrypoint: entrypoint,
		Python:     pythonOverride,
		Env:        env,
		NoLock:     noLock,
		Stdin:      os.Stdin,
		Stdout:     os.Stdout,
		Stderr:     os.Stderr,
	})
	if err != nil {
		// The scanner never ran, so a "finished" banner would mislead.
		slog.Error("scanner did not start", "err", err)
	} else {
		fmt.Fprintln(out, launcher.CompletionBanner(code))
	}

	if !noPause && stdinIsInteractive() {
		launcher.Pause(os.Stdin, out)
	}
	return code
}

func stdinIsInteractive() bool {
	info, err := os.Stdin.Stat()
	return err == nil && info.Mode()&os.ModeCharDevice != 0
}
