// Package launcher starts the scanner process: interpreter discovery,
// single-instance locking, spawn with an explicit environment, and the
// operator banner/pause after exit.
package launcher

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/gofrs/flock"
)

// LockFileName sits in the launch directory while a scanner instance runs.
const LockFileName = ".logshort-launcher.lock"

// venvDirs and venvPythons are probed in order when discovering a
// project-local interpreter. Both the Windows and POSIX layouts are
// checked so a checkout copied between machines still launches.
var (
	venvDirs    = []string{"venv", ".venv"}
	venvPythons = []string{
		filepath.Join("Scripts", "python.exe"),
		filepath.Join("bin", "python"),
	}
)

// ErrAlreadyRunning is returned when another launcher holds the instance lock.
var ErrAlreadyRunning = errors.New("another launcher instance is already running in this directory (use --no-lock to bypass)")

// Options describes a single launch.
type Options struct {
	// Dir is the launch directory: working directory of the child and the
	// root for interpreter and lock discovery.
	Dir string
	// Entrypoint is the Python script to run, relative to Dir.
	Entrypoint string
	// Python overrides interpreter discovery when non-empty.
	Python string
	// Env is the complete child environment. It is passed through as-is;
	// Launch never consults or mutates the launcher's own environment.
	Env []string
	// NoLock skips the single-instance guard.
	NoLock bool

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// FindInterpreter picks the Python interpreter for dir: an explicit
// override wins, then a project-local virtual environment, then python3 or
// python from PATH. The final fallback is the bare name "python" so the
// spawn error names what was attempted.
func FindInterpreter(dir, override string) string {
	if override != "" {
		return override
	}
	for _, vd := range venvDirs {
		for _, py := range venvPythons {
			p := filepath.Join(dir, vd, py)
			if info, err := os.Stat(p); err == nil && !info.IsDir() {
				return p
			}
		}
	}
	for _, name := range []string{"python3", "python"} {
		if p, err := exec.LookPath(name); err == nil {
			return p
		}
	}
	return "python"
}

// Launch runs the entry point and blocks until it exits, returning the
// child's exit code. The child inherits the configured stdio; failures
// inside the child are opaque here beyond the propagated code. A child
// that cannot be started at all yields code 1 and a non-nil error.
func Launch(ctx context.Context, opts Options) (int, error) {
	if !opts.NoLock {
		fl := flock.New(filepath.Join(opts.Dir, LockFileName))
		locked, err := fl.TryLock()
		if err != nil {
			return 1, fmt.Errorf("acquire instance lock: %w", err)
		}
		if !locked {
			return 1, ErrAlreadyRunning
		}
		defer fl.Unlock()
	}

	python := FindInterpreter(opts.Dir, opts.Python)

	cmd := exec.CommandContext(ctx, python, opts.Entrypoint)
	cmd.Dir = opts.Dir
	cmd.Env = opts.Env
	cmd.Stdin = opts.Stdin
	cmd.Stdout = opts.Stdout
	cmd.Stderr = opts.Stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return exitErr.ExitCode(), nil
		}
		return 1, fmt.Errorf("start %s %s: %w", python, opts.Entrypoint, err)
	}
	return 0, nil
}

// Pause prints the close prompt and blocks until the operator presses
// Enter (or in closes). Pure convenience for double-click usage so the
// window does not vanish before the banner is read.
func Pause(in io.Reader, out io.Writer) {
	fmt.Fprint(out, "\nPress Enter to close...")
	reader := bufio.NewReader(in)
	_, _ = reader.ReadString('\n')
}
