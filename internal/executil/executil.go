// internal/executil/executil.go
package executil

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"syscall"
)

// Runner abstracts external process execution so workflow logic can be
// tested with fakes instead of real tools (mvn, docker, zip).
type Runner interface {
	// Run executes the command with inherited stdout/stderr.
	// dir may be empty to run in the current directory.
	Run(dir, name string, args ...string) error
	// Output executes the command and returns its captured stdout.
	Output(dir, name string, args ...string) (string, error)
}

// System is the real Runner backed by os/exec.
type System struct{}

func (System) Run(dir, name string, args ...string) error {
	cmd := exec.Command(name, args...)
	cmd.Dir = dir
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	echo(dir, name, args)
	if err := cmd.Run(); err != nil {
		return wrapRunError(err, name, args)
	}
	return nil
}

func (System) Output(dir, name string, args ...string) (string, error) {
	cmd := exec.Command(name, args...)
	cmd.Dir = dir
	var stdout bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return "", wrapRunError(err, name, args)
	}
	return stdout.String(), nil
}

// DryRunner logs the command that would be run without executing.
// Output returns an empty string, so query-style callers see "nothing".
type DryRunner struct{}

func (DryRunner) Run(dir, name string, args ...string) error {
	if dir != "" {
		fmt.Printf("[DRY RUN in %s] %s %s\n", dir, name, shellQuoteArgs(args))
	} else {
		fmt.Printf("[DRY RUN] %s %s\n", name, shellQuoteArgs(args))
	}
	return nil
}

func (d DryRunner) Output(dir, name string, args ...string) (string, error) {
	return "", d.Run(dir, name, args...)
}

// ----------------------------------------------------------------

func echo(dir, name string, args []string) {
	if dir != "" {
		fmt.Printf("Running in %s: %s %s\n", dir, name, shellQuoteArgs(args))
		return
	}
	fmt.Printf("Running: %s %s\n", name, shellQuoteArgs(args))
}

func wrapRunError(err error, name string, args []string) error {
	fullCmd := name + " " + shellQuoteArgs(args)
	// include exit status if available
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		if status, ok := exitErr.Sys().(syscall.WaitStatus); ok {
			return fmt.Errorf("command failed (exit=%d): %s: %w", status.ExitStatus(), fullCmd, err)
		}
	}
	return fmt.Errorf("failed to run command: %s: %w", fullCmd, err)
}

// shellQuoteArgs returns a printable, shell-safe representation of args.
func shellQuoteArgs(args []string) string {
	quoted := make([]string, len(args))
	for i, a := range args {
		if a == "" || strings.ContainsAny(a, " \t\n\"'`$\\*?[]{}()<>|&;") {
			a = "'" + strings.ReplaceAll(a, "'", `'\''`) + "'"
		}
		quoted[i] = a
	}
	return strings.Join(quoted, " ")
}
