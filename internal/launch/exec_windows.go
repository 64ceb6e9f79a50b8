//go:build windows

package launch

import (
	"os"
	"os/exec"
)

// replaceProcess emulates process-image substitution on Windows, which
// has no execve equivalent: the server runs as a child with inherited
// standard streams, and once it exits the orchestrator immediately
// exits with the child's exit code. No orchestrator code runs
// concurrently with or after the server.
func replaceProcess(binary string, argv []string, env []string) error {
	// #nosec G204 — argv comes from runway's own configuration.
	cmd := exec.Command(binary, argv[1:]...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Env = env

	if err := cmd.Start(); err != nil {
		return err
	}

	// Block until the server terminates, then forward its exit code as
	// the orchestrator's own.
	if err := cmd.Wait(); err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			os.Exit(exitErr.ExitCode())
		}
		os.Exit(1)
	}
	os.Exit(0)
	return nil // unreachable
}
