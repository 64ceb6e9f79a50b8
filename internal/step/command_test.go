package step

import (
	"bytes"
	"context"
	"errors"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmr-tortoise/runway/internal/model"
)

// skipOnWindows skips tests that shell out via /bin/sh, which is not
// available on Windows runners.
func skipOnWindows(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("test requires a POSIX shell")
	}
}

// TestCommandRunner_Success verifies that a zero-exit child yields nil
// and its stdout reaches the runner's writer unmodified.
func TestCommandRunner_Success(t *testing.T) {
	skipOnWindows(t)

	var out, errOut bytes.Buffer
	runner := &CommandRunner{Stdout: &out, Stderr: &errOut}

	err := runner.Run(context.Background(), Step{
		Name:    "echo",
		Command: []string{"sh", "-c", "echo staged"},
	})

	require.NoError(t, err)
	assert.Equal(t, "staged\n", out.String(), "child stdout must pass through unmodified")
	assert.Empty(t, errOut.String())
}

// TestCommandRunner_FailurePropagatesExitCode verifies the core
// fail-fast contract: a child exiting with status 7 produces a CLIError
// whose Code is exactly 7, so the orchestrator can adopt it as its own
// exit status.
func TestCommandRunner_FailurePropagatesExitCode(t *testing.T) {
	skipOnWindows(t)

	runner := &CommandRunner{Stdout: &bytes.Buffer{}, Stderr: &bytes.Buffer{}}

	err := runner.Run(context.Background(), Step{
		Name:    "migrate",
		Command: []string{"sh", "-c", "exit 7"},
	})

	require.Error(t, err)
	var cliErr *model.CLIError
	require.True(t, errors.As(err, &cliErr))
	assert.Equal(t, model.ExitCode(7), cliErr.Code, "child exit status must be propagated exactly")
	assert.Contains(t, cliErr.Message, `"migrate"`)
}

// TestCommandRunner_StderrPassthrough verifies that the child's own
// diagnostics on stderr reach the operator; the runner adds no wrapping
// to the stream itself.
func TestCommandRunner_StderrPassthrough(t *testing.T) {
	skipOnWindows(t)

	var out, errOut bytes.Buffer
	runner := &CommandRunner{Stdout: &out, Stderr: &errOut}

	err := runner.Run(context.Background(), Step{
		Name:    "collectstatic",
		Command: []string{"sh", "-c", "echo boom >&2; exit 1"},
	})

	require.Error(t, err)
	assert.Equal(t, "boom\n", errOut.String())
	assert.Empty(t, out.String())
}

// TestCommandRunner_MissingBinary verifies that a step whose binary
// cannot be found fails with the general error code — there is no child
// exit status to propagate.
func TestCommandRunner_MissingBinary(t *testing.T) {
	runner := &CommandRunner{Stdout: &bytes.Buffer{}, Stderr: &bytes.Buffer{}}

	err := runner.Run(context.Background(), Step{
		Name:    "migrate",
		Command: []string{"definitely-not-a-real-binary-name"},
	})

	require.Error(t, err)
	var cliErr *model.CLIError
	require.True(t, errors.As(err, &cliErr))
	assert.Equal(t, model.ExitGeneralError, cliErr.Code)
}

// TestCommandRunner_EmptyCommand verifies that a step with no command
// is rejected as a configuration error before any process is spawned.
func TestCommandRunner_EmptyCommand(t *testing.T) {
	runner := NewCommandRunner()

	err := runner.Run(context.Background(), Step{Name: "broken"})

	require.Error(t, err)
	var cliErr *model.CLIError
	require.True(t, errors.As(err, &cliErr))
	assert.Equal(t, model.ExitConfigInvalid, cliErr.Code)
}

// TestStepString verifies the human-readable step representation used
// in verbose output.
func TestStepString(t *testing.T) {
	s := Step{Name: "migrate", Command: []string{"python", "manage.py", "migrate"}}
	assert.Contains(t, s.String(), "migrate")
	assert.Contains(t, s.String(), "manage.py")
}
