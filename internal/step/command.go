package step

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/mmr-tortoise/runway/internal/model"
)

// Step is one named preparatory action: an argv to run as a child
// process. Steps are executed strictly in order and each blocks the
// pipeline until the child exits.
type Step struct {
	// Name identifies the step in progress output and in
	// `runway step <name>`.
	Name string `json:"name"`

	// Command is the argv of the child tool. The first element is the
	// binary, resolved via PATH.
	Command []string `json:"command"`
}

// String returns a human-readable representation of the step.
func (s Step) String() string {
	return fmt.Sprintf("%s (%v)", s.Name, s.Command)
}

// Runner runs a single preparatory step to completion.
//
// Implementations must block until the step finishes and return nil on
// success or an error carrying the failure's exit status. The
// orchestrator applies no timeout of its own; it relies on the
// underlying tool to terminate.
type Runner interface {
	Run(ctx context.Context, s Step) error
}

// CommandRunner executes steps as child processes.
//
// Child stdout and stderr are connected to the runner's writers
// (defaulting to the orchestrator's own streams), so the tool's output
// reaches the operator unmodified. A non-zero child exit becomes a
// model.CLIError whose Code is the child's exact exit status, which the
// pipeline propagates as the orchestrator's own exit code.
type CommandRunner struct {
	// Stdout receives the child's standard output. Defaults to os.Stdout.
	Stdout io.Writer

	// Stderr receives the child's standard error. Defaults to os.Stderr.
	Stderr io.Writer

	// Env is the child's environment. Nil means inherit the
	// orchestrator's environment, which is the normal case — the child
	// tools read the same ambient configuration the orchestrator does.
	Env []string
}

// NewCommandRunner creates a CommandRunner wired to the process's own
// standard streams.
func NewCommandRunner() *CommandRunner {
	return &CommandRunner{Stdout: os.Stdout, Stderr: os.Stderr}
}

// Run executes the step's command and blocks until it exits.
//
// The context is attached to the child via exec.CommandContext so
// external termination of the orchestrator propagates; the orchestrator
// itself never cancels a step.
func (r *CommandRunner) Run(ctx context.Context, s Step) error {
	if len(s.Command) == 0 {
		return model.NewCLIError(model.ExitConfigInvalid,
			fmt.Sprintf("step %q has an empty command", s.Name))
	}

	// #nosec G204 — the argv comes from runway's own configuration,
	// not from request input.
	cmd := exec.CommandContext(ctx, s.Command[0], s.Command[1:]...)
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr
	if cmd.Stdout == nil {
		cmd.Stdout = os.Stdout
	}
	if cmd.Stderr == nil {
		cmd.Stderr = os.Stderr
	}
	cmd.Env = r.Env
	// Stdin stays disconnected: every step runs non-interactively, and
	// a tool that prompts must fail or hang visibly rather than wait on
	// input that will never arrive.

	if err := cmd.Run(); err != nil {
		return wrapStepError(s, err)
	}
	return nil
}

// wrapStepError converts a child-process failure into a CLIError
// carrying the child's exit status.
//
// Three cases:
//   - the child ran and exited non-zero → its exact exit code
//   - the child died without an exit code (signal) → ExitGeneralError,
//     matching shell $? conventions closely enough
//   - the child never started (binary missing) → ExitGeneralError
func wrapStepError(s Step, err error) error {
	code := model.ExitGeneralError

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && exitErr.ExitCode() > 0 {
		code = model.ExitCode(exitErr.ExitCode())
	}

	return model.WrapCLIError(code, fmt.Sprintf("step %q failed", s.Name), err)
}
