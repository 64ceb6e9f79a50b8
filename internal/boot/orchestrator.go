package boot

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/mmr-tortoise/runway/internal/model"
	"github.com/mmr-tortoise/runway/internal/step"
)

// Launcher performs the final process handoff for a resolved target.
//
// On success Launch never returns — the orchestrator's process becomes
// the server's. A non-nil return means the handoff failed before the
// server took over.
type Launcher interface {
	Launch(target model.Target) error
}

// Orchestrator runs the startup pipeline. It holds no state across
// invocations; everything it needs arrives through its fields and the
// Run arguments.
type Orchestrator struct {
	// Steps are the ordered preparatory steps. All must succeed, in
	// order, before the server is launched.
	Steps []step.Step

	// Runner executes individual steps. Injected so the sequencing
	// contract is testable with fake successes and failures.
	Runner step.Runner

	// Launcher performs the process handoff once all steps succeed.
	Launcher Launcher

	// Out receives the ordered progress lines. Defaults to os.Stdout.
	Out io.Writer
}

// out returns the progress writer, defaulting to os.Stdout.
func (o *Orchestrator) out() io.Writer {
	if o.Out != nil {
		return o.Out
	}
	return os.Stdout
}

// Run executes the pipeline for the given target.
//
// For each preparatory step it prints a progress line, then blocks on
// the step. The first failure is terminal: Run returns immediately with
// the step's error (carrying the child's exit status) and no further
// step runs, no server is launched. No retries, no rollback, no
// partial-state reconciliation.
//
// After all steps succeed, Run prints one line naming the selected mode
// and why it was chosen, then invokes the launcher. On a successful
// handoff Run never returns.
func (o *Orchestrator) Run(ctx context.Context, target model.Target) error {
	for _, s := range o.Steps {
		fmt.Fprintf(o.out(), "Running %s...\n", s.Name)
		if err := o.Runner.Run(ctx, s); err != nil {
			return err
		}
	}

	fmt.Fprintf(o.out(), "Starting %s server on %s (%s)\n",
		target.Mode, target.Addr(), target.Reason())

	return o.Launcher.Launch(target)
}
