// run.go implements the root command's action: the startup pipeline.
//
// This is runway's reason to exist — load the configuration from the
// environment, run every preparatory step fail-fast, then hand the
// process over to the server for the selected mode. On success this
// function never returns: the process image is the server's.
package cli

import (
	"context"

	"github.com/mmr-tortoise/runway/internal/boot"
	"github.com/mmr-tortoise/runway/internal/config"
	"github.com/mmr-tortoise/runway/internal/launch"
	"github.com/mmr-tortoise/runway/internal/step"
)

// runPipeline wires the real step runner and process launcher into the
// orchestrator and runs it against the environment-resolved target.
func runPipeline(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	target := cfg.Target()
	VerboseLog("Resolved %s mode on %s (%s)", target.Mode, target.Addr(), target.Reason())
	VerboseLog("Configured steps: %d", len(cfg.Steps))

	o := &boot.Orchestrator{
		Steps:    cfg.Steps,
		Runner:   step.NewCommandRunner(),
		Launcher: launch.NewProcessLauncher(cfg),
	}

	return o.Run(ctx, target)
}
