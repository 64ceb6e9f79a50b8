// step.go implements the "runway step" command.
//
// The step command runs a single configured preparatory step in
// isolation — an operational escape hatch for re-running migrations or
// asset staging by hand without going through the whole pipeline. Exit
// status propagation is identical to the pipeline: the child tool's
// exit code becomes runway's.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/mmr-tortoise/runway/internal/config"
	"github.com/mmr-tortoise/runway/internal/step"
)

// NewStepCommand creates the "step" cobra command.
// It is called from NewRootCommand to register as a subcommand.
func NewStepCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "step <name>",
		Short: "Run a single preparatory step by name",
		Long: `Run one configured preparatory step to completion, without the rest
of the pipeline and without launching a server.

The step's stdout and stderr pass straight through, and a non-zero
exit from the step's tool becomes runway's own exit status.

Examples:
  runway step migrate
  runway step collectstatic`,

		// Exactly one positional argument (step name) is required.
		Args: cobra.ExactArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			return runStep(cmd, args[0])
		},
	}

	return cmd
}

// runStep looks up the named step in the configuration and executes it.
func runStep(cmd *cobra.Command, name string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	s, err := cfg.FindStep(name)
	if err != nil {
		return err
	}

	VerboseLog("Running step %s", s)
	return step.NewCommandRunner().Run(cmd.Context(), s)
}
