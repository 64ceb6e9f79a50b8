// mode.go implements the "runway mode" command.
//
// The mode command answers "what would runway launch right now, and
// would the bind succeed" without running any preparatory step or
// launching anything. It resolves the target from the environment the
// same way the pipeline does and probes the listen port.
package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/mmr-tortoise/runway/internal/config"
	"github.com/mmr-tortoise/runway/internal/model"
	"github.com/mmr-tortoise/runway/internal/port"
)

// NewModeCommand creates the "mode" cobra command.
// It is called from NewRootCommand to register as a subcommand.
func NewModeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mode",
		Short: "Show the run mode the current environment selects",
		Long: `Resolve and display the launch target for the current environment
without running any step or launching a server.

Reports the selected mode (production when PORT is set and non-empty,
development otherwise), the bind address, and whether the listen port
is currently free to bind.

Examples:
  runway mode
  PORT=10000 runway mode --json`,

		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			return runMode(cmd.OutOrStdout())
		},
	}

	return cmd
}

// runMode resolves the launch target and prints the report.
func runMode(out io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	target := cfg.Target()
	available := port.NewScanner().Available(target.Port)

	if IsJSONOutput() {
		return printModeJSON(out, target, available)
	}
	printModeText(out, target, available)
	return nil
}

// printModeJSON outputs the mode report as structured JSON.
func printModeJSON(out io.Writer, target model.Target, available bool) error {
	report := struct {
		Mode          string `json:"mode"`
		Port          string `json:"port"`
		Addr          string `json:"addr"`
		Reason        string `json:"reason"`
		PortAvailable bool   `json:"portAvailable"`
	}{
		Mode:          target.Mode.String(),
		Port:          target.Port,
		Addr:          target.Addr(),
		Reason:        target.Reason(),
		PortAvailable: available,
	}

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(out, string(data))
	return nil
}

// printModeText outputs the mode report as human-readable text.
func printModeText(out io.Writer, target model.Target, available bool) {
	fmt.Fprintf(out, "Mode:    %s (%s)\n", target.Mode, target.Reason())
	fmt.Fprintf(out, "Address: %s\n", target.Addr())
	if available {
		fmt.Fprintf(out, "Port:    free to bind\n")
	} else {
		fmt.Fprintf(out, "Port:    not currently bindable\n")
	}
}
