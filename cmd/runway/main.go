// Package main is the entry point for the runway startup orchestrator.
//
// This binary prepares a server process for traffic — applying
// persisted-state migrations and staging static assets — and then
// replaces itself with the server appropriate to its environment.
// It delegates all functionality to the internal/cli package, which
// defines cobra commands.
//
// Build-time variables (version, commit, date) are injected via ldflags
// during the release process. During development, they default to
// "dev", "none", and "unknown" respectively.
package main

import (
	"github.com/mmr-tortoise/runway/internal/cli"
)

// version, commit, and date are set at build time via ldflags.
// They provide binary identification for the --version flag output.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	cli.Version = version
	cli.Commit = commit
	cli.Date = date

	// Create the root command with all subcommands registered, then
	// execute it. Execute handles error formatting and exit codes. On a
	// successful run this never returns — the process image is replaced
	// by the launched server.
	rootCmd := cli.NewRootCommand()
	cli.Execute(rootCmd)
}
