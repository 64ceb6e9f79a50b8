// Package model defines the domain types and value objects for the
// runway startup orchestrator.
//
// This package contains pure data structures with no external dependencies.
// The central type is Target, the tagged variant produced by resolving the
// PORT environment variable into a {development, production} run mode.
//
// The package also defines exit codes (ExitCode) and a custom error type
// (CLIError) that carries exit codes for proper OS process exit handling.
// Preparatory-step failures reuse CLIError with the child tool's own exit
// status, so the orchestrator propagates it unchanged.
package model
