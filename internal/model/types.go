// Package model defines the domain types for the runway CLI.
//
// Key design decision: the orchestrator holds no state across invocations.
// Everything in this package is re-derived from the environment snapshot
// taken at startup; there are no persistent state files.
package model

import (
	"fmt"
	"strings"
)

// Mode represents the run mode of the server process that runway hands
// control over to. Exactly one mode is selected per invocation.
type Mode string

const (
	// ModeDevelopment indicates a local/development deployment: the
	// lightweight development server on the fixed default port.
	ModeDevelopment Mode = "development"

	// ModeProduction indicates a production/cloud deployment: the
	// production-grade server on the host-provided port.
	ModeProduction Mode = "production"
)

// String returns the string representation of Mode.
// This method satisfies the fmt.Stringer interface, enabling
// human-readable output in CLI commands and logging.
func (m Mode) String() string {
	return string(m)
}

// IsValid checks whether the Mode value is one of the predefined modes.
func (m Mode) IsValid() bool {
	switch m {
	case ModeDevelopment, ModeProduction:
		return true
	default:
		return false
	}
}

// ParseMode converts a string to a Mode.
// Returns an error if the string does not match any valid mode.
func ParseMode(s string) (Mode, error) {
	mode := Mode(strings.ToLower(s))
	if !mode.IsValid() {
		return "", fmt.Errorf("invalid mode: %q (valid: development, production)", s)
	}
	return mode, nil
}

// DefaultDevelopmentPort is the fixed listen port used in development
// mode when PORT is unset or empty.
const DefaultDevelopmentPort = "8000"

// WildcardHost is the bind host for both modes. The launched server
// always listens on all network interfaces.
const WildcardHost = "0.0.0.0"

// Target is the resolved launch target: which server to run and on
// which port. It is the tagged variant produced by ResolveTarget and
// consumed by the launcher.
type Target struct {
	// Mode is the selected run mode (development or production).
	Mode Mode `json:"mode"`

	// Port is the listen port, carried verbatim. In production mode
	// this is the exact PORT value from the environment; in development
	// mode it is DefaultDevelopmentPort.
	Port string `json:"port"`
}

// Addr returns the full bind address in "host:port" form.
// Both modes bind the wildcard address.
func (t Target) Addr() string {
	return WildcardHost + ":" + t.Port
}

// Reason returns a human-readable explanation of why this target was
// selected. It is printed before the launch so operators can tell from
// the logs which branch was taken and why.
func (t Target) Reason() string {
	if t.Mode == ModeProduction {
		return fmt.Sprintf("PORT is set to %q", t.Port)
	}
	return "PORT is unset or empty"
}

// ResolveTarget maps the PORT environment value to a launch target.
//
// This is a pure function from the environment snapshot to the mode
// variant, so the branch is unit-testable without invoking any real
// child process:
//
//   - port non-empty → production mode on that exact port value
//   - port empty     → development mode on port 8000
//
// The value is not trimmed, parsed, or range-checked. A PORT of " " or
// "banana" selects production and is forwarded verbatim; a malformed
// port is the launched server's bind error to report, not a new error
// condition of the orchestrator.
func ResolveTarget(port string) Target {
	if port != "" {
		return Target{Mode: ModeProduction, Port: port}
	}
	return Target{Mode: ModeDevelopment, Port: DefaultDevelopmentPort}
}

// ExitCode defines the CLI exit codes runway can produce on its own.
// Preparatory-step failures do NOT use these: the child tool's exit
// status is propagated unchanged via CLIError.Code.
type ExitCode int

const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess ExitCode = 0

	// ExitGeneralError indicates an unspecified error occurred. It is
	// also the fallback for a step child that terminated without an
	// exit code (e.g. killed by a signal).
	ExitGeneralError ExitCode = 1

	// ExitConfigInvalid indicates the runway configuration (environment
	// or config file) could not be loaded or failed validation.
	ExitConfigInvalid ExitCode = 2

	// ExitLaunchFailed indicates the final process handoff failed: the
	// server binary was not found or the exec call was refused. This is
	// fatal and unrecoverable; no fallback server is attempted.
	ExitLaunchFailed ExitCode = 3

	// ExitStepNotFound indicates a step name given to `runway step`
	// does not match any configured preparatory step.
	ExitStepNotFound ExitCode = 4
)

// CLIError is a custom error type that carries an exit code.
// This allows the CLI layer to translate domain errors into
// appropriate process exit codes. For preparatory-step failures the
// code is the child tool's own exit status, which the orchestrator
// adopts as its own per the fail-fast contract.
type CLIError struct {
	// Code is the exit code to return to the OS.
	Code ExitCode

	// Message is the human-readable error description.
	Message string

	// Err is the underlying error, if any.
	Err error
}

// Error satisfies the error interface. It returns the human-readable
// error message, optionally including the underlying error.
func (e *CLIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for use with errors.Is/errors.As.
func (e *CLIError) Unwrap() error {
	return e.Err
}

// NewCLIError creates a new CLIError with the given exit code and message.
func NewCLIError(code ExitCode, message string) *CLIError {
	return &CLIError{Code: code, Message: message}
}

// WrapCLIError creates a new CLIError that wraps an existing error.
func WrapCLIError(code ExitCode, message string, err error) *CLIError {
	return &CLIError{Code: code, Message: message, Err: err}
}
