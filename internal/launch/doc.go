// Package launch builds the server command for the selected run mode
// and performs the final process handoff.
//
// The handoff is process-image substitution: on Unix platforms the
// orchestrator calls syscall.Exec, so its process identity becomes the
// server's and no parent is left to supervise it. On Windows, where no
// exec-style primitive exists, the handoff is emulated — the server
// runs as a child with inherited standard streams, and the orchestrator
// exits with the child's exit code the moment it terminates, executing
// no further code of its own.
//
// Server commands are argv templates from the configuration with
// {app}, {addr}, and {port} placeholders, expanded against the resolved
// launch target.
package launch
