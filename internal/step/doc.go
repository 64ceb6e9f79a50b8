// Package step models the preparatory steps of the startup pipeline:
// finite, blocking child-process invocations that must all succeed
// before the server may start.
//
// Each step is an opaque child tool (migration runner, static-asset
// collector) invoked via os/exec with stdout and stderr passed straight
// through to the orchestrator's own streams — on failure, operators see
// the tool's own diagnostics, not a re-wrapped summary.
//
// The Runner interface exists so the orchestration sequence can be
// tested with fake successes and failures without depending on the
// real tools.
package step
