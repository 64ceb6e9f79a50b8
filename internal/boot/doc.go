// Package boot implements the startup orchestration pipeline: a
// deterministic, fail-fast sequence of preparatory steps followed by a
// process handoff to exactly one server.
//
// The pipeline is strictly sequential and single-threaded. Each
// preparatory step blocks until its child tool exits; the first
// non-zero outcome aborts the whole sequence, propagating the child's
// exit status as the orchestrator's own. Only after every step succeeds
// does the orchestrator log the selected run mode and hand the process
// over to the server — a terminal action that never returns on success.
//
// The step runner and launcher are injected, so the sequencing
// contract is tested with fakes rather than real migration or asset
// tools.
package boot
