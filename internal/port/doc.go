// Package port implements a listen-port availability probe for the
// runway CLI.
//
// The probe asks the operating system directly via net.Listen rather
// than parsing /proc/net/* or shelling out to lsof/ss, and binds all
// interfaces because that is the address the launched server will bind.
//
// It is diagnostics only, surfaced through `runway mode`: the startup
// pipeline itself never gates the launch on it, because the launch
// step does not fail from the orchestrator's perspective — a port
// already in use is the server's own bind error to report.
package port
