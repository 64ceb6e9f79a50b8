package launch

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/mmr-tortoise/runway/internal/config"
	"github.com/mmr-tortoise/runway/internal/model"
)

// BuildCommand expands the server command template for the target's
// mode into the final argv.
//
// Placeholders expanded in every template element:
//
//	{app}  → the application entry point reference (Config.App)
//	{addr} → the full bind address, e.g. "0.0.0.0:10000"
//	{port} → the bare port value
//
// The expansion is a pure function, so the exact launched command is
// testable without spawning anything.
func BuildCommand(cfg *config.Config, target model.Target) ([]string, error) {
	var template []string
	switch target.Mode {
	case model.ModeProduction:
		template = cfg.Servers.Production
	case model.ModeDevelopment:
		template = cfg.Servers.Development
	default:
		return nil, model.NewCLIError(model.ExitLaunchFailed,
			fmt.Sprintf("no server command for mode %q", target.Mode))
	}

	if len(template) == 0 {
		return nil, model.NewCLIError(model.ExitLaunchFailed,
			fmt.Sprintf("%s server command is empty", target.Mode))
	}

	replacer := strings.NewReplacer(
		"{app}", cfg.App,
		"{addr}", target.Addr(),
		"{port}", target.Port,
	)

	argv := make([]string, len(template))
	for i, elem := range template {
		argv[i] = replacer.Replace(elem)
	}

	if argv[0] == "" {
		return nil, model.NewCLIError(model.ExitLaunchFailed,
			fmt.Sprintf("%s server command expands to an empty binary", target.Mode))
	}
	return argv, nil
}

// ProcessLauncher performs the real process handoff for a resolved
// launch target.
//
// lookPath and execFn are injectable so the launcher's decision logic
// can be tested without replacing the test process. Production wiring
// uses exec.LookPath and the platform replaceProcess implementation.
type ProcessLauncher struct {
	// Config supplies the server command templates and the application
	// entry point.
	Config *config.Config

	lookPath func(file string) (string, error)
	execFn   func(binary string, argv []string, env []string) error
}

// NewProcessLauncher creates a launcher wired to the real PATH lookup
// and the platform's process-replacement primitive.
func NewProcessLauncher(cfg *config.Config) *ProcessLauncher {
	return &ProcessLauncher{
		Config:   cfg,
		lookPath: exec.LookPath,
		execFn:   replaceProcess,
	}
}

// Launch hands the process over to the server for the given target.
//
// On success it never returns: the orchestrator's code image is gone
// (Unix) or the process exits with the server's exit code (Windows
// emulation). A non-nil return therefore always means the handoff
// failed before the server took over — binary not found or the exec
// call refused — which is fatal with ExitLaunchFailed; there is no
// recovery path and no fallback server.
func (l *ProcessLauncher) Launch(target model.Target) error {
	argv, err := BuildCommand(l.Config, target)
	if err != nil {
		return err
	}

	binary, err := l.lookPath(argv[0])
	if err != nil {
		return model.WrapCLIError(model.ExitLaunchFailed,
			fmt.Sprintf("%s server binary %q not found", target.Mode, argv[0]), err)
	}

	// The server inherits the orchestrator's environment wholesale; it
	// reads the same ambient configuration the preparatory tools did.
	if err := l.execFn(binary, argv, os.Environ()); err != nil {
		return model.WrapCLIError(model.ExitLaunchFailed,
			fmt.Sprintf("failed to exec %s server", target.Mode), err)
	}

	// Unreachable on Unix. The Windows emulation path exits inside
	// execFn rather than returning.
	return nil
}
