package launch

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmr-tortoise/runway/internal/config"
	"github.com/mmr-tortoise/runway/internal/model"
	"github.com/mmr-tortoise/runway/internal/step"
)

// testConfig returns a config with the default-style server templates,
// built inline so these tests do not depend on environment or files.
func testConfig() *config.Config {
	return &config.Config{
		App: "mysite.wsgi",
		Steps: []step.Step{
			{Name: "migrate", Command: []string{"true"}},
		},
		Servers: config.ServerCommands{
			Production:  []string{"gunicorn", "{app}", "--bind", "{addr}"},
			Development: []string{"python", "manage.py", "runserver", "{addr}"},
		},
	}
}

// TestBuildCommand_Production verifies placeholder expansion for the
// production template: the app reference and the wildcard bind address
// with the exact PORT value.
func TestBuildCommand_Production(t *testing.T) {
	argv, err := BuildCommand(testConfig(), model.ResolveTarget("10000"))

	require.NoError(t, err)
	assert.Equal(t, []string{"gunicorn", "mysite.wsgi", "--bind", "0.0.0.0:10000"}, argv)
}

// TestBuildCommand_Development verifies the development template binds
// all interfaces on the fixed default port 8000.
func TestBuildCommand_Development(t *testing.T) {
	argv, err := BuildCommand(testConfig(), model.ResolveTarget(""))

	require.NoError(t, err)
	assert.Equal(t, []string{"python", "manage.py", "runserver", "0.0.0.0:8000"}, argv)
}

// TestBuildCommand_PortPlaceholder verifies the bare {port} placeholder
// for server commands that take the port and address separately.
func TestBuildCommand_PortPlaceholder(t *testing.T) {
	cfg := testConfig()
	cfg.Servers.Production = []string{"serve", "--port", "{port}", "--host", "0.0.0.0"}

	argv, err := BuildCommand(cfg, model.ResolveTarget("9090"))

	require.NoError(t, err)
	assert.Equal(t, []string{"serve", "--port", "9090", "--host", "0.0.0.0"}, argv)
}

// TestBuildCommand_EmptyTemplate verifies that an empty server template
// is reported as a launch failure rather than producing an empty argv.
func TestBuildCommand_EmptyTemplate(t *testing.T) {
	cfg := testConfig()
	cfg.Servers.Development = nil

	_, err := BuildCommand(cfg, model.ResolveTarget(""))

	require.Error(t, err)
	var cliErr *model.CLIError
	require.True(t, errors.As(err, &cliErr))
	assert.Equal(t, model.ExitLaunchFailed, cliErr.Code)
}

// TestProcessLauncher_ExecsResolvedCommand verifies that Launch resolves
// the binary on PATH and passes the fully expanded argv to the exec
// primitive, with argv[0] left as the template's binary name.
func TestProcessLauncher_ExecsResolvedCommand(t *testing.T) {
	var gotBinary string
	var gotArgv []string

	l := &ProcessLauncher{
		Config:   testConfig(),
		lookPath: func(file string) (string, error) { return "/usr/bin/" + file, nil },
		execFn: func(binary string, argv []string, env []string) error {
			gotBinary = binary
			gotArgv = argv
			return nil
		},
	}

	err := l.Launch(model.ResolveTarget("10000"))

	require.NoError(t, err)
	assert.Equal(t, "/usr/bin/gunicorn", gotBinary)
	assert.Equal(t, []string{"gunicorn", "mysite.wsgi", "--bind", "0.0.0.0:10000"}, gotArgv)
}

// TestProcessLauncher_BinaryNotFound verifies that a missing server
// binary surfaces as ExitLaunchFailed — fatal, with no fallback.
func TestProcessLauncher_BinaryNotFound(t *testing.T) {
	l := &ProcessLauncher{
		Config:   testConfig(),
		lookPath: func(file string) (string, error) { return "", errors.New("not found") },
		execFn: func(binary string, argv []string, env []string) error {
			t.Fatal("exec must not be attempted when the binary is missing")
			return nil
		},
	}

	err := l.Launch(model.ResolveTarget(""))

	require.Error(t, err)
	var cliErr *model.CLIError
	require.True(t, errors.As(err, &cliErr))
	assert.Equal(t, model.ExitLaunchFailed, cliErr.Code)
}

// TestProcessLauncher_ExecRefused verifies that a refused exec call is
// reported as a launch failure rather than swallowed.
func TestProcessLauncher_ExecRefused(t *testing.T) {
	l := &ProcessLauncher{
		Config:   testConfig(),
		lookPath: func(file string) (string, error) { return "/usr/bin/" + file, nil },
		execFn: func(binary string, argv []string, env []string) error {
			return errors.New("exec format error")
		},
	}

	err := l.Launch(model.ResolveTarget("10000"))

	require.Error(t, err)
	var cliErr *model.CLIError
	require.True(t, errors.As(err, &cliErr))
	assert.Equal(t, model.ExitLaunchFailed, cliErr.Code)
	assert.Contains(t, cliErr.Message, "production")
}
