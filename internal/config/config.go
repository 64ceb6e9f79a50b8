package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"

	"github.com/mmr-tortoise/runway/internal/model"
	"github.com/mmr-tortoise/runway/internal/step"
)

// Settings is the typed environment snapshot, parsed once at startup
// by caarlos0/env. Environment variables are always readable (absent
// equals empty), so parsing cannot fail on missing values.
type Settings struct {
	// Port is the listen-port setting. Non-empty selects production
	// mode on that exact value; empty selects development mode on the
	// fixed default port.
	Port string `env:"PORT"`

	// AppModule overrides the application entry point passed to the
	// production server (e.g. "mysite.wsgi").
	AppModule string `env:"APP_MODULE"`

	// ConfigFile is an explicit config file path. When set, automatic
	// discovery in the working directory is skipped and a missing file
	// is an error rather than a silent fallback to defaults.
	ConfigFile string `env:"RUNWAY_CONFIG"`
}

// ServerCommands holds the per-mode launch command templates. Each
// template is an argv whose elements may contain the placeholders
// {app}, {addr}, and {port}, expanded at launch time.
type ServerCommands struct {
	// Production is the production-grade server command template.
	Production []string `json:"production" yaml:"production"`

	// Development is the lightweight development server command template.
	Development []string `json:"development" yaml:"development"`
}

// Config is the fully resolved runway configuration: environment
// snapshot merged over file overrides merged over built-in defaults.
type Config struct {
	// Port is the raw PORT value from the environment. Empty means
	// development mode.
	Port string

	// App is the application entry point reference handed to the
	// production server via the {app} placeholder.
	App string

	// Steps are the ordered preparatory steps. Each must complete
	// successfully before the server may start.
	Steps []step.Step

	// Servers are the per-mode launch command templates.
	Servers ServerCommands
}

// defaultConfig returns the built-in configuration mirroring the
// original container entrypoint: apply migrations, stage static assets
// non-interactively, then hand off to gunicorn (production) or the
// framework development server. The --noinput flag is part of the
// default on purpose — any prompt from the asset collector is a hang,
// not a valid state.
func defaultConfig() *Config {
	return &Config{
		App: "app.wsgi",
		Steps: []step.Step{
			{Name: "migrate", Command: []string{"python", "manage.py", "migrate"}},
			{Name: "collectstatic", Command: []string{"python", "manage.py", "collectstatic", "--noinput"}},
		},
		Servers: ServerCommands{
			Production:  []string{"gunicorn", "{app}", "--bind", "{addr}"},
			Development: []string{"python", "manage.py", "runserver", "{addr}"},
		},
	}
}

// Load builds the effective configuration: parse the environment
// snapshot, locate and apply the optional config file, then validate.
//
// Returns a model.CLIError with ExitConfigInvalid on any load or
// validation failure.
func Load() (*Config, error) {
	var settings Settings
	if err := env.Parse(&settings); err != nil {
		return nil, model.WrapCLIError(model.ExitConfigInvalid, "failed to parse environment", err)
	}
	return LoadWithSettings(settings)
}

// LoadWithSettings builds the effective configuration from an explicit
// environment snapshot. Split out from Load so the merge order is
// testable without mutating the process environment.
func LoadWithSettings(settings Settings) (*Config, error) {
	cfg := defaultConfig()

	fc, err := loadFile(settings.ConfigFile)
	if err != nil {
		return nil, err
	}
	if fc != nil {
		fc.applyTo(cfg)
	}

	// Environment values take precedence over file values.
	cfg.Port = settings.Port
	if settings.AppModule != "" {
		cfg.App = settings.AppModule
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Target resolves the launch target from the configured PORT value.
func (c *Config) Target() model.Target {
	return model.ResolveTarget(c.Port)
}

// FindStep returns the configured preparatory step with the given name.
// Returns a CLIError with ExitStepNotFound if no step matches.
func (c *Config) FindStep(name string) (step.Step, error) {
	for _, s := range c.Steps {
		if s.Name == name {
			return s, nil
		}
	}
	names := make([]string, 0, len(c.Steps))
	for _, s := range c.Steps {
		names = append(names, s.Name)
	}
	return step.Step{}, model.NewCLIError(model.ExitStepNotFound,
		fmt.Sprintf("unknown step %q (configured steps: %s)", name, strings.Join(names, ", ")))
}

// Validate checks the configuration for structural problems before the
// pipeline runs. Every step needs a name and a non-empty command, step
// names must be unique (they are addressable via `runway step <name>`),
// and both server command templates must be non-empty.
func (c *Config) Validate() error {
	seen := make(map[string]bool, len(c.Steps))
	for i, s := range c.Steps {
		if s.Name == "" {
			return model.NewCLIError(model.ExitConfigInvalid,
				fmt.Sprintf("step %d has no name", i))
		}
		if len(s.Command) == 0 || s.Command[0] == "" {
			return model.NewCLIError(model.ExitConfigInvalid,
				fmt.Sprintf("step %q has an empty command", s.Name))
		}
		if seen[s.Name] {
			return model.NewCLIError(model.ExitConfigInvalid,
				fmt.Sprintf("duplicate step name %q", s.Name))
		}
		seen[s.Name] = true
	}

	if len(c.Servers.Production) == 0 {
		return model.NewCLIError(model.ExitConfigInvalid, "production server command is empty")
	}
	if len(c.Servers.Development) == 0 {
		return model.NewCLIError(model.ExitConfigInvalid, "development server command is empty")
	}
	return nil
}
