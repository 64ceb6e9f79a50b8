// file.go handles discovery and parsing of the optional project config
// file. Two formats are supported, matching the two config formats the
// surrounding tooling ecosystem uses: JSONC (comments and trailing
// commas stripped via github.com/tidwall/jsonc, then parsed with the
// standard encoding/json) and YAML (gopkg.in/yaml.v3).
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/mmr-tortoise/runway/internal/model"
	"github.com/mmr-tortoise/runway/internal/step"
)

// discoveryNames are the file names probed in the working directory, in
// preference order, when RUNWAY_CONFIG is not set.
var discoveryNames = []string{
	"runway.jsonc",
	"runway.json",
	"runway.yaml",
	"runway.yml",
}

// fileConfig is the raw on-disk config structure. Every field is
// optional; absent fields keep their built-in defaults. encoding/json
// and yaml.v3 both silently ignore unknown fields, which is the desired
// behavior for forward compatibility.
type fileConfig struct {
	// App is the application entry point reference (e.g. "mysite.wsgi").
	App string `json:"app" yaml:"app"`

	// Steps replaces the default preparatory step list when present.
	Steps []stepSpec `json:"steps" yaml:"steps"`

	// Production replaces the production server command template.
	Production []string `json:"production" yaml:"production"`

	// Development replaces the development server command template.
	Development []string `json:"development" yaml:"development"`
}

// stepSpec is the on-disk form of a preparatory step.
type stepSpec struct {
	Name    string   `json:"name" yaml:"name"`
	Command []string `json:"command" yaml:"command"`
}

// applyTo merges the file values over the given config. Only fields
// actually present in the file override; a file that sets nothing
// leaves the defaults intact.
func (f *fileConfig) applyTo(cfg *Config) {
	if f.App != "" {
		cfg.App = f.App
	}
	if f.Steps != nil {
		steps := make([]step.Step, 0, len(f.Steps))
		for _, s := range f.Steps {
			steps = append(steps, step.Step{Name: s.Name, Command: s.Command})
		}
		cfg.Steps = steps
	}
	if f.Production != nil {
		cfg.Servers.Production = f.Production
	}
	if f.Development != nil {
		cfg.Servers.Development = f.Development
	}
}

// loadFile locates and parses the config file.
//
// When explicitPath is set (RUNWAY_CONFIG), that file must exist — a
// missing explicit path is a configuration error, not a fallback.
// Otherwise the working directory is probed for the discovery names
// and a nil fileConfig (no error) is returned when none exists.
func loadFile(explicitPath string) (*fileConfig, error) {
	path := explicitPath
	if path == "" {
		path = discover()
		if path == "" {
			return nil, nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, model.WrapCLIError(model.ExitConfigInvalid,
				fmt.Sprintf("config file not found: %s", path), err)
		}
		return nil, model.WrapCLIError(model.ExitConfigInvalid,
			fmt.Sprintf("failed to read config file %s", path), err)
	}

	var fc fileConfig
	if isYAML(path) {
		if err := yaml.Unmarshal(data, &fc); err != nil {
			return nil, model.WrapCLIError(model.ExitConfigInvalid,
				fmt.Sprintf("failed to parse config file %s", path), err)
		}
		return &fc, nil
	}

	// Strip JSONC comments and trailing commas before parsing with the
	// standard library. Plain JSON passes through jsonc.ToJSON unchanged.
	if err := json.Unmarshal(jsonc.ToJSON(data), &fc); err != nil {
		return nil, model.WrapCLIError(model.ExitConfigInvalid,
			fmt.Sprintf("failed to parse config file %s", path), err)
	}
	return &fc, nil
}

// discover probes the working directory for a config file and returns
// the first discovery name that exists, or "" when none does.
func discover() string {
	for _, name := range discoveryNames {
		if _, err := os.Stat(name); err == nil {
			return name
		}
	}
	return ""
}

// isYAML reports whether the path should be parsed as YAML rather than
// JSONC, based on its extension.
func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	default:
		return false
	}
}
