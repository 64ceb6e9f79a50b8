// Package config loads the runway configuration from the process
// environment and an optional project config file.
//
// Configuration is re-derived on every run; nothing is persisted. The
// environment snapshot is parsed with github.com/caarlos0/env into a
// typed struct. PORT is the single variable with control-flow
// significance — its presence selects production mode, its absence
// development mode.
//
// The optional config file (runway.jsonc, runway.json, runway.yaml, or
// runway.yml in the working directory) overrides the default
// preparatory steps and server command templates. JSONC is supported
// via github.com/tidwall/jsonc; YAML via gopkg.in/yaml.v3. With no
// config file present, the defaults reproduce the classic Django
// container entrypoint: migrate, collectstatic, then gunicorn or
// runserver.
package config
