package cli

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmr-tortoise/runway/internal/model"
)

// TestPrintModeText_Production verifies the human-readable mode report
// for a production target.
func TestPrintModeText_Production(t *testing.T) {
	var out bytes.Buffer

	printModeText(&out, model.ResolveTarget("10000"), true)

	report := out.String()
	assert.Contains(t, report, "production")
	assert.Contains(t, report, "0.0.0.0:10000")
	assert.Contains(t, report, `PORT is set to "10000"`)
	assert.Contains(t, report, "free to bind")
}

// TestPrintModeText_DevelopmentPortBusy verifies the development report
// and the busy-port wording.
func TestPrintModeText_DevelopmentPortBusy(t *testing.T) {
	var out bytes.Buffer

	printModeText(&out, model.ResolveTarget(""), false)

	report := out.String()
	assert.Contains(t, report, "development")
	assert.Contains(t, report, "0.0.0.0:8000")
	assert.Contains(t, report, "PORT is unset or empty")
	assert.Contains(t, report, "not currently bindable")
}

// TestPrintModeJSON verifies the structured report round-trips with the
// documented field names.
func TestPrintModeJSON(t *testing.T) {
	var out bytes.Buffer

	require.NoError(t, printModeJSON(&out, model.ResolveTarget("10000"), false))

	var report struct {
		Mode          string `json:"mode"`
		Port          string `json:"port"`
		Addr          string `json:"addr"`
		Reason        string `json:"reason"`
		PortAvailable bool   `json:"portAvailable"`
	}
	require.NoError(t, json.Unmarshal(out.Bytes(), &report))

	assert.Equal(t, "production", report.Mode)
	assert.Equal(t, "10000", report.Port)
	assert.Equal(t, "0.0.0.0:10000", report.Addr)
	assert.False(t, report.PortAvailable)
}

// TestNewRootCommand_Registration verifies the command tree: the root
// itself runs the pipeline (no args), with mode and step registered as
// subcommands.
func TestNewRootCommand_Registration(t *testing.T) {
	root := NewRootCommand()

	assert.Equal(t, "runway", root.Name())

	names := make([]string, 0, len(root.Commands()))
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	assert.Contains(t, names, "mode")
	assert.Contains(t, names, "step")
}
