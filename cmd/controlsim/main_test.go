package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v2"

	"github.com/iotaledger/controlactions/scenario"
)

const testScenario = `
controls:
  - name: submit
actions:
  - name: A
    control: submit
    events: [touchUpInside]
  - name: B
    control: submit
    events: [touchUpOutside]
steps:
  - op: tap
    control: submit
  - op: remove
    action: A
  - op: tap
    control: submit
`

func writeFile(t *testing.T, name string, content string) string {
	filePath := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(filePath, []byte(content), 0o600))

	return filePath
}

func TestRun_PrintsYAMLReport(t *testing.T) {
	scenarioPath := writeFile(t, "scenario.yaml", testScenario)

	var out bytes.Buffer
	require.NoError(t, run(context.Background(), []string{"--scenario", scenarioPath, "--report.format", "yaml", "--logger.level", "error"}, &out))

	report := new(scenario.Report)
	require.NoError(t, yaml.Unmarshal(out.Bytes(), report))
	require.Equal(t, map[string]int{"A": 1, "B": 0}, report.TriggerCounts())
}

func TestRun_ConfigFile(t *testing.T) {
	scenarioPath := writeFile(t, "scenario.yaml", testScenario)
	configPath := writeFile(t, "config.toml", `
scenario = "`+filepath.ToSlash(scenarioPath)+`"

[report]
format = "yaml"

[logger]
level = "warn"
`)

	var out bytes.Buffer
	require.NoError(t, run(context.Background(), []string{"-c", configPath}, &out))
	require.Contains(t, out.String(), "triggerCount: 1")

	// flags override the configuration file
	out.Reset()
	require.NoError(t, run(context.Background(), []string{"-c", configPath, "--report.format", "text"}, &out))
	require.Contains(t, out.String(), "triggered 1")
}

func TestRun_EnvironmentVariables(t *testing.T) {
	t.Setenv("CONTROLSIM_SCENARIO", writeFile(t, "scenario.yaml", testScenario))
	t.Setenv("CONTROLSIM_REPORT_FORMAT", "text")

	var out bytes.Buffer
	require.NoError(t, run(context.Background(), nil, &out))
	require.Contains(t, out.String(), "control submit")
}

func TestRun_Errors(t *testing.T) {
	require.Error(t, run(context.Background(), nil, &bytes.Buffer{}), "missing scenario")
	require.Error(t, run(context.Background(), []string{"--unknown"}, &bytes.Buffer{}))

	scenarioPath := writeFile(t, "scenario.yaml", testScenario)
	err := run(context.Background(), []string{"-s", scenarioPath, "--report.format", "xml"}, &bytes.Buffer{})
	require.ErrorIs(t, err, ErrUnknownReportFormat)
}
