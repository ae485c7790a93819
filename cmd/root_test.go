package cmd

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/bank-sim/bank-sim/sim"
	"github.com/bank-sim/bank-sim/sim/experiment"
)

func testOptions(replications int) experiment.Options {
	return experiment.Options{
		Config:       sim.DefaultConfig(),
		Horizon:      90000,
		Seed:         42,
		Replications: replications,
	}
}

// captureStdout runs fn and returns what it printed.
func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	old := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w

	fn()

	_ = w.Close()
	os.Stdout = old
	var buf bytes.Buffer
	_, _ = io.Copy(&buf, r)
	return buf.String()
}

func TestRunFlags_Defaults(t *testing.T) {
	// GIVEN the registered run flags
	flags := runCmd.Flags()

	// THEN defaults match the reference bank model
	tests := map[string]string{
		"horizon":          "90000",
		"seed":             "42",
		"arrival-mean":     "120",
		"service-time":     "60",
		"min-transactions": "1",
		"max-transactions": "100",
		"replications":     "1",
		"log":              "error",
		"trace-level":      "none",
	}
	for name, want := range tests {
		f := flags.Lookup(name)
		require.NotNil(t, f, "flag --%s must be registered", name)
		assert.Equal(t, want, f.DefValue, "default of --%s", name)
	}
}

func TestReport_Print_SingleReplication(t *testing.T) {
	// GIVEN a one-replication report
	report, err := runSimulation(testOptions(1))
	require.NoError(t, err)

	// WHEN printed
	output := captureStdout(t, report.Print)

	// THEN the statistics block appears on stdout
	assert.Contains(t, output, "Simulation Statistics")
	assert.Contains(t, output, "Clients Served")
}

func TestReport_Print_Replications(t *testing.T) {
	report, err := runSimulation(testOptions(3))
	require.NoError(t, err)

	output := captureStdout(t, report.Print)

	assert.Contains(t, output, "Replication Estimate")
	assert.Contains(t, output, "Replications           : 3")
}

func TestReport_WriteYAML_RoundTrips(t *testing.T) {
	// GIVEN a report
	report, err := runSimulation(testOptions(2))
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "results.yaml")

	// WHEN written as YAML
	require.NoError(t, report.WriteYAML(path))

	// THEN the file decodes with the expected fields
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var decoded map[string]any
	require.NoError(t, yaml.Unmarshal(data, &decoded))
	assert.Equal(t, 42, decoded["seed"])
	assert.Equal(t, 90000, decoded["horizon"])
	reps, ok := decoded["replications"].([]any)
	require.True(t, ok, "replications must be a list")
	assert.Len(t, reps, 2)
	first := reps[0].(map[string]any)
	assert.Contains(t, first, "clients_served")
	assert.Contains(t, first, "average_time_in_system")
	assert.NotContains(t, decoded, "systemtimes", "raw samples stay out of the report")
}

func TestReport_SaveHistogram_WritesPNG(t *testing.T) {
	// GIVEN a report with served clients
	report, err := runSimulation(testOptions(3))
	require.NoError(t, err)
	require.NotEmpty(t, report.SystemTimes)
	path := filepath.Join(t.TempDir(), "hist.png")

	// WHEN the histogram is saved
	require.NoError(t, report.SaveHistogram(path))

	// THEN a PNG file exists
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("\x89PNG")), "file must be a PNG")
}

func TestReport_SaveHistogram_NoData(t *testing.T) {
	opts := testOptions(1)
	opts.Horizon = 0
	report, err := runSimulation(opts)
	require.NoError(t, err)

	err = report.SaveHistogram(filepath.Join(t.TempDir(), "hist.png"))
	assert.Error(t, err)
}

func TestRunSimulation_InvalidOptions(t *testing.T) {
	opts := testOptions(0)
	_, err := runSimulation(opts)
	assert.Error(t, err)
}
