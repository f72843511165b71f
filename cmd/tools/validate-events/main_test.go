package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir string) string {
	t.Helper()

	events := filepath.Join(dir, "2025-12-13.json")
	require.NoError(t, os.WriteFile(events, []byte(`{"events": [{
		"id": 77,
		"startTimestamp": 1765612800,
		"homeTeam": {"name": "Luke Littler", "shortName": null},
		"awayTeam": {"name": "Rob Cross", "shortName": "R. Cross"},
		"homeScore": {"current": 1},
		"awayScore": {"current": 2},
		"status": {"type": "inprogress"}
	}]}`), 0o644))

	cfg := fmt.Sprintf(`validator:
  utc_offset_hours: 1
  cases:
    - file: %q
      date: "2025-12-13"
    - file: %q
      date: "2025-12-13"
`, events, filepath.Join(dir, "missing.json"))
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(cfg), 0o644))
	return path
}

func TestRunWithConfigAndMetrics(t *testing.T) {
	cfgPath := writeConfig(t, t.TempDir())

	var buf bytes.Buffer
	err := run([]string{"-config", cfgPath, "-metrics"}, &buf)
	require.NoError(t, err)
	assert.Equal(t, 0, exitCode(err))

	out := buf.String()
	assert.Contains(t, out, "Matches on 2025-12-13 (after filtering): 1")
	assert.Contains(t, out, "Event 77: homeTeam shortName is NULL")
	assert.Contains(t, out, "ERROR processing ")
	assert.Contains(t, out, "NULL shortName: 1 occurrences")
	assert.Contains(t, out, "VALIDATION COMPLETE")
	assert.Contains(t, out, `sofascore_validator_findings_total{category="NULL shortName"} 1`)
	assert.Contains(t, out, `sofascore_validator_events_total{outcome="matched"} 1`)
}

func TestRunWithoutMetricsFlag(t *testing.T) {
	cfgPath := writeConfig(t, t.TempDir())

	var buf bytes.Buffer
	require.NoError(t, run([]string{"-config", cfgPath}, &buf))
	assert.NotContains(t, buf.String(), "sofascore_validator_findings_total")
}

func TestExitStatus(t *testing.T) {
	dir := t.TempDir()
	badCfg := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(badCfg, []byte("validator:\n  cases:\n    - file: x.json\n      date: 13.12.2025\n"), 0o644))

	tests := []struct {
		name string
		args []string
		want int
	}{
		{"missing config", []string{"-config", filepath.Join(dir, "missing.yaml")}, 1},
		{"invalid case date", []string{"-config", badCfg}, 1},
		{"unknown flag", []string{"-nope"}, 1},
		{"help", []string{"-h"}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			assert.Equal(t, tt.want, exitCode(run(tt.args, &buf)))
		})
	}
}
