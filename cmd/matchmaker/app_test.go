// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/AccelByte/extend-tiered-matchmaker/pkg/sink"
)

const requestsCSV = `requestID;playerID;premium;skillLevel;matchType
R1;A;true;80;L
R2;B;true;60;L
R3;C;true;70;L
R4;D;false;10;S
R5;E;false;20;S
R6;F;false;oops;S
`

func writeRequests(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "requests.csv")
	require.NoError(t, os.WriteFile(path, []byte(requestsCSV), 0o600))
	return path
}

func TestApp_Run(t *testing.T) {
	path := writeRequests(t)
	dir := t.TempDir()
	reportPath := filepath.Join(dir, "report.yaml")
	metricsPath := filepath.Join(dir, "metrics.prom")

	var out bytes.Buffer
	err := newApp(&out).Run([]string{
		"matchmaker",
		"--file", path,
		"--report", reportPath,
		"--metrics-file", metricsPath,
		"--log-level", "error",
	})
	require.NoError(t, err)

	output := out.String()
	assert.Contains(t, output, "Cycle 1:")
	assert.Contains(t, output, "LONG (30'): A(80) vs C(70)")
	assert.Contains(t, output, "MATCH - NON-PREMIUM - SHORT (10'): D(10) vs E(20)")
	assert.Contains(t, output, "2 matches in 1 cycles, 1 rejected requests")
	assert.Contains(t, output, "Unmatched: R2")

	raw, err := os.ReadFile(reportPath)
	require.NoError(t, err)
	var report sink.Report
	require.NoError(t, yaml.Unmarshal(raw, &report))
	assert.Len(t, report.Matches, 2)
	assert.Equal(t, 1, report.Summary.Cycles)
	assert.NotEmpty(t, report.TraceID)

	metricsText, err := os.ReadFile(metricsPath)
	require.NoError(t, err)
	assert.Contains(t, string(metricsText), "ab_tiered_mm_")
}

func TestApp_InvalidQuota(t *testing.T) {
	path := writeRequests(t)

	var out bytes.Buffer
	err := newApp(&out).Run([]string{"matchmaker", "--file", path, "--premium-quota", "0"})
	assert.Error(t, err)
}

func TestApp_MissingFile(t *testing.T) {
	var out bytes.Buffer
	err := newApp(&out).Run([]string{"matchmaker", "--file", filepath.Join(t.TempDir(), "no_such_requests_01J9.csv")})
	assert.Error(t, err)
}
