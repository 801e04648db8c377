package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	networkFixture  = "../../internal/netfile/testdata/levadas.txt"
	requestsFixture = "../../internal/netfile/testdata/requests.txt"
)

const wantReport = `# Caldeirão Verde - Barreiro
Caldeirão Verde->Tornos->Barreiro, 40
Caldeirão Verde->Barreiro, 70
# Tornos - Rabaçal
Tornos and Rabaçal do not communicate
# Pico Ruivo - Tornos
Pico Ruivo out of the network`

func TestRun_WritesReport(t *testing.T) {
	t.Setenv("LOG_LEVEL", "error")
	dir := t.TempDir()
	var stderr bytes.Buffer

	code := run(context.Background(), []string{
		"-results-dir", dir,
		"-workers", "2",
		networkFixture, requestsFixture, "out.txt",
	}, &stderr)
	require.Equal(t, exitOK, code, stderr.String())

	data, err := os.ReadFile(filepath.Join(dir, "out.txt"))
	require.NoError(t, err)
	assert.Equal(t, wantReport, string(data))
}

func TestRun_BOMAndLogFile(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, "run.log")
	var stderr bytes.Buffer

	code := run(context.Background(), []string{
		"-results-dir", dir,
		"-bom",
		"-log-file", logPath,
		networkFixture, requestsFixture, "out.txt",
	}, &stderr)
	require.Equal(t, exitOK, code, stderr.String())

	data, err := os.ReadFile(filepath.Join(dir, "out.txt"))
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte{0xEF, 0xBB, 0xBF}))

	logged, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(logged), `"run_id"`)
	assert.Contains(t, string(logged), `"message":"results written"`)
	assert.Contains(t, stderr.String(), "results written")
}

func TestRun_UsageErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"no arguments", nil},
		{"two arguments", []string{networkFixture, requestsFixture}},
		{"unknown flag", []string{"-nope", networkFixture, requestsFixture, "out.txt"}},
		{"zero k", []string{"-k", "0", networkFixture, requestsFixture, "out.txt"}},
		{"bad log level", []string{"-log-level", "loud", networkFixture, requestsFixture, "out.txt"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stderr bytes.Buffer
			args := append([]string{"-results-dir", t.TempDir()}, tt.args...)
			assert.Equal(t, exitUsage, run(context.Background(), args, &stderr))
			assert.NotEmpty(t, stderr.String())
		})
	}
}

func TestRun_Help(t *testing.T) {
	var stderr bytes.Buffer
	assert.Equal(t, exitOK, run(context.Background(), []string{"-h"}, &stderr))
	assert.Contains(t, stderr.String(), "usage: pathfinder")
}

func TestRun_Failures(t *testing.T) {
	dir := t.TempDir()
	broken := filepath.Join(dir, "broken.txt")
	require.NoError(t, os.WriteFile(broken, []byte("header\nL1 without separators\n"), 0o644))

	tests := []struct {
		name string
		args []string
	}{
		{"missing network", []string{filepath.Join(dir, "none.txt"), requestsFixture, "out.txt"}},
		{"missing requests", []string{networkFixture, filepath.Join(dir, "none.txt"), "out.txt"}},
		{"malformed network", []string{broken, requestsFixture, "out.txt"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stderr bytes.Buffer
			args := append([]string{"-results-dir", dir}, tt.args...)
			assert.Equal(t, exitFailure, run(context.Background(), args, &stderr))
			assert.Contains(t, stderr.String(), "pathfinder failed")
		})
	}
}

func TestRun_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var stderr bytes.Buffer

	code := run(ctx, []string{"-results-dir", t.TempDir(), networkFixture, requestsFixture, "out.txt"}, &stderr)
	assert.Equal(t, exitFailure, code)
}
