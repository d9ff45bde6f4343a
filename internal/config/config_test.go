package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMustLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := []byte("log_level: debug\nlog_json: true\nsnapshot: board.json\nmetrics_addr: :9102\n")
	require.NoError(t, os.WriteFile(path, content, 0o644))

	cfg := MustLoad(path)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.LogJSON)
	assert.Equal(t, "board.json", cfg.Snapshot)
	assert.Equal(t, ":9102", cfg.MetricsAddr)
}

func TestMustLoadKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log_json: false\n"), 0o644))

	cfg := MustLoad(path)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestMustLoadMissingFilePanics(t *testing.T) {
	assert.Panics(t, func() { MustLoad("/nonexistent/config.yaml") })
}
