package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rankrun.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, 4, cfg.Output.Decimals)
	assert.Equal(t, 10, cfg.Preview.Rows)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Empty(t, cfg.Report.Dir)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_EmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_File(t *testing.T) {
	path := writeTempConfig(t, `
output:
  decimals: 6
preview:
  rows: 3
log:
  level: debug
report:
  dir: out/reports
  keep: 20
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 6, cfg.Output.Decimals)
	assert.Equal(t, 3, cfg.Preview.Rows)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "out/reports", cfg.Report.Dir)
	assert.Equal(t, 20, cfg.Report.Keep)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := writeTempConfig(t, "output:\n  decimals: 2\n")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 2, cfg.Output.Decimals)
	assert.Equal(t, 10, cfg.Preview.Rows)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_MissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config")
}

func TestLoad_BadYAML(t *testing.T) {
	cfg, err := Load(writeTempConfig(t, "output: [unclosed"))
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config")
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantMsg string
	}{
		{"decimals too high", "output:\n  decimals: 11\n", "output.decimals"},
		{"decimals negative", "output:\n  decimals: -1\n", "output.decimals"},
		{"preview rows negative", "preview:\n  rows: -2\n", "preview.rows"},
		{"report keep negative", "report:\n  keep: -1\n", "report.keep"},
		{"unknown log level", "log:\n  level: loud\n", `unknown log.level "loud"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load(writeTempConfig(t, tt.content))
			assert.Nil(t, cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "invalid config")
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}
