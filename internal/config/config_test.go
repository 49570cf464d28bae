package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	path := writeConfig(t, `
env: local
input:
  records_path: records.xls
holidays: ["06/04", "10/10"]
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ModeBatch, cfg.Mode)
	assert.Equal(t, 2, cfg.Input.RecordsSheet)
	assert.Equal(t, 1, cfg.Input.CoverSheet)
	assert.Equal(t, 220.0, cfg.Pay.BaseHourly)
	assert.Equal(t, 1.34, cfg.Pay.Tier2Multiplier)
	assert.Equal(t, 1.67, cfg.Pay.Tier3Multiplier)
	assert.Equal(t, 2.0, cfg.Pay.HolidayFactor)
	assert.Equal(t, 35.0, cfg.Pay.TransitionFlat)
	assert.Equal(t, 650.0, cfg.Pay.SecondaryFlat)
	assert.Equal(t, []string{"06/04", "10/10"}, cfg.Holidays)
	assert.Equal(t, 30*time.Second, cfg.HTTPServer.Timeout)
	assert.Equal(t, "care_payroll", cfg.Metrics.JobName)
}

func TestLoad_Errors(t *testing.T) {
	tests := map[string]string{
		"MissingRecordsInBatch": "env: local\n",
		"UnknownMode":           "mode: stream\n",
	}

	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeConfig(t, body))
			assert.Error(t, err)
		})
	}

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "does not exist")
}

func TestLoad_ServerWithoutInput(t *testing.T) {
	cfg, err := Load(writeConfig(t, "mode: server\nhttp_server:\n  address: \":8080\"\n"))
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Address)
}
