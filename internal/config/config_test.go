package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "recon.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name          string
		content       string
		wantTolerance string
		wantPrecision int32
		wantErr       bool
	}{
		{
			name:          "full config",
			content:       "tolerance: \"0.05\"\ncurrency_precision: 3\n",
			wantTolerance: "0.05",
			wantPrecision: 3,
		},
		{
			name:          "missing fields keep defaults",
			content:       "tolerance: \"0.02\"\n",
			wantTolerance: "0.02",
			wantPrecision: 2,
		},
		{
			name:          "empty file keeps all defaults",
			content:       "",
			wantTolerance: "0.01",
			wantPrecision: 2,
		},
		{
			name:    "invalid tolerance",
			content: "tolerance: \"one cent\"\n",
			wantErr: true,
		},
		{
			name:    "negative tolerance",
			content: "tolerance: \"-0.01\"\n",
			wantErr: true,
		},
		{
			name:    "negative precision",
			content: "currency_precision: -1\n",
			wantErr: true,
		},
		{
			name:    "malformed yaml",
			content: "tolerance: [unterminated\n",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeTempConfig(t, tt.content)

			cfg, err := Load(path)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, cfg.Tolerance.Equal(decimal.RequireFromString(tt.wantTolerance)),
				"tolerance: want %s, got %s", tt.wantTolerance, cfg.Tolerance)
			assert.Equal(t, tt.wantPrecision, cfg.CurrencyPrecision)
		})
	}
}

func TestLoad_EmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.True(t, cfg.Tolerance.Equal(decimal.RequireFromString("0.01")))
	assert.Equal(t, int32(2), cfg.CurrencyPrecision)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
