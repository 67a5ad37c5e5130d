package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envMap(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestFromEnv_Defaults(t *testing.T) {
	cfg, err := FromEnv(envMap(map[string]string{
		"TELEGRAM_TOKEN": "token",
		"CATALOG_PATH":   "data/timetable.xlsx",
	}))
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, SourceXLSX, cfg.CatalogSource)
	assert.Equal(t, "2학기 전공 시간표", cfg.CatalogMajorSheet)
	assert.Equal(t, "2학기 교양 시간표", cfg.CatalogGeneralSheet)
	assert.Equal(t, "migrations", cfg.MigrationsPath)
	assert.Equal(t, 24*time.Hour, cfg.SessionTTL)
	assert.Equal(t, time.Hour, cfg.SweepInterval)
	assert.Zero(t, cfg.ReloadInterval)
	assert.False(t, cfg.UsesDatabase())
}

func TestFromEnv_Postgres(t *testing.T) {
	cfg, err := FromEnv(envMap(map[string]string{
		"TELEGRAM_TOKEN":          "token",
		"DB_DSN":                  "postgres://localhost/timetable",
		"SESSION_TTL":             "30m",
		"CATALOG_RELOAD_INTERVAL": "6h",
	}))
	require.NoError(t, err)

	assert.Equal(t, SourcePostgres, cfg.CatalogSource)
	assert.True(t, cfg.UsesDatabase())
	assert.Equal(t, 30*time.Minute, cfg.SessionTTL)
	assert.Equal(t, 6*time.Hour, cfg.ReloadInterval)
}

func TestFromEnv_Errors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want string
	}{
		{
			name: "missing token",
			env:  map[string]string{"CATALOG_PATH": "a.csv"},
			want: "TELEGRAM_TOKEN",
		},
		{
			name: "postgres without dsn",
			env:  map[string]string{"TELEGRAM_TOKEN": "t", "CATALOG_SOURCE": "postgres"},
			want: "DB_DSN",
		},
		{
			name: "csv without path",
			env:  map[string]string{"TELEGRAM_TOKEN": "t", "CATALOG_SOURCE": "csv"},
			want: "CATALOG_PATH",
		},
		{
			name: "unknown source",
			env:  map[string]string{"TELEGRAM_TOKEN": "t", "CATALOG_PATH": "a.json"},
			want: "unknown CATALOG_SOURCE",
		},
		{
			name: "bad duration",
			env:  map[string]string{"TELEGRAM_TOKEN": "t", "CATALOG_PATH": "a.csv", "SWEEP_INTERVAL": "soon"},
			want: "SWEEP_INTERVAL",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromEnv(envMap(tt.env))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
