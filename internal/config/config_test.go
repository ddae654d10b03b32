package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 9090

[database]
host = "db"
user = "timeline"
password = "secret"
dbname = "timeline"

[logs]
level = "debug"

[metrics]
enabled = true

[timeline]
grid_minutes = 15
pixels_per_minute = 1.5
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, 10, cfg.Server.ReadTimeout)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "host=db port=5432 user=timeline password=secret dbname=timeline sslmode=disable", cfg.Database.DSN())
	assert.Equal(t, "debug", cfg.Logs.Level)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Equal(t, 15, cfg.Timeline.GridMinutes)
	assert.Equal(t, 1.5, cfg.Timeline.PixelsPerMinute)
	assert.Equal(t, 60, cfg.Timeline.DefaultDurationMinutes)
	assert.Equal(t, 900, cfg.Sessions.TTL)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "missing database host", content: "[database]\ndbname = \"x\"\n"},
		{name: "bad port", content: "[server]\nhttp_port = 70000\n[database]\nhost = \"db\"\ndbname = \"x\"\n"},
		{name: "negative grid", content: "[database]\nhost = \"db\"\ndbname = \"x\"\n[timeline]\ngrid_minutes = -30\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestLoad_BrokenFile(t *testing.T) {
	_, err := Load(writeConfig(t, "[server\nhttp_port = "))
	assert.Error(t, err)

	_, err = Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}
