package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "service.log")

	log, err := New(path, "debug")
	require.NoError(t, err)

	log.Debug("debug %d", 1)
	log.Info("slot selected start=%s", "09:00")
	log.Warn("dropped %d intervals", 2)
	require.NoError(t, log.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "slot selected start=09:00")
	assert.Contains(t, string(data), "dropped 2 intervals")
	assert.Contains(t, string(data), "debug 1")
}

func TestNew_LevelFiltering(t *testing.T) {
	path := filepath.Join(t.TempDir(), "service.log")

	log, err := New(path, "warn")
	require.NoError(t, err)

	log.Info("hidden")
	log.Error("visible")
	require.NoError(t, log.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "hidden")
	assert.Contains(t, string(data), "visible")
}

func TestNew_UnknownLevel(t *testing.T) {
	_, err := New("", "verbose")
	assert.Error(t, err)
}

func TestNewNop(t *testing.T) {
	log := NewNop()
	log.Info("nothing %s", "happens")
	assert.NoError(t, log.Close())
}
