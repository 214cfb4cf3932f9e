package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kemilad/campusdash/internal/config"
)

func TestNewLoggerIsCachedPerComponent(t *testing.T) {
	a := NewLogger("tui")
	b := NewLogger("tui")
	c := NewLogger("web")

	assert.Same(t, a, b)
	assert.NotSame(t, a, c)
	assert.Equal(t, "tui", a.Data["component"])
}

func TestSetupWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "campusdash.log")
	require.NoError(t, Setup(config.LogConfig{Level: "debug", File: path, Format: "json"}, false))

	log := NewLogger("setup-test")
	log.Debug("selected destination")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"component":"setup-test"`)
	assert.Contains(t, string(data), "selected destination")
}

func TestSetupRespectsLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "campusdash.log")
	require.NoError(t, Setup(config.LogConfig{Level: "error", File: path}, false))

	log := NewLogger("level-test")
	log.Info("hidden")
	log.Error("shown")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "hidden")
	assert.Contains(t, string(data), "shown")
}

func TestSetupClosesPreviousFile(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "first.log")
	second := filepath.Join(dir, "second.log")

	require.NoError(t, Setup(config.LogConfig{File: first}, false))
	old := file
	require.NotNil(t, old)

	log := NewLogger("reopen-test")
	require.NoError(t, Setup(config.LogConfig{File: second}, false))

	_, err := old.Write([]byte("late"))
	assert.ErrorIs(t, err, os.ErrClosed)

	log.Info("after reopen")
	data, err := os.ReadFile(second)
	require.NoError(t, err)
	assert.Contains(t, string(data), "after reopen")
}
