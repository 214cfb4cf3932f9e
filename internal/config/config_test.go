package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
student: Jordan Lee
log:
  level: debug
  format: json
web:
  addr: 127.0.0.1:8088
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Jordan Lee", cfg.Student)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "127.0.0.1:8088", cfg.Web.Addr)
}

func TestLoadKeepsDefaultsForMissingFields(t *testing.T) {
	cfg, err := Load(writeConfig(t, "student: Sam\n"))
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "127.0.0.1:0", cfg.Web.Addr)
}

func TestLoadNoFile(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("CAMPUSDASH_LOG_LEVEL", "warn")
	t.Setenv("CAMPUSDASH_ADDR", "0.0.0.0:9000")

	cfg, err := Load(writeConfig(t, "log:\n  level: debug\n"))
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "0.0.0.0:9000", cfg.Web.Addr)
}

func TestLoadInvalid(t *testing.T) {
	_, err := Load(writeConfig(t, "log:\n  level: loud\n"))
	assert.ErrorIs(t, err, ErrInvalid)

	_, err = Load(writeConfig(t, "log:\n  format: xml\n"))
	assert.ErrorIs(t, err, ErrInvalid)

	_, err = Load(writeConfig(t, "log: [unclosed\n"))
	assert.Error(t, err)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yml"))
	assert.Error(t, err)
}
