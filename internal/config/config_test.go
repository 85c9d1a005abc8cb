package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, DefaultBind, cfg.Server.Bind)
	assert.Equal(t, DefaultPort, cfg.Server.Port)
	assert.Equal(t, DefaultTickInterval, cfg.Market.TickInterval.Std())
	assert.Equal(t, DefaultLogLevel, cfg.Log.Level)
}

func TestLoadFile(t *testing.T) {
	path := writeTempFile(t, `
server:
  bind: 127.0.0.1
  port: 9001
market:
  tick_interval: 250ms
log:
  level: debug
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1", cfg.Server.Bind)
	assert.Equal(t, 9001, cfg.Server.Port)
	assert.Equal(t, 250*time.Millisecond, cfg.Market.TickInterval.Std())
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := writeTempFile(t, `
server:
  port: 6000
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 6000, cfg.Server.Port)
	assert.Equal(t, DefaultBind, cfg.Server.Bind)
	assert.Equal(t, DefaultTickInterval, cfg.Market.TickInterval.Std())
}

func TestLoadEnvSubstitution(t *testing.T) {
	t.Setenv("STOK_TEST_BIND", "10.0.0.5")

	path := writeTempFile(t, `
server:
  bind: ${STOK_TEST_BIND}
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "10.0.0.5", cfg.Server.Bind)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadInvalidDuration(t *testing.T) {
	path := writeTempFile(t, `
market:
  tick_interval: soon
`)
	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidateRejectsBadValues(t *testing.T) {
	badPort := writeTempFile(t, `
server:
  port: 70000
`)
	_, err := Load(badPort)
	assert.ErrorContains(t, err, "server.port")

	badLevel := writeTempFile(t, `
log:
  level: shouting
`)
	_, err = Load(badLevel)
	assert.ErrorContains(t, err, "log.level")
}
