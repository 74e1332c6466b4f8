package rooms

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempConfig(t *testing.T, yaml string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0644))
	return path
}

func TestLoadConfig_OverridesDefaults(t *testing.T) {
	path := writeTempConfig(t, `
http:
  listenAddr: ":8080"
mqtt:
  broker: tcp://localhost:1883
  inputTopic: roomtrace/in
  resultTopic: roomtrace/out
strokeThresh: 2.5
minRoomArea: 0.5
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.HTTP.ListenAddr)
	assert.Equal(t, "tcp://localhost:1883", cfg.MQTT.Broker)

	resolved := cfg.ResolveTunables()
	assert.Equal(t, 2.5, resolved.StrokeThresh)
	assert.Equal(t, 0.5, resolved.MinRoomArea)
	assert.Equal(t, DefaultConfig().AngTol, resolved.AngTol)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestResolveTunables_NilReceiverUsesDefaults(t *testing.T) {
	var cfg *ServiceConfig
	assert.Equal(t, DefaultConfig(), cfg.ResolveTunables())
}
