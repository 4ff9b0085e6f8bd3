package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestLoad(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		t.Chdir(t.TempDir())

		cfg, err := Load("")
		require.NoError(t, err)

		assert.Equal(t, "haentity_demo", cfg.NodeID)
		assert.Equal(t, "homeassistant", cfg.DiscoveryPrefix)
		assert.Equal(t, 30*time.Second, cfg.Interval)
		assert.Equal(t, "tcp://localhost:1883", cfg.MQTT.Broker)
		assert.Equal(t, TransportAutopaho, cfg.MQTT.Transport)
		assert.Equal(t, uint16(20), cfg.MQTT.KeepAlive)
		assert.True(t, strings.HasPrefix(cfg.MQTT.ClientID, "haentity-"))
		assert.Equal(t, slog.LevelInfo, cfg.Level())
	})

	t.Run("File", func(t *testing.T) {
		dir := t.TempDir()
		t.Chdir(dir)

		path := filepath.Join(dir, "demo.yaml")
		writeFile(t, path, `
node_id: garage
interval: 5s
mqtt:
  broker: tcp://broker:1883
  transport: paho
  client_id: garage-demo
  password: hunter2
log:
  level: debug
`)

		cfg, err := Load(path)
		require.NoError(t, err)

		assert.Equal(t, "garage", cfg.NodeID)
		assert.Equal(t, 5*time.Second, cfg.Interval)
		assert.Equal(t, "tcp://broker:1883", cfg.MQTT.Broker)
		assert.Equal(t, TransportPaho, cfg.MQTT.Transport)
		assert.Equal(t, "garage-demo", cfg.MQTT.ClientID)
		assert.Equal(t, "hunter2", cfg.MQTT.Password)
		assert.Equal(t, slog.LevelDebug, cfg.Level())
	})

	t.Run("Environment", func(t *testing.T) {
		dir := t.TempDir()
		t.Chdir(dir)

		path := filepath.Join(dir, "demo.yaml")
		writeFile(t, path, "node_id: garage\n")
		t.Setenv("HAENTITY_NODE_ID", "shed")
		t.Setenv("HAENTITY_MQTT_BROKER", "tcp://other:1883")

		cfg, err := Load(path)
		require.NoError(t, err)

		assert.Equal(t, "shed", cfg.NodeID)
		assert.Equal(t, "tcp://other:1883", cfg.MQTT.Broker)
	})

	t.Run("Dotenv", func(t *testing.T) {
		dir := t.TempDir()
		t.Chdir(dir)
		t.Cleanup(func() { _ = os.Unsetenv("HAENTITY_NAME") })

		writeFile(t, filepath.Join(dir, ".env"), "HAENTITY_NAME=from dotenv\n")

		cfg, err := Load("")
		require.NoError(t, err)

		assert.Equal(t, "from dotenv", cfg.Name)
	})

	t.Run("Unknown Transport", func(t *testing.T) {
		t.Chdir(t.TempDir())
		t.Setenv("HAENTITY_MQTT_TRANSPORT", "carrier-pigeon")

		_, err := Load("")
		require.ErrorIs(t, err, ErrUnknownTransport)
	})

	t.Run("Invalid Interval", func(t *testing.T) {
		t.Chdir(t.TempDir())
		t.Setenv("HAENTITY_INTERVAL", "0s")

		_, err := Load("")
		require.ErrorContains(t, err, "interval must be positive")
	})

	t.Run("Missing Explicit File", func(t *testing.T) {
		t.Chdir(t.TempDir())

		_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
		require.Error(t, err)
	})
}

func TestConfig_Level(t *testing.T) {
	for _, tt := range []struct {
		level    string
		expected slog.Level
	}{
		{level: "debug", expected: slog.LevelDebug},
		{level: "WARN", expected: slog.LevelWarn},
		{level: "error", expected: slog.LevelError},
		{level: "chatty", expected: slog.LevelInfo},
		{level: "", expected: slog.LevelInfo},
	} {
		t.Run(tt.level, func(t *testing.T) {
			cfg := &Config{Log: LogConfig{Level: tt.level}}
			assert.Equal(t, tt.expected, cfg.Level())
		})
	}
}

func TestConfig_Redacted(t *testing.T) {
	cfg := &Config{
		NodeID:   "garage",
		Interval: 10 * time.Second,
		MQTT:     MQTTConfig{Broker: "tcp://broker:1883", Username: "demo", Password: "hunter2"},
	}

	out, err := cfg.Redacted()
	require.NoError(t, err)

	assert.Contains(t, string(out), "password: REDACTED")
	assert.Contains(t, string(out), "username: demo")
	assert.Contains(t, string(out), "interval: 10s")
	assert.NotContains(t, string(out), "hunter2")
	assert.Equal(t, "hunter2", cfg.MQTT.Password)

	t.Run("Empty Password", func(t *testing.T) {
		out, err := (&Config{}).Redacted()
		require.NoError(t, err)
		assert.Contains(t, string(out), `password: ""`)
	})
}
