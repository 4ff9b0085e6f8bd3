// Package config loads the demo application's configuration. HAENTITY_* environment variables, including ones from a
// .env file, override the YAML config file, which overrides the defaults.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const (
	// EnvPrefix prefixes every environment variable, e.g. HAENTITY_MQTT_BROKER.
	EnvPrefix = "HAENTITY"

	// TransportAutopaho selects the MQTT v5 transport.
	TransportAutopaho = "autopaho"
	// TransportPaho selects the MQTT v3.1.1 transport.
	TransportPaho = "paho"

	redacted = "REDACTED"
)

// ErrUnknownTransport is the error returned by Load when mqtt.transport is not one of the supported transports.
var ErrUnknownTransport = errors.New("unknown mqtt transport")

// Config is the demo configuration.
type Config struct {
	NodeID          string        `mapstructure:"node_id" yaml:"node_id"`
	Name            string        `mapstructure:"name" yaml:"name"`
	DiscoveryPrefix string        `mapstructure:"discovery_prefix" yaml:"discovery_prefix"`
	Interval        time.Duration `mapstructure:"interval" yaml:"interval"`

	MQTT MQTTConfig `mapstructure:"mqtt" yaml:"mqtt"`
	Log  LogConfig  `mapstructure:"log" yaml:"log"`
}

// MQTTConfig configures the broker connection.
type MQTTConfig struct {
	Broker    string `mapstructure:"broker" yaml:"broker"`
	Transport string `mapstructure:"transport" yaml:"transport"`
	ClientID  string `mapstructure:"client_id" yaml:"client_id"`
	Username  string `mapstructure:"username" yaml:"username"`
	Password  string `mapstructure:"password" yaml:"password"`
	KeepAlive uint16 `mapstructure:"keep_alive" yaml:"keep_alive"`
}

// LogConfig configures the console log handler.
type LogConfig struct {
	Level   string `mapstructure:"level" yaml:"level"`
	NoColor bool   `mapstructure:"no_color" yaml:"no_color"`
}

func defaults(v *viper.Viper) {
	v.SetDefault("node_id", "haentity_demo")
	v.SetDefault("name", "haentity demo")
	v.SetDefault("discovery_prefix", "homeassistant")
	v.SetDefault("interval", 30*time.Second)
	v.SetDefault("mqtt.broker", "tcp://localhost:1883")
	v.SetDefault("mqtt.transport", TransportAutopaho)
	v.SetDefault("mqtt.client_id", "")
	v.SetDefault("mqtt.username", "")
	v.SetDefault("mqtt.password", "")
	v.SetDefault("mqtt.keep_alive", 20)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.no_color", false)
}

// Load reads configFile, or haentity.yaml from the working directory or /etc/haentity when configFile is empty. A
// missing search-path file is not an error. Variables from ./.env are loaded into the environment first without
// overriding ones already set. An empty mqtt.client_id gets a random one.
func Load(configFile string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("config: load .env: %w", err)
	}

	v := viper.New()
	defaults(v)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("haentity")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("/etc/haentity")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config: read: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}

	if cfg.MQTT.ClientID == "" {
		id, err := uuid.NewV7()
		if err != nil {
			return nil, fmt.Errorf("config: generate client id: %w", err)
		}

		cfg.MQTT.ClientID = "haentity-" + id.String()
	}

	if !slices.Contains([]string{TransportAutopaho, TransportPaho}, cfg.MQTT.Transport) {
		return nil, fmt.Errorf("config: %w: %q", ErrUnknownTransport, cfg.MQTT.Transport)
	}

	if cfg.Interval <= 0 {
		return nil, fmt.Errorf("config: interval must be positive, got %s", cfg.Interval)
	}

	return &cfg, nil
}

// Level parses Log.Level, falling back to info.
func (c *Config) Level() slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return slog.LevelInfo
	}

	return l
}

// Redacted renders the configuration as YAML with secrets replaced.
func (c *Config) Redacted() ([]byte, error) {
	out := *c
	if out.MQTT.Password != "" {
		out.MQTT.Password = redacted
	}

	b, err := yaml.Marshal(out)
	if err != nil {
		return nil, fmt.Errorf("config: marshal: %w", err)
	}

	return b, nil
}
