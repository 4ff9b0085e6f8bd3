package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"time"

	"github.com/eclipse/paho.golang/autopaho"
	"github.com/eclipse/paho.golang/paho"
	pahomqtt "github.com/eclipse/paho.mqtt.golang"

	"github.com/nlowe/haentity"
	"github.com/nlowe/haentity/internal/config"
	"github.com/nlowe/haentity/log"
	"github.com/nlowe/haentity/mqtt"
	autopahoadapter "github.com/nlowe/haentity/mqtt/adapter/autopaho"
	"github.com/nlowe/haentity/mqtt/adapter/pahov3"
)

type disconnectFunc func(context.Context) error

// dial connects with the configured transport. Both register a retained offline Last Will on the node's availability
// topic.
func dial(ctx context.Context, cfg *config.Config) (mqtt.Writer, mqtt.Subscriber, disconnectFunc, error) {
	l := log.ForComponent("mqtt").With(slog.String("broker", cfg.MQTT.Broker), slog.String("transport", cfg.MQTT.Transport))
	availabilityTopic := haentity.AvailabilityTopic(cfg.NodeID)

	l.Info("Connecting to mqtt")
	switch cfg.MQTT.Transport {
	case config.TransportPaho:
		opts := pahov3.Options(cfg.MQTT.Broker, cfg.MQTT.ClientID, availabilityTopic).
			SetKeepAlive(time.Duration(cfg.MQTT.KeepAlive) * time.Second).
			SetConnectionLostHandler(func(_ pahomqtt.Client, err error) {
				l.With(log.Error(err)).Warn("Lost connection to mqtt")
			})
		if cfg.MQTT.Username != "" {
			opts.SetUsername(cfg.MQTT.Username)
			opts.SetPassword(cfg.MQTT.Password)
		}

		a, err := pahov3.Dial(ctx, opts)
		if err != nil {
			return nil, nil, nil, err
		}

		return a, a, a.Disconnect, nil
	default:
		brokerURL, err := url.Parse(cfg.MQTT.Broker)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("mqtt: parse broker url: %w", err)
		}

		w, s, disconnect, err := autopahoadapter.DialMQTT(ctx, autopaho.ClientConfig{
			ServerUrls:      []*url.URL{brokerURL},
			KeepAlive:       cfg.MQTT.KeepAlive,
			ConnectUsername: cfg.MQTT.Username,
			ConnectPassword: []byte(cfg.MQTT.Password),
			WillMessage:     autopahoadapter.Will(availabilityTopic),

			// Seconds the broker keeps the session after a disconnect, so queued messages survive a short outage.
			SessionExpiryInterval: 60,

			OnConnectionUp: func(*autopaho.ConnectionManager, *paho.Connack) {
				l.Info("mqtt connected")
			},
			OnConnectError: func(err error) {
				l.With(log.Error(err)).Error("mqtt connection error")
			},

			ClientConfig: paho.ClientConfig{
				ClientID: cfg.MQTT.ClientID,
				OnClientError: func(err error) {
					l.With(log.Error(err)).Error("mqtt client error")
				},
				OnServerDisconnect: func(d *paho.Disconnect) {
					l := l.With(slog.Int("reason", int(d.ReasonCode)))
					if d.Properties != nil {
						l = l.With(slog.String("reason_string", d.Properties.ReasonString))
					}

					l.Warn("Disconnected from server")
				},
			},
		})
		if err != nil {
			return nil, nil, nil, err
		}

		return w, s, disconnectFunc(disconnect), nil
	}
}
