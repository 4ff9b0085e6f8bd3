// Package autopaho adapts an MQTT v5 connection from github.com/eclipse/paho.golang/autopaho to mqtt.Writer and
// mqtt.Subscriber. Subscriptions are sent again every time the connection comes back up.
package autopaho

import (
	"context"
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"sync"

	"github.com/eclipse/paho.golang/autopaho"
	"github.com/eclipse/paho.golang/paho"

	"github.com/nlowe/haentity/hass"
	"github.com/nlowe/haentity/log"
	"github.com/nlowe/haentity/mqtt"
)

// DisconnectFunc closes the connection returned by DialMQTT.
type DisconnectFunc func(ctx context.Context) error

type adapter struct {
	mu sync.Mutex

	conn *autopaho.ConnectionManager
	r    *paho.StandardRouter

	subscriptions map[string]paho.SubscribeOptions

	log *slog.Logger
}

var _ mqtt.Writer = &adapter{}
var _ mqtt.Subscriber = &adapter{}

// Will returns a retained Last Will for availabilityTopic, so the broker marks the node unavailable if the
// connection drops without a clean disconnect. Pass haentity.Bridge.AvailabilityTopic.
func Will(availabilityTopic string) *paho.WillMessage {
	payload, _ := hass.AvailabilityMarshaler(hass.Unavailable)

	return &paho.WillMessage{
		Topic:   availabilityTopic,
		Payload: payload,
		QoS:     byte(mqtt.QOSAtLeastOnce),
		Retain:  true,
	}
}

// DialMQTT connects to the broker and waits for the first connection. Any OnConnectionUp in config still runs, after
// subscriptions are restored.
func DialMQTT(ctx context.Context, config autopaho.ClientConfig) (mqtt.Writer, mqtt.Subscriber, DisconnectFunc, error) {
	a := &adapter{
		r: paho.NewStandardRouter(),

		subscriptions: map[string]paho.SubscribeOptions{},

		log: log.ForComponent("autopaho"),
	}

	originalOnConnUp := config.OnConnectionUp
	config.OnConnectionUp = func(manager *autopaho.ConnectionManager, connack *paho.Connack) {
		a.onReconnect(ctx)

		if originalOnConnUp != nil {
			originalOnConnUp(manager, connack)
		}
	}

	// Held until a.conn is assigned so the first OnConnectionUp waits for it.
	a.mu.Lock()
	a.log.Info("Connecting to mqtt broker")
	conn, err := autopaho.NewConnection(ctx, config)
	if err != nil {
		a.mu.Unlock()
		return nil, nil, nil, fmt.Errorf("mqtt: connect: %w", err)
	}

	a.conn = conn
	a.mu.Unlock()

	a.log.Debug("Waiting for connection to be ready")
	if err = conn.AwaitConnection(ctx); err != nil {
		return nil, nil, nil, fmt.Errorf("mqtt: wait for connection: %w", err)
	}

	a.log.Debug("Connected to mqtt broker")
	conn.AddOnPublishReceived(func(rx autopaho.PublishReceived) (bool, error) {
		a.r.Route(rx.Packet.Packet())
		return true, nil
	})

	return a, a, conn.Disconnect, nil
}

func (a *adapter) onReconnect(ctx context.Context) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if len(a.subscriptions) == 0 {
		return
	}

	sub := &paho.Subscribe{
		Subscriptions: make([]paho.SubscribeOptions, 0, len(a.subscriptions)),
	}

	for _, topic := range slices.Sorted(maps.Keys(a.subscriptions)) {
		sub.Subscriptions = append(sub.Subscriptions, a.subscriptions[topic])
	}

	a.log.Debug("Reconnected to MQTT. Re-sending subscriptions.")
	if _, err := a.conn.Subscribe(ctx, sub); err != nil {
		a.log.With(log.Error(err)).Error("Failed to re-subscribe to mqtt topics")
	}
}

func (a *adapter) WriteTopic(ctx context.Context, topic string, options mqtt.WriteOptions, value []byte) error {
	a.log.With(log.Topic(topic), slog.Any("options", options)).Debug("Publishing payload")

	if _, err := a.conn.Publish(ctx, publishPacket(topic, options, value)); err != nil {
		return fmt.Errorf("mqtt: publish %s: %w", topic, err)
	}

	return nil
}

func (a *adapter) Subscribe(ctx context.Context, handler mqtt.Handler, subscriptions ...mqtt.Subscription) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if len(subscriptions) == 0 {
		return nil
	}

	sub := &paho.Subscribe{
		Subscriptions: make([]paho.SubscribeOptions, len(subscriptions)),
	}

	for i, s := range subscriptions {
		opts := subscribeOptions(s)

		a.subscriptions[s.Topic] = opts
		sub.Subscriptions[i] = opts

		a.r.RegisterHandler(s.Topic, func(publish *paho.Publish) {
			handler.ServeMQTT(a, publish.Topic, publish.Payload)
		})
	}

	a.log.With(slog.Any("subscriptions", subscriptions)).Debug("Subscribing to MQTT Topic(s)")
	if _, err := a.conn.Subscribe(ctx, sub); err != nil {
		return fmt.Errorf("mqtt: subscribe: %w", err)
	}

	return nil
}

func (a *adapter) Unsubscribe(ctx context.Context, topics ...string) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if len(topics) == 0 {
		return nil
	}

	for _, t := range topics {
		delete(a.subscriptions, t)
		a.r.UnregisterHandler(t)
	}

	a.log.With(slog.Any("topics", topics)).Debug("Unsubscribing from MQTT Topic(s)")
	if _, err := a.conn.Unsubscribe(ctx, &paho.Unsubscribe{Topics: topics}); err != nil {
		return fmt.Errorf("mqtt: unsubscribe: %w", err)
	}

	return nil
}

func publishPacket(topic string, options mqtt.WriteOptions, value []byte) *paho.Publish {
	return &paho.Publish{
		QoS:     byte(options.QoS),
		Retain:  options.Retain,
		Topic:   topic,
		Payload: value,
	}
}

func subscribeOptions(s mqtt.Subscription) paho.SubscribeOptions {
	return paho.SubscribeOptions{
		Topic:             s.Topic,
		QoS:               byte(s.Options.QoS),
		RetainHandling:    byte(s.Options.RetainHandling),
		NoLocal:           s.Options.NoLocal,
		RetainAsPublished: s.Options.RetainAsPublished,
	}
}
