// Package pahov3 adapts an MQTT v3.1.1 client from github.com/eclipse/paho.mqtt.golang to mqtt.Writer and
// mqtt.Subscriber, for brokers that do not speak MQTT v5. Token waits honor the caller's context.
package pahov3

import (
	"context"
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"sync"

	pahomqtt "github.com/eclipse/paho.mqtt.golang"

	"github.com/nlowe/haentity/hass"
	"github.com/nlowe/haentity/log"
	"github.com/nlowe/haentity/mqtt"
)

// DisconnectQuiesce is how long, in milliseconds, Disconnect lets in-flight work finish.
const DisconnectQuiesce uint = 250

type subscription struct {
	qos     byte
	handler mqtt.Handler
}

// Adapter is an mqtt.Writer and mqtt.Subscriber backed by a paho.mqtt.golang client.
type Adapter struct {
	mu sync.Mutex

	client        pahomqtt.Client
	subscriptions map[string]subscription

	log *slog.Logger
}

var _ mqtt.Writer = &Adapter{}
var _ mqtt.Subscriber = &Adapter{}

// Options returns client options for broker with auto reconnect and a retained Last Will marking availabilityTopic
// offline.
func Options(broker, clientID, availabilityTopic string) *pahomqtt.ClientOptions {
	payload, _ := hass.AvailabilityMarshaler(hass.Unavailable)

	return pahomqtt.NewClientOptions().
		AddBroker(broker).
		SetClientID(clientID).
		SetAutoReconnect(true).
		SetCleanSession(true).
		SetWill(availabilityTopic, string(payload), byte(mqtt.QOSAtLeastOnce), true)
}

// New wraps an existing client. The caller is responsible for connecting it and for calling Resubscribe after a
// reconnect.
func New(client pahomqtt.Client) *Adapter {
	return &Adapter{
		client:        client,
		subscriptions: map[string]subscription{},

		log: log.ForComponent("pahov3"),
	}
}

// Dial connects a new client built from opts. Subscriptions are restored every time the client connects, before any
// OnConnect handler already set on opts runs.
func Dial(ctx context.Context, opts *pahomqtt.ClientOptions) (*Adapter, error) {
	a := New(nil)

	original := opts.OnConnect
	opts.SetOnConnectHandler(func(c pahomqtt.Client) {
		a.Resubscribe(ctx)

		if original != nil {
			original(c)
		}
	})

	a.mu.Lock()
	a.client = pahomqtt.NewClient(opts)
	a.mu.Unlock()

	a.log.Info("Connecting to mqtt broker")
	if err := wait(ctx, a.client.Connect()); err != nil {
		return nil, fmt.Errorf("mqtt: connect: %w", err)
	}

	a.log.Debug("Connected to mqtt broker")
	return a, nil
}

// Disconnect closes the connection. It never blocks longer than DisconnectQuiesce.
func (a *Adapter) Disconnect(context.Context) error {
	a.client.Disconnect(DisconnectQuiesce)
	return nil
}

func (a *Adapter) WriteTopic(ctx context.Context, topic string, options mqtt.WriteOptions, value []byte) error {
	a.log.With(log.Topic(topic), slog.Any("options", options)).Debug("Publishing payload")

	if err := wait(ctx, a.client.Publish(topic, byte(options.QoS), options.Retain, value)); err != nil {
		return fmt.Errorf("mqtt: publish %s: %w", topic, err)
	}

	return nil
}

func (a *Adapter) Subscribe(ctx context.Context, handler mqtt.Handler, subscriptions ...mqtt.Subscription) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if len(subscriptions) == 0 {
		return nil
	}

	filters := make(map[string]byte, len(subscriptions))
	for _, s := range subscriptions {
		filters[s.Topic] = byte(s.Options.QoS)
		a.subscriptions[s.Topic] = subscription{qos: byte(s.Options.QoS), handler: handler}
	}

	a.log.With(slog.Any("subscriptions", subscriptions)).Debug("Subscribing to MQTT Topic(s)")
	if err := wait(ctx, a.client.SubscribeMultiple(filters, a.route(handler))); err != nil {
		return fmt.Errorf("mqtt: subscribe: %w", err)
	}

	return nil
}

func (a *Adapter) Unsubscribe(ctx context.Context, topics ...string) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if len(topics) == 0 {
		return nil
	}

	for _, t := range topics {
		delete(a.subscriptions, t)
	}

	a.log.With(slog.Any("topics", topics)).Debug("Unsubscribing from MQTT Topic(s)")
	if err := wait(ctx, a.client.Unsubscribe(topics...)); err != nil {
		return fmt.Errorf("mqtt: unsubscribe: %w", err)
	}

	return nil
}

// Resubscribe sends every active subscription again. Failures are logged.
func (a *Adapter) Resubscribe(ctx context.Context) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if len(a.subscriptions) == 0 {
		return
	}

	a.log.Debug("Reconnected to MQTT. Re-sending subscriptions.")
	for _, topic := range slices.Sorted(maps.Keys(a.subscriptions)) {
		s := a.subscriptions[topic]
		if err := wait(ctx, a.client.Subscribe(topic, s.qos, a.route(s.handler))); err != nil {
			a.log.With(log.Topic(topic), log.Error(err)).Error("Failed to re-subscribe to mqtt topic")
		}
	}
}

func (a *Adapter) route(handler mqtt.Handler) pahomqtt.MessageHandler {
	return func(_ pahomqtt.Client, msg pahomqtt.Message) {
		handler.ServeMQTT(a, msg.Topic(), msg.Payload())
	}
}

func wait(ctx context.Context, token pahomqtt.Token) error {
	select {
	case <-token.Done():
		return token.Error()
	case <-ctx.Done():
		return ctx.Err()
	}
}
