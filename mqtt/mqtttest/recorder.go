// Package mqtttest provides an in-memory MQTT transport for tests.
package mqtttest

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"sync"

	"github.com/nlowe/haentity/mqtt"
)

// Message is one write recorded by a Recorder.
type Message struct {
	Topic   string
	Payload []byte
	Options mqtt.WriteOptions
}

func (m Message) String() string {
	return fmt.Sprintf("%s (retain=%t): %s", m.Topic, m.Options.Retain, m.Payload)
}

type subscription struct {
	mqtt.Subscription

	handler mqtt.Handler
}

// Recorder is an mqtt.Writer and mqtt.Subscriber that keeps every write in memory and lets tests play the broker by
// delivering messages to subscribed handlers. The zero value is ready to use.
type Recorder struct {
	mu sync.Mutex

	messages      []Message
	subscriptions map[string]subscription
	writeErr      error
}

var _ mqtt.Writer = &Recorder{}
var _ mqtt.Subscriber = &Recorder{}

// New returns an empty Recorder.
func New() *Recorder {
	return &Recorder{}
}

// WriteTopic records the write. If FailWrites was called with a non-nil error, nothing is recorded and that error is
// returned instead.
func (r *Recorder) WriteTopic(ctx context.Context, topic string, options mqtt.WriteOptions, value []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.writeErr != nil {
		return r.writeErr
	}

	r.messages = append(r.messages, Message{
		Topic:   topic,
		Payload: slices.Clone(value),
		Options: options,
	})

	return nil
}

func (r *Recorder) Subscribe(ctx context.Context, handler mqtt.Handler, subscriptions ...mqtt.Subscription) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.subscriptions == nil {
		r.subscriptions = map[string]subscription{}
	}

	for _, s := range subscriptions {
		r.subscriptions[s.Topic] = subscription{Subscription: s, handler: handler}
	}

	return nil
}

func (r *Recorder) Unsubscribe(ctx context.Context, topics ...string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, t := range topics {
		delete(r.subscriptions, t)
	}

	return nil
}

// FailWrites makes every following WriteTopic call return err. Pass nil to accept writes again.
func (r *Recorder) FailWrites(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.writeErr = err
}

// Messages returns every recorded write in order.
func (r *Recorder) Messages() []Message {
	r.mu.Lock()
	defer r.mu.Unlock()

	return slices.Clone(r.messages)
}

// MessagesOn returns the recorded writes to topic in order.
func (r *Recorder) MessagesOn(topic string) []Message {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []Message
	for _, m := range r.messages {
		if m.Topic == topic {
			out = append(out, m)
		}
	}

	return out
}

// Last returns the most recent write to topic.
func (r *Recorder) Last(topic string) (Message, bool) {
	msgs := r.MessagesOn(topic)
	if len(msgs) == 0 {
		return Message{}, false
	}

	return msgs[len(msgs)-1], true
}

// Reset forgets recorded writes. Subscriptions are kept.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.messages = nil
}

// Subscribed reports whether a subscription exists for exactly this topic filter.
func (r *Recorder) Subscribed(topic string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.subscriptions[topic]
	return ok
}

// Subscriptions returns the subscribed topic filters, sorted.
func (r *Recorder) Subscriptions() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	return slices.Sorted(maps.Keys(r.subscriptions))
}

// Deliver plays the broker: payload is handed to every handler whose subscription filter matches topic. It returns
// the number of handlers called.
func (r *Recorder) Deliver(topic string, payload []byte) int {
	r.mu.Lock()
	var handlers []mqtt.Handler
	for _, s := range r.subscriptions {
		if s.Matches(topic) {
			handlers = append(handlers, s.handler)
		}
	}
	r.mu.Unlock()

	for _, h := range handlers {
		h.ServeMQTT(r, topic, payload)
	}

	return len(handlers)
}
