package mqtt

import (
	"context"
	"log/slog"
)

// Subscription is a topic filter plus the options to subscribe with. It implements fmt.Stringer and slog.LogValuer.
type Subscription struct {
	Topic   string
	Options ReadOptions
}

func (s Subscription) String() string {
	return s.Topic
}

func (s Subscription) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("topic", s.Topic),
		slog.Any("options", s.Options),
	)
}

// Matches reports whether a message on topic is delivered for this subscription. Topic may contain wildcards.
func (s Subscription) Matches(topic string) bool {
	return MatchTopic(s.Topic, topic)
}

// Handler is the MQTT equivalent to http.Handler: it receives every message for the subscriptions it was registered
// with. Commands from Home Assistant arrive this way.
//
// Handlers do not return errors; a payload that cannot be handled is dropped. Handlers must not block, since
// transports may deliver from a single goroutine. w may be used to respond before returning, but neither w nor
// message may be retained afterwards.
type Handler interface {
	ServeMQTT(w Writer, topic string, message []byte)
}

// The HandlerFunc type is an adapter to allow the use of ordinary functions as MQTT handlers.
type HandlerFunc func(Writer, string, []byte)

func (f HandlerFunc) ServeMQTT(w Writer, topic string, message []byte) {
	f(w, topic, message)
}

// Subscriber manages MQTT subscriptions. Transports restore active subscriptions after a reconnect.
type Subscriber interface {
	// Subscribe routes messages for every subscription to handler. Subscribing the same topic again replaces its
	// handler.
	Subscribe(ctx context.Context, handler Handler, subscriptions ...Subscription) error

	// Unsubscribe removes the subscriptions for topics.
	Unsubscribe(ctx context.Context, topics ...string) error
}
