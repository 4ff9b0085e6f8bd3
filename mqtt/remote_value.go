package mqtt

import (
	"context"
	"log/slog"
	"slices"
	"sync"

	"github.com/nlowe/haentity/log"
)

type watcher[T any] struct {
	id int
	fn func(T)
}

// RemoteValue holds a value that is populated from a mqtt topic subscription, usually a command topic Home Assistant
// writes to. It implements Handler.
type RemoteValue[T any] struct {
	topic       string
	unmarshaler ValueUnmarshaler[T]
	opts        ReadOptions

	mu sync.RWMutex

	watchers []watcher[T]
	nextID   int

	v           T
	initialized bool

	log *slog.Logger
}

// NewRemoteValue constructs a RemoteValue for the specified topic. It uses the provided ValueUnmarshaler to decode
// payloads from mqtt and default ReadOptions (QoS 0, RetainHandlingDefault). A nil unmarshaler decodes json.
func NewRemoteValue[T any](topic string, unmarshaler ValueUnmarshaler[T]) *RemoteValue[T] {
	return NewRemoteValueWithOptions(topic, unmarshaler, ReadOptions{})
}

// NewRemoteValueWithOptions constructs a RemoteValue for the specified topic. It uses the provided ValueUnmarshaler to
// decode payloads from mqtt with the provided ReadOptions.
func NewRemoteValueWithOptions[T any](topic string, unmarshaler ValueUnmarshaler[T], opts ReadOptions) *RemoteValue[T] {
	if unmarshaler == nil {
		unmarshaler = JsonValueUnmarshaler[T]()
	}

	return &RemoteValue[T]{
		topic:       topic,
		unmarshaler: unmarshaler,
		opts:        opts,

		log: log.ForComponent("mqtt.value.remote").With(log.Topic(topic)),
	}
}

// ServeMQTT implements mqtt.Handler for this RemoteValue by unmarshalling a value from the provided payload if the
// topic exactly matches the configured topic for this RemoteValue. It then invokes any watcher callbacks. If
// unmarshalling fails, the payload is dropped, the watchers are not called and a warning is logged. See the log package
// for details on configuring this logger.
func (v *RemoteValue[T]) ServeMQTT(_ Writer, topic string, payload []byte) {
	if v == nil || v.topic != topic {
		return
	}

	parsed, err := v.unmarshaler(payload)
	if err != nil {
		v.log.With(log.Error(err), slog.String("payload", string(payload))).Warn("Failed to unmarshal payload from mqtt")
		return
	}

	v.mu.Lock()
	v.v, v.initialized = parsed, true
	watchers := slices.Clone(v.watchers)
	v.mu.Unlock()

	v.log.With(slog.Any("v", parsed), slog.Int("watchers", len(watchers))).Debug("Received new value from mqtt")

	// Watchers run without the lock held so they may call Watch, Unwatch or Get.
	for _, w := range watchers {
		w.fn(parsed)
	}
}

// Topic returns the topic this RemoteValue reads from. If the underlying RemoteValue (not the value it holds) is nil,
// the empty string is returned.
func (v *RemoteValue[T]) Topic() string {
	if v == nil {
		return ""
	}

	return v.topic
}

// Subscription returns the Subscription needed to feed this RemoteValue.
func (v *RemoteValue[T]) Subscription() Subscription {
	return Subscription{Topic: v.topic, Options: v.opts}
}

// AppendSubscribeOptions adds a Subscription to the slice of existing subscriptions if this RemoteValue is not nil and
// has a configured topic.
func (v *RemoteValue[T]) AppendSubscribeOptions(existing []Subscription) []Subscription {
	if v == nil || v.topic == "" {
		return existing
	}

	return append(existing, v.Subscription())
}

// Get returns the most recent value received from mqtt. If no value has been received yet, the second return value will
// be false.
func (v *RemoteValue[T]) Get() (T, bool) {
	v.mu.RLock()
	defer v.mu.RUnlock()

	return v.v, v.initialized
}

// Watch registers a callback to execute when receiving new messages from mqtt. Watchers are called serially, in
// registration order, with each new value. Watchers should not block, any long operations executed in a watcher should
// start a new goroutine. The returned id can be passed to Unwatch.
func (v *RemoteValue[T]) Watch(callback func(T)) int {
	v.mu.Lock()
	defer v.mu.Unlock()

	id := v.nextID
	v.nextID++

	v.log.With(slog.Int("id", id)).Debug("Adding watcher")
	v.watchers = append(v.watchers, watcher[T]{id: id, fn: callback})

	return id
}

// Unwatch removes the specified callback from the watch list.
func (v *RemoteValue[T]) Unwatch(id int) {
	v.mu.Lock()
	defer v.mu.Unlock()

	i := slices.IndexFunc(v.watchers, func(w watcher[T]) bool { return w.id == id })
	if i < 0 {
		v.log.With(slog.Int("id", id), slog.Int("count", len(v.watchers))).Warn("Tried to remove an invalid watcher")
		return
	}

	v.log.With(slog.Int("id", id)).Debug("Removing watcher")
	v.watchers = slices.Delete(v.watchers, i, i+1)
}

// Watching reports how many watchers are registered.
func (v *RemoteValue[T]) Watching() int {
	v.mu.RLock()
	defer v.mu.RUnlock()

	return len(v.watchers)
}

// DesiredValue makes calling RemoteValue.Await on comparable remote values easier
func DesiredValue[T comparable](v T) func(T) bool {
	return func(vv T) bool {
		return v == vv
	}
}

// Await watches for updates to this RemoteValue. When updated values pass the desired filter, the updated value is
// returned along with a nil error. Close the provided context to cancel. The watch is removed upon return.
//
// If the underlying type of this remote value is comparable, you can use DesiredValue to construct the check.
//
// The returned value is the first value to pass the desired filter function and may not be the underlying value for
// frequently updated values.
func (v *RemoteValue[T]) Await(ctx context.Context, desired func(T) bool) (T, error) {
	got := make(chan T, 1)
	var once sync.Once

	v.log.Debug("Awaiting value")

	id := v.Watch(func(t T) {
		if desired(t) {
			once.Do(func() { got <- t })
		}
	})
	defer v.Unwatch(id)

	select {
	case t := <-got:
		v.log.Debug("Received expected value")
		return t, nil
	case <-ctx.Done():
		v.log.Debug("Timeout waiting for value")

		var zero T
		return zero, context.Cause(ctx)
	}
}
