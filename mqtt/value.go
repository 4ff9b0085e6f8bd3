package mqtt

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/nlowe/haentity/log"
)

var (
	// ErrNoMarshaler is the error returned when a Value does not have an associated ValueMarshaler, which is required
	// to write the value to MQTT.
	ErrNoMarshaler = errors.New("no marshaler configured")
	// ErrNeverWritten is the error returned by Value.Republish when Value.Write was never called.
	ErrNeverWritten = errors.New("value was never written")
)

// Value holds the last value written to an MQTT topic. The cached value backs Republish (replay the last known state
// after a reconnect) and WriteIfChanged (skip publishing duplicates).
type Value[T any] struct {
	topic string

	marshaler ValueMarshaler[T]
	opts      WriteOptions

	mu sync.RWMutex

	v           T
	initialized bool

	log *slog.Logger
}

// NewValue constructs a Value configured for the provided topic and uses the provided marshaler when writing to mqtt
// using default WriteOptions (QoS 0, no retain).
func NewValue[T any](topic string, marshal ValueMarshaler[T]) *Value[T] {
	return NewValueWithOptions(topic, marshal, WriteOptions{})
}

// NewValueWithOptions constructs a Value configured for the provided topic and uses the provided marshaler when writing
// to mqtt using the provided WriteOptions.
func NewValueWithOptions[T any](topic string, marshal ValueMarshaler[T], opts WriteOptions) *Value[T] {
	return &Value[T]{
		topic:     topic,
		marshaler: marshal,
		opts:      opts,

		log: log.ForComponent("mqtt.value").With(log.Topic(topic)),
	}
}

// Topic returns the topic this Value writes to. If the underlying Value (not the value it holds) is nil, the empty
// string is returned.
func (v *Value[T]) Topic() string {
	if v == nil {
		return ""
	}

	return v.topic
}

// Options returns the WriteOptions used for every write.
func (v *Value[T]) Options() WriteOptions {
	return v.opts
}

// Get returns the most recently written value and a bool indicating whether a value was ever written.
func (v *Value[T]) Get() (T, bool) {
	v.mu.RLock()
	defer v.mu.RUnlock()

	return v.v, v.initialized
}

// Republish writes the current value held by this Value to MQTT again. It returns ErrNeverWritten, and writes nothing,
// if Write was never called.
func (v *Value[T]) Republish(ctx context.Context, w Writer) (T, error) {
	// Copy the value while holding RLock, then release the lock so Write can grab the Lock.
	v.mu.RLock()
	currentValue, initialized := v.v, v.initialized
	v.mu.RUnlock()

	if !initialized {
		return currentValue, ErrNeverWritten
	}

	return v.Write(ctx, w, currentValue)
}

// Write uses the configured marshaler for this value to encode the newValue to the configured topic. The value is
// cached once it marshals, even if the transport then fails, so a later Republish retries it.
func (v *Value[T]) Write(ctx context.Context, w Writer, newValue T) (T, error) {
	if v.marshaler == nil {
		return newValue, ErrNoMarshaler
	}

	v.mu.Lock()
	defer v.mu.Unlock()

	return v.writeLocked(ctx, w, newValue)
}

func (v *Value[T]) writeLocked(ctx context.Context, w Writer, newValue T) (T, error) {
	data, err := v.marshaler(newValue)
	if err != nil {
		return v.v, fmt.Errorf("marshal %+v: %w", newValue, err)
	}

	v.v = newValue
	v.initialized = true

	if err = w.WriteTopic(ctx, v.topic, v.opts, data); err != nil {
		v.log.With(log.Error(err)).Debug("Failed to write value")
		return v.v, err
	}

	return v.v, nil
}

// WriteIfChanged writes newValue only if no value was written yet or equal reports that it differs from the cached
// value. It returns whether a write was attempted.
func (v *Value[T]) WriteIfChanged(ctx context.Context, w Writer, newValue T, equal func(a, b T) bool) (bool, error) {
	if v.marshaler == nil {
		return false, ErrNoMarshaler
	}

	v.mu.Lock()
	defer v.mu.Unlock()

	if v.initialized && equal(v.v, newValue) {
		return false, nil
	}

	_, err := v.writeLocked(ctx, w, newValue)
	return true, err
}

// Equal is the equality function for WriteIfChanged on comparable values.
func Equal[T comparable](a, b T) bool {
	return a == b
}
