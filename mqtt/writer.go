package mqtt

import (
	"context"
)

// Writer is the minimum abstraction around writing values to MQTT.
type Writer interface {
	// WriteTopic writes the provided value to the specified topic with the specified WriteOptions.
	WriteTopic(ctx context.Context, topic string, options WriteOptions, value []byte) error
}

// The WriterFunc type is an adapter to allow the use of ordinary functions as a Writer.
type WriterFunc func(ctx context.Context, topic string, options WriteOptions, value []byte) error

func (f WriterFunc) WriteTopic(ctx context.Context, topic string, options WriteOptions, value []byte) error {
	return f(ctx, topic, options, value)
}

// Error discards the first result of a call, returning just the error. Used to join multiple errors when you don't
// care about returned values, e.g. errors.Join(mqtt.Error(v.Write(...)), ...).
func Error[T any](_ T, err error) error {
	return err
}
