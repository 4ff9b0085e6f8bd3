package platform

import (
	"context"
	"fmt"

	"github.com/nlowe/haentity"
	"github.com/nlowe/haentity/mqtt"
)

// RetriesObjectID is the object id of the retries topic, e.g. livingroom/sensor/retries/state.
const RetriesObjectID = "retries"

// Retries reports how many attempts something took, like reading a flaky sensor. It publishes state only: Home
// Assistant gets no discovery document, so the topic is for users who configure a sensor for it themselves.
type Retries struct {
	b     *haentity.Bridge
	state *mqtt.Value[uint8]
}

var _ haentity.Entity = &Retries{}

// NewRetries constructs the Retries reporter for b.
func NewRetries(b *haentity.Bridge) *Retries {
	return &Retries{
		b:     b,
		state: mqtt.NewValue(b.Topic(haentity.TopicState, haentity.ComponentSensor, RetriesObjectID, ""), mqtt.Uint8Marshaler),
	}
}

// Topic returns the state topic retries are published to.
func (r *Retries) Topic() string {
	return r.state.Topic()
}

// PublishConfiguration does nothing.
func (r *Retries) PublishConfiguration(context.Context) error {
	return nil
}

// RepublishState does nothing: a retry count is only meaningful when it happens.
func (r *Retries) RepublishState(context.Context) error {
	return nil
}

// PublishRetries publishes retries, not retained.
func (r *Retries) PublishRetries(ctx context.Context, retries uint8) error {
	if err := mqtt.Error(r.state.Write(ctx, r.b, retries)); err != nil {
		return fmt.Errorf("publish retries: %w", err)
	}

	return nil
}
