package platform

import (
	"context"
	"fmt"

	"github.com/nlowe/haentity"
	"github.com/nlowe/haentity/discovery"
	"github.com/nlowe/haentity/hass"
	"github.com/nlowe/haentity/mqtt"
)

// SwitchConfig configures a Switch.
type SwitchConfig struct {
	Icon           string
	EntityCategory hass.EntityCategory

	// Retain state at the broker and ask Home Assistant to retain commands.
	Retain bool
}

// Switch is an on/off actuator implementing the switch.mqtt integration.
//
// See https://www.home-assistant.io/integrations/switch.mqtt/.
type Switch struct {
	entity

	cfg SwitchConfig

	state   *mqtt.Value[bool]
	command *mqtt.RemoteValue[bool]
}

var _ haentity.Entity = &Switch{}

// NewSwitch constructs a Switch on b.
func NewSwitch(b *haentity.Bridge, name, childObjectID string, cfg SwitchConfig) *Switch {
	s := &Switch{
		entity: newEntity(b, haentity.ComponentID{
			Component:     haentity.ComponentSwitch,
			ObjectID:      haentity.ComponentSwitch,
			ChildObjectID: childObjectID,
		}, name),

		cfg: cfg,
	}

	s.state = mqtt.NewValueWithOptions(s.topic(haentity.TopicState), hass.BoolMarshaler, stateOptions(cfg.Retain))
	s.command = mqtt.NewRemoteValue(s.topic(haentity.TopicCommand), hass.BoolUnmarshaler)

	return s
}

// PublishConfiguration publishes the discovery document for the switch.
func (s *Switch) PublishConfiguration(ctx context.Context) error {
	doc := s.document()
	discovery.MaybeSet(doc, discovery.FieldIcon, s.cfg.Icon)
	discovery.MaybeSet(doc, discovery.FieldEntityCategory, s.cfg.EntityCategory)
	discovery.MaybeSet(doc, discovery.FieldRetain, s.cfg.Retain)
	doc[discovery.FieldStateTopic] = s.state.Topic()
	doc[discovery.FieldCommandTopic] = s.command.Topic()

	return s.publishConfiguration(ctx, doc)
}

// RepublishState publishes the last state again.
func (s *Switch) RepublishState(ctx context.Context) error {
	if err := republish(ctx, s.b, s.state); err != nil {
		return fmt.Errorf("republish %s: %w", s.id, err)
	}

	return nil
}

// PublishSwitch publishes ON or OFF.
func (s *Switch) PublishSwitch(ctx context.Context, on bool) error {
	if err := mqtt.Error(s.state.Write(ctx, s.b, on)); err != nil {
		return fmt.Errorf("publish %s: %w", s.id, err)
	}

	return nil
}

// UpdateSwitch is PublishSwitch that skips an unchanged state.
func (s *Switch) UpdateSwitch(ctx context.Context, on bool) error {
	if _, err := s.state.WriteIfChanged(ctx, s.b, on, mqtt.Equal[bool]); err != nil {
		return fmt.Errorf("update %s: %w", s.id, err)
	}

	return nil
}

// OnSwitch calls callback with true when Home Assistant turns the switch on and false when it turns it off.
func (s *Switch) OnSwitch(ctx context.Context, callback func(on bool)) error {
	return subscribe(ctx, &s.entity, s.command, callback)
}
