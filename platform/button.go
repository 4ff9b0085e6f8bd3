package platform

import (
	"context"

	"github.com/nlowe/haentity"
	"github.com/nlowe/haentity/discovery"
	"github.com/nlowe/haentity/hass"
	"github.com/nlowe/haentity/mqtt"
)

// PayloadPress is the command a Button receives when pressed.
const PayloadPress = "PRESS"

// ButtonConfig configures a Button.
type ButtonConfig struct {
	// See https://www.home-assistant.io/integrations/button/#device-class, e.g. "restart". Blank omits it.
	DeviceClass string

	Icon           string
	EntityCategory hass.EntityCategory
}

// Button is a stateless trigger implementing the button.mqtt integration.
//
// See https://www.home-assistant.io/integrations/button.mqtt/.
type Button struct {
	entity

	cfg ButtonConfig

	command *mqtt.RemoteValue[string]
}

var _ haentity.Entity = &Button{}

// NewButton constructs a Button on b.
func NewButton(b *haentity.Bridge, name, childObjectID string, cfg ButtonConfig) *Button {
	btn := &Button{
		entity: newEntity(b, haentity.ComponentID{
			Component:     haentity.ComponentButton,
			ObjectID:      haentity.ComponentButton,
			ChildObjectID: childObjectID,
		}, name),

		cfg: cfg,
	}

	btn.command = mqtt.NewRemoteValue(btn.topic(haentity.TopicCommand), mqtt.StringUnmarshaler)

	return btn
}

// PublishConfiguration publishes the discovery document for the button.
func (btn *Button) PublishConfiguration(ctx context.Context) error {
	doc := btn.document()
	discovery.MaybeSet(doc, discovery.FieldDeviceClass, btn.cfg.DeviceClass)
	discovery.MaybeSet(doc, discovery.FieldIcon, btn.cfg.Icon)
	discovery.MaybeSet(doc, discovery.FieldEntityCategory, btn.cfg.EntityCategory)
	doc[discovery.FieldPayloadPress] = PayloadPress
	doc[discovery.FieldCommandTopic] = btn.command.Topic()

	return btn.publishConfiguration(ctx, doc)
}

// RepublishState does nothing: a button has no state.
func (btn *Button) RepublishState(context.Context) error {
	return nil
}

// OnPress calls callback every time Home Assistant sends PayloadPress. Other payloads are ignored.
func (btn *Button) OnPress(ctx context.Context, callback func()) error {
	return subscribe(ctx, &btn.entity, btn.command, func(payload string) {
		if payload == PayloadPress {
			callback()
		}
	})
}
