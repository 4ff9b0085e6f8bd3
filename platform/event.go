package platform

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/nlowe/haentity"
	"github.com/nlowe/haentity/discovery"
	"github.com/nlowe/haentity/hass"
	"github.com/nlowe/haentity/mqtt"
)

// EventConfig configures an Event.
type EventConfig struct {
	// EventTypes are advertised deduplicated and sorted.
	EventTypes []string

	DeviceClass hass.EventDeviceClass
	Icon        string
}

// Event reports things that happen, like a doorbell press, implementing the event.mqtt integration. Events are
// published once and never cached or republished.
//
// See https://www.home-assistant.io/integrations/event.mqtt/.
type Event struct {
	entity

	cfg        EventConfig
	eventTypes []string
}

var _ haentity.Entity = &Event{}

// NewEvent constructs an Event on b. objectID names what the event reports and defaults to "event" when blank.
func NewEvent(b *haentity.Bridge, name, objectID string, cfg EventConfig) *Event {
	return &Event{
		entity: newEntity(b, haentity.ComponentID{
			Component: haentity.ComponentEvent,
			ObjectID:  cmp.Or(strings.TrimSpace(objectID), haentity.ComponentEvent),
		}, name),

		cfg:        cfg,
		eventTypes: slices.Sorted(slices.Values(dedupe(cfg.EventTypes))),
	}
}

// EventTypes returns the advertised event types.
func (e *Event) EventTypes() []string {
	return slices.Clone(e.eventTypes)
}

// PublishConfiguration publishes the discovery document for the event.
func (e *Event) PublishConfiguration(ctx context.Context) error {
	doc := e.document()
	if err := discovery.SetRequiredSlice("event types", doc, discovery.FieldEventTypes, e.eventTypes); err != nil {
		return fmt.Errorf("publish configuration %s: %w", e.id, err)
	}
	doc[discovery.FieldStateTopic] = e.topic(haentity.TopicState)
	discovery.MaybeSet(doc, discovery.FieldDeviceClass, e.cfg.DeviceClass)
	discovery.MaybeSet(doc, discovery.FieldIcon, e.cfg.Icon)

	return e.publishConfiguration(ctx, doc)
}

// RepublishState does nothing: replaying an event would make Home Assistant see it twice.
func (e *Event) RepublishState(context.Context) error {
	return nil
}

// PublishEvent publishes {"event_type": eventType, ...attrs}. An "event_type" key in attrs is dropped. It returns
// ErrUnknownOption for an event type that was not configured.
func (e *Event) PublishEvent(ctx context.Context, eventType string, attrs discovery.Attributes) error {
	if !slices.Contains(e.eventTypes, eventType) {
		return fmt.Errorf("publish %s: %w: %q", e.id, ErrUnknownOption, eventType)
	}

	if err := attrs.Validate(); err != nil {
		return fmt.Errorf("publish %s: %w", e.id, err)
	}

	doc, _ := attrs.Document(discovery.FieldEventType)
	doc[discovery.FieldEventType] = eventType

	payload, err := doc.Marshal()
	if err != nil {
		return fmt.Errorf("publish %s: marshal: %w", e.id, err)
	}

	if err = e.b.PublishMessage(ctx, e.topic(haentity.TopicState), payload, mqtt.WriteOptions{}); err != nil {
		return fmt.Errorf("publish %s: %w", e.id, err)
	}

	return nil
}
