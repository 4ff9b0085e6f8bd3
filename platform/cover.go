package platform

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/nlowe/haentity"
	"github.com/nlowe/haentity/discovery"
	"github.com/nlowe/haentity/hass"
	"github.com/nlowe/haentity/mqtt"
)

// Cover topic subjects. Like a Light, a cover's topics use the child object id (or "cover") as the object level, e.g.
// livingroom/cover/blinds/position/command.
const (
	CoverSubjectState    = "state"
	CoverSubjectPosition = "position"
)

// CoverObjectID is the object id of every cover's config topic and unique_id, e.g.
// homeassistant/cover/livingroom/curtain_blinds/config.
const CoverObjectID = "curtain"

// MaxCoverPosition is fully open. Positions above it are published as MaxCoverPosition.
const MaxCoverPosition uint8 = 100

// CoverConfig configures a Cover.
type CoverConfig struct {
	// See https://www.home-assistant.io/integrations/cover/#device_class, e.g. "curtain". Blank omits it.
	DeviceClass string

	// A read-only cover reports state and position but Home Assistant cannot control it.
	ReadOnly bool

	// Device positions Home Assistant maps to 0 and 100. Nil uses Home Assistant's defaults.
	PositionClosed *uint8
	PositionOpen   *uint8

	Icon string

	// Retain state at the broker and ask Home Assistant to retain commands.
	Retain bool
}

// Cover implements the cover.mqtt integration with state and position.
//
// See https://www.home-assistant.io/integrations/cover.mqtt/.
type Cover struct {
	entity

	cfg    CoverConfig
	object string

	state    *mqtt.Value[hass.CoverState]
	position *mqtt.Value[uint8]

	action      *mqtt.RemoteValue[hass.CoverAction]
	setPosition *mqtt.RemoteValue[uint8]
}

var _ haentity.Entity = &Cover{}

// NewCover constructs a Cover on b.
func NewCover(b *haentity.Bridge, name, childObjectID string, cfg CoverConfig) *Cover {
	c := &Cover{
		entity: newEntity(b, haentity.ComponentID{
			Component:     haentity.ComponentCover,
			ObjectID:      CoverObjectID,
			ChildObjectID: childObjectID,
		}, name),

		cfg: cfg,
	}
	c.object = cmp.Or(c.id.Child(), haentity.ComponentCover)

	opts := stateOptions(cfg.Retain)
	c.state = mqtt.NewValueWithOptions(c.subjectTopic(haentity.TopicState, CoverSubjectState), hass.CoverStateMarshaler, opts)
	c.position = mqtt.NewValueWithOptions(c.subjectTopic(haentity.TopicState, CoverSubjectPosition), mqtt.Uint8Marshaler, opts)

	c.action = mqtt.NewRemoteValue(c.subjectTopic(haentity.TopicCommand, CoverSubjectState), hass.CoverActionUnmarshaler)
	c.setPosition = mqtt.NewRemoteValue(c.subjectTopic(haentity.TopicCommand, CoverSubjectPosition), mqtt.Uint8Unmarshaler)

	return c
}

func (c *Cover) subjectTopic(kind haentity.TopicType, subject string) string {
	return c.b.Topic(kind, haentity.ComponentCover, c.object, subject)
}

// PublishConfiguration publishes the discovery document for the cover. A read-only cover advertises no command topics.
func (c *Cover) PublishConfiguration(ctx context.Context) error {
	doc := c.document()
	discovery.MaybeSet(doc, discovery.FieldDeviceClass, strings.TrimSpace(c.cfg.DeviceClass))
	discovery.MaybeSet(doc, discovery.FieldIcon, c.cfg.Icon)
	discovery.MaybeSet(doc, discovery.FieldRetain, c.cfg.Retain)

	doc[discovery.FieldStateTopic] = c.state.Topic()
	doc[discovery.FieldPositionTopic] = c.position.Topic()
	if !c.cfg.ReadOnly {
		doc[discovery.FieldCommandTopic] = c.action.Topic()
		doc[discovery.FieldSetPositionTopic] = c.setPosition.Topic()
	}

	discovery.MaybeSetPtr(doc, discovery.FieldPositionClosed, c.cfg.PositionClosed)
	discovery.MaybeSetPtr(doc, discovery.FieldPositionOpen, c.cfg.PositionOpen)

	return c.publishConfiguration(ctx, doc)
}

// RepublishState publishes the last state and position again.
func (c *Cover) RepublishState(ctx context.Context) error {
	if err := errors.Join(
		republish(ctx, c.b, c.state),
		republish(ctx, c.b, c.position),
	); err != nil {
		return fmt.Errorf("republish %s: %w", c.id, err)
	}

	return nil
}

// PublishState publishes state. hass.CoverStateUnknown, and anything else that is not a cover state, is not published
// and not cached.
func (c *Cover) PublishState(ctx context.Context, state hass.CoverState) error {
	if !state.Valid() {
		c.log.With(slog.String("state", string(state))).Debug("Not publishing unknown cover state")
		return nil
	}

	if err := mqtt.Error(c.state.Write(ctx, c.b, state)); err != nil {
		return fmt.Errorf("publish %s state: %w", c.id, err)
	}

	return nil
}

// UpdateState is PublishState that skips an unchanged state.
func (c *Cover) UpdateState(ctx context.Context, state hass.CoverState) error {
	if !state.Valid() {
		return nil
	}

	if _, err := c.state.WriteIfChanged(ctx, c.b, state, mqtt.Equal[hass.CoverState]); err != nil {
		return fmt.Errorf("update %s state: %w", c.id, err)
	}

	return nil
}

// PublishPosition publishes position, 0 for closed to MaxCoverPosition for open.
func (c *Cover) PublishPosition(ctx context.Context, position uint8) error {
	if err := mqtt.Error(c.position.Write(ctx, c.b, min(position, MaxCoverPosition))); err != nil {
		return fmt.Errorf("publish %s position: %w", c.id, err)
	}

	return nil
}

// UpdatePosition is PublishPosition that skips an unchanged position.
func (c *Cover) UpdatePosition(ctx context.Context, position uint8) error {
	if _, err := c.position.WriteIfChanged(ctx, c.b, min(position, MaxCoverPosition), mqtt.Equal[uint8]); err != nil {
		return fmt.Errorf("update %s position: %w", c.id, err)
	}

	return nil
}

// OnAction calls callback with the action Home Assistant requests. Unrecognized payloads are delivered as
// hass.CoverActionUnknown. It returns ErrReadOnly for a read-only cover.
func (c *Cover) OnAction(ctx context.Context, callback func(action hass.CoverAction)) error {
	if c.cfg.ReadOnly {
		return fmt.Errorf("%s action: %w", c.id, ErrReadOnly)
	}

	return subscribe(ctx, &c.entity, c.action, callback)
}

// OnPosition calls callback with the position Home Assistant requests. Payloads that are not 0-255 are dropped. It
// returns ErrReadOnly for a read-only cover.
func (c *Cover) OnPosition(ctx context.Context, callback func(position uint8)) error {
	if c.cfg.ReadOnly {
		return fmt.Errorf("%s position: %w", c.id, ErrReadOnly)
	}

	return subscribe(ctx, &c.entity, c.setPosition, callback)
}
