package platform

import (
	"cmp"
	"context"
	"fmt"

	"github.com/nlowe/haentity"
	"github.com/nlowe/haentity/discovery"
	"github.com/nlowe/haentity/hass"
	"github.com/nlowe/haentity/mqtt"
)

// MaxTextLength is the longest text Home Assistant accepts, and the maximum used when TextConfig.MaxLength is zero.
const MaxTextLength uint8 = 255

// TextConfig configures a Text.
type TextConfig struct {
	MinLength uint8
	MaxLength uint8

	// Blank is hass.TextModeText.
	Mode hass.TextMode

	// Without a state topic Home Assistant shows the last text it sent and PublishText returns
	// ErrStateTopicNotEnabled.
	WithStateTopic bool

	Icon           string
	EntityCategory hass.EntityCategory
	ForceUpdate    bool

	// Retain state at the broker and ask Home Assistant to retain commands.
	Retain bool
}

// Text is a free-form text input implementing the text.mqtt integration.
//
// See https://www.home-assistant.io/integrations/text.mqtt/.
type Text struct {
	entity

	cfg TextConfig

	state   *mqtt.Value[string]
	command *mqtt.RemoteValue[string]
}

var _ haentity.Entity = &Text{}

// NewText constructs a Text on b.
func NewText(b *haentity.Bridge, name, childObjectID string, cfg TextConfig) *Text {
	t := &Text{
		entity: newEntity(b, haentity.ComponentID{
			Component:     haentity.ComponentText,
			ObjectID:      haentity.ComponentText,
			ChildObjectID: childObjectID,
		}, name),

		cfg: cfg,
	}

	t.state = mqtt.NewValueWithOptions(t.topic(haentity.TopicState), mqtt.StringMarshaler, stateOptions(cfg.Retain))
	t.command = mqtt.NewRemoteValue(t.topic(haentity.TopicCommand), mqtt.StringUnmarshaler)

	return t
}

// PublishConfiguration publishes the discovery document for the text.
func (t *Text) PublishConfiguration(ctx context.Context) error {
	doc := t.document()
	doc[discovery.FieldMin] = t.cfg.MinLength
	doc[discovery.FieldMax] = cmp.Or(t.cfg.MaxLength, MaxTextLength)
	doc[discovery.FieldMode] = cmp.Or(t.cfg.Mode, hass.TextModeText)
	doc[discovery.FieldForceUpdate] = t.cfg.ForceUpdate
	doc[discovery.FieldRetain] = t.cfg.Retain
	discovery.MaybeSet(doc, discovery.FieldIcon, t.cfg.Icon)
	discovery.MaybeSet(doc, discovery.FieldEntityCategory, t.cfg.EntityCategory)

	if t.cfg.WithStateTopic {
		doc[discovery.FieldStateTopic] = t.state.Topic()
	}
	doc[discovery.FieldCommandTopic] = t.command.Topic()

	return t.publishConfiguration(ctx, doc)
}

// RepublishState publishes the last text again.
func (t *Text) RepublishState(ctx context.Context) error {
	if err := republish(ctx, t.b, t.state); err != nil {
		return fmt.Errorf("republish %s: %w", t.id, err)
	}

	return nil
}

// PublishText publishes text. It returns ErrStateTopicNotEnabled unless the text was configured WithStateTopic.
func (t *Text) PublishText(ctx context.Context, text string) error {
	if !t.cfg.WithStateTopic {
		return fmt.Errorf("publish %s: %w", t.id, ErrStateTopicNotEnabled)
	}

	if err := mqtt.Error(t.state.Write(ctx, t.b, text)); err != nil {
		return fmt.Errorf("publish %s: %w", t.id, err)
	}

	return nil
}

// UpdateText is PublishText that skips unchanged text.
func (t *Text) UpdateText(ctx context.Context, text string) error {
	if !t.cfg.WithStateTopic {
		return fmt.Errorf("update %s: %w", t.id, ErrStateTopicNotEnabled)
	}

	if _, err := t.state.WriteIfChanged(ctx, t.b, text, mqtt.Equal[string]); err != nil {
		return fmt.Errorf("update %s: %w", t.id, err)
	}

	return nil
}

// OnText calls callback with the text Home Assistant sets.
func (t *Text) OnText(ctx context.Context, callback func(text string)) error {
	return subscribe(ctx, &t.entity, t.command, callback)
}
