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

// SelectConfig configures a Select.
type SelectConfig struct {
	// Options are advertised in order, without blanks or repeats.
	Options []string

	Icon           string
	EntityCategory hass.EntityCategory

	// Retain state at the broker and ask Home Assistant to retain commands.
	Retain bool
}

// Select is a choice between fixed options implementing the select.mqtt integration.
//
// See https://www.home-assistant.io/integrations/select.mqtt/.
type Select struct {
	entity

	cfg     SelectConfig
	options []string

	state   *mqtt.Value[string]
	command *mqtt.RemoteValue[string]
}

var _ haentity.Entity = &Select{}

// NewSelect constructs a Select on b. objectID names what the select controls and defaults to "select" when blank.
func NewSelect(b *haentity.Bridge, name, objectID string, cfg SelectConfig) *Select {
	s := &Select{
		entity: newEntity(b, haentity.ComponentID{
			Component: haentity.ComponentSelect,
			ObjectID:  cmp.Or(strings.TrimSpace(objectID), haentity.ComponentSelect),
		}, name),

		cfg:     cfg,
		options: dedupe(cfg.Options),
	}

	s.state = mqtt.NewValueWithOptions(s.topic(haentity.TopicState), mqtt.StringMarshaler, stateOptions(cfg.Retain))
	s.command = mqtt.NewRemoteValue(s.topic(haentity.TopicCommand), mqtt.StringUnmarshaler)

	return s
}

// Options returns the advertised options.
func (s *Select) Options() []string {
	return slices.Clone(s.options)
}

// PublishConfiguration publishes the discovery document for the select.
func (s *Select) PublishConfiguration(ctx context.Context) error {
	doc := s.document()
	if err := discovery.SetRequiredSlice("options", doc, discovery.FieldOptions, s.options); err != nil {
		return fmt.Errorf("publish configuration %s: %w", s.id, err)
	}
	discovery.MaybeSet(doc, discovery.FieldIcon, s.cfg.Icon)
	discovery.MaybeSet(doc, discovery.FieldEntityCategory, s.cfg.EntityCategory)
	discovery.MaybeSet(doc, discovery.FieldRetain, s.cfg.Retain)
	doc[discovery.FieldStateTopic] = s.state.Topic()
	doc[discovery.FieldCommandTopic] = s.command.Topic()

	return s.publishConfiguration(ctx, doc)
}

// RepublishState publishes the last selection again.
func (s *Select) RepublishState(ctx context.Context) error {
	if err := republish(ctx, s.b, s.state); err != nil {
		return fmt.Errorf("republish %s: %w", s.id, err)
	}

	return nil
}

// PublishSelection publishes the selected option. It returns ErrUnknownOption for an option that was not configured.
func (s *Select) PublishSelection(ctx context.Context, option string) error {
	if !slices.Contains(s.options, option) {
		return fmt.Errorf("publish %s: %w: %q", s.id, ErrUnknownOption, option)
	}

	if err := mqtt.Error(s.state.Write(ctx, s.b, option)); err != nil {
		return fmt.Errorf("publish %s: %w", s.id, err)
	}

	return nil
}

// UpdateSelection is PublishSelection that skips an unchanged selection.
func (s *Select) UpdateSelection(ctx context.Context, option string) error {
	if !slices.Contains(s.options, option) {
		return fmt.Errorf("update %s: %w: %q", s.id, ErrUnknownOption, option)
	}

	if _, err := s.state.WriteIfChanged(ctx, s.b, option, mqtt.Equal[string]); err != nil {
		return fmt.Errorf("update %s: %w", s.id, err)
	}

	return nil
}

// OnSelection calls callback with the option Home Assistant selects.
func (s *Select) OnSelection(ctx context.Context, callback func(option string)) error {
	return subscribe(ctx, &s.entity, s.command, callback)
}
