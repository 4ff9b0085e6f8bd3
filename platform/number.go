package platform

import (
	"cmp"
	"context"
	"fmt"
	"strings"

	"github.com/nlowe/haentity"
	"github.com/nlowe/haentity/discovery"
	"github.com/nlowe/haentity/hass"
	"github.com/nlowe/haentity/mqtt"
)

// NumberConfig configures a Number. Min and Max are always advertised; start from DefaultNumberConfig to get Home
// Assistant's defaults.
type NumberConfig struct {
	Min  float64
	Max  float64
	Step float64

	Unit string
	Mode hass.NumberMode

	Icon           string
	EntityCategory hass.EntityCategory
	ForceUpdate    bool

	// Retain state at the broker and ask Home Assistant to retain commands.
	Retain bool
}

// DefaultNumberConfig returns a NumberConfig for 1 to 100 in steps of 1.
func DefaultNumberConfig() NumberConfig {
	return NumberConfig{Min: 1, Max: 100, Step: 1}
}

// Number is a numeric input implementing the number.mqtt integration.
//
// See https://www.home-assistant.io/integrations/number.mqtt/.
type Number struct {
	entity

	cfg NumberConfig

	state   *mqtt.Value[float64]
	command *mqtt.RemoteValue[float64]
}

var _ haentity.Entity = &Number{}

// NewNumber constructs a Number on b. objectID names what the number controls and defaults to "number" when blank.
func NewNumber(b *haentity.Bridge, name, objectID string, cfg NumberConfig) *Number {
	n := &Number{
		entity: newEntity(b, haentity.ComponentID{
			Component: haentity.ComponentNumber,
			ObjectID:  cmp.Or(strings.TrimSpace(objectID), haentity.ComponentNumber),
		}, name),

		cfg: cfg,
	}

	n.state = mqtt.NewValueWithOptions(n.topic(haentity.TopicState), mqtt.FloatMarshaler, stateOptions(cfg.Retain))
	n.command = mqtt.NewRemoteValue(n.topic(haentity.TopicCommand), mqtt.FloatUnmarshaler)

	return n
}

// PublishConfiguration publishes the discovery document for the number.
func (n *Number) PublishConfiguration(ctx context.Context) error {
	doc := n.document()
	doc[discovery.FieldMin] = n.cfg.Min
	doc[discovery.FieldMax] = n.cfg.Max
	discovery.MaybeSet(doc, discovery.FieldStep, n.cfg.Step)
	discovery.MaybeSet(doc, discovery.FieldUnitOfMeasurement, n.cfg.Unit)
	discovery.SetIfNot(hass.NumberModeAuto, doc, discovery.FieldMode, n.cfg.Mode)
	discovery.MaybeSet(doc, discovery.FieldIcon, n.cfg.Icon)
	discovery.MaybeSet(doc, discovery.FieldEntityCategory, n.cfg.EntityCategory)
	discovery.MaybeSet(doc, discovery.FieldForceUpdate, n.cfg.ForceUpdate)
	discovery.MaybeSet(doc, discovery.FieldRetain, n.cfg.Retain)
	doc[discovery.FieldStateTopic] = n.state.Topic()
	doc[discovery.FieldCommandTopic] = n.command.Topic()

	return n.publishConfiguration(ctx, doc)
}

// RepublishState publishes the last number again.
func (n *Number) RepublishState(ctx context.Context) error {
	if err := republish(ctx, n.b, n.state); err != nil {
		return fmt.Errorf("republish %s: %w", n.id, err)
	}

	return nil
}

// PublishNumber publishes v with mqtt.FloatPrecision decimals.
func (n *Number) PublishNumber(ctx context.Context, v float64) error {
	if err := mqtt.Error(n.state.Write(ctx, n.b, v)); err != nil {
		return fmt.Errorf("publish %s: %w", n.id, err)
	}

	return nil
}

// UpdateNumber is PublishNumber that skips an unchanged number.
func (n *Number) UpdateNumber(ctx context.Context, v float64) error {
	if _, err := n.state.WriteIfChanged(ctx, n.b, v, mqtt.Equal[float64]); err != nil {
		return fmt.Errorf("update %s: %w", n.id, err)
	}

	return nil
}

// OnNumber calls callback with the number Home Assistant sets. Payloads that do not parse as a number are dropped.
func (n *Number) OnNumber(ctx context.Context, callback func(v float64)) error {
	return subscribe(ctx, &n.entity, n.command, callback)
}
