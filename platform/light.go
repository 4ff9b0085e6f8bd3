package platform

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/nlowe/haentity"
	"github.com/nlowe/haentity/discovery"
	"github.com/nlowe/haentity/hass"
	"github.com/nlowe/haentity/mqtt"
)

// Light topic subjects. A light's topics use the child object id (or "light") as the object level and the subject as
// the child level, e.g. livingroom/light/ceiling/brightness/command.
const (
	LightSubjectOnOff      = "onoff"
	LightSubjectBrightness = "brightness"
	LightSubjectRGB        = "rgb"
	LightSubjectEffect     = "effect"
)

// LightConfig selects the capabilities a Light advertises. On/off is always available.
type LightConfig struct {
	WithBrightness bool
	WithRGBColor   bool

	// Effects are advertised deduplicated and sorted. An empty list disables effects.
	Effects []string

	Icon string

	// Retain state at the broker and ask Home Assistant to retain commands.
	Retain bool
}

// Light implements the default schema of the light.mqtt integration.
//
// See https://www.home-assistant.io/integrations/light.mqtt/.
type Light struct {
	entity

	cfg     LightConfig
	object  string
	effects []string

	on         *mqtt.Value[bool]
	brightness *mqtt.Value[uint8]
	rgb        *mqtt.Value[hass.RGB]
	effect     *mqtt.Value[string]

	onCommand         *mqtt.RemoteValue[bool]
	brightnessCommand *mqtt.RemoteValue[uint8]
	rgbCommand        *mqtt.RemoteValue[hass.RGB]
	effectCommand     *mqtt.RemoteValue[string]
}

var _ haentity.Entity = &Light{}

// NewLight constructs a Light on b.
func NewLight(b *haentity.Bridge, name, childObjectID string, cfg LightConfig) *Light {
	l := &Light{
		entity: newEntity(b, haentity.ComponentID{
			Component:     haentity.ComponentLight,
			ObjectID:      haentity.ComponentLight,
			ChildObjectID: childObjectID,
		}, name),

		cfg:     cfg,
		effects: slices.Sorted(slices.Values(dedupe(cfg.Effects))),
	}
	l.object = cmp.Or(l.id.Child(), haentity.ComponentLight)

	opts := stateOptions(cfg.Retain)
	l.on = mqtt.NewValueWithOptions(l.subjectTopic(haentity.TopicState, LightSubjectOnOff), hass.BoolMarshaler, opts)
	l.brightness = mqtt.NewValueWithOptions(l.subjectTopic(haentity.TopicState, LightSubjectBrightness), mqtt.Uint8Marshaler, opts)
	l.rgb = mqtt.NewValueWithOptions(l.subjectTopic(haentity.TopicState, LightSubjectRGB), hass.RGBMarshaler, opts)
	l.effect = mqtt.NewValueWithOptions(l.subjectTopic(haentity.TopicState, LightSubjectEffect), mqtt.StringMarshaler, opts)

	l.onCommand = mqtt.NewRemoteValue(l.subjectTopic(haentity.TopicCommand, LightSubjectOnOff), hass.BoolUnmarshaler)
	l.brightnessCommand = mqtt.NewRemoteValue(l.subjectTopic(haentity.TopicCommand, LightSubjectBrightness), mqtt.Uint8Unmarshaler)
	l.rgbCommand = mqtt.NewRemoteValue(l.subjectTopic(haentity.TopicCommand, LightSubjectRGB), hass.RGBUnmarshaler)
	l.effectCommand = mqtt.NewRemoteValue(l.subjectTopic(haentity.TopicCommand, LightSubjectEffect), mqtt.StringUnmarshaler)

	return l
}

func (l *Light) subjectTopic(kind haentity.TopicType, subject string) string {
	return l.b.Topic(kind, haentity.ComponentLight, l.object, subject)
}

// Effects returns the advertised effect list.
func (l *Light) Effects() []string {
	return slices.Clone(l.effects)
}

// PublishConfiguration publishes the discovery document for the light.
func (l *Light) PublishConfiguration(ctx context.Context) error {
	doc := l.document()
	discovery.MaybeSet(doc, discovery.FieldIcon, l.cfg.Icon)
	discovery.MaybeSet(doc, discovery.FieldRetain, l.cfg.Retain)

	doc[discovery.FieldStateTopic] = l.on.Topic()
	doc[discovery.FieldCommandTopic] = l.onCommand.Topic()

	if l.cfg.WithBrightness {
		doc[discovery.FieldBrightnessStateTopic] = l.brightness.Topic()
		doc[discovery.FieldBrightnessCommandTopic] = l.brightnessCommand.Topic()
	}

	if l.cfg.WithRGBColor {
		doc[discovery.FieldRGBStateTopic] = l.rgb.Topic()
		doc[discovery.FieldRGBCommandTopic] = l.rgbCommand.Topic()
	}

	if len(l.effects) > 0 {
		doc[discovery.FieldEffectStateTopic] = l.effect.Topic()
		doc[discovery.FieldEffectCommandTopic] = l.effectCommand.Topic()
		discovery.MaybeSetSlice(doc, discovery.FieldEffectList, l.effects)
	}

	return l.publishConfiguration(ctx, doc)
}

// RepublishState publishes every cached light state again.
func (l *Light) RepublishState(ctx context.Context) error {
	if err := errors.Join(
		republish(ctx, l.b, l.on),
		republish(ctx, l.b, l.brightness),
		republish(ctx, l.b, l.rgb),
		republish(ctx, l.b, l.effect),
	); err != nil {
		return fmt.Errorf("republish %s: %w", l.id, err)
	}

	return nil
}

func (l *Light) capability(name string, enabled bool) error {
	if !enabled {
		return fmt.Errorf("%s %s: %w", l.id, name, ErrCapabilityNotEnabled)
	}

	return nil
}

// PublishIsOn publishes ON or OFF.
func (l *Light) PublishIsOn(ctx context.Context, on bool) error {
	if err := mqtt.Error(l.on.Write(ctx, l.b, on)); err != nil {
		return fmt.Errorf("publish %s on: %w", l.id, err)
	}

	return nil
}

// PublishBrightness publishes a brightness of 0-255. It returns ErrCapabilityNotEnabled unless WithBrightness is set.
func (l *Light) PublishBrightness(ctx context.Context, brightness uint8) error {
	if err := l.capability(LightSubjectBrightness, l.cfg.WithBrightness); err != nil {
		return err
	}

	if err := mqtt.Error(l.brightness.Write(ctx, l.b, brightness)); err != nil {
		return fmt.Errorf("publish %s brightness: %w", l.id, err)
	}

	return nil
}

// PublishRGB publishes a color as r,g,b. It returns ErrCapabilityNotEnabled unless WithRGBColor is set.
func (l *Light) PublishRGB(ctx context.Context, rgb hass.RGB) error {
	if err := l.capability(LightSubjectRGB, l.cfg.WithRGBColor); err != nil {
		return err
	}

	if err := mqtt.Error(l.rgb.Write(ctx, l.b, rgb)); err != nil {
		return fmt.Errorf("publish %s rgb: %w", l.id, err)
	}

	return nil
}

// PublishEffect publishes the active effect. It returns ErrCapabilityNotEnabled when no effects are configured.
func (l *Light) PublishEffect(ctx context.Context, effect string) error {
	if err := l.capability(LightSubjectEffect, len(l.effects) > 0); err != nil {
		return err
	}

	if err := mqtt.Error(l.effect.Write(ctx, l.b, effect)); err != nil {
		return fmt.Errorf("publish %s effect: %w", l.id, err)
	}

	return nil
}

// OnOn calls callback with true when Home Assistant turns the light on and false when it turns it off.
func (l *Light) OnOn(ctx context.Context, callback func(on bool)) error {
	return subscribe(ctx, &l.entity, l.onCommand, callback)
}

// OnBrightness calls callback with the brightness Home Assistant sets. Payloads that are not 0-255 are dropped.
func (l *Light) OnBrightness(ctx context.Context, callback func(brightness uint8)) error {
	if err := l.capability(LightSubjectBrightness, l.cfg.WithBrightness); err != nil {
		return err
	}

	return subscribe(ctx, &l.entity, l.brightnessCommand, callback)
}

// OnRGB calls callback with the color Home Assistant sets. Payloads that are not r,g,b are dropped.
func (l *Light) OnRGB(ctx context.Context, callback func(rgb hass.RGB)) error {
	if err := l.capability(LightSubjectRGB, l.cfg.WithRGBColor); err != nil {
		return err
	}

	return subscribe(ctx, &l.entity, l.rgbCommand, callback)
}

// OnEffect calls callback with the effect Home Assistant selects.
func (l *Light) OnEffect(ctx context.Context, callback func(effect string)) error {
	if err := l.capability(LightSubjectEffect, len(l.effects) > 0); err != nil {
		return err
	}

	return subscribe(ctx, &l.entity, l.effectCommand, callback)
}
