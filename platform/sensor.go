package platform

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/nlowe/haentity"
	"github.com/nlowe/haentity/deviceclass"
	"github.com/nlowe/haentity/discovery"
	"github.com/nlowe/haentity/hass"
	"github.com/nlowe/haentity/mqtt"
)

// SensorConfig configures a Sensor. The DeviceClass decides whether the sensor is published as a sensor or a
// binary_sensor, and the object id it is published under.
type SensorConfig struct {
	DeviceClass deviceclass.DeviceClass

	// Unit must be one of DeviceClass.Units(). Classes Home Assistant does not define accept any unit.
	Unit deviceclass.Unit

	// StateClass is ignored for binary sensors.
	StateClass hass.StateClass

	Icon           string
	EntityCategory hass.EntityCategory

	// Instruct Home Assistant to record an update even if the value hasn't changed.
	ForceUpdate bool

	// Publish a json_attributes_topic and allow PublishAttributes.
	WithAttributes bool

	// If set, Home Assistant marks the state unavailable when it is not updated within this duration.
	ExpireAfter time.Duration

	// For binary sensors only: Home Assistant turns the sensor off this long after it was turned on.
	OffDelay time.Duration

	// The number of decimals Home Assistant rounds the state to. Sensors only.
	SuggestedDisplayPrecision *uint

	// Retain state and attributes at the broker.
	Retain bool
}

// DefaultSensorConfig returns a SensorConfig for class with the measurement state class.
func DefaultSensorConfig(class deviceclass.DeviceClass) SensorConfig {
	return SensorConfig{
		DeviceClass: class,
		StateClass:  hass.StateClassMeasurement,
	}
}

// Sensor is a read-only entity reporting a single value, optionally with attributes. It implements both the
// sensor.mqtt and binary_sensor.mqtt integrations.
//
// See https://www.home-assistant.io/integrations/sensor.mqtt/ and
// https://www.home-assistant.io/integrations/binary_sensor.mqtt/.
type Sensor struct {
	entity

	cfg           SensorConfig
	boolMarshaler mqtt.ValueMarshaler[bool]

	state      *mqtt.Value[string]
	attributes *mqtt.Value[discovery.Attributes]
}

var _ haentity.Entity = &Sensor{}

// NewSensor constructs a Sensor on b. The object id comes from cfg.DeviceClass; childObjectID tells apart sensors of
// the same class.
func NewSensor(b *haentity.Bridge, name, childObjectID string, cfg SensorConfig) *Sensor {
	return newSensor(b, name, childObjectID, cfg, hass.BoolMarshaler)
}

func newSensor(b *haentity.Bridge, name, childObjectID string, cfg SensorConfig, boolMarshaler mqtt.ValueMarshaler[bool]) *Sensor {
	s := &Sensor{
		entity: newEntity(b, haentity.ComponentID{
			Component:     cfg.DeviceClass.Component(),
			ObjectID:      cfg.DeviceClass.ObjectID(),
			ChildObjectID: childObjectID,
		}, name),

		cfg:           cfg,
		boolMarshaler: boolMarshaler,
	}

	s.state = mqtt.NewValueWithOptions(s.topic(haentity.TopicState), mqtt.StringMarshaler, stateOptions(cfg.Retain))
	s.attributes = newAttributesValue(s.topic(haentity.TopicAttributes), cfg.Retain)

	return s
}

// Config returns the configuration the sensor was built with.
func (s *Sensor) Config() SensorConfig {
	return s.cfg
}

func (s *Sensor) binary() bool {
	return s.cfg.DeviceClass.SensorType() == deviceclass.BinarySensor
}

// PublishConfiguration publishes the discovery document for the sensor. It returns ErrInvalidUnit, and publishes
// nothing, if the configured unit is not valid for the device class.
func (s *Sensor) PublishConfiguration(ctx context.Context) error {
	doc := s.document()

	if !s.binary() {
		discovery.MaybeSet(doc, discovery.FieldStateClass, s.cfg.StateClass)
	}

	if class, ok := s.cfg.DeviceClass.DeviceClass(); ok {
		doc[discovery.FieldDeviceClass] = class
	}

	discovery.MaybeSet(doc, discovery.FieldIcon, s.cfg.Icon)
	discovery.MaybeSet(doc, discovery.FieldEntityCategory, s.cfg.EntityCategory)
	doc[discovery.FieldForceUpdate] = s.cfg.ForceUpdate

	unit, err := unitOfMeasurement(s.cfg.DeviceClass, s.cfg.Unit)
	if err != nil {
		return fmt.Errorf("publish configuration %s: %w", s.id, err)
	}
	discovery.MaybeSet(doc, discovery.FieldUnitOfMeasurement, unit)

	doc[discovery.FieldStateTopic] = s.state.Topic()
	if s.cfg.WithAttributes {
		doc[discovery.FieldAttributesTopic] = s.attributes.Topic()
	}

	discovery.MaybeSet(doc, discovery.FieldExpireAfter, s.cfg.ExpireAfter)
	if s.binary() {
		discovery.MaybeSet(doc, discovery.FieldOffDelay, s.cfg.OffDelay)
	} else {
		discovery.MaybeSetPtr(doc, discovery.FieldSuggestedDisplayPrecision, s.cfg.SuggestedDisplayPrecision)
	}

	return s.publishConfiguration(ctx, doc)
}

func unitOfMeasurement(class deviceclass.DeviceClass, u deviceclass.Unit) (string, error) {
	if u == "" {
		return "", nil
	}

	if unit, ok := class.UnitOfMeasurement(u); ok {
		return unit, nil
	}

	if _, defined := class.DeviceClass(); !defined && len(class.Units()) == 0 {
		return string(u), nil
	}

	return "", fmt.Errorf("%w: %q for %s", ErrInvalidUnit, u, class.ObjectID())
}

// PublishValue publishes value to the state topic and, if attrs is not empty, attrs to the attributes topic.
func (s *Sensor) PublishValue(ctx context.Context, value string, attrs discovery.Attributes) error {
	if err := mqtt.Error(s.state.Write(ctx, s.b, value)); err != nil {
		return fmt.Errorf("publish value %s: %w", s.id, err)
	}

	if len(attrs) == 0 {
		return nil
	}

	return s.PublishAttributes(ctx, attrs)
}

// PublishNumber is PublishValue with value written with mqtt.FloatPrecision decimals, e.g. 22.5 as "22.500000".
func (s *Sensor) PublishNumber(ctx context.Context, value float64, attrs discovery.Attributes) error {
	v, _ := mqtt.FloatMarshaler(value)
	return s.PublishValue(ctx, string(v), attrs)
}

// PublishBool is PublishValue with value written as ON or OFF.
func (s *Sensor) PublishBool(ctx context.Context, value bool, attrs discovery.Attributes) error {
	v, err := s.boolMarshaler(value)
	if err != nil {
		return fmt.Errorf("publish value %s: %w", s.id, err)
	}

	return s.PublishValue(ctx, string(v), attrs)
}

// UpdateValue is PublishValue that skips the value when it equals the last value published, and the attributes when
// they equal the last attributes published.
func (s *Sensor) UpdateValue(ctx context.Context, value string, attrs discovery.Attributes) error {
	if _, err := s.state.WriteIfChanged(ctx, s.b, value, mqtt.Equal[string]); err != nil {
		return fmt.Errorf("update value %s: %w", s.id, err)
	}

	if len(attrs) == 0 {
		return nil
	}

	return s.UpdateAttributes(ctx, attrs)
}

// UpdateNumber is UpdateValue for numbers. Values are compared after formatting.
func (s *Sensor) UpdateNumber(ctx context.Context, value float64, attrs discovery.Attributes) error {
	v, _ := mqtt.FloatMarshaler(value)
	return s.UpdateValue(ctx, string(v), attrs)
}

// UpdateBool is UpdateValue for booleans.
func (s *Sensor) UpdateBool(ctx context.Context, value bool, attrs discovery.Attributes) error {
	v, err := s.boolMarshaler(value)
	if err != nil {
		return fmt.Errorf("update value %s: %w", s.id, err)
	}

	return s.UpdateValue(ctx, string(v), attrs)
}

// PublishAttributes publishes attrs to the attributes topic. It returns ErrAttributesNotEnabled unless the sensor was
// configured WithAttributes. Empty attributes are not published.
func (s *Sensor) PublishAttributes(ctx context.Context, attrs discovery.Attributes) error {
	if err := s.checkAttributes(attrs); err != nil {
		return fmt.Errorf("publish attributes %s: %w", s.id, err)
	}

	if len(attrs) == 0 {
		return nil
	}

	if err := mqtt.Error(s.attributes.Write(ctx, s.b, attrs.Clone())); err != nil {
		return fmt.Errorf("publish attributes %s: %w", s.id, err)
	}

	return nil
}

// UpdateAttributes is PublishAttributes that skips attrs equal to the last attributes published.
func (s *Sensor) UpdateAttributes(ctx context.Context, attrs discovery.Attributes) error {
	if err := s.checkAttributes(attrs); err != nil {
		return fmt.Errorf("update attributes %s: %w", s.id, err)
	}

	if len(attrs) == 0 {
		return nil
	}

	if _, err := s.attributes.WriteIfChanged(ctx, s.b, attrs.Clone(), discovery.Attributes.Equal); err != nil {
		return fmt.Errorf("update attributes %s: %w", s.id, err)
	}

	return nil
}

func (s *Sensor) checkAttributes(attrs discovery.Attributes) error {
	if !s.cfg.WithAttributes {
		return ErrAttributesNotEnabled
	}

	return attrs.Validate()
}

// RepublishState publishes the last value and the last attributes again. Nothing is published for a sensor that never
// published.
func (s *Sensor) RepublishState(ctx context.Context) error {
	if err := errors.Join(
		republish(ctx, s.b, s.state),
		republish(ctx, s.b, s.attributes),
	); err != nil {
		return fmt.Errorf("republish %s: %w", s.id, err)
	}

	return nil
}

var attributesMarshaler mqtt.ValueMarshaler[discovery.Attributes] = func(a discovery.Attributes) ([]byte, error) {
	doc, _ := a.Document()
	return doc.Marshal()
}

func newAttributesValue(topic string, retain bool) *mqtt.Value[discovery.Attributes] {
	return mqtt.NewValueWithOptions(topic, attributesMarshaler, stateOptions(retain))
}
