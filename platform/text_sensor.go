package platform

import (
	"context"
	"fmt"
	"time"

	"github.com/nlowe/haentity"
	"github.com/nlowe/haentity/deviceclass"
	"github.com/nlowe/haentity/discovery"
	"github.com/nlowe/haentity/mqtt"
)

// TimestampLayout is the layout timestamps are published with.
const TimestampLayout = "2006-01-02T15:04:05-0700"

// TextSensorConfig configures the sensors built by NewString, NewJSON and NewTimestamp. They have no state class.
type TextSensorConfig struct {
	Icon           string
	ForceUpdate    bool
	WithAttributes bool
	ExpireAfter    time.Duration
	Retain         bool
}

func (c TextSensorConfig) sensor(class deviceclass.DeviceClass) SensorConfig {
	return SensorConfig{
		DeviceClass:    class,
		Icon:           c.Icon,
		ForceUpdate:    c.ForceUpdate,
		WithAttributes: c.WithAttributes,
		ExpireAfter:    c.ExpireAfter,
		Retain:         c.Retain,
	}
}

// NewString constructs a sensor with a free-form string value, published under the object id "string".
func NewString(b *haentity.Bridge, name, childObjectID string, cfg TextSensorConfig) *Sensor {
	return NewSensor(b, name, childObjectID, cfg.sensor(deviceclass.String))
}

// JSON is a sensor whose value is a JSON document, published under the object id "json".
type JSON struct {
	*Sensor
}

// NewJSON constructs a JSON sensor.
func NewJSON(b *haentity.Bridge, name, childObjectID string, cfg TextSensorConfig) *JSON {
	return &JSON{Sensor: NewSensor(b, name, childObjectID, cfg.sensor(deviceclass.JSON))}
}

var jsonMarshaler = mqtt.JsonValueMarshaler[any]()

// PublishJSON marshals v and publishes it as the sensor value. Map keys are sorted.
func (j *JSON) PublishJSON(ctx context.Context, v any) error {
	payload, err := jsonMarshaler(v)
	if err != nil {
		return fmt.Errorf("publish json %s: %w", j.id, err)
	}

	return j.PublishValue(ctx, string(payload), nil)
}

// UpdateJSON is PublishJSON that skips a document identical to the last one published.
func (j *JSON) UpdateJSON(ctx context.Context, v any) error {
	payload, err := jsonMarshaler(v)
	if err != nil {
		return fmt.Errorf("update json %s: %w", j.id, err)
	}

	return j.UpdateValue(ctx, string(payload), nil)
}

// Timestamp is a sensor with the timestamp device class.
type Timestamp struct {
	*Sensor
}

// NewTimestamp constructs a Timestamp.
func NewTimestamp(b *haentity.Bridge, name, childObjectID string, cfg TextSensorConfig) *Timestamp {
	return &Timestamp{Sensor: NewSensor(b, name, childObjectID, cfg.sensor(deviceclass.Timestamp))}
}

// PublishTimestamp publishes t formatted with TimestampLayout, keeping t's time zone.
func (s *Timestamp) PublishTimestamp(ctx context.Context, t time.Time, attrs discovery.Attributes) error {
	return s.PublishValue(ctx, t.Format(TimestampLayout), attrs)
}

// UpdateTimestamp is PublishTimestamp that skips a value equal, once formatted, to the last one published.
func (s *Timestamp) UpdateTimestamp(ctx context.Context, t time.Time, attrs discovery.Attributes) error {
	return s.UpdateValue(ctx, t.Format(TimestampLayout), attrs)
}
