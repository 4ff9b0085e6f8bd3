package platform

import (
	"context"
	"time"

	"github.com/nlowe/haentity"
	"github.com/nlowe/haentity/deviceclass"
	"github.com/nlowe/haentity/discovery"
	"github.com/nlowe/haentity/hass"
)

// BinaryConfig configures the binary sensors built by NewBoolean, NewDoor and friends.
type BinaryConfig struct {
	Icon           string
	ForceUpdate    bool
	WithAttributes bool
	ExpireAfter    time.Duration
	OffDelay       time.Duration
	Retain         bool
}

func (c BinaryConfig) sensor(class deviceclass.DeviceClass) SensorConfig {
	return SensorConfig{
		DeviceClass:    class,
		Icon:           c.Icon,
		ForceUpdate:    c.ForceUpdate,
		WithAttributes: c.WithAttributes,
		ExpireAfter:    c.ExpireAfter,
		OffDelay:       c.OffDelay,
		Retain:         c.Retain,
	}
}

// NewBoolean constructs a binary sensor without a device class, published under the object id "boolean".
func NewBoolean(b *haentity.Bridge, name, childObjectID string, cfg BinaryConfig) *Sensor {
	return NewSensor(b, name, childObjectID, cfg.sensor(deviceclass.Boolean))
}

// NewDoor constructs a door sensor. Publish true for open.
func NewDoor(b *haentity.Bridge, name, childObjectID string, cfg BinaryConfig) *Sensor {
	return NewSensor(b, name, childObjectID, cfg.sensor(deviceclass.BinaryDoor))
}

// NewMotion constructs a motion sensor. Publish true while motion is detected.
func NewMotion(b *haentity.Bridge, name, childObjectID string, cfg BinaryConfig) *Sensor {
	return NewSensor(b, name, childObjectID, cfg.sensor(deviceclass.BinaryMotion))
}

// NewSound constructs a sound sensor. Publish true while sound is detected.
func NewSound(b *haentity.Bridge, name, childObjectID string, cfg BinaryConfig) *Sensor {
	return NewSensor(b, name, childObjectID, cfg.sensor(deviceclass.BinarySound))
}

// Lock is a binary sensor reporting whether something is locked. Home Assistant's lock device class reads ON as
// unlocked, so Lock inverts the value it publishes.
type Lock struct {
	*Sensor
}

// NewLock constructs a Lock.
func NewLock(b *haentity.Bridge, name, childObjectID string, cfg BinaryConfig) *Lock {
	return &Lock{Sensor: newSensor(b, name, childObjectID, cfg.sensor(deviceclass.BinaryLock), hass.InvertedBoolMarshaler)}
}

// PublishLock publishes OFF for locked and ON for unlocked.
func (l *Lock) PublishLock(ctx context.Context, locked bool, attrs discovery.Attributes) error {
	return l.PublishBool(ctx, locked, attrs)
}

// UpdateLock is PublishLock that skips an unchanged state.
func (l *Lock) UpdateLock(ctx context.Context, locked bool, attrs discovery.Attributes) error {
	return l.UpdateBool(ctx, locked, attrs)
}
