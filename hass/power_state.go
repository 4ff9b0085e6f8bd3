package hass

import (
	"github.com/nlowe/haentity/mqtt"
)

// PowerState represents generic on/off state for devices. This may or may not refer to physical power depending on the
// underlying entity (For example, a motion sensor may return PowerStateOn when motion is detected).
type PowerState string

var (
	PowerStateMarshaler mqtt.ValueMarshaler[PowerState] = func(v PowerState) ([]byte, error) {
		return mqtt.StringMarshaler(string(v))
	}

	PowerStateUnmarshaler mqtt.ValueUnmarshaler[PowerState] = func(bytes []byte) (PowerState, error) {
		v, err := mqtt.StringUnmarshaler(bytes)
		return PowerState(v), err
	}

	// BoolMarshaler writes PowerStateOn for true and PowerStateOff for false.
	BoolMarshaler mqtt.ValueMarshaler[bool] = func(v bool) ([]byte, error) {
		return PowerStateMarshaler(PowerStateFromBool(v))
	}

	// InvertedBoolMarshaler writes PowerStateOff for true. Home Assistant's lock device class reports "locked" as off.
	InvertedBoolMarshaler mqtt.ValueMarshaler[bool] = func(v bool) ([]byte, error) {
		return BoolMarshaler(!v)
	}

	// BoolUnmarshaler never fails: anything other than PowerStateOn is false.
	BoolUnmarshaler mqtt.ValueUnmarshaler[bool] = func(bytes []byte) (bool, error) {
		p, err := PowerStateUnmarshaler(bytes)
		return p.Bool(), err
	}
)

const (
	PowerStateOn  PowerState = "ON"
	PowerStateOff PowerState = "OFF"
)

// PowerStateFromBool maps true to PowerStateOn and false to PowerStateOff.
func PowerStateFromBool(on bool) PowerState {
	if on {
		return PowerStateOn
	}

	return PowerStateOff
}

// Bool reports whether p is PowerStateOn.
func (p PowerState) Bool() bool {
	return p == PowerStateOn
}
