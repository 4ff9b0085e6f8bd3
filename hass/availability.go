package hass

import (
	"errors"
	"fmt"

	"github.com/nlowe/haentity/mqtt"
)

// ErrInvalidAvailability is the error returned when parsing an availability payload other than Available or
// Unavailable.
var ErrInvalidAvailability = errors.New("invalid availability")

// Availability is whether Home Assistant should consider a node online. Every entity of a Bridge shares the node's
// availability topic, and Home Assistant publishes its own Availability under the discovery prefix.
type Availability string

const (
	// Available is the Availability value for online/available devices.
	Available Availability = "online"
	// Unavailable is the Availability value for offline/unavailable devices.
	Unavailable Availability = "offline"
)

var (
	AvailabilityMarshaler mqtt.ValueMarshaler[Availability] = func(v Availability) ([]byte, error) {
		return mqtt.StringMarshaler(string(v))
	}

	// AvailabilityUnmarshaler rejects anything but Available and Unavailable, so watchers never see other payloads.
	AvailabilityUnmarshaler mqtt.ValueUnmarshaler[Availability] = func(bytes []byte) (Availability, error) {
		switch a := Availability(bytes); a {
		case Available, Unavailable:
			return a, nil
		default:
			return "", fmt.Errorf("%w: %q", ErrInvalidAvailability, string(bytes))
		}
	}
)
