package haentity

import (
	"encoding/json/jsontext"
	"errors"
	"fmt"
	"log/slog"
	"net/url"

	"github.com/nlowe/haentity/discovery"
)

// ErrNestedDeviceMetadata is the error returned when DeviceMetadata holds a JSON object as a value.
var ErrNestedDeviceMetadata = errors.New("device metadata must be flat")

// DeviceConnection maps a Device to the outside world. For example:
//
//	DeviceConnection{
//	    Kind: "mac",
//	    Value: "02:5b:26:a8:dc:12",
//	}
//
// It implements fmt.Stringer and slog.LogValuer, and marshals as a two element array.
type DeviceConnection struct {
	Kind  string
	Value string
}

func (d DeviceConnection) String() string {
	return fmt.Sprintf("[%q,%q]", d.Kind, d.Value)
}

func (d DeviceConnection) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("kind", d.Kind),
		slog.String("value", d.Value),
	)
}

func (d DeviceConnection) MarshalJSONTo(e *jsontext.Encoder) error {
	return errors.Join(
		e.WriteToken(jsontext.BeginArray),
		e.WriteToken(jsontext.String(d.Kind)),
		e.WriteToken(jsontext.String(d.Value)),
		e.WriteToken(jsontext.EndArray),
	)
}

// DeviceMetadata is the flat document published under the device key of every discovery document. Values may be
// strings, numbers, booleans or arrays, never objects.
type DeviceMetadata discovery.Document

// Validate returns ErrNestedDeviceMetadata if any value is an object.
func (m DeviceMetadata) Validate() error {
	if err := discovery.Document(m).ValidateFlat(); err != nil {
		return fmt.Errorf("%w: %w", ErrNestedDeviceMetadata, err)
	}

	return nil
}

// Device describes the physical device entities belong to. In Home Assistant a device groups entities; the
// relationship is built from the device object repeated in each entity's discovery document.
//
// See https://www.home-assistant.io/integrations/mqtt/#device-discovery-payload
type Device struct {
	// The name of the device.
	Name string

	// A list of IDs that uniquely identify the device. For example a serial number.
	Identifiers []string

	// A list of connections of the device to the outside world.
	Connections []DeviceConnection

	// The manufacturer of the device.
	Manufacturer string

	// The model of the device.
	Model string

	// The model identifier of the device.
	ModelID string

	// The serial number of the device
	SerialNumber string

	// The hardware version of the device.
	HardwareVersion string

	// The firmware version of the device
	SoftwareVersion string

	// Suggest an area if the device isn't in one yet
	SuggestedArea string

	// A link to the webpage that can manage the configuration of this device. Can be either a http://, https:// or an
	// internal homeassistant:// URL.
	ConfigurationURL *url.URL

	// Identifier of a device that routes messages between this device and Home Assistant, like a hub.
	ViaDevice string
}

// Metadata flattens d into DeviceMetadata, omitting empty fields.
func (d Device) Metadata() DeviceMetadata {
	doc := discovery.Document{}

	discovery.MaybeSet(doc, discovery.FieldDeviceName, d.Name)
	discovery.MaybeSetSlice(doc, discovery.FieldDeviceIdentifiers, d.Identifiers)
	discovery.MaybeSetSlice(doc, discovery.FieldDeviceConnections, d.Connections)
	discovery.MaybeSet(doc, discovery.FieldDeviceManufacturer, d.Manufacturer)
	discovery.MaybeSet(doc, discovery.FieldDeviceModel, d.Model)
	discovery.MaybeSet(doc, discovery.FieldDeviceModelID, d.ModelID)
	discovery.MaybeSet(doc, discovery.FieldDeviceSerialNumber, d.SerialNumber)
	discovery.MaybeSet(doc, discovery.FieldDeviceHardwareVersion, d.HardwareVersion)
	discovery.MaybeSet(doc, discovery.FieldDeviceSoftwareVersion, d.SoftwareVersion)
	discovery.MaybeSet(doc, discovery.FieldDeviceSuggestedArea, d.SuggestedArea)
	discovery.MaybeSet(doc, discovery.FieldDeviceViaDevice, d.ViaDevice)
	if d.ConfigurationURL != nil {
		doc[discovery.FieldDeviceConfigurationURL] = d.ConfigurationURL
	}

	return DeviceMetadata(doc)
}
