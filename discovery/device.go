package discovery

// Fields of the device object. See https://www.home-assistant.io/integrations/mqtt/#device-discovery-payload.
const (
	FieldDeviceIdentifiers      = "identifiers"
	FieldDeviceConnections      = "connections"
	FieldDeviceName             = "name"
	FieldDeviceManufacturer     = "manufacturer"
	FieldDeviceModel            = "model"
	FieldDeviceModelID          = "model_id"
	FieldDeviceSerialNumber     = "serial_number"
	FieldDeviceHardwareVersion  = "hw_version"
	FieldDeviceSoftwareVersion  = "sw_version"
	FieldDeviceSuggestedArea    = "suggested_area"
	FieldDeviceConfigurationURL = "configuration_url"
	FieldDeviceViaDevice        = "via_device"
)

// Fields of the origin object.
const (
	FieldOriginName            = "name"
	FieldOriginSoftwareVersion = "sw_version"
	FieldOriginSupportURL      = "support_url"
)
