package discovery

// Fields shared by every entity. FieldAvailabilityTopic, FieldUniqueID, FieldDevice and FieldOrigin are filled in by
// the bridge.
const (
	FieldAvailabilityTopic = "availability_topic"
	FieldUniqueID          = "unique_id"
	FieldDevice            = "device"
	FieldOrigin            = "origin"

	FieldName           = "name"
	FieldPlatform       = "platform"
	FieldIcon           = "icon"
	FieldEntityCategory = "entity_category"
	FieldDeviceClass    = "device_class"

	FieldStateTopic      = "state_topic"
	FieldCommandTopic    = "command_topic"
	FieldAttributesTopic = "json_attributes_topic"

	FieldRetain = "retain"
)

// ReservedFields are the fields the bridge owns in every discovery document.
var ReservedFields = []string{FieldAvailabilityTopic, FieldUniqueID, FieldDevice, FieldOrigin}
