package discovery

// Generic Sensor Constants
const (
	FieldExpireAfter               = "expire_after"
	FieldForceUpdate               = "force_update"
	FieldOptions                   = "options"
	FieldSuggestedDisplayPrecision = "suggested_display_precision"
	FieldStateClass                = "state_class"
	FieldUnitOfMeasurement         = "unit_of_measurement"

	FieldOffDelay = "off_delay"
)
