package discovery

// Cover
const (
	FieldPositionTopic    = "position_topic"
	FieldSetPositionTopic = "set_position_topic"
	FieldPositionClosed   = "position_closed"
	FieldPositionOpen     = "position_open"
)

// Number and Text
const (
	FieldMin  = "min"
	FieldMax  = "max"
	FieldStep = "step"
	FieldMode = "mode"
)

// Button and Event
const (
	FieldPayloadPress = "payload_press"
	FieldEventTypes   = "event_types"
	FieldEventType    = "event_type"
)
