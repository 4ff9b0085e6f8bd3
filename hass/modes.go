package hass

// EventDeviceClass is the device class of an event entity. The zero value omits it.
type EventDeviceClass string

const (
	EventDeviceClassNone     EventDeviceClass = ""
	EventDeviceClassButton   EventDeviceClass = "button"
	EventDeviceClassMotion   EventDeviceClass = "motion"
	EventDeviceClassDoorbell EventDeviceClass = "doorbell"
)

// TextMode controls how the frontend renders a text entity.
type TextMode string

const (
	TextModeText     TextMode = "text"
	TextModePassword TextMode = "password"
)

// NumberMode controls how the frontend renders a number entity. The zero value lets Home Assistant decide.
type NumberMode string

const (
	NumberModeAuto   NumberMode = "auto"
	NumberModeBox    NumberMode = "box"
	NumberModeSlider NumberMode = "slider"
)

// EntityCategory marks entities that are not a device's primary controls or readings. The zero value omits it.
type EntityCategory string

const (
	EntityCategoryNone       EntityCategory = ""
	EntityCategoryConfig     EntityCategory = "config"
	EntityCategoryDiagnostic EntityCategory = "diagnostic"
)
