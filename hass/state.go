package hass

// StateClass tells Home Assistant how to build long term statistics for a sensor. The zero value omits the state class.
type StateClass string

const (
	// StateClassNone omits the state class from discovery, e.g. for text and timestamp sensors.
	StateClassNone StateClass = ""

	// StateClassMeasurement indicates the state represents a measurement in present time, not a historical aggregation
	// such as statistics or a prediction of the future. Examples of what should be classified StateClassMeasurement
	// are: current temperature, humidity or electric power. Examples of what should not be StateClassMeasurement:
	// Forecasted temperature for tomorrow, yesterday's energy consumption or anything else that doesn't include the
	// current measurement.
	StateClassMeasurement StateClass = "measurement"

	// StateClassMeasurementAngle indicates the state represents a measurement in present time for angles measured in
	// degrees, such as the current wind direction.
	StateClassMeasurementAngle StateClass = "measurement_angle"

	// StateClassTotal indicates the state represents a total amount that can both increase and decrease, e.g. a net
	// energy meter.
	StateClassTotal StateClass = "total"

	// StateClassTotalIncreasing indicates the state represents a monotonically increasing positive total which
	// periodically restarts counting from 0, e.g. a daily amount of consumed gas. A decreasing value is interpreted as
	// the start of a new meter cycle or the replacement of the meter.
	StateClassTotalIncreasing StateClass = "total_increasing"
)
