// Package deviceclass describes Home Assistant sensor and binary sensor device classes: which platform they belong
// to, the device_class value to advertise, the units Home Assistant accepts for them, and the object id entities of
// that class are published under.
package deviceclass

import (
	"log/slog"
	"slices"
	"strings"
)

// UnknownObjectID is the object id used for a DeviceClass with neither a device class nor a fixed object id.
const UnknownObjectID = "unknown_device_class"

// SensorType is the Home Assistant platform a DeviceClass belongs to.
type SensorType int

const (
	// Sensor is a sensor with a numeric or string value.
	Sensor SensorType = iota
	// BinarySensor is a sensor with a boolean (ON/OFF) value.
	BinarySensor
)

// Component returns the discovery component name for t.
func (t SensorType) Component() string {
	if t == BinarySensor {
		return "binary_sensor"
	}

	return "sensor"
}

func (t SensorType) String() string {
	return t.Component()
}

// DeviceClass is an immutable descriptor for one row of the device class table. The zero value is an undefined sensor
// class with object id UnknownObjectID.
type DeviceClass struct {
	sensorType SensorType
	class      string
	objectID   string
	units      []Unit
}

func sensor(class string, units ...Unit) DeviceClass {
	return DeviceClass{sensorType: Sensor, class: class, units: units}
}

func binarySensor(class string) DeviceClass {
	return DeviceClass{sensorType: BinarySensor, class: class}
}

func undefined(objectID string, units ...Unit) DeviceClass {
	return DeviceClass{sensorType: Sensor, objectID: objectID, units: units}
}

func undefinedBinary(objectID string) DeviceClass {
	return DeviceClass{sensorType: BinarySensor, objectID: objectID}
}

// SensorType returns the platform this class belongs to.
func (d DeviceClass) SensorType() SensorType {
	return d.sensorType
}

// Component is shorthand for d.SensorType().Component().
func (d DeviceClass) Component() string {
	return d.sensorType.Component()
}

// DeviceClass returns the device_class value to advertise. The second return value is false for classes Home
// Assistant does not define, which must not advertise one.
func (d DeviceClass) DeviceClass() (string, bool) {
	c := strings.TrimSpace(d.class)
	return c, c != ""
}

// UnitOfMeasurement returns the unit_of_measurement string for u. The second return value is false if u is not valid
// for this class, in which case no unit should be advertised.
func (d DeviceClass) UnitOfMeasurement(u Unit) (string, bool) {
	if u == "" || !slices.Contains(d.units, u) {
		return "", false
	}

	return string(u), true
}

// Units returns the units accepted by this class.
func (d DeviceClass) Units() []Unit {
	return slices.Clone(d.units)
}

// ObjectID returns the object id entities of this class are published under: the trimmed device class, or a fixed id
// for classes Home Assistant does not define, falling back to UnknownObjectID.
func (d DeviceClass) ObjectID() string {
	if c, ok := d.DeviceClass(); ok {
		return c
	}

	if d.objectID != "" {
		return d.objectID
	}

	return UnknownObjectID
}

func (d DeviceClass) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("type", d.sensorType.String()),
		slog.String("object_id", d.ObjectID()),
	)
}

// Lookup finds the defined device class named class for the platform t.
func Lookup(t SensorType, class string) (DeviceClass, bool) {
	table := sensors
	if t == BinarySensor {
		table = binarySensors
	}

	i := slices.IndexFunc(table, func(d DeviceClass) bool { return d.class == class })
	if i < 0 {
		return DeviceClass{}, false
	}

	return table[i], true
}

var sensors = []DeviceClass{
	ApparentPower, AQI, Area, AtmosphericPressure, Battery, BloodGlucoseConcentration, CarbonDioxide, CarbonMonoxide,
	Current, DataRate, DataSize, Date, Distance, Duration, Energy, EnergyStorage, Enum, Frequency, Gas, Humidity,
	Illuminance, Irradiance, Moisture, Monetary, NitrogenDioxide, NitrogenMonoxide, NitrousOxide, Ozone, PH, PM1, PM25,
	PM10, PowerFactor, Power, Precipitation, PrecipitationIntensity, Pressure, ReactivePower, SignalStrength,
	SoundPressure, Speed, SulphurDioxide, Temperature, Timestamp, VolatileOrganicCompounds,
	VolatileOrganicCompoundsParts, Voltage, Volume, VolumeFlowRate, VolumeStorage, Water, Weight, WindSpeed,
}

var binarySensors = []DeviceClass{
	BinaryBattery, BinaryBatteryCharging, BinaryCarbonMonoxide, BinaryCold, BinaryConnectivity, BinaryDoor,
	BinaryGarageDoor, BinaryGas, BinaryHeat, BinaryLight, BinaryLock, BinaryMoisture, BinaryMotion, BinaryMoving,
	BinaryOccupancy, BinaryOpening, BinaryPlug, BinaryPower, BinaryPresence, BinaryProblem, BinaryRunning,
	BinarySafety, BinarySmoke, BinarySound, BinaryTamper, BinaryUpdate, BinaryVibration, BinaryWindow,
}
