package platform

import (
	"cmp"
	"time"

	"github.com/nlowe/haentity"
	"github.com/nlowe/haentity/deviceclass"
	"github.com/nlowe/haentity/hass"
)

// MeasurementConfig configures the numeric sensors built by NewTemperature, NewHumidity and friends. A zero Unit uses
// the default unit of each constructor. Values published must be in the configured unit.
type MeasurementConfig struct {
	Unit           deviceclass.Unit
	Icon           string
	ForceUpdate    bool
	WithAttributes bool
	ExpireAfter    time.Duration
	Retain         bool

	SuggestedDisplayPrecision *uint
}

func (c MeasurementConfig) sensor(class deviceclass.DeviceClass, unit deviceclass.Unit) SensorConfig {
	return SensorConfig{
		DeviceClass:               class,
		Unit:                      cmp.Or(c.Unit, unit),
		StateClass:                hass.StateClassMeasurement,
		Icon:                      c.Icon,
		ForceUpdate:               c.ForceUpdate,
		WithAttributes:            c.WithAttributes,
		ExpireAfter:               c.ExpireAfter,
		SuggestedDisplayPrecision: c.SuggestedDisplayPrecision,
		Retain:                    c.Retain,
	}
}

// NewTemperature constructs a temperature sensor, °C by default.
func NewTemperature(b *haentity.Bridge, name, childObjectID string, cfg MeasurementConfig) *Sensor {
	return NewSensor(b, name, childObjectID, cfg.sensor(deviceclass.Temperature, deviceclass.UnitCelsius))
}

// NewHumidity constructs a relative humidity sensor in %.
func NewHumidity(b *haentity.Bridge, name, childObjectID string, cfg MeasurementConfig) *Sensor {
	return NewSensor(b, name, childObjectID, cfg.sensor(deviceclass.Humidity, deviceclass.UnitPercent))
}

// NewVoltage constructs a voltage sensor, V by default.
func NewVoltage(b *haentity.Bridge, name, childObjectID string, cfg MeasurementConfig) *Sensor {
	return NewSensor(b, name, childObjectID, cfg.sensor(deviceclass.Voltage, deviceclass.UnitVolt))
}

// NewCurrent constructs a current sensor, A by default.
func NewCurrent(b *haentity.Bridge, name, childObjectID string, cfg MeasurementConfig) *Sensor {
	return NewSensor(b, name, childObjectID, cfg.sensor(deviceclass.Current, deviceclass.UnitAmpere))
}

// NewWeight constructs a weight sensor, g by default.
func NewWeight(b *haentity.Bridge, name, childObjectID string, cfg MeasurementConfig) *Sensor {
	return NewSensor(b, name, childObjectID, cfg.sensor(deviceclass.Weight, deviceclass.UnitGram))
}

// NewAtmosphericPressure constructs an atmospheric pressure sensor, hPa by default.
func NewAtmosphericPressure(b *haentity.Bridge, name, childObjectID string, cfg MeasurementConfig) *Sensor {
	return NewSensor(b, name, childObjectID, cfg.sensor(deviceclass.AtmosphericPressure, deviceclass.UnitHectopascal))
}

// NewCarbonDioxide constructs a CO2 concentration sensor in ppm.
func NewCarbonDioxide(b *haentity.Bridge, name, childObjectID string, cfg MeasurementConfig) *Sensor {
	return NewSensor(b, name, childObjectID, cfg.sensor(deviceclass.CarbonDioxide, deviceclass.UnitPartsPerMillion))
}

// NewIlluminance constructs a light level sensor in lx.
func NewIlluminance(b *haentity.Bridge, name, childObjectID string, cfg MeasurementConfig) *Sensor {
	return NewSensor(b, name, childObjectID, cfg.sensor(deviceclass.Illuminance, deviceclass.UnitLux))
}

// NewBattery constructs a battery level sensor in %.
func NewBattery(b *haentity.Bridge, name, childObjectID string, cfg MeasurementConfig) *Sensor {
	return NewSensor(b, name, childObjectID, cfg.sensor(deviceclass.Battery, deviceclass.UnitPercent))
}

// NewBrightness constructs a brightness sensor in %. Home Assistant has no brightness device class, so none is
// advertised.
func NewBrightness(b *haentity.Bridge, name, childObjectID string, cfg MeasurementConfig) *Sensor {
	return NewSensor(b, name, childObjectID, cfg.sensor(deviceclass.Brightness, deviceclass.UnitPercent))
}

// ParticleSize selects the device class of a particulate matter sensor.
type ParticleSize int

const (
	PM1 ParticleSize = iota
	PM25
	PM10
)

func (p ParticleSize) deviceClass() deviceclass.DeviceClass {
	switch p {
	case PM1:
		return deviceclass.PM1
	case PM10:
		return deviceclass.PM10
	default:
		return deviceclass.PM25
	}
}

// NewParticulateMatter constructs a particulate matter concentration sensor in µg/m³.
func NewParticulateMatter(b *haentity.Bridge, name, childObjectID string, size ParticleSize, cfg MeasurementConfig) *Sensor {
	return NewSensor(b, name, childObjectID, cfg.sensor(size.deviceClass(), deviceclass.UnitMicrogramsPerCubicMeter))
}

// NewVolatileOrganicCompounds constructs a VOC sensor. The default unit is ppb; with µg/m³ the concentration device
// class is advertised instead of the ratio one.
func NewVolatileOrganicCompounds(b *haentity.Bridge, name, childObjectID string, cfg MeasurementConfig) *Sensor {
	if cfg.Unit == deviceclass.UnitMicrogramsPerCubicMeter {
		return NewSensor(b, name, childObjectID, cfg.sensor(deviceclass.VolatileOrganicCompounds, ""))
	}

	return NewSensor(b, name, childObjectID, cfg.sensor(deviceclass.VolatileOrganicCompoundsParts, deviceclass.UnitPartsPerBillion))
}
