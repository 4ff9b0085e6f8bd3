package deviceclass

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeviceClass_ObjectID(t *testing.T) {
	for _, tt := range []struct {
		name string
		sut  DeviceClass
		want string
	}{
		{name: "temperature", sut: Temperature, want: "temperature"},
		{name: "binary lock", sut: BinaryLock, want: "lock"},
		{name: "brightness", sut: Brightness, want: "brightness"},
		{name: "json", sut: JSON, want: "json"},
		{name: "string", sut: String, want: "string"},
		{name: "boolean", sut: Boolean, want: "boolean"},
		{name: "none", sut: None, want: UnknownObjectID},
		{name: "binary none", sut: BinaryNone, want: UnknownObjectID},
		{name: "zero", sut: DeviceClass{}, want: UnknownObjectID},
		{name: "blank class", sut: sensor("  "), want: UnknownObjectID},
		{name: "padded class", sut: sensor(" humidity "), want: "humidity"},
	} {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.sut.ObjectID())
		})
	}
}

func TestDeviceClass_DeviceClass(t *testing.T) {
	c, ok := AtmosphericPressure.DeviceClass()
	require.True(t, ok)
	assert.Equal(t, "atmospheric_pressure", c)

	_, ok = Brightness.DeviceClass()
	assert.False(t, ok)

	_, ok = Boolean.DeviceClass()
	assert.False(t, ok)
}

func TestDeviceClass_UnitOfMeasurement(t *testing.T) {
	for _, tt := range []struct {
		name   string
		sut    DeviceClass
		unit   Unit
		want   string
		wantOK bool
	}{
		{name: "celsius", sut: Temperature, unit: UnitCelsius, want: "°C", wantOK: true},
		{name: "kelvin", sut: Temperature, unit: UnitKelvin, want: "K", wantOK: true},
		{name: "wrong unit", sut: Temperature, unit: UnitPercent},
		{name: "empty unit", sut: Temperature},
		{name: "microvolt", sut: Voltage, unit: UnitMicrovolt, want: "µV", wantOK: true},
		{name: "particulate", sut: PM25, unit: UnitMicrogramsPerCubicMeter, want: "µg/m³", wantOK: true},
		{name: "brightness percent", sut: Brightness, unit: UnitPercent, want: "%", wantOK: true},
		{name: "unit concentration", sut: UnitConcentration, unit: UnitPerDeciliter, want: "/dL", wantOK: true},
		{name: "unitless", sut: AQI, unit: UnitPercent},
		{name: "binary", sut: BinaryDoor, unit: UnitPercent},
	} {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.sut.UnitOfMeasurement(tt.unit)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSensorType_Component(t *testing.T) {
	assert.Equal(t, "sensor", Temperature.Component())
	assert.Equal(t, "sensor", JSON.Component())
	assert.Equal(t, "binary_sensor", BinaryMotion.Component())
	assert.Equal(t, "binary_sensor", Boolean.Component())
}

func TestLookup(t *testing.T) {
	got, ok := Lookup(Sensor, "humidity")
	require.True(t, ok)
	assert.Equal(t, "humidity", got.ObjectID())

	got, ok = Lookup(BinarySensor, "battery")
	require.True(t, ok)
	assert.Equal(t, BinarySensor, got.SensorType())

	_, ok = Lookup(BinarySensor, "temperature")
	assert.False(t, ok)
}

func TestTablesAreUnique(t *testing.T) {
	for _, table := range [][]DeviceClass{sensors, binarySensors} {
		seen := map[string]bool{}
		for _, d := range table {
			c, ok := d.DeviceClass()
			require.True(t, ok)
			assert.False(t, seen[c], c)
			seen[c] = true
		}
	}
}
